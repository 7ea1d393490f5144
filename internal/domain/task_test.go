package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewTask(t *testing.T) {
	t.Parallel() // Enable parallel execution
	projectID := uuid.New()

	// Test valid task creation
	task, err := NewTask(projectID, "Write docs", "Cover the API surface", TaskStatusInProgress)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if task.ProjectID != projectID {
		t.Errorf("Expected project ID %v, got %v", projectID, task.ProjectID)
	}

	if task.Title != "Write docs" {
		t.Errorf("Expected title %q, got %q", "Write docs", task.Title)
	}

	if task.Status != TaskStatusInProgress {
		t.Errorf("Expected status %v, got %v", TaskStatusInProgress, task.Status)
	}

	if task.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// An omitted status defaults to TODO
	task, err = NewTask(projectID, "Untracked", "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Status != TaskStatusTodo {
		t.Errorf("Expected default status %v, got %v", TaskStatusTodo, task.Status)
	}

	// Test empty title
	_, err = NewTask(projectID, "", "", TaskStatusTodo)
	if err != ErrTaskTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleEmpty, err)
	}

	// Test missing project
	_, err = NewTask(uuid.Nil, "Orphan", "", TaskStatusTodo)
	if err != ErrTaskProjectIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskProjectIDEmpty, err)
	}

	// Test unknown status
	_, err = NewTask(projectID, "Bad status", "", "BLOCKED")
	if err != ErrInvalidTaskStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	validTask := Task{
		ID:        uuid.New(),
		ProjectID: uuid.New(),
		Title:     "Valid",
		Status:    TaskStatusDone,
	}

	// Test valid task
	if err := validTask.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid ID
	invalidTask := validTask
	invalidTask.ID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrTaskIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskIDEmpty, err)
	}

	// Test invalid project ID
	invalidTask = validTask
	invalidTask.ProjectID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrTaskProjectIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskProjectIDEmpty, err)
	}

	// Test empty title
	invalidTask = validTask
	invalidTask.Title = ""
	if err := invalidTask.Validate(); err != ErrTaskTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleEmpty, err)
	}

	// Test invalid status
	invalidTask = validTask
	invalidTask.Status = "PAUSED"
	if err := invalidTask.Validate(); err != ErrInvalidTaskStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}
}

func TestTaskApply(t *testing.T) {
	t.Parallel() // Enable parallel execution
	projectID := uuid.New()
	task, err := NewTask(projectID, "Original", "original description", TaskStatusTodo)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	originalUpdatedAt := task.UpdatedAt

	// Full update replaces every field
	if err := task.Apply("Updated", "updated description", TaskStatusDone); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Title != "Updated" {
		t.Errorf("Expected title %q, got %q", "Updated", task.Title)
	}

	if task.Status != TaskStatusDone {
		t.Errorf("Expected status %v, got %v", TaskStatusDone, task.Status)
	}

	if task.UpdatedAt.Before(originalUpdatedAt) {
		t.Error("Expected UpdatedAt to advance")
	}

	// An empty status keeps the stored value
	if err := task.Apply("Updated again", "", ""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Status != TaskStatusDone {
		t.Errorf("Expected status to remain %v, got %v", TaskStatusDone, task.Status)
	}

	// An empty title is rejected and the task is unchanged
	if err := task.Apply("", "", ""); err != ErrTaskTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleEmpty, err)
	}

	if task.Title != "Updated again" {
		t.Errorf("Expected title to remain %q, got %q", "Updated again", task.Title)
	}

	// An unknown status is rejected
	if err := task.Apply("Still here", "", "ARCHIVED"); err != ErrInvalidTaskStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}
}

func TestIsValidTaskStatus(t *testing.T) {
	t.Parallel() // Enable parallel execution
	valid := []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}
	for _, status := range valid {
		if !IsValidTaskStatus(status) {
			t.Errorf("Expected status %v to be valid", status)
		}
	}

	invalid := []TaskStatus{"", "todo", "STARTED", "COMPLETE"}
	for _, status := range invalid {
		if IsValidTaskStatus(status) {
			t.Errorf("Expected status %v to be invalid", status)
		}
	}
}

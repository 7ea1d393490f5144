package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the completion state of a task
type TaskStatus string

// Possible task status values
const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// Task-specific validation errors
var (
	// ErrTaskIDEmpty is returned when a task ID is empty or nil.
	ErrTaskIDEmpty = errors.New("task ID cannot be empty")

	// ErrTaskProjectIDEmpty is returned when a task's project ID is empty or nil.
	ErrTaskProjectIDEmpty = errors.New("task project ID cannot be empty")

	// ErrTaskTitleEmpty is returned when a task's title is empty.
	ErrTaskTitleEmpty = errors.New("task title cannot be empty")

	// ErrInvalidTaskStatus is returned when a task status is not one of
	// the known values.
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// Task represents a unit of work belonging to exactly one project. The
// project reference is fixed at creation time; updates never move a task
// to another project.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   uuid.UUID  `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new Task under the given project. It generates a new
// UUID for the task ID, sets the creation/update timestamps, and defaults
// the status to TODO when none is supplied.
// Returns an error if validation fails.
func NewTask(projectID uuid.UUID, title, description string, status TaskStatus) (*Task, error) {
	if status == "" {
		status = TaskStatusTodo
	}

	task := &Task{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}

	if t.ProjectID == uuid.Nil {
		return ErrTaskProjectIDEmpty
	}

	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if !IsValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	return nil
}

// Apply overwrites the task's title and description, and its status only
// when a status is supplied. An empty status leaves the stored value
// unchanged (partial update semantics). The UpdatedAt timestamp is bumped.
// Returns an error if the new data is invalid.
func (t *Task) Apply(title, description string, status TaskStatus) error {
	if title == "" {
		return ErrTaskTitleEmpty
	}

	if status != "" && !IsValidTaskStatus(status) {
		return ErrInvalidTaskStatus
	}

	t.Title = title
	t.Description = description
	if status != "" {
		t.Status = status
	}
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// IsValidTaskStatus checks if the given status is a valid TaskStatus.
func IsValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

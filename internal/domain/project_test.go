package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewProject(t *testing.T) {
	t.Parallel() // Enable parallel execution
	// Test valid project creation
	project, err := NewProject("Website Redesign", "Refresh the marketing site")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if project.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if project.Name != "Website Redesign" {
		t.Errorf("Expected name %q, got %q", "Website Redesign", project.Name)
	}

	if project.Description != "Refresh the marketing site" {
		t.Errorf("Expected description %q, got %q", "Refresh the marketing site", project.Description)
	}

	if project.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if project.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Test empty name
	_, err = NewProject("", "no name")
	if err != ErrProjectNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrProjectNameEmpty, err)
	}

	// Description is optional
	project, err = NewProject("Bare", "")
	if err != nil {
		t.Fatalf("Expected no error for empty description, got %v", err)
	}
	if project.Description != "" {
		t.Errorf("Expected empty description, got %q", project.Description)
	}
}

func TestProjectValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	validProject := Project{
		ID:   uuid.New(),
		Name: "Valid",
	}

	// Test valid project
	if err := validProject.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid ID
	invalidProject := validProject
	invalidProject.ID = uuid.Nil
	if err := invalidProject.Validate(); err != ErrProjectIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrProjectIDEmpty, err)
	}

	// Test empty name
	invalidProject = validProject
	invalidProject.Name = ""
	if err := invalidProject.Validate(); err != ErrProjectNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrProjectNameEmpty, err)
	}
}

func TestProjectRename(t *testing.T) {
	t.Parallel() // Enable parallel execution
	project, err := NewProject("Before", "old description")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	originalUpdatedAt := project.UpdatedAt

	if err := project.Rename("After", "new description"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if project.Name != "After" {
		t.Errorf("Expected name %q, got %q", "After", project.Name)
	}

	if project.Description != "new description" {
		t.Errorf("Expected description %q, got %q", "new description", project.Description)
	}

	if project.UpdatedAt.Before(originalUpdatedAt) {
		t.Error("Expected UpdatedAt to advance")
	}

	// Renaming to an empty name fails and leaves the project unchanged
	if err := project.Rename("", "ignored"); err != ErrProjectNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrProjectNameEmpty, err)
	}

	if project.Name != "After" {
		t.Errorf("Expected name to remain %q, got %q", "After", project.Name)
	}
}

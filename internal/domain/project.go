package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Project-specific validation errors
var (
	// ErrProjectIDEmpty is returned when a project ID is empty or nil.
	ErrProjectIDEmpty = errors.New("project ID cannot be empty")

	// ErrProjectNameEmpty is returned when a project's name is empty.
	ErrProjectNameEmpty = errors.New("project name cannot be empty")
)

// Project represents a container for tasks. It owns a one-to-many
// relationship to Task; deleting a project removes its tasks.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProject creates a new Project with the given name and description.
// It generates a new UUID for the project ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewProject(name, description string) (*Project, error) {
	project := &Project{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	return project, nil
}

// Validate checks if the Project has valid data.
// Returns an error if any field fails validation.
func (p *Project) Validate() error {
	if p.ID == uuid.Nil {
		return ErrProjectIDEmpty
	}

	if p.Name == "" {
		return ErrProjectNameEmpty
	}

	return nil
}

// Rename overwrites the project's name and description and bumps the
// UpdatedAt timestamp. Returns an error if the new name is empty.
func (p *Project) Rename(name, description string) error {
	if name == "" {
		return ErrProjectNameEmpty
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now().UTC()
	return nil
}

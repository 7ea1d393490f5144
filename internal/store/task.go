package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// All single-task operations are scoped by (projectID, taskID): a task ID
// alone never authorizes access, the pair must match a stored row.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the parent project does not exist
	// (foreign key violation) and validation errors from the domain Task
	// if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by (projectID, taskID).
	// Returns ErrTaskNotFound if no task matches the pair.
	GetByID(ctx context.Context, projectID, taskID uuid.UUID) (*domain.Task, error)

	// ListByProject retrieves one page of the project's tasks ordered by
	// creation time. The caller is responsible for verifying that the
	// project exists; an unknown project ID simply yields an empty page.
	ListByProject(ctx context.Context, projectID uuid.UUID, params PageParams) (Page[domain.Task], error)

	// Update overwrites an existing task's title, description, and status.
	// The row is matched by (task.ProjectID, task.ID).
	// Returns ErrTaskNotFound if no task matches the pair.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task matched by (projectID, taskID).
	// Returns ErrTaskNotFound if no task matches the pair.
	Delete(ctx context.Context, projectID, taskID uuid.UUID) error
}

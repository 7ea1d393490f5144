package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
)

// ProjectStore defines the interface for project data persistence.
type ProjectStore interface {
	// Create saves a new project to the store.
	// Returns validation errors from the domain Project if data is invalid.
	Create(ctx context.Context, project *domain.Project) error

	// GetByID retrieves a project by its unique ID.
	// Returns ErrProjectNotFound if the project does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)

	// List retrieves one page of projects ordered by creation time.
	List(ctx context.Context, params PageParams) (Page[domain.Project], error)

	// Exists reports whether a project with the given ID is present.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Update overwrites an existing project's name and description.
	// Returns ErrProjectNotFound if the project does not exist.
	Update(ctx context.Context, project *domain.Project) error

	// Delete removes a project from the store by its ID. Tasks belonging
	// to the project are removed by the schema's cascade rule.
	// Returns ErrProjectNotFound if the project does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

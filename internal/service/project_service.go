package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// ProjectInput carries the caller-supplied fields for creating or
// updating a project. Validation of required fields happens at the HTTP
// boundary before the service is invoked.
type ProjectInput struct {
	Name        string
	Description string
}

// ProjectService provides project-related operations.
type ProjectService interface {
	// List returns one page of projects with no filtering.
	List(ctx context.Context, params store.PageParams) (store.Page[domain.Project], error)

	// GetByID retrieves a project by its ID.
	// Returns ErrProjectNotFound if the project does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)

	// Create persists a new project from the given input. The store
	// assigns no ID; the domain constructor does.
	Create(ctx context.Context, input ProjectInput) (*domain.Project, error)

	// Update overwrites the project's name and description in place.
	// Returns ErrProjectNotFound if the project does not exist.
	Update(ctx context.Context, id uuid.UUID, input ProjectInput) (*domain.Project, error)

	// Delete removes the project. Existence is checked first as a
	// separate step, so a missing project is always reported as
	// ErrProjectNotFound rather than inferred from the delete outcome.
	Delete(ctx context.Context, id uuid.UUID) error
}

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	projectStore store.ProjectStore
	logger       *slog.Logger
}

// Ensure projectServiceImpl implements ProjectService interface
var _ ProjectService = (*projectServiceImpl)(nil)

// NewProjectService creates a new ProjectService with the given dependencies.
func NewProjectService(projectStore store.ProjectStore, logger *slog.Logger) ProjectService {
	return &projectServiceImpl{
		projectStore: projectStore,
		logger:       logger,
	}
}

// List implements ProjectService.List
func (s *projectServiceImpl) List(
	ctx context.Context,
	params store.PageParams,
) (store.Page[domain.Project], error) {
	s.logger.Debug("listing projects", "page", params.Page, "size", params.Size)

	page, err := s.projectStore.List(ctx, params)
	if err != nil {
		return store.Page[domain.Project]{}, newServiceError("list_projects", "failed to list projects", err)
	}
	return page, nil
}

// GetByID implements ProjectService.GetByID
func (s *projectServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	s.logger.Debug("fetching project", "project_id", id)

	project, err := s.projectStore.GetByID(ctx, id)
	if err != nil {
		return nil, newServiceError("get_project", "failed to get project", err)
	}
	return project, nil
}

// Create implements ProjectService.Create
func (s *projectServiceImpl) Create(
	ctx context.Context,
	input ProjectInput,
) (*domain.Project, error) {
	s.logger.Info("creating project", "name", input.Name)

	project, err := domain.NewProject(input.Name, input.Description)
	if err != nil {
		return nil, newServiceError("create_project", "invalid project data", err)
	}

	if err := s.projectStore.Create(ctx, project); err != nil {
		return nil, newServiceError("create_project", "failed to create project", err)
	}

	s.logger.Info("project created", "project_id", project.ID)
	return project, nil
}

// Update implements ProjectService.Update
func (s *projectServiceImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	input ProjectInput,
) (*domain.Project, error) {
	s.logger.Info("updating project", "project_id", id)

	project, err := s.projectStore.GetByID(ctx, id)
	if err != nil {
		return nil, newServiceError("update_project", "failed to get project", err)
	}

	if err := project.Rename(input.Name, input.Description); err != nil {
		return nil, newServiceError("update_project", "invalid project data", err)
	}

	if err := s.projectStore.Update(ctx, project); err != nil {
		return nil, newServiceError("update_project", "failed to update project", err)
	}

	s.logger.Info("project updated", "project_id", project.ID)
	return project, nil
}

// Delete implements ProjectService.Delete
func (s *projectServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("deleting project", "project_id", id)

	exists, err := s.projectStore.Exists(ctx, id)
	if err != nil {
		return newServiceError("delete_project", "failed to check project existence", err)
	}
	if !exists {
		s.logger.Warn("project not found", "project_id", id)
		return ErrProjectNotFound
	}

	if err := s.projectStore.Delete(ctx, id); err != nil {
		return newServiceError("delete_project", "failed to delete project", err)
	}

	s.logger.Info("project deleted", "project_id", id)
	return nil
}

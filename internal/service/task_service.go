package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskInput carries the caller-supplied fields for creating or updating a
// task. An empty Status means "not supplied": creation falls back to TODO
// and updates leave the stored status unchanged.
type TaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
}

// TaskService provides task-related operations. Every operation is scoped
// to an owning project: a task is never created, fetched, or mutated
// outside the scope of its project's identifier.
type TaskService interface {
	// ListByProject returns one page of the project's tasks.
	// Returns ErrProjectNotFound if the parent project does not exist.
	ListByProject(
		ctx context.Context,
		projectID uuid.UUID,
		params store.PageParams,
	) (store.Page[domain.Task], error)

	// GetByID retrieves a task by the (projectID, taskID) pair.
	// Returns ErrTaskNotFound if no task matches the pair.
	GetByID(ctx context.Context, projectID, taskID uuid.UUID) (*domain.Task, error)

	// Create persists a new task under the given project. Status defaults
	// to TODO when the input omits it.
	// Returns ErrProjectNotFound if the parent project does not exist.
	Create(ctx context.Context, projectID uuid.UUID, input TaskInput) (*domain.Task, error)

	// Update applies title and description unconditionally and status
	// only when the input supplies one.
	// Returns ErrTaskNotFound if no task matches the (projectID, taskID) pair.
	Update(ctx context.Context, projectID, taskID uuid.UUID, input TaskInput) (*domain.Task, error)

	// Delete removes the task matched by the (projectID, taskID) pair.
	// Returns ErrTaskNotFound if no task matches the pair.
	Delete(ctx context.Context, projectID, taskID uuid.UUID) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore    store.TaskStore
	projectStore store.ProjectStore
	logger       *slog.Logger
}

// Ensure taskServiceImpl implements TaskService interface
var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a new TaskService with the given dependencies.
func NewTaskService(
	taskStore store.TaskStore,
	projectStore store.ProjectStore,
	logger *slog.Logger,
) TaskService {
	return &taskServiceImpl{
		taskStore:    taskStore,
		projectStore: projectStore,
		logger:       logger,
	}
}

// requireProject verifies that the parent project exists.
func (s *taskServiceImpl) requireProject(ctx context.Context, projectID uuid.UUID) error {
	exists, err := s.projectStore.Exists(ctx, projectID)
	if err != nil {
		return newServiceError("check_project", "failed to check project existence", err)
	}
	if !exists {
		s.logger.Warn("project not found", "project_id", projectID)
		return ErrProjectNotFound
	}
	return nil
}

// ListByProject implements TaskService.ListByProject
func (s *taskServiceImpl) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
	params store.PageParams,
) (store.Page[domain.Task], error) {
	s.logger.Debug("listing tasks",
		"project_id", projectID,
		"page", params.Page,
		"size", params.Size)

	if err := s.requireProject(ctx, projectID); err != nil {
		return store.Page[domain.Task]{}, err
	}

	page, err := s.taskStore.ListByProject(ctx, projectID, params)
	if err != nil {
		return store.Page[domain.Task]{}, newServiceError("list_tasks", "failed to list tasks", err)
	}
	return page, nil
}

// GetByID implements TaskService.GetByID
func (s *taskServiceImpl) GetByID(
	ctx context.Context,
	projectID, taskID uuid.UUID,
) (*domain.Task, error) {
	s.logger.Debug("fetching task", "task_id", taskID, "project_id", projectID)

	task, err := s.taskStore.GetByID(ctx, projectID, taskID)
	if err != nil {
		return nil, newServiceError("get_task", "failed to get task", err)
	}
	return task, nil
}

// Create implements TaskService.Create
func (s *taskServiceImpl) Create(
	ctx context.Context,
	projectID uuid.UUID,
	input TaskInput,
) (*domain.Task, error) {
	s.logger.Info("creating task", "project_id", projectID)

	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	task, err := domain.NewTask(projectID, input.Title, input.Description, input.Status)
	if err != nil {
		return nil, newServiceError("create_task", "invalid task data", err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, newServiceError("create_task", "failed to create task", err)
	}

	s.logger.Info("task created", "task_id", task.ID, "project_id", projectID)
	return task, nil
}

// Update implements TaskService.Update
func (s *taskServiceImpl) Update(
	ctx context.Context,
	projectID, taskID uuid.UUID,
	input TaskInput,
) (*domain.Task, error) {
	s.logger.Info("updating task", "task_id", taskID, "project_id", projectID)

	task, err := s.taskStore.GetByID(ctx, projectID, taskID)
	if err != nil {
		return nil, newServiceError("update_task", "failed to get task", err)
	}

	if err := task.Apply(input.Title, input.Description, input.Status); err != nil {
		return nil, newServiceError("update_task", "invalid task data", err)
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, newServiceError("update_task", "failed to update task", err)
	}

	s.logger.Info("task updated", "task_id", task.ID, "project_id", projectID)
	return task, nil
}

// Delete implements TaskService.Delete
func (s *taskServiceImpl) Delete(ctx context.Context, projectID, taskID uuid.UUID) error {
	s.logger.Info("deleting task", "task_id", taskID, "project_id", projectID)

	if err := s.taskStore.Delete(ctx, projectID, taskID); err != nil {
		return newServiceError("delete_task", "failed to delete task", err)
	}

	s.logger.Info("task deleted", "task_id", taskID, "project_id", projectID)
	return nil
}

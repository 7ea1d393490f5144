package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskStore is an in-memory implementation of store.TaskStore. Every
// single-task operation is scoped by the (projectID, taskID) pair, the
// same way the PostgreSQL implementation matches rows.
type TaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]domain.Task
	order []uuid.UUID

	// Err, when set, is returned by every method.
	Err error
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[uuid.UUID]domain.Task),
	}
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[task.ID]; ok {
		return store.ErrDuplicate
	}
	s.tasks[task.ID] = *task
	s.order = append(s.order, task.ID)
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(
	ctx context.Context,
	projectID, taskID uuid.UUID,
) (*domain.Task, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok || task.ProjectID != projectID {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

// ListByProject implements store.TaskStore.ListByProject
func (s *TaskStore) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
	params store.PageParams,
) (store.Page[domain.Task], error) {
	if s.Err != nil {
		return store.Page[domain.Task]{}, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matching []domain.Task
	for _, id := range s.order {
		if task := s.tasks[id]; task.ProjectID == projectID {
			matching = append(matching, task)
		}
	}

	total := int64(len(matching))
	start := params.Offset()
	end := start + params.Size

	var items []domain.Task
	for i := start; i < end && i < len(matching); i++ {
		items = append(items, matching[i])
	}

	return store.NewPage(items, params, total), nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[task.ID]
	if !ok || existing.ProjectID != task.ProjectID {
		return store.ErrTaskNotFound
	}
	s.tasks[task.ID] = *task
	return nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, projectID, taskID uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok || task.ProjectID != projectID {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, taskID)
	for i, orderedID := range s.order {
		if orderedID == taskID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// DeleteByProject removes every task belonging to the project. Called
// by ProjectStore.Delete when the stores are linked through its Tasks
// field, mirroring the schema's ON DELETE CASCADE rule.
func (s *TaskStore) DeleteByProject(projectID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.order[:0]
	for _, id := range s.order {
		if s.tasks[id].ProjectID == projectID {
			delete(s.tasks, id)
			continue
		}
		remaining = append(remaining, id)
	}
	s.order = remaining
}

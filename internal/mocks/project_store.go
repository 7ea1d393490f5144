package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// ProjectStore is an in-memory implementation of store.ProjectStore.
// Projects are kept in insertion order so paginated listings are stable.
type ProjectStore struct {
	mu       sync.Mutex
	projects map[uuid.UUID]domain.Project
	order    []uuid.UUID

	// Err, when set, is returned by every method. Used to simulate
	// storage failures.
	Err error

	// Tasks, when set, receives a cascade delete whenever a project is
	// removed, mirroring the schema's ON DELETE CASCADE rule on
	// tasks.project_id.
	Tasks *TaskStore
}

// Ensure ProjectStore implements store.ProjectStore interface
var _ store.ProjectStore = (*ProjectStore)(nil)

// NewProjectStore creates an empty in-memory project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		projects: make(map[uuid.UUID]domain.Project),
	}
}

// Create implements store.ProjectStore.Create
func (s *ProjectStore) Create(ctx context.Context, project *domain.Project) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[project.ID]; ok {
		return store.ErrDuplicate
	}
	s.projects[project.ID] = *project
	s.order = append(s.order, project.ID)
	return nil
}

// GetByID implements store.ProjectStore.GetByID
func (s *ProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, store.ErrProjectNotFound
	}
	return &project, nil
}

// List implements store.ProjectStore.List
func (s *ProjectStore) List(
	ctx context.Context,
	params store.PageParams,
) (store.Page[domain.Project], error) {
	if s.Err != nil {
		return store.Page[domain.Project]{}, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	total := int64(len(s.order))
	start := params.Offset()
	end := start + params.Size

	var items []domain.Project
	for i := start; i < end && i < len(s.order); i++ {
		items = append(items, s.projects[s.order[i]])
	}

	return store.NewPage(items, params, total), nil
}

// Exists implements store.ProjectStore.Exists
func (s *ProjectStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.projects[id]
	return ok, nil
}

// Update implements store.ProjectStore.Update
func (s *ProjectStore) Update(ctx context.Context, project *domain.Project) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[project.ID]; !ok {
		return store.ErrProjectNotFound
	}
	s.projects[project.ID] = *project
	return nil
}

// Delete implements store.ProjectStore.Delete
func (s *ProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return store.ErrProjectNotFound
	}
	delete(s.projects, id)
	for i, orderedID := range s.order {
		if orderedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	if s.Tasks != nil {
		s.Tasks.DeleteByProject(id)
	}
	return nil
}

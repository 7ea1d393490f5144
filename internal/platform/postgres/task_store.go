package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db store.DBTX
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
func NewPostgresTaskStore(db store.DBTX) *PostgresTaskStore {
	return &PostgresTaskStore{
		db: db,
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (id, project_id, title, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.ProjectID,
		task.Title,
		task.Description,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to insert task",
			"task_id", task.ID,
			"project_id", task.ProjectID,
			"error", err)
		return MapError(err)
	}

	return nil
}

// GetByID implements store.TaskStore.GetByID. The row is matched by the
// (projectID, taskID) pair; a matching task ID under another project is
// reported as not found.
func (s *PostgresTaskStore) GetByID(
	ctx context.Context,
	projectID, taskID uuid.UUID,
) (*domain.Task, error) {
	query := `
		SELECT id, project_id, title, description, status, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND project_id = $2
	`

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, taskID, projectID).Scan(
		&task.ID,
		&task.ProjectID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, MapError(err)
	}

	return &task, nil
}

// ListByProject implements store.TaskStore.ListByProject
func (s *PostgresTaskStore) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
	params store.PageParams,
) (store.Page[domain.Task], error) {
	log := logger.FromContext(ctx)

	var total int64
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM tasks WHERE project_id = $1`,
		projectID,
	).Scan(&total)
	if err != nil {
		log.Error("failed to count tasks", "project_id", projectID, "error", err)
		return store.Page[domain.Task]{}, MapError(err)
	}

	query := `
		SELECT id, project_id, title, description, status, created_at, updated_at
		FROM tasks
		WHERE project_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, projectID, params.Size, params.Offset())
	if err != nil {
		log.Error("failed to query tasks", "project_id", projectID, "error", err)
		return store.Page[domain.Task]{}, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []domain.Task
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.ProjectID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return store.Page[domain.Task]{}, MapError(err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return store.Page[domain.Task]{}, MapError(err)
	}

	return store.NewPage(tasks, params, total), nil
}

// Update implements store.TaskStore.Update. The row is matched by
// (task.ProjectID, task.ID); the project reference itself is never changed.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, updated_at = $4
		WHERE id = $5 AND project_id = $6
	`

	result, err := s.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.UpdatedAt,
		task.ID,
		task.ProjectID,
	)
	if err != nil {
		log.Error("failed to update task",
			"task_id", task.ID,
			"project_id", task.ProjectID,
			"error", err)
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, projectID, taskID uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM tasks WHERE id = $1 AND project_id = $2`,
		taskID,
		projectID,
	)
	if err != nil {
		log.Error("failed to delete task",
			"task_id", taskID,
			"project_id", projectID,
			"error", err)
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

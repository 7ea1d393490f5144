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

// PostgresProjectStore implements the store.ProjectStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProjectStore struct {
	db store.DBTX
}

// NewPostgresProjectStore creates a new PostgreSQL implementation of the
// ProjectStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
func NewPostgresProjectStore(db store.DBTX) *PostgresProjectStore {
	return &PostgresProjectStore{
		db: db,
	}
}

// Ensure PostgresProjectStore implements store.ProjectStore interface
var _ store.ProjectStore = (*PostgresProjectStore)(nil)

// Create implements store.ProjectStore.Create
func (s *PostgresProjectStore) Create(ctx context.Context, project *domain.Project) error {
	log := logger.FromContext(ctx)

	if err := project.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO projects (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query,
		project.ID,
		project.Name,
		project.Description,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to insert project",
			"project_id", project.ID,
			"error", err)
		return MapError(err)
	}

	return nil
}

// GetByID implements store.ProjectStore.GetByID
func (s *PostgresProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	var project domain.Project
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProjectNotFound
		}
		return nil, MapError(err)
	}

	return &project, nil
}

// List implements store.ProjectStore.List
func (s *PostgresProjectStore) List(
	ctx context.Context,
	params store.PageParams,
) (store.Page[domain.Project], error) {
	log := logger.FromContext(ctx)

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&total); err != nil {
		log.Error("failed to count projects", "error", err)
		return store.Page[domain.Project]{}, MapError(err)
	}

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM projects
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, params.Size, params.Offset())
	if err != nil {
		log.Error("failed to query projects", "error", err)
		return store.Page[domain.Project]{}, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var projects []domain.Project
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Description,
			&project.CreatedAt,
			&project.UpdatedAt,
		); err != nil {
			return store.Page[domain.Project]{}, MapError(err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return store.Page[domain.Project]{}, MapError(err)
	}

	return store.NewPage(projects, params, total), nil
}

// Exists implements store.ProjectStore.Exists
func (s *PostgresProjectStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// Update implements store.ProjectStore.Update
func (s *PostgresProjectStore) Update(ctx context.Context, project *domain.Project) error {
	log := logger.FromContext(ctx)

	if err := project.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE projects
		SET name = $1, description = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query,
		project.Name,
		project.Description,
		project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		log.Error("failed to update project",
			"project_id", project.ID,
			"error", err)
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrProjectNotFound)
}

// Delete implements store.ProjectStore.Delete
func (s *PostgresProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete project",
			"project_id", id,
			"error", err)
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrProjectNotFound)
}

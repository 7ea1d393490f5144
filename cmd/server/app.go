package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/platform/cognito"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	projectStore store.ProjectStore
	taskStore    store.TaskStore

	// Service interfaces
	projectService service.ProjectService
	taskService    service.TaskService
	authenticator  auth.Authenticator
	tokenVerifier  auth.TokenVerifier
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger,
// and database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.projectStore = postgres.NewPostgresProjectStore(db)
	app.taskStore = postgres.NewPostgresTaskStore(db)

	// Initialize services
	app.projectService = service.NewProjectService(
		app.projectStore,
		logger.With("component", "project_service"),
	)
	app.taskService = service.NewTaskService(
		app.taskStore,
		app.projectStore,
		logger.With("component", "task_service"),
	)

	// Initialize the Cognito authenticator and token verifier from the
	// explicit pool configuration.
	var err error
	app.authenticator, err = cognito.NewService(
		ctx,
		logger.With("component", "cognito_auth"),
		cfg.Cognito,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cognito authenticator: %w", err)
	}
	app.tokenVerifier = cognito.NewVerifier(cfg.Cognito)

	logger.Info("application initialized",
		"cognito_region", cfg.Cognito.Region)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/taskboard-api/internal/api"
	apiMiddleware "github.com/phrazzld/taskboard-api/internal/api/middleware"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Reads are public; writes require the user or
// admin role and deletes require admin.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware. The request-scoped logger carries the
	// request ID, so it must come after RequestID.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(logger.Middleware(app.logger))
	r.Use(middleware.Recoverer)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.authenticator, app.logger)
	projectHandler := api.NewProjectHandler(app.projectService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenVerifier)

	writeRoles := apiMiddleware.RequireRole(apiMiddleware.RoleUser, apiMiddleware.RoleAdmin)
	adminOnly := apiMiddleware.RequireRole(apiMiddleware.RoleAdmin)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/login", authHandler.Login)
		r.Get("/auth/diagnostic", authHandler.Diagnostic)

		r.Route("/projects", func(r chi.Router) {
			// Public reads
			r.Get("/", projectHandler.List)
			r.Get("/{projectId}", projectHandler.Get)
			r.Get("/{projectId}/tasks", taskHandler.List)
			r.Get("/{projectId}/tasks/{taskId}", taskHandler.Get)

			// Writes require the user or admin role
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.With(writeRoles).Post("/", projectHandler.Create)
				r.With(writeRoles).Put("/{projectId}", projectHandler.Update)
				r.With(writeRoles).Post("/{projectId}/tasks", taskHandler.Create)
				r.With(writeRoles).Put("/{projectId}/tasks/{taskId}", taskHandler.Update)

				// Deletes require admin
				r.With(adminOnly).Delete("/{projectId}", projectHandler.Delete)
				r.With(adminOnly).Delete("/{projectId}/tasks/{taskId}", taskHandler.Delete)
			})
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

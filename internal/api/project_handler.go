package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/taskboard-api/internal/service"
)

// ProjectHandler handles project-related API requests.
type ProjectHandler struct {
	projectService service.ProjectService
	validator      *validator.Validate
	logger         *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler with the given dependencies.
func NewProjectHandler(projectService service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		validator:      validator.New(),
		logger:         logger,
	}
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.projectService.List(r.Context(), getPageParams(r))
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, page)
}

// Get handles GET /api/projects/{projectId}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "projectId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	project, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, project)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	project, err := h.projectService.Create(r.Context(), service.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, project)
}

// Update handles PUT /api/projects/{projectId}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "projectId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	var req ProjectRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	project, err := h.projectService.Update(r.Context(), id, service.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, project)
}

// Delete handles DELETE /api/projects/{projectId}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "projectId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// TaskHandler handles task-related API requests. All routes are nested
// under a project: the project ID always comes from the URL path, never
// from the request body.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
		logger:      logger,
	}
}

// getScope extracts the (projectId, taskId) pair from the URL path.
// Writes an error response and returns false if either is invalid.
func (h *TaskHandler) getScope(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	projectID, err := getPathUUID(r, "projectId")
	if err != nil {
		HandleServiceError(w, r, err)
		return uuid.Nil, uuid.Nil, false
	}

	taskID, err := getPathUUID(r, "taskId")
	if err != nil {
		HandleServiceError(w, r, err)
		return uuid.Nil, uuid.Nil, false
	}

	return projectID, taskID, true
}

// List handles GET /api/projects/{projectId}/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := getPathUUID(r, "projectId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	page, err := h.taskService.ListByProject(r.Context(), projectID, getPageParams(r))
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, page)
}

// Get handles GET /api/projects/{projectId}/tasks/{taskId}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	projectID, taskID, ok := h.getScope(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(r.Context(), projectID, taskID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, task)
}

// Create handles POST /api/projects/{projectId}/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, err := getPathUUID(r, "projectId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	var req TaskRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	task, err := h.taskService.Create(r.Context(), projectID, service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, task)
}

// Update handles PUT /api/projects/{projectId}/tasks/{taskId}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID, taskID, ok := h.getScope(w, r)
	if !ok {
		return
	}

	var req TaskRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	task, err := h.taskService.Update(r.Context(), projectID, taskID, service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /api/projects/{projectId}/tasks/{taskId}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID, taskID, ok := h.getScope(w, r)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), projectID, taskID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

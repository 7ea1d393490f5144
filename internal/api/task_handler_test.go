package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// taskEndpointFixture mounts a TaskHandler on a chi router with one seeded
// project and direct store access for assertions.
type taskEndpointFixture struct {
	router       chi.Router
	projectStore *mocks.ProjectStore
	taskStore    *mocks.TaskStore
	project      *domain.Project
}

func newTaskEndpointFixture(t *testing.T) *taskEndpointFixture {
	t.Helper()

	projectStore := mocks.NewProjectStore()
	taskStore := mocks.NewTaskStore()

	project, err := domain.NewProject("Fixture Project", "")
	require.NoError(t, err)
	require.NoError(t, projectStore.Create(context.Background(), project))

	handler := NewTaskHandler(
		service.NewTaskService(taskStore, projectStore, testLogger()),
		testLogger(),
	)

	r := chi.NewRouter()
	r.Route("/api/projects/{projectId}/tasks", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/", handler.Create)
		r.Route("/{taskId}", func(r chi.Router) {
			r.Get("/", handler.Get)
			r.Put("/", handler.Update)
			r.Delete("/", handler.Delete)
		})
	})

	return &taskEndpointFixture{
		router:       r,
		projectStore: projectStore,
		taskStore:    taskStore,
		project:      project,
	}
}

// seedTask inserts a task directly into the store.
func (f *taskEndpointFixture) seedTask(t *testing.T, title string) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(f.project.ID, title, "", "")
	require.NoError(t, err)
	require.NoError(t, f.taskStore.Create(context.Background(), task))
	return task
}

func (f *taskEndpointFixture) tasksPath() string {
	return "/api/projects/" + f.project.ID.String() + "/tasks"
}

func TestTaskCreateEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantTask   bool
		wantTaskSt domain.TaskStatus
	}{
		{
			name: "valid task",
			payload: map[string]interface{}{
				"title":       "Write docs",
				"description": "Cover the API surface",
				"status":      "IN_PROGRESS",
			},
			wantStatus: http.StatusCreated,
			wantTask:   true,
			wantTaskSt: domain.TaskStatusInProgress,
		},
		{
			name: "status defaults to TODO",
			payload: map[string]interface{}{
				"title": "Untracked",
			},
			wantStatus: http.StatusCreated,
			wantTask:   true,
			wantTaskSt: domain.TaskStatusTodo,
		},
		{
			name: "missing title",
			payload: map[string]interface{}{
				"description": "no title",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown status",
			payload: map[string]interface{}{
				"title":  "Bad status",
				"status": "BLOCKED",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newTaskEndpointFixture(t)

			payloadBytes, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", f.tasksPath(), bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()

			f.router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantTask {
				var created domain.Task
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&created))
				assert.Equal(t, tt.payload["title"], created.Title)
				assert.Equal(t, f.project.ID, created.ProjectID)
				assert.Equal(t, tt.wantTaskSt, created.Status)
			}
		})
	}
}

func TestTaskCreateEndpointProjectNotFound(t *testing.T) {
	t.Parallel()

	f := newTaskEndpointFixture(t)

	body := bytes.NewBufferString(`{"title":"Orphan"}`)
	req := httptest.NewRequest(
		"POST",
		"/api/projects/00000000-0000-0000-0000-000000000001/tasks",
		body,
	)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestTaskGetEndpoint(t *testing.T) {
	t.Parallel()

	f := newTaskEndpointFixture(t)
	task := f.seedTask(t, "Scoped")

	// Fetch under the owning project
	req := httptest.NewRequest("GET", f.tasksPath()+"/"+task.ID.String(), nil)
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var fetched domain.Task
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&fetched))
	assert.Equal(t, task.ID, fetched.ID)

	// The same task under a different project is 404: lookups are scoped by
	// the (projectId, taskId) pair.
	otherProject, err := domain.NewProject("Other", "")
	require.NoError(t, err)
	require.NoError(t, f.projectStore.Create(context.Background(), otherProject))

	req = httptest.NewRequest(
		"GET",
		"/api/projects/"+otherProject.ID.String()+"/tasks/"+task.ID.String(),
		nil,
	)
	recorder = httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// Malformed task UUID
	req = httptest.NewRequest("GET", f.tasksPath()+"/not-a-uuid", nil)
	recorder = httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestTaskListEndpoint(t *testing.T) {
	t.Parallel()

	f := newTaskEndpointFixture(t)
	for i := 0; i < 3; i++ {
		f.seedTask(t, "Task")
	}

	req := httptest.NewRequest("GET", f.tasksPath()+"?page=0&size=2", nil)
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var page store.Page[domain.Task]
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&page))
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(3), page.TotalItems)

	// Listing under an unknown project is 404, not an empty page.
	req = httptest.NewRequest("GET", "/api/projects/00000000-0000-0000-0000-000000000001/tasks", nil)
	recorder = httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestTaskUpdateEndpoint(t *testing.T) {
	t.Parallel()

	f := newTaskEndpointFixture(t)
	task := f.seedTask(t, "Original")

	body := bytes.NewBufferString(`{"title":"Updated","status":"DONE"}`)
	req := httptest.NewRequest("PUT", f.tasksPath()+"/"+task.ID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var updated domain.Task
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&updated))
	assert.Equal(t, "Updated", updated.Title)
	assert.Equal(t, domain.TaskStatusDone, updated.Status)

	// Omitting the status keeps the stored value.
	body = bytes.NewBufferString(`{"title":"Updated again"}`)
	req = httptest.NewRequest("PUT", f.tasksPath()+"/"+task.ID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	recorder = httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&updated))
	assert.Equal(t, domain.TaskStatusDone, updated.Status)

	// Updating a missing task is 404.
	body = bytes.NewBufferString(`{"title":"Ghost"}`)
	req = httptest.NewRequest(
		"PUT",
		f.tasksPath()+"/00000000-0000-0000-0000-000000000001",
		body,
	)
	req.Header.Set("Content-Type", "application/json")
	recorder = httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestTaskDeleteEndpoint(t *testing.T) {
	t.Parallel()

	f := newTaskEndpointFixture(t)
	task := f.seedTask(t, "Doomed")

	req := httptest.NewRequest("DELETE", f.tasksPath()+"/"+task.ID.String(), nil)
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)

	// Deleting again is 404.
	req = httptest.NewRequest("DELETE", f.tasksPath()+"/"+task.ID.String(), nil)
	recorder = httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

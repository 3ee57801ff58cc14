package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskapi/taskapi/internal/api/request"
	"github.com/taskapi/taskapi/internal/api/response"
	"github.com/taskapi/taskapi/internal/domain"
	"github.com/taskapi/taskapi/internal/service"
)

// TaskHandler handles task CRUD operations.
type TaskHandler struct {
	svc *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ListTasks handles GET /api/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, tasks)
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTaskRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, domain.NewValidationError([]string{"Invalid JSON body"}))
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		response.Error(w, domain.NewValidationError(errors))
		return
	}

	task, err := h.svc.Create(r.Context(), req.Title)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, task)
}

// GetTask handles GET /api/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, task)
}

// ToggleTask handles PATCH /api/tasks/{id}.
func (h *TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	var req request.ToggleTaskRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, domain.NewValidationError([]string{"Invalid JSON body"}))
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		response.Error(w, domain.NewValidationError(errors))
		return
	}

	task, err := h.svc.SetCompleted(r.Context(), taskID, *req.Completed)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, task)
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Error(w, err)
		return
	}

	response.NoContent(w)
}

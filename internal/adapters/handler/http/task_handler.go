package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kxng0109/taskflow/internal/core/domain"
	"github.com/kxng0109/taskflow/internal/core/ports"
)

type TaskHandler struct {
	service ports.TaskService
	users   ports.UserService
}

func NewTaskHandler(service ports.TaskService, users ports.UserService) *TaskHandler {
	return &TaskHandler{
		service: service,
		users:   users,
	}
}

type taskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	AssigneeID  *uuid.UUID `json:"assignee_id"`
}

type taskResponse struct {
	ID          uuid.UUID           `json:"id"`
	ProjectID   uuid.UUID           `json:"project_id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Status      domain.TaskStatus   `json:"status"`
	Assignee    *domain.UserSummary `json:"assignee,omitempty"`
}

// CreateTask godoc
// @Summary      Creates a task in a project
// @Description  The optional assignee must be a member of the project.
// @Tags         tasks
// @Accept       json
// @Success      201  {object}  taskResponse
// @Failure      400
// @Failure      403
// @Failure      404
// @Router       /projects/{projectID}/tasks [post]
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	currentUser := CurrentUser(r.Context())
	if currentUser == nil {
		unauthorized(w)
		return
	}

	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	input, ok := h.decodeTaskInput(w, r)
	if !ok {
		return
	}

	task, err := h.service.Create(r.Context(), projectID, input, currentUser)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.toResponse(r, task)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// ListTasks godoc
// @Summary      Lists the tasks of a project
// @Tags         tasks
// @Success      200  {array}  taskResponse
// @Failure      403
// @Failure      404
// @Router       /projects/{projectID}/tasks [get]
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	currentUser := CurrentUser(r.Context())
	if currentUser == nil {
		unauthorized(w)
		return
	}

	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	tasks, err := h.service.ListForProject(r.Context(), projectID, currentUser)
	if err != nil {
		writeError(w, err)
		return
	}

	responses := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp, err := h.toResponse(r, task)
		if err != nil {
			writeError(w, err)
			return
		}
		responses = append(responses, resp)
	}

	writeJSON(w, http.StatusOK, responses)
}

// GetTask godoc
// @Summary      Fetches a single task through its project
// @Description  Requesting a task through a project it does not belong to is rejected.
// @Tags         tasks
// @Success      200  {object}  taskResponse
// @Failure      403
// @Failure      404
// @Router       /projects/{projectID}/tasks/{taskID} [get]
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	currentUser := CurrentUser(r.Context())
	if currentUser == nil {
		unauthorized(w)
		return
	}

	projectID, taskID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	task, err := h.service.Get(r.Context(), projectID, taskID, currentUser)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.toResponse(r, task)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// UpdateTask godoc
// @Summary      Updates a task
// @Description  A null assignee clears the assignment; reassigning the current assignee is a no-op.
// @Tags         tasks
// @Accept       json
// @Success      200  {object}  taskResponse
// @Failure      400
// @Failure      403
// @Failure      404
// @Router       /projects/{projectID}/tasks/{taskID} [put]
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	currentUser := CurrentUser(r.Context())
	if currentUser == nil {
		unauthorized(w)
		return
	}

	projectID, taskID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	input, ok := h.decodeTaskInput(w, r)
	if !ok {
		return
	}

	task, err := h.service.Update(r.Context(), projectID, taskID, input, currentUser)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.toResponse(r, task)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// DeleteTask godoc
// @Summary      Deletes a task
// @Tags         tasks
// @Success      204
// @Failure      403
// @Failure      404
// @Router       /projects/{projectID}/tasks/{taskID} [delete]
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	currentUser := CurrentUser(r.Context())
	if currentUser == nil {
		unauthorized(w)
		return
	}

	projectID, taskID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), projectID, taskID, currentUser); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) pathIDs(w http.ResponseWriter, r *http.Request) (projectID, taskID uuid.UUID, ok bool) {
	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}

	taskID, err = uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}

	return projectID, taskID, true
}

func (h *TaskHandler) decodeTaskInput(w http.ResponseWriter, r *http.Request) (ports.TaskInput, bool) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return ports.TaskInput{}, false
	}

	if errs := validateTask(req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return ports.TaskInput{}, false
	}

	status, err := domain.ParseTaskStatus(req.Status)
	if err != nil {
		writeError(w, err)
		return ports.TaskInput{}, false
	}

	return ports.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		AssigneeID:  req.AssigneeID,
	}, true
}

func (h *TaskHandler) toResponse(r *http.Request, task *domain.Task) (taskResponse, error) {
	resp := taskResponse{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
	}

	if task.AssigneeID != nil {
		assignee, err := h.users.GetByID(r.Context(), *task.AssigneeID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return resp, nil
			}
			return taskResponse{}, err
		}
		summary := assignee.Summary()
		resp.Assignee = &summary
	}

	return resp, nil
}

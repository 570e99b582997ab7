package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kxng0109/taskflow/internal/core/domain"
	"github.com/kxng0109/taskflow/internal/core/ports"
)

type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		service: service,
	}
}

type projectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type addMemberRequest struct {
	Email string `json:"email"`
}

type projectResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Members     []domain.UserSummary `json:"members"`
}

// CreateProject godoc
// @Summary      Creates a project
// @Description  The creator becomes the sole member of the new project.
// @Tags         projects
// @Accept       json
// @Success      201  {object}  projectResponse
// @Failure      400
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	currentUser := CurrentUser(r.Context())
	if currentUser == nil {
		unauthorized(w)
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if errs := validateProject(req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	project, err := h.service.Create(r.Context(), ports.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
	}, currentUser)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, projectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Members:     []domain.UserSummary{currentUser.Summary()},
	})
}

// ListProjects godoc
// @Summary      Lists the projects the current user is a member of
// @Tags         projects
// @Success      200  {array}  projectResponse
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	currentUser := CurrentUser(r.Context())
	if currentUser == nil {
		unauthorized(w)
		return
	}

	projects, err := h.service.ListForUser(r.Context(), currentUser)
	if err != nil {
		writeError(w, err)
		return
	}

	responses := make([]projectResponse, 0, len(projects))
	for _, project := range projects {
		resp, err := h.toResponse(r, project)
		if err != nil {
			writeError(w, err)
			return
		}
		responses = append(responses, resp)
	}

	writeJSON(w, http.StatusOK, responses)
}

// GetProject godoc
// @Summary      Fetches a single project
// @Tags         projects
// @Success      200  {object}  projectResponse
// @Failure      403
// @Failure      404
// @Router       /projects/{projectID} [get]
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
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

	project, err := h.service.Get(r.Context(), projectID, currentUser)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.toResponse(r, project)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// UpdateProject godoc
// @Summary      Updates a project's name and description
// @Tags         projects
// @Accept       json
// @Success      200  {object}  projectResponse
// @Failure      403
// @Failure      404
// @Router       /projects/{projectID} [put]
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
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

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if errs := validateProject(req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	project, err := h.service.Update(r.Context(), projectID, ports.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
	}, currentUser)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.toResponse(r, project)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// DeleteProject godoc
// @Summary      Deletes a project and its tasks
// @Tags         projects
// @Success      204
// @Failure      403
// @Failure      404
// @Router       /projects/{projectID} [delete]
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.Delete(r.Context(), projectID, currentUser); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddMember godoc
// @Summary      Adds a member to a project by email
// @Tags         projects
// @Accept       json
// @Success      201  {object}  projectResponse
// @Failure      403
// @Failure      404
// @Failure      409
// @Router       /projects/{projectID}/members [post]
func (h *ProjectHandler) AddMember(w http.ResponseWriter, r *http.Request) {
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

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if errs := validateAddMember(req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	project, err := h.service.AddMember(r.Context(), projectID, req.Email, currentUser)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.toResponse(r, project)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *ProjectHandler) toResponse(r *http.Request, project *domain.Project) (projectResponse, error) {
	members, err := h.service.Members(r.Context(), project.ID)
	if err != nil {
		return projectResponse{}, err
	}

	summaries := make([]domain.UserSummary, 0, len(members))
	for _, member := range members {
		summaries = append(summaries, member.Summary())
	}

	return projectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Members:     summaries,
	}, nil
}

package http

import (
	"net/http"

	"github.com/kxng0109/taskflow/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// GetMe godoc
// @Summary      Returns the authenticated user
// @Tags         users
// @Success      200
// @Failure      401
// @Router       /me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	current := CurrentUser(r.Context())
	if current == nil {
		unauthorized(w)
		return
	}

	user, err := h.service.GetByID(r.Context(), current.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

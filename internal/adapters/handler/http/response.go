package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kxng0109/taskflow/internal/core/domain"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError translates domain errors into HTTP statuses: authentication
// failures are 401, authorization failures 403, missing entities 404,
// duplicates 409. Anything unclassified becomes a generic 500 so internal
// details never reach the client.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrNotProjectMember),
		errors.Is(err, domain.ErrTaskNotInProject),
		errors.Is(err, domain.ErrAssigneeNotMember):
		writeJSON(w, http.StatusForbidden, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrTaskNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAlreadyMember):
		writeJSON(w, http.StatusConflict, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidTaskStatus):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: domain.ErrInternal.Error()})
	}
}

// writeValidationErrors surfaces per-field messages as a 400 body.
func writeValidationErrors(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, fields)
}

package http

import (
	"net/mail"
	"strings"

	"github.com/kxng0109/taskflow/internal/core/domain"
)

// Request validation happens here, before the core sees any input. Each
// function returns a field -> message map; an empty map means valid.

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func validateRegistration(req registerRequest) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name cannot be empty"
	}
	if req.Email == "" {
		errs["email"] = "Email cannot be blank"
	} else if !validEmail(req.Email) {
		errs["email"] = "Must be a valid email format"
	}
	if req.Password == "" {
		errs["password"] = "Password cannot be blank"
	} else if len(req.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters long"
	}
	return errs
}

func validateLogin(req loginRequest) map[string]string {
	errs := map[string]string{}
	if req.Email == "" {
		errs["email"] = "Email cannot be blank"
	} else if !validEmail(req.Email) {
		errs["email"] = "Must be a valid email format"
	}
	if req.Password == "" {
		errs["password"] = "Password can not be empty"
	}
	return errs
}

func validateProject(req projectRequest) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name cannot be blank"
	} else if len(req.Name) > 100 {
		errs["name"] = "Name must be at most 100 characters long"
	}
	return errs
}

func validateAddMember(req addMemberRequest) map[string]string {
	errs := map[string]string{}
	if req.Email == "" {
		errs["email"] = "Email cannot be blank"
	} else if !validEmail(req.Email) {
		errs["email"] = "Must be a valid email format"
	}
	return errs
}

func validateTask(req taskRequest) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(req.Title) == "" {
		errs["title"] = "Title cannot be blank"
	} else if len(req.Title) > 100 {
		errs["title"] = "Title must be at most 100 characters long"
	}
	if req.Status == "" {
		errs["status"] = "Status cannot be blank"
	} else if _, err := domain.ParseTaskStatus(req.Status); err != nil {
		errs["status"] = "Status must be one of TODO, IN_PROGRESS, DONE"
	}
	return errs
}

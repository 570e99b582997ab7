package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with that email already exists")

	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")

	ErrNotProjectMember  = errors.New("you are not a member of this project")
	ErrTaskNotInProject  = errors.New("this task does not belong to this project")
	ErrAssigneeNotMember = errors.New("cannot assign task to a user who is not a member of this project")
	ErrAlreadyMember     = errors.New("user is already a member of this project")

	ErrInvalidTaskStatus = errors.New("invalid task status")

	ErrTokenMalformed   = errors.New("malformed token")
	ErrTokenExpired     = errors.New("expired token")
	ErrTokenSignature   = errors.New("invalid token signature")
	ErrTokenUnsupported = errors.New("unsupported token")

	ErrInternal = errors.New("internal server error")
)

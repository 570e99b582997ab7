package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kxng0109/taskflow/internal/core/domain"
	"github.com/kxng0109/taskflow/internal/core/ports"
)

// RequireProjectMember rejects with ErrNotProjectMember unless user is in the
// project's member set.
func RequireProjectMember(project *domain.Project, user *domain.User) error {
	if !project.HasMember(user.ID) {
		return domain.ErrNotProjectMember
	}
	return nil
}

// RequireTaskAccess gates access to a task reached through a project path.
// The cross-project check runs first so a task requested through the wrong
// project is rejected with a distinct forbidden error, not leaked as found
// or hidden as not-found.
func RequireTaskAccess(project *domain.Project, task *domain.Task, user *domain.User) error {
	if task.ProjectID != project.ID {
		return domain.ErrTaskNotInProject
	}
	return RequireProjectMember(project, user)
}

// Authorizer resolves candidate users for membership-sensitive operations.
// It holds no state beyond the user repository and is safe for concurrent use.
type Authorizer struct {
	users ports.UserRepository
}

func NewAuthorizer(users ports.UserRepository) *Authorizer {
	return &Authorizer{users: users}
}

// ValidateAssignee resolves a candidate assignee and requires them to be a
// member of the project. Runs on task creation and on reassignment.
func (a *Authorizer) ValidateAssignee(ctx context.Context, project *domain.Project, userID uuid.UUID) (*domain.User, error) {
	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if !project.HasMember(user.ID) {
		return nil, domain.ErrAssigneeNotMember
	}

	return user, nil
}

// GuardAddMember resolves the invitee by email and rejects a duplicate invite
// with ErrAlreadyMember.
func (a *Authorizer) GuardAddMember(ctx context.Context, project *domain.Project, email string) (*domain.User, error) {
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if project.HasMember(user.ID) {
		return nil, domain.ErrAlreadyMember
	}

	return user, nil
}

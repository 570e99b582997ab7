package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxng0109/taskflow/internal/core/domain"
)

func TestRequireProjectMember(t *testing.T) {
	member := &domain.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	outsider := &domain.User{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"}

	project := &domain.Project{ID: uuid.New(), Name: "Apollo", MemberIDs: []uuid.UUID{member.ID}}

	assert.NoError(t, RequireProjectMember(project, member))
	assert.ErrorIs(t, RequireProjectMember(project, outsider), domain.ErrNotProjectMember)

	empty := &domain.Project{ID: uuid.New(), Name: "Ghost"}
	assert.ErrorIs(t, RequireProjectMember(empty, member), domain.ErrNotProjectMember)
}

func TestRequireTaskAccess_CrossProject(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	p1 := &domain.Project{ID: uuid.New(), Name: "P1", MemberIDs: []uuid.UUID{user.ID}}
	p2 := &domain.Project{ID: uuid.New(), Name: "P2", MemberIDs: []uuid.UUID{user.ID}}
	task := &domain.Task{ID: uuid.New(), ProjectID: p1.ID, Title: "Deploy"}

	assert.NoError(t, RequireTaskAccess(p1, task, user))

	// Membership of both projects does not allow reaching the task through
	// the wrong one.
	err := RequireTaskAccess(p2, task, user)
	assert.ErrorIs(t, err, domain.ErrTaskNotInProject)
}

func TestRequireTaskAccess_NonMember(t *testing.T) {
	outsider := &domain.User{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"}

	project := &domain.Project{ID: uuid.New(), Name: "P1", MemberIDs: []uuid.UUID{uuid.New()}}
	task := &domain.Task{ID: uuid.New(), ProjectID: project.ID, Title: "Deploy"}

	assert.ErrorIs(t, RequireTaskAccess(project, task, outsider), domain.ErrNotProjectMember)
}

func TestValidateAssignee(t *testing.T) {
	ctx := context.Background()

	member := &domain.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	nonMember := &domain.User{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"}
	users := newMemUserRepo(member, nonMember)
	authorizer := NewAuthorizer(users)

	project := &domain.Project{ID: uuid.New(), Name: "Apollo", MemberIDs: []uuid.UUID{member.ID}}

	got, err := authorizer.ValidateAssignee(ctx, project, member.ID)
	require.NoError(t, err)
	assert.Equal(t, member.ID, got.ID)

	_, err = authorizer.ValidateAssignee(ctx, project, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = authorizer.ValidateAssignee(ctx, project, nonMember.ID)
	assert.ErrorIs(t, err, domain.ErrAssigneeNotMember)
}

func TestGuardAddMember(t *testing.T) {
	ctx := context.Background()

	member := &domain.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	invitee := &domain.User{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"}
	users := newMemUserRepo(member, invitee)
	authorizer := NewAuthorizer(users)

	project := &domain.Project{ID: uuid.New(), Name: "Apollo", MemberIDs: []uuid.UUID{member.ID}}

	got, err := authorizer.GuardAddMember(ctx, project, invitee.Email)
	require.NoError(t, err)
	assert.Equal(t, invitee.ID, got.ID)

	_, err = authorizer.GuardAddMember(ctx, project, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = authorizer.GuardAddMember(ctx, project, member.Email)
	assert.ErrorIs(t, err, domain.ErrAlreadyMember)
}

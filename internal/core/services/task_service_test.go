package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxng0109/taskflow/internal/core/domain"
	"github.com/kxng0109/taskflow/internal/core/ports"
)

type taskFixture struct {
	svc      ports.TaskService
	users    *memUserRepo
	projects *memProjectRepo
	tasks    *memTaskRepo
	alice    *domain.User
	bob      *domain.User
	project  *domain.Project
}

// alice is a member of the project, bob exists but is not.
func newTaskFixture() *taskFixture {
	alice := &domain.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	bob := &domain.User{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"}
	users := newMemUserRepo(alice, bob)

	project := &domain.Project{ID: uuid.New(), Name: "Apollo", MemberIDs: []uuid.UUID{alice.ID}}
	projects := newMemProjectRepo(users, project)
	tasks := newMemTaskRepo()

	return &taskFixture{
		svc:      NewTaskService(tasks, projects, NewAuthorizer(users)),
		users:    users,
		projects: projects,
		tasks:    tasks,
		alice:    alice,
		bob:      bob,
		project:  project,
	}
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture()

	task, err := f.svc.Create(ctx, f.project.ID, ports.TaskInput{
		Title:  "Deploy",
		Status: domain.StatusTodo,
	}, f.alice)
	require.NoError(t, err)
	assert.Equal(t, f.project.ID, task.ProjectID)
	assert.Nil(t, task.AssigneeID)
}

func TestCreateTask_NonMemberRejected(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture()

	_, err := f.svc.Create(ctx, f.project.ID, ports.TaskInput{Title: "Deploy", Status: domain.StatusTodo}, f.bob)
	assert.ErrorIs(t, err, domain.ErrNotProjectMember)
}

func TestCreateTask_AssigneeValidation(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture()

	// bob exists but is not a member
	_, err := f.svc.Create(ctx, f.project.ID, ports.TaskInput{
		Title:      "Deploy",
		Status:     domain.StatusTodo,
		AssigneeID: &f.bob.ID,
	}, f.alice)
	assert.ErrorIs(t, err, domain.ErrAssigneeNotMember)

	unknown := uuid.New()
	_, err = f.svc.Create(ctx, f.project.ID, ports.TaskInput{
		Title:      "Deploy",
		Status:     domain.StatusTodo,
		AssigneeID: &unknown,
	}, f.alice)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	task, err := f.svc.Create(ctx, f.project.ID, ports.TaskInput{
		Title:      "Deploy",
		Status:     domain.StatusTodo,
		AssigneeID: &f.alice.ID,
	}, f.alice)
	require.NoError(t, err)
	require.NotNil(t, task.AssigneeID)
	assert.Equal(t, f.alice.ID, *task.AssigneeID)
}

func TestGetTask_WrongProjectPath(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture()

	other := &domain.Project{ID: uuid.New(), Name: "Gemini", MemberIDs: []uuid.UUID{f.alice.ID}}
	require.NoError(t, f.projects.Save(ctx, other))

	task, err := f.svc.Create(ctx, f.project.ID, ports.TaskInput{Title: "Deploy", Status: domain.StatusTodo}, f.alice)
	require.NoError(t, err)

	// Correct id, wrong project path: forbidden, not not-found.
	_, err = f.svc.Get(ctx, other.ID, task.ID, f.alice)
	assert.ErrorIs(t, err, domain.ErrTaskNotInProject)

	got, err := f.svc.Get(ctx, f.project.ID, task.ID, f.alice)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
}

func TestUpdateTask_ReassignSameAssigneeIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture()

	task, err := f.svc.Create(ctx, f.project.ID, ports.TaskInput{
		Title:      "Deploy",
		Status:     domain.StatusTodo,
		AssigneeID: &f.alice.ID,
	}, f.alice)
	require.NoError(t, err)

	// Submitting the current assignee again succeeds without revalidation.
	updated, err := f.svc.Update(ctx, f.project.ID, task.ID, ports.TaskInput{
		Title:      "Deploy",
		Status:     domain.StatusInProgress,
		AssigneeID: &f.alice.ID,
	}, f.alice)
	require.NoError(t, err)
	require.NotNil(t, updated.AssigneeID)
	assert.Equal(t, f.alice.ID, *updated.AssigneeID)
	assert.Equal(t, domain.StatusInProgress, updated.Status)
}

func TestUpdateTask_Assignee(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture()

	task, err := f.svc.Create(ctx, f.project.ID, ports.TaskInput{
		Title:      "Deploy",
		Status:     domain.StatusTodo,
		AssigneeID: &f.alice.ID,
	}, f.alice)
	require.NoError(t, err)

	// Reassigning to a non-member is rejected.
	_, err = f.svc.Update(ctx, f.project.ID, task.ID, ports.TaskInput{
		Title:      "Deploy",
		Status:     domain.StatusTodo,
		AssigneeID: &f.bob.ID,
	}, f.alice)
	assert.ErrorIs(t, err, domain.ErrAssigneeNotMember)

	// A null assignee clears the assignment.
	updated, err := f.svc.Update(ctx, f.project.ID, task.ID, ports.TaskInput{
		Title:  "Deploy",
		Status: domain.StatusDone,
	}, f.alice)
	require.NoError(t, err)
	assert.Nil(t, updated.AssigneeID)
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture()

	task, err := f.svc.Create(ctx, f.project.ID, ports.TaskInput{Title: "Deploy", Status: domain.StatusTodo}, f.alice)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, f.project.ID, task.ID, f.alice))

	_, err = f.svc.Get(ctx, f.project.ID, task.ID, f.alice)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

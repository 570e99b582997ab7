package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kxng0109/taskflow/internal/core/domain"
	"github.com/kxng0109/taskflow/internal/core/ports"
)

type taskService struct {
	taskRepo    ports.TaskRepository
	projectRepo ports.ProjectRepository
	authorizer  *Authorizer
}

func NewTaskService(taskRepo ports.TaskRepository, projectRepo ports.ProjectRepository, authorizer *Authorizer) ports.TaskService {
	return &taskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		authorizer:  authorizer,
	}
}

func (s *taskService) Create(ctx context.Context, projectID uuid.UUID, input ports.TaskInput, currentUser *domain.User) (*domain.Task, error) {
	project, err := s.memberProject(ctx, projectID, currentUser)
	if err != nil {
		return nil, err
	}

	if input.AssigneeID != nil {
		if _, err := s.authorizer.ValidateAssignee(ctx, project, *input.AssigneeID); err != nil {
			return nil, err
		}
	}

	task := &domain.Task{
		ID:          uuid.New(),
		ProjectID:   project.ID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		AssigneeID:  input.AssigneeID,
		CreatedAt:   time.Now(),
	}

	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) Get(ctx context.Context, projectID, taskID uuid.UUID, currentUser *domain.User) (*domain.Task, error) {
	_, task, err := s.accessibleTask(ctx, projectID, taskID, currentUser)
	return task, err
}

func (s *taskService) ListForProject(ctx context.Context, projectID uuid.UUID, currentUser *domain.User) ([]*domain.Task, error) {
	project, err := s.memberProject(ctx, projectID, currentUser)
	if err != nil {
		return nil, err
	}

	return s.taskRepo.ListByProject(ctx, project.ID)
}

func (s *taskService) Update(ctx context.Context, projectID, taskID uuid.UUID, input ports.TaskInput, currentUser *domain.User) (*domain.Task, error) {
	project, task, err := s.accessibleTask(ctx, projectID, taskID, currentUser)
	if err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status

	switch {
	case input.AssigneeID == nil:
		task.AssigneeID = nil
	case task.AssigneeID != nil && *task.AssigneeID == *input.AssigneeID:
		// reassigning the current assignee is a no-op
	default:
		if _, err := s.authorizer.ValidateAssignee(ctx, project, *input.AssigneeID); err != nil {
			return nil, err
		}
		task.AssigneeID = input.AssigneeID
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) Delete(ctx context.Context, projectID, taskID uuid.UUID, currentUser *domain.User) error {
	_, task, err := s.accessibleTask(ctx, projectID, taskID, currentUser)
	if err != nil {
		return err
	}

	return s.taskRepo.Delete(ctx, task.ID)
}

func (s *taskService) memberProject(ctx context.Context, projectID uuid.UUID, currentUser *domain.User) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := RequireProjectMember(project, currentUser); err != nil {
		return nil, err
	}

	return project, nil
}

// accessibleTask loads the project and task and applies the cascading task
// access rule: the task must belong to the requested project and the current
// user must be a member of that project.
func (s *taskService) accessibleTask(ctx context.Context, projectID, taskID uuid.UUID, currentUser *domain.User) (*domain.Project, *domain.Task, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}

	if err := RequireTaskAccess(project, task, currentUser); err != nil {
		return nil, nil, err
	}

	return project, task, nil
}

package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/kxng0109/taskflow/internal/core/domain"
)

type TaskRepository interface {
	Save(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	AssigneeID  *uuid.UUID
}

type TaskService interface {
	Create(ctx context.Context, projectID uuid.UUID, input TaskInput, currentUser *domain.User) (*domain.Task, error)
	Get(ctx context.Context, projectID, taskID uuid.UUID, currentUser *domain.User) (*domain.Task, error)
	ListForProject(ctx context.Context, projectID uuid.UUID, currentUser *domain.User) ([]*domain.Task, error)
	Update(ctx context.Context, projectID, taskID uuid.UUID, input TaskInput, currentUser *domain.User) (*domain.Task, error)
	Delete(ctx context.Context, projectID, taskID uuid.UUID, currentUser *domain.User) error
}

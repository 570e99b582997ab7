package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/kxng0109/taskflow/internal/core/domain"
)

type ProjectRepository interface {
	Save(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, projectID, userID uuid.UUID) error
	ListMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.User, error)
}

type ProjectInput struct {
	Name        string
	Description string
}

type ProjectService interface {
	Create(ctx context.Context, input ProjectInput, currentUser *domain.User) (*domain.Project, error)
	Get(ctx context.Context, projectID uuid.UUID, currentUser *domain.User) (*domain.Project, error)
	ListForUser(ctx context.Context, currentUser *domain.User) ([]*domain.Project, error)
	Update(ctx context.Context, projectID uuid.UUID, input ProjectInput, currentUser *domain.User) (*domain.Project, error)
	Delete(ctx context.Context, projectID uuid.UUID, currentUser *domain.User) error
	AddMember(ctx context.Context, projectID uuid.UUID, email string, currentUser *domain.User) (*domain.Project, error)
	Members(ctx context.Context, projectID uuid.UUID) ([]*domain.User, error)
}

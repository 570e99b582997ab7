package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kxng0109/taskflow/internal/core/domain"
	"github.com/kxng0109/taskflow/internal/core/ports"
)

type projectService struct {
	repo       ports.ProjectRepository
	authorizer *Authorizer
}

func NewProjectService(repo ports.ProjectRepository, authorizer *Authorizer) ports.ProjectService {
	return &projectService{
		repo:       repo,
		authorizer: authorizer,
	}
}

// Create stores a new project with the creator as its sole member.
func (s *projectService) Create(ctx context.Context, input ports.ProjectInput, currentUser *domain.User) (*domain.Project, error) {
	project := &domain.Project{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		MemberIDs:   []uuid.UUID{currentUser.ID},
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Save(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) Get(ctx context.Context, projectID uuid.UUID, currentUser *domain.User) (*domain.Project, error) {
	return s.memberProject(ctx, projectID, currentUser)
}

func (s *projectService) ListForUser(ctx context.Context, currentUser *domain.User) ([]*domain.Project, error) {
	return s.repo.ListForUser(ctx, currentUser.ID)
}

func (s *projectService) Update(ctx context.Context, projectID uuid.UUID, input ports.ProjectInput, currentUser *domain.User) (*domain.Project, error) {
	project, err := s.memberProject(ctx, projectID, currentUser)
	if err != nil {
		return nil, err
	}

	project.Name = input.Name
	if input.Description != "" {
		project.Description = input.Description
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) Delete(ctx context.Context, projectID uuid.UUID, currentUser *domain.User) error {
	project, err := s.memberProject(ctx, projectID, currentUser)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, project.ID)
}

func (s *projectService) AddMember(ctx context.Context, projectID uuid.UUID, email string, currentUser *domain.User) (*domain.Project, error) {
	project, err := s.memberProject(ctx, projectID, currentUser)
	if err != nil {
		return nil, err
	}

	userToAdd, err := s.authorizer.GuardAddMember(ctx, project, email)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AddMember(ctx, project.ID, userToAdd.ID); err != nil {
		return nil, err
	}

	project.MemberIDs = append(project.MemberIDs, userToAdd.ID)
	return project, nil
}

func (s *projectService) Members(ctx context.Context, projectID uuid.UUID) ([]*domain.User, error) {
	return s.repo.ListMembers(ctx, projectID)
}

// memberProject loads a project and rejects non-members. Every read and write
// on a project funnels through this check.
func (s *projectService) memberProject(ctx context.Context, projectID uuid.UUID, currentUser *domain.User) (*domain.Project, error) {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := RequireProjectMember(project, currentUser); err != nil {
		return nil, err
	}

	return project, nil
}

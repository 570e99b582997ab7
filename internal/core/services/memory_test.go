package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kxng0109/taskflow/internal/core/domain"
)

// In-memory repositories backing the service tests. They implement the same
// contracts as the postgres adapters, including nil-for-missing users and
// not-found sentinels for projects and tasks.

type memUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newMemUserRepo(users ...*domain.User) *memUserRepo {
	repo := &memUserRepo{users: map[uuid.UUID]*domain.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

type memProjectRepo struct {
	projects map[uuid.UUID]*domain.Project
	users    *memUserRepo
}

func newMemProjectRepo(users *memUserRepo, projects ...*domain.Project) *memProjectRepo {
	repo := &memProjectRepo{projects: map[uuid.UUID]*domain.Project{}, users: users}
	for _, p := range projects {
		repo.projects[p.ID] = p
	}
	return repo
}

func (r *memProjectRepo) Save(_ context.Context, project *domain.Project) error {
	r.projects[project.ID] = project
	return nil
}

func (r *memProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	if p, ok := r.projects[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *memProjectRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	var projects []*domain.Project
	for _, p := range r.projects {
		if p.HasMember(userID) {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (r *memProjectRepo) Update(_ context.Context, project *domain.Project) error {
	if _, ok := r.projects[project.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	r.projects[project.ID] = project
	return nil
}

func (r *memProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *memProjectRepo) AddMember(_ context.Context, projectID, userID uuid.UUID) error {
	p, ok := r.projects[projectID]
	if !ok {
		return domain.ErrProjectNotFound
	}
	if p.HasMember(userID) {
		return domain.ErrAlreadyMember
	}
	p.MemberIDs = append(p.MemberIDs, userID)
	return nil
}

func (r *memProjectRepo) ListMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.User, error) {
	p, ok := r.projects[projectID]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	var members []*domain.User
	for _, id := range p.MemberIDs {
		if u, _ := r.users.GetByID(ctx, id); u != nil {
			members = append(members, u)
		}
	}
	return members, nil
}

type memTaskRepo struct {
	tasks map[uuid.UUID]*domain.Task
}

func newMemTaskRepo(tasks ...*domain.Task) *memTaskRepo {
	repo := &memTaskRepo{tasks: map[uuid.UUID]*domain.Task{}}
	for _, task := range tasks {
		repo.tasks[task.ID] = task
	}
	return repo
}

func (r *memTaskRepo) Save(_ context.Context, task *domain.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Task, error) {
	if task, ok := r.tasks[id]; ok {
		return task, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (r *memTaskRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for _, task := range r.tasks {
		if task.ProjectID == projectID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (r *memTaskRepo) Update(_ context.Context, task *domain.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	r.tasks[task.ID] = task
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

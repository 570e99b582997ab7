package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/kxng0109/taskflow/internal/core/domain"
	"github.com/kxng0109/taskflow/internal/core/ports"
)

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) ports.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

func (r *projectRepository) Save(ctx context.Context, project *domain.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryProject := `
		INSERT INTO projects (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err = tx.ExecContext(ctx, queryProject, project.ID, project.Name, project.Description, project.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	queryMember := `
		INSERT INTO project_members (project_id, user_id)
		VALUES ($1, $2)
	`
	for _, memberID := range project.MemberIDs {
		if _, err := tx.ExecContext(ctx, queryMember, project.ID, memberID); err != nil {
			return fmt.Errorf("failed to insert member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	queryProject := `
		SELECT id, name, description, created_at
		FROM projects
		WHERE id = $1
	`

	var project domain.Project
	err := r.db.QueryRowContext(ctx, queryProject, id).Scan(
		&project.ID, &project.Name, &project.Description, &project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	memberIDs, err := r.fetchMemberIDs(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	project.MemberIDs = memberIDs

	return &project, nil
}

func (r *projectRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	query := `
		SELECT p.id, p.name, p.description, p.created_at
		FROM projects p
		JOIN project_members pm ON p.id = pm.project_id
		WHERE pm.user_id = $1
		ORDER BY p.created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(&project.ID, &project.Name, &project.Description, &project.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}

		memberIDs, err := r.fetchMemberIDs(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		project.MemberIDs = memberIDs

		projects = append(projects, &project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}
	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	query := `UPDATE projects SET name = $2, description = $3 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, project.ID, project.Name, project.Description)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepository) AddMember(ctx context.Context, projectID, userID uuid.UUID) error {
	query := `INSERT INTO project_members (project_id, user_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, projectID, userID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadyMember
		}
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

func (r *projectRepository) ListMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.created_at
		FROM users u
		JOIN project_members pm ON u.id = pm.user_id
		WHERE pm.project_id = $1
		ORDER BY u.name
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}
	return members, nil
}

func (r *projectRepository) fetchMemberIDs(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT user_id FROM project_members WHERE project_id = $1`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project members: %w", err)
	}
	defer rows.Close()

	var memberIDs []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan member id: %w", err)
		}
		memberIDs = append(memberIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member ids: %w", err)
	}
	return memberIDs, nil
}

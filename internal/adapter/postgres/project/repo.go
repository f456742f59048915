// Package project implements the Project repository using PostgreSQL.
package project

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mythosengine/backend/internal/adapter/postgres"
	"github.com/mythosengine/backend/internal/domain"
)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var projectColumns = []string{"id", "name", "description", "owner_id", "created_at", "updated_at"}

const (
	getByIDSQL = `SELECT id, name, description, owner_id, created_at, updated_at FROM projects WHERE id = $1`

	createSQL = `
INSERT INTO projects (id, name, description, owner_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING id, name, description, owner_id, created_at, updated_at`

	updateSQL = `
UPDATE projects SET name = $2, description = $3, owner_id = $4, updated_at = $5
WHERE id = $1
RETURNING id, name, description, owner_id, created_at, updated_at`

	// Specialization rows do not cascade from articles, so they go first.
	deletePersonsSQL = `
DELETE FROM persons WHERE article_id IN (SELECT id FROM articles WHERE project_id = $1)`
	deleteSettlementsSQL = `
DELETE FROM settlements WHERE article_id IN (SELECT id FROM articles WHERE project_id = $1)`
	deleteSQL = `
DELETE FROM projects WHERE id = $1
RETURNING id, name, description, owner_id, created_at, updated_at`
)

// GetByID returns a project by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	p, err := scanProject(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return &p, nil
}

// List returns projects matching f, newest first.
func (r *Repo) List(ctx context.Context, f domain.ProjectFilter, page domain.Page) ([]domain.Project, error) {
	page = page.Normalize()

	q := postgres.Builder().
		Select(projectColumns...).
		From("projects").
		OrderBy("created_at DESC", "id").
		Offset(uint64(page.Skip)).
		Limit(uint64(page.Limit))
	if f.Name != "" {
		q = q.Where(postgres.ILikeContains("name", f.Name))
	}
	if f.OwnerID != nil {
		q = q.Where(sq.Eq{"owner_id": *f.OwnerID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list projects: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Create inserts p, assigning an id when it is zero.
func (r *Repo) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	created, err := scanProject(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		p.ID, p.Name, p.Description, p.OwnerID, time.Now().UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return &created, nil
}

// Update replaces the mutable fields of p.
func (r *Repo) Update(ctx context.Context, p domain.Project) (*domain.Project, error) {
	updated, err := scanProject(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateSQL,
		p.ID, p.Name, p.Description, p.OwnerID, time.Now().UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return &updated, nil
}

// Delete removes the project together with its articles, their persons and
// settlements, and its images. Callers run it inside a transaction.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deletePersonsSQL, id); err != nil {
		return nil, postgres.MapDeleteError(err, "project", id)
	}
	if _, err := q.Exec(ctx, deleteSettlementsSQL, id); err != nil {
		return nil, postgres.MapDeleteError(err, "project", id)
	}

	deleted, err := scanProject(q.QueryRow(ctx, deleteSQL, id))
	if err != nil {
		return nil, postgres.MapDeleteError(err, "project", id)
	}
	return &deleted, nil
}

func scanProject(row pgx.Row) (domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mythosengine/backend/internal/adapter/postgres"
	"github.com/mythosengine/backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, username, email, display_name, bio, avatar_url, is_active, created_at, updated_at`

const (
	getByIDSQL       = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	getByUsernameSQL = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	getByEmailSQL    = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

	listSQL = `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id OFFSET $1 LIMIT $2`

	createSQL = `
INSERT INTO users (id, username, email, display_name, bio, avatar_url, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + userColumns

	updateSQL = `
UPDATE users
SET username = $2, email = $3, display_name = $4, bio = $5, avatar_url = $6, is_active = $7, updated_at = $8
WHERE id = $1
RETURNING ` + userColumns

	deleteSQL = `DELETE FROM users WHERE id = $1 RETURNING ` + userColumns

	usernameTakenSQL = `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 AND ($2::uuid IS NULL OR id <> $2))`
	emailTakenSQL    = `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1) AND ($2::uuid IS NULL OR id <> $2))`

	statsSQL = `
SELECT
    (SELECT COUNT(*) FROM articles WHERE author_id = $1),
    (SELECT COUNT(*) FROM projects WHERE owner_id = $1)`
)

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByUsername returns a user by exact username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByUsernameSQL, username)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return &u, nil
}

// GetByEmail returns a user by email, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByEmailSQL, strings.TrimSpace(email))
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return &u, nil
}

// List returns users in creation order.
func (r *Repo) List(ctx context.Context, page domain.Page) ([]domain.User, error) {
	page = page.Normalize()

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listSQL, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create inserts u. ID and timestamps are assigned when zero.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	ts := u.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC().Truncate(time.Microsecond)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		u.ID, u.Username, u.Email, u.DisplayName,
		ptrStringToPgText(u.Bio), ptrStringToPgText(u.AvatarURL), u.IsActive, ts,
	)
	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return &created, nil
}

// Update replaces all mutable fields of u.
func (r *Repo) Update(ctx context.Context, u domain.User) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateSQL,
		u.ID, u.Username, u.Email, u.DisplayName,
		ptrStringToPgText(u.Bio), ptrStringToPgText(u.AvatarURL), u.IsActive,
		time.Now().UTC().Truncate(time.Microsecond),
	)
	updated, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return &updated, nil
}

// Delete removes a user and returns the deleted row.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, deleteSQL, id)
	deleted, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapDeleteError(err, "user", id)
	}
	return &deleted, nil
}

// IsUsernameTaken reports whether another user (not excludeID) has username.
func (r *Repo) IsUsernameTaken(ctx context.Context, username string, excludeID *uuid.UUID) (bool, error) {
	var taken bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, usernameTakenSQL, username, excludeID).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return taken, nil
}

// IsEmailTaken reports whether another user (not excludeID) has email.
func (r *Repo) IsEmailTaken(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	var taken bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, emailTakenSQL, email, excludeID).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return taken, nil
}

// Stats returns the user together with authored article and owned project counts.
func (r *Repo) Stats(ctx context.Context, id uuid.UUID) (*domain.UserStats, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var articles, projects int64
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, statsSQL, id).Scan(&articles, &projects)
	if err != nil {
		return nil, fmt.Errorf("user stats %s: %w", id, err)
	}

	return &domain.UserStats{User: *u, ArticleCount: int(articles), ProjectCount: int(projects)}, nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u         domain.User
		bio       pgtype.Text
		avatarURL pgtype.Text
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.DisplayName, &bio, &avatarURL, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	u.Bio = pgTextToPtr(bio)
	u.AvatarURL = pgTextToPtr(avatarURL)
	return u, nil
}

func pgTextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}

func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

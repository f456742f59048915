package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mythosengine/backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser inserts an active user with unique username and email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:          uuid.New(),
		Username:    "user_" + suffix,
		Email:       "user-" + suffix + "@example.com",
		DisplayName: "Test User " + suffix,
		IsActive:    true,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, display_name, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.DisplayName, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedProject inserts a project owned by ownerID (may be nil).
func SeedProject(t *testing.T, pool *pgxpool.Pool, ownerID *uuid.UUID) domain.Project {
	t.Helper()

	ts := now()
	p := domain.Project{
		ID:        uuid.New(),
		Name:      "World " + uniqueSuffix(),
		OwnerID:   ownerID,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, name, owner_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Name, p.OwnerID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}
	return p
}

// SeedArticle inserts a general article with the given visibility and author.
func SeedArticle(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, authorID *uuid.UUID, visibility domain.Visibility) domain.Article {
	t.Helper()

	ts := now()
	a := domain.Article{
		ID:         uuid.New(),
		Title:      "Article " + uniqueSuffix(),
		Content:    domain.NewArticleContent(),
		Type:       domain.ArticleTypeGeneral,
		Visibility: visibility,
		AuthorID:   authorID,
		ProjectID:  projectID,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	content, err := json.Marshal(a.Content)
	if err != nil {
		t.Fatalf("testhelper: SeedArticle marshal: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO articles (id, title, content, article_type, visibility, author_id, project_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.Title, content, string(a.Type), string(a.Visibility), a.AuthorID, a.ProjectID, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArticle: %v", err)
	}
	return a
}

// SeedImage inserts a locally stored image record of size bytes.
func SeedImage(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, size int64) domain.Image {
	t.Helper()

	ts := now()
	filename := uuid.New().String() + ".png"
	img := domain.Image{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFilename: "map.png",
		FilePath:         "/tmp/images/" + filename,
		FileSize:         size,
		MimeType:         "image/png",
		ProjectID:        projectID,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO images (id, filename, original_filename, file_path, file_size, mime_type, project_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		img.ID, img.Filename, img.OriginalFilename, img.FilePath, img.FileSize, img.MimeType, img.ProjectID, img.CreatedAt, img.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedImage: %v", err)
	}
	return img
}

// Package image implements the Image repository using PostgreSQL.
package image

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mythosengine/backend/internal/adapter/postgres"
	"github.com/mythosengine/backend/internal/domain"
)

// Repo provides image persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new image repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const imageColumns = `id, filename, original_filename, file_path, file_size, mime_type,
    width, height, alt_text, is_remote, bucket, project_id, created_at, updated_at`

const (
	getByIDSQL       = `SELECT ` + imageColumns + ` FROM images WHERE id = $1`
	getByFilenameSQL = `SELECT ` + imageColumns + ` FROM images WHERE filename = $1`

	listByProjectSQL = `
SELECT ` + imageColumns + `
FROM images
WHERE project_id = $1
ORDER BY created_at DESC, id
OFFSET $2 LIMIT $3`

	countByProjectSQL = `SELECT COUNT(*) FROM images WHERE project_id = $1`

	usageByProjectSQL = `SELECT COUNT(*), COALESCE(SUM(file_size), 0) FROM images WHERE project_id = $1`

	createSQL = `
INSERT INTO images (id, filename, original_filename, file_path, file_size, mime_type,
                    width, height, alt_text, is_remote, bucket, project_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
RETURNING ` + imageColumns

	updateAltTextSQL = `
UPDATE images SET alt_text = $2, updated_at = $3
WHERE id = $1
RETURNING ` + imageColumns

	deleteSQL = `DELETE FROM images WHERE id = $1 RETURNING ` + imageColumns

	deleteByProjectSQL = `DELETE FROM images WHERE project_id = $1 RETURNING ` + imageColumns
)

// GetByID returns an image record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	img, err := scanImage(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "image", id)
	}
	return &img, nil
}

// GetByFilename returns an image record by its stored filename.
func (r *Repo) GetByFilename(ctx context.Context, filename string) (*domain.Image, error) {
	img, err := scanImage(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByFilenameSQL, filename))
	if err != nil {
		return nil, postgres.MapError(err, "image", uuid.Nil)
	}
	return &img, nil
}

// ListByProject returns a page of a project's images, newest first.
func (r *Repo) ListByProject(ctx context.Context, projectID uuid.UUID, page domain.Page) ([]domain.Image, error) {
	page = page.Normalize()
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByProjectSQL, projectID, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return collectImages(rows)
}

// CountByProject returns the number of images in a project.
func (r *Repo) CountByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countByProjectSQL, projectID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count images: %w", err)
	}
	return int(n), nil
}

// Usage returns image count and total bytes for a project. A project with no
// images reports zeros.
func (r *Repo) Usage(ctx context.Context, projectID uuid.UUID) (domain.StorageUsage, error) {
	usage := domain.StorageUsage{ProjectID: projectID}
	var count, total int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, usageByProjectSQL, projectID).Scan(&count, &total); err != nil {
		return usage, fmt.Errorf("image usage: %w", err)
	}
	usage.TotalImages = int(count)
	usage.TotalSizeBytes = total
	return usage, nil
}

// Create inserts img, assigning an id and timestamps when zero.
func (r *Repo) Create(ctx context.Context, img domain.Image) (*domain.Image, error) {
	if img.ID == uuid.Nil {
		img.ID = uuid.New()
	}
	created, err := scanImage(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		img.ID, img.Filename, img.OriginalFilename, img.FilePath, img.FileSize, img.MimeType,
		ptrIntToPgInt4(img.Width), ptrIntToPgInt4(img.Height), img.AltText, img.IsRemote, img.Bucket,
		img.ProjectID, time.Now().UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return nil, postgres.MapError(err, "image", img.ID)
	}
	return &created, nil
}

// UpdateAltText sets or clears the alt text of an image.
func (r *Repo) UpdateAltText(ctx context.Context, id uuid.UUID, altText *string) (*domain.Image, error) {
	updated, err := scanImage(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateAltTextSQL,
		id, altText, time.Now().UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return nil, postgres.MapError(err, "image", id)
	}
	return &updated, nil
}

// Delete removes an image record and returns it.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	deleted, err := scanImage(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, deleteSQL, id))
	if err != nil {
		return nil, postgres.MapDeleteError(err, "image", id)
	}
	return &deleted, nil
}

// DeleteByProject removes every image record of a project and returns them so
// the caller can clean up the stored files.
func (r *Repo) DeleteByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Image, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, deleteByProjectSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("delete project images: %w", err)
	}
	return collectImages(rows)
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func collectImages(rows pgx.Rows) ([]domain.Image, error) {
	defer rows.Close()

	images := []domain.Image{}
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan image: %w", err)
	}
	return images, nil
}

func scanImage(row pgx.Row) (domain.Image, error) {
	var (
		img           domain.Image
		width, height pgtype.Int4
	)
	err := row.Scan(
		&img.ID, &img.Filename, &img.OriginalFilename, &img.FilePath, &img.FileSize, &img.MimeType,
		&width, &height, &img.AltText, &img.IsRemote, &img.Bucket, &img.ProjectID, &img.CreatedAt, &img.UpdatedAt,
	)
	if err != nil {
		return domain.Image{}, err
	}
	img.Width = pgInt4ToPtr(width)
	img.Height = pgInt4ToPtr(height)
	return img, nil
}

func pgInt4ToPtr(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int32)
	return &n
}

func ptrIntToPgInt4(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true}
}

// Package article implements the Article repository using PostgreSQL.
// Persons and settlements reuse its row mapping for the article half of their
// two-row records.
package article

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mythosengine/backend/internal/adapter/postgres"
	"github.com/mythosengine/backend/internal/domain"
)

// Repo provides article persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new article repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Columns lists the article columns qualified with the "a" alias, in the order
// Row expects them.
var Columns = []string{
	"a.id", "a.title", "a.content", "a.article_type", "a.visibility", "a.author_id",
	"a.project_id", "a.header_image_id", "a.spotify_url", "a.created_at", "a.updated_at",
}

const (
	insertSQL = `
INSERT INTO articles (id, title, content, article_type, visibility, author_id, project_id,
                      header_image_id, spotify_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING id, title, content, article_type, visibility, author_id, project_id,
          header_image_id, spotify_url, created_at, updated_at`

	updateSQL = `
UPDATE articles
SET title = $2, content = $3, article_type = $4, visibility = $5, author_id = $6,
    header_image_id = $7, spotify_url = $8, updated_at = $9
WHERE id = $1
RETURNING id, title, content, article_type, visibility, author_id, project_id,
          header_image_id, spotify_url, created_at, updated_at`

	// fixedTypeSQL returns the article type a person or settlement pins, or
	// NULL for a plain article.
	fixedTypeSQL = `
SELECT CASE
    WHEN EXISTS (SELECT 1 FROM persons WHERE article_id = $1) THEN 'character'
    WHEN EXISTS (SELECT 1 FROM settlements WHERE article_id = $1) THEN 'location'
END`

	deleteSQL = `
DELETE FROM articles WHERE id = $1
RETURNING id, title, content, article_type, visibility, author_id, project_id,
          header_image_id, spotify_url, created_at, updated_at`
)

// GetByID returns an article by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	sql, args, err := postgres.Builder().
		Select(Columns...).
		From("articles a").
		Where(sq.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get article: %w", err)
	}

	var row Row
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(row.Targets()...); err != nil {
		return nil, postgres.MapError(err, "article", id)
	}
	a, err := row.Article()
	if err != nil {
		return nil, fmt.Errorf("article %s: %w", id, err)
	}
	return &a, nil
}

// List returns articles matching f, newest first.
func (r *Repo) List(ctx context.Context, f domain.ArticleFilter, page domain.Page) ([]domain.Article, error) {
	page = page.Normalize()

	q := ApplyFilter(postgres.Builder().Select(Columns...).From("articles a"), f).
		OrderBy("a.created_at DESC", "a.id").
		Offset(uint64(page.Skip)).
		Limit(uint64(page.Limit))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list articles: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		var row Row
		if err := rows.Scan(row.Targets()...); err != nil {
			return nil, fmt.Errorf("list articles: %w", err)
		}
		a, err := row.Article()
		if err != nil {
			return nil, fmt.Errorf("list articles: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ListVisibleForUser returns every article viewerID may see across all projects.
func (r *Repo) ListVisibleForUser(ctx context.Context, viewerID *uuid.UUID, page domain.Page) ([]domain.Article, error) {
	return r.List(ctx, domain.ArticleFilter{Viewer: &domain.Viewer{UserID: viewerID}}, page)
}

// ListPublic returns public articles only.
func (r *Repo) ListPublic(ctx context.Context, page domain.Page) ([]domain.Article, error) {
	v := domain.VisibilityPublic
	return r.List(ctx, domain.ArticleFilter{Visibility: &v}, page)
}

// Create inserts a, assigning an id and timestamps when zero.
func (r *Repo) Create(ctx context.Context, a domain.Article) (*domain.Article, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	content, err := json.Marshal(a.Content)
	if err != nil {
		return nil, fmt.Errorf("marshal article content: %w", err)
	}

	var row Row
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, insertSQL,
		a.ID, a.Title, content, string(a.Type), string(a.Visibility), a.AuthorID, a.ProjectID,
		a.HeaderImageID, a.SpotifyURL, time.Now().UTC().Truncate(time.Microsecond),
	).Scan(row.Targets()...)
	if err != nil {
		return nil, postgres.MapError(err, "article", a.ID)
	}
	created, err := row.Article()
	if err != nil {
		return nil, fmt.Errorf("article %s: %w", a.ID, err)
	}
	return &created, nil
}

// Update replaces the mutable fields of a. The project never changes, and the
// type of an article extended by a person or settlement cannot change either:
// such an update fails with a validation error and writes nothing.
func (r *Repo) Update(ctx context.Context, a domain.Article) (*domain.Article, error) {
	content, err := json.Marshal(a.Content)
	if err != nil {
		return nil, fmt.Errorf("marshal article content: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var fixed *string
	if err := q.QueryRow(ctx, fixedTypeSQL, a.ID).Scan(&fixed); err != nil {
		return nil, fmt.Errorf("article %s: check specialization: %w", a.ID, err)
	}
	if fixed != nil && *fixed != string(a.Type) {
		return nil, domain.NewValidationError("article_type",
			fmt.Sprintf("must stay %s while a %s record extends this article", *fixed, specializationName(*fixed)))
	}

	var row Row
	err = q.QueryRow(ctx, updateSQL,
		a.ID, a.Title, content, string(a.Type), string(a.Visibility), a.AuthorID,
		a.HeaderImageID, a.SpotifyURL, time.Now().UTC().Truncate(time.Microsecond),
	).Scan(row.Targets()...)
	if err != nil {
		return nil, postgres.MapError(err, "article", a.ID)
	}
	updated, err := row.Article()
	if err != nil {
		return nil, fmt.Errorf("article %s: %w", a.ID, err)
	}
	return &updated, nil
}

// Delete removes an article and returns it. An article still extended by a
// person or settlement is not deleted and domain.ErrConflict is returned.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	var row Row
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, deleteSQL, id).Scan(row.Targets()...); err != nil {
		return nil, postgres.MapDeleteError(err, "article", id)
	}
	deleted, err := row.Article()
	if err != nil {
		return nil, fmt.Errorf("article %s: %w", id, err)
	}
	return &deleted, nil
}

func specializationName(fixedType string) string {
	if fixedType == string(domain.ArticleTypeCharacter) {
		return "person"
	}
	return "settlement"
}

// ApplyFilter adds the WHERE clauses of f to a query over "articles a".
func ApplyFilter(q sq.SelectBuilder, f domain.ArticleFilter) sq.SelectBuilder {
	if f.ProjectID != nil {
		q = q.Where(sq.Eq{"a.project_id": *f.ProjectID})
	}
	if f.AuthorID != nil {
		q = q.Where(sq.Eq{"a.author_id": *f.AuthorID})
	}
	if f.Type != nil {
		q = q.Where(sq.Eq{"a.article_type": string(*f.Type)})
	}
	if f.Visibility != nil {
		q = q.Where(sq.Eq{"a.visibility": string(*f.Visibility)})
	}
	if f.Title != "" {
		q = q.Where(postgres.ILikeContains("a.title", f.Title))
	}
	if f.Viewer != nil {
		q = q.Where(visibleTo(f.Viewer.UserID))
	}
	return q
}

// visibleTo mirrors domain.Article.VisibleTo in SQL.
func visibleTo(viewerID *uuid.UUID) sq.Sqlizer {
	if viewerID == nil {
		return sq.Eq{"a.visibility": string(domain.VisibilityPublic)}
	}
	return sq.Or{
		sq.Eq{"a.visibility": []string{string(domain.VisibilityPublic), string(domain.VisibilityPrivate)}},
		sq.And{
			sq.Eq{"a.visibility": string(domain.VisibilityUnlisted)},
			sq.Eq{"a.author_id": *viewerID},
		},
	}
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

// Row holds scan destinations for Columns.
type Row struct {
	a          domain.Article
	content    []byte
	typ        string
	visibility string
}

// Targets returns scan destinations in Columns order.
func (r *Row) Targets() []any {
	return []any{
		&r.a.ID, &r.a.Title, &r.content, &r.typ, &r.visibility, &r.a.AuthorID,
		&r.a.ProjectID, &r.a.HeaderImageID, &r.a.SpotifyURL, &r.a.CreatedAt, &r.a.UpdatedAt,
	}
}

// Article converts the scanned row into a domain.Article.
func (r *Row) Article() (domain.Article, error) {
	a := r.a
	a.Type = domain.ArticleType(r.typ)
	a.Visibility = domain.Visibility(r.visibility)

	a.Content = domain.NewArticleContent()
	if len(r.content) > 0 {
		if err := json.Unmarshal(r.content, &a.Content); err != nil {
			return domain.Article{}, fmt.Errorf("decode content: %w", err)
		}
	}
	if a.Content.Tags == nil {
		a.Content.Tags = []string{}
	}
	if a.Content.Metadata == nil {
		a.Content.Metadata = map[string]any{}
	}
	return a, nil
}

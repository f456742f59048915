// Package person implements the Person repository. A person is stored as an
// articles row plus a persons row that references it; both are written in the
// same transaction.
package person

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mythosengine/backend/internal/adapter/postgres"
	"github.com/mythosengine/backend/internal/adapter/postgres/article"
	"github.com/mythosengine/backend/internal/domain"
)

// Repo provides person persistence backed by PostgreSQL.
type Repo struct {
	pool     *pgxpool.Pool
	tx       *postgres.TxManager
	articles *article.Repo
}

// New creates a new person repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool:     pool,
		tx:       postgres.NewTxManager(pool),
		articles: article.New(pool),
	}
}

const (
	insertSQL = `
INSERT INTO persons (id, article_id, person_data, race, gender, life_status, occupation, current_location, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`

	updateSQL = `
UPDATE persons
SET person_data = $2, race = $3, gender = $4, life_status = $5, occupation = $6, current_location = $7, updated_at = $8
WHERE id = $1`

	deleteSQL = `DELETE FROM persons WHERE id = $1 RETURNING article_id`
)

func selectPersons() sq.SelectBuilder {
	return postgres.Builder().
		Select(append([]string{"p.id", "p.person_data"}, article.Columns...)...).
		From("persons p").
		Join("articles a ON a.id = p.article_id")
}

// GetByID returns a person with its article.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	return r.getOne(ctx, sq.Eq{"p.id": id}, id)
}

// GetByArticleID returns the person extending the given article.
func (r *Repo) GetByArticleID(ctx context.Context, articleID uuid.UUID) (*domain.Person, error) {
	return r.getOne(ctx, sq.Eq{"p.article_id": articleID}, articleID)
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, id uuid.UUID) (*domain.Person, error) {
	sql, args, err := selectPersons().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get person: %w", err)
	}
	p, err := scanPerson(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "person", id)
	}
	return p, nil
}

// List returns persons matching f, newest first.
func (r *Repo) List(ctx context.Context, f domain.PersonFilter, page domain.Page) ([]domain.Person, error) {
	page = page.Normalize()

	q := article.ApplyFilter(selectPersons(), domain.ArticleFilter{ProjectID: f.ProjectID, Viewer: f.Viewer})
	if f.Race != "" {
		q = q.Where(postgres.ILikeContains("p.race", f.Race))
	}
	if f.Location != "" {
		q = q.Where(postgres.ILikeContains("p.current_location", f.Location))
	}
	if f.Occupation != "" {
		q = q.Where(postgres.ILikeContains("p.occupation", f.Occupation))
	}
	if f.LifeStatus != nil {
		q = q.Where(sq.Eq{"p.life_status": string(*f.LifeStatus)})
	}

	sql, args, err := q.OrderBy("p.created_at DESC", "p.id").
		Offset(uint64(page.Skip)).
		Limit(uint64(page.Limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list persons: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	persons := []domain.Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("list persons: %w", err)
		}
		persons = append(persons, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	return persons, nil
}

// ListAlive returns persons whose life status is alive.
func (r *Repo) ListAlive(ctx context.Context, projectID *uuid.UUID, page domain.Page) ([]domain.Person, error) {
	alive := domain.LifeStatusAlive
	return r.List(ctx, domain.PersonFilter{ProjectID: projectID, LifeStatus: &alive}, page)
}

// Create inserts the article and then the person row that references it.
func (r *Repo) Create(ctx context.Context, p domain.Person) (*domain.Person, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	var created *domain.Person
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := r.articles.Create(ctx, p.Article)
		if err != nil {
			return err
		}

		data, err := json.Marshal(p.Data)
		if err != nil {
			return fmt.Errorf("marshal person data: %w", err)
		}
		args := append([]any{p.ID, a.ID, data}, indexedColumns(p.Data)...)
		args = append(args, time.Now().UTC().Truncate(time.Microsecond))
		if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, insertSQL, args...); err != nil {
			return postgres.MapError(err, "person", p.ID)
		}

		created = &domain.Person{ID: p.ID, Article: *a, Data: p.Data}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update writes both the article and the person row.
func (r *Repo) Update(ctx context.Context, p domain.Person) (*domain.Person, error) {
	var updated *domain.Person
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := r.articles.Update(ctx, p.Article)
		if err != nil {
			return err
		}

		data, err := json.Marshal(p.Data)
		if err != nil {
			return fmt.Errorf("marshal person data: %w", err)
		}
		args := append([]any{p.ID, data}, indexedColumns(p.Data)...)
		args = append(args, time.Now().UTC().Truncate(time.Microsecond))
		tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, updateSQL, args...)
		if err != nil {
			return postgres.MapError(err, "person", p.ID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("person %s: %w", p.ID, domain.ErrNotFound)
		}

		updated = &domain.Person{ID: p.ID, Article: *a, Data: p.Data}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the person row and then its article, returning the person.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	var deleted *domain.Person
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}

		var articleID uuid.UUID
		if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, deleteSQL, id).Scan(&articleID); err != nil {
			return postgres.MapDeleteError(err, "person", id)
		}
		if _, err := r.articles.Delete(ctx, articleID); err != nil {
			return err
		}

		deleted = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// indexedColumns returns race, gender, life_status, occupation, current_location.
func indexedColumns(d domain.PersonData) []any {
	return []any{
		nullIfEmpty(d.Race),
		nullIfEmpty(string(d.Gender)),
		string(d.LifeStatus),
		nullIfEmpty(d.Occupation),
		nullIfEmpty(d.CurrentLocation),
	}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanPerson(row pgx.Row) (*domain.Person, error) {
	var (
		id   uuid.UUID
		data []byte
		ar   article.Row
	)
	if err := row.Scan(append([]any{&id, &data}, ar.Targets()...)...); err != nil {
		return nil, err
	}

	a, err := ar.Article()
	if err != nil {
		return nil, err
	}

	var pd domain.PersonData
	if len(data) > 0 {
		if err := json.Unmarshal(data, &pd); err != nil {
			return nil, fmt.Errorf("decode person data: %w", err)
		}
	}
	pd.Normalize()

	p := &domain.Person{ID: id, Article: a, Data: pd}
	p.Sync()
	return p, nil
}

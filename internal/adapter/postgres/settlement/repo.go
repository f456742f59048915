// Package settlement implements the Settlement repository. Like persons, a
// settlement is an articles row plus a settlements row written together.
package settlement

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

// Repo provides settlement persistence backed by PostgreSQL.
type Repo struct {
	pool     *pgxpool.Pool
	tx       *postgres.TxManager
	articles *article.Repo
}

// New creates a new settlement repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool:     pool,
		tx:       postgres.NewTxManager(pool),
		articles: article.New(pool),
	}
}

const (
	insertSQL = `
INSERT INTO settlements (id, article_id, settlement_data, settlement_type, population, government_type, region, primary_industry, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`

	updateSQL = `
UPDATE settlements
SET settlement_data = $2, settlement_type = $3, population = $4, government_type = $5, region = $6, primary_industry = $7, updated_at = $8
WHERE id = $1`

	deleteSQL = `DELETE FROM settlements WHERE id = $1 RETURNING article_id`
)

func selectSettlements() sq.SelectBuilder {
	return postgres.Builder().
		Select(append([]string{"s.id", "s.settlement_data"}, article.Columns...)...).
		From("settlements s").
		Join("articles a ON a.id = s.article_id")
}

// GetByID returns a settlement with its article.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Settlement, error) {
	return r.getOne(ctx, sq.Eq{"s.id": id}, id)
}

// GetByArticleID returns the settlement extending the given article.
func (r *Repo) GetByArticleID(ctx context.Context, articleID uuid.UUID) (*domain.Settlement, error) {
	return r.getOne(ctx, sq.Eq{"s.article_id": articleID}, articleID)
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, id uuid.UUID) (*domain.Settlement, error) {
	sql, args, err := selectSettlements().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get settlement: %w", err)
	}
	s, err := scanSettlement(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "settlement", id)
	}
	return s, nil
}

// List returns settlements matching f, newest first.
func (r *Repo) List(ctx context.Context, f domain.SettlementFilter, page domain.Page) ([]domain.Settlement, error) {
	page = page.Normalize()

	q := article.ApplyFilter(selectSettlements(), domain.ArticleFilter{ProjectID: f.ProjectID, Viewer: f.Viewer})
	if f.Type != nil {
		q = q.Where(sq.Eq{"s.settlement_type": string(*f.Type)})
	}
	if f.Region != "" {
		q = q.Where(postgres.ILikeContains("s.region", f.Region))
	}
	if f.MinPopulation != nil {
		q = q.Where(sq.GtOrEq{"s.population": *f.MinPopulation})
	}
	if f.MaxPopulation != nil {
		q = q.Where(sq.LtOrEq{"s.population": *f.MaxPopulation})
	}
	if f.GovernmentType != nil {
		q = q.Where(sq.Eq{"s.government_type": string(*f.GovernmentType)})
	}

	sql, args, err := q.OrderBy("s.created_at DESC", "s.id").
		Offset(uint64(page.Skip)).
		Limit(uint64(page.Limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list settlements: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list settlements: %w", err)
	}
	defer rows.Close()

	settlements := []domain.Settlement{}
	for rows.Next() {
		s, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("list settlements: %w", err)
		}
		settlements = append(settlements, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list settlements: %w", err)
	}
	return settlements, nil
}

// Create inserts the article and then the settlement row that references it.
func (r *Repo) Create(ctx context.Context, s domain.Settlement) (*domain.Settlement, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	var created *domain.Settlement
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := r.articles.Create(ctx, s.Article)
		if err != nil {
			return err
		}

		data, err := json.Marshal(s.Data)
		if err != nil {
			return fmt.Errorf("marshal settlement data: %w", err)
		}
		args := append([]any{s.ID, a.ID, data}, indexedColumns(s.Data)...)
		args = append(args, time.Now().UTC().Truncate(time.Microsecond))
		if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, insertSQL, args...); err != nil {
			return postgres.MapError(err, "settlement", s.ID)
		}

		created = &domain.Settlement{ID: s.ID, Article: *a, Data: s.Data}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update writes both the article and the settlement row.
func (r *Repo) Update(ctx context.Context, s domain.Settlement) (*domain.Settlement, error) {
	var updated *domain.Settlement
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := r.articles.Update(ctx, s.Article)
		if err != nil {
			return err
		}

		data, err := json.Marshal(s.Data)
		if err != nil {
			return fmt.Errorf("marshal settlement data: %w", err)
		}
		args := append([]any{s.ID, data}, indexedColumns(s.Data)...)
		args = append(args, time.Now().UTC().Truncate(time.Microsecond))
		tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, updateSQL, args...)
		if err != nil {
			return postgres.MapError(err, "settlement", s.ID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("settlement %s: %w", s.ID, domain.ErrNotFound)
		}

		updated = &domain.Settlement{ID: s.ID, Article: *a, Data: s.Data}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the settlement row and then its article, returning the
// settlement.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (*domain.Settlement, error) {
	var deleted *domain.Settlement
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		s, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}

		var articleID uuid.UUID
		if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, deleteSQL, id).Scan(&articleID); err != nil {
			return postgres.MapDeleteError(err, "settlement", id)
		}
		if _, err := r.articles.Delete(ctx, articleID); err != nil {
			return err
		}

		deleted = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// indexedColumns returns settlement_type, population, government_type, region,
// primary_industry.
func indexedColumns(d domain.SettlementData) []any {
	var gov *string
	if d.GovernmentType != nil {
		g := string(*d.GovernmentType)
		gov = &g
	}
	return []any{
		string(d.SettlementType),
		d.Population,
		gov,
		nullIfEmpty(d.Region),
		nullIfEmpty(d.PrimaryIndustry),
	}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanSettlement(row pgx.Row) (*domain.Settlement, error) {
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

	var sd domain.SettlementData
	if len(data) > 0 {
		if err := json.Unmarshal(data, &sd); err != nil {
			return nil, fmt.Errorf("decode settlement data: %w", err)
		}
	}
	sd.Normalize()

	s := &domain.Settlement{ID: id, Article: a, Data: sd}
	s.Sync()
	return s, nil
}

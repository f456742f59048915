package article

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
	"github.com/mythosengine/backend/pkg/ctxutil"
)

//go:generate moq -out article_repo_mock_test.go -pkg article . articleRepo

type articleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	List(ctx context.Context, f domain.ArticleFilter, page domain.Page) ([]domain.Article, error)
	ListPublic(ctx context.Context, page domain.Page) ([]domain.Article, error)
	Create(ctx context.Context, a domain.Article) (*domain.Article, error)
	Update(ctx context.Context, a domain.Article) (*domain.Article, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Article, error)
}

// Service implements article operations and applies the visibility policy:
// public articles are visible to anyone, private ones to any authenticated
// caller and unlisted ones to their author only.
type Service struct {
	log      *slog.Logger
	articles articleRepo
}

// NewService creates a new article service instance.
func NewService(logger *slog.Logger, articles articleRepo) *Service {
	return &Service{
		log:      logger.With("service", "article"),
		articles: articles,
	}
}

func viewerFromCtx(ctx context.Context) (*domain.Viewer, *uuid.UUID) {
	id := ctxutil.CallerID(ctx)
	return &domain.Viewer{UserID: id}, id
}

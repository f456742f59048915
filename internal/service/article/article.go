package article

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
)

// Create stores a new article. An authenticated caller becomes its author.
func (s *Service) Create(ctx context.Context, input CreateArticleInput) (*domain.Article, error) {
	input.applyDefaults()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, authorID := viewerFromCtx(ctx)
	content := input.Content
	if content.Tags == nil {
		content.Tags = []string{}
	}
	if content.Metadata == nil {
		content.Metadata = map[string]any{}
	}

	created, err := s.articles.Create(ctx, domain.Article{
		Title:         strings.TrimSpace(input.Title),
		Content:       content,
		Type:          input.Type,
		Visibility:    input.Visibility,
		AuthorID:      authorID,
		ProjectID:     input.ProjectID,
		HeaderImageID: input.HeaderImageID,
		SpotifyURL:    input.SpotifyURL,
	})
	if err != nil {
		return nil, fmt.Errorf("article.Create: %w", err)
	}

	s.log.InfoContext(ctx, "article created",
		slog.String("article_id", created.ID.String()),
		slog.String("project_id", created.ProjectID.String()))
	return created, nil
}

// Get returns an article the caller may see. Articles hidden from the caller
// are reported as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	a, err := s.getVisible(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("article.Get: %w", err)
	}
	return a, nil
}

// List returns the articles matching f that the caller may see. Callers
// filtering by their own author id see all of their articles.
func (s *Service) List(ctx context.Context, f domain.ArticleFilter, page domain.Page) ([]domain.Article, error) {
	viewer, callerID := viewerFromCtx(ctx)
	f.Viewer = viewer
	if callerID != nil && f.AuthorID != nil && *f.AuthorID == *callerID {
		f.Viewer = nil
	}
	f.Title = strings.TrimSpace(f.Title)

	articles, err := s.articles.List(ctx, f, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("article.List: %w", err)
	}
	return articles, nil
}

// ListByAuthor returns the author's articles visible to the caller.
func (s *Service) ListByAuthor(ctx context.Context, authorID uuid.UUID, page domain.Page) ([]domain.Article, error) {
	return s.List(ctx, domain.ArticleFilter{AuthorID: &authorID}, page)
}

// ListPublic returns public articles across all projects.
func (s *Service) ListPublic(ctx context.Context, page domain.Page) ([]domain.Article, error) {
	articles, err := s.articles.ListPublic(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("article.ListPublic: %w", err)
	}
	return articles, nil
}

// Update applies the non-nil fields of input to an article the caller may see.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateArticleInput) (*domain.Article, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.getVisible(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("article.Update: %w", err)
	}

	if input.Title != nil {
		a.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		a.Content = *input.Content
	}
	if input.Type != nil {
		a.Type = *input.Type
	}
	if input.Visibility != nil {
		a.Visibility = *input.Visibility
	}
	if input.HeaderImageID != nil {
		a.HeaderImageID = input.HeaderImageID
	}
	if input.SpotifyURL != nil {
		a.SpotifyURL = input.SpotifyURL
	}

	updated, err := s.articles.Update(ctx, *a)
	if err != nil {
		return nil, fmt.Errorf("article.Update: %w", err)
	}
	return updated, nil
}

// Delete removes an article the caller may see. Articles extended by a person
// or settlement must be deleted through that record and yield ErrConflict.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getVisible(ctx, id); err != nil {
		return fmt.Errorf("article.Delete: %w", err)
	}
	if _, err := s.articles.Delete(ctx, id); err != nil {
		return fmt.Errorf("article.Delete: %w", err)
	}
	s.log.InfoContext(ctx, "article deleted", slog.String("article_id", id.String()))
	return nil
}

func (s *Service) getVisible(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	_, callerID := viewerFromCtx(ctx)
	if !a.VisibleTo(callerID) {
		return nil, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}
	return a, nil
}

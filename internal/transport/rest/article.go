package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
	"github.com/mythosengine/backend/internal/service/article"
)

type articleService interface {
	Create(ctx context.Context, input article.CreateArticleInput) (*domain.Article, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	List(ctx context.Context, f domain.ArticleFilter, page domain.Page) ([]domain.Article, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, page domain.Page) ([]domain.Article, error)
	ListPublic(ctx context.Context, page domain.Page) ([]domain.Article, error)
	Update(ctx context.Context, id uuid.UUID, input article.UpdateArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ArticleHandler serves /articles endpoints.
type ArticleHandler struct {
	svc articleService
	log *slog.Logger
}

// NewArticleHandler creates an ArticleHandler.
func NewArticleHandler(svc articleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{svc: svc, log: logger.With("handler", "article")}
}

// Routes mounts the article endpoints.
func (h *ArticleHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/public", h.ListPublic)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

type createArticleRequest struct {
	Title         string                `json:"title"`
	Content       domain.ArticleContent `json:"content"`
	ArticleType   domain.ArticleType    `json:"article_type"`
	Visibility    domain.Visibility     `json:"visibility"`
	ProjectID     uuid.UUID             `json:"project_id"`
	HeaderImageID *uuid.UUID            `json:"header_image_id"`
	SpotifyURL    *string               `json:"spotify_url"`
}

type updateArticleRequest struct {
	Title         *string                `json:"title"`
	Content       *domain.ArticleContent `json:"content"`
	ArticleType   *domain.ArticleType    `json:"article_type"`
	Visibility    *domain.Visibility     `json:"visibility"`
	HeaderImageID *uuid.UUID             `json:"header_image_id"`
	SpotifyURL    *string                `json:"spotify_url"`
}

// Create handles POST /articles/.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.Create(r.Context(), article.CreateArticleInput{
		Title:         req.Title,
		Content:       req.Content,
		Type:          req.ArticleType,
		Visibility:    req.Visibility,
		ProjectID:     req.ProjectID,
		HeaderImageID: req.HeaderImageID,
		SpotifyURL:    req.SpotifyURL,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toArticleResponse(*a))
}

// List handles GET /articles/?project_id=&author_id=&type=&visibility=&q=.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := articleFilterQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	page, err := pageQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	articles, err := h.svc.List(r.Context(), f, page)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(articles, toArticleResponse))
}

func articleFilterQuery(r *http.Request) (domain.ArticleFilter, error) {
	var (
		f   domain.ArticleFilter
		err error
	)
	if f.ProjectID, err = uuidQuery(r, "project_id"); err != nil {
		return f, err
	}
	if f.AuthorID, err = uuidQuery(r, "author_id"); err != nil {
		return f, err
	}
	if raw := stringQuery(r, "type"); raw != nil {
		t := domain.ArticleType(*raw)
		if !t.IsValid() {
			return f, domain.NewValidationError("type", "invalid value")
		}
		f.Type = &t
	}
	if raw := stringQuery(r, "visibility"); raw != nil {
		v := domain.Visibility(*raw)
		if !v.IsValid() {
			return f, domain.NewValidationError("visibility", "invalid value")
		}
		f.Visibility = &v
	}
	f.Title = r.URL.Query().Get("q")
	return f, nil
}

// ListPublic handles GET /articles/public.
func (h *ArticleHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	page, err := pageQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	articles, err := h.svc.ListPublic(r.Context(), page)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(articles, toArticleResponse))
}

// Get handles GET /articles/{id}.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(*a))
}

// Update handles PUT /articles/{id}.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateArticleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.Update(r.Context(), id, article.UpdateArticleInput{
		Title:         req.Title,
		Content:       req.Content,
		Type:          req.ArticleType,
		Visibility:    req.Visibility,
		HeaderImageID: req.HeaderImageID,
		SpotifyURL:    req.SpotifyURL,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(*a))
}

// Delete handles DELETE /articles/{id}. Articles backing a person or a
// settlement are rejected with 409.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Article deleted successfully")
}

package article

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
)

const maxTitleLength = 500

// CreateArticleInput holds parameters for article creation. Empty type and
// visibility default to general and public.
type CreateArticleInput struct {
	Title         string
	Content       domain.ArticleContent
	Type          domain.ArticleType
	Visibility    domain.Visibility
	ProjectID     uuid.UUID
	HeaderImageID *uuid.UUID
	SpotifyURL    *string
}

func (i *CreateArticleInput) applyDefaults() {
	if i.Type == "" {
		i.Type = domain.ArticleTypeGeneral
	}
	if i.Visibility == "" {
		i.Visibility = domain.VisibilityPublic
	}
}

// Validate validates the create article input after defaults are applied.
func (i CreateArticleInput) Validate() error {
	i.applyDefaults()
	var errs []domain.FieldError

	errs = append(errs, validateTitle(i.Title)...)
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	if !i.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "invalid value"})
	}
	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateArticleInput holds parameters for a partial article update.
// All fields are optional (nil = don't change).
type UpdateArticleInput struct {
	Title         *string
	Content       *domain.ArticleContent
	Type          *domain.ArticleType
	Visibility    *domain.Visibility
	HeaderImageID *uuid.UUID
	SpotifyURL    *string
}

func (i UpdateArticleInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		errs = append(errs, validateTitle(*i.Title)...)
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	if i.Visibility != nil && !i.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return []domain.FieldError{{Field: "title", Message: "required"}}
	case len(title) > maxTitleLength:
		return []domain.FieldError{{Field: "title", Message: "too long"}}
	}
	return nil
}

package person

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
)

// CreatePersonInput holds parameters for person creation. Empty visibility
// defaults to public; nil content gets the default character summary.
type CreatePersonInput struct {
	Name       string
	ProjectID  uuid.UUID
	Visibility domain.Visibility
	Content    *domain.ArticleContent
	Data       domain.PersonData
}

func (i CreatePersonInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.Visibility != "" && !i.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePersonInput holds parameters for a partial person update. Data, when
// set, replaces the whole person data bag.
type UpdatePersonInput struct {
	Name       *string
	Visibility *domain.Visibility
	Content    *domain.ArticleContent
	Data       *domain.PersonData
}

func (i UpdatePersonInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be empty"})
	}
	if i.Visibility != nil && !i.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

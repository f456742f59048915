package settlement

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
)

// CreateSettlementInput holds parameters for settlement creation.
type CreateSettlementInput struct {
	Name       string
	ProjectID  uuid.UUID
	Visibility domain.Visibility
	Content    *domain.ArticleContent
	Data       domain.SettlementData
}

func (i CreateSettlementInput) Validate() error {
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

// UpdateSettlementInput holds parameters for a partial settlement update.
// Data, when set, replaces the whole settlement data bag.
type UpdateSettlementInput struct {
	Name       *string
	Visibility *domain.Visibility
	Content    *domain.ArticleContent
	Data       *domain.SettlementData
}

func (i UpdateSettlementInput) Validate() error {
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

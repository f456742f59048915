package project

import (
	"strings"

	"github.com/mythosengine/backend/internal/domain"
)

const maxNameLength = 255

// CreateProjectInput holds parameters for project creation.
type CreateProjectInput struct {
	Name        string
	Description *string
}

func (i CreateProjectInput) Validate() error {
	return validateName(i.Name)
}

// UpdateProjectInput holds parameters for a partial project update.
type UpdateProjectInput struct {
	Name        *string
	Description *string
}

func (i UpdateProjectInput) Validate() error {
	if i.Name != nil {
		return validateName(*i.Name)
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if len(name) > maxNameLength {
		return domain.NewValidationError("name", "too long")
	}
	return nil
}

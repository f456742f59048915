package user

import (
	"strings"

	"github.com/mythosengine/backend/internal/domain"
)

// CreateUserInput holds parameters for user creation.
type CreateUserInput struct {
	Username    string
	Email       string
	DisplayName string
	Bio         *string
	AvatarURL   *string
}

// Validate validates the create user input.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateUsername(i.Username)...)
	errs = append(errs, validateEmail(i.Email)...)
	if strings.TrimSpace(i.DisplayName) == "" {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "required"})
	} else if len(i.DisplayName) > 255 {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
	}
	if i.AvatarURL != nil && len(*i.AvatarURL) > 512 {
		errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUserInput holds parameters for a partial user update.
// All fields are optional (nil = don't change).
type UpdateUserInput struct {
	Username    *string
	Email       *string
	DisplayName *string
	Bio         *string
	AvatarURL   *string
	IsActive    *bool
}

// Validate validates the update user input.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.Username != nil {
		errs = append(errs, validateUsername(*i.Username)...)
	}
	if i.Email != nil {
		errs = append(errs, validateEmail(*i.Email)...)
	}
	if i.DisplayName != nil && strings.TrimSpace(*i.DisplayName) == "" {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "cannot be empty"})
	}
	if i.AvatarURL != nil && len(*i.AvatarURL) > 512 {
		errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateUsername(username string) []domain.FieldError {
	switch {
	case len(strings.TrimSpace(username)) < domain.MinUsernameLength:
		return []domain.FieldError{{Field: "username", Message: "must be at least 3 characters"}}
	case len(username) > 50:
		return []domain.FieldError{{Field: "username", Message: "too long"}}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return []domain.FieldError{{Field: "email", Message: "required"}}
	case !strings.Contains(email, "@"):
		return []domain.FieldError{{Field: "email", Message: "invalid format"}}
	case len(email) > 255:
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	return nil
}

package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
)

// Create registers a new user. A taken username or email is reported as a
// validation error on the matching field.
func (s *Service) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)
	if err := s.checkUnique(ctx, &input.Username, &email, nil); err != nil {
		return nil, err
	}

	u, err := s.users.Create(ctx, domain.User{
		Username:    strings.TrimSpace(input.Username),
		Email:       email,
		DisplayName: strings.TrimSpace(input.DisplayName),
		Bio:         input.Bio,
		AvatarURL:   input.AvatarURL,
		IsActive:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("user.Create: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", u.ID.String()),
		slog.String("username", u.Username))

	return u, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return u, nil
}

// GetByUsername returns a user by exact username.
func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user.GetByUsername: %w", err)
	}
	return u, nil
}

// List returns a page of users.
func (s *Service) List(ctx context.Context, page domain.Page) ([]domain.User, error) {
	users, err := s.users.List(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// Update applies the non-nil fields of input to the user.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Update: %w", err)
	}

	var username, email *string
	if input.Username != nil && strings.TrimSpace(*input.Username) != u.Username {
		v := strings.TrimSpace(*input.Username)
		username = &v
	}
	if input.Email != nil && !strings.EqualFold(strings.TrimSpace(*input.Email), u.Email) {
		v := strings.TrimSpace(*input.Email)
		email = &v
	}
	if err := s.checkUnique(ctx, username, email, &id); err != nil {
		return nil, err
	}

	if input.Username != nil {
		u.Username = strings.TrimSpace(*input.Username)
	}
	if input.Email != nil {
		u.Email = strings.TrimSpace(*input.Email)
	}
	if input.DisplayName != nil {
		u.DisplayName = strings.TrimSpace(*input.DisplayName)
	}
	if input.Bio != nil {
		u.Bio = input.Bio
	}
	if input.AvatarURL != nil {
		u.AvatarURL = input.AvatarURL
	}
	if input.IsActive != nil {
		u.IsActive = *input.IsActive
	}

	updated, err := s.users.Update(ctx, *u)
	if err != nil {
		return nil, fmt.Errorf("user.Update: %w", err)
	}

	s.log.InfoContext(ctx, "user updated", slog.String("user_id", id.String()))
	return updated, nil
}

// Delete removes a user. Their projects and articles remain, unowned.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("user.Delete: %w", err)
	}
	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", id.String()))
	return nil
}

// Stats returns the user's profile with authored article and owned project
// counts.
func (s *Service) Stats(ctx context.Context, id uuid.UUID) (*domain.UserStats, error) {
	stats, err := s.users.Stats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Stats: %w", err)
	}
	return stats, nil
}

func (s *Service) checkUnique(ctx context.Context, username, email *string, excludeID *uuid.UUID) error {
	var errs []domain.FieldError

	if username != nil {
		taken, err := s.users.IsUsernameTaken(ctx, strings.TrimSpace(*username), excludeID)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if taken {
			errs = append(errs, domain.FieldError{Field: "username", Message: "already taken"})
		}
	}
	if email != nil {
		taken, err := s.users.IsEmailTaken(ctx, strings.TrimSpace(*email), excludeID)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			errs = append(errs, domain.FieldError{Field: "email", Message: "already registered"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -pkg user . userRepo

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, page domain.Page) ([]domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	Update(ctx context.Context, u domain.User) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.User, error)
	IsUsernameTaken(ctx context.Context, username string, excludeID *uuid.UUID) (bool, error)
	IsEmailTaken(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
	Stats(ctx context.Context, id uuid.UUID) (*domain.UserStats, error)
}

// Service implements user account operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}

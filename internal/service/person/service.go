package person

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
)

//go:generate moq -out person_repo_mock_test.go -pkg person . personRepo
//go:generate moq -out tx_manager_mock_test.go -pkg person . txManager

type personRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	List(ctx context.Context, f domain.PersonFilter, page domain.Page) ([]domain.Person, error)
	Create(ctx context.Context, p domain.Person) (*domain.Person, error)
	Update(ctx context.Context, p domain.Person) (*domain.Person, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Person, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements operations on persons (character articles with
// person data).
type Service struct {
	log     *slog.Logger
	persons personRepo
	tx      txManager
}

// NewService creates a new person service instance.
func NewService(logger *slog.Logger, persons personRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "person"),
		persons: persons,
		tx:      tx,
	}
}

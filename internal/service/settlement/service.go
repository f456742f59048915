package settlement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
)

//go:generate moq -out settlement_repo_mock_test.go -pkg settlement . settlementRepo
//go:generate moq -out tx_manager_mock_test.go -pkg settlement . txManager

type settlementRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Settlement, error)
	List(ctx context.Context, f domain.SettlementFilter, page domain.Page) ([]domain.Settlement, error)
	Create(ctx context.Context, s domain.Settlement) (*domain.Settlement, error)
	Update(ctx context.Context, s domain.Settlement) (*domain.Settlement, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Settlement, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements operations on settlements.
type Service struct {
	log         *slog.Logger
	settlements settlementRepo
	tx          txManager
}

// NewService creates a new settlement service instance.
func NewService(logger *slog.Logger, settlements settlementRepo, tx txManager) *Service {
	return &Service{
		log:         logger.With("service", "settlement"),
		settlements: settlements,
		tx:          tx,
	}
}

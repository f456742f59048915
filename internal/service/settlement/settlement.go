package settlement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
	"github.com/mythosengine/backend/pkg/ctxutil"
)

// Create stores a settlement and its location article in one transaction.
func (s *Service) Create(ctx context.Context, input CreateSettlementInput) (*domain.Settlement, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	st, err := domain.CreateSettlement(strings.TrimSpace(input.Name), input.ProjectID, ctxutil.CallerID(ctx), input.Data)
	if err != nil {
		return nil, err
	}
	if input.Visibility != "" {
		st.Article.Visibility = input.Visibility
	}
	if input.Content != nil {
		st.Article.Content = *input.Content
		st.Sync()
	}

	var created *domain.Settlement
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.settlements.Create(ctx, *st)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("settlement.Create: %w", err)
	}

	s.log.InfoContext(ctx, "settlement created",
		slog.String("settlement_id", created.ID.String()),
		slog.String("type", created.Data.SettlementType.String()))
	return created, nil
}

// Get returns a settlement whose article the caller may see.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Settlement, error) {
	st, err := s.getVisible(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("settlement.Get: %w", err)
	}
	return st, nil
}

// List returns settlements matching f whose articles the caller may see.
func (s *Service) List(ctx context.Context, f domain.SettlementFilter, page domain.Page) ([]domain.Settlement, error) {
	if f.Type != nil && !f.Type.IsValid() {
		return nil, domain.NewValidationError("type", "invalid value")
	}
	if f.GovernmentType != nil && !f.GovernmentType.IsValid() {
		return nil, domain.NewValidationError("government", "invalid value")
	}
	if f.MinPopulation != nil && f.MaxPopulation != nil && *f.MinPopulation > *f.MaxPopulation {
		return nil, domain.NewValidationError("min_population", "must not exceed max_population")
	}
	f.Viewer = &domain.Viewer{UserID: ctxutil.CallerID(ctx)}
	f.Region = strings.TrimSpace(f.Region)

	settlements, err := s.settlements.List(ctx, f, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("settlement.List: %w", err)
	}
	return settlements, nil
}

// Update applies input to the settlement and its article in one transaction.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateSettlementInput) (*domain.Settlement, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Settlement
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		st, err := s.getVisible(ctx, id)
		if err != nil {
			return err
		}
		if input.Name != nil {
			st.Article.Title = strings.TrimSpace(*input.Name)
		}
		if input.Visibility != nil {
			st.Article.Visibility = *input.Visibility
		}
		if input.Content != nil {
			st.Article.Content = *input.Content
		}
		if input.Data != nil {
			st.Data = *input.Data
		}

		next, err := domain.NewSettlement(st.Article, st.Data)
		if err != nil {
			return err
		}
		next.ID = st.ID

		updated, err = s.settlements.Update(ctx, *next)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("settlement.Update: %w", err)
	}
	return updated, nil
}

// Delete removes the settlement together with its article.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getVisible(ctx, id); err != nil {
		return fmt.Errorf("settlement.Delete: %w", err)
	}
	if _, err := s.settlements.Delete(ctx, id); err != nil {
		return fmt.Errorf("settlement.Delete: %w", err)
	}
	s.log.InfoContext(ctx, "settlement deleted", slog.String("settlement_id", id.String()))
	return nil
}

func (s *Service) getVisible(ctx context.Context, id uuid.UUID) (*domain.Settlement, error) {
	st, err := s.settlements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !st.Article.VisibleTo(ctxutil.CallerID(ctx)) {
		return nil, fmt.Errorf("settlement %s: %w", id, domain.ErrNotFound)
	}
	return st, nil
}

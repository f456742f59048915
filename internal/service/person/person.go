package person

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
	"github.com/mythosengine/backend/pkg/ctxutil"
)

// Create stores a person and its character article in one transaction.
func (s *Service) Create(ctx context.Context, input CreatePersonInput) (*domain.Person, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := domain.CreatePerson(strings.TrimSpace(input.Name), input.ProjectID, ctxutil.CallerID(ctx), input.Data)
	if err != nil {
		return nil, err
	}
	if input.Visibility != "" {
		p.Article.Visibility = input.Visibility
	}
	if input.Content != nil {
		p.Article.Content = *input.Content
		p.Sync()
	}

	var created *domain.Person
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.persons.Create(ctx, *p)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("person.Create: %w", err)
	}

	s.log.InfoContext(ctx, "person created",
		slog.String("person_id", created.ID.String()),
		slog.String("article_id", created.Article.ID.String()))
	return created, nil
}

// Get returns a person whose article the caller may see.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	p, err := s.getVisible(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("person.Get: %w", err)
	}
	return p, nil
}

// List returns persons matching f whose articles the caller may see.
func (s *Service) List(ctx context.Context, f domain.PersonFilter, page domain.Page) ([]domain.Person, error) {
	f.Viewer = &domain.Viewer{UserID: ctxutil.CallerID(ctx)}
	f.Race = strings.TrimSpace(f.Race)
	f.Location = strings.TrimSpace(f.Location)
	f.Occupation = strings.TrimSpace(f.Occupation)

	persons, err := s.persons.List(ctx, f, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("person.List: %w", err)
	}
	return persons, nil
}

// Update applies input to the person and its article in one transaction.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdatePersonInput) (*domain.Person, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, "person.Update", id, func(p *domain.Person) error {
		if input.Name != nil {
			p.Article.Title = strings.TrimSpace(*input.Name)
		}
		if input.Visibility != nil {
			p.Article.Visibility = *input.Visibility
		}
		if input.Content != nil {
			p.Article.Content = *input.Content
		}
		if input.Data != nil {
			p.Data = *input.Data
		}
		updated, err := domain.NewPerson(p.Article, p.Data)
		if err != nil {
			return err
		}
		updated.ID = p.ID
		*p = *updated
		return nil
	})
}

// AddImportantDate appends a timeline entry to the person.
func (s *Service) AddImportantDate(ctx context.Context, id uuid.UUID, date domain.ImportantDate) (*domain.Person, error) {
	return s.mutate(ctx, "person.AddImportantDate", id, func(p *domain.Person) error {
		return p.AddImportantDate(date)
	})
}

// AddRelationship appends a relationship to the person.
func (s *Service) AddRelationship(ctx context.Context, id uuid.UUID, rel domain.Relationship) (*domain.Person, error) {
	return s.mutate(ctx, "person.AddRelationship", id, func(p *domain.Person) error {
		return p.AddRelationship(rel)
	})
}

// Delete removes the person together with its article.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getVisible(ctx, id); err != nil {
		return fmt.Errorf("person.Delete: %w", err)
	}
	if _, err := s.persons.Delete(ctx, id); err != nil {
		return fmt.Errorf("person.Delete: %w", err)
	}
	s.log.InfoContext(ctx, "person deleted", slog.String("person_id", id.String()))
	return nil
}

// mutate loads a visible person, applies fn and writes both rows back inside
// one transaction.
func (s *Service) mutate(ctx context.Context, op string, id uuid.UUID, fn func(p *domain.Person) error) (*domain.Person, error) {
	var updated *domain.Person
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.getVisible(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return err
		}
		updated, err = s.persons.Update(ctx, *p)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (s *Service) getVisible(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	p, err := s.persons.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Article.VisibleTo(ctxutil.CallerID(ctx)) {
		return nil, fmt.Errorf("person %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
	"github.com/mythosengine/backend/pkg/ctxutil"
)

// Create creates a project. An authenticated caller becomes its owner.
func (s *Service) Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := domain.Project{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		OwnerID:     ctxutil.CallerID(ctx),
	}

	created, err := s.projects.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("project.Create: %w", err)
	}

	s.log.InfoContext(ctx, "project created", slog.String("project_id", created.ID.String()))
	return created, nil
}

// Get returns a project by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project.Get: %w", err)
	}
	return p, nil
}

// List returns projects, optionally filtered by name substring or owner.
func (s *Service) List(ctx context.Context, f domain.ProjectFilter, page domain.Page) ([]domain.Project, error) {
	f.Name = strings.TrimSpace(f.Name)
	projects, err := s.projects.List(ctx, f, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("project.List: %w", err)
	}
	return projects, nil
}

// Update applies the non-nil fields of input.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project.Update: %w", err)
	}
	if input.Name != nil {
		p.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		p.Description = input.Description
	}

	updated, err := s.projects.Update(ctx, *p)
	if err != nil {
		return nil, fmt.Errorf("project.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a project with its articles, persons, settlements and image
// records in one transaction, then removes the stored image files. File
// removal failures are logged and do not fail the call.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	var images []domain.Image
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		images, err = s.images.DeleteByProject(ctx, id)
		if err != nil {
			return err
		}
		_, err = s.projects.Delete(ctx, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("project.Delete: %w", err)
	}

	for _, img := range images {
		if img.IsRemote {
			continue
		}
		if err := s.blobs.Delete(ctx, img.Filename); err != nil {
			s.log.WarnContext(ctx, "remove image file",
				slog.String("project_id", id.String()),
				slog.String("filename", img.Filename),
				slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("project_id", id.String()),
		slog.Int("images", len(images)))
	return nil
}

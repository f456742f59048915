package project

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
)

//go:generate moq -out project_repo_mock_test.go -pkg project . projectRepo
//go:generate moq -out image_repo_mock_test.go -pkg project . imageRepo
//go:generate moq -out blob_store_mock_test.go -pkg project . blobStore

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, f domain.ProjectFilter, page domain.Page) ([]domain.Project, error)
	Create(ctx context.Context, p domain.Project) (*domain.Project, error)
	Update(ctx context.Context, p domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

type imageRepo interface {
	DeleteByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Image, error)
}

type blobStore interface {
	Delete(ctx context.Context, name string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements project operations.
type Service struct {
	log      *slog.Logger
	projects projectRepo
	images   imageRepo
	blobs    blobStore
	tx       txManager
}

// NewService creates a new project service instance.
func NewService(logger *slog.Logger, projects projectRepo, images imageRepo, blobs blobStore, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "project"),
		projects: projects,
		images:   images,
		blobs:    blobs,
		tx:       tx,
	}
}

package image

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/config"
	"github.com/mythosengine/backend/internal/domain"
)

//go:generate moq -out image_repo_mock_test.go -pkg image . imageRepo
//go:generate moq -out project_repo_mock_test.go -pkg image . projectRepo
//go:generate moq -out blob_store_mock_test.go -pkg image . blobStore
//go:generate moq -out recorder_mock_test.go -pkg image . recorder

type imageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	GetByFilename(ctx context.Context, filename string) (*domain.Image, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, page domain.Page) ([]domain.Image, error)
	CountByProject(ctx context.Context, projectID uuid.UUID) (int, error)
	Usage(ctx context.Context, projectID uuid.UUID) (domain.StorageUsage, error)
	Create(ctx context.Context, img domain.Image) (*domain.Image, error)
	UpdateAltText(ctx context.Context, id uuid.UUID, altText *string) (*domain.Image, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Image, error)
}

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

type blobStore interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
	Open(ctx context.Context, name string) (io.ReadSeekCloser, error)
	Delete(ctx context.Context, name string) error
	Remote() bool
	Bucket() string
}

type recorder interface {
	ImageUploaded(mimeType string, size int64)
	ImageRejected(reason string)
	ImageDeleted()
}

// Service implements image upload, lookup and removal.
type Service struct {
	log       *slog.Logger
	images    imageRepo
	projects  projectRepo
	blobs     blobStore
	metrics   recorder
	cfg       config.StorageConfig
	apiPrefix string
}

// NewService creates a new image service instance. apiPrefix is used to build
// URLs of locally served files.
func NewService(
	logger *slog.Logger,
	cfg config.StorageConfig,
	apiPrefix string,
	images imageRepo,
	projects projectRepo,
	blobs blobStore,
	metrics recorder,
) *Service {
	return &Service{
		log:       logger.With("service", "image"),
		images:    images,
		projects:  projects,
		blobs:     blobs,
		metrics:   metrics,
		cfg:       cfg,
		apiPrefix: apiPrefix,
	}
}

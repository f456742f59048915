package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	stdimage "image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
)

// Upload validates and stores an image, then records its metadata. The
// stored file is removed again when the record cannot be written.
func (s *Service) Upload(ctx context.Context, input UploadImageInput) (*domain.Image, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkFile(input.Data, input.MimeType); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, input.ProjectID); err != nil {
		return nil, fmt.Errorf("image.Upload: %w", err)
	}

	filename := GenerateFilename(input.OriginalFilename)
	location, err := s.blobs.Put(ctx, filename, input.Data)
	if err != nil {
		return nil, fmt.Errorf("image.Upload: %w", err)
	}

	img := domain.Image{
		Filename:         filename,
		OriginalFilename: strings.TrimSpace(input.OriginalFilename),
		FilePath:         location,
		FileSize:         int64(len(input.Data)),
		MimeType:         input.MimeType,
		AltText:          input.AltText,
		IsRemote:         s.blobs.Remote(),
		ProjectID:        input.ProjectID,
	}
	if img.IsRemote {
		bucket := s.blobs.Bucket()
		img.Bucket = &bucket
	} else {
		img.Width, img.Height = Dimensions(input.Data)
	}

	created, err := s.images.Create(ctx, img)
	if err != nil {
		if delErr := s.blobs.Delete(ctx, filename); delErr != nil {
			s.log.WarnContext(ctx, "remove orphaned image file",
				slog.String("filename", filename),
				slog.String("error", delErr.Error()))
		}
		return nil, fmt.Errorf("image.Upload: %w", err)
	}

	s.metrics.ImageUploaded(created.MimeType, created.FileSize)
	s.log.InfoContext(ctx, "image uploaded",
		slog.String("image_id", created.ID.String()),
		slog.String("project_id", created.ProjectID.String()),
		slog.Int64("size", created.FileSize))
	return created, nil
}

// checkFile enforces the configured size limit and MIME allow-list.
func (s *Service) checkFile(data []byte, mimeType string) error {
	size := int64(len(data))
	if size > s.cfg.MaxImageBytes() {
		s.metrics.ImageRejected("too_large")
		return &domain.TooLargeError{Message: fmt.Sprintf(
			"image size (%.1fMB) exceeds maximum allowed size (%dMB)",
			float64(size)/(1024*1024), s.cfg.MaxImageSizeMB)}
	}
	if !slices.Contains(s.cfg.AllowedMimeTypes, mimeType) {
		s.metrics.ImageRejected("mime_type")
		return domain.NewValidationError("file", fmt.Sprintf(
			"image type %s not allowed, allowed types: %s",
			mimeType, strings.Join(s.cfg.AllowedMimeTypes, ", ")))
	}
	return nil
}

// GenerateFilename returns a random name keeping the lowercased extension of
// original.
func GenerateFilename(original string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(original))
}

// Dimensions reads the pixel size from the image header. Undecodable data
// yields nil values.
func Dimensions(data []byte) (width, height *int) {
	cfg, _, err := stdimage.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, nil
	}
	return &cfg.Width, &cfg.Height
}

// Get returns image metadata by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("image.Get: %w", err)
	}
	return img, nil
}

// UpdateAltText replaces the accessibility text of an image.
func (s *Service) UpdateAltText(ctx context.Context, id uuid.UUID, input UpdateImageInput) (*domain.Image, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	img, err := s.images.UpdateAltText(ctx, id, input.AltText)
	if err != nil {
		return nil, fmt.Errorf("image.UpdateAltText: %w", err)
	}
	return img, nil
}

// Delete removes the stored file when possible and always removes the record
// of an existing image.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("image.Delete: %w", err)
	}

	if img.IsRemote {
		s.log.WarnContext(ctx, "remote image content left in place",
			slog.String("image_id", id.String()),
			slog.String("key", img.FilePath))
	} else if err := s.blobs.Delete(ctx, img.Filename); err != nil {
		s.log.WarnContext(ctx, "remove image file",
			slog.String("image_id", id.String()),
			slog.String("filename", img.Filename),
			slog.String("error", err.Error()))
	}

	if _, err := s.images.Delete(ctx, id); err != nil {
		return fmt.Errorf("image.Delete: %w", err)
	}

	s.metrics.ImageDeleted()
	s.log.InfoContext(ctx, "image deleted", slog.String("image_id", id.String()))
	return nil
}

// ListByProject returns one page of a project's images.
func (s *Service) ListByProject(ctx context.Context, projectID uuid.UUID, page domain.Page) (domain.ImagePage, error) {
	page = page.Normalize()

	images, err := s.images.ListByProject(ctx, projectID, page)
	if err != nil {
		return domain.ImagePage{}, fmt.Errorf("image.ListByProject: %w", err)
	}
	total, err := s.images.CountByProject(ctx, projectID)
	if err != nil {
		return domain.ImagePage{}, fmt.Errorf("image.ListByProject: %w", err)
	}
	return domain.NewImagePage(images, total, page), nil
}

// Usage returns the image count and byte total of a project.
func (s *Service) Usage(ctx context.Context, projectID uuid.UUID) (domain.StorageUsage, error) {
	usage, err := s.images.Usage(ctx, projectID)
	if err != nil {
		return domain.StorageUsage{}, fmt.Errorf("image.Usage: %w", err)
	}
	return usage, nil
}

// URL returns the address clients use to fetch img.
func (s *Service) URL(img domain.Image) string {
	if img.IsRemote && s.cfg.RemoteBaseURL != "" {
		return s.cfg.RemoteBaseURL + "/" + strings.TrimLeft(img.FilePath, "/")
	}
	return s.apiPrefix + "/images/" + img.Filename + "/file"
}

// OpenFile returns the content of a locally stored image for serving.
// Remotely stored images are rejected with a validation error.
func (s *Service) OpenFile(ctx context.Context, filename string) (*domain.Image, io.ReadSeekCloser, error) {
	if s.blobs.Remote() {
		return nil, nil, domain.NewValidationError("filename", "images are stored remotely")
	}

	img, err := s.images.GetByFilename(ctx, filename)
	if err != nil {
		return nil, nil, fmt.Errorf("image.OpenFile: %w", err)
	}
	if img.IsRemote {
		return nil, nil, domain.NewValidationError("filename", "image is stored remotely")
	}

	f, err := s.blobs.Open(ctx, img.Filename)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "image file missing",
				slog.String("image_id", img.ID.String()),
				slog.String("filename", img.Filename))
		}
		return nil, nil, fmt.Errorf("image.OpenFile: %w", err)
	}
	return img, f, nil
}

package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
	"github.com/mythosengine/backend/internal/service/image"
)

// multipartSlack covers form fields and boundaries around the file part.
const multipartSlack = 1 << 20

type imageService interface {
	Upload(ctx context.Context, input image.UploadImageInput) (*domain.Image, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	UpdateAltText(ctx context.Context, id uuid.UUID, input image.UpdateImageInput) (*domain.Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByProject(ctx context.Context, projectID uuid.UUID, page domain.Page) (domain.ImagePage, error)
	Usage(ctx context.Context, projectID uuid.UUID) (domain.StorageUsage, error)
	URL(img domain.Image) string
	OpenFile(ctx context.Context, filename string) (*domain.Image, io.ReadSeekCloser, error)
}

type uploadRejections interface {
	ImageRejected(reason string)
}

// ImageHandler serves /images endpoints.
type ImageHandler struct {
	svc        imageService
	maxBytes   int64
	rejections uploadRejections
	log        *slog.Logger
}

// NewImageHandler creates an ImageHandler. maxBytes bounds the accepted file
// size before the body is handed to the service; bodies cut off there are
// counted in rejections like the uploads the service turns away.
func NewImageHandler(svc imageService, maxBytes int64, rejections uploadRejections, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{svc: svc, maxBytes: maxBytes, rejections: rejections, log: logger.With("handler", "image")}
}

// Routes mounts the image endpoints.
func (h *ImageHandler) Routes(r chi.Router) {
	r.Post("/upload", h.Upload)
	r.Get("/project/{project_id}", h.ListByProject)
	r.Get("/project/{project_id}/usage", h.Usage)
	r.Get("/project/{project_id}/storage", h.Usage)
	r.Get("/{id}/file", h.ServeFile)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// Upload handles POST /images/upload as multipart/form-data with fields
// file, project_id and optional alt_text.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartSlack)
	if err := r.ParseMultipartForm(multipartSlack); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.rejections.ImageRejected("too_large")
			handleError(w, r, h.log, &domain.TooLargeError{Message: fmt.Sprintf(
				"image exceeds maximum allowed size (%dMB)", h.maxBytes/(1024*1024))})
			return
		}
		handleError(w, r, h.log, domain.NewValidationError("file", "invalid multipart form"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		handleError(w, r, h.log, domain.NewValidationError("file", "file must be an image"))
		return
	}

	projectID, err := uuid.Parse(r.FormValue("project_id"))
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("project_id", "must be a UUID"))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("file", "unreadable upload"))
		return
	}

	input := image.UploadImageInput{
		ProjectID:        projectID,
		OriginalFilename: header.Filename,
		MimeType:         mimeType,
		Data:             data,
	}
	if alt := r.FormValue("alt_text"); alt != "" {
		input.AltText = &alt
	}

	img, err := h.svc.Upload(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toImageResponse(*img, h.svc.URL(*img)))
}

// ListByProject handles GET /images/project/{project_id}.
func (h *ImageHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "project_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	page, err := pageQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.ListByProject(r.Context(), projectID, page)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	images := make([]imageResponse, 0, len(result.Images))
	for _, img := range result.Images {
		images = append(images, toImageResponse(img, h.svc.URL(img)))
	}
	writeJSON(w, http.StatusOK, imageListResponse{
		Images:     images,
		Total:      result.Total,
		Page:       result.Page,
		PerPage:    result.PerPage,
		TotalPages: result.TotalPages,
	})
}

// Usage handles GET /images/project/{project_id}/usage.
func (h *ImageHandler) Usage(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "project_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	usage, err := h.svc.Usage(r.Context(), projectID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, storageUsageResponse{
		ProjectID:      usage.ProjectID,
		TotalImages:    usage.TotalImages,
		TotalSizeBytes: usage.TotalSizeBytes,
		TotalSizeMB:    usage.TotalSizeMB(),
	})
}

// ServeFile handles GET /images/{filename}/file for locally stored images.
// The segment shares the {id} key with the other image routes.
func (h *ImageHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	img, content, err := h.svc.OpenFile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", img.MimeType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeContent(w, r, img.Filename, img.UpdatedAt, content)
}

// Get handles GET /images/{id}.
func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	img, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toImageResponse(*img, h.svc.URL(*img)))
}

type updateImageRequest struct {
	AltText *string `json:"alt_text"`
}

// Update handles PUT /images/{id}. Only the alt text is editable.
func (h *ImageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateImageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	img, err := h.svc.UpdateAltText(r.Context(), id, image.UpdateImageInput{AltText: req.AltText})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toImageResponse(*img, h.svc.URL(*img)))
}

// Delete handles DELETE /images/{id}.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Image deleted successfully")
}

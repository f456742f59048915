package image

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
)

const (
	maxFilenameLength = 255
	maxAltTextLength  = 1000
)

// UploadImageInput holds one uploaded file and its metadata.
type UploadImageInput struct {
	ProjectID        uuid.UUID
	OriginalFilename string
	MimeType         string
	Data             []byte
	AltText          *string
}

func (i UploadImageInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	name := strings.TrimSpace(i.OriginalFilename)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "file", Message: "filename is required"})
	} else if len(name) > maxFilenameLength {
		errs = append(errs, domain.FieldError{Field: "file", Message: "filename too long"})
	}
	if len(i.Data) == 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "file is empty"})
	}
	if i.AltText != nil && len(*i.AltText) > maxAltTextLength {
		errs = append(errs, domain.FieldError{Field: "alt_text", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateImageInput holds the editable image metadata. A nil AltText clears it.
type UpdateImageInput struct {
	AltText *string
}

func (i UpdateImageInput) Validate() error {
	if i.AltText != nil && len(*i.AltText) > maxAltTextLength {
		return domain.NewValidationError("alt_text", "too long")
	}
	return nil
}

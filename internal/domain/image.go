package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Image is the metadata record of an uploaded picture. FilePath is a local
// path or, for remote images, the object key inside Bucket.
type Image struct {
	ID               uuid.UUID
	Filename         string
	OriginalFilename string
	FilePath         string
	FileSize         int64
	MimeType         string
	Width            *int
	Height           *int
	AltText          *string
	IsRemote         bool
	Bucket           *string
	ProjectID        uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StorageUsage aggregates image storage for one project.
type StorageUsage struct {
	ProjectID      uuid.UUID
	TotalImages    int
	TotalSizeBytes int64
}

// TotalSizeMB is the byte total in mebibytes rounded to two decimals.
func (u StorageUsage) TotalSizeMB() float64 {
	if u.TotalSizeBytes <= 0 {
		return 0
	}
	return math.Round(float64(u.TotalSizeBytes)/(1024*1024)*100) / 100
}

// ImagePage is one page of a project's images.
type ImagePage struct {
	Images     []Image
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// NewImagePage computes page numbering from skip/limit and the total count.
func NewImagePage(images []Image, total int, p Page) ImagePage {
	totalPages := 0
	if total > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}
	return ImagePage{
		Images:     images,
		Total:      total,
		Page:       p.Skip/p.Limit + 1,
		PerPage:    p.Limit,
		TotalPages: totalPages,
	}
}

package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/mythosengine/backend/internal/domain"
)

// Remote names an object-storage bucket. Transfers report
// domain.ErrNotSupported; public URLs are built by the image service from the
// configured base URL.
type Remote struct {
	bucket string
}

func NewRemote(bucket string) *Remote {
	return &Remote{bucket: bucket}
}

func (r *Remote) Remote() bool   { return true }
func (r *Remote) Bucket() string { return r.bucket }

func (r *Remote) Put(context.Context, string, []byte) (string, error) {
	return "", fmt.Errorf("remote put: %w", domain.ErrNotSupported)
}

func (r *Remote) Open(context.Context, string) (io.ReadSeekCloser, error) {
	return nil, fmt.Errorf("remote open: %w", domain.ErrNotSupported)
}

func (r *Remote) Delete(context.Context, string) error {
	return fmt.Errorf("remote delete: %w", domain.ErrNotSupported)
}

// Package storage holds the blob backends behind image uploads.
package storage

import (
	"context"
	"io"
)

// BlobStore persists image bytes under a generated name.
type BlobStore interface {
	// Put writes data under name and returns the stored location: an absolute
	// file path for local storage or an object key for remote storage.
	Put(ctx context.Context, name string, data []byte) (string, error)
	// Open returns the content stored under name.
	Open(ctx context.Context, name string) (io.ReadSeekCloser, error)
	// Delete removes the content stored under name. Missing content is not an
	// error.
	Delete(ctx context.Context, name string) error
	// Remote reports whether content lives outside the local filesystem.
	Remote() bool
	// Bucket names the remote bucket; empty for local storage.
	Bucket() string
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mythosengine/backend/internal/domain"
)

// Local stores blobs as files in a single directory.
type Local struct {
	root string
}

// NewLocal creates root if needed and returns a store writing into it.
func NewLocal(root string) (*Local, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w: %w", domain.ErrStorage, err)
	}
	return &Local{root: abs}, nil
}

// Root returns the absolute storage directory.
func (l *Local) Root() string { return l.root }

func (l *Local) Remote() bool   { return false }
func (l *Local) Bucket() string { return "" }

// Path resolves name inside the root. Names that would escape the root are
// rejected with a validation error.
func (l *Local) Path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", domain.NewValidationError("filename", "invalid")
	}
	p := filepath.Join(l.root, name)
	if !strings.HasPrefix(p, l.root+string(filepath.Separator)) {
		return "", domain.NewValidationError("filename", "invalid")
	}
	return p, nil
}

func (l *Local) Put(_ context.Context, name string, data []byte) (string, error) {
	p, err := l.Path(name)
	if err != nil {
		return "", err
	}
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w: %w", name, domain.ErrStorage, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(p)
		return "", fmt.Errorf("write %s: %w: %w", name, domain.ErrStorage, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(p)
		return "", fmt.Errorf("close %s: %w: %w", name, domain.ErrStorage, err)
	}
	return p, nil
}

func (l *Local) Open(_ context.Context, name string) (io.ReadSeekCloser, error) {
	p, err := l.Path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("file %s: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %w", name, domain.ErrStorage, err)
	}
	return f, nil
}

func (l *Local) Delete(_ context.Context, name string) error {
	p, err := l.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w: %w", name, domain.ErrStorage, err)
	}
	return nil
}

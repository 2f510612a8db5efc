package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// Local serves blobs from a root directory on the local filesystem.
type Local struct {
	root string
}

// NewLocal creates a blob store rooted at dir.
func NewLocal(dir string) *Local {
	return &Local{root: dir}
}

// Open opens an existing file for reading.
func (l *Local) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(l.root, name))
}

// Create creates or truncates a file, creating parent directories as
// needed.
func (l *Local) Create(_ context.Context, name string) (io.WriteCloser, error) {
	path := filepath.Join(l.root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

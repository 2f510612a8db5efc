package blobstore

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// Memory is an in-memory blob store, mainly for tests.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory creates an empty in-memory blob store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// Open returns a reader over the stored bytes.
func (m *Memory) Open(_ context.Context, name string) (io.ReadCloser, error) {
	m.mu.RLock()
	data, ok := m.blobs[name]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Create returns a writer whose contents become visible on Close.
func (m *Memory) Create(_ context.Context, name string) (io.WriteCloser, error) {
	return &memoryWriter{store: m, name: name}, nil
}

type memoryWriter struct {
	store *Memory
	name  string
	buf   bytes.Buffer
}

func (w *memoryWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *memoryWriter) Close() error {
	w.store.mu.Lock()
	w.store.blobs[w.name] = w.buf.Bytes()
	w.store.mu.Unlock()
	return nil
}

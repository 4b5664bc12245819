package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/tayo/teamwork-backend/internal/upload"
)

// MemoryUploader is an in-memory stand-in for the S3 image store. It records
// stored objects so tests can assert on uploads and compensating removals.
type MemoryUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
	removed []string
}

func NewMemoryUploader() *MemoryUploader {
	return &MemoryUploader{objects: make(map[string][]byte)}
}

func (m *MemoryUploader) Upload(ctx context.Context, filename string, body io.Reader) (*upload.Result, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("gifs/test/%s", uuid.New())

	m.mu.Lock()
	m.objects[key] = data
	m.mu.Unlock()

	return &upload.Result{
		URL:      fmt.Sprintf("https://images.test.local/%s", key),
		PublicID: key,
	}, nil
}

func (m *MemoryUploader) Remove(ctx context.Context, publicID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, publicID)
	m.removed = append(m.removed, publicID)
	return nil
}

// Stored reports whether an object with the given key is still held.
func (m *MemoryUploader) Stored(publicID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[publicID]
	return ok
}

// Removed returns the keys Remove has been called with, in order.
func (m *MemoryUploader) Removed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.removed...)
}

// Count returns the number of objects currently stored.
func (m *MemoryUploader) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

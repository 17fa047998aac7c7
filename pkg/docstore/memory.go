package docstore

import (
	"context"
	"maps"
	"strings"
	"sync"
)

// Ensure MemoryReader implements Reader.
var _ Reader = (*MemoryReader)(nil)

// MemoryReader is an in-memory Reader keyed by full document path.
// Intended for tests and local development.
type MemoryReader struct {
	mu   sync.RWMutex
	docs map[string]map[string]any
}

// NewMemoryReader creates an empty in-memory reader.
func NewMemoryReader() *MemoryReader {
	return &MemoryReader{docs: make(map[string]map[string]any)}
}

// Put stores the document fields at path, replacing any existing document.
func (r *MemoryReader) Put(path string, fields map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[strings.Trim(path, "/")] = maps.Clone(fields)
}

// Delete removes the document at path if present.
func (r *MemoryReader) Delete(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, strings.Trim(path, "/"))
}

// Read fetches the single document at path.
func (r *MemoryReader) Read(ctx context.Context, path string) (Document, error) {
	segments, err := splitPath(path)
	if err != nil {
		return Document{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	fields, ok := r.docs[strings.Join(segments, "/")]
	if !ok {
		return Document{}, ErrNotFound
	}

	return Document{
		ID:     segments[len(segments)-1],
		Fields: maps.Clone(fields),
	}, nil
}

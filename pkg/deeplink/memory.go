package deeplink

import (
	"context"
	"sync"
)

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-process Store for tests and single-process setups.
type MemoryStore struct {
	mu     sync.Mutex
	target string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Set stores the deep-link target, replacing any previous one.
func (s *MemoryStore) Set(_ context.Context, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = target
	return nil
}

// Take returns the stored target and clears it.
func (s *MemoryStore) Take(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	target := s.target
	s.target = ""
	return target, nil
}

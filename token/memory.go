package token

import (
	"context"
	"sync"
)

// MemoryStore keeps the credential in process memory. Safe for concurrent
// use. The zero value is ready.
type MemoryStore struct {
	mu  sync.RWMutex
	raw string
	set bool
}

// NewMemoryStore describes the newmemorystore operation and its observable behavior.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Token describes the token operation and its observable behavior.
func (s *MemoryStore) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return "", ErrNotFound
	}
	return s.raw, nil
}

// Set describes the set operation and its observable behavior.
func (s *MemoryStore) Set(ctx context.Context, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = raw
	s.set = true
	return nil
}

// Invalidate describes the invalidate operation and its observable behavior.
func (s *MemoryStore) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = ""
	s.set = false
	return nil
}

// Package storage defines the key-value persistence contract used by the
// history and favorites use cases, together with an in-memory implementation.
package storage

import (
	"context"
	"sync"
)

// KeyValueStore persists ordered string lists under string keys.
// Get returns a nil slice for an absent key. No transactional guarantees
// are assumed; callers namespace their keys and do not share them.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]string, error)
	Set(ctx context.Context, key string, values []string) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore is a process-local KeyValueStore. It backs tests and serves
// as the default when no database path is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	values, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, values []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]string, len(values))
	copy(stored, values)
	s.data[key] = stored
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

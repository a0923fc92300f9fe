package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// memoryStore implements the Store interface in memory, for tests and for
// ephemeral mode. Values are kept as encoded JSON so load/save round-trips
// behave exactly like the file-backed store.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]json.RawMessage
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[string]json.RawMessage)}
}

func (s *memoryStore) Load(ctx context.Context, key string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.entries[key]
	if !ok {
		return nil
	}
	if err := decode(raw, out); err != nil {
		// Same contract as the file store: corrupt means absent.
		return nil
	}
	return nil
}

func (s *memoryStore) Save(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncodeFailed, key, err)
	}
	s.entries[key] = data
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

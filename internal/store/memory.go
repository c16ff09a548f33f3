package store

import (
	"encoding/json"
	"sync"
)

// MemoryStore is a non-persistent Store used in tests and as a fallback
// when no database is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Load(key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make(json.RawMessage, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Save(key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

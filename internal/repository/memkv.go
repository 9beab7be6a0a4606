package repository

import (
	"context"
	"sync"

	"github.com/easeaico/project-texas/internal/mood"
)

type memEntry struct {
	value   []byte
	version int64
}

// MemoryKV is an in-memory KV with the same atomic-replace semantics as the
// backed stores. Used by tests and the CLI when no database is configured.
type MemoryKV struct {
	mu      sync.RWMutex
	entries map[string]memEntry
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: make(map[string]memEntry)}
}

// Get reads the value and its version for a key.
func (s *MemoryKV) Get(_ context.Context, key string) ([]byte, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[key]
	if !ok {
		return nil, 0, ErrKeyNotFound
	}
	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, entry.version, nil
}

// Replace swaps the value when the stored version matches expect.
func (s *MemoryKV) Replace(_ context.Context, key string, value []byte, expect int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		if expect != 0 {
			return mood.ErrStaleRecord
		}
		stored := make([]byte, len(value))
		copy(stored, value)
		s.entries[key] = memEntry{value: stored, version: 1}
		return nil
	}
	if entry.version != expect {
		return mood.ErrStaleRecord
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.entries[key] = memEntry{value: stored, version: entry.version + 1}
	return nil
}

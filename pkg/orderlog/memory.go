package orderlog

import (
	"context"
	"sync"
)

// MemoryStore is a Store kept entirely in process memory. It backs local
// development without Redis and the package tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string

	// FailSet, when set, is returned from every Set call.
	FailSet error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	if m.FailSet != nil {
		return m.FailSet
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

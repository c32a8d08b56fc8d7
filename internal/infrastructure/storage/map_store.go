// Package storage implements port.PreferenceStore over memory, cookies and
// the preference repository.
package storage

import (
	"context"
	"sync"

	"github.com/bnema/themeroot/internal/application/port"
)

// MapStore is an in-memory preference store safe for concurrent use.
type MapStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ port.PreferenceStore = (*MapStore)(nil)

// NewMapStore returns a store seeded with a copy of initial.
func NewMapStore(initial map[string]string) *MapStore {
	values := make(map[string]string, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &MapStore{values: values}
}

// Lookup implements port.PreferenceStore.
func (s *MapStore) Lookup(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Store implements port.PreferenceStore.
func (s *MapStore) Store(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Remove implements port.PreferenceStore.
func (s *MapStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Snapshot returns a copy of the stored entries.
func (s *MapStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

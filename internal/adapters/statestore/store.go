// Package statestore persists the previous cycle's rank map between
// refreshes so movement indicators can compare two generations.
package statestore

import (
	"context"
	"sync"

	"github.com/okian/podium/internal/domain/model"
)

// Store provides durable storage for exactly one rank map. Load fails
// soft: corrupt or missing state comes back as an empty map so a
// broken store can never take the refresh pipeline down.
type Store interface {
	// Load returns the persisted rank map, or an empty map when no
	// usable state exists.
	Load(ctx context.Context) (model.RankMap, error)

	// Save replaces the persisted rank map.
	Save(ctx context.Context, m model.RankMap) error
}

// MemoryStore implements Store in memory, for tests and for running
// without a state file.
type MemoryStore struct {
	mu sync.Mutex
	m  model.RankMap
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored map.
func (s *MemoryStore) Load(_ context.Context) (model.RankMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(model.RankMap, len(s.m))
	for id, r := range s.m {
		out[id] = r
	}
	return out, nil
}

// Save replaces the stored map with a copy of m.
func (s *MemoryStore) Save(_ context.Context, m model.RankMap) error {
	cp := make(model.RankMap, len(m))
	for id, r := range m {
		cp[id] = r
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = cp
	return nil
}

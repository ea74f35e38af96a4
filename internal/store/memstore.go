package store

import (
	"context"
	"sync"

	"github.com/katalvlaran/lvlath/kwok"
)

// MemStore is an in-memory Store guarded by a single RWMutex, used by
// cmd/kwokmatch's default (no -db-dsn) mode and by internal/service's tests.
type MemStore struct {
	mu   sync.RWMutex
	rows map[string]kwok.Matching
}

// NewMemStore returns an empty MemStore, ready to use.
func NewMemStore() *MemStore {
	return &MemStore{rows: make(map[string]kwok.Matching)}
}

func (s *MemStore) SaveMatching(_ context.Context, requestID string, m kwok.Matching) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[requestID] = m
	return nil
}

func (s *MemStore) GetMatching(_ context.Context, requestID string) (kwok.Matching, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.rows[requestID]
	if !ok {
		return kwok.Matching{}, ErrNotFound
	}
	return m, nil
}

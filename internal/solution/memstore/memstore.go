// Package memstore provides an in-memory implementation of solution.Store.
package memstore

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/linnemanlabs/trisolve/internal/solution"
)

// Store holds solution records in memory. Suitable for dev/testing.
type Store struct {
	mu      sync.RWMutex
	records map[string]*solution.Record // solution ID -> record
}

// New initializes a new in-memory Store.
func New() *Store {
	return &Store{
		records: make(map[string]*solution.Record),
	}
}

// Get retrieves a record by its ID. Returns a copy.
func (s *Store) Get(_ context.Context, id string) (*solution.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return nil, false, nil
	}
	return r.Clone(), true, nil
}

// Put stores a copy of the record.
func (s *Store) Put(_ context.Context, r *solution.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[r.ID] = r.Clone()
	return nil
}

// Recent returns copies of up to limit records, newest first.
func (s *Store) Recent(_ context.Context, limit int) ([]*solution.Record, error) {
	s.mu.RLock()
	out := make([]*solution.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Clone())
	}
	s.mu.RUnlock()

	// ULIDs sort by creation time, the ID breaks ties within a millisecond
	slices.SortFunc(out, func(a, b *solution.Record) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

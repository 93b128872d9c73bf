// Package memory provides in-memory implementations of the driven
// storage ports. Used by service and CLI tests; carries the same
// rows-affected semantics as the SQLite adapter.
package memory

import (
	"context"
	"sync"

	"github.com/technobuff/ichecklist/internal/core/domain"
	"github.com/technobuff/ichecklist/internal/core/ports/driven"
)

// Ensure ChecklistStore implements the interface.
var _ driven.ChecklistStore = (*ChecklistStore)(nil)

// ChecklistStore is an in-memory implementation of driven.ChecklistStore.
type ChecklistStore struct {
	mu     sync.RWMutex
	nextID int64
	lists  map[int64]domain.Checklist
}

// NewChecklistStore creates a new in-memory checklist store.
func NewChecklistStore() *ChecklistStore {
	return &ChecklistStore{
		nextID: 1,
		lists:  make(map[int64]domain.Checklist),
	}
}

// Create inserts a new checklist and returns its assigned id.
func (s *ChecklistStore) Create(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.lists[id] = domain.Checklist{ID: id, Name: name}
	return id, nil
}

// Get retrieves a checklist by id.
func (s *ChecklistStore) Get(_ context.Context, id int64) (*domain.Checklist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := s.lists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &list, nil
}

// List returns every checklist.
func (s *ChecklistStore) List(_ context.Context) ([]domain.Checklist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Checklist, 0, len(s.lists))
	for _, list := range s.lists {
		result = append(result, list)
	}
	return result, nil
}

// Delete removes the checklist row and reports rows affected.
func (s *ChecklistStore) Delete(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lists[id]; !ok {
		return 0, nil
	}
	delete(s.lists, id)
	return 1, nil
}

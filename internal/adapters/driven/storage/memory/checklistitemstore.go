package memory

import (
	"context"
	"sync"

	"github.com/technobuff/ichecklist/internal/core/domain"
	"github.com/technobuff/ichecklist/internal/core/ports/driven"
)

// Ensure ChecklistItemStore implements the interface.
var _ driven.ChecklistItemStore = (*ChecklistItemStore)(nil)

// ChecklistItemStore is an in-memory implementation of
// driven.ChecklistItemStore. Like the SQLite adapter, it performs no
// referential check on the list id.
type ChecklistItemStore struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.ChecklistItem
}

// NewChecklistItemStore creates a new in-memory item store.
func NewChecklistItemStore() *ChecklistItemStore {
	return &ChecklistItemStore{
		nextID: 1,
		items:  make(map[int64]domain.ChecklistItem),
	}
}

// Create inserts a new item and returns its assigned id.
func (s *ChecklistItemStore) Create(_ context.Context, listID int64, text string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.items[id] = domain.ChecklistItem{ID: id, ListID: listID, Text: text}
	return id, nil
}

// Get retrieves an item by its own id.
func (s *ChecklistItemStore) Get(_ context.Context, id int64) (*domain.ChecklistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

// ListByChecklist returns every item belonging to the given list.
func (s *ChecklistItemStore) ListByChecklist(_ context.Context, listID int64) ([]domain.ChecklistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.ChecklistItem
	for _, item := range s.items {
		if item.ListID == listID {
			result = append(result, item)
		}
	}
	return result, nil
}

// DeleteByChecklist removes all items for the given list and reports
// rows affected.
func (s *ChecklistItemStore) DeleteByChecklist(_ context.Context, listID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, item := range s.items {
		if item.ListID == listID {
			delete(s.items, id)
			removed++
		}
	}
	return removed, nil
}

package driven

import (
	"context"

	"github.com/technobuff/ichecklist/internal/core/domain"
)

// ChecklistStore persists checklists.
// Backed by SQLite for local storage.
type ChecklistStore interface {
	// Create inserts a new checklist and returns its assigned row id.
	Create(ctx context.Context, name string) (int64, error)

	// Get retrieves a checklist by id.
	// Returns domain.ErrNotFound if no row matches.
	Get(ctx context.Context, id int64) (*domain.Checklist, error)

	// List returns every checklist. Order is unspecified.
	List(ctx context.Context) ([]domain.Checklist, error)

	// Delete removes the checklist row with the given id and reports
	// how many rows were removed (0 or 1). A zero count is not an
	// error at this layer.
	Delete(ctx context.Context, id int64) (int64, error)
}

// ChecklistItemStore persists checklist items.
//
// The store performs no referential check: items may be created for a
// list id that matches no checklist.
type ChecklistItemStore interface {
	// Create inserts a new item and returns its assigned row id.
	Create(ctx context.Context, listID int64, text string) (int64, error)

	// Get retrieves an item by its own id.
	// Returns domain.ErrNotFound if no row matches.
	Get(ctx context.Context, id int64) (*domain.ChecklistItem, error)

	// ListByChecklist returns every item belonging to the given list.
	// Order is unspecified.
	ListByChecklist(ctx context.Context, listID int64) ([]domain.ChecklistItem, error)

	// DeleteByChecklist removes all items belonging to the given list
	// and reports how many rows were removed. A zero count is not an
	// error at this layer; callers decide what it means.
	DeleteByChecklist(ctx context.Context, listID int64) (int64, error)
}

package driving

import (
	"context"

	"github.com/technobuff/ichecklist/internal/core/domain"
)

// ChecklistService manages checklists and their items.
//
// Checklists and items are append/delete only; no update operations
// exist for either entity.
type ChecklistService interface {
	// CreateChecklist creates a checklist with the given name and
	// returns its assigned id.
	CreateChecklist(ctx context.Context, name string) (int64, error)

	// GetChecklist retrieves a checklist by id.
	// Returns domain.ErrNotFound when absent.
	GetChecklist(ctx context.Context, id int64) (*domain.Checklist, error)

	// ListChecklists returns every checklist. Order is unspecified.
	ListChecklists(ctx context.Context) ([]domain.Checklist, error)

	// DeleteChecklist removes a checklist and its items.
	//
	// The items are deleted first, and the checklist row is only
	// removed if that step removed at least one row. A checklist with
	// zero items therefore cannot be deleted through this path: the
	// call fails with domain.ErrNothingDeleted and the checklist row
	// remains. This mirrors the behavior of the original adapter and
	// is kept deliberately; see DESIGN.md.
	DeleteChecklist(ctx context.Context, id int64) error

	// AddItem creates an item under the given list and returns its
	// assigned id. The list id is not checked against existing
	// checklists.
	AddItem(ctx context.Context, listID int64, text string) (int64, error)

	// GetItem retrieves an item by its own id.
	// Returns domain.ErrNotFound when absent.
	GetItem(ctx context.Context, id int64) (*domain.ChecklistItem, error)

	// ListItems returns every item belonging to the given list.
	// Order is unspecified.
	ListItems(ctx context.Context, listID int64) ([]domain.ChecklistItem, error)

	// ClearItems deletes all items belonging to the given list.
	// Returns domain.ErrNothingDeleted if no rows were removed.
	ClearItems(ctx context.Context, listID int64) error
}

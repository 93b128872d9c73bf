package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/technobuff/ichecklist/internal/core/domain"
	"github.com/technobuff/ichecklist/internal/core/ports/driven"
	"github.com/technobuff/ichecklist/internal/core/ports/driving"
	"github.com/technobuff/ichecklist/internal/logger"
)

// Ensure ChecklistService implements the interface.
var _ driving.ChecklistService = (*ChecklistService)(nil)

// ChecklistService manages checklists and their items.
type ChecklistService struct {
	listStore driven.ChecklistStore
	itemStore driven.ChecklistItemStore
}

// NewChecklistService creates a new checklist service.
func NewChecklistService(
	listStore driven.ChecklistStore,
	itemStore driven.ChecklistItemStore,
) *ChecklistService {
	return &ChecklistService{
		listStore: listStore,
		itemStore: itemStore,
	}
}

// CreateChecklist creates a checklist with the given name.
func (s *ChecklistService) CreateChecklist(ctx context.Context, name string) (int64, error) {
	if s.listStore == nil {
		return 0, domain.ErrNotImplemented
	}
	if strings.TrimSpace(name) == "" {
		return 0, domain.ErrInvalidInput
	}

	id, err := s.listStore.Create(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("create checklist: %w", err)
	}
	logger.Debug("created checklist %d (%q)", id, name)
	return id, nil
}

// GetChecklist retrieves a checklist by id.
func (s *ChecklistService) GetChecklist(ctx context.Context, id int64) (*domain.Checklist, error) {
	if s.listStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return s.listStore.Get(ctx, id)
}

// ListChecklists returns every checklist.
func (s *ChecklistService) ListChecklists(ctx context.Context) ([]domain.Checklist, error) {
	if s.listStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.listStore.List(ctx)
}

// DeleteChecklist removes a checklist and its items.
//
// Items are deleted first; the checklist row is only removed if that
// step removed at least one row. A checklist with zero items fails
// with domain.ErrNothingDeleted and its row remains. This reproduces
// the original adapter's behavior and is intentionally not corrected
// here; callers wanting to remove an empty checklist have no path to
// do so.
func (s *ChecklistService) DeleteChecklist(ctx context.Context, id int64) error {
	if s.listStore == nil || s.itemStore == nil {
		return domain.ErrNotImplemented
	}
	if id <= 0 {
		return domain.ErrInvalidInput
	}

	removed, err := s.itemStore.DeleteByChecklist(ctx, id)
	if err != nil {
		return fmt.Errorf("delete items for list %d: %w", id, err)
	}
	if removed == 0 {
		return fmt.Errorf("delete items for list %d: %w", id, domain.ErrNothingDeleted)
	}
	logger.Debug("deleted %d item(s) for checklist %d", removed, id)

	rows, err := s.listStore.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete checklist %d: %w", id, err)
	}
	if rows == 0 {
		return fmt.Errorf("delete checklist %d: %w", id, domain.ErrNothingDeleted)
	}
	logger.Debug("deleted checklist %d", id)
	return nil
}

// AddItem creates an item under the given list.
// The list id is not validated against existing checklists.
func (s *ChecklistService) AddItem(ctx context.Context, listID int64, text string) (int64, error) {
	if s.itemStore == nil {
		return 0, domain.ErrNotImplemented
	}
	item := domain.ChecklistItem{ListID: listID, Text: text}
	if err := item.Validate(); err != nil {
		return 0, err
	}

	id, err := s.itemStore.Create(ctx, listID, text)
	if err != nil {
		return 0, fmt.Errorf("create item: %w", err)
	}
	logger.Debug("created item %d under checklist %d", id, listID)
	return id, nil
}

// GetItem retrieves an item by its own id.
func (s *ChecklistService) GetItem(ctx context.Context, id int64) (*domain.ChecklistItem, error) {
	if s.itemStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return s.itemStore.Get(ctx, id)
}

// ListItems returns every item belonging to the given list.
func (s *ChecklistService) ListItems(ctx context.Context, listID int64) ([]domain.ChecklistItem, error) {
	if s.itemStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if listID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return s.itemStore.ListByChecklist(ctx, listID)
}

// ClearItems deletes all items belonging to the given list.
func (s *ChecklistService) ClearItems(ctx context.Context, listID int64) error {
	if s.itemStore == nil {
		return domain.ErrNotImplemented
	}
	if listID <= 0 {
		return domain.ErrInvalidInput
	}

	removed, err := s.itemStore.DeleteByChecklist(ctx, listID)
	if err != nil {
		return fmt.Errorf("delete items for list %d: %w", listID, err)
	}
	if removed == 0 {
		return fmt.Errorf("delete items for list %d: %w", listID, domain.ErrNothingDeleted)
	}
	logger.Debug("cleared %d item(s) for checklist %d", removed, listID)
	return nil
}

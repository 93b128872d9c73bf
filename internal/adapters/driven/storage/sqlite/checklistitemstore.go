package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/technobuff/ichecklist/internal/core/domain"
	"github.com/technobuff/ichecklist/internal/core/ports/driven"
)

// checklistItemStore implements driven.ChecklistItemStore.
type checklistItemStore struct {
	store *Store
}

var _ driven.ChecklistItemStore = (*checklistItemStore)(nil)

// Create inserts a new item and returns its assigned row id.
// The list id is not checked against the checklist table.
func (s *checklistItemStore) Create(ctx context.Context, listID int64, text string) (int64, error) {
	result, err := s.store.db.ExecContext(ctx,
		"INSERT INTO checklist_item (list_id, item) VALUES (?, ?)", listID, text)
	if err != nil {
		return 0, fmt.Errorf("inserting item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting item id: %w", err)
	}
	return id, nil
}

// Get retrieves an item by its own id.
func (s *checklistItemStore) Get(ctx context.Context, id int64) (*domain.ChecklistItem, error) {
	var item domain.ChecklistItem
	err := s.store.db.QueryRowContext(ctx,
		"SELECT id, list_id, item FROM checklist_item WHERE id = ?", id,
	).Scan(&item.ID, &item.ListID, &item.Text)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning item: %w", err)
	}
	return &item, nil
}

// ListByChecklist returns every item belonging to the given list.
func (s *checklistItemStore) ListByChecklist(ctx context.Context, listID int64) ([]domain.ChecklistItem, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT id, list_id, item FROM checklist_item WHERE list_id = ?", listID)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	var items []domain.ChecklistItem //nolint:prealloc // size unknown from query
	for rows.Next() {
		var item domain.ChecklistItem
		if err := rows.Scan(&item.ID, &item.ListID, &item.Text); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return items, nil
}

// DeleteByChecklist removes all items for the given list and reports
// rows affected.
func (s *checklistItemStore) DeleteByChecklist(ctx context.Context, listID int64) (int64, error) {
	result, err := s.store.db.ExecContext(ctx,
		"DELETE FROM checklist_item WHERE list_id = ?", listID)
	if err != nil {
		return 0, fmt.Errorf("deleting items: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}
	return rows, nil
}

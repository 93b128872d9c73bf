package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/technobuff/ichecklist/internal/core/domain"
	"github.com/technobuff/ichecklist/internal/core/ports/driven"
)

// checklistStore implements driven.ChecklistStore.
type checklistStore struct {
	store *Store
}

var _ driven.ChecklistStore = (*checklistStore)(nil)

// Create inserts a new checklist and returns its assigned row id.
func (s *checklistStore) Create(ctx context.Context, name string) (int64, error) {
	result, err := s.store.db.ExecContext(ctx,
		"INSERT INTO checklist (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("inserting checklist: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting checklist id: %w", err)
	}
	return id, nil
}

// Get retrieves a checklist by id.
func (s *checklistStore) Get(ctx context.Context, id int64) (*domain.Checklist, error) {
	var list domain.Checklist
	err := s.store.db.QueryRowContext(ctx,
		"SELECT id, name FROM checklist WHERE id = ?", id,
	).Scan(&list.ID, &list.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning checklist: %w", err)
	}
	return &list, nil
}

// List returns every checklist. No ORDER BY: insertion order is not
// guaranteed to be preserved by the engine.
func (s *checklistStore) List(ctx context.Context) ([]domain.Checklist, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT id, name FROM checklist")
	if err != nil {
		return nil, fmt.Errorf("querying checklists: %w", err)
	}
	defer rows.Close()

	var lists []domain.Checklist //nolint:prealloc // size unknown from query
	for rows.Next() {
		var list domain.Checklist
		if err := rows.Scan(&list.ID, &list.Name); err != nil {
			return nil, fmt.Errorf("scanning checklist: %w", err)
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating checklists: %w", err)
	}

	return lists, nil
}

// Delete removes the checklist row and reports rows affected.
func (s *checklistStore) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := s.store.db.ExecContext(ctx,
		"DELETE FROM checklist WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("deleting checklist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}
	return rows, nil
}

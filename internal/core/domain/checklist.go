package domain

import "strings"

// Checklist represents a named collection of items.
type Checklist struct {
	// ID is the store-assigned row id. Assigned on creation and stable
	// for the record's lifetime.
	ID int64

	// Name is the human-readable checklist name. Required.
	Name string
}

// Validate checks that the checklist is well formed.
func (c *Checklist) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ChecklistItem represents a single entry belonging to one checklist.
//
// The parent reference is NOT enforced by the store: an item may carry
// a ListID that matches no checklist. That item appears in no
// checklist's item set but remains retrievable by its own id.
type ChecklistItem struct {
	// ID is the store-assigned row id.
	ID int64

	// ListID references the owning Checklist.
	ListID int64

	// Text is the item content. Required.
	Text string
}

// Validate checks that the item is well formed.
// It does not check that ListID references an existing checklist.
func (i *ChecklistItem) Validate() error {
	if i.ListID <= 0 {
		return ErrInvalidInput
	}
	if strings.TrimSpace(i.Text) == "" {
		return ErrInvalidInput
	}
	return nil
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestChecklist_Fields tests Checklist structure fields
func TestChecklist_Fields(t *testing.T) {
	list := Checklist{
		ID:   1,
		Name: "Groceries",
	}

	assert.Equal(t, int64(1), list.ID)
	assert.Equal(t, "Groceries", list.Name)
}

func TestChecklist_Validate(t *testing.T) {
	list := Checklist{Name: "Groceries"}
	assert.NoError(t, list.Validate())
}

func TestChecklist_Validate_EmptyName(t *testing.T) {
	list := Checklist{Name: ""}
	assert.ErrorIs(t, list.Validate(), ErrInvalidInput)
}

func TestChecklist_Validate_WhitespaceName(t *testing.T) {
	list := Checklist{Name: "   "}
	assert.ErrorIs(t, list.Validate(), ErrInvalidInput)
}

// TestChecklistItem_Fields tests ChecklistItem structure fields
func TestChecklistItem_Fields(t *testing.T) {
	item := ChecklistItem{
		ID:     7,
		ListID: 1,
		Text:   "Milk",
	}

	assert.Equal(t, int64(7), item.ID)
	assert.Equal(t, int64(1), item.ListID)
	assert.Equal(t, "Milk", item.Text)
}

func TestChecklistItem_Validate(t *testing.T) {
	item := ChecklistItem{ListID: 1, Text: "Milk"}
	assert.NoError(t, item.Validate())
}

func TestChecklistItem_Validate_EmptyText(t *testing.T) {
	item := ChecklistItem{ListID: 1, Text: ""}
	assert.ErrorIs(t, item.Validate(), ErrInvalidInput)
}

func TestChecklistItem_Validate_NonPositiveListID(t *testing.T) {
	item := ChecklistItem{ListID: 0, Text: "Milk"}
	assert.ErrorIs(t, item.Validate(), ErrInvalidInput)

	item.ListID = -4
	assert.ErrorIs(t, item.Validate(), ErrInvalidInput)
}

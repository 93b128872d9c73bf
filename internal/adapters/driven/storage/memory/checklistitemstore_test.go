package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/technobuff/ichecklist/internal/core/domain"
)

func TestChecklistItemStore_CreateAndGet(t *testing.T) {
	store := NewChecklistItemStore()
	ctx := context.Background()

	id, err := store.Create(ctx, 1, "Milk")
	require.NoError(t, err)

	item, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ListID)
	assert.Equal(t, "Milk", item.Text)
}

func TestChecklistItemStore_Get_NotFound(t *testing.T) {
	store := NewChecklistItemStore()

	_, err := store.Get(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChecklistItemStore_ListByChecklist(t *testing.T) {
	store := NewChecklistItemStore()
	ctx := context.Background()

	_, err := store.Create(ctx, 1, "Milk")
	require.NoError(t, err)
	_, err = store.Create(ctx, 1, "Eggs")
	require.NoError(t, err)
	_, err = store.Create(ctx, 2, "Nails")
	require.NoError(t, err)

	items, err := store.ListByChecklist(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestChecklistItemStore_DeleteByChecklist_ReportsRowsAffected(t *testing.T) {
	store := NewChecklistItemStore()
	ctx := context.Background()

	_, err := store.Create(ctx, 1, "Milk")
	require.NoError(t, err)
	_, err = store.Create(ctx, 1, "Eggs")
	require.NoError(t, err)

	rows, err := store.DeleteByChecklist(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rows)

	rows, err = store.DeleteByChecklist(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyDataDir, "/tmp/checklists"))

	assert.Equal(t, "/tmp/checklists", store.GetString(KeyDataDir))

	val, ok := store.Get(KeyDataDir)
	require.True(t, ok)
	assert.Equal(t, "/tmp/checklists", val)
}

func TestConfigStore_Get_MissingKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("missing"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_PersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyVerbose, true))
	require.NoError(t, store.Set("retention_days", int64(30)))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.True(t, reopened.GetBool(KeyVerbose))
	assert.Equal(t, 30, reopened.GetInt("retention_days"))
}

func TestConfigStore_Delete(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyDataDir, "/tmp/x"))
	require.NoError(t, store.Delete(KeyDataDir))

	_, ok := store.Get(KeyDataDir)
	assert.False(t, ok)

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	_, ok = reopened.Get(KeyDataDir)
	assert.False(t, ok)
}

func TestConfigStore_Keys_Sorted(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyVerbose, false))
	require.NoError(t, store.Set(KeyDataDir, "/data"))

	assert.Equal(t, []string{KeyDataDir, KeyVerbose}, store.Keys())
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("number", int64(5)))
	assert.Empty(t, store.GetString("number"))
	assert.False(t, store.GetBool("number"))
	assert.Zero(t, store.GetInt("text"))
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
}

func TestConfigSetAndGet(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("config", "set", "data_dir", "/tmp/checklists")
	require.NoError(t, err)
	assert.Contains(t, out, "Set data_dir = /tmp/checklists")

	out, err = executeCommand("config", "get", "data_dir")
	require.NoError(t, err)
	assert.Contains(t, out, "/tmp/checklists")
}

func TestConfigSet_ParsesBooleans(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("config", "set", "verbose", "true")
	require.NoError(t, err)

	assert.True(t, configStore.GetBool("verbose"))
}

func TestConfigGet_MissingKey(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("config", "get", "missing")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `key "missing" is not set`)
}

func TestConfigList(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("config", "set", "data_dir", "/data")
	require.NoError(t, err)

	out, err := executeCommand("config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "data_dir = /data")
}

func TestConfigCmd_NoStore(t *testing.T) {
	oldConfig := configStore
	configStore = nil
	defer func() { configStore = oldConfig }()

	_, err := executeCommand("config", "get", "data_dir")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

package cli

import (
	"bytes"
	"os"

	"github.com/technobuff/ichecklist/internal/adapters/driven/config/file"
	"github.com/technobuff/ichecklist/internal/adapters/driven/storage/memory"
	"github.com/technobuff/ichecklist/internal/core/services"
)

// setupTestServices injects in-memory services and a temp config store.
// The returned cleanup restores the previous state.
func setupTestServices() func() {
	oldService := checklistService
	oldConfig := configStore

	tempDir, err := os.MkdirTemp("", "ichecklist-test-*")
	if err != nil {
		panic(err)
	}

	cfg, err := file.NewConfigStore(tempDir)
	if err != nil {
		panic(err)
	}

	checklistService = services.NewChecklistService(
		memory.NewChecklistStore(),
		memory.NewChecklistItemStore(),
	)
	configStore = cfg

	return func() {
		checklistService = oldService
		configStore = oldConfig
		os.RemoveAll(tempDir)
	}
}

// executeCommand runs the root command with the given args and captures
// its combined output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

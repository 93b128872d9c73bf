package main

import (
	"fmt"
	"os"

	"github.com/technobuff/ichecklist/internal/adapters/driven/config/file"
	"github.com/technobuff/ichecklist/internal/adapters/driven/storage/sqlite"
	"github.com/technobuff/ichecklist/internal/adapters/driving/cli"
	"github.com/technobuff/ichecklist/internal/core/ports/driven"
	"github.com/technobuff/ichecklist/internal/core/ports/driving"
	"github.com/technobuff/ichecklist/internal/core/services"
	"github.com/technobuff/ichecklist/internal/logger"
)

func main() {
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// buildServices is the composition root: config store first, then the
// SQLite store, then the checklist service. The returned cleanup
// releases the database handle after command execution.
func buildServices(dataDir string) (driving.ChecklistService, driven.ConfigStore, func() error, error) {
	cfg, err := file.NewConfigStore("")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening config: %w", err)
	}

	if cfg.GetBool(file.KeyVerbose) {
		logger.SetVerbose(true)
	}

	// Flag wins over the configured default.
	if dataDir == "" {
		dataDir = cfg.GetString(file.KeyDataDir)
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Debug("using database %s", store.Path())

	svc := services.NewChecklistService(store.Checklists(), store.Items())
	return svc, cfg, store.Close, nil
}

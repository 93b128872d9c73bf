// Package cli implements the cobra command tree. Commands talk to the
// core exclusively through the driving and driven ports; the concrete
// stores are composed in cmd/ichecklist and handed over via a
// ServiceFactory once flags are parsed.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/technobuff/ichecklist/internal/core/ports/driven"
	"github.com/technobuff/ichecklist/internal/core/ports/driving"
	"github.com/technobuff/ichecklist/internal/logger"
)

// version is the build version, overridable at link time.
var version = "dev"

// Services used by the commands. Injected via the ServiceFactory on
// first run, or directly by tests.
var (
	checklistService driving.ChecklistService
	configStore      driven.ConfigStore
)

// Persistent flags.
var (
	dataDir     string
	verboseFlag bool
)

// ServiceFactory builds the services once flags are parsed.
// The returned cleanup function releases the underlying store and is
// invoked after command execution completes.
type ServiceFactory func(dataDir string) (driving.ChecklistService, driven.ConfigStore, func() error, error)

var (
	serviceFactory ServiceFactory
	cleanupFn      func() error
)

// SetServiceFactory registers the factory used to build services after
// flag parsing. Tests bypass it by injecting services directly.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

var rootCmd = &cobra.Command{
	Use:   "ichecklist",
	Short: "Manage checklists in a local SQLite database",
	Long: `ichecklist keeps named checklists and their items in a local
SQLite database. Checklists and items are append/delete only; there are
no update operations.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"directory holding the database file (default ~/.ichecklist/data)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose output")
}

// initServices builds the services on first use. Already-injected
// services (tests) are left untouched.
func initServices(_ *cobra.Command, _ []string) error {
	if verboseFlag {
		logger.SetVerbose(true)
	}

	if checklistService != nil || serviceFactory == nil {
		return nil
	}

	svc, cfg, cleanup, err := serviceFactory(dataDir)
	if err != nil {
		return err
	}

	checklistService = svc
	configStore = cfg
	cleanupFn = cleanup
	return nil
}

// Execute runs the root command and releases the store afterwards.
func Execute() error {
	defer func() {
		if cleanupFn != nil {
			_ = cleanupFn()
		}
	}()
	return rootCmd.Execute()
}

// Package sqlite provides the SQLite-backed implementations of the
// driven storage ports. One Store owns the database handle; the
// per-entity stores are wrapper types sharing it.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/technobuff/ichecklist/internal/adapters/driven/storage/sqlite/schema"
	"github.com/technobuff/ichecklist/internal/core/domain"
	"github.com/technobuff/ichecklist/internal/core/ports/driven"
	"github.com/technobuff/ichecklist/internal/logger"
)

// schemaVersion is the current schema version, tracked on disk via
// PRAGMA user_version. Bumping it destroys all stored data on the next
// open: the migration step below drops and recreates both tables.
const schemaVersion = 2

// schemaFile holds the CREATE TABLE statements for the current version.
const schemaFile = "002_checklist.sql"

// Store is a unified SQLite-based storage that provides access to the
// checklist store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.ichecklist/data/checklist.db.
// Open, ping, or migration failures report domain.ErrStoreUnavailable.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".ichecklist", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", domain.ErrStoreUnavailable, err)
	}

	dbPath := filepath.Join(dataDir, "checklist.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", domain.ErrStoreUnavailable, err)
	}

	// One store instance owns one connection; the engine's own
	// serialization is the only concurrency protection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: pinging database: %v", domain.ErrStoreUnavailable, err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: running migration: %v", domain.ErrStoreUnavailable, err)
	}

	return s, nil
}

// Close closes the database connection. Safe to call on a store that
// was never opened.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Checklists returns a ChecklistStore interface backed by this store.
func (s *Store) Checklists() driven.ChecklistStore {
	return &checklistStore{store: s}
}

// Items returns a ChecklistItemStore interface backed by this store.
func (s *Store) Items() driven.ChecklistItemStore {
	return &checklistItemStore{store: s}
}

// migrate brings the on-disk schema to the current version.
//
// The migration list is a single destructive step: any version other
// than the current one drops both tables and recreates them, erasing
// all stored data. A fresh database (user_version 0, no tables) takes
// the same step and simply ends up with an empty schema.
func (s *Store) migrate(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	if version == schemaVersion {
		return nil
	}

	if version != 0 {
		logger.Warn("upgrading database %q from version %d to version %d, which will erase all old data",
			s.path, version, schemaVersion)
	}

	content, err := fs.ReadFile(schema.FS, schemaFile)
	if err != nil {
		return fmt.Errorf("reading schema file: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, stmt := range []string{
		"DROP TABLE IF EXISTS checklist",
		"DROP TABLE IF EXISTS checklist_item",
		string(content),
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing migration: %w", err)
		}
	}

	// PRAGMA takes no bind parameters; the version is a trusted constant.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}

	return tx.Commit()
}

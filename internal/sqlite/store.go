// Package sqlite implements the scene document store for scenetag.
// Implements: prd002-sqlite-store R4, R5, R6, R16;
//
//	prd010-configuration-directories R2, R3;
//	docs/ARCHITECTURE § Scene Store.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/scenetag/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFile is the SQLite database filename inside the data directory.
const dbFile = "scene.db"

// Store persists scene documents using SQLite as the query engine and JSONL
// files as the source of truth. The database file is rebuilt from the
// snapshot on every Open.
type Store struct {
	mu      sync.RWMutex
	opened  bool
	config  types.Config
	db      *sql.DB
	dataDir string

	// Sync strategy state (prd002-sqlite-store R16)
	syncStrategy  string        // effective sync strategy: immediate, on_close, batch
	batchSize     int           // number of saves before batch snapshot
	batchInterval time.Duration // time between batch snapshots
	pendingSaves  int           // saves since the last snapshot
	dirty         bool          // database state newer than the JSONL snapshot
	batchTimer    *time.Timer   // timer for interval-based snapshots
	batchMu       sync.Mutex    // protects batchTimer
}

// NewStore creates a new scene store instance.
// The store is not opened; call Open with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Open initializes the store with the given configuration.
// Creates DataDir if it does not exist, rebuilds the SQLite database from
// the JSONL snapshot, and arms the sync strategy.
// Returns ErrAlreadyOpen if already open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		return types.ErrAlreadyOpen
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	// Remove any existing database file so the schema is always fresh and
	// the JSONL snapshot stays the source of truth (per R4.3).
	dbPath := filepath.Join(dataDir, dbFile)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return err
	}

	s.db = db
	s.config = config
	s.dataDir = dataDir

	// Initialize sync strategy from config (prd002-sqlite-store R16)
	s.syncStrategy = config.SQLiteConfig.GetSyncStrategy()
	s.batchSize = config.SQLiteConfig.GetBatchSize()
	s.batchInterval = time.Duration(config.SQLiteConfig.GetBatchInterval()) * time.Second
	s.pendingSaves = 0
	s.dirty = false

	// Start batch timer if using batch strategy (prd002-sqlite-store R16.4)
	if s.syncStrategy == types.SyncBatch && s.batchInterval > 0 {
		s.startBatchTimer()
	}

	// Create empty snapshot files if missing (prd010-configuration-directories R2.3)
	if err := initJSONLFiles(dataDir); err != nil {
		db.Close()
		return err
	}

	// Load the snapshot into SQLite (prd002-sqlite-store R4)
	if err := loadSnapshot(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("load snapshot: %w", err)
	}

	s.opened = true
	return nil
}

// Close releases all resources held by the store.
// For on_close and batch sync strategies, the pending snapshot is written
// before the database closes (prd002-sqlite-store R6.1, R16.3).
// Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		return nil // idempotent
	}

	s.stopBatchTimer()

	if err := s.flushSnapshotLocked(); err != nil {
		return fmt.Errorf("flush snapshot: %w", err)
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}

	s.opened = false
	return nil
}

// DataDir returns the resolved data directory the store was opened with.
func (s *Store) DataDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataDir
}

// Sync strategy methods (prd002-sqlite-store R16)

// persistAfterSaveLocked runs the configured sync strategy after a save.
// For "immediate" (the default) the snapshot is written now. For "on_close"
// it is deferred to Close. For "batch" it is deferred until batchSize saves
// accumulate or the interval timer fires, whichever comes first.
// The caller must hold s.mu write lock.
func (s *Store) persistAfterSaveLocked() error {
	s.dirty = true

	switch s.syncStrategy {
	case types.SyncOnClose:
		return nil
	case types.SyncBatch:
		s.pendingSaves++
		if s.batchSize > 0 && s.pendingSaves >= s.batchSize {
			return s.flushSnapshotLocked()
		}
		return nil
	default:
		// immediate
		return s.flushSnapshotLocked()
	}
}

// flushSnapshotLocked writes the JSONL snapshot if the database has unsynced
// state. The caller must hold s.mu write lock.
func (s *Store) flushSnapshotLocked() error {
	if !s.dirty {
		return nil
	}
	if err := persistSnapshot(s.db, s.dataDir); err != nil {
		// Leave dirty set so the next flush or Close retries (R5.4).
		return err
	}
	s.dirty = false
	s.pendingSaves = 0
	return nil
}

// startBatchTimer starts the batch interval timer for periodic snapshots.
// The caller should ensure this is only called for batch strategy with
// positive interval.
func (s *Store) startBatchTimer() {
	s.batchMu.Lock()
	defer s.batchMu.Unlock()

	if s.batchTimer != nil {
		return // already running
	}

	s.batchTimer = time.AfterFunc(s.batchInterval, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if !s.opened {
			return
		}

		_ = s.flushSnapshotLocked()

		// Restart the timer
		s.batchMu.Lock()
		if s.batchTimer != nil && s.opened {
			s.batchTimer.Reset(s.batchInterval)
		}
		s.batchMu.Unlock()
	})
}

// stopBatchTimer stops the batch interval timer if running.
func (s *Store) stopBatchTimer() {
	s.batchMu.Lock()
	defer s.batchMu.Unlock()

	if s.batchTimer != nil {
		s.batchTimer.Stop()
		s.batchTimer = nil
	}
}

// Shared helpers for tagger CLI commands.
// Implements: prd009-tagger-cli (R1.3, R8).
package main

import (
	"fmt"
	"os"

	"github.com/mesh-intelligence/scenetag/internal/sqlite"
	"github.com/mesh-intelligence/scenetag/pkg/types"
)

// effectiveConfig assembles the store config from config.yaml values and the
// resolved data directory.
func effectiveConfig() (types.Config, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := fileConfig
	cfg.DataDir = dataDir
	if cfg.Backend == "" {
		cfg.Backend = defaultBackend
	}
	return cfg, nil
}

// openStore resolves the configuration and opens the scene store. The caller
// must close the store. The config is returned alongside so callers can
// build operators with the same tagging settings.
func openStore() (*sqlite.Store, types.Config, error) {
	cfg, err := effectiveConfig()
	if err != nil {
		return nil, types.Config{}, err
	}

	store := sqlite.NewStore()
	if err := store.Open(cfg); err != nil {
		return nil, types.Config{}, fmt.Errorf("open store: %w", err)
	}

	return store, cfg, nil
}

// cliReporter routes operator messages to the terminal: info to stdout,
// warnings to stderr.
type cliReporter struct{}

func (cliReporter) Info(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

func (cliReporter) Warning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// shortID truncates an object ID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

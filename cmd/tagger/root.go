// Root command for the tagger CLI.
// Implements: prd009-tagger-cli (R1, R8); prd010-configuration-directories (R1, R2, R8).
package main

import (
	"github.com/mesh-intelligence/scenetag/internal/paths"
	"github.com/mesh-intelligence/scenetag/pkg/scenetag"
	"github.com/mesh-intelligence/scenetag/pkg/types"
	"github.com/spf13/cobra"
)

// Exit codes per prd009-tagger-cli R1.3.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// fileConfig holds the tagging and store settings loaded from config.yaml.
// The data directory is resolved separately; see resolveDataDir.
var fileConfig types.Config

var rootCmd = &cobra.Command{
	Use:     "tagger",
	Short:   "Tagger annotates scene objects with boolean tags",
	Version: scenetag.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		fileConfig = configFromViper(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: ~/.config/scenetag)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.scenetag-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(objectCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(pieCmd)
	rootCmd.AddCommand(panelCmd)
}

// resolveDataDir returns the data directory path following prd010 R3 precedence:
// --data-dir flag > config.yaml data_dir > SCENETAG_DATA_DIR env > default $(CWD)/.scenetag-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following prd010 R3 precedence:
// --config-dir flag > SCENETAG_CONFIG_DIR env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

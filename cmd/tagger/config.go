// Config loading and the config command for the tagger CLI.
// Implements: prd009-tagger-cli R10; prd010-configuration-directories (R1.4, R1.5, R1.6, R8);
//
//	rel01.1-uc003-configuration-loading (F4, F6, S6-S8).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/scenetag/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys matching prd010 R1.5.
	cfgKeyBackend       = "backend"
	cfgKeyDataDir       = "data_dir"
	cfgKeyTagPrefix     = "tag_prefix"
	cfgKeyTaggableKinds = "taggable_kinds"
	cfgKeySyncStrategy  = "sqlite.sync_strategy"
	cfgKeyBatchSize     = "sqlite.batch_size"
	cfgKeyBatchInterval = "sqlite.batch_interval"

	// Default backend per prd010 R1.5.
	defaultBackend = "sqlite"
)

// defaultConfigYAML is the content written to config.yaml on first run
// per prd010 R1.6.
const defaultConfigYAML = `# Tagger CLI configuration
# See prd010-configuration-directories for details.

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Property key prefix marking a key as a tag
tag_prefix: tag_

# Object kinds tag operations apply to (default: all kinds)
# taggable_kinds: [mesh, curve, light, camera, empty, armature]

# Snapshot sync tuning
# sqlite:
#   sync_strategy: immediate   # immediate | on_close | batch
#   batch_size: 10
#   batch_interval: 30
`

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error (prd010 R8.2).
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyTagPrefix, types.DefaultTagPrefix)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error (prd010 R8.2).
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// configFromViper assembles the tagging and store settings from loaded
// config values. The data directory is resolved later through the full
// precedence chain, so DataDir stays empty here.
func configFromViper(v *viper.Viper) types.Config {
	return types.Config{
		Backend:       v.GetString(cfgKeyBackend),
		TagPrefix:     v.GetString(cfgKeyTagPrefix),
		TaggableKinds: v.GetStringSlice(cfgKeyTaggableKinds),
		SQLiteConfig: types.SQLiteConfig{
			SyncStrategy:  v.GetString(cfgKeySyncStrategy),
			BatchSize:     v.GetInt(cfgKeyBatchSize),
			BatchInterval: v.GetInt(cfgKeyBatchInterval),
		},
	}
}

// ensureConfigDir creates the config directory if it does not exist (prd010 R1.6).
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory (prd010 R1.6, R8.3).
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(exitSysError)
		}

		cfg, err := effectiveConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(map[string]any{
				"config_dir":     configDir,
				"data_dir":       cfg.DataDir,
				"backend":        cfg.Backend,
				"tag_prefix":     cfg.GetTagPrefix(),
				"taggable_kinds": cfg.GetTaggableKinds(),
				"sync_strategy":  cfg.SQLiteConfig.GetSyncStrategy(),
			}, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
		} else {
			fmt.Printf("Config dir:  %s\n", configDir)
			fmt.Printf("Data dir:    %s\n", cfg.DataDir)
			fmt.Printf("Backend:     %s\n", cfg.Backend)
			fmt.Printf("Tag prefix:  %s\n", cfg.GetTagPrefix())
			fmt.Printf("Kinds:       %s\n", strings.Join(cfg.GetTaggableKinds(), ", "))
			fmt.Printf("Sync:        %s\n", cfg.SQLiteConfig.GetSyncStrategy())
		}

		return nil
	},
}

// Config for store attach and tagging policy.
// Implements: prd010-configuration-directories R1 (Config);
//             prd003-tag-annotations R2 (tag key prefix).
package types

import (
	"errors"
	"strings"
)

// Config holds backend selection and parameters for opening a scene store.
type Config struct {
	Backend       string       `json:"backend" yaml:"backend"`
	DataDir       string       `json:"data_dir" yaml:"data_dir"`
	TagPrefix     string       `json:"tag_prefix" yaml:"tag_prefix"`
	TaggableKinds []string     `json:"taggable_kinds" yaml:"taggable_kinds"`
	SQLiteConfig  SQLiteConfig `json:"sqlite,omitempty" yaml:"sqlite,omitempty"`
}

// SQLiteConfig holds tuning for the SQLite store. All fields are optional;
// getters apply the defaults.
type SQLiteConfig struct {
	SyncStrategy  string `json:"sync_strategy,omitempty" yaml:"sync_strategy,omitempty"`
	BatchSize     int    `json:"batch_size,omitempty" yaml:"batch_size,omitempty"`
	BatchInterval int    `json:"batch_interval,omitempty" yaml:"batch_interval,omitempty"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Sync strategies control when the JSONL snapshot is written: after every
// save, only on close, or batched by count and interval.
const (
	SyncImmediate = "immediate"
	SyncOnClose   = "on_close"
	SyncBatch     = "batch"
)

// Sync strategy defaults.
const (
	DefaultBatchSize     = 10
	DefaultBatchInterval = 30 // seconds
)

// DefaultTagPrefix is the property key prefix marking a key as a tag when
// the config leaves TagPrefix unset.
const DefaultTagPrefix = "tag_"

// Config validation errors.
var (
	ErrBackendEmpty         = errors.New("backend must not be empty")
	ErrBackendUnknown       = errors.New("unknown backend")
	ErrTagPrefixSpaces      = errors.New("tag prefix must not contain spaces")
	ErrKindUnknown          = errors.New("unknown taggable kind")
	ErrSyncStrategyUnknown  = errors.New("unknown sync strategy")
	ErrBatchSizeInvalid     = errors.New("batch size must be positive")
	ErrBatchIntervalInvalid = errors.New("batch interval must be positive")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// knownSyncStrategies lists the sync strategies that Validate accepts.
var knownSyncStrategies = map[string]bool{
	SyncImmediate: true,
	SyncOnClose:   true,
	SyncBatch:     true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if strings.Contains(c.TagPrefix, " ") {
		return ErrTagPrefixSpaces
	}
	for _, k := range c.TaggableKinds {
		if !IsValidObjectKind(k) {
			return ErrKindUnknown
		}
	}
	return c.SQLiteConfig.validate()
}

func (c SQLiteConfig) validate() error {
	if c.SyncStrategy != "" && !knownSyncStrategies[c.SyncStrategy] {
		return ErrSyncStrategyUnknown
	}
	if c.BatchSize < 0 {
		return ErrBatchSizeInvalid
	}
	if c.BatchInterval < 0 {
		return ErrBatchIntervalInvalid
	}
	return nil
}

// GetSyncStrategy returns the configured sync strategy, or SyncImmediate
// when unset.
func (c SQLiteConfig) GetSyncStrategy() string {
	if c.SyncStrategy == "" {
		return SyncImmediate
	}
	return c.SyncStrategy
}

// GetBatchSize returns the configured batch size, or DefaultBatchSize when
// unset.
func (c SQLiteConfig) GetBatchSize() int {
	if c.BatchSize == 0 {
		return DefaultBatchSize
	}
	return c.BatchSize
}

// GetBatchInterval returns the configured batch interval in seconds, or
// DefaultBatchInterval when unset.
func (c SQLiteConfig) GetBatchInterval() int {
	if c.BatchInterval == 0 {
		return DefaultBatchInterval
	}
	return c.BatchInterval
}

// GetTagPrefix returns the configured tag prefix, or DefaultTagPrefix when
// unset.
func (c Config) GetTagPrefix() string {
	if c.TagPrefix == "" {
		return DefaultTagPrefix
	}
	return c.TagPrefix
}

// GetTaggableKinds returns the configured taggable kinds, or all recognized
// kinds when unset.
func (c Config) GetTaggableKinds() []string {
	if len(c.TaggableKinds) == 0 {
		return ObjectKinds()
	}
	out := make([]string, len(c.TaggableKinds))
	copy(out, c.TaggableKinds)
	return out
}

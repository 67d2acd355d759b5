// Package paths resolves configuration and data directory locations.
// Implements: prd010-configuration-directories (R1.2, R1.3, R2.2, R2.3, R8);
//
//	rel01.1-uc003-configuration-loading (F1-F5, S1-S7).
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names per prd010 R1.2 and R2.2.
const (
	DefaultConfigDirName = ".scenetag"
	DefaultDataDirName   = ".scenetag-db"
)

// Environment variable overrides per prd010 R1.3 and R2.3.
const (
	EnvConfigDir = "SCENETAG_CONFIG_DIR"
	EnvDataDir   = "SCENETAG_DATA_DIR"
)

// platformDir allows tests to stub the platform lookups.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform default configuration directory.
// On Linux this honors XDG_CONFIG_HOME before falling back to ~/.config.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "scenetag"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "scenetag"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "scenetag"), nil
	}
}

// DefaultDataDir returns the platform default data directory.
// On Linux this honors XDG_DATA_HOME before falling back to ~/.local/share.
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "scenetag"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "scenetag"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "scenetag"), nil
	}
}

// ResolveConfigDir resolves the configuration directory with precedence:
// flag value, then SCENETAG_CONFIG_DIR, then the platform default.
// Relative paths are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir resolves the data directory with precedence: flag value,
// then the config file setting, then SCENETAG_DATA_DIR, then a directory
// under the current working directory. Relative paths are made absolute.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	// The scene document lives beside the project files by default.
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// Integration tests for configuration loading and path resolution precedence.
// Exercises the tagger binary via os/exec with various flag, env, and config
// file combinations, and verifies tagging settings from config.yaml reach
// the annotation layer.
// Implements: test-rel01.1-uc003-configuration-loading;
//             rel01.1-uc003-configuration-loading S1-S9.
package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cleanEnv returns os.Environ() with all SCENETAG_* and XDG_* variables
// removed, providing a clean baseline for subprocess isolation.
func cleanEnv() []string {
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "SCENETAG_") || strings.HasPrefix(e, "XDG_") {
			continue
		}
		env = append(env, e)
	}
	return env
}

// runTaggerWith executes the tagger binary with explicit control over flags,
// environment, and working directory. Unlike RunTagger (which always injects
// --data-dir), this helper passes args unchanged so callers can test the
// full precedence chain. The subprocess environment is cleaned of SCENETAG_*
// and XDG_* variables before adding the provided env overrides.
func runTaggerWith(t *testing.T, env []string, workDir string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()
	bin := binaryPath(t)
	cmd := exec.Command(bin, args...)
	cmd.Env = append(cleanEnv(), env...)
	if workDir != "" {
		cmd.Dir = workDir
	}
	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("run tagger: %v", err)
		}
	}
	return stdout, stderr, exitCode
}

// writeConfigYAML writes a config.yaml file in the given directory.
func writeConfigYAML(t *testing.T, configDir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "config.yaml"),
		[]byte(content), 0o644))
}

// --- S1: init with explicit flags lands everything in the given dirs ---

func TestConfigLoading_ExplicitFlags(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "config")
	dataDir := filepath.Join(tmpDir, "data")

	stdout, stderr, code := runTaggerWith(t, nil, "",
		"--config-dir", configDir,
		"--data-dir", dataDir,
		"init",
	)
	assert.Equal(t, 0, code, "init failed: stdout=%s stderr=%s", stdout, stderr)

	info, err := os.Stat(dataDir)
	require.NoError(t, err, "data dir should exist")
	assert.True(t, info.IsDir(), "data dir should be a directory")

	_, err = os.Stat(filepath.Join(dataDir, "objects.jsonl"))
	assert.NoError(t, err, "objects.jsonl should exist in data dir")
}

// --- S2: SCENETAG_CONFIG_DIR env overrides config directory ---
// --- S3: SCENETAG_DATA_DIR env overrides data directory ---

func TestConfigLoading_EnvironmentOverrides(t *testing.T) {
	t.Run("S2: SCENETAG_CONFIG_DIR selects the config directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		envConfigDir := filepath.Join(tmpDir, "env-config")
		dataDir := filepath.Join(tmpDir, "data")

		_, stderr, code := runTaggerWith(t,
			[]string{"SCENETAG_CONFIG_DIR=" + envConfigDir},
			"",
			"--data-dir", dataDir,
			"init",
		)
		assert.Equal(t, 0, code, "init failed: %s", stderr)

		_, err := os.Stat(filepath.Join(envConfigDir, "config.yaml"))
		assert.NoError(t, err, "config.yaml should be created in SCENETAG_CONFIG_DIR")
	})

	t.Run("S3: SCENETAG_DATA_DIR selects the data directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		configDir := filepath.Join(tmpDir, "config")
		envDataDir := filepath.Join(tmpDir, "env-data")

		// SCENETAG_DATA_DIR applies when no --data-dir flag and no
		// config.yaml data_dir are provided.
		_, stderr, code := runTaggerWith(t,
			[]string{"SCENETAG_DATA_DIR=" + envDataDir},
			"",
			"--config-dir", configDir,
			"init",
		)
		assert.Equal(t, 0, code, "init failed: %s", stderr)

		_, err := os.Stat(filepath.Join(envDataDir, "objects.jsonl"))
		assert.NoError(t, err, "objects.jsonl should exist in SCENETAG_DATA_DIR location")
	})
}

// --- S4: --config-dir flag overrides SCENETAG_CONFIG_DIR env ---
// --- S5: --data-dir flag overrides config.yaml data_dir ---

func TestConfigLoading_FlagOverrides(t *testing.T) {
	t.Run("S4: --config-dir overrides SCENETAG_CONFIG_DIR", func(t *testing.T) {
		tmpDir := t.TempDir()
		envCfgDir := filepath.Join(tmpDir, "env-cfg")
		flagCfgDir := filepath.Join(tmpDir, "flag-cfg")
		dataDir := filepath.Join(tmpDir, "data")

		_, stderr, code := runTaggerWith(t,
			[]string{"SCENETAG_CONFIG_DIR=" + envCfgDir},
			"",
			"--config-dir", flagCfgDir,
			"--data-dir", dataDir,
			"init",
		)
		assert.Equal(t, 0, code, "init failed: %s", stderr)

		_, err := os.Stat(filepath.Join(flagCfgDir, "config.yaml"))
		assert.NoError(t, err, "config.yaml should exist in flag config dir")

		_, err = os.Stat(filepath.Join(envCfgDir, "config.yaml"))
		assert.True(t, os.IsNotExist(err), "config.yaml should NOT exist in env config dir")
	})

	t.Run("S5: --data-dir overrides config.yaml data_dir", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgDir := filepath.Join(tmpDir, "cfg")
		configDataDir := filepath.Join(tmpDir, "config-data")
		flagDataDir := filepath.Join(tmpDir, "flag-data")

		writeConfigYAML(t, cfgDir, fmt.Sprintf("backend: sqlite\ndata_dir: %s\n", configDataDir))

		_, stderr, code := runTaggerWith(t, nil, "",
			"--config-dir", cfgDir,
			"--data-dir", flagDataDir,
			"init",
		)
		assert.Equal(t, 0, code, "init failed: %s", stderr)

		_, err := os.Stat(filepath.Join(flagDataDir, "objects.jsonl"))
		assert.NoError(t, err, "objects.jsonl should exist at flag-specified data dir")

		_, err = os.Stat(filepath.Join(configDataDir, "objects.jsonl"))
		assert.True(t, os.IsNotExist(err), "objects.jsonl should NOT exist at config data_dir")
	})
}

// --- S6: missing config.yaml uses defaults without error ---

func TestConfigLoading_ConfigFileLoading(t *testing.T) {
	t.Run("S6: missing config directory works with --data-dir flag", func(t *testing.T) {
		tmpDir := t.TempDir()

		stdout, stderr, code := runTaggerWith(t, nil, "",
			"--config-dir", filepath.Join(tmpDir, "config"),
			"--data-dir", filepath.Join(tmpDir, "data"),
			"init",
		)
		assert.Equal(t, 0, code, "init failed: stdout=%s stderr=%s", stdout, stderr)

		_, err := os.Stat(filepath.Join(tmpDir, "data", "objects.jsonl"))
		assert.NoError(t, err, "objects.jsonl should exist in data dir")
	})

	t.Run("S6b: first run writes a commented default config.yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgDir := filepath.Join(tmpDir, "config")

		_, stderr, code := runTaggerWith(t, nil, "",
			"--config-dir", cfgDir,
			"--data-dir", filepath.Join(tmpDir, "data"),
			"init",
		)
		assert.Equal(t, 0, code, "init failed: %s", stderr)

		content, err := os.ReadFile(filepath.Join(cfgDir, "config.yaml"))
		require.NoError(t, err, "default config.yaml should be created")
		assert.Contains(t, string(content), "backend: sqlite")
		assert.Contains(t, string(content), "tag_prefix: tag_")
	})
}

// --- S7: config.yaml data_dir is respected when no flag ---

func TestConfigLoading_ConfigYAMLDataDir(t *testing.T) {
	tmpDir := t.TempDir()
	cfgDir := filepath.Join(tmpDir, "cfg")
	yamlDataDir := filepath.Join(tmpDir, "yaml-data")

	writeConfigYAML(t, cfgDir, fmt.Sprintf("backend: sqlite\ndata_dir: %s\n", yamlDataDir))

	stdout, stderr, code := runTaggerWith(t, nil, "",
		"--config-dir", cfgDir,
		"init",
	)
	assert.Equal(t, 0, code, "init failed: stdout=%s stderr=%s", stdout, stderr)

	_, err := os.Stat(filepath.Join(yamlDataDir, "objects.jsonl"))
	assert.NoError(t, err, "objects.jsonl should exist at config.yaml data_dir path")
}

// --- S8: config directory created on first run ---

func TestConfigLoading_ConfigDirectoryCreation(t *testing.T) {
	tmpDir := t.TempDir()
	newConfigDir := filepath.Join(tmpDir, "new-config-dir")

	_, err := os.Stat(newConfigDir)
	require.True(t, os.IsNotExist(err), "config dir should not exist before test")

	stdout, stderr, code := runTaggerWith(t,
		[]string{"SCENETAG_CONFIG_DIR=" + newConfigDir},
		"",
		"--data-dir", filepath.Join(tmpDir, "data"),
		"init",
	)
	assert.Equal(t, 0, code, "init failed: stdout=%s stderr=%s", stdout, stderr)

	info, err := os.Stat(newConfigDir)
	require.NoError(t, err, "config dir should be created on first run")
	assert.True(t, info.IsDir(), "config dir should be a directory")
}

// --- Precedence chain: flag > config > env > default ---

func TestConfigLoading_PrecedenceChain(t *testing.T) {
	t.Run("flag beats config.yaml and env", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgDir := filepath.Join(tmpDir, "cfg")
		configDataDir := filepath.Join(tmpDir, "config-data")
		envDataDir := filepath.Join(tmpDir, "env-data")
		flagDataDir := filepath.Join(tmpDir, "flag-data")

		writeConfigYAML(t, cfgDir, fmt.Sprintf("backend: sqlite\ndata_dir: %s\n", configDataDir))

		_, stderr, code := runTaggerWith(t,
			[]string{"SCENETAG_DATA_DIR=" + envDataDir},
			"",
			"--config-dir", cfgDir,
			"--data-dir", flagDataDir,
			"init",
		)
		assert.Equal(t, 0, code, "init failed: %s", stderr)

		_, err := os.Stat(filepath.Join(flagDataDir, "objects.jsonl"))
		assert.NoError(t, err, "objects.jsonl should exist at flag-specified data dir")

		_, err = os.Stat(filepath.Join(configDataDir, "objects.jsonl"))
		assert.True(t, os.IsNotExist(err), "config data_dir should lose to the flag")
	})

	t.Run("config.yaml data_dir beats env", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgDir := filepath.Join(tmpDir, "cfg")
		configDataDir := filepath.Join(tmpDir, "config-data")
		envDataDir := filepath.Join(tmpDir, "env-data")

		writeConfigYAML(t, cfgDir, fmt.Sprintf("backend: sqlite\ndata_dir: %s\n", configDataDir))

		_, stderr, code := runTaggerWith(t,
			[]string{"SCENETAG_DATA_DIR=" + envDataDir},
			"",
			"--config-dir", cfgDir,
			"init",
		)
		assert.Equal(t, 0, code, "init failed: %s", stderr)

		_, err := os.Stat(filepath.Join(configDataDir, "objects.jsonl"))
		assert.NoError(t, err, "objects.jsonl should exist at config.yaml data_dir")

		_, err = os.Stat(filepath.Join(envDataDir, "objects.jsonl"))
		assert.True(t, os.IsNotExist(err), "env data dir should lose to config.yaml")
	})
}

// --- Error conditions ---

func TestConfigLoading_ErrorConditions(t *testing.T) {
	t.Run("invalid YAML in config.yaml causes error", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgDir := filepath.Join(tmpDir, "config")
		require.NoError(t, os.MkdirAll(cfgDir, 0o755))

		require.NoError(t, os.WriteFile(
			filepath.Join(cfgDir, "config.yaml"),
			[]byte("invalid: yaml: syntax: : :"), 0o644))

		_, stderr, code := runTaggerWith(t, nil, "",
			"--config-dir", cfgDir,
			"--data-dir", filepath.Join(tmpDir, "data"),
			"init",
		)
		assert.NotEqual(t, 0, code, "should fail with invalid YAML")
		assert.Contains(t, stderr, "read config", "error should mention config reading")
	})
}

// --- XDG paths on Linux ---

func TestConfigLoading_XDGPathsOnLinux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG paths only apply on Linux")
	}

	tmpDir := t.TempDir()
	xdgConfigHome := filepath.Join(tmpDir, "xdg-config")
	scenetagConfigDir := filepath.Join(xdgConfigHome, "scenetag")
	dataDir := filepath.Join(tmpDir, "data")

	writeConfigYAML(t, scenetagConfigDir, fmt.Sprintf("backend: sqlite\ndata_dir: %s\n", dataDir))

	_, stderr, code := runTaggerWith(t,
		[]string{
			"XDG_CONFIG_HOME=" + xdgConfigHome,
			"HOME=" + tmpDir,
		},
		"",
		"init",
	)
	assert.Equal(t, 0, code, "init failed: %s", stderr)

	_, err := os.Stat(filepath.Join(dataDir, "objects.jsonl"))
	assert.NoError(t, err, "objects.jsonl should exist in the config.yaml data dir")
}

// --- S9: config command reports the effective configuration ---

func TestConfigLoading_ConfigCommandReportsEffectiveValues(t *testing.T) {
	env := NewTestEnv(t)

	out := env.MustRunTagger("config", "--json")

	type configDump struct {
		ConfigDir     string   `json:"config_dir"`
		DataDir       string   `json:"data_dir"`
		Backend       string   `json:"backend"`
		TagPrefix     string   `json:"tag_prefix"`
		TaggableKinds []string `json:"taggable_kinds"`
		SyncStrategy  string   `json:"sync_strategy"`
	}
	dump := ParseJSON[configDump](t, out.Stdout)

	assert.Equal(t, env.Config, dump.ConfigDir)
	assert.Equal(t, env.DataDir, dump.DataDir)
	assert.Equal(t, "sqlite", dump.Backend)
	assert.Equal(t, "tag_", dump.TagPrefix)
	assert.Contains(t, dump.TaggableKinds, "mesh")
	assert.Contains(t, dump.TaggableKinds, "camera")
	assert.Equal(t, "immediate", dump.SyncStrategy)
}

// --- Tagging settings from config.yaml reach the annotation layer ---

func TestConfigLoading_TagPrefixFromConfigShapesAnnotationKeys(t *testing.T) {
	tmpDir := t.TempDir()
	cfgDir := filepath.Join(tmpDir, "cfg")
	dataDir := filepath.Join(tmpDir, "data")

	writeConfigYAML(t, cfgDir, fmt.Sprintf("backend: sqlite\ndata_dir: %s\ntag_prefix: label_\n", dataDir))

	run := func(args ...string) (string, string, int) {
		return runTaggerWith(t, nil, "", append([]string{"--config-dir", cfgDir}, args...)...)
	}

	_, stderr, code := run("init")
	require.Equal(t, 0, code, "init failed: %s", stderr)
	_, stderr, code = run("object", "add", "Cube")
	require.Equal(t, 0, code, "object add failed: %s", stderr)
	_, stderr, code = run("object", "select", "Cube")
	require.Equal(t, 0, code, "object select failed: %s", stderr)
	_, stderr, code = run("tag", "add", "metal")
	require.Equal(t, 0, code, "tag add failed: %s", stderr)

	records := ReadJSONLFile[AnnotationRecord](t, filepath.Join(dataDir, "annotations.jsonl"))
	require.Len(t, records, 1)
	assert.Equal(t, "label_metal", records[0].Key, "tag_prefix from config.yaml should shape the storage key")

	stdout, stderr, code := run("tag", "all", "--json")
	require.Equal(t, 0, code, "tag all failed: %s", stderr)
	names := ParseJSON[[]string](t, stdout)
	assert.Equal(t, []string{"metal"}, names, "listings strip the configured prefix")
}

func TestConfigLoading_TaggableKindsRestrictTagTargets(t *testing.T) {
	tmpDir := t.TempDir()
	cfgDir := filepath.Join(tmpDir, "cfg")
	dataDir := filepath.Join(tmpDir, "data")

	writeConfigYAML(t, cfgDir, fmt.Sprintf("backend: sqlite\ndata_dir: %s\ntaggable_kinds: [mesh]\n", dataDir))

	run := func(args ...string) (string, string, int) {
		return runTaggerWith(t, nil, "", append([]string{"--config-dir", cfgDir}, args...)...)
	}

	_, stderr, code := run("init")
	require.Equal(t, 0, code, "init failed: %s", stderr)
	_, stderr, code = run("object", "add", "Lamp", "--kind", "light")
	require.Equal(t, 0, code, "object add failed: %s", stderr)
	_, stderr, code = run("object", "select", "Lamp")
	require.Equal(t, 0, code, "object select failed: %s", stderr)

	// A selected light is not a suitable target when only meshes are taggable.
	_, stderr, code = run("tag", "add", "metal")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "No suitable objects selected.")
}

// Package integration provides CLI integration tests for tagger.
// Implements: test-rel01.0 through test-rel03.0 (shared process harness).
package integration

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// taggerBin is the path to the built tagger binary.
	taggerBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	// Start from the current working directory
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetTaggerBin sets the path to the tagger binary (called from TestMain).
func SetTaggerBin(path string) {
	taggerBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// binaryPath returns the built tagger binary, failing the test when TestMain
// did not produce one.
func binaryPath(t *testing.T) string {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("failed to build tagger: %v", buildErr)
	}
	if taggerBin == "" {
		t.Fatal("tagger binary not built (taggerBin is empty)")
	}
	return taggerBin
}

// TestEnv provides an isolated test environment with its own config and data directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	binaryPath(t)

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	// Create config directory and write config.yaml
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: sqlite\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a tagger command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunTagger executes the tagger CLI with the given arguments.
// Returns stdout, stderr, and exit code.
func (e *TestEnv) RunTagger(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(taggerBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run tagger: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunTagger executes the tagger CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRunTagger(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunTagger(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("tagger %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// ObjectRow is one row of object list --json output.
type ObjectRow struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Selected bool     `json:"selected"`
	Active   bool     `json:"active"`
	Tags     []string `json:"tags"`
}

// ObjectRecord is one line of the objects.jsonl snapshot.
type ObjectRecord struct {
	ObjectID string `json:"object_id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Ordinal  int64  `json:"ordinal"`
}

// AnnotationRecord is one line of the annotations.jsonl snapshot.
type AnnotationRecord struct {
	ObjectID  string `json:"object_id"`
	Key       string `json:"key"`
	ValueType string `json:"value_type"`
	Value     string `json:"value"`
}

// SceneStateRecord is one line of the scene_state.jsonl snapshot.
type SceneStateRecord struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PieMenuRecord is one line of the pie_menu.jsonl snapshot.
type PieMenuRecord struct {
	Ordinal int64  `json:"ordinal"`
	Tag     string `json:"tag"`
}

// FindObject returns the row for name from object list --json output.
func FindObject(t *testing.T, rows []ObjectRow, name string) ObjectRow {
	t.Helper()
	for _, row := range rows {
		if row.Name == name {
			return row
		}
	}
	t.Fatalf("object %q not found in list output", name)
	return ObjectRow{}
}

// SelectedNames returns the names of the selected rows in scene order.
func SelectedNames(rows []ObjectRow) []string {
	var names []string
	for _, row := range rows {
		if row.Selected {
			names = append(names, row.Name)
		}
	}
	return names
}

// ReadJSONLFile reads a JSONL file (one JSON object per line) and returns a slice.
func ReadJSONLFile[T any](t *testing.T, path string) []T {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open JSONL file %s: %v", path, err)
	}
	defer f.Close()

	var results []T
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record T
		if err := json.Unmarshal(line, &record); err != nil {
			t.Fatalf("failed to parse JSONL line in %s: %v", path, err)
		}
		results = append(results, record)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to scan JSONL file %s: %v", path, err)
	}
	return results
}

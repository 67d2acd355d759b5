// Integration tests for pie menu configuration through the tagger binary:
// append order, the eight-slot capacity, duplicate rejection, reordering by
// position and by name with silent edge handling, removal, and order
// persistence in the snapshot.
// Implements: test-rel03.0-uc001-pie-menu;
//             prd006-pie-menu R1-R4; prd007-operator-flow R1, R2;
//             rel03.0-uc001-pie-menu S1-S6.
package integration

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPieScene initializes a store and appends the given tags to the pie menu.
func newPieScene(t *testing.T, tags ...string) *TestEnv {
	t.Helper()
	env := NewTestEnv(t)
	env.MustRunTagger("init")
	for _, tag := range tags {
		env.MustRunTagger("pie", "add", tag)
	}
	return env
}

// pieEntries returns the pie menu contents in order.
func pieEntries(env *TestEnv) []string {
	return ParseJSON[[]string](env.t, env.MustRunTagger("pie", "list", "--json").Stdout)
}

// --- S1: pie add appends in order ---

func TestPieMenu_AddAppendsInOrder(t *testing.T) {
	env := newPieScene(t)

	out := env.MustRunTagger("pie", "add", "character")
	assert.Contains(t, out.Stdout, "Tag 'character' added to Pie Menu configuration.")
	env.MustRunTagger("pie", "add", "environment")
	env.MustRunTagger("pie", "add", "props")

	assert.Equal(t, []string{"character", "environment", "props"}, pieEntries(env))

	list := env.MustRunTagger("pie", "list")
	assert.Contains(t, list.Stdout, "1. character")
	assert.Contains(t, list.Stdout, "3. props")
	assert.Contains(t, list.Stdout, "3 of 8 slots used")
}

func TestPieMenu_AddCanonicalizesName(t *testing.T) {
	env := newPieScene(t)

	env.MustRunTagger("pie", "add", "  key light ")
	assert.Equal(t, []string{"key_light"}, pieEntries(env))
}

func TestPieMenu_AddBlankNameCancels(t *testing.T) {
	env := newPieScene(t)

	res := env.RunTagger("pie", "add", "   ")
	assert.Equal(t, 1, res.ExitCode)
	assert.Contains(t, res.Stderr, "No tag name provided.")
}

// --- S2: duplicates are rejected and the menu is unchanged ---

func TestPieMenu_DuplicateAddCancels(t *testing.T) {
	env := newPieScene(t, "character", "environment")

	res := env.RunTagger("pie", "add", "character")
	assert.Equal(t, 1, res.ExitCode)
	assert.Contains(t, res.Stdout, "Tag 'character' is already in the Pie Menu.")

	assert.Equal(t, []string{"character", "environment"}, pieEntries(env))
}

// --- S3: the menu holds at most eight entries ---

func TestPieMenu_CapacityIsEight(t *testing.T) {
	env := newPieScene(t)
	for i := 1; i <= 8; i++ {
		env.MustRunTagger("pie", "add", fmt.Sprintf("tag%02d", i))
	}

	res := env.RunTagger("pie", "add", "overflow")
	assert.Equal(t, 1, res.ExitCode)
	assert.Contains(t, res.Stderr, "Pie Menu can have a maximum of 8 items.")

	entries := pieEntries(env)
	require.Len(t, entries, 8)
	assert.NotContains(t, entries, "overflow")

	list := env.MustRunTagger("pie", "list")
	assert.Contains(t, list.Stdout, "8 of 8 slots used")
}

// --- S4: up and down reorder by position or tag name ---

func TestPieMenu_MoveByPosition(t *testing.T) {
	env := newPieScene(t, "character", "environment", "props")

	out := env.MustRunTagger("pie", "up", "2")
	assert.Contains(t, out.Stdout, "Moved 'environment'")
	assert.Equal(t, []string{"environment", "character", "props"}, pieEntries(env))

	out = env.MustRunTagger("pie", "down", "1")
	assert.Contains(t, out.Stdout, "Moved 'environment'")
	assert.Equal(t, []string{"character", "environment", "props"}, pieEntries(env))
}

func TestPieMenu_MoveByName(t *testing.T) {
	env := newPieScene(t, "character", "environment", "props")

	env.MustRunTagger("pie", "up", "props")
	assert.Equal(t, []string{"character", "props", "environment"}, pieEntries(env))

	env.MustRunTagger("pie", "down", "character")
	assert.Equal(t, []string{"props", "character", "environment"}, pieEntries(env))
}

func TestPieMenu_MovesAtEdgesAreSilentNoOps(t *testing.T) {
	env := newPieScene(t, "character", "environment")

	out := env.MustRunTagger("pie", "up", "1")
	assert.Contains(t, out.Stdout, "No change.")
	assert.Equal(t, []string{"character", "environment"}, pieEntries(env))

	out = env.MustRunTagger("pie", "down", "environment")
	assert.Contains(t, out.Stdout, "No change.")
	assert.Equal(t, []string{"character", "environment"}, pieEntries(env))
}

// --- S5: remove accepts a 1-based position or a tag name ---

func TestPieMenu_RemoveByPositionAndName(t *testing.T) {
	env := newPieScene(t, "character", "environment", "props")

	out := env.MustRunTagger("pie", "remove", "2")
	assert.Contains(t, out.Stdout, "Tag 'environment' removed from Pie Menu configuration.")
	assert.Equal(t, []string{"character", "props"}, pieEntries(env))

	env.MustRunTagger("pie", "remove", "props")
	assert.Equal(t, []string{"character"}, pieEntries(env))
}

func TestPieMenu_RemoveRejectsBadPositions(t *testing.T) {
	env := newPieScene(t, "character", "environment")

	res := env.RunTagger("pie", "remove", "5")
	assert.Equal(t, 1, res.ExitCode)
	assert.Contains(t, res.Stderr, "position 5 out of range (menu has 2 entries)")

	res = env.RunTagger("pie", "remove", "lighting")
	assert.Equal(t, 1, res.ExitCode)
	assert.Contains(t, res.Stderr, `tag "lighting" is not in the pie menu`)

	assert.Equal(t, []string{"character", "environment"}, pieEntries(env))
}

// --- S6: pie order persists through the snapshot ---

func TestPieMenu_OrderPersistsAcrossInvocations(t *testing.T) {
	env := newPieScene(t, "character", "environment", "props", "lighting")
	env.MustRunTagger("pie", "up", "lighting")

	// Every RunTagger call is a separate process; the order below survived
	// a full store close and reopen.
	assert.Equal(t, []string{"character", "environment", "lighting", "props"}, pieEntries(env))

	records := ReadJSONLFile[PieMenuRecord](t, filepath.Join(env.DataDir, "pie_menu.jsonl"))
	require.Len(t, records, 4)
	var tags []string
	for i, rec := range records {
		if i > 0 {
			assert.Less(t, records[i-1].Ordinal, rec.Ordinal, "snapshot keeps slot order")
		}
		tags = append(tags, rec.Tag)
	}
	assert.Equal(t, []string{"character", "environment", "lighting", "props"}, tags)
}

// Tests for scene document round-trips through the store.
// Validates: prd002-sqlite-store R5 (persistence), R7 (value types), R14 (hydration);
//            test-rel01.0-uc001-store-lifecycle (test cases 1-4).
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scenetag/internal/memscene"
	"github.com/mesh-intelligence/scenetag/pkg/types"
)

func TestSceneRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	s := NewStore()
	require.NoError(t, s.Open(testConfig(tmpDir)))

	scene := memscene.New()
	hero := memscene.NewObject("Hero", types.KindMesh)
	hero.Set("tag_hero", true)
	hero.Set("tag_legacy", 1)
	hero.Set("render_scale", 1.5)
	hero.Set("notes", "first pass")
	hero.Set("shader_params", map[string]any{"roughness": 0.25})
	lamp := memscene.NewObject("KeyLight", types.KindLight)
	lamp.Set("tag_lighting", true)
	camera := memscene.NewObject("MainCamera", types.KindCamera)
	require.NoError(t, scene.AddObject(hero))
	require.NoError(t, scene.AddObject(lamp))
	require.NoError(t, scene.AddObject(camera))

	// Selection order is part of the document; put the light first.
	scene.SetSelected([]types.Object{lamp, hero})
	scene.SetActive(lamp)
	require.NoError(t, scene.PieMenu().Append("hero"))
	require.NoError(t, scene.PieMenu().Append("lighting"))

	require.NoError(t, s.Save(scene))
	require.NoError(t, s.Close())

	// A fresh store rebuilds the document from the snapshot alone.
	s2 := NewStore()
	require.NoError(t, s2.Open(testConfig(tmpDir)))
	defer s2.Close()

	loaded, err := s2.Load()
	require.NoError(t, err)
	require.Equal(t, 3, loaded.Len())

	var names []string
	for _, obj := range loaded.Objects() {
		names = append(names, obj.Name())
	}
	assert.Equal(t, []string{"Hero", "KeyLight", "MainCamera"}, names, "scene order should be preserved")

	got, err := loaded.ObjectByName("Hero")
	require.NoError(t, err)
	assert.Equal(t, hero.ID(), got.ID(), "object IDs should be stable across round-trips")
	assert.Equal(t, types.KindMesh, got.Kind())

	// Values come back with their original types.
	v, ok := got.Get("tag_hero")
	require.True(t, ok)
	assert.Equal(t, true, v)

	v, ok = got.Get("tag_legacy")
	require.True(t, ok)
	assert.Equal(t, int64(1), v, "integer values should normalize to int64")

	v, ok = got.Get("render_scale")
	require.True(t, ok)
	assert.Equal(t, 1.5, v)

	v, ok = got.Get("notes")
	require.True(t, ok)
	assert.Equal(t, "first pass", v)

	v, ok = got.Get("shader_params")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"roughness": 0.25}, v)

	// Selection order and the active object are part of the document.
	var selectedNames []string
	for _, obj := range loaded.Selected() {
		selectedNames = append(selectedNames, obj.Name())
	}
	assert.Equal(t, []string{"KeyLight", "Hero"}, selectedNames)
	require.NotNil(t, loaded.Active())
	assert.Equal(t, "KeyLight", loaded.Active().Name())

	assert.Equal(t, []string{"hero", "lighting"}, loaded.PieMenu().Names())
}

func TestLoadEmptyDocument(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Open(testConfig(t.TempDir())))
	defer s.Close()

	scene, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, scene.Len())
	assert.Nil(t, scene.Active())
	assert.Empty(t, scene.Selected())
	assert.Equal(t, 0, scene.PieMenu().Len())
}

func TestSaveReplacesPreviousDocument(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Open(testConfig(t.TempDir())))
	defer s.Close()

	require.NoError(t, s.Save(singleObjectScene(t, "First")))
	require.NoError(t, s.Save(singleObjectScene(t, "Second")))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())

	_, err = loaded.ObjectByName("Second")
	assert.NoError(t, err)
	_, err = loaded.ObjectByName("First")
	assert.ErrorIs(t, err, types.ErrObjectNotFound)
}

func TestSaveDropsRemovedAnnotations(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Open(testConfig(t.TempDir())))
	defer s.Close()

	scene := singleObjectScene(t, "Hero")
	require.NoError(t, s.Save(scene))

	obj := scene.Objects()[0]
	obj.Delete("tag_demo")
	require.NoError(t, s.Save(scene))

	loaded, err := s.Load()
	require.NoError(t, err)
	got, err := loaded.ObjectByName("Hero")
	require.NoError(t, err)

	_, ok := got.Get("tag_demo")
	assert.False(t, ok, "cleared annotations should not survive a save")
}

package memscene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scenetag/pkg/types"
)

func sceneWith(t *testing.T, names ...string) (*Scene, []*Object) {
	t.Helper()
	s := New()
	objs := make([]*Object, 0, len(names))
	for _, name := range names {
		obj := NewObject(name, types.KindMesh)
		require.NoError(t, s.AddObject(obj))
		objs = append(objs, obj)
	}
	return s, objs
}

func TestAddObjectRejectsDuplicateName(t *testing.T) {
	s, _ := sceneWith(t, "Cube")

	err := s.AddObject(NewObject("Cube", types.KindLight))
	assert.ErrorIs(t, err, types.ErrDuplicateName)
	assert.Equal(t, 1, s.Len())
}

func TestObjectsKeepInsertionOrder(t *testing.T) {
	s, _ := sceneWith(t, "Zebra", "Alpha", "Mid")

	var names []string
	for _, obj := range s.Objects() {
		names = append(names, obj.Name())
	}
	assert.Equal(t, []string{"Zebra", "Alpha", "Mid"}, names)
}

func TestObjectLookup(t *testing.T) {
	s, objs := sceneWith(t, "Cube", "Lamp")

	got, err := s.Object(objs[1].ID())
	require.NoError(t, err)
	assert.Equal(t, "Lamp", got.Name())

	got, err = s.ObjectByName("Cube")
	require.NoError(t, err)
	assert.Equal(t, objs[0].ID(), got.ID())

	_, err = s.Object("missing")
	assert.ErrorIs(t, err, types.ErrObjectNotFound)
	_, err = s.ObjectByName("Missing")
	assert.ErrorIs(t, err, types.ErrObjectNotFound)
}

func TestRemoveObject(t *testing.T) {
	s, objs := sceneWith(t, "Cube", "Lamp", "Camera")
	s.SetSelected([]types.Object{objs[0], objs[1]})
	s.SetActive(objs[1])

	require.NoError(t, s.RemoveObject(objs[1].ID()))

	assert.Equal(t, 2, s.Len())
	_, err := s.ObjectByName("Lamp")
	assert.ErrorIs(t, err, types.ErrObjectNotFound)

	// Removal drops the object from the selection and clears active.
	selected := s.Selected()
	require.Len(t, selected, 1)
	assert.Equal(t, "Cube", selected[0].Name())
	assert.Nil(t, s.Active())

	assert.ErrorIs(t, s.RemoveObject(objs[1].ID()), types.ErrObjectNotFound)
}

func TestRemoveObjectFreesName(t *testing.T) {
	s, objs := sceneWith(t, "Cube")
	require.NoError(t, s.RemoveObject(objs[0].ID()))
	assert.NoError(t, s.AddObject(NewObject("Cube", types.KindMesh)))
}

func TestSetSelected(t *testing.T) {
	s, objs := sceneWith(t, "A", "B", "C")

	s.SetSelected([]types.Object{objs[2], objs[0]})
	var names []string
	for _, obj := range s.Selected() {
		names = append(names, obj.Name())
	}
	assert.Equal(t, []string{"C", "A"}, names)

	s.SetSelected(nil)
	assert.Empty(t, s.Selected())
}

func TestSetSelectedIgnoresNonMembers(t *testing.T) {
	s, objs := sceneWith(t, "A")
	foreign := NewObject("Foreign", types.KindMesh)

	s.SetSelected([]types.Object{foreign, objs[0]})
	selected := s.Selected()
	require.Len(t, selected, 1)
	assert.Equal(t, "A", selected[0].Name())
}

func TestSetSelectedDeduplicates(t *testing.T) {
	s, objs := sceneWith(t, "A", "B")

	s.SetSelected([]types.Object{objs[0], objs[1], objs[0]})
	assert.Len(t, s.Selected(), 2)
}

func TestSetActive(t *testing.T) {
	s, objs := sceneWith(t, "A", "B")

	assert.Nil(t, s.Active())

	// Active need not be selected.
	s.SetActive(objs[1])
	require.NotNil(t, s.Active())
	assert.Equal(t, "B", s.Active().Name())
	assert.Empty(t, s.Selected())

	s.SetActive(nil)
	assert.Nil(t, s.Active())
}

func TestSetActiveIgnoresNonMembers(t *testing.T) {
	s, objs := sceneWith(t, "A")
	s.SetActive(objs[0])

	s.SetActive(NewObject("Foreign", types.KindMesh))
	require.NotNil(t, s.Active())
	assert.Equal(t, "A", s.Active().Name())
}

func TestOnActiveChange(t *testing.T) {
	s, objs := sceneWith(t, "A", "B")

	var got []types.Object
	unsubscribe := s.OnActiveChange(func(obj types.Object) {
		got = append(got, obj)
	})

	s.SetActive(objs[0])
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name())

	// Setting the same active again does not fire.
	s.SetActive(objs[0])
	assert.Len(t, got, 1)

	s.SetActive(nil)
	require.Len(t, got, 2)
	assert.Nil(t, got[1])

	unsubscribe()
	s.SetActive(objs[1])
	assert.Len(t, got, 2)
}

func TestOnActiveChangeFiresOnRemoval(t *testing.T) {
	s, objs := sceneWith(t, "A")
	s.SetActive(objs[0])

	fired := false
	s.OnActiveChange(func(obj types.Object) {
		fired = true
		assert.Nil(t, obj)
	})

	require.NoError(t, s.RemoveObject(objs[0].ID()))
	assert.True(t, fired)
}

func TestPieMenuNeverNil(t *testing.T) {
	s := New()
	require.NotNil(t, s.PieMenu())

	require.NoError(t, s.PieMenu().Append("hero"))
	assert.Equal(t, []string{"hero"}, s.PieMenu().Names())
}

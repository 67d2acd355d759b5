package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scenetag/pkg/types"
)

func objectNames(objs []types.Object) []string {
	names := make([]string, 0, len(objs))
	for _, obj := range objs {
		names = append(names, obj.Name())
	}
	return names
}

func TestSelectByTag(t *testing.T) {
	a := Default()

	// Scene order: A(foo) B(foo) C D(foo) E. Current selection: B C D.
	objA := taggedObject(t, a, "A", "foo")
	objB := taggedObject(t, a, "B", "foo")
	objC := newTestObject("C")
	objD := taggedObject(t, a, "D", "foo")
	objE := newTestObject("E")
	all := []types.Object{objA, objB, objC, objD, objE}
	selected := []types.Object{objB, objC, objD}

	tests := []struct {
		name string
		mode string
		want []string
	}{
		{name: "set replaces with tagged", mode: types.ModeSet, want: []string{"A", "B", "D"}},
		{name: "add unions tagged into selection", mode: types.ModeAdd, want: []string{"B", "C", "D", "A"}},
		{name: "subtract drops tagged", mode: types.ModeSubtract, want: []string{"C"}},
		{name: "filter_and keeps tagged", mode: types.ModeFilterAnd, want: []string{"B", "D"}},
		{name: "filter_nand keeps untagged", mode: types.ModeFilterNand, want: []string{"C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.SelectByTag(all, selected, "foo", tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, objectNames(got))
		})
	}
}

func TestSelectByTagUnknownTag(t *testing.T) {
	a := Default()
	all := []types.Object{newTestObject("Cube"), newTestObject("Lamp")}

	got, err := a.SelectByTag(all, all, "ghost", types.ModeSet)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = a.SelectByTag(all, all, "ghost", types.ModeFilterNand)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSelectByTagValidation(t *testing.T) {
	a := Default()
	all := []types.Object{newTestObject("Cube")}

	_, err := a.SelectByTag(all, nil, "  ", types.ModeSet)
	require.ErrorIs(t, err, types.ErrEmptyTagName)

	_, err = a.SelectByTag(all, nil, "foo", "union")
	require.ErrorIs(t, err, types.ErrInvalidMode)
}

func TestSelectByTagSetIsIdempotent(t *testing.T) {
	a := Default()
	objA := taggedObject(t, a, "A", "foo")
	objB := newTestObject("B")
	all := []types.Object{objA, objB}

	first, err := a.SelectByTag(all, nil, "foo", types.ModeSet)
	require.NoError(t, err)
	second, err := a.SelectByTag(all, first, "foo", types.ModeSet)
	require.NoError(t, err)
	assert.Equal(t, objectNames(first), objectNames(second))
}

func TestSelectByTagAddDoesNotDuplicate(t *testing.T) {
	a := Default()
	objA := taggedObject(t, a, "A", "foo")
	objB := newTestObject("B")
	all := []types.Object{objA, objB}
	selected := []types.Object{objA, objB}

	got, err := a.SelectByTag(all, selected, "foo", types.ModeAdd)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, objectNames(got))
}

// FILTER_AND and FILTER_NAND partition the selection between them.
func TestSelectByTagFilterPartition(t *testing.T) {
	a := Default()
	objA := taggedObject(t, a, "A", "foo")
	objB := newTestObject("B")
	objC := taggedObject(t, a, "C", "foo")
	objD := newTestObject("D")
	all := []types.Object{objA, objB, objC, objD}
	selected := []types.Object{objA, objB, objC}

	kept, err := a.SelectByTag(all, selected, "foo", types.ModeFilterAnd)
	require.NoError(t, err)
	dropped, err := a.SelectByTag(all, selected, "foo", types.ModeFilterNand)
	require.NoError(t, err)

	assert.Len(t, kept, 2)
	assert.Len(t, dropped, 1)
	assert.Equal(t, len(selected), len(kept)+len(dropped))

	seen := make(map[string]bool)
	for _, obj := range kept {
		seen[obj.ID()] = true
	}
	for _, obj := range dropped {
		assert.False(t, seen[obj.ID()], "%s in both partitions", obj.Name())
	}
}

func TestSelectByTagEmptySelection(t *testing.T) {
	a := Default()
	objA := taggedObject(t, a, "A", "foo")
	all := []types.Object{objA}

	for _, mode := range []string{types.ModeSubtract, types.ModeFilterAnd, types.ModeFilterNand} {
		got, err := a.SelectByTag(all, nil, "foo", mode)
		require.NoError(t, err)
		assert.Empty(t, got, "mode %s", mode)
	}

	got, err := a.SelectByTag(all, nil, "foo", types.ModeAdd)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, objectNames(got))
}

func TestChooseActive(t *testing.T) {
	objA := newTestObject("A")
	objB := newTestObject("B")
	objC := newTestObject("C")

	tests := []struct {
		name      string
		active    types.Object
		selection []types.Object
		want      types.Object
	}{
		{name: "empty selection clears", active: objA, selection: nil, want: nil},
		{name: "active kept when still selected", active: objB, selection: []types.Object{objA, objB}, want: objB},
		{name: "falls back to first", active: objC, selection: []types.Object{objA, objB}, want: objA},
		{name: "no previous active", active: nil, selection: []types.Object{objB, objA}, want: objB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChooseActive(tt.active, tt.selection)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want.ID(), got.ID())
		})
	}
}

// Tag-driven selection: the five modes and the active-object rule.
// Implements: prd005-tag-selection R2-R5 (modes), R6 (active choice).
package tags

import (
	"github.com/mesh-intelligence/scenetag/pkg/types"
)

// SelectByTag computes a new selection from the tag and mode. The result
// preserves source ordering: scene order for objects drawn from all, the
// existing selection order for objects kept from selected. The caller
// applies the result to the host selection; see ChooseActive for the
// matching active-object rule.
//
//	ModeSet        tagged objects from all
//	ModeAdd        selected plus tagged objects from all
//	ModeSubtract   selected minus tagged
//	ModeFilterAnd  selected objects that carry the tag
//	ModeFilterNand selected objects that do not carry the tag
//
// Returns ErrEmptyTagName for blank names and ErrInvalidMode for
// unrecognized modes.
func (a Accessor) SelectByTag(all, selected []types.Object, raw, mode string) ([]types.Object, error) {
	key, err := a.Key(raw)
	if err != nil {
		return nil, err
	}
	if !types.IsValidSelectMode(mode) {
		return nil, types.ErrInvalidMode
	}

	tagged := func(obj types.Object) bool {
		v, ok := obj.Get(key)
		return ok && Truthy(v)
	}

	var result []types.Object
	switch mode {
	case types.ModeSet:
		for _, obj := range all {
			if tagged(obj) {
				result = append(result, obj)
			}
		}
	case types.ModeAdd:
		inSelection := make(map[string]bool, len(selected))
		for _, obj := range selected {
			inSelection[obj.ID()] = true
			result = append(result, obj)
		}
		for _, obj := range all {
			if tagged(obj) && !inSelection[obj.ID()] {
				result = append(result, obj)
			}
		}
	case types.ModeSubtract, types.ModeFilterNand:
		for _, obj := range selected {
			if !tagged(obj) {
				result = append(result, obj)
			}
		}
	case types.ModeFilterAnd:
		for _, obj := range selected {
			if tagged(obj) {
				result = append(result, obj)
			}
		}
	}
	return result, nil
}

// ChooseActive picks the active object to accompany a new selection: the
// current active stays if it is still selected, otherwise the first selected
// object becomes active, and an empty selection clears the active object.
func ChooseActive(active types.Object, selection []types.Object) types.Object {
	if len(selection) == 0 {
		return nil
	}
	if active != nil {
		for _, obj := range selection {
			if obj.ID() == active.ID() {
				return active
			}
		}
	}
	return selection[0]
}

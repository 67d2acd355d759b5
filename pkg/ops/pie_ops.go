// Pie menu configuration operators.
// Implements: prd007-operator-flow R1, R2; prd006-pie-menu R2-R4.
package ops

import (
	"errors"

	"github.com/mesh-intelligence/scenetag/pkg/types"
)

// PieAppend adds rawName to the scene's pie menu. Duplicates and a full
// menu cancel with a report; the menu is left unchanged.
func (o *Operators) PieAppend(scene types.Scene, r types.Reporter, rawName string) (bool, error) {
	name, err := o.acc.Canonical(rawName)
	if err != nil {
		r.Warning("No tag name provided.")
		return false, nil
	}

	switch err := scene.PieMenu().Append(name); {
	case errors.Is(err, types.ErrDuplicateTag):
		r.Info("Tag '%s' is already in the Pie Menu.", name)
		return false, nil
	case errors.Is(err, types.ErrPieMenuFull):
		r.Warning("Pie Menu can have a maximum of %d items.", types.PieMenuCapacity)
		return false, nil
	case err != nil:
		return false, err
	}

	r.Info("Tag '%s' added to Pie Menu configuration.", name)
	return true, nil
}

// PieRemove removes the entry at index from the pie menu. A stale index
// cancels with a report; the list may have shrunk since the UI drew it.
func (o *Operators) PieRemove(scene types.Scene, r types.Reporter, index int) (bool, error) {
	pie := scene.PieMenu()

	name, err := pie.At(index)
	if err != nil {
		r.Warning("No valid tag selected from Pie Menu list.")
		return false, nil
	}
	if err := pie.RemoveAt(index); err != nil {
		r.Warning("No valid tag selected from Pie Menu list.")
		return false, nil
	}

	r.Info("Tag '%s' removed from Pie Menu configuration.", name)
	return true, nil
}

// PieMoveUp moves the entry at index one slot toward the front. Both a
// stale index and a move at the top edge are silent: the UI disables the
// control, the operator just re-checks.
func (o *Operators) PieMoveUp(scene types.Scene, r types.Reporter, index int) (bool, error) {
	if err := scene.PieMenu().MoveUp(index); err != nil {
		return false, nil
	}
	return true, nil
}

// PieMoveDown moves the entry at index one slot toward the back. Silent at
// the bottom edge and on stale indexes, like PieMoveUp.
func (o *Operators) PieMoveDown(scene types.Scene, r types.Reporter, index int) (bool, error) {
	if err := scene.PieMenu().MoveDown(index); err != nil {
		return false, nil
	}
	return true, nil
}

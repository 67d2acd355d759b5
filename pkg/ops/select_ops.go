// Select-by-tag operator: computes the new selection, applies it to the
// scene, and re-chooses the active object.
// Implements: prd007-operator-flow R5; prd005-tag-selection R2-R6.
package ops

import (
	"github.com/mesh-intelligence/scenetag/pkg/tags"
	"github.com/mesh-intelligence/scenetag/pkg/types"
)

// SelectByTag rebuilds the scene selection from rawName and mode, then
// applies the active-object rule: the previous active survives if still
// selected, otherwise the first selected object becomes active, otherwise
// none. Mode must be one of the types.Mode* constants; anything else is a
// programmer error, not a report.
func (o *Operators) SelectByTag(scene types.Scene, r types.Reporter, rawName, mode string) (bool, error) {
	name, err := o.acc.Canonical(rawName)
	if err != nil {
		r.Warning("No tag name provided.")
		return false, nil
	}

	selection, err := o.acc.SelectByTag(scene.Objects(), scene.Selected(), name, mode)
	if err != nil {
		return false, err
	}

	scene.SetSelected(selection)
	scene.SetActive(tags.ChooseActive(scene.Active(), selection))

	r.Info("Selection updated for tag '%s' with mode '%s'.", name, mode)
	return true, nil
}

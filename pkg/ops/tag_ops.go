// Tag mutation operators over the current selection.
// Implements: prd007-operator-flow R1-R4; prd003-tag-annotations R4, R5;
//             prd004-tag-aggregates R3, R4.
package ops

import (
	"github.com/mesh-intelligence/scenetag/pkg/tags"
	"github.com/mesh-intelligence/scenetag/pkg/types"
)

// AddTagToSelection creates rawName as a tag on every selected object.
// Returns finished=false after reporting when the name is blank or nothing
// suitable is selected.
func (o *Operators) AddTagToSelection(scene types.Scene, r types.Reporter, rawName string) (bool, error) {
	name, err := o.acc.Canonical(rawName)
	if err != nil {
		r.Warning("New tag name cannot be empty.")
		return false, nil
	}

	targets := o.targetObjects(scene)
	if len(targets) == 0 {
		r.Warning("No suitable objects selected.")
		return false, nil
	}

	if err := o.acc.SetAll(targets, name); err != nil {
		return false, err
	}
	r.Info("Tag '%s' added to %d object(s).", name, len(targets))
	return true, nil
}

// RemoveTagFromSelection strips rawName from every selected object. When no
// selected object carries the tag, reports a did-you-mean hint drawn from
// the tags present in the scene.
func (o *Operators) RemoveTagFromSelection(scene types.Scene, r types.Reporter, rawName string) (bool, error) {
	targets := o.targetObjects(scene)
	if len(targets) == 0 {
		r.Warning("No suitable objects selected.")
		return false, nil
	}
	name, err := o.acc.Canonical(rawName)
	if err != nil {
		r.Warning("No tag name provided.")
		return false, nil
	}

	removed, err := o.acc.ClearAll(targets, name)
	if err != nil {
		return false, err
	}
	if removed == 0 {
		if hint := tags.Closest(name, o.AvailableTags(scene)); hint != "" && hint != name {
			r.Info("No selected objects carry tag '%s'. Did you mean '%s'?", name, hint)
		} else {
			r.Info("No selected objects carry tag '%s'.", name)
		}
		return false, nil
	}
	r.Info("Tag '%s' removed from %d object(s).", name, removed)
	return true, nil
}

// ToggleTagOnSelection adds rawName to every selected object, unless any of
// them already carries it, in which case it is removed from all of them.
func (o *Operators) ToggleTagOnSelection(scene types.Scene, r types.Reporter, rawName string) (bool, error) {
	targets := o.targetObjects(scene)
	if len(targets) == 0 {
		r.Warning("No suitable objects selected.")
		return false, nil
	}
	name, err := o.acc.Canonical(rawName)
	if err != nil {
		r.Warning("No tag name provided.")
		return false, nil
	}

	added, err := o.acc.Toggle(targets, name)
	if err != nil {
		return false, err
	}
	if added {
		r.Info("Tag '%s' added to %d object(s).", name, len(targets))
	} else {
		r.Info("Tag '%s' removed from selection.", name)
	}
	return true, nil
}

// ClearTagsOnSelection removes every tag from every selected object.
func (o *Operators) ClearTagsOnSelection(scene types.Scene, r types.Reporter) (bool, error) {
	targets := o.targetObjects(scene)
	if len(targets) == 0 {
		r.Warning("No suitable objects selected.")
		return false, nil
	}

	removedTags := 0
	touched := 0
	for _, obj := range targets {
		names := o.acc.Tags(obj)
		if len(names) == 0 {
			continue
		}
		for _, name := range names {
			removed, err := o.acc.Clear(obj, name)
			if err != nil {
				return false, err
			}
			if removed {
				removedTags++
			}
		}
		touched++
	}
	r.Info("Removed %d tag(s) from %d object(s).", removedTags, touched)
	return true, nil
}

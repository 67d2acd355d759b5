// Package ops implements the operator layer: each operator validates its
// inputs against scene state, reports the outcome through a types.Reporter,
// and either finishes or cancels. User-input problems never surface as
// errors; they are reported and the operator cancels. Returned errors are
// reserved for programmer mistakes such as an unrecognized mode constant.
// Implements: prd007-operator-flow R1 (report-and-cancel), R2 (messages),
//             R3 (selection guards), R4 (did-you-mean hints);
//             docs/ARCHITECTURE § Operator Layer.
package ops

import (
	"github.com/mesh-intelligence/scenetag/pkg/tags"
	"github.com/mesh-intelligence/scenetag/pkg/types"
)

// Operators runs tag and pie menu operations against a scene. The zero
// value is not usable; construct with New.
type Operators struct {
	acc   tags.Accessor
	kinds map[string]bool // object kinds tag operations apply to
}

// New creates an operator set from config: tag prefix, reserved keys, and
// the taggable kind filter all come from cfg.
func New(cfg types.Config) *Operators {
	kinds := make(map[string]bool)
	for _, k := range cfg.GetTaggableKinds() {
		kinds[k] = true
	}
	return &Operators{
		acc:   tags.New(cfg),
		kinds: kinds,
	}
}

// Accessor returns the tag accessor the operators were built with.
func (o *Operators) Accessor() tags.Accessor {
	return o.acc
}

// targetObjects returns the selected objects of taggable kinds, in
// selection order.
func (o *Operators) targetObjects(scene types.Scene) []types.Object {
	var out []types.Object
	for _, obj := range scene.Selected() {
		if o.kinds[obj.Kind()] {
			out = append(out, obj)
		}
	}
	return out
}

// SelectionStatus aggregates tag membership over the taggable selection.
// Keys map to types.StatusAll or types.StatusSome.
func (o *Operators) SelectionStatus(scene types.Scene) map[string]string {
	return o.acc.AggregateStatus(o.targetObjects(scene))
}

// CommonTags returns the tags carried by every object in the taggable
// selection, sorted. Nil when nothing is selected.
func (o *Operators) CommonTags(scene types.Scene) []string {
	return o.acc.CommonTags(o.targetObjects(scene))
}

// AvailableTags returns every tag carried by any object in the scene,
// sorted. The scan covers all objects, not just the selection.
func (o *Operators) AvailableTags(scene types.Scene) []string {
	return o.acc.AllTags(scene.Objects())
}

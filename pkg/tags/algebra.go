// Aggregate status, common tags, and toggle over object groups.
// Implements: prd004-tag-aggregates R1 (aggregate status), R2 (common tags),
//             R3 (toggle), R4 (group set/clear).
package tags

import (
	"sort"

	"github.com/mesh-intelligence/scenetag/pkg/types"
)

// AggregateStatus aggregates tag membership over objs. For the union of all
// tag names observed, a name maps to StatusAll when every object carries it
// and StatusSome when a strict subset does. Names carried by no object never
// appear. An empty collection yields an empty map.
func (a Accessor) AggregateStatus(objs []types.Object) map[string]string {
	status := make(map[string]string)
	if len(objs) == 0 {
		return status
	}

	counts := make(map[string]int)
	for _, obj := range objs {
		for _, name := range a.Tags(obj) {
			counts[name]++
		}
	}

	for name, count := range counts {
		if count == len(objs) {
			status[name] = types.StatusAll
		} else {
			status[name] = types.StatusSome
		}
	}
	return status
}

// CommonTags returns the tags carried by every object in objs, sorted
// ascending. An empty collection yields an empty result rather than the
// undefined intersection over zero sets.
func (a Accessor) CommonTags(objs []types.Object) []string {
	if len(objs) == 0 {
		return nil
	}

	common := make(map[string]bool)
	for _, name := range a.Tags(objs[0]) {
		common[name] = true
	}
	for _, obj := range objs[1:] {
		carried := make(map[string]bool)
		for _, name := range a.Tags(obj) {
			carried[name] = true
		}
		for name := range common {
			if !carried[name] {
				delete(common, name)
			}
		}
	}

	names := make([]string, 0, len(common))
	for name := range common {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AllTags returns the union of tag names across objs, sorted ascending.
// The result is recomputed from the objects on every call, so it always
// reflects current annotation state.
func (a Accessor) AllTags(objs []types.Object) []string {
	seen := make(map[string]bool)
	for _, obj := range objs {
		for _, name := range a.Tags(obj) {
			seen[name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetAll stores the tag on every object in objs.
// Returns ErrEmptyTagName if the name canonicalizes to empty.
func (a Accessor) SetAll(objs []types.Object, raw string) error {
	key, err := a.Key(raw)
	if err != nil {
		return err
	}
	for _, obj := range objs {
		obj.Set(key, true)
	}
	return nil
}

// ClearAll deletes the tag key from every object in objs that carries it,
// truthy or not, and returns how many objects were stripped.
// Returns ErrEmptyTagName if the name canonicalizes to empty.
func (a Accessor) ClearAll(objs []types.Object, raw string) (int, error) {
	key, err := a.Key(raw)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, obj := range objs {
		if _, ok := obj.Get(key); ok {
			obj.Delete(key)
			removed++
		}
	}
	return removed, nil
}

// Toggle flips the tag across objs as one intent: if any object carries the
// tag truthy, the key is removed from every object that has it; otherwise
// the tag is set on all. Reports whether the add branch ran. Starting from
// mixed membership, two toggles do not restore the original state: the first
// clears all, the second sets all.
// Returns ErrEmptyTagName if the name canonicalizes to empty.
func (a Accessor) Toggle(objs []types.Object, raw string) (added bool, err error) {
	key, err := a.Key(raw)
	if err != nil {
		return false, err
	}

	anyHas := false
	for _, obj := range objs {
		if v, ok := obj.Get(key); ok && Truthy(v) {
			anyHas = true
			break
		}
	}

	if anyHas {
		for _, obj := range objs {
			if _, ok := obj.Get(key); ok {
				obj.Delete(key)
			}
		}
		return false, nil
	}

	for _, obj := range objs {
		obj.Set(key, true)
	}
	return true, nil
}

// Scene object with an identifier, kind, and property bag.
// Implements: prd001-scene-core R3 (Object).
package memscene

import (
	"sort"

	"github.com/google/uuid"
)

// Object is an in-memory scene object. Tag annotations live in the property
// bag alongside any other custom properties the host stores there.
type Object struct {
	id    string         // UUID v7, assigned at construction
	name  string         // display name, unique within a scene
	kind  string         // one of the types.Kind* constants
	props map[string]any // custom properties, tag keys included
}

// NewObject creates an object with a generated ID. Name uniqueness is
// enforced by Scene.AddObject, not here.
func NewObject(name, kind string) *Object {
	return &Object{
		id:    generateID(),
		name:  name,
		kind:  kind,
		props: make(map[string]any),
	}
}

// Restore rebuilds an object with a known ID, for document loading.
func Restore(id, name, kind string, props map[string]any) *Object {
	if props == nil {
		props = make(map[string]any)
	}
	return &Object{id: id, name: name, kind: kind, props: props}
}

// ID returns the object's stable identifier.
func (o *Object) ID() string { return o.id }

// Name returns the object's display name.
func (o *Object) Name() string { return o.name }

// Kind returns the object's kind.
func (o *Object) Kind() string { return o.kind }

// Get returns the property stored under key and whether it exists.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.props[key]
	return v, ok
}

// Set stores value under key, replacing any existing value.
func (o *Object) Set(key string, value any) {
	o.props[key] = value
}

// Delete removes key from the property bag. Missing keys are a no-op.
func (o *Object) Delete(key string) {
	delete(o.props, key)
}

// Keys returns all property keys in sorted order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.props))
	for k := range o.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// generateID generates a new UUID v7 for object IDs.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

package types

// Object kinds. Every scene object carries exactly one kind.
const (
	KindMesh     = "mesh"
	KindCurve    = "curve"
	KindLight    = "light"
	KindCamera   = "camera"
	KindEmpty    = "empty"
	KindArmature = "armature"
)

// validObjectKinds is the set of recognized object kind values.
var validObjectKinds = map[string]bool{
	KindMesh:     true,
	KindCurve:    true,
	KindLight:    true,
	KindCamera:   true,
	KindEmpty:    true,
	KindArmature: true,
}

// IsValidObjectKind reports whether kind is a recognized object kind.
func IsValidObjectKind(kind string) bool {
	return validObjectKinds[kind]
}

// ObjectKinds returns all recognized object kinds.
func ObjectKinds() []string {
	return []string{KindMesh, KindCurve, KindLight, KindCamera, KindEmpty, KindArmature}
}

// Object is a scene object carrying a custom-property bag. Tags live in the
// bag under prefixed keys next to whatever other keys the host stores there,
// so accessors must tolerate arbitrary keys and value types.
type Object interface {
	// ID returns the stable object identifier (UUID v7, assigned on creation).
	ID() string

	// Name returns the display name. Names are unique within a scene.
	Name() string

	// Kind returns one of the Kind constants.
	Kind() string

	// Get returns the property value stored under key, and whether it exists.
	Get(key string) (any, bool)

	// Set stores value under key, replacing any existing value.
	Set(key string, value any)

	// Delete removes the property stored under key. Deleting a missing key
	// is a no-op.
	Delete(key string)

	// Keys returns all property keys in sorted order.
	Keys() []string
}

// Package tags implements boolean tag annotations stored in object property
// bags: canonical naming, per-object read/write/delete, and set algebra over
// object collections. Tags are stored under prefixed keys with the value
// boolean true; removal deletes the key, so presence of a truthy value is
// membership.
// Implements: prd003-tag-annotations R1 (canonical names), R2 (tag keys),
//             R3 (truthiness), R4-R6 (set, clear, list), R7 (reserved keys);
//             docs/ARCHITECTURE § Tag Accessor.
package tags

import (
	"sort"
	"strings"

	"github.com/mesh-intelligence/scenetag/pkg/types"
)

// Reserved host bookkeeping keys that must never be treated as tags, even
// when the tag prefix is empty.
var (
	DefaultReserved         = []string{"_RNA_UI"}
	DefaultReservedPrefixes = []string{"cycles"}
)

// Accessor translates between user-entered tag names and storage keys, and
// performs the primitive annotation operations against single objects. The
// zero value is not useful; construct with New or Default.
type Accessor struct {
	Prefix           string   // Storage key prefix marking a key as a tag.
	Reserved         []string // Exact keys excluded from tag listings.
	ReservedPrefixes []string // Key prefixes excluded from tag listings.
}

// New returns an Accessor configured from cfg, with the standard reserved
// key set.
func New(cfg types.Config) Accessor {
	return Accessor{
		Prefix:           cfg.GetTagPrefix(),
		Reserved:         DefaultReserved,
		ReservedPrefixes: DefaultReservedPrefixes,
	}
}

// Default returns an Accessor with the default tag prefix and reserved keys.
func Default() Accessor {
	return New(types.Config{})
}

// Canonical normalizes a user-entered tag name: surrounding whitespace is
// trimmed, then each interior space becomes an underscore. Canonical is
// idempotent. Returns ErrEmptyTagName if the trimmed name is empty.
func (a Accessor) Canonical(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", types.ErrEmptyTagName
	}
	return strings.ReplaceAll(name, " ", "_"), nil
}

// Key builds the storage key for a user-entered tag name.
// Returns ErrEmptyTagName if the name canonicalizes to empty.
func (a Accessor) Key(raw string) (string, error) {
	name, err := a.Canonical(raw)
	if err != nil {
		return "", err
	}
	return a.Prefix + name, nil
}

// IsReserved reports whether key is host bookkeeping, by exact name or prefix.
func (a Accessor) IsReserved(key string) bool {
	for _, r := range a.Reserved {
		if key == r {
			return true
		}
	}
	for _, p := range a.ReservedPrefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// IsTagKey reports whether key stores a tag: it carries the tag prefix and
// is not reserved.
func (a Accessor) IsTagKey(key string) bool {
	return !a.IsReserved(key) && strings.HasPrefix(key, a.Prefix)
}

// Name returns the tag name for a storage key, stripping the prefix.
func (a Accessor) Name(key string) string {
	return strings.TrimPrefix(key, a.Prefix)
}

// Truthy reports whether an annotation value counts as tag membership: a
// native boolean true, or the integer 1 for hosts that encode booleans as
// integers. Every other value, including floats and strings, is false.
func Truthy(v any) bool {
	switch n := v.(type) {
	case bool:
		return n
	case int:
		return n == 1
	case int8:
		return n == 1
	case int16:
		return n == 1
	case int32:
		return n == 1
	case int64:
		return n == 1
	case uint:
		return n == 1
	case uint8:
		return n == 1
	case uint16:
		return n == 1
	case uint32:
		return n == 1
	case uint64:
		return n == 1
	default:
		return false
	}
}

// Has reports whether obj carries the tag with a truthy value.
// Returns ErrEmptyTagName if the name canonicalizes to empty.
func (a Accessor) Has(obj types.Object, raw string) (bool, error) {
	key, err := a.Key(raw)
	if err != nil {
		return false, err
	}
	v, ok := obj.Get(key)
	return ok && Truthy(v), nil
}

// Present reports whether obj carries the tag key at all, truthy or not.
// Returns ErrEmptyTagName if the name canonicalizes to empty.
func (a Accessor) Present(obj types.Object, raw string) (bool, error) {
	key, err := a.Key(raw)
	if err != nil {
		return false, err
	}
	_, ok := obj.Get(key)
	return ok, nil
}

// Set stores the tag on obj with the value boolean true. Idempotent.
// Returns ErrEmptyTagName if the name canonicalizes to empty.
func (a Accessor) Set(obj types.Object, raw string) error {
	key, err := a.Key(raw)
	if err != nil {
		return err
	}
	obj.Set(key, true)
	return nil
}

// Clear deletes the tag key from obj if present, truthy or not, and reports
// whether a key was removed. Clearing an absent tag is a no-op.
// Returns ErrEmptyTagName if the name canonicalizes to empty.
func (a Accessor) Clear(obj types.Object, raw string) (bool, error) {
	key, err := a.Key(raw)
	if err != nil {
		return false, err
	}
	if _, ok := obj.Get(key); !ok {
		return false, nil
	}
	obj.Delete(key)
	return true, nil
}

// Tags returns the canonical names of every tag obj carries with a truthy
// value, sorted ascending. Reserved keys never appear, whatever their value.
func (a Accessor) Tags(obj types.Object) []string {
	var names []string
	for _, key := range obj.Keys() {
		if !a.IsTagKey(key) {
			continue
		}
		v, ok := obj.Get(key)
		if !ok || !Truthy(v) {
			continue
		}
		names = append(names, a.Name(key))
	}
	sort.Strings(names)
	return names
}

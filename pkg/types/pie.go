// PieMenu entity backing the radial tag menu.
// Implements: prd006-pie-menu R1 (capacity), R2 (append), R3 (reorder guards),
//             R4 (removal).
package types

// PieMenuCapacity is the maximum number of pie menu entries. A radial menu
// has eight slots; a ninth entry would have nowhere to render.
const PieMenuCapacity = 8

// PieMenu is an ordered list of tag names backing the quick-access radial
// menu. Entries are stored in display order and must be unique. Callers are
// expected to canonicalize names before adding them.
type PieMenu struct {
	entries []string
}

// NewPieMenu returns an empty pie menu.
func NewPieMenu() *PieMenu {
	return &PieMenu{}
}

// Len returns the number of entries.
func (p *PieMenu) Len() int {
	return len(p.entries)
}

// Names returns a copy of the entries in display order.
func (p *PieMenu) Names() []string {
	out := make([]string, len(p.entries))
	copy(out, p.entries)
	return out
}

// At returns the entry at index i.
// Returns ErrIndexOutOfRange if i is not a valid index.
func (p *PieMenu) At(i int) (string, error) {
	if i < 0 || i >= len(p.entries) {
		return "", ErrIndexOutOfRange
	}
	return p.entries[i], nil
}

// Contains reports whether name is already an entry.
func (p *PieMenu) Contains(name string) bool {
	for _, e := range p.entries {
		if e == name {
			return true
		}
	}
	return false
}

// Append adds name at the end of the menu.
// Returns ErrEmptyTagName if name is empty, ErrDuplicateTag if name is
// already an entry, ErrPieMenuFull if the menu is at capacity.
func (p *PieMenu) Append(name string) error {
	if name == "" {
		return ErrEmptyTagName
	}
	if p.Contains(name) {
		return ErrDuplicateTag
	}
	if len(p.entries) >= PieMenuCapacity {
		return ErrPieMenuFull
	}
	p.entries = append(p.entries, name)
	return nil
}

// RemoveAt removes the entry at index i, shifting later entries up.
// Returns ErrIndexOutOfRange if i is not a valid index.
func (p *PieMenu) RemoveAt(i int) error {
	if i < 0 || i >= len(p.entries) {
		return ErrIndexOutOfRange
	}
	p.entries = append(p.entries[:i], p.entries[i+1:]...)
	return nil
}

// Remove removes the entry equal to name.
// Returns ErrIndexOutOfRange if name is not an entry.
func (p *PieMenu) Remove(name string) error {
	for i, e := range p.entries {
		if e == name {
			return p.RemoveAt(i)
		}
	}
	return ErrIndexOutOfRange
}

// CanMoveUp reports whether the entry at index i can move toward the front.
// False at the first entry and for invalid indices.
func (p *PieMenu) CanMoveUp(i int) bool {
	return i > 0 && i < len(p.entries)
}

// CanMoveDown reports whether the entry at index i can move toward the back.
// False at the last entry and for invalid indices.
func (p *PieMenu) CanMoveDown(i int) bool {
	return i >= 0 && i < len(p.entries)-1
}

// MoveUp swaps the entry at index i with its predecessor. Moving the first
// entry is a no-op.
// Returns ErrIndexOutOfRange if i is not a valid index.
func (p *PieMenu) MoveUp(i int) error {
	if i < 0 || i >= len(p.entries) {
		return ErrIndexOutOfRange
	}
	if !p.CanMoveUp(i) {
		return nil
	}
	p.entries[i-1], p.entries[i] = p.entries[i], p.entries[i-1]
	return nil
}

// MoveDown swaps the entry at index i with its successor. Moving the last
// entry is a no-op.
// Returns ErrIndexOutOfRange if i is not a valid index.
func (p *PieMenu) MoveDown(i int) error {
	if i < 0 || i >= len(p.entries) {
		return ErrIndexOutOfRange
	}
	if !p.CanMoveDown(i) {
		return nil
	}
	p.entries[i], p.entries[i+1] = p.entries[i+1], p.entries[i]
	return nil
}

// Reset replaces all entries. Used when loading a scene document; names
// beyond capacity and duplicates are dropped, preserving first occurrence.
func (p *PieMenu) Reset(names []string) {
	p.entries = p.entries[:0]
	for _, n := range names {
		if n == "" || p.Contains(n) {
			continue
		}
		if len(p.entries) >= PieMenuCapacity {
			break
		}
		p.entries = append(p.entries, n)
	}
}

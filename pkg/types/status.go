package types

import "strings"

// Tag statuses. Aggregating a tag over a set of objects yields one of these:
// "all" when every object carries the tag, "some" when at least one does but
// not all. Tags carried by no object have no status.
// Implements: prd004-tag-aggregates R1.
const (
	StatusAll  = "all"
	StatusSome = "some"
)

// validTagStatuses is the set of recognized tag status values.
var validTagStatuses = map[string]bool{
	StatusAll:  true,
	StatusSome: true,
}

// IsValidTagStatus reports whether status is a recognized tag status.
func IsValidTagStatus(status string) bool {
	return validTagStatuses[status]
}

// Selection modes for select-by-tag.
// Implements: prd005-tag-selection R1.
const (
	ModeSet        = "set"         // Replace the selection with the tagged objects.
	ModeAdd        = "add"         // Add the tagged objects to the selection.
	ModeSubtract   = "subtract"    // Remove the tagged objects from the selection.
	ModeFilterAnd  = "filter_and"  // Keep only selected objects that carry the tag.
	ModeFilterNand = "filter_nand" // Keep only selected objects that do not carry the tag.
)

// validSelectModes is the set of recognized selection mode values.
var validSelectModes = map[string]bool{
	ModeSet:        true,
	ModeAdd:        true,
	ModeSubtract:   true,
	ModeFilterAnd:  true,
	ModeFilterNand: true,
}

// IsValidSelectMode reports whether mode is a recognized selection mode.
func IsValidSelectMode(mode string) bool {
	return validSelectModes[mode]
}

// SelectModes returns all recognized selection modes.
func SelectModes() []string {
	return []string{ModeSet, ModeAdd, ModeSubtract, ModeFilterAnd, ModeFilterNand}
}

// ParseSelectMode normalizes a user-supplied mode string to a ModeX constant.
// Comparison is case-insensitive and accepts dashes for underscores, so
// "FILTER_AND", "filter-and" and "Filter_And" all parse to ModeFilterAnd.
// Returns ErrInvalidMode for unrecognized input.
func ParseSelectMode(s string) (string, error) {
	mode := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if !validSelectModes[mode] {
		return "", ErrInvalidMode
	}
	return mode, nil
}

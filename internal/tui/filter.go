// Incremental tag filtering for the panel's list panes.
// Implements: prd011-tag-panel R3.
package tui

import "github.com/mesh-intelligence/scenetag/pkg/tags"

// FilterModel is the state of one pane's incremental filter. Active means
// keystrokes edit the input; an inactive filter with a non-empty input
// still narrows the pane.
type FilterModel struct {
	Input  string
	Active bool
}

// Apply returns the names matching the current input, in the given order.
func (f FilterModel) Apply(names []string) []string {
	if f.Input == "" {
		return names
	}
	return tags.FilterNames(names, f.Input)
}

// HandleRune appends a typed character to the input.
func (f *FilterModel) HandleRune(r rune) {
	f.Input += string(r)
}

// HandleBackspace removes the last character of the input.
func (f *FilterModel) HandleBackspace() {
	if f.Input == "" {
		return
	}
	runes := []rune(f.Input)
	f.Input = string(runes[:len(runes)-1])
}

// Clear resets the filter and stops editing.
func (f *FilterModel) Clear() {
	f.Input = ""
	f.Active = false
}

// View renders the filter line shown at the bottom of a pane. Empty when
// the filter is inactive and unset.
func (f FilterModel) View() string {
	if f.Active {
		return filterStyle.Render("/" + f.Input + "▎")
	}
	if f.Input != "" {
		return dimStyle.Render("filter: " + f.Input)
	}
	return ""
}

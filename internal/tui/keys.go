// Key bindings for the tag panel.
// Implements: prd011-tag-panel R2.
package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the panel responds to. The zero value is
// unusable; start from DefaultKeyMap.
type KeyMap struct {
	// Navigation.
	Up         key.Binding
	Down       key.Binding
	NextRegion key.Binding
	PrevRegion key.Binding

	// Selection.
	Select key.Binding
	Mode   key.Binding

	// Tag edits on the current selection.
	New    key.Binding
	Add    key.Binding
	Remove key.Binding
	Toggle key.Binding
	Clear  key.Binding

	// Pie menu.
	PieAdd   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Overlay  key.Binding

	// Filtering.
	Filter      key.Binding
	ClearFilter key.Binding

	// Session.
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap is the standard panel binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextRegion: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next pane"),
	),
	PrevRegion: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev pane"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", "s"),
		key.WithHelp("enter", "select by tag"),
	),
	Mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "cycle mode"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new tag"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "tag selection"),
	),
	Remove: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "remove"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle tag"),
	),
	Clear: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "clear all tags"),
	),
	PieAdd: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "add to pie"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "move up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J"),
		key.WithHelp("J", "move down"),
	),
	Overlay: key.NewBinding(
		key.WithKeys("V"),
		key.WithHelp("V", "pie menu"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up,
		k.Down,
		k.NextRegion,
		k.Select,
		k.Mode,
		k.New,
		k.Overlay,
		k.Help,
		k.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextRegion, k.PrevRegion},
		{k.Select, k.Mode, k.Filter, k.ClearFilter},
		{k.New, k.Add, k.Remove, k.Toggle, k.Clear},
		{k.PieAdd, k.MoveUp, k.MoveDown, k.Overlay},
		{k.Help, k.Quit},
	}
}

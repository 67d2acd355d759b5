// Package tui implements the interactive tag panel: three list panes over
// one scene, driven by the same operators as the command verbs.
// Implements: prd011-tag-panel R1-R5; prd007-operator-flow R3;
//
//	rel02.1-uc001-tag-panel-cli (F2-F6, S2-S6).
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/scenetag/pkg/ops"
	"github.com/mesh-intelligence/scenetag/pkg/types"
)

// region identifies one of the panel's list panes.
type region int

const (
	regionSelection region = iota
	regionAll
	regionPie
	regionCount
)

// modeCycle is the order the mode key steps through.
var modeCycle = []string{
	types.ModeSet,
	types.ModeAdd,
	types.ModeSubtract,
	types.ModeFilterAnd,
	types.ModeFilterNand,
}

// tagRow is one line of the selection pane: a tag and its aggregate status
// over the selected objects.
type tagRow struct {
	Name   string
	Status string
}

// Model is the panel state. It doubles as the types.Reporter the operators
// write to, so their messages land in the status footer.
type Model struct {
	scene types.Scene
	op    *ops.Operators
	save  func() error

	keys  KeyMap
	help  help.Model
	entry textinput.Model

	region  region
	cursor  [regionCount]int
	filters [regionCount]FilterModel

	mode        string
	entryActive bool
	overlay     bool

	selRows []tagRow
	allRows []string
	pieRows []string

	status     string
	statusWarn bool

	width  int
	height int
}

func newModel(opts Options) *Model {
	entry := textinput.New()
	entry.Placeholder = "tag name"
	entry.CharLimit = 64
	entry.Width = 24

	m := &Model{
		scene: opts.Scene,
		op:    opts.Ops,
		save:  opts.Save,
		keys:  DefaultKeyMap,
		help:  help.New(),
		entry: entry,
		mode:  types.ModeSet,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case activeChangedMsg:
		m.refresh()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.overlay {
		return m.handleOverlayKey(msg)
	}
	if m.entryActive {
		return m.handleEntryKey(msg)
	}
	if f := &m.filters[m.region]; f.Active {
		return m.handleFilterKey(msg, f)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.region] > 0 {
			m.cursor[m.region]--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.region] < m.rowCount(m.region)-1 {
			m.cursor[m.region]++
		}

	case key.Matches(msg, m.keys.NextRegion):
		m.region = (m.region + 1) % regionCount

	case key.Matches(msg, m.keys.PrevRegion):
		m.region = (m.region + regionCount - 1) % regionCount

	case key.Matches(msg, m.keys.Filter):
		// The pie pane is at most eight entries; it has no filter.
		if m.region != regionPie {
			m.filters[m.region].Active = true
		}

	case key.Matches(msg, m.keys.ClearFilter):
		if m.filters[m.region].Input != "" {
			m.filters[m.region].Clear()
			m.refresh()
		}

	case key.Matches(msg, m.keys.Mode):
		m.cycleMode()

	case key.Matches(msg, m.keys.Select):
		if name := m.highlightedTag(); name != "" {
			m.runOp(func() (bool, error) {
				return m.op.SelectByTag(m.scene, m, name, m.mode)
			})
		}

	case key.Matches(msg, m.keys.New):
		m.entryActive = true
		m.entry.Reset()
		return m, m.entry.Focus()

	case key.Matches(msg, m.keys.Add):
		if name := m.highlightedTag(); name != "" {
			m.runOp(func() (bool, error) {
				return m.op.AddTagToSelection(m.scene, m, name)
			})
		}

	case key.Matches(msg, m.keys.Remove):
		if m.region == regionPie {
			m.runOp(func() (bool, error) {
				return m.op.PieRemove(m.scene, m, m.cursor[regionPie])
			})
		} else if name := m.highlightedTag(); name != "" {
			m.runOp(func() (bool, error) {
				return m.op.RemoveTagFromSelection(m.scene, m, name)
			})
		}

	case key.Matches(msg, m.keys.Toggle):
		if name := m.highlightedTag(); name != "" {
			m.runOp(func() (bool, error) {
				return m.op.ToggleTagOnSelection(m.scene, m, name)
			})
		}

	case key.Matches(msg, m.keys.Clear):
		m.runOp(func() (bool, error) {
			return m.op.ClearTagsOnSelection(m.scene, m)
		})

	case key.Matches(msg, m.keys.PieAdd):
		if name := m.highlightedTag(); name != "" {
			m.runOp(func() (bool, error) {
				return m.op.PieAppend(m.scene, m, name)
			})
		}

	case key.Matches(msg, m.keys.MoveUp):
		if m.region == regionPie {
			m.movePieEntry(-1)
		}

	case key.Matches(msg, m.keys.MoveDown):
		if m.region == regionPie {
			m.movePieEntry(1)
		}

	case key.Matches(msg, m.keys.Overlay):
		m.overlay = true
	}
	return m, nil
}

// handleOverlayKey drives the pie overlay: a number key selects by that
// entry's tag with the current mode, anything else closes or quits.
func (m *Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.Overlay):
		m.overlay = false
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	default:
		if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
			break
		}
		slot := int(msg.Runes[0] - '1')
		if slot < 0 || slot >= len(m.pieRows) {
			break
		}
		name := m.pieRows[slot]
		m.overlay = false
		m.runOp(func() (bool, error) {
			return m.op.SelectByTag(m.scene, m, name, m.mode)
		})
	}
	return m, nil
}

func (m *Model) handleEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.entryActive = false
		m.entry.Blur()
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.entry.Value())
		m.entryActive = false
		m.entry.Blur()
		if name == "" {
			return m, nil
		}
		m.runOp(func() (bool, error) {
			return m.op.AddTagToSelection(m.scene, m, name)
		})
		return m, nil
	}
	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	return m, cmd
}

func (m *Model) handleFilterKey(msg tea.KeyMsg, f *FilterModel) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		f.Clear()
		m.refresh()
	case tea.KeyEnter:
		f.Active = false
	case tea.KeyBackspace:
		f.HandleBackspace()
		m.refresh()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			f.HandleRune(r)
		}
		m.refresh()
	}
	return m, nil
}

// runOp executes one operator call, persists the scene when it finished,
// and rebuilds the panes. A cancelled operator already reported why.
func (m *Model) runOp(do func() (bool, error)) {
	finished, err := do()
	if err != nil {
		m.Warning("Error: %v.", err)
		return
	}
	if !finished {
		return
	}
	if err := m.save(); err != nil {
		m.Warning("Save failed: %v.", err)
		return
	}
	m.refresh()
}

// movePieEntry shifts the highlighted pie entry and keeps the cursor on
// it. Moves blocked at an edge change nothing.
func (m *Model) movePieEntry(delta int) {
	idx := m.cursor[regionPie]
	var moved bool
	var err error
	if delta < 0 {
		moved, err = m.op.PieMoveUp(m.scene, m, idx)
	} else {
		moved, err = m.op.PieMoveDown(m.scene, m, idx)
	}
	if err != nil {
		m.Warning("Error: %v.", err)
		return
	}
	if !moved {
		return
	}
	if err := m.save(); err != nil {
		m.Warning("Save failed: %v.", err)
		return
	}
	m.cursor[regionPie] = idx + delta
	m.refresh()
}

func (m *Model) cycleMode() {
	for i, mode := range modeCycle {
		if mode == m.mode {
			m.mode = modeCycle[(i+1)%len(modeCycle)]
			return
		}
	}
	m.mode = types.ModeSet
}

// refresh rebuilds the pane rows from the scene and clamps every cursor.
func (m *Model) refresh() {
	status := m.op.SelectionStatus(m.scene)
	names := make([]string, 0, len(status))
	for name := range status {
		names = append(names, name)
	}
	sort.Strings(names)

	m.selRows = m.selRows[:0]
	for _, name := range m.filters[regionSelection].Apply(names) {
		m.selRows = append(m.selRows, tagRow{Name: name, Status: status[name]})
	}
	m.allRows = m.filters[regionAll].Apply(m.op.AvailableTags(m.scene))
	m.pieRows = m.scene.PieMenu().Names()

	for r := region(0); r < regionCount; r++ {
		m.clampCursor(r)
	}
}

func (m *Model) rowCount(r region) int {
	switch r {
	case regionSelection:
		return len(m.selRows)
	case regionAll:
		return len(m.allRows)
	default:
		return len(m.pieRows)
	}
}

func (m *Model) clampCursor(r region) {
	if n := m.rowCount(r); m.cursor[r] > n-1 {
		m.cursor[r] = n - 1
	}
	if m.cursor[r] < 0 {
		m.cursor[r] = 0
	}
}

// highlightedTag returns the tag under the cursor in the focused pane, or
// "" when the pane is empty.
func (m *Model) highlightedTag() string {
	switch m.region {
	case regionSelection:
		if m.cursor[regionSelection] < len(m.selRows) {
			return m.selRows[m.cursor[regionSelection]].Name
		}
	case regionAll:
		if m.cursor[regionAll] < len(m.allRows) {
			return m.allRows[m.cursor[regionAll]]
		}
	case regionPie:
		if m.cursor[regionPie] < len(m.pieRows) {
			return m.pieRows[m.cursor[regionPie]]
		}
	}
	return ""
}

// Info implements types.Reporter.
func (m *Model) Info(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusWarn = false
}

// Warning implements types.Reporter.
func (m *Model) Warning(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusWarn = true
}

// Rendering for the tag panel.
// Implements: prd011-tag-panel R1, R4, R5.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/scenetag/pkg/types"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	filterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	paneFocusStyle = paneStyle.BorderForeground(lipgloss.Color("212"))
	paneTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(1, 3)
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.overlay {
		return m.viewOverlay()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewPane(regionSelection),
		m.viewPane(regionAll),
		m.viewPane(regionPie),
	))
	b.WriteString("\n")
	if m.entryActive {
		b.WriteString(filterStyle.Render("new tag: ") + m.entry.View())
		b.WriteString("\n")
	}
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) viewHeader() string {
	active := "(none)"
	if obj := m.scene.Active(); obj != nil {
		active = obj.Name()
	}
	summary := fmt.Sprintf("mode: %s  %d/%d selected  active: %s",
		m.mode, len(m.scene.Selected()), len(m.scene.Objects()), active)
	return titleStyle.Render("Scene Tags") + "  " + dimStyle.Render(summary)
}

func (m *Model) viewPane(r region) string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render(m.paneTitle(r)))

	rows := m.paneRows(r)
	if len(rows) == 0 {
		b.WriteString("\n" + dimStyle.Render(paneEmpty(r)))
	}
	for i, row := range rows {
		marker := "  "
		if r == m.region && i == m.cursor[r] {
			marker = "▶ "
		}
		b.WriteString("\n" + marker + row)
	}
	if fv := m.filters[r].View(); fv != "" {
		b.WriteString("\n" + fv)
	}

	style := paneStyle
	if r == m.region {
		style = paneFocusStyle
	}
	return style.Width(m.paneWidth()).Render(b.String())
}

func (m *Model) paneTitle(r region) string {
	switch r {
	case regionSelection:
		return "Selection"
	case regionAll:
		return "All Tags"
	default:
		return fmt.Sprintf("Pie %d/%d", len(m.pieRows), types.PieMenuCapacity)
	}
}

func paneEmpty(r region) string {
	switch r {
	case regionSelection:
		return "no tags on selection"
	case regionAll:
		return "no tags in scene"
	default:
		return "empty"
	}
}

func (m *Model) paneRows(r region) []string {
	switch r {
	case regionSelection:
		rows := make([]string, len(m.selRows))
		for i, row := range m.selRows {
			rows[i] = statusMarker(row.Status) + " " + row.Name
		}
		return rows
	case regionAll:
		return m.allRows
	default:
		rows := make([]string, len(m.pieRows))
		for i, name := range m.pieRows {
			rows[i] = fmt.Sprintf("%d. %s", i+1, name)
		}
		return rows
	}
}

// statusMarker renders a tag's aggregate state over the selection: a full
// dot when every selected object carries it, a half dot otherwise.
func statusMarker(status string) string {
	if status == types.StatusAll {
		return "●"
	}
	return "◐"
}

func (m *Model) paneWidth() int {
	if m.width == 0 {
		return 28
	}
	w := m.width/3 - 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) viewStatus() string {
	if m.statusWarn {
		return warnStyle.Render(m.status)
	}
	return m.status
}

// viewOverlay draws the pie menu as a centered modal. The host app shows a
// radial menu; a numbered list is the terminal rendition.
func (m *Model) viewOverlay() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pie Menu"))
	b.WriteString("\n\n")
	if len(m.pieRows) == 0 {
		b.WriteString(dimStyle.Render("no entries") + "\n")
	}
	for i, name := range m.pieRows {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, name))
	}
	b.WriteString("\n")
	if len(m.pieRows) > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("1-%d select (mode: %s)  esc close", len(m.pieRows), m.mode)))
	} else {
		b.WriteString(dimStyle.Render("esc close"))
	}

	box := overlayStyle.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

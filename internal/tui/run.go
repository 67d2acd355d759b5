// Program wiring for the tag panel.
// Implements: prd011-tag-panel R1; prd001-scene-core R5.3.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/scenetag/pkg/ops"
	"github.com/mesh-intelligence/scenetag/pkg/types"
)

// Options configures a panel session.
type Options struct {
	// Scene is the document the panel edits.
	Scene types.Scene

	// Ops executes every mutation the panel performs.
	Ops *ops.Operators

	// Save persists the scene after each finished mutation. Required.
	Save func() error
}

// activeChangedMsg tells the model to rebuild its panes after the active
// object changed outside the panel's own key handling.
type activeChangedMsg struct{}

// Run drives the panel until the operator quits. When the scene tracks
// active-object changes, the panel subscribes and refreshes on them.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())

	if notifier, ok := opts.Scene.(types.ActiveNotifier); ok {
		// The subscription fires inside Update calls too, and Program.Send
		// blocks until the event loop can receive. A buffered relay keeps
		// the notifier from ever waiting on the loop.
		ch := make(chan struct{}, 1)
		done := make(chan struct{})
		unsubscribe := notifier.OnActiveChange(func(types.Object) {
			select {
			case ch <- struct{}{}:
			default:
			}
		})
		go func() {
			defer close(done)
			for range ch {
				p.Send(activeChangedMsg{})
			}
		}()
		defer func() {
			unsubscribe()
			close(ch)
			<-done
		}()
	}

	_, err := p.Run()
	return err
}

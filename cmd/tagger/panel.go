// Panel command for the tagger CLI: the interactive tag panel.
// Implements: prd009-tagger-cli R7; prd011-tag-panel R1;
//
//	rel02.1-uc001-tag-panel-cli (F1, S1).
package main

import (
	"fmt"
	"os"

	"github.com/mesh-intelligence/scenetag/internal/tui"
	"github.com/mesh-intelligence/scenetag/pkg/ops"
	"github.com/spf13/cobra"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Open the interactive tag panel",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "panel:", err)
			os.Exit(exitSysError)
		}

		scene, err := store.Load()
		if err != nil {
			store.Close()
			fmt.Fprintln(os.Stderr, "load scene:", err)
			os.Exit(exitSysError)
		}

		// The panel saves through the store after every mutation; Close
		// still runs on the way out so deferred snapshots flush.
		err = tui.Run(tui.Options{
			Scene: scene,
			Ops:   ops.New(cfg),
			Save:  func() error { return store.Save(scene) },
		})
		if err != nil {
			store.Close()
			fmt.Fprintln(os.Stderr, "panel:", err)
			os.Exit(exitSysError)
		}

		if err := store.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "close store:", err)
			os.Exit(exitSysError)
		}
		return nil
	},
}

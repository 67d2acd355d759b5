// Select command for the tagger CLI: rebuild the selection from a tag.
// Implements: prd009-tagger-cli R5; prd005-tag-selection R1-R6;
//
//	rel02.0-uc001-select-modes (F1-F5, S1-S5).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mesh-intelligence/scenetag/pkg/ops"
	"github.com/mesh-intelligence/scenetag/pkg/types"
	"github.com/spf13/cobra"
)

var selectModeFlag string

var selectCmd = &cobra.Command{
	Use:   "select <tag>",
	Short: "Rebuild the selection from a tag",
	Long: `Select computes a new selection from the objects carrying the tag.

Modes:
  set          replace the selection with the tagged objects
  add          add the tagged objects to the selection
  subtract     remove the tagged objects from the selection
  filter-and   keep only selected objects that carry the tag
  filter-nand  keep only selected objects that do not carry the tag

The active object survives when still selected; otherwise the first
selected object becomes active.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := types.ParseSelectMode(selectModeFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid mode %q (valid: %s)\n", selectModeFlag, strings.Join(types.SelectModes(), ", "))
			os.Exit(exitUserError)
		}

		store, cfg, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "select:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		scene, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "load scene:", err)
			os.Exit(exitSysError)
		}

		finished, err := ops.New(cfg).SelectByTag(scene, cliReporter{}, args[0], mode)
		if err != nil {
			fmt.Fprintln(os.Stderr, "select:", err)
			os.Exit(exitSysError)
		}
		if !finished {
			os.Exit(exitUserError)
		}

		if err := store.Save(scene); err != nil {
			fmt.Fprintln(os.Stderr, "save scene:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			names := make([]string, 0, len(scene.Selected()))
			for _, obj := range scene.Selected() {
				names = append(names, obj.Name())
			}
			out, err := json.MarshalIndent(map[string]any{"selected": names}, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
		}
		return nil
	},
}

func init() {
	selectCmd.Flags().StringVar(&selectModeFlag, "mode", "set", "selection mode (set, add, subtract, filter-and, filter-nand)")
}

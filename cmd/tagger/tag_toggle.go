// Tag toggle and clear commands for the tagger CLI.
// Implements: prd009-tagger-cli R4; prd004-tag-aggregates R3, R4;
//
//	rel01.0-uc002-tag-crud (F6, S6).
package main

import (
	"fmt"
	"os"

	"github.com/mesh-intelligence/scenetag/pkg/ops"
	"github.com/mesh-intelligence/scenetag/pkg/types"
	"github.com/spf13/cobra"
)

var tagToggleCmd = &cobra.Command{
	Use:   "toggle <tag>",
	Short: "Toggle a tag on the selected objects",
	Long: `Toggle adds the tag to every selected object, unless any selected
object already carries it, in which case the tag is removed from all of
them. With --object the toggle applies to that single object.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "tag toggle:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		scene, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "load scene:", err)
			os.Exit(exitSysError)
		}

		op := ops.New(cfg)

		if tagObject != "" {
			acc := op.Accessor()
			obj, err := scene.ObjectByName(tagObject)
			if err != nil {
				fmt.Fprintf(os.Stderr, "object %q not found\n", tagObject)
				os.Exit(exitUserError)
			}
			added, err := acc.Toggle([]types.Object{obj}, args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "tag toggle:", err)
				os.Exit(exitUserError)
			}
			if err := store.Save(scene); err != nil {
				fmt.Fprintln(os.Stderr, "save scene:", err)
				os.Exit(exitSysError)
			}
			name, _ := acc.Canonical(args[0])
			if added {
				fmt.Printf("Tagged '%s' with '%s'\n", tagObject, name)
			} else {
				fmt.Printf("Removed '%s' from '%s'\n", name, tagObject)
			}
			return nil
		}

		finished, err := op.ToggleTagOnSelection(scene, cliReporter{}, args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "tag toggle:", err)
			os.Exit(exitSysError)
		}
		if !finished {
			os.Exit(exitUserError)
		}

		if err := store.Save(scene); err != nil {
			fmt.Fprintln(os.Stderr, "save scene:", err)
			os.Exit(exitSysError)
		}
		return nil
	},
}

var tagClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every tag from the selected objects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "tag clear:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		scene, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "load scene:", err)
			os.Exit(exitSysError)
		}

		op := ops.New(cfg)

		if tagObject != "" {
			acc := op.Accessor()
			obj, err := scene.ObjectByName(tagObject)
			if err != nil {
				fmt.Fprintf(os.Stderr, "object %q not found\n", tagObject)
				os.Exit(exitUserError)
			}
			names := acc.Tags(obj)
			for _, name := range names {
				if _, err := acc.Clear(obj, name); err != nil {
					fmt.Fprintln(os.Stderr, "tag clear:", err)
					os.Exit(exitSysError)
				}
			}
			if err := store.Save(scene); err != nil {
				fmt.Fprintln(os.Stderr, "save scene:", err)
				os.Exit(exitSysError)
			}
			fmt.Printf("Removed %d tag(s) from '%s'\n", len(names), tagObject)
			return nil
		}

		finished, err := op.ClearTagsOnSelection(scene, cliReporter{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "tag clear:", err)
			os.Exit(exitSysError)
		}
		if !finished {
			os.Exit(exitUserError)
		}

		if err := store.Save(scene); err != nil {
			fmt.Fprintln(os.Stderr, "save scene:", err)
			os.Exit(exitSysError)
		}
		return nil
	},
}

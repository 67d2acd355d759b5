// Tag commands for the tagger CLI: adding and removing tags on the
// selection or a single object.
// Implements: prd009-tagger-cli R4; prd003-tag-annotations R4, R5;
//
//	rel01.0-uc002-tag-crud (F3-F5, S3-S5).
package main

import (
	"fmt"
	"os"

	"github.com/mesh-intelligence/scenetag/pkg/ops"
	"github.com/mesh-intelligence/scenetag/pkg/tags"
	"github.com/spf13/cobra"
)

// tagObject is the --object flag shared by the tag subcommands. When set,
// the verb targets that single object instead of the selection.
var tagObject string

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags on the selection or a single object",
}

var tagAddCmd = &cobra.Command{
	Use:   "add <tag>",
	Short: "Add a tag to the selected objects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "tag add:", err)
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
			if err := acc.Set(obj, args[0]); err != nil {
				fmt.Fprintln(os.Stderr, "tag add:", err)
				os.Exit(exitUserError)
			}
			if err := store.Save(scene); err != nil {
				fmt.Fprintln(os.Stderr, "save scene:", err)
				os.Exit(exitSysError)
			}
			name, _ := acc.Canonical(args[0])
			fmt.Printf("Tagged '%s' with '%s'\n", tagObject, name)
			return nil
		}

		finished, err := op.AddTagToSelection(scene, cliReporter{}, args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "tag add:", err)
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

var tagRemoveCmd = &cobra.Command{
	Use:   "remove <tag>",
	Short: "Remove a tag from the selected objects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "tag remove:", err)
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
			removed, err := acc.Clear(obj, args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "tag remove:", err)
				os.Exit(exitUserError)
			}
			if !removed {
				name, _ := acc.Canonical(args[0])
				if hint := tags.Closest(name, acc.Tags(obj)); hint != "" && hint != name {
					fmt.Fprintf(os.Stderr, "object '%s' has no tag '%s' (did you mean '%s'?)\n", tagObject, name, hint)
				} else {
					fmt.Fprintf(os.Stderr, "object '%s' has no tag '%s'\n", tagObject, name)
				}
				os.Exit(exitUserError)
			}
			if err := store.Save(scene); err != nil {
				fmt.Fprintln(os.Stderr, "save scene:", err)
				os.Exit(exitSysError)
			}
			name, _ := acc.Canonical(args[0])
			fmt.Printf("Removed '%s' from '%s'\n", name, tagObject)
			return nil
		}

		finished, err := op.RemoveTagFromSelection(scene, cliReporter{}, args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "tag remove:", err)
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

func init() {
	tagCmd.PersistentFlags().StringVar(&tagObject, "object", "", "target a single object by name instead of the selection")

	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRemoveCmd)
	tagCmd.AddCommand(tagToggleCmd)
	tagCmd.AddCommand(tagClearCmd)
	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagAllCmd)
	tagCmd.AddCommand(tagCommonCmd)
}

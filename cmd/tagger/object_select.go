// Object selection commands for the tagger CLI: replacing the selection and
// pointing the active object.
// Implements: prd009-tagger-cli R3; prd001-scene-core R4, R5;
//
//	prd005-tag-selection R6 (active-object rule).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/scenetag/pkg/tags"
	"github.com/mesh-intelligence/scenetag/pkg/types"
	"github.com/spf13/cobra"
)

var (
	objectSelectAdd  bool
	objectSelectNone bool
)

var objectSelectCmd = &cobra.Command{
	Use:   "select <name>... | --none",
	Short: "Replace or extend the selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && !objectSelectNone {
			fmt.Fprintln(os.Stderr, "object select: provide object names or --none")
			os.Exit(exitUserError)
		}
		if len(args) > 0 && objectSelectNone {
			fmt.Fprintln(os.Stderr, "object select: cannot combine names with --none")
			os.Exit(exitUserError)
		}

		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "object select:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		scene, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "load scene:", err)
			os.Exit(exitSysError)
		}

		var selection []types.Object
		if objectSelectAdd {
			selection = scene.Selected()
		}
		for _, name := range args {
			obj, err := scene.ObjectByName(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "object %q not found\n", name)
				os.Exit(exitUserError)
			}
			selection = append(selection, obj)
		}

		scene.SetSelected(selection)
		scene.SetActive(tags.ChooseActive(scene.Active(), scene.Selected()))

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
		} else {
			fmt.Printf("Selected %d object(s)\n", len(scene.Selected()))
		}
		return nil
	},
}

var objectActiveNone bool

var objectActiveCmd = &cobra.Command{
	Use:   "active [name]",
	Short: "Show or set the active object",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 && objectActiveNone {
			fmt.Fprintln(os.Stderr, "object active: cannot combine a name with --none")
			os.Exit(exitUserError)
		}

		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "object active:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		scene, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "load scene:", err)
			os.Exit(exitSysError)
		}

		// Show mode: no name and no --none.
		if len(args) == 0 && !objectActiveNone {
			active := scene.Active()
			if flagJSON {
				name := ""
				if active != nil {
					name = active.Name()
				}
				out, err := json.MarshalIndent(map[string]any{"active": name}, "", "  ")
				if err != nil {
					fmt.Fprintln(os.Stderr, "marshal JSON:", err)
					os.Exit(exitSysError)
				}
				fmt.Println(string(out))
			} else if active != nil {
				fmt.Println(active.Name())
			} else {
				fmt.Println("(none)")
			}
			return nil
		}

		if objectActiveNone {
			scene.SetActive(nil)
		} else {
			obj, err := scene.ObjectByName(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "object %q not found\n", args[0])
				os.Exit(exitUserError)
			}
			// The active object need not be selected.
			scene.SetActive(obj)
		}

		if err := store.Save(scene); err != nil {
			fmt.Fprintln(os.Stderr, "save scene:", err)
			os.Exit(exitSysError)
		}

		if objectActiveNone {
			fmt.Println("Active object cleared")
		} else {
			fmt.Printf("Active object: %s\n", args[0])
		}
		return nil
	},
}

func init() {
	objectSelectCmd.Flags().BoolVar(&objectSelectAdd, "add", false, "extend the selection instead of replacing it")
	objectSelectCmd.Flags().BoolVar(&objectSelectNone, "none", false, "clear the selection")
	objectActiveCmd.Flags().BoolVar(&objectActiveNone, "none", false, "clear the active object")
}

// Object commands for the tagger CLI: creating and removing scene objects.
// Implements: prd009-tagger-cli R3; prd001-scene-core R3;
//
//	rel01.0-uc002-tag-crud (F1, S1).
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mesh-intelligence/scenetag/internal/memscene"
	"github.com/mesh-intelligence/scenetag/pkg/types"
	"github.com/spf13/cobra"
)

var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Manage scene objects and the selection",
}

var objectAddKind string

var objectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an object to the scene",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			fmt.Fprintln(os.Stderr, "object add: name cannot be empty")
			os.Exit(exitUserError)
		}

		if !types.IsValidObjectKind(objectAddKind) {
			fmt.Fprintf(os.Stderr, "invalid kind %q (valid: %s)\n", objectAddKind, strings.Join(types.ObjectKinds(), ", "))
			os.Exit(exitUserError)
		}

		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "object add:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		scene, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "load scene:", err)
			os.Exit(exitSysError)
		}

		obj := memscene.NewObject(name, objectAddKind)
		if err := scene.AddObject(obj); err != nil {
			if errors.Is(err, types.ErrDuplicateName) {
				fmt.Fprintf(os.Stderr, "object %q already exists\n", name)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "add object:", err)
			os.Exit(exitSysError)
		}

		if err := store.Save(scene); err != nil {
			fmt.Fprintln(os.Stderr, "save scene:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(map[string]any{
				"id":   obj.ID(),
				"name": obj.Name(),
				"kind": obj.Kind(),
			}, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
		} else {
			fmt.Printf("Added %s '%s' (%s)\n", obj.Kind(), obj.Name(), shortID(obj.ID()))
		}
		return nil
	},
}

var objectRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an object from the scene",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "object remove:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		scene, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "load scene:", err)
			os.Exit(exitSysError)
		}

		obj, err := scene.ObjectByName(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "object %q not found\n", name)
			os.Exit(exitUserError)
		}

		// Removal drops the object from the selection and clears the
		// active pointer when it was active.
		if err := scene.RemoveObject(obj.ID()); err != nil {
			fmt.Fprintln(os.Stderr, "remove object:", err)
			os.Exit(exitSysError)
		}

		if err := store.Save(scene); err != nil {
			fmt.Fprintln(os.Stderr, "save scene:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Removed '%s'\n", name)
		return nil
	},
}

func init() {
	objectAddCmd.Flags().StringVar(&objectAddKind, "kind", types.KindMesh, "object kind (mesh, curve, light, camera, empty, armature)")

	objectCmd.AddCommand(objectAddCmd)
	objectCmd.AddCommand(objectRemoveCmd)
	objectCmd.AddCommand(objectListCmd)
	objectCmd.AddCommand(objectSelectCmd)
	objectCmd.AddCommand(objectActiveCmd)
}

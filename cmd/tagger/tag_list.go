// Tag listing commands for the tagger CLI: aggregate status over the
// selection, scene-wide tags, and common tags.
// Implements: prd009-tagger-cli R4, R8; prd004-tag-aggregates R1, R2;
//
//	rel01.0-uc002-tag-crud (F7, S7).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/scenetag/pkg/ops"
	"github.com/spf13/cobra"
)

// printNames prints one name per line, or a JSON array with --json.
// A nil slice prints as an empty JSON array.
func printNames(names []string) {
	if flagJSON {
		if names == nil {
			names = []string{}
		}
		out, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "marshal JSON:", err)
			os.Exit(exitSysError)
		}
		fmt.Println(string(out))
		return
	}
	for _, name := range names {
		fmt.Println(name)
	}
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags on the selection with their aggregate status",
	Long: `List shows each tag carried by the selection, marked ALL when every
selected object carries it and SOME when only part of the selection does.
With --object it lists that object's tags instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "tag list:", err)
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
			obj, err := scene.ObjectByName(tagObject)
			if err != nil {
				fmt.Fprintf(os.Stderr, "object %q not found\n", tagObject)
				os.Exit(exitUserError)
			}
			names := op.Accessor().Tags(obj)
			if len(names) == 0 && !flagJSON {
				fmt.Printf("No tags on '%s'.\n", tagObject)
				return nil
			}
			printNames(names)
			return nil
		}

		status := op.SelectionStatus(scene)

		if flagJSON {
			out, err := json.MarshalIndent(status, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		if len(scene.Selected()) == 0 {
			fmt.Println("No objects selected.")
			return nil
		}
		if len(status) == 0 {
			fmt.Println("No tags on selection.")
			return nil
		}

		names := make([]string, 0, len(status))
		for name := range status {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TAG\tSTATUS")
		fmt.Fprintln(w, "---\t------")
		for _, name := range names {
			fmt.Fprintf(w, "%s\t%s\n", name, strings.ToUpper(status[name]))
		}
		w.Flush()
		return nil
	},
}

var tagAllCmd = &cobra.Command{
	Use:   "all",
	Short: "List every tag in the scene",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "tag all:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		scene, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "load scene:", err)
			os.Exit(exitSysError)
		}

		names := ops.New(cfg).AvailableTags(scene)
		if len(names) == 0 && !flagJSON {
			fmt.Println("No tags in scene.")
			return nil
		}
		printNames(names)
		return nil
	},
}

var tagCommonCmd = &cobra.Command{
	Use:   "common",
	Short: "List tags carried by every selected object",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "tag common:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		scene, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "load scene:", err)
			os.Exit(exitSysError)
		}

		names := ops.New(cfg).CommonTags(scene)
		if len(names) == 0 && !flagJSON {
			fmt.Println("No common tags.")
			return nil
		}
		printNames(names)
		return nil
	},
}

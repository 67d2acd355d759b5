// Object list command for the tagger CLI.
// Implements: prd009-tagger-cli R3, R8; rel01.0-uc002-tag-crud (F2, S2).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/scenetag/pkg/ops"
	"github.com/spf13/cobra"
)

// objectRow is the JSON shape for object list output.
type objectRow struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Selected bool     `json:"selected"`
	Active   bool     `json:"active"`
	Tags     []string `json:"tags"`
}

var objectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scene objects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "object list:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		scene, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "load scene:", err)
			os.Exit(exitSysError)
		}

		acc := ops.New(cfg).Accessor()

		selected := make(map[string]bool)
		for _, obj := range scene.Selected() {
			selected[obj.ID()] = true
		}
		activeID := ""
		if a := scene.Active(); a != nil {
			activeID = a.ID()
		}

		rows := make([]objectRow, 0, scene.Len())
		for _, obj := range scene.Objects() {
			rows = append(rows, objectRow{
				ID:       obj.ID(),
				Name:     obj.Name(),
				Kind:     obj.Kind(),
				Selected: selected[obj.ID()],
				Active:   obj.ID() == activeID,
				Tags:     acc.Tags(obj),
			})
		}

		// Output result based on --json flag (prd009-tagger-cli R8).
		if flagJSON {
			out, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		if len(rows) == 0 {
			fmt.Println("No objects in scene.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tKIND\tSEL\tACT\tTAGS")
		fmt.Fprintln(w, "----\t----\t---\t---\t----")
		for _, row := range rows {
			sel := ""
			if row.Selected {
				sel = "x"
			}
			act := ""
			if row.Active {
				act = "x"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", row.Name, row.Kind, sel, act, strings.Join(row.Tags, ", "))
		}
		w.Flush()

		fmt.Printf("\nTotal: %d object(s)\n", len(rows))
		return nil
	},
}

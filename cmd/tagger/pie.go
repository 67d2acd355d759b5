// Pie menu commands for the tagger CLI.
// Implements: prd009-tagger-cli R6; prd006-pie-menu R1-R4;
//
//	rel03.0-uc001-pie-menu (F1-F4, S1-S6).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/mesh-intelligence/scenetag/pkg/ops"
	"github.com/mesh-intelligence/scenetag/pkg/types"
	"github.com/spf13/cobra"
)

var pieCmd = &cobra.Command{
	Use:   "pie",
	Short: "Manage the pie menu configuration",
}

// parsePiePosition resolves a position argument to a zero-based pie menu
// index. Pure integers are 1-based positions as shown by pie list; anything
// else is treated as a tag name.
func parsePiePosition(scene types.Scene, arg string) (int, error) {
	if pos, err := strconv.Atoi(arg); err == nil {
		idx := pos - 1
		if idx < 0 || idx >= scene.PieMenu().Len() {
			return 0, fmt.Errorf("position %d out of range (menu has %d entries)", pos, scene.PieMenu().Len())
		}
		return idx, nil
	}
	for i, name := range scene.PieMenu().Names() {
		if name == arg {
			return i, nil
		}
	}
	return 0, fmt.Errorf("tag %q is not in the pie menu", arg)
}

var pieAddCmd = &cobra.Command{
	Use:   "add <tag>",
	Short: "Append a tag to the pie menu",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "pie add:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		scene, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "load scene:", err)
			os.Exit(exitSysError)
		}

		finished, err := ops.New(cfg).PieAppend(scene, cliReporter{}, args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "pie add:", err)
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

var pieRemoveCmd = &cobra.Command{
	Use:   "remove <position|tag>",
	Short: "Remove an entry from the pie menu",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "pie remove:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		scene, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "load scene:", err)
			os.Exit(exitSysError)
		}

		idx, err := parsePiePosition(scene, args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "pie remove:", err)
			os.Exit(exitUserError)
		}

		finished, err := ops.New(cfg).PieRemove(scene, cliReporter{}, idx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "pie remove:", err)
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

var pieUpCmd = &cobra.Command{
	Use:   "up <position|tag>",
	Short: "Move a pie menu entry one slot toward the front",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPieMove(args[0], "pie up", func(op *ops.Operators, scene types.Scene, idx int) (bool, error) {
			return op.PieMoveUp(scene, cliReporter{}, idx)
		})
	},
}

var pieDownCmd = &cobra.Command{
	Use:   "down <position|tag>",
	Short: "Move a pie menu entry one slot toward the back",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPieMove(args[0], "pie down", func(op *ops.Operators, scene types.Scene, idx int) (bool, error) {
			return op.PieMoveDown(scene, cliReporter{}, idx)
		})
	},
}

// runPieMove shares the up/down flow: resolve the position, run the move,
// and persist. A move blocked at the edge is a no-op, not an error.
func runPieMove(arg, verb string, move func(*ops.Operators, types.Scene, int) (bool, error)) error {
	store, cfg, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, verb+":", err)
		os.Exit(exitSysError)
	}
	defer store.Close()

	scene, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load scene:", err)
		os.Exit(exitSysError)
	}

	idx, err := parsePiePosition(scene, arg)
	if err != nil {
		fmt.Fprintln(os.Stderr, verb+":", err)
		os.Exit(exitUserError)
	}

	finished, err := move(ops.New(cfg), scene, idx)
	if err != nil {
		fmt.Fprintln(os.Stderr, verb+":", err)
		os.Exit(exitSysError)
	}
	if !finished {
		fmt.Println("No change.")
		return nil
	}

	if err := store.Save(scene); err != nil {
		fmt.Fprintln(os.Stderr, "save scene:", err)
		os.Exit(exitSysError)
	}

	name, _ := scene.PieMenu().At(moveResultIndex(verb, idx))
	fmt.Printf("Moved '%s'\n", name)
	return nil
}

// moveResultIndex returns where the moved entry landed.
func moveResultIndex(verb string, idx int) int {
	if verb == "pie up" {
		return idx - 1
	}
	return idx + 1
}

var pieListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the pie menu entries in order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "pie list:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		scene, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "load scene:", err)
			os.Exit(exitSysError)
		}

		names := scene.PieMenu().Names()

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
			return nil
		}

		if len(names) == 0 {
			fmt.Println("Pie menu is empty.")
			return nil
		}
		for i, name := range names {
			fmt.Printf("%d. %s\n", i+1, name)
		}
		fmt.Printf("\n%d of %d slots used\n", len(names), types.PieMenuCapacity)
		return nil
	},
}

func init() {
	pieCmd.AddCommand(pieAddCmd)
	pieCmd.AddCommand(pieRemoveCmd)
	pieCmd.AddCommand(pieUpCmd)
	pieCmd.AddCommand(pieDownCmd)
	pieCmd.AddCommand(pieListCmd)
}

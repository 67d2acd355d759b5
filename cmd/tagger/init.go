// Init command for the tagger CLI.
// Implements: prd009-tagger-cli R2, R10;
//
//	prd010-configuration-directories R1.2, R1.6, R2, R5;
//	prd002-sqlite-store R9 (demo seeding).
package main

import (
	"fmt"
	"os"

	"github.com/mesh-intelligence/scenetag/internal/sqlite"
	"github.com/mesh-intelligence/scenetag/pkg/ops"
	"github.com/spf13/cobra"
)

var initDemo bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the scene store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Resolve config directory (flag > env > default) and ensure it exists
		// with a default config.yaml (prd010 R1.6).
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := ensureConfigDir(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		// Open the store (creates the data directory and empty snapshot files).
		store, cfg, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		seeded := 0
		if initDemo {
			scene, err := store.Load()
			if err != nil {
				fmt.Fprintln(os.Stderr, "load scene:", err)
				os.Exit(exitSysError)
			}

			before := scene.Len()
			op := ops.New(cfg)
			if err := sqlite.Seed(scene, op.Accessor()); err != nil {
				fmt.Fprintln(os.Stderr, "seed demo scene:", err)
				os.Exit(exitSysError)
			}
			if err := store.Save(scene); err != nil {
				fmt.Fprintln(os.Stderr, "save scene:", err)
				os.Exit(exitSysError)
			}
			seeded = scene.Len() - before
		}

		fmt.Println("Scene store initialized")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", store.DataDir())
		if initDemo {
			fmt.Printf("  demo:   %d object(s) seeded\n", seeded)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initDemo, "demo", false, "seed a demo scene with tagged objects")
}

// Version command for the tagger CLI.
// Implements: prd009-tagger-cli R1.4.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/scenetag/pkg/scenetag"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tagger version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tagger", scenetag.Version)
	},
}

// Package main provides the tagger CLI.
// Implements: prd009-tagger-cli R1;
//
//	docs/ARCHITECTURE § CLI.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

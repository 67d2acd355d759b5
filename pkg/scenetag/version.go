// Package scenetag carries module-level metadata shared by the CLI and the
// build tooling.
package scenetag

// Version is the module version reported by the tagger CLI.
const Version = "0.1.0"

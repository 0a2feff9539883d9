// Package cmd provides the command-line interface implementation for hashsum.
//
// This package contains all the subcommand implementations for the hashsum CLI tool.
// It uses the Cobra library for command structure; the binary runs the root
// command through Fang for styled help and errors.
//
// The package is organized into the following commands:
//   - root: Main command coordinator, persistent --config and --verbose flags
//   - hash: Digest of a file or directory, optional per-file report
//   - verify: Comparison against an expected digest
//   - interactive: Prompt-driven hash or verify with path suggestions
//   - algorithms: Supported algorithm listing
//   - suggest: Closest existing path for a mistyped one
//   - version: Build metadata
//
// Each command is implemented as a separate file with its own constructor function
// that returns a *cobra.Command. The hashing itself lives in the util package;
// commands only load configuration, draw progress and format results.
package cmd

// Package main provides the hashsum command-line interface.
//
// hashsum computes and verifies cryptographic digests of files and directory
// trees. A directory is hashed as the concatenation of its files in sorted
// path order, so the result does not depend on how the filesystem orders
// directory entries.
//
// The binary supports multiple subcommands:
//   - hash: Compute the digest of a file or directory
//   - verify: Compare a path against an expected digest
//   - interactive: Prompt for a path, digest and algorithm
//   - algorithms: List supported algorithms
//   - suggest: Suggest an existing path for a mistyped one
//   - version: Print build metadata
package main

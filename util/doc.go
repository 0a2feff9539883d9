// Package util provides the hashing and path-matching core of hashsum.
//
// Key Components:
//
// Digests:
//   - Algorithm, a closed set of md5, sha1, sha256, sha384 and sha512
//   - State, a streaming accumulator finalized exactly once to lowercase hex
//   - Algorithm inference from the length of a hex digest
//
// Trees:
//   - ListFiles, an iterative directory walk producing sorted paths
//   - Hash and Run, which stream every file of a tree, in path order, into one
//     running digest and optionally a digest per file
//   - Report, rendered as the line-oriented per-file listing or as JSON
//
// Path suggestions:
//   - EditDistance and Suggest, Levenshtein matching with prefix matches
//     scoring zero
//   - SuggestPath, which proposes an existing sibling for a mistyped path
//
// Everything here is synchronous and keeps no state between calls. Files are
// read in fixed-size chunks so memory use does not grow with file size.
package util

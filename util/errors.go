package util

import (
	"errors"
	"fmt"
)

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Path errors
	ErrPathNotFound = errors.New("path not found")
	ErrIO           = errors.New("i/o error")

	// Algorithm errors
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrUnknownDigestLength  = errors.New("no algorithm produces a digest of this length")

	// Digest state errors
	ErrStateFinalized = errors.New("digest state already finalized")

	// Run errors
	ErrRunStopped = errors.New("hashing run stopped before completion")

	// Verification errors
	ErrDigestMismatch = errors.New("digests are not equal")
)

// PathError records a read or open failure on a specific path.
// It matches both ErrIO and the underlying error with errors.Is.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrIO, e.Path, e.Err)
}

func (e *PathError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

func ioError(path string, err error) error {
	return &PathError{Path: path, Err: err}
}

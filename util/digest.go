package util

import (
	"encoding/hex"
	"hash"
)

// State is a streaming digest accumulator bound to one Algorithm.
// It is finalized exactly once; writes after that fail with ErrStateFinalized.
type State struct {
	alg  Algorithm
	h    hash.Hash
	done bool
}

// NewState returns an empty digest state for a. It panics if a is not a
// supported algorithm; use NewStateByName for untrusted input.
func NewState(a Algorithm) *State {
	return &State{alg: a, h: a.newHash()}
}

// NewStateByName returns an empty digest state for the named algorithm.
func NewStateByName(name string) (*State, error) {
	a, err := resolveAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return NewState(a), nil
}

// Algorithm returns the algorithm the state was created with.
func (s *State) Algorithm() Algorithm { return s.alg }

// Write appends p to the running digest. It never returns a short write.
func (s *State) Write(p []byte) (int, error) {
	if s.done {
		return 0, ErrStateFinalized
	}
	return s.h.Write(p)
}

// Finalize consumes the state and returns the digest as lowercase hex,
// two characters per byte.
func (s *State) Finalize() (string, error) {
	if s.done {
		return "", ErrStateFinalized
	}
	s.done = true
	sum := hex.EncodeToString(s.h.Sum(nil))
	s.h = nil
	return sum, nil
}

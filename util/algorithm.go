package util

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// Algorithm identifies one of the supported digest algorithms.
// The set is closed; the zero value is not a valid algorithm.
type Algorithm int

const (
	MD5 Algorithm = iota + 1
	SHA1
	SHA256
	SHA384
	SHA512
)

// supported is ordered as algorithms are presented to users.
var supported = [...]Algorithm{MD5, SHA1, SHA256, SHA384, SHA512}

// String returns the lowercase algorithm name as accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "md5"
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	case SHA384:
		return "sha384"
	case SHA512:
		return "sha512"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// HexLen returns the length of the algorithm's digest in hex characters,
// or 0 for an invalid algorithm.
func (a Algorithm) HexLen() int {
	switch a {
	case MD5:
		return md5.Size * 2
	case SHA1:
		return sha1.Size * 2
	case SHA256:
		return sha256.Size * 2
	case SHA384:
		return sha512.Size384 * 2
	case SHA512:
		return sha512.Size * 2
	default:
		return 0
	}
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	return a.HexLen() != 0
}

func (a Algorithm) newHash() hash.Hash {
	switch a {
	case MD5:
		return md5.New()
	case SHA1:
		return sha1.New()
	case SHA256:
		return sha256.New()
	case SHA384:
		return sha512.New384()
	case SHA512:
		return sha512.New()
	default:
		panic(fmt.Sprintf("util: invalid %v", a))
	}
}

// SupportedAlgorithms returns the supported algorithms in their fixed
// presentation order: md5, sha1, sha256, sha384, sha512.
func SupportedAlgorithms() []Algorithm {
	out := make([]Algorithm, len(supported))
	copy(out, supported[:])
	return out
}

// AlgorithmNames returns the names of SupportedAlgorithms in the same order.
func AlgorithmNames() []string {
	names := make([]string, len(supported))
	for i, a := range supported {
		names[i] = a.String()
	}
	return names
}

// ParseAlgorithm looks up an algorithm by name. Matching is case-sensitive.
func ParseAlgorithm(name string) (Algorithm, bool) {
	for _, a := range supported {
		if a.String() == name {
			return a, true
		}
	}
	return 0, false
}

// AlgorithmForLength returns the algorithm whose hex digest is hexLen
// characters long. Every supported algorithm has a distinct length, so
// the answer is unique when it exists.
func AlgorithmForLength(hexLen int) (Algorithm, bool) {
	for _, a := range supported {
		if a.HexLen() == hexLen {
			return a, true
		}
	}
	return 0, false
}

// AlgorithmForDigest infers the algorithm that produced digest from its length.
func AlgorithmForDigest(digest string) (Algorithm, error) {
	a, ok := AlgorithmForLength(len(digest))
	if !ok {
		return 0, fmt.Errorf("%w: %d characters", ErrUnknownDigestLength, len(digest))
	}
	return a, nil
}

func resolveAlgorithm(name string) (Algorithm, error) {
	a, ok := ParseAlgorithm(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q (supported: %v)", ErrUnsupportedAlgorithm, name, AlgorithmNames())
	}
	return a, nil
}

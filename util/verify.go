package util

import "fmt"

// Verification is the result of comparing a computed digest with an
// expected one.
type Verification struct {
	Computed string
	Expected string
	Equal    bool
}

// Verify compares computed against expected. The comparison is exact and
// case-sensitive.
func Verify(computed, expected string) Verification {
	return Verification{
		Computed: computed,
		Expected: expected,
		Equal:    computed == expected,
	}
}

// Err returns nil for equal digests and an error wrapping
// ErrDigestMismatch, naming both digests, otherwise.
func (v Verification) Err() error {
	if v.Equal {
		return nil
	}
	return fmt.Errorf("%w: computed %s, expected %s", ErrDigestMismatch, v.Computed, v.Expected)
}

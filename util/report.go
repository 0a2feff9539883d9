package util

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
)

const reportRule = "----------"

// FileDigest is the digest of a single file within a run.
type FileDigest struct {
	Path   string `json:"path"`
	Digest string `json:"digest"`
}

// Report is the outcome of a hashing run. Files is populated only when
// per-file digests were requested and is ordered by path.
type Report struct {
	ID        string
	Algorithm Algorithm
	Base      string
	Files     []FileDigest
	Digest    string
}

// WriteTo writes the report in its line-oriented form:
//
//	hash algorithm: sha256
//	base: dir
//	----------
//	- dir/a.txt = <digest>
//	----------
//	complete hash = <digest>
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "hash algorithm: %s\nbase: %s\n%s\n", r.Algorithm, r.Base, reportRule)
	for _, f := range r.Files {
		fmt.Fprintf(&b, "- %s = %s\n", f.Path, f.Digest)
	}
	fmt.Fprintf(&b, "%s\ncomplete hash = %s\n", reportRule, r.Digest)

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

type reportJSON struct {
	RunID     string       `json:"run_id"`
	Algorithm string       `json:"algorithm"`
	Base      string       `json:"base"`
	Files     []FileDigest `json:"files,omitempty"`
	Digest    string       `json:"digest"`
}

// MarshalJSON encodes the report with the algorithm by name.
func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(reportJSON{
		RunID:     r.ID,
		Algorithm: r.Algorithm.String(),
		Base:      r.Base,
		Files:     r.Files,
		Digest:    r.Digest,
	})
}

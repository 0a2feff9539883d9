package util

import (
	"errors"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DefaultChunkSize is the read buffer size used when Options.ChunkSize is zero.
const DefaultChunkSize = 1024

// Options tunes a hashing run. The zero value hashes with DefaultChunkSize
// and no per-file digests.
type Options struct {
	// ChunkSize is the number of bytes read from a file per update.
	ChunkSize int

	// PerFile requests a digest for every file in addition to the aggregate.
	PerFile bool

	// Exclude lists paths left out of the run, such as a report file
	// written inside the tree being hashed. Paths are compared after
	// resolving symlinks and making them absolute.
	Exclude []string

	// Logger receives debug events; nil discards them.
	Logger *slog.Logger
}

// Progress describes how far a run has got. One event is emitted when a
// file is opened and one after every chunk read from it.
type Progress struct {
	FileIndex int
	FileCount int
	Path      string
	BytesDone int64
	FileSize  int64
}

// Hash computes the aggregate digest of path with the named algorithm.
// If path is a directory every file below it is hashed, in sorted path
// order, as one continuous stream of bytes.
func Hash(path, algorithm string, perFile bool) (Report, error) {
	return HashWithOptions(path, algorithm, Options{PerFile: perFile})
}

// HashWithOptions is Hash with explicit options.
func HashWithOptions(path, algorithm string, opts Options) (Report, error) {
	return hashTree(path, algorithm, opts, nil)
}

// Run is a hashing run whose progress events are consumed lazily.
type Run struct {
	path      string
	algorithm string
	opts      Options

	started bool
	report  Report
	err     error
}

// NewRun prepares a run. Nothing is read until Events or Result is called.
func NewRun(path, algorithm string, opts Options) *Run {
	return &Run{path: path, algorithm: algorithm, opts: opts}
}

// Events performs the run, yielding progress as it goes. Breaking out of
// the loop abandons the run and Result then reports ErrRunStopped. A run
// executes at most once; later calls yield nothing.
func (r *Run) Events() iter.Seq[Progress] {
	return func(yield func(Progress) bool) {
		if r.started {
			return
		}
		r.started = true
		r.report, r.err = hashTree(r.path, r.algorithm, r.opts, yield)
	}
}

// Result returns the outcome of the run, performing it first if Events
// was never consumed.
func (r *Run) Result() (Report, error) {
	if !r.started {
		for range r.Events() {
		}
	}
	return r.report, r.err
}

func hashTree(path, algorithm string, opts Options, emit func(Progress) bool) (Report, error) {
	alg, err := resolveAlgorithm(algorithm)
	if err != nil {
		return Report{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	files, err := ListFiles(path, true)
	if err != nil {
		return Report{}, err
	}
	files = excludeFiles(files, opts.Exclude, logger)

	report := Report{
		ID:        uuid.NewString(),
		Algorithm: alg,
		Base:      path,
	}
	total := NewState(alg)
	buf := make([]byte, chunkSize)

	for i, file := range files {
		var single *State
		if opts.PerFile {
			single = NewState(alg)
		}
		n, err := hashFile(file, buf, total, single, func(done, size int64) bool {
			if emit == nil {
				return true
			}
			return emit(Progress{
				FileIndex: i,
				FileCount: len(files),
				Path:      file,
				BytesDone: done,
				FileSize:  size,
			})
		})
		if err != nil {
			return Report{}, err
		}
		logger.Debug("hashed file", "path", file, "bytes", n, "index", i)

		if single != nil {
			sum, err := single.Finalize()
			if err != nil {
				return Report{}, err
			}
			report.Files = append(report.Files, FileDigest{Path: file, Digest: sum})
		}
	}

	report.Digest, err = total.Finalize()
	if err != nil {
		return Report{}, err
	}
	logger.Debug("hashed tree", "path", path, "algorithm", alg.String(), "files", len(files))
	return report, nil
}

// hashFile streams one file through total and, when non-nil, single.
// progress is called once before reading and after every chunk; returning
// false stops the run.
func hashFile(path string, buf []byte, total, single *State, progress func(done, size int64) bool) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, ioError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, ioError(path, err)
	}
	size := info.Size()

	var done int64
	if !progress(done, size) {
		return done, ErrRunStopped
	}
	for {
		n, err := f.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if _, werr := total.Write(chunk); werr != nil {
				return done, werr
			}
			if single != nil {
				if _, werr := single.Write(chunk); werr != nil {
					return done, werr
				}
			}
			done += int64(n)
			if !progress(done, size) {
				return done, ErrRunStopped
			}
		}
		if errors.Is(err, io.EOF) {
			return done, nil
		}
		if err != nil {
			return done, ioError(path, err)
		}
	}
}

func excludeFiles(files, exclude []string, logger *slog.Logger) []string {
	if len(exclude) == 0 {
		return files
	}
	skip := make(map[string]bool, len(exclude))
	for _, p := range exclude {
		skip[canonicalPath(p)] = true
	}
	kept := files[:0]
	for _, f := range files {
		if skip[canonicalPath(f)] {
			logger.Info("skipping excluded file", "path", f)
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

func canonicalPath(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return p
}

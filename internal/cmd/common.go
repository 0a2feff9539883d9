package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/dendrascience/dendra-hashsum/internal/config"
	"github.com/dendrascience/dendra-hashsum/internal/logging"
	"github.com/dendrascience/dendra-hashsum/util"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"
)

const configEnvVar = config.EnvVar

// settings is what every hashing command needs before it starts.
type settings struct {
	cfg    config.Config
	logger *slog.Logger
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	path, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.Load(path)
	if err != nil {
		return settings{}, err
	}
	logger := logging.New(cmd.ErrOrStderr(), verbose).With("command", cmd.Name())
	return settings{cfg: cfg, logger: logger}, nil
}

// runHash hashes path, drawing progress on stderr when it is a terminal.
func runHash(cmd *cobra.Command, s settings, path, algorithm string, opts util.Options) (util.Report, error) {
	if opts.ChunkSize == 0 {
		opts.ChunkSize = s.cfg.ChunkSize
	}
	opts.Logger = s.logger

	run := util.NewRun(path, algorithm, opts)
	stderr := cmd.ErrOrStderr()
	if s.cfg.Progress && logging.IsTerminal(stderr) {
		printer := newProgressPrinter(stderr)
		for event := range run.Events() {
			printer.update(event)
		}
		printer.clear()
	}

	report, err := run.Result()
	if err != nil {
		return util.Report{}, withSuggestion(err, path)
	}
	s.logger.Debug("hash complete", "path", path, "algorithm", report.Algorithm.String(), "digest", report.Digest)
	return report, nil
}

// withSuggestion appends a "did you mean" hint to path-not-found errors.
func withSuggestion(err error, path string) error {
	if !errors.Is(err, util.ErrPathNotFound) {
		return err
	}
	if suggestion, ok := util.SuggestPath(path); ok {
		return fmt.Errorf("%w (did you mean %q?)", err, suggestion)
	}
	return err
}

// styleDigest colours digest by its own content so equal digests look
// alike at a glance.
func styleDigest(cfg config.Config, w io.Writer, digest string) string {
	switch cfg.Color {
	case config.ColorNever:
		return digest
	case config.ColorAuto:
		if !logging.IsTerminal(w) {
			return digest
		}
	}
	// 216-colour cube of the 256-colour palette.
	code := 16 + colorhash.HashString(digest)%216
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(strconv.Itoa(code))).
		Bold(true).
		Render(digest)
}

type progressPrinter struct {
	w        io.Writer
	lastPath string
	lastDraw time.Time
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{w: w}
}

func (p *progressPrinter) update(e util.Progress) {
	now := time.Now()
	finished := e.BytesDone == e.FileSize
	if e.Path == p.lastPath && !finished && now.Sub(p.lastDraw) < 150*time.Millisecond {
		return
	}
	p.lastPath, p.lastDraw = e.Path, now
	fmt.Fprintf(p.w, "\r\033[K[%d/%d] %s %s/%s",
		e.FileIndex+1, e.FileCount, filepath.Base(e.Path),
		humanize.Bytes(uint64(e.BytesDone)), humanize.Bytes(uint64(e.FileSize)))
}

func (p *progressPrinter) clear() {
	if p.lastPath != "" {
		fmt.Fprint(p.w, "\r\033[K")
	}
}

func printVerification(w io.Writer, cfg config.Config, v util.Verification) error {
	if v.Equal {
		fmt.Fprintln(w, "The hashes are equal")
		return nil
	}
	fmt.Fprintln(w, "ERROR")
	fmt.Fprintln(w, "The hashes are NOT equal")
	fmt.Fprintf(w, "  computed: %s\n", styleDigest(cfg, w, v.Computed))
	fmt.Fprintf(w, "  expected: %s\n", styleDigest(cfg, w, v.Expected))
	return v.Err()
}

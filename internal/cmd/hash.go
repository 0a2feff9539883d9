package cmd

import (
	"fmt"
	"os"

	"github.com/dendrascience/dendra-hashsum/util"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// NewHashCmd creates and returns the hash subcommand for the hashsum CLI.
// It computes the digest of a file or directory tree, optionally with a
// per-file report.
func NewHashCmd() *cobra.Command {
	var (
		algorithm  string
		individual string
		asJSON     bool
		chunkSize  int
	)

	cmd := &cobra.Command{
		Use:   "hash PATH",
		Short: "Compute the digest of a file or directory",
		Long: `Compute the digest of a file or directory tree.

A directory is hashed as one stream: the contents of every file below it,
concatenated in sorted path order. With --individual the digest of each file
is also written to a report file, which is left out of the hash when it lies
inside the tree.

With --json the report is printed as an object with the fields run_id (a
random UUID identifying this run), algorithm, base, files (path and digest
of every file) and digest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHashCmd(cmd, args[0], algorithm, individual, asJSON, chunkSize)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Digest algorithm (default from config, else sha256)")
	cmd.Flags().StringVarP(&individual, "individual", "i", "", "Write per-file digests to this report file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report, including per-file digests, as JSON")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "Bytes read per update (default from config)")

	return cmd
}

func runHashCmd(cmd *cobra.Command, path, algorithm, individual string, asJSON bool, chunkSize int) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if algorithm == "" {
		algorithm = s.cfg.Algorithm
	}
	if chunkSize < 0 {
		return fmt.Errorf("--chunk-size must be positive, got %d", chunkSize)
	}

	opts := util.Options{
		ChunkSize: chunkSize,
		PerFile:   individual != "" || asJSON,
	}
	if individual != "" {
		opts.Exclude = []string{individual}
	}

	report, err := runHash(cmd, s, path, algorithm, opts)
	if err != nil {
		return err
	}

	if individual != "" {
		if err := writeReport(individual, report); err != nil {
			return err
		}
		s.logger.Info("wrote per-file report", "path", individual, "files", len(report.Files))
	}

	out := cmd.OutOrStdout()
	if asJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	fmt.Fprintln(out, styleDigest(s.cfg, out, report.Digest))
	return nil
}

func writeReport(path string, report util.Report) (retErr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("closing report %s: %w", path, closeErr)
		}
	}()

	if _, err := report.WriteTo(f); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

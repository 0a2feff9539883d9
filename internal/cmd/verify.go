package cmd

import (
	"github.com/dendrascience/dendra-hashsum/util"
	"github.com/spf13/cobra"
)

// NewVerifyCmd creates and returns the verify subcommand for the hashsum CLI.
// It compares the digest of a path against an expected digest.
func NewVerifyCmd() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "verify PATH DIGEST",
		Short: "Compare the digest of a path against an expected digest",
		Long: `Compute the digest of a file or directory and compare it with DIGEST.

Without --algorithm the algorithm is inferred from the length of DIGEST:
32 characters for md5, 40 for sha1, 64 for sha256, 96 for sha384 and 128
for sha512. The comparison is exact and case-sensitive. The command fails
when the digests differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args[0], args[1], algorithm)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Digest algorithm (default inferred from DIGEST)")

	return cmd
}

func runVerify(cmd *cobra.Command, path, expected, algorithm string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if algorithm == "" {
		alg, err := util.AlgorithmForDigest(expected)
		if err != nil {
			return err
		}
		algorithm = alg.String()
	}

	report, err := runHash(cmd, s, path, algorithm, util.Options{})
	if err != nil {
		return err
	}
	return printVerification(cmd.OutOrStdout(), s.cfg, util.Verify(report.Digest, expected))
}

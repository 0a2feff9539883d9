package cmd

import (
	"github.com/dendrascience/dendra-hashsum/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the hashsum CLI.
// It sets up all subcommands, command groups, and persistent flags.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hashsum",
		Short: "hashsum - compute and verify digests of files and directory trees",
		Long: `hashsum computes and verifies cryptographic digests of files or whole
directory trees.

A directory is hashed as the concatenation of all of its files in sorted
path order, so the digest is reproducible across runs and platforms.
Supported algorithms are md5, sha1, sha256, sha384 and sha512; when verifying,
the algorithm is inferred from the length of the expected digest.

Use subcommands to perform different operations:
  - hash: Compute the digest of a file or directory
  - verify: Compare the digest of a path against an expected digest
  - interactive: Prompt for a path, digest and algorithm
  - algorithms: List supported algorithms
  - suggest: Suggest an existing path for a mistyped one`,
		Version:      version.Get().Full(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default $"+configEnvVar+")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	groupHashing := "hashing"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupHashing,
		Title: "Hashing Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	hashCmd := NewHashCmd()
	verifyCmd := NewVerifyCmd()
	interactiveCmd := NewInteractiveCmd()
	algorithmsCmd := NewAlgorithmsCmd()
	suggestCmd := NewSuggestCmd()
	versionCmd := NewVersionCmd()

	hashCmd.GroupID = groupHashing
	verifyCmd.GroupID = groupHashing
	interactiveCmd.GroupID = groupHashing
	algorithmsCmd.GroupID = groupUtilities
	suggestCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(algorithmsCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

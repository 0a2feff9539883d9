package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dendrascience/dendra-hashsum/util"
	"github.com/spf13/cobra"
)

// NewSuggestCmd creates and returns the suggest subcommand for the hashsum
// CLI. It proposes an existing path for a mistyped one.
func NewSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest PATH",
		Short: "Suggest an existing path for a mistyped one",
		Long: `Suggest the closest existing path for PATH.

The last element of PATH is compared with the entries of its parent
directory by edit distance. An entry that starts with it is always a match.
A suggestion is made only when the distance is at most one fifth of its
length.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			suggestion, ok := util.SuggestPath(path)
			if !ok {
				return fmt.Errorf("%w: %s, and nothing similar exists", util.ErrPathNotFound, path)
			}
			fmt.Fprintln(cmd.OutOrStdout(), suggestion)
			return nil
		},
	}
}

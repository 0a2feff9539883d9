package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/dendrascience/dendra-hashsum/util"
	"github.com/spf13/cobra"
)

// NewAlgorithmsCmd creates and returns the algorithms subcommand for the
// hashsum CLI. It lists the supported algorithms and their digest lengths.
func NewAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 2, ' ', 0)
			fmt.Fprintln(writer, "ALGORITHM\tHEX LENGTH")
			for _, a := range util.SupportedAlgorithms() {
				fmt.Fprintf(writer, "%s\t%d\n", a, a.HexLen())
			}
			writer.Flush()
		},
	}
}

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/Carmen-Shannon/oxy-gl/demos"
	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTITLE\tDESCRIPTION")
			for _, d := range demos.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, d.Title, d.Summary)
			}
			return tw.Flush()
		},
	}
}

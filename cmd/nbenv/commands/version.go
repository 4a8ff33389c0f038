package commands

import (
	"fmt"

	"github.com/nbxlab/nbenv/internal/build"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "nbenv version %s (commit: %s, date: %s)\n",
				build.Version, build.Commit, build.Date)
			return nil
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "clean <notebook>",
		Short:             "Remove a notebook's materialized environment state",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: notebookCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Clean(cmd.Context(), args[0])
		},
	}
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "status <notebook>",
		Short:             "Show a notebook's environment without changing it",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: notebookCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Status(cmd.Context(), args[0])
		},
	}
	return cmd
}

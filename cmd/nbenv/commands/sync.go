package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "sync <notebook>",
		Short:             "Synchronize a notebook's environment with its imports",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: notebookCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Sync(cmd.Context(), args[0])
			return err
		},
	}
	return cmd
}

package commands

import (
	"github.com/nbxlab/nbenv/internal/adapters/watcher"
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "watch <notebook>...",
		Short:             "Watch notebooks and re-synchronize on change",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: notebookCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := watcher.NewWatcher()
			if err != nil {
				return err
			}
			return c.app.Watch(cmd.Context(), args, w)
		},
	}
	return cmd
}

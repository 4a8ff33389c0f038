// Package commands implements the CLI commands for nbenv.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/nbxlab/nbenv/internal/build"
	"github.com/nbxlab/nbenv/internal/core/domain"
	"github.com/nbxlab/nbenv/internal/core/ports"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for nbenv.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Sync(ctx context.Context, path string) (domain.SyncResult, error)
	Watch(ctx context.Context, paths []string, w ports.Watcher) error
	Status(ctx context.Context, path string) error
	Search(ctx context.Context, prefix string) error
	Clean(ctx context.Context, path string) error
	CompletePackages(prefix string) []string
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nbenv",
		Short:         "Keep notebook package environments in sync with their imports",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newSyncCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newSearchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used
// for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// notebookCompletion completes notebook file arguments.
func notebookCompletion(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{domain.NotebookExt[1:]}, cobra.ShellCompDirectiveFilterFileExt
}

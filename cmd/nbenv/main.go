// Package main is the entry point for the nbenv tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/nbxlab/nbenv/cmd/nbenv/commands"
	"github.com/nbxlab/nbenv/internal/app"
	"github.com/nbxlab/nbenv/internal/core/domain"
	_ "github.com/nbxlab/nbenv/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Version only prints build metadata; wiring the component graph would
	// demand a registry on disk.
	if len(args) > 0 && (args[0] == "version" || args[0] == "--version") {
		cli := commands.New(nil)
		cli.SetArgs(args)
		cli.SetOutput(os.Stdout, stderr)
		if err := cli.Execute(ctx); err != nil {
			_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
			return 1
		}
		return 0
	}

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available if initialization failed; write directly.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		if errors.Is(err, domain.ErrResolverExhausted) {
			return 2
		}
		return 1
	}
	return 0
}

// Package app implements the application layer for nbenv: it orchestrates
// scanning, usage-mode detection, synchronization, and persistence for one
// or more notebooks.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/nbxlab/nbenv/internal/adapters/config"
	"github.com/nbxlab/nbenv/internal/adapters/watcher"
	"github.com/nbxlab/nbenv/internal/core/domain"
	"github.com/nbxlab/nbenv/internal/core/ports"
	syncengine "github.com/nbxlab/nbenv/internal/engine/sync"
	"github.com/nbxlab/nbenv/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	engine   *syncengine.Engine
	store    ports.EnvironmentStore
	scanner  ports.ImportScanner
	registry ports.Registry
	logger   ports.Logger
	cfg      *config.Config

	out io.Writer
}

// New creates a new App instance.
func New(
	engine *syncengine.Engine,
	store ports.EnvironmentStore,
	scanner ports.ImportScanner,
	registry ports.Registry,
	logger ports.Logger,
	cfg *config.Config,
) *App {
	return &App{
		engine:   engine,
		store:    store,
		scanner:  scanner,
		registry: registry,
		logger:   logger,
		cfg:      cfg,
		out:      os.Stdout,
	}
}

// SetOutput redirects user-facing output. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Sync runs one synchronization pass for the notebook at path and reports
// the result to the user.
func (a *App) Sync(ctx context.Context, path string) (domain.SyncResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.SyncResult{}, zerr.Wrap(err, domain.ErrSyncFailed.Error())
	}

	scan, err := a.scanner.Scan(abs)
	if err != nil {
		return domain.SyncResult{}, err
	}

	env, err := a.store.Load(abs)
	if err != nil {
		return domain.SyncResult{}, err
	}

	newEnv, result, err := a.engine.Synchronize(ctx, syncengine.Request{
		Env:      env,
		Current:  scan.Imports,
		Managed:  syncengine.Managed(scan.References),
		Dir:      a.store.Dir(abs),
	})
	if err != nil {
		return domain.SyncResult{}, zerr.With(
			zerr.Wrap(err, domain.ErrSyncFailed.Error()),
			"notebook", abs,
		)
	}

	if newEnv == nil {
		if env != nil {
			if err := a.store.Remove(abs); err != nil {
				return result, err
			}
		}
	} else if err := a.store.Save(newEnv); err != nil {
		return result, err
	}

	a.report(abs, result)
	return result, nil
}

// report prints a one-line summary of the sync result.
func (a *App) report(path string, result domain.SyncResult) {
	name := filepath.Base(path)
	switch {
	case !result.DidWork:
		fmt.Fprintf(a.out, "%s %s up to date\n", style.Check, name)
	case result.RestartRequired:
		fmt.Fprintf(a.out, "%s %s synchronized at %s, restart required\n",
			style.Warning, name, result.TierUsed)
	case result.RestartRecommended:
		fmt.Fprintf(a.out, "%s %s synchronized at %s, restart recommended\n",
			style.Warning, name, result.TierUsed)
	default:
		fmt.Fprintf(a.out, "%s %s synchronized\n", style.Check, name)
	}
}

// Watch synchronizes the given notebooks and keeps re-synchronizing them as
// they change until ctx is canceled.
func (a *App) Watch(ctx context.Context, paths []string, w ports.Watcher) error {
	// Initial pass: diffs run concurrently, mutation is serialized by the
	// engine's token.
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range paths {
		g.Go(func() error {
			_, err := a.Sync(gctx, p)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	debouncer := watcher.NewDebouncer(
		time.Duration(a.cfg.DebounceMS)*time.Millisecond,
		func(changed []string) {
			for _, p := range changed {
				if _, err := a.Sync(ctx, p); err != nil {
					a.logger.Error(err)
				}
			}
		},
	)

	if err := w.Start(ctx, paths); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() {
		_ = w.Stop()
		debouncer.Flush()
	}()

	a.logger.Info(fmt.Sprintf("watching %d notebook(s)", len(paths)))

	for event := range w.Events() {
		if event.Operation == ports.OpRemove {
			continue
		}
		debouncer.Add(event.Path)
	}
	return ctx.Err()
}

// Status prints a read-only report of a notebook's environment without
// mutating anything.
func (a *App) Status(_ context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	scan, err := a.scanner.Scan(abs)
	if err != nil {
		return err
	}

	env, err := a.store.Load(abs)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, style.Header.Render(filepath.Base(abs)))

	if !syncengine.Managed(scan.References) {
		fmt.Fprintf(a.out, "%s unmanaged: the notebook calls the package manager directly\n", style.Circle)
		return nil
	}
	if env == nil {
		fmt.Fprintf(a.out, "%s no environment yet (%d imports pending)\n",
			style.Circle, len(scan.Imports))
		return nil
	}

	for _, name := range env.DeclaredNames() {
		version, stdlib, ok := env.ResolvedVersion(name)
		switch {
		case stdlib:
			fmt.Fprintf(a.out, "  %s %s %s\n", style.Dot, name, style.Muted.Render("stdlib"))
		case ok:
			fmt.Fprintf(a.out, "  %s %s %s\n", style.Dot, name, version)
		default:
			fmt.Fprintf(a.out, "  %s %s %s\n", style.Circle, name, style.Muted.Render("unresolved"))
		}
	}

	// Pending drift between the document and the declarations.
	for _, name := range scan.Imports.Sorted() {
		if _, declared := env.Deps[name]; !declared && a.registry.Exists(name) {
			fmt.Fprintf(a.out, "  + %s %s\n", name, style.Muted.Render("(pending add)"))
		}
	}
	for _, name := range env.DeclaredNames() {
		if !scan.Imports.Has(name) {
			fmt.Fprintf(a.out, "  - %s %s\n", name, style.Muted.Render("(pending remove)"))
		}
	}
	return nil
}

// Search prints all registry packages with the given prefix.
func (a *App) Search(_ context.Context, prefix string) error {
	for _, name := range a.registry.Complete(prefix) {
		fmt.Fprintln(a.out, name)
	}
	return nil
}

// Clean removes all persisted environment state for a notebook.
func (a *App) Clean(_ context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := a.store.Remove(abs); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s cleaned %s\n", style.Check, filepath.Base(abs))
	return nil
}

// CompletePackages returns registry package names with the given prefix, for
// shell completion.
func (a *App) CompletePackages(prefix string) []string {
	return a.registry.Complete(prefix)
}

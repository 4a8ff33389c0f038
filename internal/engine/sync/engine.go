// Package sync implements the tiered synchronization engine: it diffs a
// notebook's import set against its environment's declared dependencies,
// drives the resolver through the preservation tiers, re-provisions when
// anything changed, and classifies the outcome into a restart advisory.
package sync

import (
	"context"
	"fmt"
	"slices"

	"github.com/nbxlab/nbenv/internal/core/domain"
	"github.com/nbxlab/nbenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request carries one synchronization's inputs. The engine never mutates
// Current.
type Request struct {
	// Env is the notebook's environment, nil when managed tracking was off.
	// The environment's declared dependencies stand in for the previous
	// import set when computing the diff.
	Env *domain.Environment
	// Current is the import set derived from the document's present cells.
	Current domain.ImportSet
	// Managed is the usage-mode detector's verdict for the document's
	// current reference set.
	Managed bool
	// Dir is the state directory to assign when a fresh environment is
	// created by this synchronization.
	Dir string
}

// Engine synchronizes environments against import sets. Diff computation
// runs without any lock; environment mutation is serialized process-wide
// through the injected Serializer because the resolver and registry cache
// are process-global state.
type Engine struct {
	resolver   ports.Resolver
	registry   ports.Registry
	factory    ports.EnvironmentFactory
	serializer *Serializer
	tracer     ports.Tracer
	logger     ports.Logger
}

// NewEngine creates an Engine with the given collaborators.
func NewEngine(
	resolver ports.Resolver,
	registry ports.Registry,
	factory ports.EnvironmentFactory,
	serializer *Serializer,
	tracer ports.Tracer,
	logger ports.Logger,
) *Engine {
	return &Engine{
		resolver:   resolver,
		registry:   registry,
		factory:    factory,
		serializer: serializer,
		tracer:     tracer,
		logger:     logger,
	}
}

// Synchronize brings req.Env in line with req.Current and returns the
// environment to use from now on (nil when tracking turned off) together
// with the sync result. Add failures escalate through the preservation
// tiers; removal and instantiate failures propagate immediately.
func (e *Engine) Synchronize(ctx context.Context, req Request) (*domain.Environment, domain.SyncResult, error) {
	ctx, span := e.tracer.Start(ctx, "sync",
		ports.WithAttribute("imports", len(req.Current)))
	defer span.End()

	// Step 1: mode transition.
	env, forced, err := e.transition(ctx, req)
	if err != nil {
		span.RecordError(err)
		return req.Env, domain.SyncResult{}, err
	}

	// Step 2: nothing to manage.
	if env == nil {
		return nil, domain.SyncResult{
			DidWork:            forced,
			TierUsed:           domain.PreserveAll,
			RestartRecommended: forced,
			RestartRequired:    forced,
		}, nil
	}

	// Step 3: diff. Names the registry does not know are dropped silently;
	// they may be local or script-only symbols.
	toRemove, toAdd := e.diff(env, req.Current)

	// Step 4: serialized mutation.
	result, err := e.mutate(ctx, env, toRemove, toAdd, forced)
	if err != nil {
		span.RecordError(err)
		return env, domain.SyncResult{}, err
	}

	if result.RestartRecommended {
		env.Advised = true
	}
	span.SetAttribute("tier", result.TierUsed.String())
	return env, result, nil
}

// transition applies the managed-tracking mode change, returning the
// environment to operate on and whether the transition alone forces a
// restart advisory.
func (e *Engine) transition(ctx context.Context, req Request) (*domain.Environment, bool, error) {
	switch {
	case req.Env == nil && req.Managed:
		env, err := e.factory.CreateEnvironment(ctx)
		if err != nil {
			return nil, false, zerr.Wrap(err, "failed to create environment")
		}
		if env.Dir == "" {
			env.Dir = req.Dir
		}
		e.logger.Debug("managed tracking enabled")
		return env, true, nil

	case req.Env != nil && !req.Managed:
		// Destroying the environment only matters when it holds non-trivial
		// state: an advisory was issued before, or a non-stdlib dependency
		// is declared.
		forced := req.Env.Advised || !e.allStdlib(req.Env.DeclaredNames())
		e.logger.Debug("managed tracking disabled")
		return nil, forced, nil

	default:
		return req.Env, false, nil
	}
}

func (e *Engine) allStdlib(names []string) bool {
	for _, n := range names {
		if !e.registry.IsStdlib(n) {
			return false
		}
	}
	return true
}

// diff computes the removal and addition sets between the environment's
// declared dependencies and the current import set.
func (e *Engine) diff(env *domain.Environment, current domain.ImportSet) (toRemove, toAdd []string) {
	for _, name := range env.DeclaredNames() {
		if !current.Has(name) {
			toRemove = append(toRemove, name)
		}
	}
	for _, name := range current.Sorted() {
		if _, declared := env.Deps[name]; declared {
			continue
		}
		if e.registry.Exists(name) {
			toAdd = append(toAdd, name)
		}
	}
	return toRemove, toAdd
}

// mutate holds the serializer for the remove/add/instantiate sequence.
func (e *Engine) mutate(
	ctx context.Context,
	env *domain.Environment,
	toRemove, toAdd []string,
	forced bool,
) (domain.SyncResult, error) {
	if err := e.serializer.Acquire(ctx); err != nil {
		return domain.SyncResult{}, err
	}
	defer e.serializer.Release()

	beforeKeys := env.NonStdlibResolvedNames()

	if len(toRemove) > 0 {
		ctx, span := e.tracer.Start(ctx, "remove",
			ports.WithAttribute("packages", fmt.Sprintf("%v", toRemove)))
		err := e.resolver.Remove(ctx, env, toRemove)
		span.End()
		if err != nil {
			return domain.SyncResult{}, zerr.With(
				zerr.Wrap(err, domain.ErrRemoveFailed.Error()),
				"packages", fmt.Sprintf("%v", toRemove),
			)
		}
	}

	afterKeys := env.NonStdlibResolvedNames()

	tierUsed := domain.PreserveAll
	if len(toAdd) > 0 {
		e.relaxOwnCompat(env)

		tier, err := e.addTiered(ctx, env, toAdd)
		if err != nil {
			return domain.SyncResult{}, err
		}
		tierUsed = tier

		e.writeCompat(env)
	}

	// First successful synchronization always provisions, so the lock file
	// is materialized even when the import set was empty.
	shouldReprovision := !env.Provisioned || len(toAdd) > 0 || len(toRemove) > 0
	if shouldReprovision {
		ctx, span := e.tracer.Start(ctx, "instantiate")
		err := e.resolver.Instantiate(ctx, env)
		span.End()
		if err != nil {
			return domain.SyncResult{}, zerr.Wrap(err, domain.ErrInstantiateFailed.Error())
		}
		env.Provisioned = true
	}

	removalChangedKeys := len(toRemove) > 0 && !slices.Equal(beforeKeys, afterKeys)

	return domain.SyncResult{
		DidWork:            forced || shouldReprovision,
		TierUsed:           tierUsed,
		RestartRecommended: forced || removalChangedKeys || tierUsed != domain.PreserveAll,
		RestartRequired:    forced || tierUsed >= domain.PreserveSemver,
	}, nil
}

// addTiered attempts the add at each preservation tier in fixed order. The
// first success wins; failure at the loosest tier is fatal.
func (e *Engine) addTiered(ctx context.Context, env *domain.Environment, toAdd []string) (domain.PreservationTier, error) {
	var lastErr error
	for _, tier := range domain.Tiers {
		ctx, span := e.tracer.Start(ctx, "add",
			ports.WithAttribute("tier", tier.String()),
			ports.WithAttribute("packages", fmt.Sprintf("%v", toAdd)))
		err := e.resolver.Add(ctx, env, toAdd, tier)
		span.End()
		if err == nil {
			return tier, nil
		}
		lastErr = err
		if tier != domain.PreserveNone {
			e.logger.Debug(fmt.Sprintf("resolution failed at %s, escalating", tier))
		}
	}
	return domain.PreserveNone, zerr.With(
		zerr.With(
			zerr.Wrap(lastErr, domain.ErrResolverExhausted.Error()),
			"packages", fmt.Sprintf("%v", toAdd),
		),
		"tier", domain.PreserveNone.String(),
	)
}

// relaxOwnCompat clears compat entries whose range exactly matches the
// caret range of the currently resolved version. Those were written by a
// previous sync, not by hand, and would otherwise keep the resolver from
// re-resolving freely.
func (e *Engine) relaxOwnCompat(env *domain.Environment) {
	for _, name := range env.DeclaredNames() {
		version, stdlib, ok := env.ResolvedVersion(name)
		if !ok || stdlib {
			continue
		}
		env.ClearCompatIfMatches(name, domain.CaretRange(version))
	}
}

// writeCompat records a caret range for every declared non-stdlib
// dependency that resolved to a version and has no compat entry yet.
func (e *Engine) writeCompat(env *domain.Environment) {
	for _, name := range env.DeclaredNames() {
		if _, ok := env.Compat[name]; ok {
			continue
		}
		version, stdlib, ok := env.ResolvedVersion(name)
		if !ok || stdlib || version == "" {
			continue
		}
		env.SetCompat(name, domain.CaretRange(version))
	}
}

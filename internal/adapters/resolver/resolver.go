// Package resolver implements dependency resolution against a package
// registry, honoring the preservation tier requested by the sync engine.
package resolver

import (
	"context"
	"sort"

	"github.com/nbxlab/nbenv/internal/core/domain"
	"github.com/nbxlab/nbenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.Resolver. It mutates environments in place and
// assumes the caller serializes mutations; the loader path stack it touches
// during instantiate is process-global.
type Resolver struct {
	registry ports.Registry
	paths    *LoaderPaths
	logger   ports.Logger
}

// NewResolver creates a resolver backed by the given registry.
func NewResolver(registry ports.Registry, paths *LoaderPaths, logger ports.Logger) *Resolver {
	return &Resolver{registry: registry, paths: paths, logger: logger}
}

// Add declares names as direct dependencies and resolves the closure at the
// given tier. On failure the declared set keeps the new names but the lock
// is left untouched, so a retry at a looser tier starts from the same state.
func (r *Resolver) Add(ctx context.Context, env *domain.Environment, names []string, tier domain.PreservationTier) error {
	for _, name := range names {
		if _, ok := env.Deps[name]; !ok {
			env.Deps[name] = domain.AnyVersion
		}
	}

	resolved, err := r.resolve(ctx, env, tier)
	if err != nil {
		return zerr.With(err, "tier", tier.String())
	}
	env.Resolved = resolved
	return nil
}

// Remove drops names from the declared dependencies and prunes lock entries
// no longer reachable from the remaining ones. Surviving entries keep their
// versions.
func (r *Resolver) Remove(_ context.Context, env *domain.Environment, names []string) error {
	for _, name := range names {
		if _, ok := env.Deps[name]; !ok {
			return zerr.With(domain.ErrNotDeclared, "package", name)
		}
		delete(env.Deps, name)
		delete(env.Compat, name)
	}

	// Walk the surviving lock graph from the remaining direct dependencies;
	// everything unreachable was only held alive by the removed packages.
	reachable := make(map[string]struct{})
	queue := env.DeclaredNames()
	for _, n := range queue {
		reachable[n] = struct{}{}
	}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		entry, ok := env.Resolved[name]
		if !ok {
			continue
		}
		for _, dep := range entry.Deps {
			if _, seen := reachable[dep]; !seen {
				reachable[dep] = struct{}{}
				queue = append(queue, dep)
			}
		}
	}

	pruned := make(map[string]domain.LockEntry, len(reachable))
	for name, entry := range env.Resolved {
		if _, keep := reachable[name]; !keep {
			continue
		}
		_, direct := env.Deps[name]
		entry.Direct = direct
		pruned[name] = entry
	}
	env.Resolved = pruned
	return nil
}

// resolve computes a full lock for the environment's declared dependencies.
type resolution struct {
	registry    ports.Registry
	pins        map[string]string
	constraints map[string][]string
	chosen      map[string]domain.LockEntry
}

func (r *Resolver) resolve(ctx context.Context, env *domain.Environment, tier domain.PreservationTier) (map[string]domain.LockEntry, error) {
	res := &resolution{
		registry:    r.registry,
		pins:        make(map[string]string),
		constraints: make(map[string][]string),
		chosen:      make(map[string]domain.LockEntry),
	}

	// Tier pins and ranges over the existing lock.
	for name, entry := range env.Resolved {
		if entry.Stdlib {
			continue
		}
		switch tier {
		case domain.PreserveAll:
			res.pins[name] = entry.Version
		case domain.PreserveDirect:
			if !entry.Direct {
				res.pins[name] = entry.Version
			}
		case domain.PreserveSemver:
			res.addConstraint(name, domain.CaretRange(entry.Version))
		case domain.PreserveNone:
		}
	}

	// Declared ranges and compat entries always apply.
	for name, rng := range env.Deps {
		res.addConstraint(name, rng)
	}
	for name, rng := range env.Compat {
		res.addConstraint(name, rng)
	}

	queue := env.DeclaredNames()
	rounds := 0
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// A growing constraint set can re-enqueue packages; the bound only
		// guards against pathological registries.
		if rounds++; rounds > 10000 {
			return nil, zerr.With(domain.ErrVersionConflict, "reason", "resolution did not converge")
		}

		name := queue[0]
		queue = queue[1:]

		requeue, err := res.evaluate(name, env.Deps)
		if err != nil {
			return nil, err
		}
		queue = append(queue, requeue...)
	}
	return res.chosen, nil
}

// evaluate picks a version for name and returns any packages whose
// constraint sets changed as a consequence.
func (res *resolution) evaluate(name string, declared map[string]string) ([]string, error) {
	if res.registry.IsStdlib(name) {
		_, direct := declared[name]
		res.chosen[name] = domain.LockEntry{Stdlib: true, Direct: direct}
		return nil, nil
	}

	versions, err := res.registry.Versions(name)
	if err != nil {
		return nil, err
	}

	candidate, err := res.pick(name, versions)
	if err != nil {
		return nil, err
	}

	if prev, ok := res.chosen[name]; ok && prev.Version == candidate.Version {
		return nil, nil
	}

	_, direct := declared[name]
	deps := append([]string(nil), candidate.Deps...)
	sort.Strings(deps)
	res.chosen[name] = domain.LockEntry{
		Version: candidate.Version,
		Direct:  direct,
		Deps:    deps,
	}

	var requeue []string
	for dep, rng := range candidate.Compat {
		if res.addConstraint(dep, rng) {
			requeue = append(requeue, dep)
		}
	}
	for _, dep := range deps {
		if _, chosenAlready := res.chosen[dep]; !chosenAlready {
			requeue = append(requeue, dep)
		}
	}
	sort.Strings(requeue)
	return requeue, nil
}

// pick selects the version of name to use: the pinned one when a pin
// applies, otherwise the newest version satisfying every constraint.
func (res *resolution) pick(name string, versions []ports.PackageVersion) (ports.PackageVersion, error) {
	if pinned, ok := res.pins[name]; ok {
		for _, rng := range res.constraints[name] {
			if !domain.RangeSatisfies(rng, pinned) {
				return ports.PackageVersion{}, zerr.With(
					zerr.With(
						zerr.With(domain.ErrVersionConflict, "package", name),
						"pinned", pinned,
					),
					"range", rng,
				)
			}
		}
		for _, v := range versions {
			if v.Version == pinned {
				return v, nil
			}
		}
		return ports.PackageVersion{}, zerr.With(
			zerr.With(domain.ErrNoSatisfyingVersion, "package", name),
			"pinned", pinned,
		)
	}

	for _, v := range versions {
		if res.satisfiesAll(name, v.Version) {
			return v, nil
		}
	}
	return ports.PackageVersion{}, zerr.With(domain.ErrNoSatisfyingVersion, "package", name)
}

func (res *resolution) satisfiesAll(name, version string) bool {
	for _, rng := range res.constraints[name] {
		if !domain.RangeSatisfies(rng, version) {
			return false
		}
	}
	return true
}

// addConstraint appends rng for name, reporting whether it was new.
func (res *resolution) addConstraint(name, rng string) bool {
	if rng == "" || rng == domain.AnyVersion {
		// Unconstrained ranges never narrow anything; still make sure the
		// package participates in resolution.
		if _, ok := res.constraints[name]; !ok {
			res.constraints[name] = nil
			return true
		}
		return false
	}
	for _, existing := range res.constraints[name] {
		if existing == rng {
			return false
		}
	}
	res.constraints[name] = append(res.constraints[name], rng)
	return true
}

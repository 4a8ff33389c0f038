// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/nbxlab/nbenv/internal/core/domain"
)

// Resolver drives the dependency resolver against an environment. All three
// operations mutate the environment in place and may fail; the sync engine
// decides which failures are retried at a looser tier and which are fatal.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	// Add declares names as direct dependencies and resolves the full
	// dependency closure at the given preservation tier. On failure the
	// environment's declared set may retain the new names, but the lock is
	// left untouched.
	Add(ctx context.Context, env *domain.Environment, names []string, tier domain.PreservationTier) error

	// Remove drops names from the declared dependencies and prunes lock
	// entries that are no longer reachable from the remaining ones.
	Remove(ctx context.Context, env *domain.Environment, names []string) error

	// Instantiate materializes the resolved lock into a usable local
	// installation under the environment's directory.
	Instantiate(ctx context.Context, env *domain.Environment) error
}

// EnvironmentFactory creates fresh environments when a notebook transitions
// into managed tracking.
type EnvironmentFactory interface {
	// CreateEnvironment returns a new, empty environment.
	CreateEnvironment(ctx context.Context) (*domain.Environment, error)
}

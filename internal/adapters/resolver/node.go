package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/nbxlab/nbenv/internal/adapters/logger"
	"github.com/nbxlab/nbenv/internal/adapters/registry"
	"github.com/nbxlab/nbenv/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the resolver Graft node.
	NodeID graft.ID = "adapter.resolver"
	// FactoryNodeID is the unique identifier for the environment factory
	// Graft node.
	FactoryNodeID graft.ID = "adapter.env_factory"
	// LoaderPathsNodeID is the unique identifier for the loader path stack
	// Graft node.
	LoaderPathsNodeID graft.ID = "adapter.loader_paths"
)

func init() {
	// The loader path stack models process-global state; it must be a
	// single cached instance per wiring graph.
	graft.Register(graft.Node[*LoaderPaths]{
		ID:        LoaderPathsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*LoaderPaths, error) {
			return NewLoaderPaths(), nil
		},
	})

	graft.Register(graft.Node[ports.EnvironmentFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EnvironmentFactory, error) {
			return NewFactory(), nil
		},
	})

	graft.Register(graft.Node[ports.Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{registry.NodeID, LoaderPathsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Resolver, error) {
			reg, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			paths, err := graft.Dep[*LoaderPaths](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(reg, paths, log), nil
		},
	})
}

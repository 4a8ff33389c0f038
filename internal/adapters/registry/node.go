package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/nbxlab/nbenv/internal/adapters/config"
	"github.com/nbxlab/nbenv/internal/adapters/logger"
	"github.com/nbxlab/nbenv/internal/core/ports"
)

// NodeID is the unique identifier for the registry Graft node.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Registry, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(cfg.Registries, log)
		},
	})
}

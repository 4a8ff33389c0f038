package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/nbxlab/nbenv/internal/adapters/config"
	"github.com/nbxlab/nbenv/internal/adapters/envstore"
	"github.com/nbxlab/nbenv/internal/adapters/logger"
	"github.com/nbxlab/nbenv/internal/adapters/registry"
	"github.com/nbxlab/nbenv/internal/adapters/scanner"
	"github.com/nbxlab/nbenv/internal/core/ports"
	syncengine "github.com/nbxlab/nbenv/internal/engine/sync"
)

// Components bundles everything the CLI entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			syncengine.NodeID,
			envstore.NodeID,
			scanner.NodeID,
			registry.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			engine, err := graft.Dep[*syncengine.Engine](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.EnvironmentStore](ctx)
			if err != nil {
				return nil, err
			}
			scan, err := graft.Dep[ports.ImportScanner](ctx)
			if err != nil {
				return nil, err
			}
			reg, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(engine, store, scan, reg, log, cfg),
				Logger: log,
			}, nil
		},
	})
}

package sync

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/nbxlab/nbenv/internal/adapters/logger"
	"github.com/nbxlab/nbenv/internal/adapters/registry"
	"github.com/nbxlab/nbenv/internal/adapters/resolver"
	"github.com/nbxlab/nbenv/internal/adapters/telemetry"
	"github.com/nbxlab/nbenv/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the sync engine Graft node.
	NodeID graft.ID = "engine.sync"
	// SerializerNodeID is the unique identifier for the mutation serializer
	// Graft node.
	SerializerNodeID graft.ID = "engine.serializer"
)

func init() {
	// One mutation token per process-wide wiring graph.
	graft.Register(graft.Node[*Serializer]{
		ID:        SerializerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Serializer, error) {
			return NewSerializer(), nil
		},
	})

	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolver.NodeID,
			resolver.FactoryNodeID,
			registry.NodeID,
			SerializerNodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			res, err := graft.Dep[ports.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			reg, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			factory, err := graft.Dep[ports.EnvironmentFactory](ctx)
			if err != nil {
				return nil, err
			}
			serializer, err := graft.Dep[*Serializer](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(res, reg, factory, serializer, tracer, log), nil
		},
	})
}

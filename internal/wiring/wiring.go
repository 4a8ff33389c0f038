// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/nbxlab/nbenv/internal/adapters/config"
	_ "github.com/nbxlab/nbenv/internal/adapters/envstore"
	_ "github.com/nbxlab/nbenv/internal/adapters/logger"
	_ "github.com/nbxlab/nbenv/internal/adapters/registry"
	_ "github.com/nbxlab/nbenv/internal/adapters/resolver"
	_ "github.com/nbxlab/nbenv/internal/adapters/scanner"
	_ "github.com/nbxlab/nbenv/internal/adapters/telemetry"
	_ "github.com/nbxlab/nbenv/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/nbxlab/nbenv/internal/app"
	_ "github.com/nbxlab/nbenv/internal/engine/sync"
)

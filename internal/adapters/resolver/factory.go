package resolver

import (
	"context"

	"github.com/nbxlab/nbenv/internal/core/domain"
)

// Factory implements ports.EnvironmentFactory. Created environments have no
// backing directory yet; the application layer assigns one before saving.
type Factory struct{}

// NewFactory creates a Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// CreateEnvironment returns a new, empty environment.
func (f *Factory) CreateEnvironment(_ context.Context) (*domain.Environment, error) {
	return domain.NewEnvironment(), nil
}

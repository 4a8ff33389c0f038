package resolver

import (
	"sync"

	"github.com/nbxlab/nbenv/internal/core/domain"
	"go.trai.ch/zerr"
)

// LoaderPaths is the process-global module search path stack. Instantiate
// pushes the environment's directory for the duration of the operation;
// leaking an entry would corrupt module resolution for every other notebook
// in the process, so Pop verifies it removes exactly what was pushed.
type LoaderPaths struct {
	mu    sync.Mutex
	stack []string
}

// NewLoaderPaths creates an empty loader path stack.
func NewLoaderPaths() *LoaderPaths {
	return &LoaderPaths{}
}

// Push places path on top of the stack.
func (p *LoaderPaths) Push(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stack = append(p.stack, path)
}

// Pop removes the top of the stack, failing when it does not match expected.
func (p *LoaderPaths) Pop(expected string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.stack) == 0 {
		return zerr.With(domain.ErrLoaderPathEmpty, "expected", expected)
	}
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	if top != expected {
		return zerr.With(
			zerr.With(domain.ErrLoaderPathMismatch, "expected", expected),
			"popped", top,
		)
	}
	return nil
}

// Snapshot returns a copy of the current stack, bottom first.
func (p *LoaderPaths) Snapshot() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.stack...)
}

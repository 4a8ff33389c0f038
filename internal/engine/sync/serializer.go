package sync

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Serializer is the process-wide environment-mutation token. The resolver
// and the parsed-registry cache are process-global mutable state, so at most
// one environment mutation may run at a time across all notebooks sharing
// the process. Acquisition blocks with no timeout; contention is expected to
// be rare and first-come-first-served is acceptable.
//
// The serializer is an injected object rather than a package-level
// singleton so tests can instantiate independent ones per case.
type Serializer struct {
	sem *semaphore.Weighted
}

// NewSerializer creates a serializer with a single mutation token.
func NewSerializer() *Serializer {
	return &Serializer{sem: semaphore.NewWeighted(1)}
}

// Acquire blocks until the token is free or ctx is done.
func (s *Serializer) Acquire(ctx context.Context) error {
	return s.sem.Acquire(ctx, 1)
}

// Release returns the token. It must only be called after a successful
// Acquire.
func (s *Serializer) Release() {
	s.sem.Release(1)
}

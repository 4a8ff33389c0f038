package sync_test

import (
	"context"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/require"

	syncengine "github.com/nbxlab/nbenv/internal/engine/sync"
)

func TestSerializer_MutualExclusion(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := syncengine.NewSerializer()

		var inCritical atomic.Int32
		var maxSeen atomic.Int32
		done := make(chan struct{})

		for range 8 {
			go func() {
				defer func() { done <- struct{}{} }()
				require.NoError(t, s.Acquire(context.Background()))
				defer s.Release()

				n := inCritical.Add(1)
				if n > maxSeen.Load() {
					maxSeen.Store(n)
				}
				synctest.Wait()
				inCritical.Add(-1)
			}()
		}
		for range 8 {
			<-done
		}

		require.Equal(t, int32(1), maxSeen.Load())
	})
}

func TestSerializer_AcquireHonorsContext(t *testing.T) {
	s := syncengine.NewSerializer()
	require.NoError(t, s.Acquire(context.Background()))
	defer s.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, s.Acquire(ctx))
}

package watcher_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbxlab/nbenv/internal/adapters/watcher"
)

func TestDebouncer_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/notebooks/analysis.nb")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		require.Equal(t, []string{"/notebooks/analysis.nb"}, receivedPaths)
	})
}

func TestDebouncer_CoalescesWithinWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/notebooks/a.nb")
		d.Add("/notebooks/b.nb")
		d.Add("/notebooks/a.nb")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		require.Len(t, receivedPaths, 2)
		assert.Contains(t, receivedPaths, "/notebooks/a.nb")
		assert.Contains(t, receivedPaths, "/notebooks/b.nb")
	})
}

func TestDebouncer_WindowRestartsOnAdd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			callCount++
		})

		d.Add("/notebooks/a.nb")
		time.Sleep(60 * time.Millisecond)
		d.Add("/notebooks/b.nb")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		// The second add restarted the window, so nothing fired yet.
		require.Equal(t, 0, callCount)

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		require.Equal(t, 1, callCount)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	var callCount int
	var receivedPaths []string

	d := watcher.NewDebouncer(time.Hour, func(paths []string) {
		callCount++
		receivedPaths = paths
	})

	d.Add("/notebooks/a.nb")
	d.Flush()

	require.Equal(t, 1, callCount)
	require.Equal(t, []string{"/notebooks/a.nb"}, receivedPaths)
}

func TestDebouncer_FlushEmptyIsNoop(t *testing.T) {
	var callCount int
	d := watcher.NewDebouncer(time.Hour, func([]string) {
		callCount++
	})

	d.Flush()
	require.Equal(t, 0, callCount)
}

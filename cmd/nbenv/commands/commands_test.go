package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbxlab/nbenv/cmd/nbenv/commands"
	"github.com/nbxlab/nbenv/internal/build"
	"github.com/nbxlab/nbenv/internal/core/domain"
	"github.com/nbxlab/nbenv/internal/core/ports"
)

type mockApp struct {
	syncFunc   func(ctx context.Context, path string) (domain.SyncResult, error)
	watchFunc  func(ctx context.Context, paths []string, w ports.Watcher) error
	statusFunc func(ctx context.Context, path string) error
	searchFunc func(ctx context.Context, prefix string) error
	cleanFunc  func(ctx context.Context, path string) error
}

func (m *mockApp) Sync(ctx context.Context, path string) (domain.SyncResult, error) {
	if m.syncFunc != nil {
		return m.syncFunc(ctx, path)
	}
	return domain.SyncResult{}, nil
}

func (m *mockApp) Watch(ctx context.Context, paths []string, w ports.Watcher) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, paths, w)
	}
	return nil
}

func (m *mockApp) Status(ctx context.Context, path string) error {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, path)
	}
	return nil
}

func (m *mockApp) Search(ctx context.Context, prefix string) error {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, prefix)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, path string) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, path)
	}
	return nil
}

func (m *mockApp) CompletePackages(prefix string) []string {
	return []string{prefix + "math"}
}

func TestCommands_Sync(t *testing.T) {
	t.Run("passes the notebook path", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			syncFunc: func(_ context.Context, path string) (domain.SyncResult, error) {
				captured = path
				return domain.SyncResult{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"sync", "analysis.nb"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "analysis.nb", captured)
	})

	t.Run("returns sync failure", func(t *testing.T) {
		mock := &mockApp{
			syncFunc: func(_ context.Context, _ string) (domain.SyncResult, error) {
				return domain.SyncResult{}, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"sync", "analysis.nb"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("requires exactly one argument", func(t *testing.T) {
		mock := &mockApp{
			syncFunc: func(_ context.Context, _ string) (domain.SyncResult, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"sync"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Watch(t *testing.T) {
	var captured []string
	mock := &mockApp{
		watchFunc: func(_ context.Context, paths []string, w ports.Watcher) error {
			captured = paths
			require.NotNil(t, w)
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "a.nb", "b.nb"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []string{"a.nb", "b.nb"}, captured)
}

func TestCommands_Status(t *testing.T) {
	var captured string
	mock := &mockApp{
		statusFunc: func(_ context.Context, path string) error {
			captured = path
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"status", "analysis.nb"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "analysis.nb", captured)
}

func TestCommands_Search(t *testing.T) {
	t.Run("with prefix", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			searchFunc: func(_ context.Context, prefix string) error {
				captured = prefix
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"search", "plot"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "plot", captured)
	})

	t.Run("without prefix lists everything", func(t *testing.T) {
		var captured string
		called := false
		mock := &mockApp{
			searchFunc: func(_ context.Context, prefix string) error {
				captured = prefix
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"search"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.Empty(t, captured)
	})
}

func TestCommands_Clean(t *testing.T) {
	var captured string
	mock := &mockApp{
		cleanFunc: func(_ context.Context, path string) error {
			captured = path
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean", "analysis.nb"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "analysis.nb", captured)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}

package app_test

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nbxlab/nbenv/internal/adapters/config"
	"github.com/nbxlab/nbenv/internal/app"
	"github.com/nbxlab/nbenv/internal/core/domain"
	"github.com/nbxlab/nbenv/internal/core/ports"
	"github.com/nbxlab/nbenv/internal/core/ports/mocks"
	syncengine "github.com/nbxlab/nbenv/internal/engine/sync"
)

type appTestMocks struct {
	resolver *mocks.MockResolver
	registry *mocks.MockRegistry
	factory  *mocks.MockEnvironmentFactory
	store    *mocks.MockEnvironmentStore
	scanner  *mocks.MockImportScanner
	logger   *mocks.MockLogger
}

// setupAppTest wires an App around a real sync engine with mocked
// collaborators and a captured output buffer.
func setupAppTest(t *testing.T) (*app.App, appTestMocks, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appTestMocks{
		resolver: mocks.NewMockResolver(ctrl),
		registry: mocks.NewMockRegistry(ctrl),
		factory:  mocks.NewMockEnvironmentFactory(ctrl),
		store:    mocks.NewMockEnvironmentStore(ctrl),
		scanner:  mocks.NewMockImportScanner(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()
	m.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	engine := syncengine.NewEngine(m.resolver, m.registry, m.factory, syncengine.NewSerializer(), tracer, m.logger)
	a := app.New(engine, m.store, m.scanner, m.registry, m.logger, &config.Config{DebounceMS: 10})

	buf := &bytes.Buffer{}
	a.SetOutput(buf)
	return a, m, buf
}

func scanResult(imports []string, refs []string) ports.ScanResult {
	return ports.ScanResult{
		Imports:    domain.NewImportSet(imports...),
		References: domain.NewReferenceSet(refs...),
		Cells:      1,
	}
}

func TestSync_NewNotebook(t *testing.T) {
	a, m, buf := setupAppTest(t)

	m.scanner.EXPECT().Scan(gomock.Any()).Return(scanResult([]string{"qmath"}, nil), nil)
	m.store.EXPECT().Load(gomock.Any()).Return(nil, nil)
	m.store.EXPECT().Dir(gomock.Any()).Return("/state/envs/analysis-abc")
	m.factory.EXPECT().CreateEnvironment(gomock.Any()).Return(domain.NewEnvironment(), nil)
	m.registry.EXPECT().Exists("qmath").Return(true)
	m.resolver.EXPECT().
		Add(gomock.Any(), gomock.Any(), []string{"qmath"}, domain.PreserveAll).
		DoAndReturn(func(_ context.Context, env *domain.Environment, names []string, _ domain.PreservationTier) error {
			env.Deps["qmath"] = domain.AnyVersion
			env.Resolved["qmath"] = domain.LockEntry{Version: "1.2.3", Direct: true}
			return nil
		})
	m.resolver.EXPECT().Instantiate(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().Save(gomock.Any()).DoAndReturn(func(env *domain.Environment) error {
		require.Equal(t, "/state/envs/analysis-abc", env.Dir)
		require.True(t, env.Provisioned)
		return nil
	})

	result, err := a.Sync(context.Background(), "analysis.nb")
	require.NoError(t, err)
	require.True(t, result.DidWork)
	require.Contains(t, buf.String(), "synchronized at preserve-all, restart required")
}

func TestSync_UpToDate(t *testing.T) {
	a, m, buf := setupAppTest(t)

	env := domain.NewEnvironment()
	env.Dir = "/state/envs/analysis-abc"
	env.Provisioned = true
	env.Deps["qmath"] = domain.AnyVersion
	env.Resolved["qmath"] = domain.LockEntry{Version: "1.2.3", Direct: true}

	m.scanner.EXPECT().Scan(gomock.Any()).Return(scanResult([]string{"qmath"}, nil), nil)
	m.store.EXPECT().Load(gomock.Any()).Return(env, nil)
	m.store.EXPECT().Dir(gomock.Any()).Return(env.Dir)
	m.store.EXPECT().Save(env).Return(nil)

	result, err := a.Sync(context.Background(), "analysis.nb")
	require.NoError(t, err)
	require.False(t, result.DidWork)
	require.Contains(t, buf.String(), "up to date")
}

func TestSync_OptOutDestroysState(t *testing.T) {
	a, m, buf := setupAppTest(t)

	env := domain.NewEnvironment()
	env.Dir = "/state/envs/analysis-abc"
	env.Provisioned = true
	env.Deps["qmath"] = domain.AnyVersion
	env.Resolved["qmath"] = domain.LockEntry{Version: "1.2.3", Direct: true}

	m.scanner.EXPECT().Scan(gomock.Any()).
		Return(scanResult([]string{"qmath"}, []string{"pkg.activate"}), nil)
	m.store.EXPECT().Load(gomock.Any()).Return(env, nil)
	m.store.EXPECT().Dir(gomock.Any()).Return(env.Dir)
	m.registry.EXPECT().IsStdlib("qmath").Return(false)
	m.store.EXPECT().Remove(gomock.Any()).Return(nil)

	result, err := a.Sync(context.Background(), "analysis.nb")
	require.NoError(t, err)
	require.True(t, result.DidWork)
	require.True(t, result.RestartRequired)
	require.Contains(t, buf.String(), "restart required")
}

func TestSync_ScanErrorPropagates(t *testing.T) {
	a, m, _ := setupAppTest(t)

	m.scanner.EXPECT().Scan(gomock.Any()).Return(ports.ScanResult{}, errors.New("unreadable"))

	_, err := a.Sync(context.Background(), "analysis.nb")
	require.Error(t, err)
}

func TestSync_EngineErrorWrapped(t *testing.T) {
	a, m, _ := setupAppTest(t)

	env := domain.NewEnvironment()
	env.Dir = "/state/envs/analysis-abc"
	env.Provisioned = true

	m.scanner.EXPECT().Scan(gomock.Any()).Return(scanResult([]string{"plots"}, nil), nil)
	m.store.EXPECT().Load(gomock.Any()).Return(env, nil)
	m.store.EXPECT().Dir(gomock.Any()).Return(env.Dir)
	m.registry.EXPECT().Exists("plots").Return(true)
	m.resolver.EXPECT().
		Add(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("no satisfying version")).
		Times(len(domain.Tiers))

	_, err := a.Sync(context.Background(), "analysis.nb")
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrSyncFailed))
	require.True(t, errors.Is(err, domain.ErrResolverExhausted))
}

func TestStatus_Unmanaged(t *testing.T) {
	a, m, buf := setupAppTest(t)

	m.scanner.EXPECT().Scan(gomock.Any()).
		Return(scanResult([]string{"qmath"}, []string{"pkg.add"}), nil)
	m.store.EXPECT().Load(gomock.Any()).Return(nil, nil)

	require.NoError(t, a.Status(context.Background(), "analysis.nb"))
	require.Contains(t, buf.String(), "unmanaged")
}

func TestStatus_NoEnvironmentYet(t *testing.T) {
	a, m, buf := setupAppTest(t)

	m.scanner.EXPECT().Scan(gomock.Any()).Return(scanResult([]string{"qmath", "plots"}, nil), nil)
	m.store.EXPECT().Load(gomock.Any()).Return(nil, nil)

	require.NoError(t, a.Status(context.Background(), "analysis.nb"))
	require.Contains(t, buf.String(), "no environment yet")
	require.Contains(t, buf.String(), "2 imports pending")
}

func TestStatus_ShowsPackagesAndPendingDrift(t *testing.T) {
	a, m, buf := setupAppTest(t)

	env := domain.NewEnvironment()
	env.Deps["qmath"] = domain.AnyVersion
	env.Deps["oldpkg"] = domain.AnyVersion
	env.Deps["linalg"] = domain.AnyVersion
	env.Resolved["qmath"] = domain.LockEntry{Version: "1.2.3", Direct: true}
	env.Resolved["linalg"] = domain.LockEntry{Stdlib: true, Direct: true}

	m.scanner.EXPECT().Scan(gomock.Any()).
		Return(scanResult([]string{"qmath", "linalg", "plots"}, nil), nil)
	m.store.EXPECT().Load(gomock.Any()).Return(env, nil)
	m.registry.EXPECT().Exists("plots").Return(true)

	require.NoError(t, a.Status(context.Background(), "analysis.nb"))
	out := buf.String()
	require.Contains(t, out, "qmath 1.2.3")
	require.Contains(t, out, "linalg")
	require.Contains(t, out, "stdlib")
	require.Contains(t, out, "oldpkg")
	require.Contains(t, out, "unresolved")
	require.Contains(t, out, "+ plots")
	require.Contains(t, out, "- oldpkg")
}

func TestSearch(t *testing.T) {
	a, m, buf := setupAppTest(t)

	m.registry.EXPECT().Complete("plot").Return([]string{"plotly", "plots"})

	require.NoError(t, a.Search(context.Background(), "plot"))
	require.Equal(t, "plotly\nplots\n", buf.String())
}

func TestClean(t *testing.T) {
	a, m, buf := setupAppTest(t)

	m.store.EXPECT().Remove(gomock.Any()).Return(nil)

	require.NoError(t, a.Clean(context.Background(), "analysis.nb"))
	require.Contains(t, buf.String(), "cleaned analysis.nb")
}

func TestCompletePackages(t *testing.T) {
	a, m, _ := setupAppTest(t)

	m.registry.EXPECT().Complete("q").Return([]string{"qmath"})
	require.Equal(t, []string{"qmath"}, a.CompletePackages("q"))
}

// stubWatcher is a ports.Watcher whose event stream is pre-recorded.
type stubWatcher struct {
	events []ports.WatchEvent
}

func (w *stubWatcher) Start(context.Context, []string) error { return nil }
func (w *stubWatcher) Stop() error                           { return nil }

func (w *stubWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for _, e := range w.events {
			if !yield(e) {
				return
			}
		}
	}
}

func TestWatch_InitialPassThenDrain(t *testing.T) {
	a, m, buf := setupAppTest(t)

	env := domain.NewEnvironment()
	env.Dir = "/state/envs/analysis-abc"
	env.Provisioned = true
	env.Deps["qmath"] = domain.AnyVersion
	env.Resolved["qmath"] = domain.LockEntry{Version: "1.2.3", Direct: true}

	m.scanner.EXPECT().Scan(gomock.Any()).Return(scanResult([]string{"qmath"}, nil), nil)
	m.store.EXPECT().Load(gomock.Any()).Return(env, nil)
	m.store.EXPECT().Dir(gomock.Any()).Return(env.Dir)
	m.store.EXPECT().Save(env).Return(nil)

	// The stream ends immediately, so Watch returns after the initial pass.
	err := a.Watch(context.Background(), []string{"analysis.nb"}, &stubWatcher{})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "up to date")
}

func TestWatch_InitialPassErrorPropagates(t *testing.T) {
	a, m, _ := setupAppTest(t)

	m.scanner.EXPECT().Scan(gomock.Any()).Return(ports.ScanResult{}, errors.New("unreadable"))

	err := a.Watch(context.Background(), []string{"analysis.nb"}, &stubWatcher{})
	require.Error(t, err)
}

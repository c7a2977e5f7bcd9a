package codeloader_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	addonfs "go.trai.ch/addon/internal/adapters/fs"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/addon/internal/core/ports/mocks"
	"go.trai.ch/addon/internal/engine/codeloader"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type mountFunc func(ctx context.Context, lc *domain.LoadContext) error

func (f mountFunc) Mount(ctx context.Context, lc *domain.LoadContext) error { return f(ctx, lc) }

type fixture struct {
	modules *mocks.MockModuleLoader
	logger  *mocks.MockLogger
	mounts  int
	loader  *codeloader.Loader
}

func newFixture(t *testing.T, files fstest.MapFS) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		modules: mocks.NewMockModuleLoader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.modules.EXPECT().Supports(gomock.Any()).DoAndReturn(func(path string) bool {
		ext := filepath.Ext(path)
		return ext == ".js" || ext == ".so"
	}).AnyTimes()

	sched := mocks.NewMockScheduler(ctrl)
	sched.EXPECT().Yield(gomock.Any()).Return(nil).AnyTimes()

	mounter := mountFunc(func(_ context.Context, lc *domain.LoadContext) error {
		f.mounts++
		lc.AddResource(domain.ResourceHandle{VirtualPath: "Addons/" + lc.Name() + "/icon"})
		return nil
	})

	f.loader = codeloader.NewLoader(addonfs.NewMapFSAdapter("/addons", files), f.modules, mounter, sched, f.logger)
	return f
}

func module(path string, kind domain.ModuleKind) *domain.Module {
	return &domain.Module{Name: domain.Stem(path), Path: path, Kind: kind}
}

func newContext(m *domain.Manifest, opts ...domain.LoadOption) *domain.LoadContext {
	lc := domain.NewLoadContext("/addons/"+m.Name, opts...)
	lc.ApplyManifest(m)
	return lc
}

func TestLoader_MainModuleFirstThenAuxiliary(t *testing.T) {
	f := newFixture(t, fstest.MapFS{
		"Foo/managed/FooMain.js": {Data: []byte("main")},
		"Foo/managed/helper.js":  {Data: []byte("aux")},
		"Foo/managed/native.so":  {Data: []byte("aux")},
		"Foo/managed/notes.txt":  {Data: []byte("ignored")},
	})

	gomock.InOrder(
		f.modules.EXPECT().LoadModule(gomock.Any(), "/addons/Foo/managed/FooMain.js", gomock.Any()).
			Return(module("/addons/Foo/managed/FooMain.js", domain.ModuleKindScript), nil),
		f.modules.EXPECT().LoadModule(gomock.Any(), "/addons/Foo/managed/helper.js", gomock.Any()).
			Return(module("/addons/Foo/managed/helper.js", domain.ModuleKindScript), nil),
		f.modules.EXPECT().LoadModule(gomock.Any(), "/addons/Foo/managed/native.so", gomock.Any()).
			Return(module("/addons/Foo/managed/native.so", domain.ModuleKindShared), nil),
	)

	var data *domain.LoadData
	lc := newContext(&domain.Manifest{Name: "Foo", MainModule: "foomain"},
		domain.WithOnComplete(func(d domain.LoadData) { data = &d }))

	require.NoError(t, f.loader.Load(context.Background(), lc))

	require.NotNil(t, data, "the default entry point completes the load")
	require.Len(t, data.Modules, 3)
	assert.Equal(t, "FooMain", data.Modules[0].Name)
	assert.True(t, data.Modules[0].Main)
	assert.Equal(t, []string{"helper", "native"}, []string{data.Modules[1].Name, data.Modules[2].Name})
	assert.Equal(t, 1, f.mounts)
	assert.Len(t, data.Resources, 1)
}

func TestLoader_NoManagedDirectory(t *testing.T) {
	f := newFixture(t, fstest.MapFS{"Foo/manifest.yaml": {Data: []byte("name: Foo")}})

	lc := newContext(&domain.Manifest{Name: "Foo"})
	require.NoError(t, f.loader.Load(context.Background(), lc))
	assert.True(t, lc.Completed())
	assert.Empty(t, lc.Build().Modules)
}

func TestLoader_ModuleEntryPointWins(t *testing.T) {
	f := newFixture(t, fstest.MapFS{
		"Foo/managed/a.js": {Data: []byte("a")},
		"Foo/managed/b.js": {Data: []byte("b")},
	})
	ctrl := gomock.NewController(t)
	custom := mocks.NewMockEntryPoint(ctrl)

	f.modules.EXPECT().LoadModule(gomock.Any(), "/addons/Foo/managed/a.js", gomock.Any()).
		DoAndReturn(func(_ context.Context, path string, reg ports.EntryPointRegistrar) (*domain.Module, error) {
			reg.RegisterEntryPoint("Other", func(ports.AddonHost) ports.EntryPoint {
				t.Fatal("the entry point named after the package is preferred")
				return nil
			})
			return module(path, domain.ModuleKindScript), nil
		})
	f.modules.EXPECT().LoadModule(gomock.Any(), "/addons/Foo/managed/b.js", gomock.Any()).
		DoAndReturn(func(_ context.Context, path string, reg ports.EntryPointRegistrar) (*domain.Module, error) {
			reg.RegisterEntryPoint("Foo", func(ports.AddonHost) ports.EntryPoint { return custom })
			return module(path, domain.ModuleKindScript), nil
		})

	lc := newContext(&domain.Manifest{Name: "Foo"})
	custom.EXPECT().LoadAddon(gomock.Any(), lc).Return(nil)

	require.NoError(t, f.loader.Load(context.Background(), lc))
	assert.Zero(t, f.mounts)
}

func TestLoader_StaticEntryPoint(t *testing.T) {
	f := newFixture(t, fstest.MapFS{})

	var hostSeen ports.AddonHost
	codeloader.Register("Static", func(host ports.AddonHost) ports.EntryPoint {
		hostSeen = host
		return host.Default()
	})
	t.Cleanup(func() { codeloader.Unregister("Static") })

	lc := newContext(&domain.Manifest{Name: "Static"})
	require.NoError(t, f.loader.Load(context.Background(), lc))

	require.NotNil(t, hostSeen)
	assert.True(t, lc.Completed())
	modules := lc.Build().Modules
	require.Len(t, modules, 1)
	assert.Equal(t, domain.ModuleKindStatic, modules[0].Kind)
}

type composingEntryPoint struct {
	host ports.AddonHost
	path string
}

func (e *composingEntryPoint) LoadAddon(ctx context.Context, lc *domain.LoadContext) error {
	if err := e.host.LoadModule(ctx, lc, e.path); err != nil {
		return err
	}
	return e.host.Default().LoadAddon(ctx, lc)
}

func TestLoader_EntryPointComposesHost(t *testing.T) {
	f := newFixture(t, fstest.MapFS{})

	codeloader.Register("Comp", func(host ports.AddonHost) ports.EntryPoint {
		return &composingEntryPoint{host: host, path: "/opt/extra.js"}
	})
	t.Cleanup(func() { codeloader.Unregister("Comp") })

	f.modules.EXPECT().LoadModule(gomock.Any(), "/opt/extra.js", gomock.Any()).
		Return(module("/opt/extra.js", domain.ModuleKindScript), nil)

	lc := newContext(&domain.Manifest{Name: "Comp"})
	require.NoError(t, f.loader.Load(context.Background(), lc))

	assert.True(t, lc.Completed())
	assert.Equal(t, 1, f.mounts)
	assert.Len(t, lc.Build().Modules, 2)
}

func TestLoader_ModuleFailurePolicy(t *testing.T) {
	files := fstest.MapFS{
		"Foo/managed/bad.js":  {Data: []byte("bad")},
		"Foo/managed/good.js": {Data: []byte("good")},
	}
	boom := zerr.With(zerr.Wrap(errors.New("syntax error"), domain.ErrModuleLoadFailure.Error()), "module", "bad.js")

	t.Run("strict aborts", func(t *testing.T) {
		f := newFixture(t, files)
		f.modules.EXPECT().LoadModule(gomock.Any(), "/addons/Foo/managed/bad.js", gomock.Any()).Return(nil, boom)

		lc := newContext(&domain.Manifest{Name: "Foo"})
		err := f.loader.Load(context.Background(), lc)
		require.Error(t, err)
		assert.Equal(t, "ModuleLoadFailure", domain.KindOf(err))
		assert.False(t, lc.Completed())
		assert.Zero(t, f.mounts)
	})

	t.Run("relaxed skips", func(t *testing.T) {
		f := newFixture(t, files)
		f.modules.EXPECT().LoadModule(gomock.Any(), "/addons/Foo/managed/bad.js", gomock.Any()).Return(nil, boom)
		f.modules.EXPECT().LoadModule(gomock.Any(), "/addons/Foo/managed/good.js", gomock.Any()).
			Return(module("/addons/Foo/managed/good.js", domain.ModuleKindScript), nil)
		f.logger.EXPECT().Error(gomock.Any()).Times(1)

		lc := newContext(&domain.Manifest{Name: "Foo", IgnoreSingleFileErrors: true})
		require.NoError(t, f.loader.Load(context.Background(), lc))
		assert.True(t, lc.Completed())
		assert.Len(t, lc.Build().Modules, 1)
	})
}

func TestLoader_MissingMainModule(t *testing.T) {
	f := newFixture(t, fstest.MapFS{"Foo/managed/other.js": {Data: []byte("x")}})

	lc := newContext(&domain.Manifest{Name: "Foo", MainModule: "Main"})
	err := f.loader.Load(context.Background(), lc)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrModuleLoadFailure.Error())
}

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/addon/cmd/addon/commands"
	"go.trai.ch/addon/internal/app"
	"go.trai.ch/addon/internal/build"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/engine/pipeline"
)

type mockApp struct {
	configureFunc func(format string, verbose bool)
	loadFunc      func(ctx context.Context, opts app.LoadOptions) (*app.LoadResult, error)
	listFunc      func(ctx context.Context, opts app.ListOptions) (*app.ListResult, error)
	watchFunc     func(ctx context.Context, opts app.WatchOptions) error
	newFunc       func(ctx context.Context, opts app.NewOptions) (string, error)
	packFunc      func(ctx context.Context, opts app.PackOptions) ([]app.PackedLayer, error)
}

func (m *mockApp) ConfigureLogging(format string, verbose bool) {
	if m.configureFunc != nil {
		m.configureFunc(format, verbose)
	}
}

func (m *mockApp) Load(ctx context.Context, opts app.LoadOptions) (*app.LoadResult, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, opts)
	}
	return &app.LoadResult{}, nil
}

func (m *mockApp) List(ctx context.Context, opts app.ListOptions) (*app.ListResult, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return &app.ListResult{}, nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) NewPackage(ctx context.Context, opts app.NewOptions) (string, error) {
	if m.newFunc != nil {
		return m.newFunc(ctx, opts)
	}
	return "", nil
}

func (m *mockApp) Pack(ctx context.Context, opts app.PackOptions) ([]app.PackedLayer, error) {
	if m.packFunc != nil {
		return m.packFunc(ctx, opts)
	}
	return nil, nil
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)

	err := cli.Execute(context.Background())
	return buf.String(), err
}

func loadResult() *app.LoadResult {
	return &app.LoadResult{
		Summary: pipeline.Summary{
			State:   pipeline.StateDone,
			Loaded:  []string{"Core", "Extras"},
			Failed:  []pipeline.Failure{{Name: "Broken", Kind: "ResourceFileLoadFailure", Err: domain.ErrResourceFileLoadFailure}},
			Skipped: []string{"Ghost"},
		},
		Addons: []domain.LoadedAddon{
			{
				Name: "Core",
				Data: domain.LoadData{
					Modules: make([]*domain.Module, 2),
					Resources: map[string]domain.ResourceHandle{
						"Addons/Core/a": {}, "Addons/Core/b": {}, "Addons/Core/c": {}, "d": {}, "e": {},
					},
				},
			},
			{
				Name: "Extras",
				Data: domain.LoadData{Resources: map[string]domain.ResourceHandle{"Addons/Extras/x": {}}},
			},
		},
		HostResources: 3,
	}
}

func TestCommands_Load(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.LoadOptions
		var format string
		var verbose bool

		mock := &mockApp{
			configureFunc: func(f string, v bool) {
				format, verbose = f, v
			},
			loadFunc: func(_ context.Context, opts app.LoadOptions) (*app.LoadResult, error) {
				capturedOpts = opts
				return &app.LoadResult{}, nil
			},
		}

		_, err := execute(t, mock, "load", "--no-host", "-C", "/work", "--log-format", "json", "-v")
		require.NoError(t, err)
		assert.True(t, capturedOpts.NoHost)
		assert.Equal(t, "/work", capturedOpts.Dir)
		assert.Equal(t, "json", format)
		assert.True(t, verbose)
	})

	t.Run("reports packages", func(t *testing.T) {
		mock := &mockApp{
			loadFunc: func(context.Context, app.LoadOptions) (*app.LoadResult, error) {
				return loadResult(), nil
			},
		}

		out, err := execute(t, mock, "load")
		require.ErrorIs(t, err, domain.ErrAddonsFailed)

		g := goldie.New(t)
		g.Assert(t, "load", []byte(out))
	})

	t.Run("returns error on load failure", func(t *testing.T) {
		mock := &mockApp{
			loadFunc: func(context.Context, app.LoadOptions) (*app.LoadResult, error) {
				return nil, errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "load")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "load", "Foo")
		require.Error(t, err)
	})
}

func TestCommands_List(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("prints packages in load order", func(t *testing.T) {
		mock := &mockApp{
			listFunc: func(context.Context, app.ListOptions) (*app.ListResult, error) {
				return &app.ListResult{
					Enabled: true,
					Roots:   []string{"/addons/base", "/addons/user"},
					Packages: []app.PackageStatus{
						{Name: "Core", Version: "1.2.0", Path: "/addons/base/Core", Position: 0},
						{Name: "Extras", Version: "0.1.0", Path: "/addons/user/Extras", Position: 1},
						{Name: "Sandbox", Path: "/addons/user/Sandbox", Position: -1},
						{Name: "Ghost", Position: -1, Missing: true},
					},
				}, nil
			},
		}

		out, err := execute(t, mock, "list")
		require.NoError(t, err)

		g := goldie.New(t)
		g.Assert(t, "list", []byte(out))
	})

	t.Run("disabled", func(t *testing.T) {
		mock := &mockApp{
			listFunc: func(context.Context, app.ListOptions) (*app.ListResult, error) {
				return &app.ListResult{Enabled: false, Roots: []string{"/addons"}}, nil
			},
		}

		out, err := execute(t, mock, "ls")
		require.NoError(t, err)

		g := goldie.New(t)
		g.Assert(t, "list_disabled", []byte(out))
	})
}

func TestCommands_Watch(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	mock := &mockApp{
		watchFunc: func(_ context.Context, opts app.WatchOptions) error {
			require.NotNil(t, opts.OnCycle)
			opts.OnCycle(&app.LoadResult{Summary: pipeline.Summary{State: pipeline.StateDone}})
			opts.OnCycle(&app.LoadResult{
				Summary: pipeline.Summary{State: pipeline.StateDone, Loaded: []string{"Late"}},
				Addons:  []domain.LoadedAddon{{Name: "Late"}},
			})
			return nil
		},
	}

	out, err := execute(t, mock, "watch")
	require.NoError(t, err)
	assert.Equal(t, "0 loaded, 0 failed, 0 skipped\n✓ Late  0 modules, 0 resources\n1 loaded, 0 failed, 0 skipped\n", out)
}

func TestCommands_New(t *testing.T) {
	var captured app.NewOptions
	mock := &mockApp{
		newFunc: func(_ context.Context, opts app.NewOptions) (string, error) {
			captured = opts
			return "/addons/Foo", nil
		},
	}

	out, err := execute(t, mock, "new", "Foo", "--script", "--root", "/addons")
	require.NoError(t, err)
	assert.Equal(t, app.NewOptions{Name: "Foo", Root: "/addons", Script: true}, captured)
	assert.Equal(t, "created /addons/Foo\n", out)

	t.Run("requires a name", func(t *testing.T) {
		_, err := execute(t, mock, "new")
		require.Error(t, err)
	})
}

func TestCommands_Pack(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("prints archives", func(t *testing.T) {
		mock := &mockApp{
			packFunc: func(_ context.Context, opts app.PackOptions) ([]app.PackedLayer, error) {
				assert.Equal(t, "Core", opts.Name)
				return []app.PackedLayer{
					{Layer: "elocal", Archive: "/addons/base/Core/elocal.assetbundle", Files: 4},
					{Layer: "expand", Archive: "/addons/base/Core/expand.assetbundle", Files: 2},
				}, nil
			},
		}

		out, err := execute(t, mock, "pack", "Core")
		require.NoError(t, err)

		g := goldie.New(t)
		g.Assert(t, "pack", []byte(out))
	})

	t.Run("nothing to pack", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "pack", "Core")
		require.NoError(t, err)
		assert.Equal(t, "nothing to pack in Core\n", out)
	})

	t.Run("unknown package", func(t *testing.T) {
		mock := &mockApp{
			packFunc: func(context.Context, app.PackOptions) ([]app.PackedLayer, error) {
				return nil, domain.ErrPackageNotFound
			},
		}

		_, err := execute(t, mock, "pack", "Nope")
		require.ErrorIs(t, err, domain.ErrPackageNotFound)
	})
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)

	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, "addon version")
}

func TestCommands_VersionFlag(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Equal(t, "addon version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", out)
}

func TestCommands_VerboseShorthand(t *testing.T) {
	var verbose, listed bool
	mock := &mockApp{
		configureFunc: func(_ string, v bool) {
			verbose = v
		},
		listFunc: func(context.Context, app.ListOptions) (*app.ListResult, error) {
			listed = true
			return &app.ListResult{}, nil
		},
	}

	out, err := execute(t, mock, "-v", "list")
	require.NoError(t, err)
	assert.True(t, verbose)
	assert.True(t, listed)
	assert.NotContains(t, out, "addon version")
}

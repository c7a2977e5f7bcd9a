package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLoadContext_Defaults(t *testing.T) {
	lc := domain.NewLoadContext("/addons/foo")

	assert.True(t, lc.Strict())
	assert.Empty(t, lc.MountPath)
	assert.Equal(t, "/addons/foo", lc.Name())

	lc.ApplyManifest(&domain.Manifest{Name: "Foo"})
	assert.Equal(t, "Addons/Foo", lc.MountPath)
	assert.True(t, lc.Strict())
	assert.Equal(t, "Foo", lc.Name())
}

func TestLoadContext_ManifestOnlyRelaxes(t *testing.T) {
	relaxed := domain.NewLoadContext("/a", domain.WithStrict(true))
	relaxed.ApplyManifest(&domain.Manifest{Name: "A", IgnoreSingleFileErrors: true})
	assert.False(t, relaxed.Strict())

	lenient := domain.NewLoadContext("/b", domain.WithStrict(false))
	lenient.ApplyManifest(&domain.Manifest{Name: "B"})
	assert.False(t, lenient.Strict(), "manifest must not tighten the policy")
}

func TestLoadContext_MountOverride(t *testing.T) {
	lc := domain.NewLoadContext("/host", domain.WithMountPath(""), domain.WithPriority(-1))
	lc.ApplyManifest(&domain.Manifest{Name: "Host"})

	assert.Empty(t, lc.MountPath)
	assert.Equal(t, -1, lc.Priority)
}

func TestLoadContext_BuildIsSnapshot(t *testing.T) {
	lc := domain.NewLoadContext("/a")
	aux := &domain.Module{Name: "aux"}
	lc.AddModule(aux)
	lc.SetMainModule(&domain.Module{Name: "main"})
	lc.AddResource(domain.ResourceHandle{VirtualPath: "ui/icon", ID: "1"})
	lc.AddScenes("scenes/intro.scene")

	data := lc.Build()
	require.Len(t, data.Modules, 2)
	assert.Equal(t, "main", data.Modules[0].Name)
	assert.True(t, data.Modules[0].Main)
	assert.Equal(t, "aux", data.Modules[1].Name)

	lc.AddResource(domain.ResourceHandle{VirtualPath: "ui/other", ID: "2"})
	lc.AddScenes("scenes/outro.scene")
	lc.MainModule().Name = "renamed"
	lc.SetMainModule(aux)

	assert.Equal(t, "main", data.Modules[0].Name)
	assert.False(t, data.Modules[1].Main, "promoting a module later does not reach the snapshot")
	assert.Len(t, data.Resources, 1)
	assert.Len(t, data.ScenePaths, 1)
	assert.Equal(t, 2, lc.ResourceCount())
}

func TestLoadContext_CompleteOnce(t *testing.T) {
	calls := 0
	lc := domain.NewLoadContext("/a", domain.WithOnComplete(func(domain.LoadData) { calls++ }))

	assert.False(t, lc.Completed())
	lc.Complete()
	lc.Complete()

	assert.True(t, lc.Completed())
	assert.Equal(t, 1, calls)
}

func TestVirtualPath(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		rel    string
		want   string
	}{
		{"replace layer", "Addons/Foo", "ui/icon.png", "Addons/Foo/ui/icon"},
		{"append layer", "", "ui/icon.png", "ui/icon"},
		{"backslashes", "Addons/Foo", `ui\menus\main.json`, "Addons/Foo/ui/menus/main"},
		{"leading separator", "", "/sounds/hit.ogg", "sounds/hit"},
		{"no extension", "Addons/Foo", "README", "Addons/Foo/README"},
		{"only last extension", "", "data/table.en.csv", "data/table.en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.VirtualPath(tt.prefix, tt.rel))
		})
	}
}

func TestArchiveLeaf(t *testing.T) {
	assert.Equal(t, "icon", domain.ArchiveLeaf("assets/ui/icon.png", false))
	assert.Equal(t, "ui/icon", domain.ArchiveLeaf("assets/ui/icon.png", true))
	assert.Equal(t, "ui/icon", domain.ArchiveLeaf("Assets/ui/icon.png", true))
	assert.Equal(t, "other/icon", domain.ArchiveLeaf("other/icon.png", true))
}

func TestIsScene(t *testing.T) {
	assert.True(t, domain.IsScene("assets/scenes/Intro.scene"))
	assert.True(t, domain.IsScene("INTRO.SCENE"))
	assert.False(t, domain.IsScene("assets/ui/icon.png"))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "Main", domain.Stem("/addons/foo/managed/Main.js"))
	assert.Equal(t, "lib", domain.Stem(`managed\lib.so`))
}

func TestPackageIndex_Fingerprint(t *testing.T) {
	a := domain.PackageIndex{
		"A": {Name: "A", Path: "/r1/A"},
		"B": {Name: "B", Path: "/r1/B"},
	}
	b := domain.PackageIndex{
		"B": {Name: "B", Path: "/r1/B"},
		"A": {Name: "A", Path: "/r1/A"},
	}
	c := domain.PackageIndex{
		"A": {Name: "A", Path: "/r2/A"},
		"B": {Name: "B", Path: "/r1/B"},
	}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Equal(t, []string{"A", "B"}, a.Names())
}

func TestManifest_Validate(t *testing.T) {
	require.NoError(t, (&domain.Manifest{Name: "Foo"}).Validate())

	err := (&domain.Manifest{Name: "  "}).Validate()
	require.Error(t, err)
	assert.Equal(t, "ManifestInvalid", domain.KindOf(err))

	for _, name := range []string{"..", ".", "Foo/Bar", `Foo\Bar`, "My Addon"} {
		err := (&domain.Manifest{Name: name}).Validate()
		require.Error(t, err, name)
		assert.Equal(t, "ManifestInvalid", domain.KindOf(err), name)
	}
}

func TestValidatePackageName(t *testing.T) {
	require.NoError(t, domain.ValidatePackageName("my-addon_1.2"))
	require.Error(t, domain.ValidatePackageName("bad/name"))
	require.Error(t, domain.ValidatePackageName(".."))
	require.Error(t, domain.ValidatePackageName(""))
}

func TestKindOf(t *testing.T) {
	cause := errors.New("unexpected EOF")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"sentinel", domain.ErrManifestNotFound, "ManifestNotFound"},
		{"with metadata", zerr.With(domain.ErrModuleLoadFailure, "module", "x.js"), "ModuleLoadFailure"},
		{
			"wrapped cause",
			zerr.With(zerr.Wrap(cause, domain.ErrArchiveLoadFailure.Error()), "archive", "elocal.assetbundle"),
			"ArchiveLoadFailure",
		},
		{"std wrapped", fmt.Errorf("mount: %w", domain.ErrResourceFileLoadFailure), "ResourceFileLoadFailure"},
		{"unknown", cause, "Unknown"},
		{"nil", nil, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.KindOf(tt.err))
		})
	}
}

package manifest_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	addonfs "go.trai.ch/addon/internal/adapters/fs"
	"go.trai.ch/addon/internal/adapters/manifest"
	"go.trai.ch/addon/internal/core/domain"
)

const fooYAML = `
name: Foo
version: 1.2.0
author: Jane
title: Foo Addon
description: Adds foo.
mainModule: FooMain
useArchivePaths: true
ignoreSingleFileErrors: true
homepage: https://example.org/foo
settings:
  volume: 3
  tags: [a, b]
`

func TestReader_Read_YAML(t *testing.T) {
	reader := manifest.NewReader(addonfs.NewMapFSAdapter("/addons", fstest.MapFS{
		"Foo/manifest.yaml": {Data: []byte(fooYAML)},
	}))

	m, err := reader.Read("/addons/Foo")
	require.NoError(t, err)

	assert.Equal(t, "Foo", m.Name)
	assert.Equal(t, "1.2.0", m.Version)
	assert.Equal(t, "Jane", m.Author)
	assert.Equal(t, "Foo Addon", m.Title)
	assert.Equal(t, "Adds foo.", m.Description)
	assert.Equal(t, "FooMain", m.MainModule)
	assert.True(t, m.UseArchivePaths)
	assert.True(t, m.IgnoreSingleFileErrors)
	assert.Equal(t, map[string]any{
		"homepage": "https://example.org/foo",
		"settings": map[string]any{"volume": 3, "tags": []any{"a", "b"}},
	}, m.Extensions)
}

func TestReader_Read_JSON(t *testing.T) {
	reader := manifest.NewReader(addonfs.NewMapFSAdapter("/addons", fstest.MapFS{
		"Bar/manifest.json": {Data: []byte(`{"name": "Bar", "mainModule": "bar", "license": "MIT"}`)},
	}))

	m, err := reader.Read("/addons/Bar")
	require.NoError(t, err)

	assert.Equal(t, "Bar", m.Name)
	assert.Equal(t, "bar", m.MainModule)
	assert.False(t, m.IgnoreSingleFileErrors)
	assert.Equal(t, map[string]any{"license": "MIT"}, m.Extensions)
}

func TestReader_Read_TOML(t *testing.T) {
	reader := manifest.NewReader(addonfs.NewMapFSAdapter("/addons", fstest.MapFS{
		"Baz/manifest.toml": {Data: []byte(`
name = "Baz"
version = "0.1.0"
ignoreSingleFileErrors = true
license = "MIT"
`)},
	}))

	m, err := reader.Read("/addons/Baz")
	require.NoError(t, err)

	assert.Equal(t, "Baz", m.Name)
	assert.Equal(t, "0.1.0", m.Version)
	assert.True(t, m.IgnoreSingleFileErrors)
	assert.Equal(t, map[string]any{"license": "MIT"}, m.Extensions)
}

func TestReader_Read_PrefersYAML(t *testing.T) {
	reader := manifest.NewReader(addonfs.NewMapFSAdapter("/addons", fstest.MapFS{
		"Foo/manifest.yaml": {Data: []byte("name: FromYAML")},
		"Foo/manifest.toml": {Data: []byte(`name = "FromTOML"`)},
	}))

	m, err := reader.Read("/addons/Foo")
	require.NoError(t, err)
	assert.Equal(t, "FromYAML", m.Name)
}

func TestReader_Read_Errors(t *testing.T) {
	fsys := addonfs.NewMapFSAdapter("/addons", fstest.MapFS{
		"Empty/readme.txt":      {Data: []byte("no manifest here")},
		"Blank/manifest.yaml":   {Data: []byte("name: \"  \"\n")},
		"Broken/manifest.yaml":  {Data: []byte("name: [unterminated\n")},
		"BadToml/manifest.toml": {Data: []byte("name = \n")},
	})
	reader := manifest.NewReader(fsys)

	tests := []struct {
		dir      string
		sentinel error
		kind     string
	}{
		{"/addons/Empty", domain.ErrManifestNotFound, "ManifestNotFound"},
		{"/addons/Missing", domain.ErrManifestNotFound, "ManifestNotFound"},
		{"/addons/Blank", domain.ErrManifestInvalid, "ManifestInvalid"},
		{"/addons/Broken", domain.ErrManifestParseFailed, "ManifestParseFailed"},
		{"/addons/BadToml", domain.ErrManifestParseFailed, "ManifestParseFailed"},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			m, err := reader.Read(tt.dir)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.ErrorContains(t, err, tt.sentinel.Error())
			assert.Equal(t, tt.kind, domain.KindOf(err))
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original, err := manifest.Parse(domain.ManifestFileName, []byte(fooYAML))
	require.NoError(t, err)

	require.NoError(t, manifest.Write(dir, original))

	got, err := manifest.NewReader(addonfs.NewOSFS()).Read(dir)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestWrite_RejectsBlankName(t *testing.T) {
	err := manifest.Write(t.TempDir(), &domain.Manifest{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrManifestInvalid.Error())
}

func TestMarshal_OmitsEmptyFields(t *testing.T) {
	data, err := manifest.Marshal(&domain.Manifest{Name: "Foo"})
	require.NoError(t, err)
	assert.Equal(t, "name: Foo\n", string(data))
}

package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/addon/internal/adapters/logger"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/zerr"
)

// packageFailure builds an error the way the load orchestrator reports a failed package.
func packageFailure(cause error, sentinel error, name string, kv ...any) error {
	err := zerr.Wrap(cause, sentinel.Error())
	for i := 0; i+1 < len(kv); i += 2 {
		err = zerr.With(err, kv[i].(string), kv[i+1])
	}
	err = zerr.With(err, "addon", name)
	return zerr.With(err, "kind", domain.KindOf(err))
}

func TestCollectErrorEntries_PackageFailure(t *testing.T) {
	err := packageFailure(
		errors.New("yaml: line 1: did not find expected node content"),
		domain.ErrResourceFileLoadFailure, "Bar",
		"file", "/addons/Bar/elocal/data/broken.yml",
	)

	entries := logger.CollectErrorEntriesExported(err)
	require.Len(t, entries, 2)

	assert.Equal(t, "failed to load resource file", entries[0].Message)
	assert.Equal(t, map[string]any{
		"addon": "Bar",
		"file":  "/addons/Bar/elocal/data/broken.yml",
		"kind":  "ResourceFileLoadFailure",
	}, entries[0].Metadata)

	assert.Equal(t, "yaml: line 1: did not find expected node content", entries[1].Message)
	assert.Nil(t, entries[1].Metadata, "plain causes carry no metadata")
}

func TestCollectErrorEntries_StopsAtForeignWrapper(t *testing.T) {
	inner := zerr.With(domain.ErrArchiveEntryNotFound, "entry", "assets/ui/icon.png")
	err := fmt.Errorf("mount Foo: %w", inner)

	entries := logger.CollectErrorEntriesExported(err)
	require.Len(t, entries, 1)
	assert.Equal(t, "mount Foo: archive entry not found", entries[0].Message)
	assert.Nil(t, entries[0].Metadata)
}

func TestCollectErrorEntries_Nil(t *testing.T) {
	assert.Empty(t, logger.CollectErrorEntriesExported(nil))
}

func TestFormatErrorEntries_PackageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "corrupt resource file",
			err: packageFailure(
				errors.New("yaml: line 1: did not find expected node content"),
				domain.ErrResourceFileLoadFailure, "Bar",
				"file", "/addons/Bar/elocal/data/broken.yml",
			),
			want: "Error: failed to load resource file\n" +
				"       addon: Bar\n" +
				"       file: /addons/Bar/elocal/data/broken.yml\n" +
				"       kind: ResourceFileLoadFailure\n" +
				"\n" +
				"  Caused by:\n" +
				"    → yaml: line 1: did not find expected node content",
		},
		{
			name: "script exception with stack",
			err: packageFailure(
				errors.New("TypeError: ctx.scenes is not a function\n\tat beforeLoad (Foo.js:3:5)"),
				domain.ErrEntryPointFailed, "Foo",
			),
			want: "Error: addon entry point failed\n" +
				"       addon: Foo\n" +
				"       kind: EntryPointFailed\n" +
				"\n" +
				"  Caused by:\n" +
				"    → TypeError: ctx.scenes is not a function\n" +
				"      \tat beforeLoad (Foo.js:3:5)",
		},
		{
			name: "contained panic",
			err:  zerr.With(zerr.With(domain.ErrPackagePanicked, "addon", "Foo"), "panic", "index out of range"),
			want: "Error: addon load panicked\n" +
				"       addon: Foo\n" +
				"       panic: index out of range",
		},
		{
			name: "archive failure below a wrapped load",
			err: zerr.Wrap(
				zerr.With(zerr.Wrap(errors.New("zip: not a valid zip file"), domain.ErrArchiveLoadFailure.Error()),
					"archive", "/addons/Foo/elocal.assetbundle"),
				"failed to load addon",
			),
			want: "Error: failed to load addon\n" +
				"\n" +
				"  Caused by:\n" +
				"    → failed to load packed archive\n" +
				"      archive: /addons/Foo/elocal.assetbundle\n" +
				"    → zip: not a valid zip file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logger.FormatErrorEntriesExported(logger.CollectErrorEntriesExported(tt.err))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatErrorEntries_Empty(t *testing.T) {
	assert.Empty(t, logger.FormatErrorEntriesExported(nil))
}

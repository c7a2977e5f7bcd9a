// Package archive loads packed asset archives: zip files whose entries may be
// stored, deflated or zstd compressed.
package archive

import (
	"io"
	"slices"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Archive = (*Archive)(nil)

// Archive is an opened asset archive.
type Archive struct {
	path    string
	rc      *zip.ReadCloser
	entries map[string]*zip.File
	scenes  []string
	assets  []string
}

// Open reads the archive directory of the file at path.
func Open(path string) (*Archive, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveLoadFailure.Error()), "archive", path)
	}
	rc.RegisterDecompressor(zstd.ZipMethodWinZip, zstd.ZipDecompressor())

	a := &Archive{
		path:    path,
		rc:      rc,
		entries: make(map[string]*zip.File, len(rc.File)),
	}
	for _, f := range rc.File {
		if f.FileInfo().IsDir() {
			continue
		}
		a.entries[f.Name] = f
		if domain.IsScene(f.Name) {
			a.scenes = append(a.scenes, f.Name)
		} else {
			a.assets = append(a.assets, f.Name)
		}
	}
	slices.Sort(a.scenes)
	slices.Sort(a.assets)

	return a, nil
}

// Path returns the archive location on disk.
func (a *Archive) Path() string { return a.path }

// ScenePaths returns the scene entry names in lexical order.
func (a *Archive) ScenePaths() []string { return slices.Clone(a.scenes) }

// AssetNames returns the non-scene entry names in lexical order.
func (a *Archive) AssetNames() []string { return slices.Clone(a.assets) }

// Open opens the named entry.
func (a *Archive) Open(name string) (io.ReadCloser, error) {
	f, ok := a.entries[name]
	if !ok {
		return nil, zerr.With(domain.ErrArchiveEntryNotFound, "entry", name)
	}
	r, err := f.Open()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveLoadFailure.Error()), "entry", name)
	}
	return r, nil
}

// Close releases the underlying file.
func (a *Archive) Close() error {
	return a.rc.Close()
}

// Package manifest reads and writes addon package descriptors.
package manifest

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestReader = (*Reader)(nil)

// knownKeys are the descriptor keys mapped onto domain.Manifest fields.
var knownKeys = []string{
	"name", "version", "author", "title", "description",
	"mainModule", "useArchivePaths", "ignoreSingleFileErrors",
}

// Reader implements ports.ManifestReader over a ports.FileSystem.
type Reader struct {
	fs ports.FileSystem
}

// NewReader creates a new Reader.
func NewReader(fsys ports.FileSystem) *Reader {
	return &Reader{fs: fsys}
}

// Read returns the manifest of the package rooted at dir.
// manifest.yaml is preferred over manifest.json, which is preferred over manifest.toml.
func (r *Reader) Read(dir string) (*domain.Manifest, error) {
	for _, name := range domain.ManifestFileNames() {
		path := filepath.Join(dir, name)

		data, err := r.fs.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
		}

		m, err := Parse(name, data)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		return m, nil
	}

	return nil, zerr.With(domain.ErrManifestNotFound, "dir", dir)
}

// Parse decodes a descriptor. The format is chosen by the file name extension;
// JSON is decoded as YAML.
func Parse(fileName string, data []byte) (*domain.Manifest, error) {
	var (
		m   domain.Manifest
		err error
	)

	switch filepath.Ext(fileName) {
	case ".toml":
		err = parseTOML(data, &m)
	default:
		err = yaml.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func parseTOML(data []byte, m *domain.Manifest) error {
	if err := toml.Unmarshal(data, m); err != nil {
		return err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range knownKeys {
		delete(raw, key)
	}
	if len(raw) > 0 {
		m.Extensions = raw
	}
	return nil
}

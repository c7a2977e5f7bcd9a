package manifest

import (
	"os"
	"path/filepath"

	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Marshal encodes m as a YAML descriptor. Extension keys are written at the top level.
func Marshal(m *domain.Manifest) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	return data, nil
}

// Write stores m as manifest.yaml in dir, replacing any existing file.
func Write(dir string, m *domain.Manifest) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, domain.ManifestFileName)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return nil
}

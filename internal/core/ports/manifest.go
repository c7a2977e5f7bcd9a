package ports

import "go.trai.ch/addon/internal/core/domain"

// ManifestReader reads the descriptor of an addon package.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestReader interface {
	// Read locates and parses the manifest in the package root dir.
	// It fails with domain.ErrManifestNotFound when no descriptor exists and
	// with domain.ErrManifestInvalid when the descriptor has no name.
	Read(dir string) (*domain.Manifest, error)
}

package ports

import "io"

//go:generate mockgen -source=archive.go -destination=mocks/mock_archive.go -package=mocks

// ArchiveLoader opens packed asset archives.
type ArchiveLoader interface {
	// LoadAsync starts loading the archive at path and returns immediately.
	LoadAsync(path string) ArchiveRequest
}

// ArchiveRequest is a pending archive load.
type ArchiveRequest interface {
	// Done reports whether the load has finished, successfully or not.
	Done() bool
	// Result returns the loaded archive. It must only be called once Done reports true.
	Result() (Archive, error)
}

// Archive is a loaded packed asset archive.
type Archive interface {
	// Path returns the archive location on disk.
	Path() string
	// ScenePaths returns the scene entries contained in the archive.
	ScenePaths() []string
	// AssetNames returns every non-scene entry name.
	AssetNames() []string
	// Open opens the named entry for reading.
	Open(name string) (io.ReadCloser, error)
	// Close releases the archive.
	Close() error
}

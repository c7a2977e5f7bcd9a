package ports

import "io/fs"

// FileSystem abstracts the read-only filesystem operations of the load pipeline.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadDir returns the entries of a directory sorted by name.
	ReadDir(path string) ([]fs.DirEntry, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

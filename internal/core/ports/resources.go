package ports

import "go.trai.ch/addon/internal/core/domain"

// ResourceStore registers mounted assets in the host's virtual namespace.
// Resolving conflicting registrations for one virtual path is the store's concern.
//
//go:generate mockgen -source=resources.go -destination=mocks/mock_resources.go -package=mocks
type ResourceStore interface {
	// AddFromFile registers a loose file under virtualPath.
	AddFromFile(virtualPath, sourcePath string, priority int) (domain.ResourceHandle, error)
	// AddFromArchiveEntry registers a named entry of a loaded archive under virtualPath.
	AddFromArchiveEntry(virtualPath, entry string, archive Archive, priority int) (domain.ResourceHandle, error)
}

package ports

import (
	"context"
	"iter"
)

// WatchOp is the kind of change observed under an addon root.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// String returns the lower-case name of the operation.
func (op WatchOp) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// WatchEvent is one change below a watched addon root.
type WatchEvent struct {
	Path      string
	Operation WatchOp
}

// Watcher reports changes below the addon roots so discovery can be re-run.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start watches each existing root recursively. Missing roots are ignored.
	Start(ctx context.Context, roots ...string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator over observed changes. It ends when the watcher stops.
	Events() iter.Seq[WatchEvent]
}

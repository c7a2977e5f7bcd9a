package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/addon/internal/core/ports"
)

// NodeID is the unique identifier for the archive loader Graft node.
const NodeID graft.ID = "adapter.archive"

func init() {
	graft.Register(graft.Node[ports.ArchiveLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArchiveLoader, error) {
			return NewLoader(), nil
		},
	})
}

package sharedlib

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the shared module loader Graft node.
const NodeID graft.ID = "adapter.sharedlib"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Loader, error) {
			return NewLoader(), nil
		},
	})
}

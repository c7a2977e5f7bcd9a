package modules

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/addon/internal/adapters/script"
	"go.trai.ch/addon/internal/adapters/sharedlib"
	"go.trai.ch/addon/internal/core/ports"
)

// NodeID is the unique identifier for the module dispatcher Graft node.
const NodeID graft.ID = "adapter.modules"

func init() {
	graft.Register(graft.Node[ports.ModuleLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{script.NodeID, sharedlib.NodeID},
		Run: func(ctx context.Context) (ports.ModuleLoader, error) {
			js, err := graft.Dep[*script.Loader](ctx)
			if err != nil {
				return nil, err
			}
			so, err := graft.Dep[*sharedlib.Loader](ctx)
			if err != nil {
				return nil, err
			}
			return NewDispatcher(js, so), nil
		},
	})
}

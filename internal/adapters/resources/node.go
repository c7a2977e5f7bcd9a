package resources

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/addon/internal/adapters/fs"
	"go.trai.ch/addon/internal/core/ports"
)

// NodeID is the unique identifier for the resource store Graft node.
const NodeID graft.ID = "adapter.resources"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID},
		Run: func(ctx context.Context) (*Store, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(fsys), nil
		},
	})
}

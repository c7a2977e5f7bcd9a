package script

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/addon/internal/adapters/fs"
	"go.trai.ch/addon/internal/adapters/logger"
	"go.trai.ch/addon/internal/core/ports"
)

// NodeID is the unique identifier for the script module loader Graft node.
const NodeID graft.ID = "adapter.script"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, fs.FileSystemNodeID},
		Run: func(ctx context.Context) (*Loader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log, fsys), nil
		},
	})
}

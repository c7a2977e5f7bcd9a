package discovery

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/addon/internal/adapters/fs"
	"go.trai.ch/addon/internal/adapters/logger"
	"go.trai.ch/addon/internal/adapters/manifest"
	"go.trai.ch/addon/internal/core/ports"
)

// NodeID is the unique identifier for the discovery scanner Graft node.
const NodeID graft.ID = "engine.discovery"

func init() {
	graft.Register(graft.Node[*Scanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID, manifest.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Scanner, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			reader, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(fsys, reader, log), nil
		},
	})
}

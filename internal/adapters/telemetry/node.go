package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/addon/internal/adapters/logger"
	"go.trai.ch/addon/internal/core/ports"
)

// BridgeNodeID is the unique identifier for the span log bridge Graft node.
const BridgeNodeID graft.ID = "adapter.telemetry.bridge"

func init() {
	graft.Register(graft.Node[*LogBridge]{
		ID:        BridgeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*LogBridge, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLogBridge(log), nil
		},
	})
}

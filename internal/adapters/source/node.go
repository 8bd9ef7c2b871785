package source

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snodelist/internal/adapters/logger"
	"go.trai.ch/snodelist/internal/core/ports"
)

// NodeID is the unique identifier for the source reader Graft node.
const NodeID graft.ID = "adapter.source"

func init() {
	graft.Register(graft.Node[ports.SourceReader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SourceReader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewReader(log), nil
		},
	})
}

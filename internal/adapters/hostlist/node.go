package hostlist

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snodelist/internal/core/ports"
)

// NodeID is the unique identifier for the host-list factory Graft node.
const NodeID graft.ID = "adapter.hostlist"

func init() {
	graft.Register(graft.Node[ports.HostListFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostListFactory, error) {
			return NewFactory(), nil
		},
	})
}

package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snodelist/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/snodelist/internal/adapters/hostlist" //nolint:depguard // Wired in app layer
	"go.trai.ch/snodelist/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/snodelist/internal/adapters/source"   //nolint:depguard // Wired in app layer
	"go.trai.ch/snodelist/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			hostlist.NodeID,
			source.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			hosts, err := graft.Dep[ports.HostListFactory](ctx)
			if err != nil {
				return nil, err
			}

			sources, err := graft.Dep[ports.SourceReader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, hosts, sources, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(a, log), nil
		},
	})
}

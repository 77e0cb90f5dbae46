package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bim/internal/adapters/logger"
	"go.trai.ch/bim/internal/core/ports"
	"go.trai.ch/bim/internal/engine/aspect"
)

const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.BuildWatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{aspect.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildWatcher, error) {
			manager, err := graft.Dep[*aspect.Manager](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(manager, log)
		},
	})
}

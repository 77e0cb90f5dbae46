package bazel

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bim/internal/adapters/logger"
	"go.trai.ch/bim/internal/core/ports"
)

const NodeID graft.ID = "adapter.invoker"

func init() {
	graft.Register(graft.Node[ports.Invoker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Invoker, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCommandInvoker(log), nil
		},
	})
}

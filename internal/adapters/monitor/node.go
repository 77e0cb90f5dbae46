package monitor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bim/internal/core/ports"
)

const NodeID graft.ID = "adapter.monitor"

func init() {
	graft.Register(graft.Node[ports.Monitor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Monitor, error) {
			return New(), nil
		},
	})
}

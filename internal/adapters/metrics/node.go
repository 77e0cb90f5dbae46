package metrics

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/bim/internal/core/ports"
)

const NodeID graft.ID = "adapter.metrics"

func init() {
	graft.Register(graft.Node[ports.Metrics]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Metrics, error) {
			return New(prometheus.DefaultRegisterer), nil
		},
	})
}

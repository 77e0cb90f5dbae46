package aspect

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bim/internal/adapters/aspectfile"
	"go.trai.ch/bim/internal/adapters/bazel"
	"go.trai.ch/bim/internal/adapters/config"
	"go.trai.ch/bim/internal/adapters/logger"
	"go.trai.ch/bim/internal/adapters/metrics"
	"go.trai.ch/bim/internal/core/ports"
)

const NodeID graft.ID = "engine.aspect"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			bazel.NodeID,
			aspectfile.NodeID,
			aspectfile.TransformNodeID,
			logger.NodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Manager, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			invoker, err := graft.Dep[ports.Invoker](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.AspectParser](ctx)
			if err != nil {
				return nil, err
			}

			transform, err := graft.Dep[ports.TransformFunc](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			met, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			variant, err := NewVariant(VariantKind(cfg.Aspect.Variant), cfg.Aspect.Dir, transform)
			if err != nil {
				return nil, err
			}

			return NewManager(cfg.Workspace, variant, invoker, parser, log, met), nil
		},
	})
}

package aspectfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bim/internal/adapters/logger"
	"go.trai.ch/bim/internal/core/ports"
)

const (
	NodeID          graft.ID = "adapter.aspect_parser"
	TransformNodeID graft.ID = "adapter.aspect_transform"
)

func init() {
	graft.Register(graft.Node[ports.AspectParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.AspectParser, error) {
			return NewFileParser()
		},
	})

	graft.Register(graft.Node[ports.TransformFunc]{
		ID:        TransformNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.TransformFunc, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewIntellijTransform(log), nil
		},
	})
}

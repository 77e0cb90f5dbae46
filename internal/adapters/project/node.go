package project

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bim/internal/adapters/config"
	"go.trai.ch/bim/internal/adapters/logger"
	"go.trai.ch/bim/internal/core/ports"
)

const NodeID graft.ID = "adapter.project_creator"

func init() {
	graft.Register(graft.Node[ports.ProjectCreator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ProjectCreator, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Projects.Dir, log), nil
		},
	})
}

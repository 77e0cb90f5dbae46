package scanner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bim/internal/adapters/config"
	"go.trai.ch/bim/internal/adapters/logger"
	"go.trai.ch/bim/internal/core/ports"
)

const NodeID graft.ID = "adapter.scanner"

func init() {
	graft.Register(graft.Node[ports.WorkspaceScanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkspaceScanner, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Import.Ignore, log), nil
		},
	})
}

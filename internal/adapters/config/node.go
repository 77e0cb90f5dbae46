package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*Config]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Config, error) {
			if path := os.Getenv(EnvConfigPath); path != "" {
				return Load(path)
			}
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return Discover(cwd)
		},
	})
}

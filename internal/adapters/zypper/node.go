package zypper

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/zlock/internal/adapters/logger"
	"go.trai.ch/zlock/internal/adapters/shell"
	"go.trai.ch/zlock/internal/core/ports"
)

// NodeID is the unique identifier for the lock manager factory Graft node.
const NodeID graft.ID = "adapter.lock_manager"

func init() {
	graft.Register(graft.Node[ports.LockManagerFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.LockManagerFactory, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(runner, log), nil
		},
	})
}

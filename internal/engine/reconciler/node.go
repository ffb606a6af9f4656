package reconciler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/zlock/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/zlock/internal/adapters/zypper" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/zlock/internal/core/ports"
)

// NodeID is the unique identifier for the reconciler Graft node.
const NodeID graft.ID = "engine.reconciler"

func init() {
	graft.Register(graft.Node[*Reconciler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			zypper.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Reconciler, error) {
			factory, err := graft.Dep[ports.LockManagerFactory](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(factory, log), nil
		},
	})
}

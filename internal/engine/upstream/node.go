package upstream

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugindev/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plugindev/internal/core/ports"
)

// NodeID is the unique identifier for the upstream resolver Graft node.
const NodeID graft.ID = "engine.upstream"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			rec, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(rec), nil
		},
	})
}

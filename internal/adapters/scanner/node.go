package scanner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugindev/internal/adapters/fs"
	"go.trai.ch/plugindev/internal/core/ports"
)

// NodeID is the unique identifier for the mojo scanner Graft node.
const NodeID graft.ID = "adapter.mojo_scanner"

func init() {
	graft.Register(graft.Node[ports.MojoScanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.MojoScanner, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return New(walker), nil
		},
	})
}

package descriptor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugindev/internal/core/ports"
)

// NodeID is the unique identifier for the descriptor writer Graft node.
const NodeID graft.ID = "adapter.descriptor_writer"

func init() {
	graft.Register(graft.Node[ports.DescriptorWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DescriptorWriter, error) {
			return NewWriter(), nil
		},
	})
}

package envfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolpin/internal/core/ports"
)

// NodeID is the unique identifier for the environment file writer Graft node.
const NodeID graft.ID = "adapter.env_writer"

func init() {
	graft.Register(graft.Node[ports.EnvWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EnvWriter, error) {
			return NewWriter(), nil
		},
	})
}

package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cram/internal/adapters/logger"
	"go.trai.ch/cram/internal/core/ports"
)

// NodeID identifies the loader of cram.yaml and quiz files.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		DependsOn: []graft.ID{logger.NodeID},
		Cacheable: true,
		Run:       newNode,
	})
}

func newNode(ctx context.Context) (ports.ConfigLoader, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return NewLoader(log), nil
}

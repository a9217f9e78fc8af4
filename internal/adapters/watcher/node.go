package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cram/internal/adapters/logger"
	"go.trai.ch/cram/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the file watcher Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// DigestsNodeID is the unique identifier for the upload digest set Graft node.
	DigestsNodeID graft.ID = "adapter.digests"
)

func init() {
	graft.Register(graft.Node[ports.DirWatcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DirWatcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(log)
		},
	})

	graft.Register(graft.Node[*Digests]{
		ID:        DigestsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Digests, error) {
			return NewDigests(), nil
		},
	})
}

package ports

import (
	"context"

	"go.trai.ch/cram/internal/core/domain"
)

// BackendConn is a Backend reached over a connection that must be closed.
//
//go:generate mockgen -source=connector.go -destination=mocks/mock_connector.go -package=mocks
type BackendConn interface {
	Backend
	Close() error
}

// Connector opens connections to the remote backend.
type Connector interface {
	// Connect returns a connection to cfg.Endpoint. It does not wait for the
	// transport to become ready; the first call reports an unreachable backend.
	Connect(ctx context.Context, cfg *domain.Config) (BackendConn, error)
}

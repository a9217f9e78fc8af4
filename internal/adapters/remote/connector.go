package remote

import (
	"context"
	"errors"
	"slices"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Connector implements ports.Connector.
type Connector struct {
	tracer   ports.Tracer
	dialOpts []grpc.DialOption
}

// ConnectorOption configures a Connector.
type ConnectorOption func(*Connector)

// WithDialOptions appends gRPC dial options to every connection.
func WithDialOptions(opts ...grpc.DialOption) ConnectorOption {
	return func(c *Connector) {
		c.dialOpts = append(c.dialOpts, opts...)
	}
}

// NewConnector creates a Connector that traces calls with tracer.
func NewConnector(tracer ports.Tracer, opts ...ConnectorOption) *Connector {
	c := &Connector{tracer: tracer}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect implements ports.Connector.
// grpc.NewClient returns immediately; the connection is established on the first call.
func (c *Connector) Connect(_ context.Context, cfg *domain.Config) (ports.BackendConn, error) {
	opts := slices.Concat([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(principalUnaryInterceptor, tracingUnaryInterceptor(c.tracer)),
		grpc.WithChainStreamInterceptor(principalStreamInterceptor),
	}, c.dialOpts)

	conn, err := grpc.NewClient(cfg.Endpoint, opts...)
	if err != nil {
		return nil, errors.Join(
			domain.ErrTransportUnavailable,
			zerr.With(zerr.Wrap(err, "backend client creation failed"), "endpoint", cfg.Endpoint),
		)
	}
	return newClient(conn, cfg.RequestTimeout, c.tracer), nil
}

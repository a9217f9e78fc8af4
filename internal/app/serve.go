package app

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/cram/internal/adapters/memory"
	"go.trai.ch/cram/internal/adapters/remote"
)

// ServeOptions configure the development backend.
type ServeOptions struct {
	// Listen overrides the configured listen address.
	Listen string
	// IdleTimeout stops the server after a period without calls. Zero never stops.
	IdleTimeout time.Duration
}

// Serve runs an in-memory study backend until ctx is done or it has been idle for IdleTimeout.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	cfg, err := a.configLoader.Load(a.opts.ConfigPath)
	if err != nil {
		return err
	}

	addr := opts.Listen
	if addr == "" {
		addr = cfg.Listen
	}

	server := remote.NewServer(memory.New(), remote.NewLifecycle(opts.IdleTimeout), a.logger)
	err = server.ListenAndServe(ctx, addr)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Package studysync binds every remote study operation to the query cache.
//
// Reads are keyed queries gated on the session. Writes validate their input, run through
// the cache so the affected keys are invalidated on success, and report their outcome
// exactly once through the notifier.
package studysync

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/cram/internal/engine/querycache"
)

// Session reports whether identity-bound queries may run and for whom.
// The session gate satisfies it.
type Session interface {
	Authenticated() bool
	Principal() domain.Principal
}

// Client is the study data client used by the CLI and the dashboard.
type Client struct {
	backend  ports.Backend
	cache    *querycache.Store
	session  Session
	notifier ports.Notifier
	tracer   ports.Tracer
	logger   ports.Logger
	validate *inputValidator
}

// New creates a Client.
func New(
	backend ports.Backend,
	cache *querycache.Store,
	session Session,
	notifier ports.Notifier,
	tracer ports.Tracer,
	log ports.Logger,
) *Client {
	return &Client{
		backend:  backend,
		cache:    cache,
		session:  session,
		notifier: notifier,
		tracer:   tracer,
		logger:   log,
		validate: newInputValidator(),
	}
}

// Cache returns the query cache backing the client.
func (c *Client) Cache() *querycache.Store {
	return c.cache
}

// Refresh marks every cached query as stale. The next read of each key refetches.
func (c *Client) Refresh() int {
	return c.cache.Invalidate(domain.NewQueryKey())
}

// caller attaches the signed-in principal to ctx for the backend.
func (c *Client) caller(ctx context.Context) context.Context {
	return domain.WithCaller(ctx, c.session.Principal())
}

// gated reports whether a query may run given its own parameter requirements.
func (c *Client) gated(params ...string) bool {
	if !c.session.Authenticated() {
		return false
	}
	for _, p := range params {
		if p == "" {
			return false
		}
	}
	return true
}

// mutation describes one write.
type mutation[T any] struct {
	name    string
	rule    domain.InvalidationRule
	check   func() error
	success string
	failure string
	run     func(context.Context) (T, error)
}

// execute validates and runs m, then notifies exactly once.
func execute[T any](ctx context.Context, c *Client, m mutation[T]) domain.Result[T] {
	res := executeQuiet(ctx, c, m)
	if err := res.Err(); err != nil {
		c.notifier.Failure(m.failure, err)
	} else {
		c.notifier.Success(m.success)
	}
	return res
}

// executeQuiet is execute without the notification.
func executeQuiet[T any](ctx context.Context, c *Client, m mutation[T]) domain.Result[T] {
	if !c.session.Authenticated() {
		return domain.Err[T](errors.Join(domain.ErrTransportUnavailable, domain.ErrNotAuthenticated))
	}
	if m.check != nil {
		if err := m.check(); err != nil {
			c.logger.Debug(fmt.Sprintf("%s rejected before submission: %v", m.name, err))
			return domain.Err[T](err)
		}
	}

	ctx, span := c.tracer.Start(c.caller(ctx), m.name)
	defer span.End()

	res := querycache.Mutate(ctx, c.cache, m.rule, m.run)
	if err := res.Err(); err != nil {
		span.RecordError(err)
	}
	return res
}

// none adapts a write without a result value.
func none(fn func(context.Context) error) func(context.Context) (struct{}, error) {
	return func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}
}

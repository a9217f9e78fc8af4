package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/cram/internal/adapters/detector"
	"go.trai.ch/cram/internal/adapters/linear"
	"go.trai.ch/cram/internal/adapters/telemetry"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/cram/internal/engine/querycache"
	"go.trai.ch/cram/internal/engine/session"
	"go.trai.ch/cram/internal/engine/studysync"
	"go.trai.ch/zerr"
)

// errSignedOut is returned by commands that need an identity.
var errSignedOut = errors.Join(domain.ErrNotAuthenticated, zerr.New("sign in with cram login --name NAME"))

// workspace is everything one command needs to talk to the backend.
type workspace struct {
	cfg    *domain.Config
	conn   ports.BackendConn
	cache  *querycache.Store
	gate   *session.Gate
	client *studysync.Client
	mode   detector.OutputMode
}

// open loads the configuration, connects to the backend and resolves the stored identity.
func (a *App) open(ctx context.Context) (*workspace, error) {
	cfg, err := a.configLoader.Load(a.opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if ls, ok := a.logger.(logSettings); ok && cfg.JSONLog {
		ls.SetJSON(true)
	}

	mode := a.mode
	if mode == detector.ModeAuto {
		// The configuration was validated by the loader.
		mode, _ = detector.ParseMode(cfg.OutputMode)
	}
	mode = detector.ResolveMode(detector.DetectEnvironment(terminal(a.out)), mode)

	conn, err := a.connector.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cache := querycache.New(querycache.WithLogger(a.logger))
	gate := session.NewGate(a.identities(cfg.CredentialsPath), cache, a.logger)
	if err := gate.Resolve(ctx); err != nil {
		a.logger.Warn("continuing signed out: " + err.Error())
	}

	return &workspace{
		cfg:    cfg,
		conn:   conn,
		cache:  cache,
		gate:   gate,
		client: studysync.New(conn, cache, gate, a.notifier, a.tracer, a.logger),
		mode:   mode,
	}, nil
}

// close logs the cache counters and releases the backend connection.
func (w *workspace) close(log ports.Logger) {
	st := w.cache.Stats()
	log.Debug(fmt.Sprintf(
		"query cache: %d hits, %d misses, %d joins, %d discards, %d invalidations, %d evictions",
		st.Hits, st.Misses, st.Joins, st.Discards, st.Invalidations, st.Evictions,
	))
	if err := w.conn.Close(); err != nil {
		log.Debug("closing backend connection: " + err.Error())
	}
}

// run executes fn against a fresh workspace with line output.
// Outcome messages are printed before run returns.
func (a *App) run(ctx context.Context, fn func(ctx context.Context, w *workspace) error) error {
	w, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer w.close(a.logger)

	renderer := linear.NewRenderer(a.errOut)
	if a.opts.Verbose {
		setupOTel(telemetry.NewBridge(renderer))
	}
	stop := a.forwardToasts(renderer)
	err = fn(ctx, w)
	stop()
	_ = renderer.Stop()
	return err
}

// signedIn runs fn only when an identity is stored.
func (a *App) signedIn(ctx context.Context, fn func(ctx context.Context, w *workspace) error) error {
	return a.run(ctx, func(ctx context.Context, w *workspace) error {
		if !w.gate.Authenticated() {
			return errSignedOut
		}
		return fn(ctx, w)
	})
}

// settled turns a query entry into an error when it holds no value.
func settled(ctx context.Context, entry domain.QueryEntry) error {
	switch entry.Status {
	case domain.StatusError:
		return entry.Err
	case domain.StatusIdle:
		return errSignedOut
	case domain.StatusLoading:
		if err := ctx.Err(); err != nil {
			return err
		}
		return zerr.New("query did not settle")
	default:
		return nil
	}
}

// missing reports a record the backend does not have.
func missing(kind, id string) error {
	return errors.Join(domain.ErrNotFound, zerr.With(zerr.New(kind+" not found"), "id", id))
}

// reported marks a mutation failure the notifier has already shown.
func reported(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(domain.ErrCommandFailed, err)
}

// Package session implements the authentication gate that decides which screen renders
// and whether identity-bound queries may run.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/zerr"
)

// Evicter drops every cached query. The query cache satisfies it.
type Evicter interface {
	Clear()
}

// Gate tracks the signed-in identity. It is safe for concurrent use.
type Gate struct {
	provider ports.IdentityProvider
	cache    Evicter
	logger   ports.Logger

	mu       sync.RWMutex
	state    domain.SessionState
	identity *domain.Identity
}

// NewGate creates a gate in the initializing state.
func NewGate(provider ports.IdentityProvider, cache Evicter, log ports.Logger) *Gate {
	return &Gate{
		provider: provider,
		cache:    cache,
		logger:   log,
		state:    domain.SessionInitializing,
	}
}

// State returns the current session state.
func (g *Gate) State() domain.SessionState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Authenticated reports whether identity-bound queries are enabled.
func (g *Gate) Authenticated() bool {
	return g.State() == domain.SessionAuthenticated
}

// Identity returns the signed-in identity.
func (g *Gate) Identity() (domain.Identity, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.identity == nil {
		return domain.Identity{}, false
	}
	return *g.identity, true
}

// Principal returns the signed-in principal, or the anonymous principal.
func (g *Gate) Principal() domain.Principal {
	id, _ := g.Identity()
	return id.Principal
}

// Screen returns the top-level screen for the current state.
func (g *Gate) Screen() domain.Screen {
	switch g.State() {
	case domain.SessionAuthenticated:
		return domain.ScreenDashboard
	case domain.SessionUnauthenticated:
		return domain.ScreenWelcome
	default:
		return domain.ScreenLoading
	}
}

// NeedsProfile reports whether a signed-in user has to create a profile first.
// profile is the settled entry of the caller profile query.
func (g *Gate) NeedsProfile(profile domain.QueryEntry) bool {
	if !g.Authenticated() || profile.Status != domain.StatusSuccess {
		return false
	}
	p, _ := profile.Value.(*domain.UserProfile)
	return p == nil
}

// Resolve leaves the initializing state using the stored identity.
// A provider failure is returned after moving to unauthenticated, so the client never stays on the loading screen.
func (g *Gate) Resolve(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != domain.SessionInitializing {
		return g.invalid("resolve")
	}

	id, err := g.provider.Current(ctx)
	if err != nil {
		g.state = domain.SessionUnauthenticated
		return zerr.Wrap(err, "failed to resolve stored identity")
	}

	if id == nil || id.Principal.IsAnonymous() {
		g.state = domain.SessionUnauthenticated
		g.debug("no stored identity")
		return nil
	}

	g.identity = id
	g.state = domain.SessionAuthenticated
	g.debug(fmt.Sprintf("resolved identity %s", id.Principal))
	return nil
}

// Login signs in as name and enables identity-bound queries.
func (g *Gate) Login(ctx context.Context, name string) (domain.Identity, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != domain.SessionUnauthenticated {
		return domain.Identity{}, g.invalid("login")
	}

	id, err := g.provider.Login(ctx, name)
	if err != nil {
		return domain.Identity{}, zerr.Wrap(err, "login failed")
	}
	if id == nil {
		return domain.Identity{}, domain.ErrNotAuthenticated
	}

	g.identity = id
	g.state = domain.SessionAuthenticated
	g.debug(fmt.Sprintf("signed in as %s", id.Principal))
	return *id, nil
}

// Logout forgets the identity and evicts every cached query.
func (g *Gate) Logout(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != domain.SessionAuthenticated {
		return g.invalid("logout")
	}

	if err := g.provider.Logout(ctx); err != nil {
		return zerr.Wrap(err, "logout failed")
	}

	g.identity = nil
	g.state = domain.SessionUnauthenticated
	g.cache.Clear()
	g.debug("signed out; cache cleared")
	return nil
}

func (g *Gate) invalid(action string) error {
	return errors.Join(
		domain.ErrInvalidTransition,
		zerr.With(zerr.New(action+" is not allowed"), "state", g.state.String()),
	)
}

func (g *Gate) debug(msg string) {
	if g.logger != nil {
		g.logger.Debug(msg)
	}
}

package ports

import (
	"context"

	"go.trai.ch/cram/internal/core/domain"
)

// IdentityProvider resolves and stores the signed-in principal.
//
//go:generate mockgen -source=identity.go -destination=mocks/mock_identity.go -package=mocks
type IdentityProvider interface {
	// Current returns the stored identity, or nil when signed out.
	Current(ctx context.Context) (*domain.Identity, error)
	// Login creates or reuses an identity and persists it.
	Login(ctx context.Context, name string) (*domain.Identity, error)
	// Logout forgets the stored identity.
	Logout(ctx context.Context) error
}

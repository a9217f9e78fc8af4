package memory

import (
	"context"
	"errors"
	"strings"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/zerr"
)

// GetCallerProfile returns the caller's profile, or nil when none was saved.
func (b *Backend) GetCallerProfile(ctx context.Context) (*domain.UserProfile, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.caller(ctx)
	if err != nil {
		return nil, err
	}
	return b.profileOf(p), nil
}

// SaveCallerProfile stores the caller's profile.
func (b *Backend) SaveCallerProfile(ctx context.Context, profile domain.UserProfile) error {
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" {
		return domain.NewValidationError("name", "name must not be empty")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.caller(ctx)
	if err != nil {
		return err
	}
	b.profiles[p] = profile
	return nil
}

// GetUserProfile returns the profile of user, or nil when none was saved.
func (b *Backend) GetUserProfile(_ context.Context, user domain.Principal) (*domain.UserProfile, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.profileOf(user), nil
}

func (b *Backend) profileOf(p domain.Principal) *domain.UserProfile {
	profile, ok := b.profiles[p]
	if !ok {
		return nil
	}
	return &profile
}

// GetCallerRole returns the caller's role. Anonymous callers are guests.
func (b *Backend) GetCallerRole(ctx context.Context) (domain.UserRole, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.caller(ctx)
	if errors.Is(err, domain.ErrNotAuthenticated) {
		return domain.RoleGuest, nil
	}
	if err != nil {
		return "", err
	}
	return b.roles[p], nil
}

// AssignRole sets the role of user. Only administrators may assign roles.
func (b *Backend) AssignRole(ctx context.Context, user domain.Principal, role domain.UserRole) error {
	if !role.Valid() {
		return domain.NewValidationError("role", "role must be one of: admin, user, guest")
	}
	if user.IsAnonymous() {
		return domain.NewValidationError("user", "user must not be empty")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.caller(ctx)
	if err != nil {
		return err
	}
	if b.roles[p] != domain.RoleAdmin {
		return errors.Join(domain.ErrForbidden, zerr.With(zerr.New("only admins can assign roles"), "caller", p.String()))
	}
	b.roles[user] = role
	return nil
}

// IsCallerAdmin reports whether the caller is an administrator.
func (b *Backend) IsCallerAdmin(ctx context.Context) (bool, error) {
	role, err := b.GetCallerRole(ctx)
	if err != nil {
		return false, err
	}
	return role == domain.RoleAdmin, nil
}

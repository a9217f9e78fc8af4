package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports/mocks"
	"go.trai.ch/cram/internal/engine/querycache"
	"go.trai.ch/cram/internal/engine/session"
	"go.uber.org/mock/gomock"
)

func newGate(t *testing.T) (*session.Gate, *mocks.MockIdentityProvider, *querycache.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockIdentityProvider(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	cache := querycache.New()
	return session.NewGate(provider, cache, log), provider, cache
}

func TestGate_Initializing(t *testing.T) {
	gate, _, _ := newGate(t)

	assert.Equal(t, domain.SessionInitializing, gate.State())
	assert.Equal(t, domain.ScreenLoading, gate.Screen())
	assert.False(t, gate.Authenticated())

	_, err := gate.Login(context.Background(), "alice")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	require.ErrorIs(t, gate.Logout(context.Background()), domain.ErrInvalidTransition)
}

func TestGate_ResolveStoredIdentity(t *testing.T) {
	gate, provider, _ := newGate(t)
	provider.EXPECT().Current(gomock.Any()).Return(&domain.Identity{Principal: "p-1", Name: "alice"}, nil)

	require.NoError(t, gate.Resolve(context.Background()))

	assert.Equal(t, domain.ScreenDashboard, gate.Screen())
	assert.Equal(t, domain.Principal("p-1"), gate.Principal())
	require.ErrorIs(t, gate.Resolve(context.Background()), domain.ErrInvalidTransition, "initializing is never re-entered")
}

func TestGate_ResolveFailureShowsWelcome(t *testing.T) {
	gate, provider, _ := newGate(t)
	provider.EXPECT().Current(gomock.Any()).Return(nil, domain.ErrCredentialsReadFailed)

	err := gate.Resolve(context.Background())

	require.Error(t, err)
	assert.Equal(t, domain.ScreenWelcome, gate.Screen())
}

func TestGate_LoginLogout(t *testing.T) {
	gate, provider, cache := newGate(t)
	ctx := context.Background()

	provider.EXPECT().Current(gomock.Any()).Return(nil, nil)
	require.NoError(t, gate.Resolve(ctx))
	assert.Equal(t, domain.ScreenWelcome, gate.Screen())

	provider.EXPECT().Login(gomock.Any(), "alice").Return(&domain.Identity{Principal: "p-2", Name: "alice"}, nil)
	id, err := gate.Login(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", id.Name)
	assert.True(t, gate.Authenticated())

	_, err = gate.Login(ctx, "bob")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	calls := 0
	fetch := func(context.Context) (any, error) {
		calls++
		return "notes", nil
	}
	key := domain.NewQueryKey("notes")
	cache.Read(ctx, key, fetch, gate.Authenticated())
	require.Equal(t, 1, cache.Len())

	provider.EXPECT().Logout(gomock.Any()).Return(nil)
	require.NoError(t, gate.Logout(ctx))

	assert.Equal(t, domain.ScreenWelcome, gate.Screen())
	assert.Zero(t, cache.Len())
	_, ok := gate.Identity()
	assert.False(t, ok)

	// After logging back in, a previously cached key is a miss.
	provider.EXPECT().Login(gomock.Any(), "alice").Return(&domain.Identity{Principal: "p-2", Name: "alice"}, nil)
	_, err = gate.Login(ctx, "alice")
	require.NoError(t, err)
	cache.Read(ctx, key, fetch, gate.Authenticated())
	assert.Equal(t, 2, calls)
}

func TestGate_LogoutFailureKeepsSession(t *testing.T) {
	gate, provider, _ := newGate(t)
	ctx := context.Background()

	provider.EXPECT().Current(gomock.Any()).Return(&domain.Identity{Principal: "p-3"}, nil)
	require.NoError(t, gate.Resolve(ctx))

	provider.EXPECT().Logout(gomock.Any()).Return(errors.New("read-only filesystem"))
	require.Error(t, gate.Logout(ctx))
	assert.True(t, gate.Authenticated())
}

func TestGate_NeedsProfile(t *testing.T) {
	gate, provider, _ := newGate(t)

	loaded := domain.QueryEntry{Status: domain.StatusSuccess, Value: (*domain.UserProfile)(nil)}
	assert.False(t, gate.NeedsProfile(loaded), "not signed in yet")

	provider.EXPECT().Current(gomock.Any()).Return(&domain.Identity{Principal: "p-4"}, nil)
	require.NoError(t, gate.Resolve(context.Background()))

	assert.True(t, gate.NeedsProfile(loaded))
	assert.True(t, gate.NeedsProfile(domain.QueryEntry{Status: domain.StatusSuccess}))
	assert.False(t, gate.NeedsProfile(domain.QueryEntry{Status: domain.StatusLoading}))
	assert.False(t, gate.NeedsProfile(domain.QueryEntry{
		Status: domain.StatusSuccess,
		Value:  &domain.UserProfile{Name: "alice"},
	}))
}

package identity_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/adapters/identity"
	"go.trai.ch/cram/internal/core/domain"
)

func TestStore_SignedOutByDefault(t *testing.T) {
	store := identity.NewStore(filepath.Join(t.TempDir(), "credentials.yaml"))

	id, err := store.Current(t.Context())

	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestStore_LoginPersistsAndReusesPrincipal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.yaml")
	store := identity.NewStore(path)

	first, err := store.Login(t.Context(), "  ada ")
	require.NoError(t, err)
	assert.Equal(t, "ada", first.Name)
	assert.False(t, first.Principal.IsAnonymous())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.PrivateFilePerm), info.Mode().Perm())

	// A fresh store reads the same file.
	reopened := identity.NewStore(path)
	current, err := reopened.Current(t.Context())
	require.NoError(t, err)
	assert.Equal(t, first, current)

	require.NoError(t, reopened.Logout(t.Context()))
	current, err = reopened.Current(t.Context())
	require.NoError(t, err)
	assert.Nil(t, current)

	again, err := reopened.Login(t.Context(), "ada")
	require.NoError(t, err)
	assert.Equal(t, first.Principal, again.Principal)

	other, err := reopened.Login(t.Context(), "grace")
	require.NoError(t, err)
	assert.NotEqual(t, first.Principal, other.Principal)
}

func TestStore_LoginRejectsEmptyName(t *testing.T) {
	store := identity.NewStore(filepath.Join(t.TempDir(), "credentials.yaml"))

	_, err := store.Login(t.Context(), "   ")

	assert.Equal(t, domain.KindValidationFailed, domain.KindOf(err))
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	require.NoError(t, os.WriteFile(path, []byte("current: [oops"), domain.PrivateFilePerm))

	_, err := identity.NewStore(path).Current(t.Context())

	require.ErrorIs(t, err, domain.ErrCredentialsReadFailed)
}

func TestStore_LogoutWhenSignedOutIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")

	require.NoError(t, identity.NewStore(path).Logout(t.Context()))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

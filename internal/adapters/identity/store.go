// Package identity implements the file-backed identity provider.
package identity

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// credentials is the on-disk layout of the credentials file.
type credentials struct {
	Current *domain.Identity            `yaml:"current,omitempty"`
	Known   map[string]domain.Principal `yaml:"known,omitempty"`
}

// Store implements ports.IdentityProvider with a YAML file.
// A name that signed in before gets its previous principal back.
type Store struct {
	path  string
	mu    sync.Mutex
	newID func() string
}

// NewStore creates a Store persisting to path.
func NewStore(path string) *Store {
	return &Store{path: path, newID: uuid.NewString}
}

// Current returns the stored identity, or nil when signed out.
func (s *Store) Current(_ context.Context) (*domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.read()
	if err != nil {
		return nil, err
	}
	return creds.Current, nil
}

// Login signs in as name and persists the identity.
func (s *Store) Login(_ context.Context, name string) (*domain.Identity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.read()
	if err != nil {
		return nil, err
	}

	principal, ok := creds.Known[name]
	if !ok {
		principal = domain.Principal(s.newID())
		if creds.Known == nil {
			creds.Known = make(map[string]domain.Principal)
		}
		creds.Known[name] = principal
	}
	creds.Current = &domain.Identity{Principal: principal, Name: name}

	if err := s.write(creds); err != nil {
		return nil, err
	}
	return creds.Current, nil
}

// Logout forgets the current identity. Known names are kept.
func (s *Store) Logout(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.read()
	if err != nil {
		return err
	}
	if creds.Current == nil {
		return nil
	}
	creds.Current = nil
	return s.write(creds)
}

func (s *Store) read() (credentials, error) {
	var creds credentials

	//nolint:gosec // Path comes from the user's configuration
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return creds, nil
	}
	if err != nil {
		return creds, errors.Join(domain.ErrCredentialsReadFailed, zerr.With(err, "path", s.path))
	}

	if err := yaml.Unmarshal(data, &creds); err != nil {
		return creds, errors.Join(domain.ErrCredentialsReadFailed, zerr.With(err, "path", s.path))
	}
	if creds.Current != nil && creds.Current.Principal.IsAnonymous() {
		creds.Current = nil
	}
	return creds, nil
}

// write replaces the file atomically so a crash never leaves half a file behind.
func (s *Store) write(creds credentials) error {
	data, err := yaml.Marshal(creds)
	if err != nil {
		return errors.Join(domain.ErrCredentialsWriteFailed, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrCredentialsWriteFailed, zerr.With(err, "path", dir))
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return errors.Join(domain.ErrCredentialsWriteFailed, zerr.With(err, "path", s.path))
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Join(domain.ErrCredentialsWriteFailed, zerr.With(err, "path", s.path))
	}
	if err := tmp.Chmod(domain.PrivateFilePerm); err != nil {
		_ = tmp.Close()
		return errors.Join(domain.ErrCredentialsWriteFailed, zerr.With(err, "path", s.path))
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(domain.ErrCredentialsWriteFailed, zerr.With(err, "path", s.path))
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Join(domain.ErrCredentialsWriteFailed, zerr.With(err, "path", s.path))
	}
	return nil
}

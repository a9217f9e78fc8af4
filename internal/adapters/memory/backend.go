// Package memory implements an in-process study backend for development and tests.
//
// Records live only as long as the process. The first principal that calls
// the backend becomes its administrator; later principals are regular users.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/zerr"
)

// Option configures a Backend.
type Option func(*Backend)

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		b.now = now
	}
}

// WithIDs overrides the record identifier generator.
func WithIDs(next func() string) Option {
	return func(b *Backend) {
		b.newID = next
	}
}

// WithMaxBlobSize bounds the size of a single uploaded blob.
func WithMaxBlobSize(n int64) Option {
	return func(b *Backend) {
		b.maxBlob = n
	}
}

// DefaultMaxBlobSize bounds uploads when no other limit is configured.
const DefaultMaxBlobSize = 64 << 20

// Backend implements ports.Backend in memory. It is safe for concurrent use.
type Backend struct {
	mu sync.RWMutex

	profiles   map[domain.Principal]domain.UserProfile
	roles      map[domain.Principal]domain.UserRole
	flashcards []domain.Flashcard
	notes      []domain.StudyNote
	quizzes    []domain.Quiz
	attempts   []domain.QuizAttempt
	files      []domain.FileMetadata
	blobs      map[string]blob

	now     func() time.Time
	newID   func() string
	maxBlob int64
}

type blob struct {
	ref  domain.BlobRef
	data []byte
}

// New creates an empty Backend.
func New(opts ...Option) *Backend {
	b := &Backend{
		profiles: make(map[domain.Principal]domain.UserProfile),
		roles:    make(map[domain.Principal]domain.UserRole),
		blobs:    make(map[string]blob),
		now:      time.Now,
		newID:    uuid.NewString,
		maxBlob:  DefaultMaxBlobSize,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// caller returns the signed-in principal of ctx and registers it on first sight.
// Callers hold mu for writing.
func (b *Backend) caller(ctx context.Context) (domain.Principal, error) {
	p, ok := domain.CallerFrom(ctx)
	if !ok {
		return "", domain.ErrNotAuthenticated
	}
	if _, known := b.roles[p]; !known {
		role := domain.RoleUser
		if len(b.roles) == 0 {
			role = domain.RoleAdmin
		}
		b.roles[p] = role
	}
	return p, nil
}

// mayModify reports whether p may change a record owned by owner.
func (b *Backend) mayModify(p, owner domain.Principal) bool {
	return p == owner || b.roles[p] == domain.RoleAdmin
}

func forbidden(action, id string) error {
	return errors.Join(domain.ErrForbidden, zerr.With(zerr.New(action+" is reserved for the owner"), "id", id))
}

func notFound(kind, id string) error {
	return errors.Join(domain.ErrNotFound, zerr.With(zerr.New(kind+" does not exist"), "id", id))
}

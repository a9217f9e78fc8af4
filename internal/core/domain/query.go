package domain

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// QueryKey is the ordered tuple identifying a cached read and its parameters.
type QueryKey []string

// NewQueryKey builds a key from its parts.
func NewQueryKey(parts ...string) QueryKey {
	return QueryKey(parts)
}

// HasPrefix reports whether prefix matches the leading parts of k.
// An empty prefix matches every key.
func (k QueryKey) HasPrefix(prefix QueryKey) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i, part := range prefix {
		if k[i] != part {
			return false
		}
	}
	return true
}

// Equal reports whether both keys have identical parts.
func (k QueryKey) Equal(other QueryKey) bool {
	return len(k) == len(other) && k.HasPrefix(other)
}

// Fingerprint returns a stable 64-bit identity for the key.
// Parts are length-prefixed so ["a/b"] and ["a","b"] never collide by construction.
func (k QueryKey) Fingerprint() uint64 {
	d := xxhash.New()
	var lenBuf [binary.MaxVarintLen64]byte
	for _, part := range k {
		n := binary.PutUvarint(lenBuf[:], uint64(len(part)))
		_, _ = d.Write(lenBuf[:n])
		_, _ = d.WriteString(part)
	}
	return d.Sum64()
}

// ID returns an encoding of the key that is unique per distinct key.
// Each part is prefixed with its length, so no two keys share an ID.
func (k QueryKey) ID() string {
	var b strings.Builder
	for _, part := range k {
		b.WriteString(strconv.Itoa(len(part)))
		b.WriteByte(':')
		b.WriteString(part)
	}
	return b.String()
}

// String renders the key for logs.
func (k QueryKey) String() string {
	return strings.Join(k, "/")
}

// Clone returns a copy that does not share the backing array.
func (k QueryKey) Clone() QueryKey {
	if k == nil {
		return nil
	}
	out := make(QueryKey, len(k))
	copy(out, k)
	return out
}

// QueryStatus is the lifecycle state of a cached read.
type QueryStatus uint8

const (
	// StatusIdle means the query is disabled or has never run.
	StatusIdle QueryStatus = iota
	// StatusLoading means a fetch is in flight.
	StatusLoading
	// StatusSuccess means the last fetch produced a value.
	StatusSuccess
	// StatusError means the last fetch failed.
	StatusError
)

// String returns the lowercase status name.
func (s QueryStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Settled reports whether the status is a terminal fetch outcome.
func (s QueryStatus) Settled() bool {
	return s == StatusSuccess || s == StatusError
}

// QueryEntry is a snapshot of one cached read.
type QueryEntry struct {
	Key         QueryKey
	Status      QueryStatus
	Value       any
	Err         error
	Enabled     bool
	Stale       bool
	Generation  uint64
	LastUpdated time.Time
}

// Fresh reports whether the entry can be served without refetching.
func (e QueryEntry) Fresh() bool {
	return e.Status.Settled() && !e.Stale
}

// IsLoading reports whether the entry is waiting on a fetch.
func (e QueryEntry) IsLoading() bool {
	return e.Status == StatusLoading
}

// InvalidationRule names a mutation and the key prefixes it makes stale.
type InvalidationRule struct {
	Mutation string
	Prefixes []QueryKey
}

// NewInvalidationRule builds a rule for the named mutation.
func NewInvalidationRule(mutation string, prefixes ...QueryKey) InvalidationRule {
	return InvalidationRule{Mutation: mutation, Prefixes: prefixes}
}

// Matches reports whether key falls under any prefix of the rule.
func (r InvalidationRule) Matches(key QueryKey) bool {
	for _, p := range r.Prefixes {
		if key.HasPrefix(p) {
			return true
		}
	}
	return false
}

// Package querycache implements the keyed query cache that sits between views and the remote backend.
//
// Entries are stored under the collision-free QueryKey.ID; the 64-bit fingerprint only names
// in-flight fetches, together with the generation they started under.
//
// Reads are memoized per query key. Concurrent reads of a key that is not fresh share one
// in-flight fetch. Writes run a mutation and, on success, invalidate every entry under the
// key prefixes declared by the mutation's rule. Each entry carries a generation drawn from a
// store-wide counter; a fetch applies its result only if the entry still carries the
// generation the fetch started under, so results that resolve after an invalidation or an
// eviction are discarded.
package querycache

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// Fetcher loads the value of one query.
type Fetcher func(ctx context.Context) (any, error)

// MutationFunc performs one remote write.
type MutationFunc func(ctx context.Context) (any, error)

// Stats counts cache outcomes since the store was created.
type Stats struct {
	Hits          uint64
	Misses        uint64
	Joins         uint64
	Discards      uint64
	Invalidations uint64
	Evictions     uint64
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for LastUpdated.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger routes cache diagnostics to log.
func WithLogger(log ports.Logger) Option {
	return func(s *Store) {
		s.logger = log
	}
}

// Store is the query cache. It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries map[string]*domain.QueryEntry
	subs    map[string]map[uint64]chan domain.QueryEntry
	nextSub uint64
	gen     uint64
	stats   Stats

	group  singleflight.Group
	now    func() time.Time
	logger ports.Logger
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]*domain.QueryEntry),
		subs:    make(map[string]map[uint64]chan domain.QueryEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns the entry for key, fetching it when it is absent, stale or failed-and-invalidated.
//
// A disabled read returns an idle entry and never fetches. A fresh entry is returned as is.
// Otherwise Read joins or starts the single in-flight fetch for the key and blocks until it
// settles or ctx is done; in the latter case the loading snapshot is returned and the fetch
// keeps running.
func (s *Store) Read(ctx context.Context, key domain.QueryKey, fetch Fetcher, enabled bool) domain.QueryEntry {
	return s.await(ctx, key, fetch, enabled, false)
}

// Refetch forces a new fetch of key regardless of the entry's state, superseding any fetch in
// flight, and waits for it like Read. It is how a failed entry is retried without a write.
func (s *Store) Refetch(ctx context.Context, key domain.QueryKey, fetch Fetcher) domain.QueryEntry {
	return s.await(ctx, key, fetch, true, true)
}

func (s *Store) await(
	ctx context.Context,
	key domain.QueryKey,
	fetch Fetcher,
	enabled, force bool,
) domain.QueryEntry {
	entry, done := s.begin(ctx, key, fetch, enabled, force)
	if done == nil {
		return entry
	}

	select {
	case res := <-done:
		if settled, ok := res.Val.(domain.QueryEntry); ok {
			return settled
		}
		return entry
	case <-ctx.Done():
		return entry
	}
}

// Start behaves like Read but never waits for the fetch.
// Subscribers of key observe the settled state.
func (s *Store) Start(ctx context.Context, key domain.QueryKey, fetch Fetcher, enabled bool) domain.QueryEntry {
	entry, _ := s.begin(ctx, key, fetch, enabled, false)
	return entry
}

// Peek returns the current entry for key without fetching.
func (s *Store) Peek(key domain.QueryKey) (domain.QueryEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries[key.ID()]
	if !ok {
		return domain.QueryEntry{}, false
	}
	return snapshot(rec), true
}

// Write runs mutate and, when it succeeds, invalidates every entry matched by rule.
// A failed mutation leaves the cache untouched and is returned to the caller only.
func (s *Store) Write(ctx context.Context, mutate MutationFunc, rule domain.InvalidationRule) domain.Result[any] {
	value, err := mutate(ctx)
	if err != nil {
		s.debug(fmt.Sprintf("mutation %s failed; cache unchanged", rule.Mutation))
		return domain.Err[any](err)
	}

	n := s.Invalidate(rule.Prefixes...)
	s.debug(fmt.Sprintf("mutation %s invalidated %d entries", rule.Mutation, n))
	return domain.Ok(value)
}

// Invalidate marks every entry whose key starts with one of prefixes as stale and returns how many were marked.
// Stale entries keep their last value until the next read refetches them.
func (s *Store) Invalidate(prefixes ...domain.QueryKey) int {
	if len(prefixes) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, rec := range s.entries {
		if !matchesAny(rec.Key, prefixes) {
			continue
		}
		rec.Stale = true
		rec.Generation = s.nextGeneration()
		n++
		s.publish(id, snapshot(rec))
	}
	s.stats.Invalidations += uint64(n)
	return n
}

// Clear evicts every entry. In-flight fetches finish but their results are discarded.
// Subscribers receive an idle entry for their key.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := s.entries
	s.entries = make(map[string]*domain.QueryEntry)
	s.stats.Evictions += uint64(len(evicted))

	for id, rec := range evicted {
		s.publish(id, domain.QueryEntry{Key: rec.Key.Clone(), Status: domain.StatusIdle})
	}
	s.debug(fmt.Sprintf("cache cleared; %d entries evicted", len(evicted)))
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Stats returns a copy of the outcome counters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// begin resolves a read under the store lock. It returns the entry to hand back right away
// and, when a fetch is in flight for the caller, the channel that delivers the settled entry.
func (s *Store) begin(
	ctx context.Context,
	key domain.QueryKey,
	fetch Fetcher,
	enabled, force bool,
) (domain.QueryEntry, <-chan singleflight.Result) {
	if !enabled {
		return domain.QueryEntry{Key: key.Clone(), Status: domain.StatusIdle}, nil
	}

	id := key.ID()

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries[id]
	if ok && force {
		rec.Stale = true
		rec.Generation = s.nextGeneration()
	}

	switch {
	case ok && rec.Fresh():
		s.stats.Hits++
		return snapshot(rec), nil
	case ok && rec.IsLoading() && !rec.Stale:
		s.stats.Joins++
	default:
		if !ok {
			rec = &domain.QueryEntry{Key: key.Clone(), Generation: s.nextGeneration()}
			s.entries[id] = rec
		}
		s.stats.Misses++
		rec.Status = domain.StatusLoading
		rec.Stale = false
		rec.Enabled = true
		s.publish(id, snapshot(rec))
	}

	gen := rec.Generation
	// The flight is registered while the lock is held, so a reader that sees the loading
	// entry always finds the flight before it settles.
	done := s.group.DoChan(flightKey(key, gen), func() (any, error) {
		return s.settle(context.WithoutCancel(ctx), rec.Key, id, gen, fetch), nil
	})
	return snapshot(rec), done
}

// settle runs fetch and applies its outcome if the entry still carries gen.
func (s *Store) settle(ctx context.Context, key domain.QueryKey, id string, gen uint64, fetch Fetcher) domain.QueryEntry {
	value, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	rec, ok := s.entries[id]
	if !ok || rec.Generation != gen {
		s.stats.Discards++
		s.debug(fmt.Sprintf("query %s: discarding result of superseded generation %d", key, gen))
		return outcome(key, gen, value, err, now)
	}

	rec.LastUpdated = now
	if err != nil {
		rec.Status = domain.StatusError
		rec.Err = err
	} else {
		rec.Status = domain.StatusSuccess
		rec.Value = value
		rec.Err = nil
	}
	entry := snapshot(rec)
	s.publish(id, entry)
	return entry
}

func (s *Store) nextGeneration() uint64 {
	s.gen++
	return s.gen
}

func (s *Store) debug(msg string) {
	if s.logger != nil {
		s.logger.Debug(msg)
	}
}

// outcome describes a fetch result that was not stored.
func outcome(key domain.QueryKey, gen uint64, value any, err error, now time.Time) domain.QueryEntry {
	entry := domain.QueryEntry{
		Key:         key.Clone(),
		Status:      domain.StatusSuccess,
		Value:       value,
		Enabled:     true,
		Stale:       true,
		Generation:  gen,
		LastUpdated: now,
	}
	if err != nil {
		entry.Status = domain.StatusError
		entry.Value = nil
		entry.Err = err
	}
	return entry
}

func snapshot(rec *domain.QueryEntry) domain.QueryEntry {
	entry := *rec
	entry.Key = rec.Key.Clone()
	return entry
}

// flightKey names the fetch of key under gen. Generations are unique across the store,
// so two keys with the same fingerprint never share a flight.
func flightKey(key domain.QueryKey, gen uint64) string {
	return strconv.FormatUint(key.Fingerprint(), 16) + "#" + strconv.FormatUint(gen, 10)
}

func matchesAny(key domain.QueryKey, prefixes []domain.QueryKey) bool {
	for _, p := range prefixes {
		if key.HasPrefix(p) {
			return true
		}
	}
	return false
}

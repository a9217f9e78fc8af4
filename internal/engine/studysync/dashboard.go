package studysync

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/querycache"
	"golang.org/x/sync/errgroup"
)

// Dashboard is the state of every query the dashboard shows.
type Dashboard struct {
	Profile    domain.QueryEntry
	Flashcards domain.QueryEntry
	Notes      domain.QueryEntry
	Quizzes    domain.QueryEntry
	Attempts   domain.QueryEntry
	Files      domain.QueryEntry
	// Search is idle when the term is blank.
	Search domain.QueryEntry
}

// Err returns the error of the first failed query, or nil.
func (d Dashboard) Err() error {
	for _, e := range d.entries() {
		if e.Status == domain.StatusError {
			return e.Err
		}
	}
	return nil
}

func (d Dashboard) entries() []domain.QueryEntry {
	return []domain.QueryEntry{d.Profile, d.Flashcards, d.Notes, d.Quizzes, d.Attempts, d.Files, d.Search}
}

// feed is one dashboard query.
type feed struct {
	key     domain.QueryKey
	enabled bool
	fetch   querycache.Fetcher
}

// Indexes into dashboardFeeds.
const (
	feedProfile = iota
	feedFlashcards
	feedNotes
	feedQuizzes
	feedAttempts
	feedFiles
	feedSearch
)

func (c *Client) dashboardFeeds(term string) []feed {
	term = strings.TrimSpace(term)
	b := c.backend
	return []feed{
		feedProfile:    {ProfileKey(), c.gated(), querycache.Fetch(b.GetCallerProfile)},
		feedFlashcards: {FlashcardsKey(), c.gated(), querycache.Fetch(b.ListFlashcards)},
		feedNotes:      {NotesKey(), c.gated(), querycache.Fetch(b.ListNotes)},
		feedQuizzes:    {QuizzesKey(), c.gated(), querycache.Fetch(b.ListQuizzes)},
		feedAttempts:   {AttemptsKey(), c.gated(), querycache.Fetch(b.ListMyAttempts)},
		feedFiles:      {FilesKey(), c.gated(), querycache.Fetch(b.ListFiles)},
		feedSearch: {SearchKey(term), c.gated(term), querycache.Fetch(
			func(ctx context.Context) (domain.SearchResult, error) {
				return b.Search(ctx, term)
			})},
	}
}

// StartDashboard begins loading every dashboard query for term and returns their current
// state without waiting. Queries already fresh in the cache are not fetched again.
func (c *Client) StartDashboard(ctx context.Context, term string) Dashboard {
	ctx = c.caller(ctx)
	feeds := c.dashboardFeeds(term)
	start := func(i int) domain.QueryEntry {
		f := feeds[i]
		return c.cache.Start(ctx, f.key, f.fetch, f.enabled)
	}
	return Dashboard{
		Profile:    start(feedProfile),
		Flashcards: start(feedFlashcards),
		Notes:      start(feedNotes),
		Quizzes:    start(feedQuizzes),
		Attempts:   start(feedAttempts),
		Files:      start(feedFiles),
		Search:     start(feedSearch),
	}
}

// RetryDashboard refetches the dashboard queries for term whose last fetch failed.
// It waits for the retries to settle and returns how many were retried.
func (c *Client) RetryDashboard(ctx context.Context, term string) int {
	ctx = c.caller(ctx)

	var (
		g errgroup.Group
		n int
	)
	for _, f := range c.dashboardFeeds(term) {
		if !f.enabled {
			continue
		}
		entry, ok := c.cache.Peek(f.key)
		if !ok || entry.Status != domain.StatusError {
			continue
		}
		n++
		g.Go(func() error {
			c.cache.Refetch(ctx, f.key, f.fetch)
			return nil
		})
	}
	_ = g.Wait()
	if n > 0 {
		c.logger.Debug(fmt.Sprintf("retried %d failed dashboard queries", n))
	}
	return n
}

// WatchDashboard returns a channel that receives a signal whenever a dashboard query for
// term changes state, and a stop func that closes it. Signals coalesce while unread.
func (c *Client) WatchDashboard(term string) (<-chan struct{}, func()) {
	feeds := c.dashboardFeeds(term)
	out := make(chan struct{}, 1)

	var wg sync.WaitGroup
	cancels := make([]func(), 0, len(feeds))
	for _, f := range feeds {
		entries, cancel := c.cache.Subscribe(f.key)
		cancels = append(cancels, cancel)
		wg.Go(func() {
			for range entries {
				select {
				case out <- struct{}{}:
				default:
				}
			}
		})
	}

	var once sync.Once
	stop := func() {
		once.Do(func() {
			for _, cancel := range cancels {
				cancel()
			}
			wg.Wait()
			close(out)
		})
	}
	return out, stop
}

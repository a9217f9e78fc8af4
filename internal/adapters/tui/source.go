package tui

import (
	"context"
	"strings"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/view"
)

// Tab is one section of the dashboard.
type Tab int

const (
	// TabFlashcards lists flashcards grouped by topic.
	TabFlashcards Tab = iota
	// TabNotes lists study notes grouped by topic.
	TabNotes
	// TabQuizzes lists quizzes and the caller's attempt history.
	TabQuizzes
	// TabFiles lists uploaded files.
	TabFiles

	tabCount
)

// String returns the tab title.
func (t Tab) String() string {
	switch t {
	case TabFlashcards:
		return "Flashcards"
	case TabNotes:
		return "Notes"
	case TabQuizzes:
		return "Quizzes"
	case TabFiles:
		return "Files"
	default:
		return "Unknown"
	}
}

// ParseTab resolves a tab by its case-insensitive title.
func ParseTab(name string) (Tab, bool) {
	for t := range tabCount {
		if strings.EqualFold(t.String(), name) {
			return t, true
		}
	}
	return TabFlashcards, false
}

// Snapshot is everything one dashboard frame shows.
type Snapshot struct {
	Screen       domain.Screen
	User         string
	NeedsProfile bool

	Flashcards []domain.Flashcard
	Notes      []domain.StudyNote
	Quizzes    []domain.Quiz
	Files      []domain.FileMetadata
	Attempts   view.AttemptSummary

	// Loading marks tabs whose collection is still being fetched.
	Loading map[Tab]bool

	// Searched is set when Found holds the matches of a non-empty search term.
	Searched bool
	Found    domain.SearchResult
	// Searching is set while the search is in flight.
	Searching bool

	// Err is the first failed query, if any.
	Err error
}

// Pending reports whether tab has no settled data to show yet.
func (s Snapshot) Pending(t Tab) bool {
	if s.Loading[t] {
		return true
	}
	return t != TabFiles && s.Searching && !s.Searched
}

// Source loads dashboard data and applies dashboard actions.
type Source interface {
	// Start begins loading every collection without waiting and returns what is known now.
	// A non-empty term also runs a search.
	Start(ctx context.Context, term string) Snapshot
	// Watch returns a channel that receives a value whenever the data behind Start(term)
	// changes, and a stop func that closes the channel.
	Watch(term string) (<-chan struct{}, func())
	// Retry refetches the collections whose last load failed.
	Retry(ctx context.Context, term string)
	// Refresh marks all cached data stale so it is fetched again.
	Refresh()
	// Delete removes the record with id shown on tab.
	Delete(ctx context.Context, tab Tab, id string) error
}

package memory

import (
	"context"
	"strings"

	"go.trai.ch/cram/internal/core/domain"
)

// Search matches term case-insensitively against titles, topics and bodies.
// A blank term matches nothing.
func (b *Backend) Search(_ context.Context, term string) (domain.SearchResult, error) {
	needle := strings.ToLower(strings.TrimSpace(term))
	result := domain.SearchResult{
		Notes:      []domain.StudyNote{},
		Flashcards: []domain.Flashcard{},
		Quizzes:    []domain.Quiz{},
	}
	if needle == "" {
		return result, nil
	}

	contains := func(fields ...string) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), needle) {
				return true
			}
		}
		return false
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	result.Notes = filter(b.notes, func(n domain.StudyNote) bool {
		return contains(n.Title, n.Topic, n.Content)
	})
	result.Flashcards = filter(b.flashcards, func(f domain.Flashcard) bool {
		return contains(f.Topic, f.Question, f.Answer)
	})
	result.Quizzes = filter(b.quizzes, func(q domain.Quiz) bool {
		if contains(q.Topic) {
			return true
		}
		for _, question := range q.Questions {
			if contains(question.Question) {
				return true
			}
		}
		return false
	})
	return result, nil
}

package tui

import (
	"fmt"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/view"
)

// row is one selectable line of a tab.
type row struct {
	id     string
	topic  string
	text   string
	detail string
	band   string
}

func subset[T any](searched bool, items []T) view.Subset[T] {
	if !searched {
		return view.Subset[T]{}
	}
	return view.Filtered(items)
}

func grouped[T view.Topical](items []T) []T {
	out := make([]T, 0, len(items))
	for _, g := range view.GroupByTopic(items) {
		out = append(out, g.Items...)
	}
	return out
}

func (m *Model) visibleFlashcards() []domain.Flashcard {
	s := m.snapshot
	return grouped(view.SelectView(s.Flashcards, subset(s.Searched, s.Found.Flashcards)))
}

func (m *Model) visibleNotes() []domain.StudyNote {
	s := m.snapshot
	return grouped(view.SelectView(s.Notes, subset(s.Searched, s.Found.Notes)))
}

func (m *Model) visibleQuizzes() []domain.Quiz {
	s := m.snapshot
	return grouped(view.SelectView(s.Quizzes, subset(s.Searched, s.Found.Quizzes)))
}

// rows returns the lines of the current tab in display order.
func (m *Model) rows() []row {
	switch m.tab {
	case TabFlashcards:
		cards := m.visibleFlashcards()
		out := make([]row, 0, len(cards))
		for _, c := range cards {
			band := view.DifficultyBand(c.Difficulty)
			out = append(out, row{id: c.ID, topic: c.Topic, text: c.Question, detail: band, band: band})
		}
		return out
	case TabNotes:
		notes := m.visibleNotes()
		out := make([]row, 0, len(notes))
		for _, n := range notes {
			out = append(out, row{id: n.ID, topic: n.Topic, text: n.Title, detail: view.Date(n.CreatedAt)})
		}
		return out
	case TabQuizzes:
		quizzes := m.visibleQuizzes()
		out := make([]row, 0, len(quizzes))
		for _, q := range quizzes {
			band := view.DifficultyBand(q.Difficulty)
			out = append(out, row{
				id:     q.ID,
				topic:  q.Topic,
				text:   view.Pluralize(len(q.Questions), "question", "questions"),
				detail: band,
				band:   band,
			})
		}
		return out
	case TabFiles:
		out := make([]row, 0, len(m.snapshot.Files))
		for _, f := range m.snapshot.Files {
			out = append(out, row{
				id:     f.ID,
				text:   f.Name,
				detail: fmt.Sprintf("%s · %s · %s", view.FileSize(f.Blob.Size), view.Date(f.UploadTime), f.UploadedBy),
			})
		}
		return out
	default:
		return nil
	}
}

func (m *Model) count(t Tab) int {
	s := m.snapshot
	switch t {
	case TabFlashcards:
		return len(view.SelectView(s.Flashcards, subset(s.Searched, s.Found.Flashcards)))
	case TabNotes:
		return len(view.SelectView(s.Notes, subset(s.Searched, s.Found.Notes)))
	case TabQuizzes:
		return len(view.SelectView(s.Quizzes, subset(s.Searched, s.Found.Quizzes)))
	case TabFiles:
		return len(s.Files)
	default:
		return 0
	}
}

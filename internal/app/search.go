package app

import (
	"context"
	"strconv"
	"strings"

	"go.trai.ch/cram/internal/core/domain"
)

// Search prints the notes, flashcards and quizzes matching term.
func (a *App) Search(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return domain.NewValidationError("term", "search term is required")
	}

	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		result, entry := w.client.Search(ctx, term)
		if err := settled(ctx, entry); err != nil {
			return err
		}
		if result.Empty() {
			printEmpty(a.out, "records", term)
			return nil
		}

		section := func(title string, n int, body func()) {
			if n == 0 {
				return
			}
			a.section(title, n)
			body()
		}
		section("Notes", len(result.Notes), func() {
			rows := make([][]string, 0, len(result.Notes))
			for _, n := range result.Notes {
				rows = append(rows, []string{n.ID, n.Topic, n.Title})
			}
			printTable(a.out, []string{"ID", "TOPIC", "TITLE"}, rows)
		})
		section("Flashcards", len(result.Flashcards), func() {
			rows := make([][]string, 0, len(result.Flashcards))
			for _, c := range result.Flashcards {
				rows = append(rows, []string{c.ID, c.Topic, c.Question})
			}
			printTable(a.out, []string{"ID", "TOPIC", "QUESTION"}, rows)
		})
		section("Quizzes", len(result.Quizzes), func() {
			rows := make([][]string, 0, len(result.Quizzes))
			for _, q := range result.Quizzes {
				rows = append(rows, []string{q.ID, q.Topic, strconv.Itoa(len(q.Questions))})
			}
			printTable(a.out, []string{"ID", "TOPIC", "QUESTIONS"}, rows)
		})
		return nil
	})
}

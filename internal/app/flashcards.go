package app

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/view"
)

// FlashcardFilter narrows a flashcard listing.
type FlashcardFilter struct {
	Topic      string
	Difficulty string
	Search     string
}

func (f FlashcardFilter) keep(c domain.Flashcard) bool {
	return (f.Topic == "" || c.Topic == f.Topic) && (f.Difficulty == "" || c.Difficulty == f.Difficulty)
}

// flashcards reads the cards selected by f.
// Topic and difficulty queries run on the backend; a search replaces the collection with its matches.
func flashcards(ctx context.Context, w *workspace, f FlashcardFilter) ([]domain.Flashcard, error) {
	var (
		cards []domain.Flashcard
		entry domain.QueryEntry
	)
	switch {
	case f.Search != "":
		var found domain.SearchResult
		found, entry = w.client.Search(ctx, f.Search)
		cards = found.Flashcards
	case f.Topic != "":
		cards, entry = w.client.FlashcardsByTopic(ctx, f.Topic)
	case f.Difficulty != "":
		cards, entry = w.client.FlashcardsByDifficulty(ctx, f.Difficulty)
	default:
		cards, entry = w.client.Flashcards(ctx)
	}
	if err := settled(ctx, entry); err != nil {
		return nil, err
	}

	out := make([]domain.Flashcard, 0, len(cards))
	for _, c := range cards {
		if f.keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListFlashcards prints flashcards grouped by topic.
func (a *App) ListFlashcards(ctx context.Context, f FlashcardFilter) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		cards, err := flashcards(ctx, w, f)
		if err != nil {
			return err
		}
		if len(cards) == 0 {
			printEmpty(a.out, "flashcards", f.Search)
			return nil
		}
		printGrouped(a.out, cards, []string{"ID", "DIFFICULTY", "QUESTION"}, func(c domain.Flashcard) []string {
			return []string{c.ID, c.Difficulty, c.Question}
		})
		return nil
	})
}

// CreateFlashcard saves a new flashcard.
func (a *App) CreateFlashcard(ctx context.Context, in domain.FlashcardInput) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		id, err := w.client.CreateFlashcard(ctx, in).Get()
		if err != nil {
			return reported(err)
		}
		_, _ = fmt.Fprintln(a.out, id)
		return nil
	})
}

// EditFlashcard replaces the fields of a flashcard. Empty fields keep their current value.
func (a *App) EditFlashcard(ctx context.Context, id string, in domain.FlashcardInput) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		card, entry := w.client.Flashcard(ctx, id)
		if err := settled(ctx, entry); err != nil {
			return err
		}
		if card == nil {
			return missing("flashcard", id)
		}

		merged := domain.FlashcardInput{
			Topic:      orDefault(in.Topic, card.Topic),
			Question:   orDefault(in.Question, card.Question),
			Answer:     orDefault(in.Answer, card.Answer),
			Difficulty: orDefault(in.Difficulty, card.Difficulty),
		}
		return reported(w.client.EditFlashcard(ctx, id, merged).Err())
	})
}

// DeleteFlashcard removes a flashcard.
func (a *App) DeleteFlashcard(ctx context.Context, id string) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		return reported(w.client.DeleteFlashcard(ctx, id).Err())
	})
}

// Study walks through the flashcards of topic, or of every topic, one card at a time.
// Enter reveals the answer and moves on; q stops.
func (a *App) Study(ctx context.Context, topic string) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		cards, err := flashcards(ctx, w, FlashcardFilter{Topic: topic})
		if err != nil {
			return err
		}

		ordered := make([]domain.Flashcard, 0, len(cards))
		for _, g := range view.GroupByTopic(cards) {
			ordered = append(ordered, g.Items...)
		}
		deck := view.NewDeck(ordered)
		if deck.Len() == 0 {
			printEmpty(a.out, "flashcards", "")
			return nil
		}

		input := bufio.NewScanner(a.in)
		studied := 0
		for {
			card, _ := deck.Current()
			_, _ = fmt.Fprintf(a.out, "[%d/%d] %s · %s\n", deck.Position(), deck.Len(), card.Topic, card.Difficulty)
			label, text := deck.Face()
			_, _ = fmt.Fprintf(a.out, "%s: %s\n", label, text)
			if !prompt(input) {
				break
			}

			deck.Flip()
			label, text = deck.Face()
			_, _ = fmt.Fprintf(a.out, "%s: %s\n\n", label, text)
			studied++

			if deck.Position() == deck.Len() || !prompt(input) {
				break
			}
			deck.Next()
		}

		_, _ = fmt.Fprintf(a.out, "Studied %d of %d.\n", studied, deck.Len())
		return nil
	})
}

// prompt waits for a line. It reports false on q or end of input.
func prompt(input *bufio.Scanner) bool {
	if !input.Scan() {
		return false
	}
	return !strings.EqualFold(strings.TrimSpace(input.Text()), "q")
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

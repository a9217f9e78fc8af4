package app

import (
	"context"
	"fmt"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/view"
)

// NoteFilter narrows a note listing.
type NoteFilter struct {
	Topic  string
	Search string
}

// ListNotes prints notes grouped by topic.
func (a *App) ListNotes(ctx context.Context, f NoteFilter) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		var (
			notes []domain.StudyNote
			entry domain.QueryEntry
		)
		switch {
		case f.Search != "":
			var found domain.SearchResult
			found, entry = w.client.Search(ctx, f.Search)
			notes = found.Notes
		case f.Topic != "":
			notes, entry = w.client.NotesByTopic(ctx, f.Topic)
		default:
			notes, entry = w.client.Notes(ctx)
		}
		if err := settled(ctx, entry); err != nil {
			return err
		}

		if f.Search != "" && f.Topic != "" {
			kept := notes[:0:0]
			for _, n := range notes {
				if n.Topic == f.Topic {
					kept = append(kept, n)
				}
			}
			notes = kept
		}
		if len(notes) == 0 {
			printEmpty(a.out, "notes", f.Search)
			return nil
		}

		printGrouped(a.out, notes, []string{"ID", "TITLE", "CREATED"}, func(n domain.StudyNote) []string {
			return []string{n.ID, n.Title, view.Date(n.CreatedAt)}
		})
		return nil
	})
}

// ShowNote prints one note in full.
func (a *App) ShowNote(ctx context.Context, id string) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		note, entry := w.client.Note(ctx, id)
		if err := settled(ctx, entry); err != nil {
			return err
		}
		if note == nil {
			return missing("note", id)
		}

		_, _ = fmt.Fprintf(a.out, "%s\n%s · %s\n\n%s\n", topicStyle.Render(note.Title), note.Topic, view.Date(note.CreatedAt), note.Content)
		return nil
	})
}

// CreateNote saves a new note and prints its ID.
func (a *App) CreateNote(ctx context.Context, in domain.NoteInput) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		id, err := w.client.CreateNote(ctx, in).Get()
		if err != nil {
			return reported(err)
		}
		_, _ = fmt.Fprintln(a.out, id)
		return nil
	})
}

// DeleteNote removes a note.
func (a *App) DeleteNote(ctx context.Context, id string) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		return reported(w.client.DeleteNote(ctx, id).Err())
	})
}

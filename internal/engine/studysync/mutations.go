package studysync

import (
	"context"
	"strings"
	"time"

	"go.trai.ch/cram/internal/core/domain"
)

// SaveProfile stores the caller's profile.
func (c *Client) SaveProfile(ctx context.Context, profile domain.UserProfile) domain.Result[struct{}] {
	profile.Name = strings.TrimSpace(profile.Name)
	return execute(ctx, c, mutation[struct{}]{
		name:    RuleSaveProfile.Mutation,
		rule:    RuleSaveProfile,
		check:   func() error { return c.validate.check(profile) },
		success: "Profile saved successfully",
		failure: "Failed to save profile",
		run: none(func(ctx context.Context) error {
			return c.backend.SaveCallerProfile(ctx, profile)
		}),
	})
}

// AssignRole sets the role of user. Only admins may succeed.
func (c *Client) AssignRole(ctx context.Context, user domain.Principal, role domain.UserRole) domain.Result[struct{}] {
	return execute(ctx, c, mutation[struct{}]{
		name: RuleAssignRole.Mutation,
		rule: RuleAssignRole,
		check: func() error {
			if user.IsAnonymous() {
				return domain.NewValidationError("user", "user must not be empty")
			}
			if !role.Valid() {
				return domain.NewValidationError("role", "role must be one of: admin, user, guest")
			}
			return nil
		},
		success: "Role assigned",
		failure: "Failed to assign role",
		run: none(func(ctx context.Context) error {
			return c.backend.AssignRole(ctx, user, role)
		}),
	})
}

// CreateFlashcard adds a flashcard and returns its id.
func (c *Client) CreateFlashcard(ctx context.Context, in domain.FlashcardInput) domain.Result[string] {
	in = trimFlashcard(in)
	return execute(ctx, c, mutation[string]{
		name:    RuleCreateFlashcard.Mutation,
		rule:    RuleCreateFlashcard,
		check:   func() error { return c.validate.check(in) },
		success: "Flashcard created successfully",
		failure: "Failed to create flashcard",
		run: func(ctx context.Context) (string, error) {
			return c.backend.CreateFlashcard(ctx, in)
		},
	})
}

// EditFlashcard replaces the editable fields of a flashcard.
func (c *Client) EditFlashcard(ctx context.Context, id string, in domain.FlashcardInput) domain.Result[struct{}] {
	id = strings.TrimSpace(id)
	in = trimFlashcard(in)
	return execute(ctx, c, mutation[struct{}]{
		name:    RuleEditFlashcard.Mutation,
		rule:    RuleEditFlashcard,
		check:   func() error { return firstErr(requireID(id), c.validate.check(in)) },
		success: "Flashcard updated successfully",
		failure: "Failed to update flashcard",
		run: none(func(ctx context.Context) error {
			return c.backend.EditFlashcard(ctx, id, in)
		}),
	})
}

// DeleteFlashcard removes a flashcard.
func (c *Client) DeleteFlashcard(ctx context.Context, id string) domain.Result[struct{}] {
	id = strings.TrimSpace(id)
	return execute(ctx, c, mutation[struct{}]{
		name:    RuleDeleteFlashcard.Mutation,
		rule:    RuleDeleteFlashcard,
		check:   func() error { return requireID(id) },
		success: "Flashcard deleted",
		failure: "Failed to delete flashcard",
		run: none(func(ctx context.Context) error {
			return c.backend.DeleteFlashcard(ctx, id)
		}),
	})
}

// CreateNote adds a note and returns its id.
func (c *Client) CreateNote(ctx context.Context, in domain.NoteInput) domain.Result[string] {
	in = trimNote(in)
	return execute(ctx, c, mutation[string]{
		name:    RuleCreateNote.Mutation,
		rule:    RuleCreateNote,
		check:   func() error { return c.validate.check(in) },
		success: "Note created successfully",
		failure: "Failed to create note",
		run: func(ctx context.Context) (string, error) {
			return c.backend.CreateNote(ctx, in)
		},
	})
}

// DeleteNote removes a note.
func (c *Client) DeleteNote(ctx context.Context, id string) domain.Result[struct{}] {
	id = strings.TrimSpace(id)
	return execute(ctx, c, mutation[struct{}]{
		name:    RuleDeleteNote.Mutation,
		rule:    RuleDeleteNote,
		check:   func() error { return requireID(id) },
		success: "Note deleted",
		failure: "Failed to delete note",
		run: none(func(ctx context.Context) error {
			return c.backend.DeleteNote(ctx, id)
		}),
	})
}

// SaveQuiz stores a quiz and returns its id.
func (c *Client) SaveQuiz(ctx context.Context, in domain.QuizInput) domain.Result[string] {
	in = trimQuiz(in)
	return execute(ctx, c, mutation[string]{
		name:    RuleSaveQuiz.Mutation,
		rule:    RuleSaveQuiz,
		check:   func() error { return firstErr(c.validate.check(in), checkAnswers(in.Questions)) },
		success: "Quiz saved successfully",
		failure: "Failed to save quiz",
		run: func(ctx context.Context) (string, error) {
			return c.backend.SaveQuiz(ctx, in.Questions, in.Topic, in.Difficulty)
		},
	})
}

// SaveAttempt records a finished quiz attempt for the caller.
// A zero timestamp is set to the current time.
func (c *Client) SaveAttempt(ctx context.Context, attempt domain.QuizAttempt) domain.Result[struct{}] {
	attempt.Topic = strings.TrimSpace(attempt.Topic)
	attempt.User = c.session.Principal()
	if attempt.Timestamp.IsZero() {
		attempt.Timestamp = time.Now().UTC()
	}
	return execute(ctx, c, mutation[struct{}]{
		name:    RuleSaveAttempt.Mutation,
		rule:    RuleSaveAttempt,
		check:   func() error { return c.validate.check(attempt) },
		success: "Quiz attempt saved",
		failure: "Failed to save quiz attempt",
		run: none(func(ctx context.Context) error {
			return c.backend.SaveAttempt(ctx, attempt)
		}),
	})
}

// SaveFileReference records an uploaded blob under a file name.
func (c *Client) SaveFileReference(ctx context.Context, in domain.FileInput) domain.Result[string] {
	return execute(ctx, c, c.saveFileReference(in))
}

// DeleteFile removes a file reference.
func (c *Client) DeleteFile(ctx context.Context, id string) domain.Result[struct{}] {
	id = strings.TrimSpace(id)
	return execute(ctx, c, mutation[struct{}]{
		name:    RuleDeleteFile.Mutation,
		rule:    RuleDeleteFile,
		check:   func() error { return requireID(id) },
		success: "File deleted",
		failure: "Failed to delete file",
		run: none(func(ctx context.Context) error {
			return c.backend.DeleteFile(ctx, id)
		}),
	})
}

func (c *Client) saveFileReference(in domain.FileInput) mutation[string] {
	in.Name = strings.TrimSpace(in.Name)
	in.FileType = strings.TrimSpace(in.FileType)
	return mutation[string]{
		name:    RuleSaveFile.Mutation,
		rule:    RuleSaveFile,
		check:   func() error { return c.validate.check(in) },
		success: "File uploaded successfully",
		failure: "Failed to upload file",
		run: func(ctx context.Context) (string, error) {
			return c.backend.SaveFileReference(ctx, in.Name, in.FileType, in.Blob)
		},
	}
}

func requireID(id string) error {
	if id == "" {
		return domain.NewValidationError("id", "id must not be empty")
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

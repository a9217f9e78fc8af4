package studysync

import "go.trai.ch/cram/internal/core/domain"

// Root segments of the query keys. Mutation rules invalidate by these prefixes.
const (
	rootProfile      = "currentUserProfile"
	rootRole         = "currentUserRole"
	rootAdmin        = "isCallerAdmin"
	rootUserProfile  = "userProfile"
	rootFlashcards   = "flashcards"
	rootNotes        = "notes"
	rootQuizzes      = "quizzes"
	rootQuizAttempts = "quizAttempts"
	rootFiles        = "files"
	rootSearch       = "search"
)

// ProfileKey identifies the caller profile query.
func ProfileKey() domain.QueryKey { return domain.NewQueryKey(rootProfile) }

// RoleKey identifies the caller role query.
func RoleKey() domain.QueryKey { return domain.NewQueryKey(rootRole) }

// AdminKey identifies the caller admin check.
func AdminKey() domain.QueryKey { return domain.NewQueryKey(rootRole, rootAdmin) }

// UserProfileKey identifies another user's profile.
func UserProfileKey(user domain.Principal) domain.QueryKey {
	return domain.NewQueryKey(rootUserProfile, user.String())
}

// FlashcardsKey identifies all flashcards.
func FlashcardsKey() domain.QueryKey { return domain.NewQueryKey(rootFlashcards) }

// FlashcardsByTopicKey identifies flashcards of one topic.
func FlashcardsByTopicKey(topic string) domain.QueryKey {
	return domain.NewQueryKey(rootFlashcards, "topic", topic)
}

// FlashcardsByDifficultyKey identifies flashcards of one difficulty.
func FlashcardsByDifficultyKey(difficulty string) domain.QueryKey {
	return domain.NewQueryKey(rootFlashcards, "difficulty", difficulty)
}

// FlashcardKey identifies a single flashcard.
func FlashcardKey(id string) domain.QueryKey { return domain.NewQueryKey(rootFlashcards, "id", id) }

// NotesKey identifies all notes.
func NotesKey() domain.QueryKey { return domain.NewQueryKey(rootNotes) }

// NotesByTopicKey identifies notes of one topic.
func NotesByTopicKey(topic string) domain.QueryKey {
	return domain.NewQueryKey(rootNotes, "topic", topic)
}

// NoteKey identifies a single note.
func NoteKey(id string) domain.QueryKey { return domain.NewQueryKey(rootNotes, "id", id) }

// QuizzesKey identifies all quizzes.
func QuizzesKey() domain.QueryKey { return domain.NewQueryKey(rootQuizzes) }

// QuizzesByTopicKey identifies quizzes of one topic.
func QuizzesByTopicKey(topic string) domain.QueryKey {
	return domain.NewQueryKey(rootQuizzes, "topic", topic)
}

// QuizKey identifies a single quiz.
func QuizKey(id string) domain.QueryKey { return domain.NewQueryKey(rootQuizzes, "id", id) }

// AttemptsKey identifies the caller's quiz attempts.
func AttemptsKey() domain.QueryKey { return domain.NewQueryKey(rootQuizAttempts) }

// FilesKey identifies all uploaded files.
func FilesKey() domain.QueryKey { return domain.NewQueryKey(rootFiles) }

// FilesByUserKey identifies the files uploaded by one user.
func FilesByUserKey(user domain.Principal) domain.QueryKey {
	return domain.NewQueryKey(rootFiles, "user", user.String())
}

// FileKey identifies a single file.
func FileKey(id string) domain.QueryKey { return domain.NewQueryKey(rootFiles, "id", id) }

// SearchKey identifies the search results for term.
func SearchKey(term string) domain.QueryKey { return domain.NewQueryKey(rootSearch, term) }

// Invalidation rules of every mutation.
var (
	RuleSaveProfile     = domain.NewInvalidationRule("saveProfile", ProfileKey(), domain.NewQueryKey(rootUserProfile))
	RuleAssignRole      = domain.NewInvalidationRule("assignRole", RoleKey())
	RuleCreateFlashcard = domain.NewInvalidationRule("createFlashcard", FlashcardsKey(), domain.NewQueryKey(rootSearch))
	RuleEditFlashcard   = domain.NewInvalidationRule("editFlashcard", FlashcardsKey(), domain.NewQueryKey(rootSearch))
	RuleDeleteFlashcard = domain.NewInvalidationRule("deleteFlashcard", FlashcardsKey(), domain.NewQueryKey(rootSearch))
	RuleCreateNote      = domain.NewInvalidationRule("createNote", NotesKey(), domain.NewQueryKey(rootSearch))
	RuleDeleteNote      = domain.NewInvalidationRule("deleteNote", NotesKey(), domain.NewQueryKey(rootSearch))
	RuleSaveQuiz        = domain.NewInvalidationRule("saveQuiz", QuizzesKey(), domain.NewQueryKey(rootSearch))
	RuleSaveAttempt     = domain.NewInvalidationRule("saveQuizAttempt", AttemptsKey())
	RuleSaveFile        = domain.NewInvalidationRule("saveFileReference", FilesKey())
	RuleDeleteFile      = domain.NewInvalidationRule("deleteFile", FilesKey())
)

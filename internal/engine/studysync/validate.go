package studysync

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/cram/internal/core/domain"
)

// inputValidator checks mutation input before any remote call.
type inputValidator struct {
	v *validator.Validate
}

func newInputValidator() *inputValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &inputValidator{v: v}
}

// check validates s and converts the first violation into a validation error.
func (iv *inputValidator) check(s any) error {
	err := iv.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Join(domain.ErrValidationFailed, err)
	}
	fe := fieldErrs[0]
	return domain.NewValidationError(fieldPath(fe), describe(fe))
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " must not be empty"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "ltefield":
		return fmt.Sprintf("%s must not exceed %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s check", fe.Field(), fe.Tag())
	}
}

func trimFlashcard(in domain.FlashcardInput) domain.FlashcardInput {
	in.Topic = strings.TrimSpace(in.Topic)
	in.Question = strings.TrimSpace(in.Question)
	in.Answer = strings.TrimSpace(in.Answer)
	in.Difficulty = strings.ToLower(strings.TrimSpace(in.Difficulty))
	return in
}

func trimNote(in domain.NoteInput) domain.NoteInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Topic = strings.TrimSpace(in.Topic)
	in.Content = strings.TrimSpace(in.Content)
	return in
}

func trimQuiz(in domain.QuizInput) domain.QuizInput {
	in.Topic = strings.TrimSpace(in.Topic)
	in.Difficulty = strings.ToLower(strings.TrimSpace(in.Difficulty))
	questions := make([]domain.QuizQuestion, len(in.Questions))
	for i, q := range in.Questions {
		q.Question = strings.TrimSpace(q.Question)
		q.CorrectAnswer = strings.TrimSpace(q.CorrectAnswer)
		q.Options = slices.Clone(q.Options)
		for j := range q.Options {
			q.Options[j] = strings.TrimSpace(q.Options[j])
		}
		if q.Topic == "" {
			q.Topic = in.Topic
		}
		if q.Difficulty == "" {
			q.Difficulty = in.Difficulty
		}
		questions[i] = q
	}
	in.Questions = questions
	return in
}

// checkAnswers requires every correct answer to be one of its options.
func checkAnswers(questions []domain.QuizQuestion) error {
	for i, q := range questions {
		if !slices.Contains(q.Options, q.CorrectAnswer) {
			return domain.NewValidationError(
				fmt.Sprintf("questions[%d].correctAnswer", i),
				"correctAnswer must be one of the options",
			)
		}
	}
	return nil
}

package app

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/view"
)

// ListQuizzes prints saved quizzes grouped by topic.
func (a *App) ListQuizzes(ctx context.Context, topic string) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		var (
			quizzes []domain.Quiz
			entry   domain.QueryEntry
		)
		if topic != "" {
			quizzes, entry = w.client.QuizzesByTopic(ctx, topic)
		} else {
			quizzes, entry = w.client.Quizzes(ctx)
		}
		if err := settled(ctx, entry); err != nil {
			return err
		}
		if len(quizzes) == 0 {
			printEmpty(a.out, "quizzes", "")
			return nil
		}

		printGrouped(a.out, quizzes, []string{"ID", "DIFFICULTY", "QUESTIONS"}, func(q domain.Quiz) []string {
			return []string{q.ID, q.Difficulty, strconv.Itoa(len(q.Questions))}
		})
		return nil
	})
}

// ImportQuiz saves the quiz described by the YAML file at path and prints its ID.
func (a *App) ImportQuiz(ctx context.Context, path string) error {
	in, err := a.configLoader.LoadQuiz(path)
	if err != nil {
		return err
	}

	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		id, err := w.client.SaveQuiz(ctx, in).Get()
		if err != nil {
			return reported(err)
		}
		_, _ = fmt.Fprintln(a.out, id)
		return nil
	})
}

// TakeQuiz asks each question of a quiz on the terminal and records the attempt.
// An answer is the option number or the option text.
func (a *App) TakeQuiz(ctx context.Context, id string) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		quiz, entry := w.client.Quiz(ctx, id)
		if err := settled(ctx, entry); err != nil {
			return err
		}
		if quiz == nil {
			return missing("quiz", id)
		}

		input := bufio.NewScanner(a.in)
		score := 0
		for i, q := range quiz.Questions {
			_, _ = fmt.Fprintf(a.out, "%d/%d %s\n", i+1, len(quiz.Questions), q.Question)
			for n, opt := range q.Options {
				_, _ = fmt.Fprintf(a.out, "  %d) %s\n", n+1, opt)
			}
			_, _ = fmt.Fprint(a.out, "> ")

			var answer string
			if input.Scan() {
				answer = chosen(q.Options, input.Text())
			}
			if answer == q.CorrectAnswer {
				score++
				_, _ = fmt.Fprintln(a.out, "Correct.")
			} else {
				_, _ = fmt.Fprintf(a.out, "Wrong. The answer is %s.\n", q.CorrectAnswer)
			}
		}

		total := len(quiz.Questions)
		_, _ = fmt.Fprintf(a.out, "Score: %d/%d (%d%%)\n", score, total, view.Percent(score, total))

		return reported(w.client.SaveAttempt(ctx, domain.QuizAttempt{
			Topic:          quiz.Topic,
			Difficulty:     quiz.Difficulty,
			Score:          score,
			TotalQuestions: total,
			Questions:      quiz.Questions,
		}).Err())
	})
}

// chosen maps a typed answer to the option it selects.
func chosen(options []string, typed string) string {
	typed = strings.TrimSpace(typed)
	if n, err := strconv.Atoi(typed); err == nil && n >= 1 && n <= len(options) {
		return options[n-1]
	}
	for _, opt := range options {
		if strings.EqualFold(opt, typed) {
			return opt
		}
	}
	return typed
}

// Attempts prints the caller's quiz history, newest first.
func (a *App) Attempts(ctx context.Context) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		attempts, entry := w.client.Attempts(ctx)
		if err := settled(ctx, entry); err != nil {
			return err
		}

		summary := view.SummarizeAttempts(attempts)
		if summary.Total == 0 {
			printEmpty(a.out, "quiz attempts", "")
			return nil
		}

		rows := make([][]string, 0, summary.Total)
		for _, at := range summary.Attempts {
			rows = append(rows, []string{
				view.Date(at.Timestamp),
				at.Topic,
				at.Difficulty,
				fmt.Sprintf("%d/%d", at.Score, at.TotalQuestions),
				fmt.Sprintf("%d%% %s", view.Percent(at.Score, at.TotalQuestions), view.ScoreBand(at.Score, at.TotalQuestions)),
			})
		}
		printTable(a.out, []string{"DATE", "TOPIC", "DIFFICULTY", "SCORE", "PERCENT"}, rows)
		_, _ = fmt.Fprintf(a.out, "Attempts: %s\n", attemptLine(summary))
		return nil
	})
}

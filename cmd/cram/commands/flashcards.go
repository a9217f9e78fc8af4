package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cram/internal/app"
	"go.trai.ch/cram/internal/core/domain"
)

func (c *CLI) newFlashcardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "flashcards",
		Aliases: []string{"cards"},
		Short:   "List, create, and study flashcards",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List flashcards grouped by topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			topic, _ := cmd.Flags().GetString("topic")
			difficulty, _ := cmd.Flags().GetString("difficulty")
			search, _ := cmd.Flags().GetString("search")
			return c.app.ListFlashcards(cmd.Context(), app.FlashcardFilter{
				Topic:      topic,
				Difficulty: difficulty,
				Search:     search,
			})
		},
	}
	list.Flags().String("topic", "", "Only show this topic")
	list.Flags().String("difficulty", "", "Only show easy, medium, or hard cards")
	list.Flags().StringP("search", "s", "", "Only show cards matching a term")

	add := &cobra.Command{
		Use:   "add",
		Short: "Create a flashcard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.CreateFlashcard(cmd.Context(), flashcardInput(cmd))
		},
	}
	flashcardFlags(add, "medium")

	edit := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a flashcard; omitted fields keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.EditFlashcard(cmd.Context(), args[0], flashcardInput(cmd))
		},
	}
	flashcardFlags(edit, "")

	study := &cobra.Command{
		Use:   "study",
		Short: "Go through flashcards one at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			topic, _ := cmd.Flags().GetString("topic")
			return c.app.Study(cmd.Context(), topic)
		},
	}
	study.Flags().String("topic", "", "Only study this topic")

	cmd.AddCommand(list, add, edit, study)
	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a flashcard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.DeleteFlashcard(cmd.Context(), args[0])
		},
	})
	return cmd
}

func flashcardFlags(cmd *cobra.Command, difficulty string) {
	cmd.Flags().String("topic", "", "Topic the card belongs to")
	cmd.Flags().StringP("question", "q", "", "Question side")
	cmd.Flags().StringP("answer", "a", "", "Answer side")
	cmd.Flags().StringP("difficulty", "d", difficulty, "Difficulty: easy, medium, or hard")
}

func flashcardInput(cmd *cobra.Command) domain.FlashcardInput {
	topic, _ := cmd.Flags().GetString("topic")
	question, _ := cmd.Flags().GetString("question")
	answer, _ := cmd.Flags().GetString("answer")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	return domain.FlashcardInput{
		Topic:      topic,
		Question:   question,
		Answer:     answer,
		Difficulty: difficulty,
	}
}

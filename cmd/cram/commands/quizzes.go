package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newQuizzesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quizzes",
		Short: "Import, take, and review quizzes",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List quizzes grouped by topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			topic, _ := cmd.Flags().GetString("topic")
			return c.app.ListQuizzes(cmd.Context(), topic)
		},
	}
	list.Flags().String("topic", "", "Only show this topic")

	cmd.AddCommand(list)
	cmd.AddCommand(&cobra.Command{
		Use:   "import FILE",
		Short: "Save the quiz described by a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.ImportQuiz(cmd.Context(), args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "take ID",
		Short: "Answer a quiz and record the score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.TakeQuiz(cmd.Context(), args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "attempts",
		Short: "Show your quiz history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Attempts(cmd.Context())
		},
	})
	return cmd
}

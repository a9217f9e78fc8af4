package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search TERM...",
		Short: "Search notes, flashcards, and quizzes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Search(cmd.Context(), strings.Join(args, " "))
		},
	}
}

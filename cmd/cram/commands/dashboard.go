package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cram/internal/app"
)

func (c *CLI) newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the study dashboard",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tab, _ := cmd.Flags().GetString("tab")
			search, _ := cmd.Flags().GetString("search")
			return c.app.Dashboard(cmd.Context(), app.DashboardOptions{Tab: tab, Search: search})
		},
	}
	cmd.Flags().StringP("tab", "t", "flashcards", "Tab to open: flashcards, notes, quizzes, or files")
	cmd.Flags().StringP("search", "s", "", "Start with a search term")
	return cmd
}

package commands

import (
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cram/internal/app"
	"go.trai.ch/cram/internal/core/domain"
)

func (c *CLI) newNotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "List, read, and write study notes",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List notes grouped by topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			topic, _ := cmd.Flags().GetString("topic")
			search, _ := cmd.Flags().GetString("search")
			return c.app.ListNotes(cmd.Context(), app.NoteFilter{Topic: topic, Search: search})
		},
	}
	list.Flags().String("topic", "", "Only show this topic")
	list.Flags().StringP("search", "s", "", "Only show notes matching a term")

	add := &cobra.Command{
		Use:   "add",
		Short: "Create a note",
		Long:  "Create a note. With --content - the body is read from standard input.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title, _ := cmd.Flags().GetString("title")
			topic, _ := cmd.Flags().GetString("topic")
			content, _ := cmd.Flags().GetString("content")
			if content == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				content = string(data)
			}
			return c.app.CreateNote(cmd.Context(), domain.NoteInput{Title: title, Topic: topic, Content: content})
		},
	}
	add.Flags().String("title", "", "Note title")
	add.Flags().String("topic", "", "Topic the note belongs to")
	add.Flags().String("content", "", "Note body, or - to read standard input")

	cmd.AddCommand(list, add)
	cmd.AddCommand(&cobra.Command{
		Use:   "show ID",
		Short: "Print a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.ShowNote(cmd.Context(), args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.DeleteNote(cmd.Context(), args[0])
		},
	})
	return cmd
}

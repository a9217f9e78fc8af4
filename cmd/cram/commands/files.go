package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Upload and manage study files",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List uploaded files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mine, _ := cmd.Flags().GetBool("mine")
			return c.app.ListFiles(cmd.Context(), mine)
		},
	}
	list.Flags().Bool("mine", false, "Only show files you uploaded")

	upload := &cobra.Command{
		Use:   "upload [PATH...]",
		Short: "Upload files, optionally re-uploading a directory as it changes",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			watch, _ := cmd.Flags().GetString("watch")
			if len(args) == 0 && watch == "" {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.UploadFiles(cmd.Context(), args, watch)
		},
	}
	upload.Flags().StringP("watch", "w", "", "Keep uploading changed files under this directory until interrupted")

	cmd.AddCommand(list, upload)
	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a file reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.DeleteFile(cmd.Context(), args[0])
		},
	})
	return cmd
}

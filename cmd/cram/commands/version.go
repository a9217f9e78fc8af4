package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/cram/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the cram version",
		Args:  cobra.NoArgs,
		// Runs without a config file.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if short {
				_, err := fmt.Fprintln(out, build.Version)
				return err
			}
			_, err := fmt.Fprintf(out, "cram %s (commit %s, built %s)\n", build.Version, build.Commit, build.Date)
			return err
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cram/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an in-memory study backend for development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listen, _ := cmd.Flags().GetString("listen")
			idle, _ := cmd.Flags().GetDuration("idle-timeout")
			return c.app.Serve(cmd.Context(), app.ServeOptions{Listen: listen, IdleTimeout: idle})
		},
	}
	cmd.Flags().String("listen", "", "Address to listen on, host:port or unix:///path (default from config)")
	cmd.Flags().Duration("idle-timeout", 0, "Stop after this long without calls; 0 runs until interrupted")
	return cmd
}

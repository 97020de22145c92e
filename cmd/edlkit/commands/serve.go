// SPDX-License-Identifier: MIT
package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"edlkit/internal/api"
)

// serve: run the HTTP API until interrupted.
func serveCmd() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the edlkit HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen != "" {
				cfg.Listen = listen
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return api.New(cfg).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config)")
	return cmd
}

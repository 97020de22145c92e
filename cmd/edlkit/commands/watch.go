// SPDX-License-Identifier: MIT
package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"edlkit/internal/watch"
)

// watch: ingest EDL files dropped into a directory.
func watchCmd() *cobra.Command {
	var dir, out string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a drop folder and write JSON results for new EDL files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir != "" {
				cfg.WatchDir = dir
			}
			if out != "" {
				cfg.OutputDir = out
			}
			w, err := watch.New(cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return w.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory to watch (default from config)")
	cmd.Flags().StringVar(&out, "out", "", "directory for JSON results (default from config)")
	return cmd
}

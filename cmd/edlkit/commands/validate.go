// SPDX-License-Identifier: MIT
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"edlkit/internal/edl"
)

// validate FILE...: exit non-zero on the first file that fails to parse.
func validateCmd() *cobra.Command {
	var fps float64
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that EDL files parse cleanly",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, proc, err := parserSetup(fps, "")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, path := range args {
				list, err := edl.ParseFile(cmd.Context(), path,
					edl.WithRate(rate),
					edl.WithVisitor(proc.Process),
				)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "ok  %s (%d edits)\n", path, len(list.Edits))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&fps, "fps", 0, "frames per second (default from config)")
	return cmd
}

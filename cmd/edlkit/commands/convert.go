// SPDX-License-Identifier: MIT
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"edlkit/internal/timecode"
)

// convert VALUE: convert between timecode strings and frame numbers.
func convertCmd() *cobra.Command {
	var fps float64
	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert a hh:mm:ss:ff timecode or frame number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps == 0 {
				fps = cfg.FrameRate
			}
			rate, err := timecode.NewRateFromFloat(fps)
			if err != nil {
				return err
			}
			tc, err := timecode.Parse(args[0], rate)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "timecode  %s\n", tc)
			fmt.Fprintf(out, "frame     %d\n", tc.Frame())
			fmt.Fprintf(out, "seconds   %s\n", tc.Seconds())
			fmt.Fprintf(out, "fps       %s\n", rate)
			return nil
		},
	}
	cmd.Flags().Float64Var(&fps, "fps", 0, "frames per second (default from config)")
	return cmd
}

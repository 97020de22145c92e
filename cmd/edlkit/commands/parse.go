// SPDX-License-Identifier: MIT
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"edlkit/internal/edl"
	"edlkit/internal/timecode"
)

// parse FILE...: parse EDL files and print their edits.
func parseCmd() *cobra.Command {
	var (
		fps        float64
		shotRegexp string
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Parse EDL files and print their edits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, proc, err := parserSetup(fps, shotRegexp)
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
				if asJSON {
					data, err := json.MarshalIndent(list, "", "  ")
					if err != nil {
						return err
					}
					fmt.Fprintln(out, string(data))
					continue
				}
				if list.Title != "" {
					fmt.Fprintf(out, "TITLE: %s\n", list.Title)
				}
				for _, e := range list.Edits {
					fmt.Fprintf(out, "%03d  %-24s %s %s  %s %s",
						e.ID, e.Reel, e.SourceIn, e.SourceOut, e.RecordIn, e.RecordOut)
					if e.ShotName != "" {
						fmt.Fprintf(out, "  shot=%s version=%s", e.ShotName, e.Version)
					}
					fmt.Fprintln(out)
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&fps, "fps", 0, "frames per second (default from config)")
	cmd.Flags().StringVar(&shotRegexp, "shot-regexp", "", "regexp extracting shot fields from clip names")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full edit list as JSON")
	return cmd
}

// parserSetup resolves the effective rate and processor from flags and config.
func parserSetup(fps float64, shotRegexp string) (timecode.Rate, *edl.Processor, error) {
	if fps == 0 {
		fps = cfg.FrameRate
	}
	rate, err := timecode.NewRateFromFloat(fps)
	if err != nil {
		return timecode.Rate{}, nil, err
	}
	if shotRegexp == "" {
		shotRegexp = cfg.ShotRegexp
	}
	proc, err := edl.NewProcessor(shotRegexp)
	if err != nil {
		return timecode.Rate{}, nil, err
	}
	return rate, proc, nil
}

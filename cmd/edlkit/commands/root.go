// SPDX-License-Identifier: MIT

// Package commands defines the edlkit command tree.
package commands

import (
	"github.com/spf13/cobra"

	"edlkit/internal/config"
	"edlkit/internal/log"
)

var (
	cfgPath  string
	logLevel string

	cfg config.Config
)

// Execute runs the edlkit CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Exported for tests.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "edlkit",
		Short:        "Editorial toolkit: parse CMX 3600 EDLs and convert timecodes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Configure(log.Config{Level: logLevel})
			c, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if logLevel == "" && c.LogLevel != "" {
				log.SetLevel(c.LogLevel)
			}
			cfg = c
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (YAML)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		parseCmd(),
		convertCmd(),
		validateCmd(),
		serveCmd(),
		watchCmd(),
		versionCmd(),
	)
	return root
}

// Package cli wires the lychrel commands.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lychrel/internal/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug   bool
		logFile string
		cleanup func() error
	)

	cmd := &cobra.Command{
		Use:          "lychrel",
		Short:        "Reverse-and-add threads and Lychrel candidates in any base up to 61",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			cfg := logger.Config{Path: logFile, Debug: debug, Writer: io.Discard}
			if debug && logFile == "" {
				cfg.Writer = c.ErrOrStderr()
			}
			var err error
			cleanup, err = logger.Setup(cfg)
			return err
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup == nil {
				return nil
			}
			return cleanup()
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging (stderr unless --log-file is set)")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append JSON logs to this file")

	cmd.AddCommand(
		threadCmd(),
		checkCmd(),
		seedsCmd(),
		searchCmd(),
		runCmd(),
		graphCmd(),
		versionCmd(),
	)
	return cmd
}

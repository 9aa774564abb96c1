package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lychrel/internal/batch"
	"github.com/katalvlaran/lychrel/internal/config"
	"github.com/katalvlaran/lychrel/internal/logger"
	"github.com/katalvlaran/lychrel/internal/telemetry"
)

func runCmd() *cobra.Command {
	var path string

	c := &cobra.Command{
		Use:   "run",
		Short: "Run a search described by a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := config.LoadRun(path)
			if err != nil {
				return err
			}

			// The run file's logging section applies unless flags already chose a file.
			if run.Logging.File != "" && logger.Path() == "" {
				cleanup, err := logger.Setup(logger.Config{Path: run.Logging.File, Debug: run.Logging.Debug})
				if err != nil {
					return err
				}
				defer func() { _ = cleanup() }()
			}

			return executeRun(cmd, run)
		},
	}

	c.Flags().StringVarP(&path, "config", "c", "", "run file (required)")
	_ = c.MarkFlagRequired("config")
	return c
}

// executeRun is shared by run and search.
func executeRun(cmd *cobra.Command, run config.Run) error {
	ctx := cmd.Context()
	tp, err := telemetry.New(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() { _ = tp.Shutdown(ctx) }()

	rep, err := batch.Execute(ctx, run, batch.Deps{
		Logger: logger.L(),
		Tracer: tp.Tracer(),
	})
	if err != nil {
		return err
	}

	logPath := ""
	if logger.IsReady() == nil {
		logPath = logger.Path()
	}
	printReport(cmd.OutOrStdout(), rep, logPath)
	return nil
}

package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lychrel/internal/batch"
	"github.com/katalvlaran/lychrel/internal/logger"
	"github.com/katalvlaran/lychrel/threadgraph"
)

func graphCmd() *cobra.Command {
	var (
		out      string
		reach    string
		maxSteps int
	)

	c := &cobra.Command{
		Use:   "graph <threads.txt>",
		Short: "Convert a thread file into a GraphML merge graph",
		Example: `  lychrel graph seq_base_10.txt
  lychrel graph seq_base_10.txt --reach 1675   # seeds whose thread passes 1675`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			g, err := batch.LoadGraph(in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if reach != "" {
				return printFeeders(cmd, g, reach, maxSteps)
			}

			if out == "" {
				out = strings.TrimSuffix(in, filepath.Ext(in)) + ".graphml"
			}
			if err := batch.WriteGraph(g, out); err != nil {
				return err
			}
			logger.L().Info("graph.written", "in", in, "out", out,
				"vertices", g.VertexCount(), "edges", g.EdgeCount())
			fmt.Fprintln(w, out)
			return nil
		},
	}

	c.Flags().StringVarP(&out, "output", "o", "", "GraphML file (default: input with .graphml)")
	c.Flags().StringVar(&reach, "reach", "", "list the seeds whose thread passes through this value instead of writing GraphML")
	c.Flags().IntVar(&maxSteps, "max-steps", 0, "with --reach, only seeds at most this many steps away (0: no limit)")
	return c
}

// printFeeders writes one "<seed>\t<steps>" line per feeding seed.
func printFeeders(cmd *cobra.Command, g *threadgraph.Graph, value string, maxSteps int) error {
	feeders, err := batch.Feeders(g, value, maxSteps)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, f := range feeders {
		fmt.Fprintf(w, "%s\t%d\n", f.Seed, f.Steps)
	}
	logger.L().Debug("graph.reach", "value", value, "seeds", len(feeders))
	return nil
}

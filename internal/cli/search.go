package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lychrel/internal/config"
	"github.com/katalvlaran/lychrel/lychrel"
)

func searchCmd() *cobra.Command {
	var (
		name    string
		start   string
		bases   string
		depth   int
		workers int
		out     config.YAMLOutput
		stop    stopFlags
	)

	c := &cobra.Command{
		Use:   "search",
		Short: "Search one or more bases for Lychrel candidates",
		Example: `  lychrel search --bases 10 --count 998 --depth 500
  lychrel search --bases 2-16 --min-digits 5 --workers 8 --candidates --density`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := parseBases(bases)
			if err != nil {
				return err
			}
			yr := config.YAMLRun{
				Name:    name,
				Bases:   list,
				Start:   start,
				Depth:   depth,
				Workers: workers,
				Output:  out,
			}
			stop.apply(cmd, &yr)

			run, err := config.MapRun("flags", yr)
			if err != nil {
				return err
			}
			return executeRun(cmd, run)
		},
	}

	c.Flags().StringVar(&name, "name", "search", "run name, used in the output directory")
	c.Flags().StringVar(&start, "start", config.DefaultStart, "first seed")
	c.Flags().StringVar(&bases, "bases", "10", `bases to search, e.g. "2-10" or "10,16"`)
	c.Flags().IntVarP(&depth, "depth", "d", lychrel.DefaultBatchDepth, "maximum reverse-add steps")
	c.Flags().IntVarP(&workers, "workers", "j", config.DefaultWorkers, "parallel workers per base")
	c.Flags().StringVarP(&out.Dir, "out", "o", config.DefaultDir, "artefact directory")
	c.Flags().BoolVar(&out.Threads, "threads", false, "write thread files")
	c.Flags().BoolVar(&out.GraphML, "graphml", false, "write GraphML for each thread file (needs --threads)")
	c.Flags().BoolVar(&out.Candidates, "candidates", false, "write the candidate list")
	c.Flags().BoolVar(&out.Density, "density", false, "write candidates per base as CSV")
	stop.register(c)
	return c
}

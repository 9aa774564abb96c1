package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lychrel/lychrel"
	"github.com/katalvlaran/lychrel/number"
)

func checkCmd() *cobra.Command {
	var base, depth, workers int

	c := &cobra.Command{
		Use:   "check <digits>...",
		Short: "Classify one or more seeds",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := make([]number.Number, 0, len(args))
			for _, a := range args {
				n, err := number.New(a, base)
				if err != nil {
					return err
				}
				list = append(list, n)
			}

			results, err := lychrel.ClassifyAll(list, depth, lychrel.WithWorkers(workers))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			t := newTheme(w)
			for _, r := range results {
				fmt.Fprintf(w, "%s  %s\n", t.Title.Render(r.Seed.Digits()), verdict(t, r, depth))
			}
			return nil
		},
	}

	c.Flags().IntVarP(&base, "base", "b", 10, "numeral base (2..61)")
	c.Flags().IntVarP(&depth, "depth", "d", lychrel.DefaultDepth, "maximum reverse-add steps")
	c.Flags().IntVarP(&workers, "workers", "j", 1, "parallel workers")
	return c
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lychrel/internal/logger"
	"github.com/katalvlaran/lychrel/lychrel"
	"github.com/katalvlaran/lychrel/number"
)

func threadCmd() *cobra.Command {
	var base, depth int

	c := &cobra.Command{
		Use:   "thread <digits>",
		Short: "Print the reverse-and-add thread of one seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := number.New(args[0], base)
			if err != nil {
				return err
			}
			th, err := lychrel.NewThread(seed, depth)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			t := newTheme(w)
			fmt.Fprintln(w, t.Title.Render(seed.Digits()))
			for v := range th.All() {
				fmt.Fprintln(w, v.Digits())
			}
			if err := th.Err(); err != nil {
				return err
			}

			logger.L().Debug("thread.done", "seed", seed.Digits(), "base", base,
				"outcome", th.Outcome().String(), "iterations", th.Iterations())
			fmt.Fprintln(w, verdict(t, lychrel.Result{Seed: seed, Outcome: th.Outcome(), Iterations: th.Iterations()}, depth))
			return nil
		},
	}

	c.Flags().IntVarP(&base, "base", "b", 10, "numeral base (2..61)")
	c.Flags().IntVarP(&depth, "depth", "d", lychrel.DefaultDepth, "maximum reverse-add steps")
	return c
}

func verdict(t theme, r lychrel.Result, depth int) string {
	if r.Candidate() {
		return t.Candidate.Render(fmt.Sprintf("no palindrome within %d steps: Lychrel candidate", depth))
	}
	return t.Resolved.Render(fmt.Sprintf("palindrome after %d steps", r.Iterations))
}

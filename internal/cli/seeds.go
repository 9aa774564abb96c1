package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lychrel/seeds"
)

func seedsCmd() *cobra.Command {
	var (
		base int
		stop stopFlags
	)

	c := &cobra.Command{
		Use:   "seeds <start>",
		Short: "List consecutive seeds from start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cond, err := stop.condition(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for n, err := range seeds.Seq(args[0], base, cond) {
				if err != nil {
					return err
				}
				fmt.Fprintln(w, n.Digits())
			}
			return nil
		},
	}

	c.Flags().IntVarP(&base, "base", "b", 10, "numeral base (2..61)")
	stop.register(c)
	return c
}

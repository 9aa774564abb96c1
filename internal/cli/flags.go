package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lychrel/internal/config"
	"github.com/katalvlaran/lychrel/seeds"
)

// stopFlags collects the three mutually exclusive seed stop conditions.
type stopFlags struct {
	count     int
	minDigits int
	target    string
}

func (s *stopFlags) register(c *cobra.Command) {
	c.Flags().IntVar(&s.count, "count", 0, "stop after this many increments")
	c.Flags().IntVar(&s.minDigits, "min-digits", 0, "stop once a seed has this many digits")
	c.Flags().StringVar(&s.target, "target", "", "stop at this seed (inclusive)")
	c.MarkFlagsMutuallyExclusive("count", "min-digits", "target")
	c.MarkFlagsOneRequired("count", "min-digits", "target")
}

// apply copies the flags that were set into the run DTO.
func (s *stopFlags) apply(c *cobra.Command, yr *config.YAMLRun) {
	if c.Flags().Changed("count") {
		n := s.count
		yr.Count = &n
	}
	if c.Flags().Changed("min-digits") {
		n := s.minDigits
		yr.MinDigits = &n
	}
	yr.Target = s.target
}

func (s *stopFlags) condition(c *cobra.Command) (seeds.StopCondition, error) {
	switch {
	case c.Flags().Changed("count"):
		return seeds.Count(s.count), nil
	case c.Flags().Changed("min-digits"):
		return seeds.MinDigits(s.minDigits), nil
	case s.target != "":
		return seeds.Target(s.target), nil
	}
	return seeds.StopCondition{}, seeds.ErrNoStopCondition
}

// parseBases accepts comma separated bases and inclusive ranges,
// e.g. "2-10", "10,16" or "2-4,16".
func parseBases(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		from, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("bases: %q is not a number", lo)
		}
		to := from
		if isRange {
			if to, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
				return nil, fmt.Errorf("bases: %q is not a number", hi)
			}
			if from > to {
				return nil, fmt.Errorf("bases: range %q is reversed", part)
			}
		}
		for b := from; b <= to; b++ {
			out = append(out, b)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("bases: none given")
	}
	return out, nil
}

package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/lychrel/alphabet"
	"github.com/katalvlaran/lychrel/number"
	"github.com/katalvlaran/lychrel/seeds"
)

// MapRun validates a decoded run file. Field names in errors follow the
// YAML keys so users can find them.
func MapRun(path string, yr YAMLRun) (Run, error) {
	run := Run{
		Name:    strings.TrimSpace(yr.Name),
		Path:    path,
		Start:   strings.TrimSpace(yr.Start),
		Depth:   yr.Depth,
		Workers: yr.Workers,
		Output: Output{
			Dir:        yr.Output.Dir,
			Threads:    yr.Output.Threads,
			GraphML:    yr.Output.GraphML,
			Candidates: yr.Output.Candidates,
			Density:    yr.Output.Density,
		},
		Logging: Logging{File: yr.Logging.File, Debug: yr.Logging.Debug},
	}
	if run.Name == "" {
		run.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if run.Start == "" {
		run.Start = DefaultStart
	}
	if run.Depth == 0 {
		run.Depth = DefaultDepth
	}
	if run.Depth < 0 {
		return Run{}, invalidField(path, "depth", "must be positive")
	}
	if run.Workers == 0 {
		run.Workers = DefaultWorkers
	}
	if run.Workers < 0 {
		return Run{}, invalidField(path, "workers", "must be positive")
	}
	if run.Output.Dir == "" {
		run.Output.Dir = DefaultDir
	}
	if run.Output.GraphML && !run.Output.Threads {
		return Run{}, invalidField(path, "output.graphml", "requires output.threads")
	}

	bases, err := mapBases(path, yr)
	if err != nil {
		return Run{}, err
	}
	run.Bases = bases

	stop, err := mapStop(path, yr)
	if err != nil {
		return Run{}, err
	}
	run.Stop = stop

	target := strings.TrimSpace(yr.Target)
	for _, b := range run.Bases {
		if _, err := number.New(run.Start, b); err != nil {
			return Run{}, invalidField(path, "start", fmt.Sprintf("%q in base %d: %v", run.Start, b, err))
		}
		if target != "" {
			if _, err := number.New(target, b); err != nil {
				return Run{}, invalidField(path, "target", fmt.Sprintf("%q in base %d: %v", target, b, err))
			}
		}
	}

	return run, nil
}

func mapBases(path string, yr YAMLRun) ([]int, error) {
	if len(yr.Bases) > 0 && yr.BaseRange != nil {
		return nil, invalidField(path, "bases", "use either bases or base_range")
	}

	var bases []int
	switch {
	case len(yr.Bases) > 0:
		bases = append(bases, yr.Bases...)
	case yr.BaseRange != nil:
		if yr.BaseRange.From > yr.BaseRange.To {
			return nil, invalidField(path, "base_range", "from must not exceed to")
		}
		for b := yr.BaseRange.From; b <= yr.BaseRange.To; b++ {
			bases = append(bases, b)
		}
	default:
		return nil, invalidField(path, "bases", "at least one base is required")
	}

	maxBase := alphabet.Default().Size()
	seen := make(map[int]bool, len(bases))
	out := bases[:0]
	for _, b := range bases {
		if b < 2 || b >= maxBase {
			return nil, invalidField(path, "bases", fmt.Sprintf("%d not in [2,%d)", b, maxBase))
		}
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	sort.Ints(out)

	return out, nil
}

func mapStop(path string, yr YAMLRun) (seeds.StopCondition, error) {
	set := 0
	var stop seeds.StopCondition
	if yr.Count != nil {
		set++
		if *yr.Count < 0 {
			return stop, invalidField(path, "count", "must be non-negative")
		}
		stop = seeds.Count(*yr.Count)
	}
	if yr.MinDigits != nil {
		set++
		if *yr.MinDigits < 1 {
			return stop, invalidField(path, "min_digits", "must be at least 1")
		}
		stop = seeds.MinDigits(*yr.MinDigits)
	}
	if strings.TrimSpace(yr.Target) != "" {
		set++
		stop = seeds.Target(strings.TrimSpace(yr.Target))
	}
	if set != 1 {
		return seeds.StopCondition{}, invalidField(path, "count|min_digits|target", "exactly one stop condition is required")
	}

	return stop, nil
}

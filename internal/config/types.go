package config

import (
	"github.com/katalvlaran/lychrel/lychrel"
	"github.com/katalvlaran/lychrel/seeds"
)

// DefaultStart is the seed range start used when a run file omits it.
const DefaultStart = "1"

// Run is a validated batch description: for every base, enumerate seeds
// from Start until Stop, classify them with Depth, and write the selected
// artefacts under Output.Dir.
type Run struct {
	Name    string
	Path    string
	Bases   []int
	Start   string
	Stop    seeds.StopCondition
	Depth   int
	Workers int
	Output  Output
	Logging Logging
}

// Output lists the artefacts of a run.
type Output struct {
	Dir        string
	Threads    bool
	GraphML    bool
	Candidates bool
	Density    bool
}

// Logging mirrors logger.Config without importing it.
type Logging struct {
	File  string
	Debug bool
}

// Defaults used by MapRun for omitted fields.
const (
	DefaultDepth   = lychrel.DefaultBatchDepth
	DefaultWorkers = 1
	DefaultDir     = "results"
)

// Package batch runs a configured Lychrel search across several bases and
// writes its artefacts.
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/lychrel/export"
	"github.com/katalvlaran/lychrel/internal/config"
	"github.com/katalvlaran/lychrel/internal/telemetry"
	"github.com/katalvlaran/lychrel/lychrel"
	"github.com/katalvlaran/lychrel/number"
	"github.com/katalvlaran/lychrel/seeds"
	"github.com/katalvlaran/lychrel/threadgraph"
)

// Deps are the collaborators of Execute. Nil fields fall back to discard
// implementations.
type Deps struct {
	Logger *slog.Logger
	Tracer oteltrace.Tracer
	// NewID returns the run identifier; uuid.NewString when nil.
	NewID func() string
	// Now returns the current time; time.Now when nil.
	Now func() time.Time
}

// BaseReport summarises one base.
type BaseReport struct {
	Base          int
	Seeds         int
	Candidates    []string
	Palindromes   int
	MaxIterations int // longest thread that reached a palindrome
	MaxSeed       string
	Files         []string
}

// Report summarises a run.
type Report struct {
	RunID     string
	Name      string
	Dir       string // empty when no artefact was requested
	Depth     int
	Stop      string
	Bases     []BaseReport
	StartedAt time.Time
	EndedAt   time.Time
}

// Density returns one row per base, in run order.
func (r Report) Density() []export.DensityRow {
	rows := make([]export.DensityRow, 0, len(r.Bases))
	for _, b := range r.Bases {
		rows = append(rows, export.DensityRow{Base: b.Base, Candidates: len(b.Candidates)})
	}
	return rows
}

// Execute classifies the seeds of every base in run and writes the
// requested artefacts. Cancellation is checked between bases; a base in
// progress always runs to completion.
func Execute(ctx context.Context, run config.Run, deps Deps) (Report, error) {
	deps = withDefaults(deps)
	log := deps.Logger

	rep := Report{
		RunID:     deps.NewID(),
		Name:      run.Name,
		Depth:     run.Depth,
		Stop:      run.Stop.String(),
		StartedAt: deps.Now(),
	}

	ctx, span := deps.Tracer.Start(ctx, "lychrel.run",
		oteltrace.WithAttributes(
			telemetry.KeyRunID.String(rep.RunID),
			telemetry.KeyDepth.Int(run.Depth),
			telemetry.KeyWorkers.Int(run.Workers),
		))
	defer span.End()

	if wantsFiles(run.Output) {
		rep.Dir = filepath.Join(run.Output.Dir, fmt.Sprintf("%s-%s", run.Name, shortID(rep.RunID)))
		if err := os.MkdirAll(rep.Dir, 0o755); err != nil {
			return rep, ioError("batch.mkdir", rep.Dir, err)
		}
	}

	log.Info("run.start", "run_id", rep.RunID, "name", run.Name, "bases", run.Bases,
		"start", run.Start, "stop", rep.Stop, "depth", run.Depth, "workers", run.Workers)

	for _, base := range run.Bases {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return rep, err
		}
		br, err := runBase(ctx, run, base, rep.Dir, deps)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			log.Error("base.failed", "base", base, "err", err)
			return rep, err
		}
		rep.Bases = append(rep.Bases, br)
	}

	if run.Output.Density {
		path := filepath.Join(rep.Dir, "density.csv")
		var buf bytes.Buffer
		if err := export.WriteDensityCSV(&buf, rep.Density()); err != nil {
			return rep, err
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return rep, ioError("batch.write_density", path, err)
		}
	}

	rep.EndedAt = deps.Now()
	log.Info("run.done", "run_id", rep.RunID, "dir", rep.Dir, "elapsed", rep.EndedAt.Sub(rep.StartedAt).String())

	return rep, nil
}

func runBase(ctx context.Context, run config.Run, base int, dir string, deps Deps) (BaseReport, error) {
	_, span := deps.Tracer.Start(ctx, "lychrel.base",
		oteltrace.WithAttributes(telemetry.KeyBase.Int(base), telemetry.KeyDepth.Int(run.Depth)))
	defer span.End()

	list, err := seeds.Generate(run.Start, base, run.Stop)
	if err != nil {
		return BaseReport{}, fmt.Errorf("base %d: %w", base, err)
	}
	deps.Logger.Debug("base.seeds", "base", base, "count", len(list))

	results, err := lychrel.ClassifyAll(list, run.Depth, lychrel.WithWorkers(run.Workers))
	if err != nil {
		return BaseReport{}, fmt.Errorf("base %d: %w", base, err)
	}

	br := BaseReport{Base: base, Seeds: len(list), Candidates: make([]string, 0)}
	for _, r := range results {
		if r.Candidate() {
			br.Candidates = append(br.Candidates, r.Seed.Digits())
			continue
		}
		br.Palindromes++
		if r.Iterations > br.MaxIterations {
			br.MaxIterations, br.MaxSeed = r.Iterations, r.Seed.Digits()
		}
	}
	span.SetAttributes(telemetry.KeySeeds.Int(br.Seeds), telemetry.KeyCandidates.Int(len(br.Candidates)))
	deps.Logger.Info("base.done", "base", base, "seeds", br.Seeds, "candidates", len(br.Candidates),
		"max_iterations", br.MaxIterations, "max_seed", br.MaxSeed)

	if run.Output.Candidates {
		path := filepath.Join(dir, "candidates.txt")
		if err := appendFile(path, func(w io.Writer) error {
			return export.WriteCandidates(w, base, br.Candidates)
		}); err != nil {
			return br, err
		}
		br.Files = appendOnce(br.Files, path)
	}
	if run.Output.Threads {
		files, err := writeThreadArtefacts(run, base, dir, list)
		if err != nil {
			return br, err
		}
		br.Files = append(br.Files, files...)
	}

	return br, nil
}

// writeThreadArtefacts writes the thread file and, when requested, the
// GraphML conversion read back from it.
func writeThreadArtefacts(run config.Run, base int, dir string, list []number.Number) ([]string, error) {
	seqPath := filepath.Join(dir, fmt.Sprintf("seq_base_%d.txt", base))
	if err := createFile(seqPath, func(w io.Writer) error {
		_, err := export.WriteThreads(w, list, run.Depth)
		return err
	}); err != nil {
		return nil, err
	}
	files := []string{seqPath}
	if !run.Output.GraphML {
		return files, nil
	}

	gmlPath := filepath.Join(dir, fmt.Sprintf("seq_base_%d.graphml", base))
	if err := ConvertGraph(seqPath, gmlPath); err != nil {
		return nil, err
	}

	return append(files, gmlPath), nil
}

// ConvertGraph reads a thread file and writes its merge graph as GraphML.
func ConvertGraph(threadsPath, graphPath string) error {
	g, err := LoadGraph(threadsPath)
	if err != nil {
		return err
	}

	return WriteGraph(g, graphPath)
}

// WriteGraph writes g as GraphML to path.
func WriteGraph(g *threadgraph.Graph, path string) error {
	return createFile(path, func(w io.Writer) error { return threadgraph.WriteGraphML(w, g) })
}

// LoadGraph reads a thread file into its merge graph.
func LoadGraph(threadsPath string) (*threadgraph.Graph, error) {
	f, err := os.Open(threadsPath)
	if err != nil {
		return nil, ioError("batch.open_threads", threadsPath, err)
	}
	defer f.Close()

	threads, err := export.ReadThreads(f)
	if err != nil {
		kind := config.KindIO
		if errors.Is(err, export.ErrMalformedThread) {
			kind = config.KindMalformed
		}
		return nil, &config.OpError{Op: "batch.read_threads", Kind: kind, Path: threadsPath, Err: err}
	}
	g, err := threadgraph.FromThreads(threads)
	if err != nil {
		return nil, &config.OpError{Op: "batch.build_graph", Kind: config.KindMalformed, Path: threadsPath, Err: err}
	}

	return g, nil
}

// Feeder is a seed whose thread reaches some value after Steps reverse-adds.
type Feeder struct {
	Seed  string
	Steps int
}

// Feeders lists the seeds of g whose threads pass through value, nearest
// first. maxSteps > 0 limits how far back the walk goes.
func Feeders(g *threadgraph.Graph, value string, maxSteps int) ([]Feeder, error) {
	res, err := threadgraph.Reach(g, value, threadgraph.WithMaxDepth(maxSteps))
	if err != nil {
		return nil, err
	}

	out := make([]Feeder, 0)
	for _, id := range res.Order {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, err
		}
		if v.Seed {
			out = append(out, Feeder{Seed: id, Steps: res.Depth[id]})
		}
	}

	return out, nil
}

func createFile(path string, write func(io.Writer) error) error {
	return withFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, write)
}

func appendFile(path string, write func(io.Writer) error) error {
	return withFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, write)
}

func withFile(path string, flag int, write func(io.Writer) error) error {
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return ioError("batch.open", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return ioError("batch.write", path, err)
	}
	if err := f.Close(); err != nil {
		return ioError("batch.close", path, err)
	}
	return nil
}

func ioError(op, path string, err error) error {
	return &config.OpError{Op: op, Kind: config.KindIO, Path: path, Err: err}
}

func wantsFiles(o config.Output) bool {
	return o.Threads || o.GraphML || o.Candidates || o.Density
}

func appendOnce(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func withDefaults(d Deps) Deps {
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.Tracer == nil {
		d.Tracer = noop.NewTracerProvider().Tracer("")
	}
	if d.NewID == nil {
		d.NewID = uuid.NewString
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

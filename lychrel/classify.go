package lychrel

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lychrel/number"
)

// Run drives the state machine for one seed to its terminal state without
// retaining intermediate values.
//
// Errors:
//   - ErrBadDepth if depth < 1.
//   - number.ErrInvalidNumber and arithmetic lookup errors, wrapped.
func Run(seed number.Number, depth int) (Result, error) {
	t, err := NewThread(seed, depth)
	if err != nil {
		return Result{}, err
	}
	for t.Next() {
	}
	if t.err != nil {
		return Result{}, t.err
	}

	return Result{Seed: seed, Outcome: t.outcome, Iterations: t.iter, Last: t.cur}, nil
}

// IsCandidate reports whether seed reaches no palindrome within depth
// reverse-add steps. The answer is a pure function of (seed, depth).
func IsCandidate(seed number.Number, depth int) (bool, error) {
	r, err := Run(seed, depth)
	if err != nil {
		return false, err
	}

	return r.Candidate(), nil
}

// ClassifyBatch returns the digit strings of the Lychrel candidates among
// seeds, preserving input order.
//
// Options: WithWorkers(n) classifies seeds on n goroutines; WithOnResult
// observes every per-seed result. The output does not depend on the worker
// count.
func ClassifyBatch(seeds []number.Number, depth int, opts ...Option) ([]string, error) {
	results, err := ClassifyAll(seeds, depth, opts...)
	if err != nil {
		return nil, err
	}

	candidates := make([]string, 0)
	for _, r := range results {
		if r.Candidate() {
			candidates = append(candidates, r.Seed.Digits())
		}
	}

	return candidates, nil
}

// ClassifyAll runs every seed to its terminal state and returns the results
// in input order.
//
// Implementation:
//   - Stage 1: Resolve options; validate depth.
//   - Stage 2: Workers == 1 (or fewer than two seeds): classify in a loop.
//   - Stage 3: Otherwise feed seed indices to a fixed pool; each worker writes
//     only its own slots of the result slice, so no locking is needed there.
//     On error the lowest failing index wins and feeding stops.
//
// Complexity: O(Σ depth·digits) time; O(len(seeds)) extra space.
func ClassifyAll(seeds []number.Number, depth int, opts ...Option) ([]Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}

	results := make([]Result, len(seeds))
	if o.Workers == 1 || len(seeds) < 2 {
		for i, s := range seeds {
			r, err := Run(s, depth)
			if err != nil {
				return nil, seedError(i, s, err)
			}
			results[i] = r
			if o.OnResult != nil {
				o.OnResult(i, r)
			}
		}

		return results, nil
	}

	if err := classifyParallel(seeds, depth, o, results); err != nil {
		return nil, err
	}

	return results, nil
}

// classifyParallel fills results using o.Workers goroutines.
func classifyParallel(seeds []number.Number, depth int, o BatchOptions, results []Result) error {
	workers := o.Workers
	if workers > len(seeds) {
		workers = len(seeds)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		errIdx   = len(seeds)
		jobs     = make(chan int)
		stop     = make(chan struct{})
		stopOnce sync.Once
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r, err := Run(seeds[i], depth)
				if err != nil {
					mu.Lock()
					if i < errIdx {
						errIdx, firstErr = i, seedError(i, seeds[i], err)
					}
					mu.Unlock()
					stopOnce.Do(func() { close(stop) })

					continue
				}
				results[i] = r
				if o.OnResult != nil {
					o.OnResult(i, r)
				}
			}
		}()
	}

feed:
	for i := range seeds {
		select {
		case jobs <- i:
		case <-stop:
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return firstErr
}

func seedError(i int, s number.Number, err error) error {
	return fmt.Errorf("lychrel: seed %d (%q): %w", i, s.Digits(), err)
}

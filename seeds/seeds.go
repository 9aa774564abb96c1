package seeds

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/lychrel/number"
)

// Sentinel errors for seed generation.
var (
	// ErrNoStopCondition indicates the zero StopCondition was supplied.
	ErrNoStopCondition = errors.New("seeds: no stop condition")

	// ErrBadCount indicates a negative increment count.
	ErrBadCount = errors.New("seeds: count must be non-negative")

	// ErrBadMinDigits indicates a digit-length threshold below one.
	ErrBadMinDigits = errors.New("seeds: digit threshold must be at least 1")

	// ErrTargetUnreachable indicates a target numerically below the start.
	ErrTargetUnreachable = errors.New("seeds: target is below start")
)

type stopKind int

const (
	stopNone stopKind = iota
	stopCount
	stopMinDigits
	stopTarget
)

// StopCondition selects when Generate stops. Build it with Count,
// MinDigits or Target; the zero value is rejected.
type StopCondition struct {
	kind   stopKind
	n      int
	target string
}

// Count stops after n increments.
func Count(n int) StopCondition { return StopCondition{kind: stopCount, n: n} }

// MinDigits stops at the first value with at least n digits.
func MinDigits(n int) StopCondition { return StopCondition{kind: stopMinDigits, n: n} }

// Target stops once the value spelled by digits is produced.
func Target(digits string) StopCondition { return StopCondition{kind: stopTarget, target: digits} }

// String describes the condition for logs.
func (s StopCondition) String() string {
	switch s.kind {
	case stopCount:
		return fmt.Sprintf("count=%d", s.n)
	case stopMinDigits:
		return fmt.Sprintf("min_digits=%d", s.n)
	case stopTarget:
		return fmt.Sprintf("target=%s", s.target)
	default:
		return "none"
	}
}

// maxPrealloc caps the capacity hint taken from a Count condition; larger
// counts grow the slice through append.
const maxPrealloc = 1 << 16

// Generate returns start followed by successive increments until stop holds.
//
// Errors:
//   - construction errors for start or target (number.ErrConstruction).
//   - ErrNoStopCondition, ErrBadCount, ErrBadMinDigits for bad conditions.
//   - ErrTargetUnreachable when the running value outgrows the target.
//
// No partial slice is returned on error.
func Generate(start string, base int, stop StopCondition, opts ...number.Option) ([]number.Number, error) {
	var out []number.Number
	if stop.kind == stopCount && stop.n >= 0 {
		out = make([]number.Number, 0, min(stop.n, maxPrealloc)+1)
	}
	for n, err := range Seq(start, base, stop, opts...) {
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}

// Seq is the lazy form of Generate. It yields (value, nil) pairs; on failure
// it yields a single (zero Number, err) pair and stops.
func Seq(start string, base int, stop StopCondition, opts ...number.Option) iter.Seq2[number.Number, error] {
	return func(yield func(number.Number, error) bool) {
		cur, done, err := prepare(start, base, stop, opts)
		if err != nil {
			yield(number.Number{}, err)

			return
		}

		for step := 0; ; step++ {
			if !yield(cur, nil) {
				return
			}
			finished, err := done(cur, step)
			if err != nil {
				yield(number.Number{}, err)

				return
			}
			if finished {
				return
			}
			if cur, err = number.Increment(cur); err != nil {
				yield(number.Number{}, fmt.Errorf("seeds: increment after %d steps: %w", step, err))

				return
			}
		}
	}
}

// doneFunc reports whether value, produced after step increments, is the last one.
type doneFunc func(value number.Number, step int) (bool, error)

// prepare validates the stop condition, builds the start value and returns
// the termination predicate.
func prepare(start string, base int, stop StopCondition, opts []number.Option) (number.Number, doneFunc, error) {
	var done doneFunc
	switch stop.kind {
	case stopCount:
		if stop.n < 0 {
			return number.Number{}, nil, fmt.Errorf("%w: got %d", ErrBadCount, stop.n)
		}
		done = func(_ number.Number, step int) (bool, error) { return step >= stop.n, nil }
	case stopMinDigits:
		if stop.n < 1 {
			return number.Number{}, nil, fmt.Errorf("%w: got %d", ErrBadMinDigits, stop.n)
		}
		done = func(v number.Number, _ int) (bool, error) { return v.Len() >= stop.n, nil }
	case stopTarget:
		target, err := number.New(stop.target, base, opts...)
		if err != nil {
			return number.Number{}, nil, fmt.Errorf("seeds: target: %w", err)
		}
		done = func(v number.Number, _ int) (bool, error) {
			switch c := v.Cmp(target); {
			case c == 0:
				return true, nil
			case c > 0:
				return false, fmt.Errorf("%w: passed %s at %s", ErrTargetUnreachable, target, v)
			default:
				return false, nil
			}
		}
	default:
		return number.Number{}, nil, ErrNoStopCondition
	}

	n, err := number.New(start, base, opts...)
	if err != nil {
		return number.Number{}, nil, fmt.Errorf("seeds: start: %w", err)
	}

	return n, done, nil
}

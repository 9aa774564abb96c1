package lychrel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lychrel/number"
)

const (
	// DefaultDepth is the iteration bound used by threads and single-seed tests.
	DefaultDepth = 1000

	// DefaultBatchDepth is the iteration bound customarily used for batch searches.
	DefaultBatchDepth = 500
)

// Sentinel errors for classification.
var (
	// ErrBadDepth indicates a depth bound smaller than one iteration.
	ErrBadDepth = errors.New("lychrel: depth must be at least 1")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("lychrel: invalid option supplied")
)

// Outcome is the state of a seed's reverse-and-add state machine.
type Outcome int

const (
	// Running means the thread has not terminated yet.
	Running Outcome = iota

	// PalindromeFound is the terminal state reached by a palindrome.
	PalindromeFound

	// DepthExceeded is the terminal state of a Lychrel candidate.
	DepthExceeded
)

// String returns a lowercase name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case PalindromeFound:
		return "palindrome"
	case DepthExceeded:
		return "depth-exceeded"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the terminal state of one seed.
//
// Iterations counts reverse-add steps taken. Last is the final value of the
// thread (the palindrome when Outcome == PalindromeFound).
type Result struct {
	Seed       number.Number
	Outcome    Outcome
	Iterations int
	Last       number.Number
}

// Candidate reports whether the seed is a Lychrel candidate.
func (r Result) Candidate() bool { return r.Outcome == DepthExceeded }

// Option configures batch classification.
type Option func(*BatchOptions)

// BatchOptions holds batch classification parameters.
type BatchOptions struct {
	// Workers is the number of goroutines classifying seeds; 1 is sequential.
	Workers int

	// OnResult, if set, is called once per seed after it is classified.
	// With more than one worker it is called concurrently from worker goroutines.
	OnResult func(index int, r Result)

	err error
}

// DefaultOptions returns sequential classification with no hook.
func DefaultOptions() BatchOptions {
	return BatchOptions{Workers: 1}
}

// WithWorkers sets the worker pool size.
//
//	n ≥ 1: use n goroutines
//	n < 1: invalid → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *BatchOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}

// WithOnResult registers a per-seed callback.
func WithOnResult(fn func(index int, r Result)) Option {
	return func(o *BatchOptions) {
		if fn != nil {
			o.OnResult = fn
		}
	}
}

package lychrel

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lychrel/number"
)

// Thread is a lazy, single-use cursor over the reverse-and-add sequence of a seed.
//
// The seed itself is not produced; the first value is Next(seed). The cursor
// stops after the first palindrome (which is produced) or after depth values.
// A Thread is not safe for concurrent use and cannot be rewound.
//
// Usage:
//
//	th, err := lychrel.NewThread(seed, 300)
//	for th.Next() {
//		fmt.Println(th.Value())
//	}
//	if err := th.Err(); err != nil { … }
//	fmt.Println(th.Outcome(), th.Iterations())
type Thread struct {
	seed    number.Number
	cur     number.Number
	depth   int
	iter    int
	outcome Outcome
	err     error
}

// NewThread validates the depth bound and returns a cursor positioned
// before the first reverse-add step.
//
// Errors:
//   - ErrBadDepth if depth < 1.
//   - number.ErrInvalidNumber if seed is the zero value.
func NewThread(seed number.Number, depth int) (*Thread, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}
	if seed.Len() == 0 {
		return nil, number.ErrInvalidNumber
	}

	return &Thread{seed: seed, cur: seed, depth: depth, outcome: Running}, nil
}

// Next advances by one reverse-add step. It returns false once the thread
// has terminated or an arithmetic error occurred (see Err).
func (t *Thread) Next() bool {
	if t.outcome != Running || t.err != nil {
		return false
	}

	next, err := number.Next(t.cur)
	if err != nil {
		t.err = fmt.Errorf("lychrel: step %d from %q: %w", t.iter+1, t.cur.Digits(), err)

		return false
	}
	t.iter++
	t.cur = next

	// A palindrome on the last permitted step still counts as found.
	switch {
	case next.IsPalindrome():
		t.outcome = PalindromeFound
	case t.iter >= t.depth:
		t.outcome = DepthExceeded
	}

	return true
}

// Value returns the value produced by the last successful Next call,
// or the seed before the first call.
func (t *Thread) Value() number.Number { return t.cur }

// Seed returns the thread's starting value.
func (t *Thread) Seed() number.Number { return t.seed }

// Depth returns the iteration bound.
func (t *Thread) Depth() int { return t.depth }

// Iterations returns the number of values produced so far.
func (t *Thread) Iterations() int { return t.iter }

// Outcome returns Running until the thread terminates.
func (t *Thread) Outcome() Outcome { return t.outcome }

// Err returns the arithmetic error that stopped the thread, if any.
func (t *Thread) Err() error { return t.err }

// All returns a range-over-func view of the remaining values. Ranging over
// it consumes the cursor; check Err afterwards.
func (t *Thread) All() iter.Seq[number.Number] {
	return func(yield func(number.Number) bool) {
		for t.Next() {
			if !yield(t.cur) {
				return
			}
		}
	}
}

package number

import (
	"fmt"

	"github.com/katalvlaran/lychrel/alphabet"
)

// Number is an immutable natural number in a positional base.
//
// The zero value is not a valid number; build values with New.
type Number struct {
	digits string             // most-significant digit first
	base   int                // 2 ≤ base < alpha.Size()
	alpha  *alphabet.Alphabet // shared, read-only
}

// Option configures New.
type Option func(*options)

type options struct {
	alpha *alphabet.Alphabet
}

// WithAlphabet selects the digit alphabet. A nil alphabet keeps the default.
func WithAlphabet(a *alphabet.Alphabet) Option {
	return func(o *options) {
		if a != nil {
			o.alpha = a
		}
	}
}

// New validates digits against base and returns the Number they spell.
//
// Implementation:
//   - Stage 1: Resolve the alphabet (alphabet.Default unless overridden).
//   - Stage 2: Check 2 ≤ base < Size() and a non-empty digit string.
//   - Stage 3: Look up every symbol; reject unknown ones and values ≥ base.
//   - Stage 4: Reject a leading zero on multi-digit strings.
//
// Every returned error satisfies errors.Is(err, ErrConstruction).
func New(digits string, base int, opts ...Option) (Number, error) {
	o := options{alpha: alphabet.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	a := o.alpha

	if base < 2 || base >= a.Size() {
		return Number{}, fmt.Errorf("%w: %w: %d not in [2,%d)", ErrConstruction, ErrBaseOutOfRange, base, a.Size())
	}
	if digits == "" {
		return Number{}, fmt.Errorf("%w: %w", ErrConstruction, ErrEmptyDigits)
	}

	for i := 0; i < len(digits); i++ {
		v, err := a.OrdinalOf(digits[i])
		if err != nil {
			return Number{}, fmt.Errorf("%w: position %d: %w", ErrConstruction, i, err)
		}
		if v >= base {
			return Number{}, fmt.Errorf("%w: %w: %q (value %d) in base %d", ErrConstruction, ErrDigitOutOfBase, digits[i], v, base)
		}
	}

	zero, _ := a.SymbolAt(0)
	if len(digits) > 1 && digits[0] == zero {
		return Number{}, fmt.Errorf("%w: %w: %q", ErrConstruction, ErrLeadingZero, digits)
	}

	return Number{digits: digits, base: base, alpha: a}, nil
}

// MustNew is New for literals known to be valid; it panics on error.
func MustNew(digits string, base int, opts ...Option) Number {
	n, err := New(digits, base, opts...)
	if err != nil {
		panic(err)
	}

	return n
}

// Digits returns the digit string, most-significant digit first.
func (n Number) Digits() string { return n.digits }

// String implements fmt.Stringer and returns Digits().
func (n Number) String() string { return n.digits }

// Base returns the positional base.
func (n Number) Base() int { return n.base }

// Len returns the number of digits.
func (n Number) Len() int { return len(n.digits) }

// Alphabet returns the alphabet the digits are written in.
func (n Number) Alphabet() *alphabet.Alphabet { return n.alpha }

// IsZero reports whether n is the value zero.
func (n Number) IsZero() bool {
	if n.alpha == nil || len(n.digits) != 1 {
		return false
	}
	zero, _ := n.alpha.SymbolAt(0)

	return n.digits[0] == zero
}

// Equal reports whether n and other have the same digits and base, written
// in alphabets with the same symbols. Numbers of equal value in different
// bases are not Equal.
func (n Number) Equal(other Number) bool {
	return n.base == other.base && n.digits == other.digits && sameSymbols(n.alpha, other.alpha)
}

func sameSymbols(a, b *alphabet.Alphabet) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	return a.Symbols() == b.Symbols()
}

// Cmp compares the values of n and other, which must share a base and
// alphabet. It returns -1, 0 or +1. Without leading zeros a longer digit
// string is always the larger value; equal lengths compare digit by digit.
func (n Number) Cmp(other Number) int {
	switch {
	case len(n.digits) < len(other.digits):
		return -1
	case len(n.digits) > len(other.digits):
		return 1
	}
	for i := 0; i < len(n.digits); i++ {
		a, _ := n.alpha.OrdinalOf(n.digits[i])
		b, _ := n.alpha.OrdinalOf(other.digits[i])
		if a != b {
			if a < b {
				return -1
			}

			return 1
		}
	}

	return 0
}

// valid reports whether n was produced by New or by an arithmetic step.
func (n Number) valid() bool {
	return n.alpha != nil && n.digits != ""
}

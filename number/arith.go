package number

import (
	"fmt"

	"github.com/katalvlaran/lychrel/alphabet"
)

// Increment returns n + 1 in the same base.
//
// Algorithm:
//  1. v = value(last digit) + 1. If v < base, only the last digit changes.
//  2. Otherwise walk from the least-significant digit towards the most
//     significant one with carry = 1. At each position s = value(d[i]) + carry:
//     s ≥ base → store s mod base and keep carry = 1;
//     s < base → store s, clear the carry and stop propagating.
//  3. A carry surviving the most-significant digit becomes a new leading 1.
//
// The result has the same length as n or exactly one more digit.
//
// Errors:
//   - ErrInvalidNumber for the zero value Number.
//   - alphabet.ErrUnknownSymbol if a digit is missing from the alphabet.
func Increment(n Number) (Number, error) {
	if !n.valid() {
		return Number{}, ErrInvalidNumber
	}
	a, d, base := n.alpha, n.digits, n.base
	last := len(d) - 1

	// Fast path: no carry, only the least-significant digit changes.
	v, err := a.Sum(d[last])
	if err != nil {
		return Number{}, fmt.Errorf("number: increment %q: %w", d, err)
	}
	if v+1 < base {
		sym, err := a.SymbolAt(v + 1)
		if err != nil {
			return Number{}, fmt.Errorf("number: increment %q: %w", d, err)
		}
		out := []byte(d)
		out[last] = sym

		return Number{digits: string(out), base: base, alpha: a}, nil
	}

	// Carry path: out[i+1] holds digit i, out[0] the possible new leading digit.
	out, zero := zeroBuffer(a, len(d)+1)
	carry := 1
	for i := last; i >= 0; i-- {
		if carry == 0 {
			copy(out[1:i+2], d[:i+1])

			break
		}
		s, err := a.Sum(d[i])
		if err != nil {
			return Number{}, fmt.Errorf("number: increment %q: %w", d, err)
		}
		s += carry
		if s >= base {
			s -= base
		} else {
			carry = 0
		}
		out[i+1] = mustSymbol(a, s)
	}
	if carry == 1 {
		out[0] = mustSymbol(a, 1)
	}

	return Number{digits: stripLeadingZero(out, zero), base: base, alpha: a}, nil
}

// ReverseAdd returns the digits of n + reverse(n) in n's base.
//
// The reversed numeral is never materialized. Position i (counted from the
// least-significant end) adds the digit at i to its mirror and to the carry
// left in the result buffer by position i-1:
//
//	s = value(d[i]) + value(d[mirror(i)]) + carry_in
//	s ≥ base → store s mod base, write carry_out = 1 into the next slot
//	s < base → store s
//
// The buffer is one digit longer than n; its leading zero is stripped unless
// the whole value is zero. The base of the result is n.Base().
//
// Errors:
//   - ErrInvalidNumber for the zero value Number.
//   - alphabet.ErrUnknownSymbol if a digit is missing from the alphabet.
func ReverseAdd(n Number) (string, error) {
	if !n.valid() {
		return "", ErrInvalidNumber
	}
	a, d, base := n.alpha, n.digits, n.base
	size := len(d)

	// out[k+1] holds the result digit aligned with d[k]; out[0] is the overflow slot.
	out, zero := zeroBuffer(a, size+1)
	for idx := 0; idx < size; idx++ {
		k := size - 1 - idx // position of d walked from the least-significant end
		s, err := a.Sum(d[k], d[idx], out[k+1])
		if err != nil {
			return "", fmt.Errorf("number: reverse-add %q: %w", d, err)
		}
		if s >= base {
			out[k+1] = mustSymbol(a, s%base)
			out[k] = mustSymbol(a, 1)
		} else {
			out[k+1] = mustSymbol(a, s)
		}
	}

	// A one-digit zero must stay "0"; only the overflow slot is stripped.
	return stripLeadingZero(out, zero), nil
}

// Next applies ReverseAdd and wraps the digits back into a Number of the
// same base and alphabet. This is one step of a Lychrel thread.
func Next(n Number) (Number, error) {
	digits, err := ReverseAdd(n)
	if err != nil {
		return Number{}, err
	}

	return Number{digits: digits, base: n.base, alpha: n.alpha}, nil
}

// zeroBuffer returns a buffer of the given size filled with the zero symbol.
func zeroBuffer(a *alphabet.Alphabet, size int) ([]byte, byte) {
	zero := mustSymbol(a, 0)
	out := make([]byte, size)
	for i := range out {
		out[i] = zero
	}

	return out, zero
}

// stripLeadingZero drops the overflow slot when it holds zero.
func stripLeadingZero(out []byte, zero byte) string {
	if len(out) > 1 && out[0] == zero {
		out = out[1:]
	}

	return string(out)
}

// mustSymbol maps a value already known to be < base < Size().
func mustSymbol(a *alphabet.Alphabet, v int) byte {
	s, err := a.SymbolAt(v)
	if err != nil {
		panic(err)
	}

	return s
}

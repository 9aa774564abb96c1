// Package number implements natural numbers written as digit strings in an
// arbitrary positional base, together with the two arithmetic steps the
// reverse-and-add process needs: unit increment and reverse-add.
//
// What is a based number?
//
//	A Number pairs a digit string (most-significant digit first) with a base
//	b in [2, MAX_BASE), where MAX_BASE is the size of the digit alphabet.
//	Every digit value is < b and there is no leading zero unless the number
//	is zero itself:
//	  New("1A65", 16)     → valid
//	  New("0", 10)        → valid (zero)
//	  New("007", 10)      → ErrLeadingZero
//	  New("Z", 10)        → ErrDigitOutOfBase
//
// Arithmetic:
//   - Increment(n)  — n + 1, same base; length stays or grows by one.
//   - ReverseAdd(n) — n + reverse(n) as a raw digit string, computed from
//     mirrored digit pairs with explicit carry; no integer conversion.
//   - Next(n)       — ReverseAdd wrapped back into a Number.
//
// Numbers are immutable values. Every operation returns a new Number and
// never touches its input, so values may be shared freely across goroutines.
//
// Errors:
//
//	All construction failures wrap ErrConstruction plus a specific cause
//	(ErrBaseOutOfRange, ErrEmptyDigits, ErrLeadingZero, ErrDigitOutOfBase or
//	alphabet.ErrUnknownSymbol). Arithmetic on the zero value Number returns
//	ErrInvalidNumber.
//
// Complexity:
//
//	IsPalindrome O(1) best case, O(n) worst case.
//	Increment    O(1) without carry, O(n) with carry.
//	ReverseAdd   O(n).
package number

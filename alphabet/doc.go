// Package alphabet defines the ordered digit symbols used to write natural
// numbers in an arbitrary positional base.
//
// What is a digit alphabet?
//
//	An Alphabet is an ordered catalog of single-byte symbols. The symbol at
//	position i encodes the digit value i, so a base-b numeral may use the
//	first b symbols only:
//	  base 2  → "01"
//	  base 10 → "0123456789"
//	  base 16 → "0123456789ABCDEF"
//
// Key features:
//   - Default() is the shared 62-symbol alphabet 0-9, A-Z, a-z,
//     built once and never mutated.
//   - New() builds custom alphabets (unique symbols, at least two).
//   - O(1) lookups in both directions (symbol → ordinal, ordinal → symbol).
//   - Sum() adds digit values without reducing them modulo any base; it is
//     the single-digit step of every carry loop in package number.
//
// Usage:
//
//	a := alphabet.Default()
//	v, err := a.OrdinalOf('F') // 15
//	s, err := a.SymbolAt(35)   // 'Z'
//	n, err := a.Sum('1', 'F', '6') // 22
//
// Errors:
//   - ErrUnknownSymbol      — symbol not present in the alphabet.
//   - ErrOrdinalOutOfRange  — ordinal outside [0, Size()).
//   - ErrEmptyAlphabet, ErrTooFewSymbols, ErrDuplicateSymbol — New() validation.
//
// An *Alphabet is safe for concurrent use: it is read-only after New returns.
package alphabet

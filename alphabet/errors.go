package alphabet

import "errors"

// Sentinel errors for alphabet construction and lookup.
var (
	// ErrUnknownSymbol indicates a lookup of a symbol that is not part of the alphabet.
	ErrUnknownSymbol = errors.New("alphabet: unknown symbol")

	// ErrOrdinalOutOfRange indicates an ordinal outside [0, Size()).
	ErrOrdinalOutOfRange = errors.New("alphabet: ordinal out of range")

	// ErrEmptyAlphabet indicates New was called with no symbols.
	ErrEmptyAlphabet = errors.New("alphabet: no symbols")

	// ErrTooFewSymbols indicates an alphabet that cannot express base 2.
	ErrTooFewSymbols = errors.New("alphabet: at least two symbols required")

	// ErrDuplicateSymbol indicates the same symbol appears twice in New input.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")
)

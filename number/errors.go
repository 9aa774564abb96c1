package number

import "errors"

// Sentinel errors for number construction and arithmetic.
var (
	// ErrConstruction wraps every failure of New; test with errors.Is.
	ErrConstruction = errors.New("number: invalid construction")

	// ErrBaseOutOfRange indicates base < 2 or base ≥ alphabet size.
	ErrBaseOutOfRange = errors.New("number: base out of range")

	// ErrEmptyDigits indicates an empty digit string.
	ErrEmptyDigits = errors.New("number: empty digit string")

	// ErrLeadingZero indicates a multi-digit string starting with the zero symbol.
	ErrLeadingZero = errors.New("number: leading zero")

	// ErrDigitOutOfBase indicates a known symbol whose value is ≥ base.
	ErrDigitOutOfBase = errors.New("number: digit not valid in base")

	// ErrInvalidNumber indicates arithmetic on a Number that was not built by New.
	ErrInvalidNumber = errors.New("number: uninitialized number")
)

package alphabet

import (
	"fmt"
	"sync"
)

// DefaultSymbols is the reference symbol order: digits, then uppercase,
// then lowercase letters.
const DefaultSymbols = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// unknown marks a byte with no ordinal in the lookup table.
const unknown = -1

// Alphabet is an immutable, ordered set of digit symbols.
//
// symbols[i] encodes the value i; ordinals is the inverse table indexed by
// byte. Both are filled once by New and only read afterwards.
type Alphabet struct {
	symbols  string
	ordinals [256]int
}

var (
	defaultOnce sync.Once
	defaultAlph *Alphabet
)

// Default returns the shared 62-symbol alphabet (DefaultSymbols).
// The value is built on first use and is the same pointer for every caller.
func Default() *Alphabet {
	defaultOnce.Do(func() {
		a, err := New(DefaultSymbols)
		if err != nil {
			// DefaultSymbols is a package constant; failure is a programming error.
			panic(err)
		}
		defaultAlph = a
	})

	return defaultAlph
}

// New builds an Alphabet from an ordered symbol string.
//
// Implementation:
//   - Stage 1: Reject empty input and inputs shorter than two symbols.
//   - Stage 2: Fill the inverse table, rejecting any repeated byte.
//
// Complexity: O(len(symbols)) time, O(1) extra space (fixed 256-entry table).
func New(symbols string) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if len(symbols) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSymbols, len(symbols))
	}

	a := &Alphabet{symbols: symbols}
	for i := range a.ordinals {
		a.ordinals[i] = unknown
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if a.ordinals[c] != unknown {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateSymbol, c, a.ordinals[c], i)
		}
		a.ordinals[c] = i
	}

	return a, nil
}

// Size returns the number of symbols, which is the exclusive ceiling on
// supported bases (MAX_BASE).
func (a *Alphabet) Size() int { return len(a.symbols) }

// Symbols returns the ordered symbol string.
func (a *Alphabet) Symbols() string { return a.symbols }

// SymbolAt returns the symbol encoding the given ordinal.
func (a *Alphabet) SymbolAt(ordinal int) (byte, error) {
	if ordinal < 0 || ordinal >= len(a.symbols) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrOrdinalOutOfRange, ordinal, len(a.symbols))
	}

	return a.symbols[ordinal], nil
}

// OrdinalOf returns the digit value of symbol.
func (a *Alphabet) OrdinalOf(symbol byte) (int, error) {
	v := a.ordinals[symbol]
	if v == unknown {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}

	return v, nil
}

// Contains reports whether symbol belongs to the alphabet.
func (a *Alphabet) Contains(symbol byte) bool { return a.ordinals[symbol] != unknown }

// Sum adds the ordinals of all given symbols. The result is not reduced
// modulo any base; callers compare it against their base to decide on a carry.
//
// Example: Sum('1', 'F', '6') == 1 + 15 + 6 == 22 on the default alphabet.
func (a *Alphabet) Sum(symbols ...byte) (int, error) {
	total := 0
	for _, s := range symbols {
		v, err := a.OrdinalOf(s)
		if err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}

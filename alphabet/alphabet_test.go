package alphabet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lychrel/alphabet"
)

// TestDefault_Layout verifies the reference ordering: digits, uppercase, lowercase.
func TestDefault_Layout(t *testing.T) {
	a := alphabet.Default()
	require.NotNil(t, a)
	assert.Equal(t, 62, a.Size(), "default alphabet size")
	assert.Same(t, a, alphabet.Default(), "Default must return a shared instance")

	cases := map[byte]int{'0': 0, '9': 9, 'A': 10, 'F': 15, 'Z': 35, 'a': 36, 'z': 61}
	for sym, want := range cases {
		got, err := a.OrdinalOf(sym)
		require.NoError(t, err, "symbol %q", sym)
		assert.Equal(t, want, got, "ordinal of %q", sym)

		back, err := a.SymbolAt(want)
		require.NoError(t, err)
		assert.Equal(t, sym, back, "symbol at %d", want)
	}
}

// TestDefault_RoundTrip checks ordinal(symbol_at(i)) == i for every position.
func TestDefault_RoundTrip(t *testing.T) {
	a := alphabet.Default()
	for i := 0; i < a.Size(); i++ {
		s, err := a.SymbolAt(i)
		require.NoError(t, err)
		v, err := a.OrdinalOf(s)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

// TestLookupErrors covers unknown symbols and out-of-range ordinals.
func TestLookupErrors(t *testing.T) {
	a := alphabet.Default()

	_, err := a.OrdinalOf('#')
	assert.ErrorIs(t, err, alphabet.ErrUnknownSymbol)
	assert.False(t, a.Contains('#'))
	assert.True(t, a.Contains('q'))

	_, err = a.SymbolAt(-1)
	assert.ErrorIs(t, err, alphabet.ErrOrdinalOutOfRange)
	_, err = a.SymbolAt(a.Size())
	assert.ErrorIs(t, err, alphabet.ErrOrdinalOutOfRange)
}

// TestSum verifies that ordinals are added without modular reduction.
func TestSum(t *testing.T) {
	a := alphabet.Default()

	got, err := a.Sum('1', 'F', '6')
	require.NoError(t, err)
	assert.Equal(t, 22, got)

	got, err = a.Sum()
	require.NoError(t, err)
	assert.Equal(t, 0, got, "empty sum")

	got, err = a.Sum('z', 'z', '1')
	require.NoError(t, err)
	assert.Equal(t, 123, got)

	_, err = a.Sum('1', '*')
	assert.ErrorIs(t, err, alphabet.ErrUnknownSymbol)
}

// TestNew_Validation exercises every construction failure.
func TestNew_Validation(t *testing.T) {
	_, err := alphabet.New("")
	assert.ErrorIs(t, err, alphabet.ErrEmptyAlphabet)

	_, err = alphabet.New("x")
	assert.ErrorIs(t, err, alphabet.ErrTooFewSymbols)

	_, err = alphabet.New("0120")
	assert.ErrorIs(t, err, alphabet.ErrDuplicateSymbol)

	a, err := alphabet.New("ab")
	require.NoError(t, err)
	assert.Equal(t, 2, a.Size())
	assert.Equal(t, "ab", a.Symbols())
	v, err := a.OrdinalOf('b')
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

package number_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lychrel/alphabet"
	"github.com/katalvlaran/lychrel/number"
)

// TestIncrement_Table pins exact digit strings around carries.
func TestIncrement_Table(t *testing.T) {
	cases := []struct {
		in   string
		base int
		want string
	}{
		{"0", 10, "1"},
		{"1", 10, "2"},
		{"9", 10, "10"},
		{"19", 10, "20"},
		{"99", 10, "100"},
		{"1099", 10, "1100"},
		{"909", 10, "910"},
		{"1", 2, "10"},
		{"1011", 2, "1100"},
		{"111", 2, "1000"},
		{"F", 16, "10"},
		{"5F", 16, "60"},
		{"FFF", 16, "1000"},
		{"x", 61, "y"},
		{"y", 61, "10"},
	}
	for _, tc := range cases {
		got, err := number.Increment(number.MustNew(tc.in, tc.base))
		require.NoError(t, err, "Increment(%q, %d)", tc.in, tc.base)
		assert.Equal(t, tc.want, got.Digits(), "Increment(%q, %d)", tc.in, tc.base)
		assert.Equal(t, tc.base, got.Base())
	}
}

// TestIncrement_Oracle walks every base from 0 and checks value and length growth.
func TestIncrement_Oracle(t *testing.T) {
	for base := 2; base < alphabet.Default().Size(); base++ {
		n := number.MustNew("0", base)
		for i := 1; i <= 300; i++ {
			next, err := number.Increment(n)
			require.NoError(t, err)

			assert.Equal(t, int64(i), valueOf(t, next).Int64(), "base %d step %d", base, i)
			growth := next.Len() - n.Len()
			assert.True(t, growth == 0 || growth == 1, "length grows by at most one")
			assert.Equal(t, digitsOf(t, big.NewInt(int64(i)), base), next.Digits())
			n = next
		}
	}
}

// TestIncrement_DoesNotMutate verifies the input value is left untouched.
func TestIncrement_DoesNotMutate(t *testing.T) {
	n := number.MustNew("199", 10)
	_, err := number.Increment(n)
	require.NoError(t, err)
	assert.Equal(t, "199", n.Digits())
}

// TestReverseAdd_SingleDigit checks 2·value(d) in every base, digit for digit.
func TestReverseAdd_SingleDigit(t *testing.T) {
	a := alphabet.Default()
	for base := 2; base < a.Size(); base++ {
		for v := 0; v < base; v++ {
			sym, err := a.SymbolAt(v)
			require.NoError(t, err)

			got, err := number.ReverseAdd(number.MustNew(string(sym), base))
			require.NoError(t, err)

			want := digitsOf(t, big.NewInt(int64(2*v)), base)
			assert.Equal(t, want, got, "reverse-add of %q in base %d", sym, base)
		}
	}
}

// TestReverseAdd_Table pins exact digit strings for known steps.
func TestReverseAdd_Table(t *testing.T) {
	cases := []struct {
		in   string
		base int
		want string
	}{
		{"0", 10, "0"},
		{"4", 10, "8"},
		{"7", 10, "14"},
		{"196", 10, "887"},
		{"887", 10, "1675"},
		{"89", 10, "187"},
		{"121", 10, "242"},
		{"99", 10, "198"},
		{"10", 2, "11"},
		{"11000100", 2, "11100111"},
		{"C4", 16, "110"},
		{"FF", 16, "1FE"},
	}
	for _, tc := range cases {
		got, err := number.ReverseAdd(number.MustNew(tc.in, tc.base))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "ReverseAdd(%q, %d)", tc.in, tc.base)
	}
}

// TestReverseAdd_Oracle compares against n + reverse(n) computed with big.Int.
func TestReverseAdd_Oracle(t *testing.T) {
	for _, base := range []int{2, 3, 7, 10, 16, 36, 61} {
		n := number.MustNew("1", base)
		for i := 0; i < 400; i++ {
			got, err := number.ReverseAdd(n)
			require.NoError(t, err)

			rev := reversed(n.Digits())
			// strip leading zeros of the reversed numeral before parsing it
			for len(rev) > 1 && rev[0] == '0' {
				rev = rev[1:]
			}
			want := new(big.Int).Add(valueOf(t, n), valueOf(t, number.MustNew(rev, base)))
			assert.Equal(t, digitsOf(t, want, base), got, "base %d seed %s", base, n)

			n, err = number.Increment(n)
			require.NoError(t, err)
		}
	}
}

// TestReverseAdd_PalindromeGrowth checks that a palindrome doubles digit-wise.
func TestReverseAdd_PalindromeGrowth(t *testing.T) {
	got, err := number.ReverseAdd(number.MustNew("1221", 10))
	require.NoError(t, err)
	assert.Equal(t, "2442", got)

	got, err = number.ReverseAdd(number.MustNew("595", 10))
	require.NoError(t, err)
	assert.Equal(t, "1190", got)
}

// TestNext keeps base and alphabet and matches ReverseAdd.
func TestNext(t *testing.T) {
	n := number.MustNew("C4", 16)
	next, err := number.Next(n)
	require.NoError(t, err)
	assert.Equal(t, "110", next.Digits())
	assert.Equal(t, 16, next.Base())
	assert.Same(t, n.Alphabet(), next.Alphabet())
}

// TestArithmetic_ZeroValue rejects numbers not built by New.
func TestArithmetic_ZeroValue(t *testing.T) {
	var n number.Number

	_, err := number.Increment(n)
	assert.ErrorIs(t, err, number.ErrInvalidNumber)

	_, err = number.ReverseAdd(n)
	assert.ErrorIs(t, err, number.ErrInvalidNumber)

	_, err = number.Next(n)
	assert.ErrorIs(t, err, number.ErrInvalidNumber)
}

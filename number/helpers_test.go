package number_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lychrel/alphabet"
	"github.com/katalvlaran/lychrel/number"
)

// valueOf converts a Number to a big.Int using the default alphabet ordinals.
// It is a test oracle only; the package itself never converts to integers.
func valueOf(t *testing.T, n number.Number) *big.Int {
	t.Helper()
	a := n.Alphabet()
	v := new(big.Int)
	b := big.NewInt(int64(n.Base()))
	for i := 0; i < n.Len(); i++ {
		d, err := a.OrdinalOf(n.Digits()[i])
		require.NoError(t, err)
		v.Mul(v, b)
		v.Add(v, big.NewInt(int64(d)))
	}

	return v
}

// digitsOf renders v in base using the default alphabet.
func digitsOf(t *testing.T, v *big.Int, base int) string {
	t.Helper()
	a := alphabet.Default()
	if v.Sign() == 0 {
		return "0"
	}
	b := big.NewInt(int64(base))
	rem := new(big.Int)
	q := new(big.Int).Set(v)
	var out []byte
	for q.Sign() > 0 {
		q.QuoRem(q, b, rem)
		s, err := a.SymbolAt(int(rem.Int64()))
		require.NoError(t, err)
		out = append([]byte{s}, out...)
	}

	return string(out)
}

// reversed returns the digit string read backwards.
func reversed(s string) string {
	out := []byte(s)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}

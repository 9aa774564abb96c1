package seeds_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lychrel/alphabet"
	"github.com/katalvlaran/lychrel/number"
	"github.com/katalvlaran/lychrel/seeds"
)

func digits(ns []number.Number) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Digits()
	}

	return out
}

// TestGenerate_Count yields the start plus n increments.
func TestGenerate_Count(t *testing.T) {
	got, err := seeds.Generate("1", 10, seeds.Count(5))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, digits(got))

	got, err = seeds.Generate("196", 10, seeds.Count(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"196"}, digits(got), "count 0 selects the start only")

	got, err = seeds.Generate("1", 16, seeds.Count(100))
	require.NoError(t, err)
	require.Len(t, got, 101)
	assert.Equal(t, []string{"5F", "60", "61", "62", "63", "64", "65"}, digits(got[94:]))
	for _, n := range got {
		assert.Equal(t, 16, n.Base())
	}
}

// TestGenerate_MinDigits stops at the first value reaching the threshold.
func TestGenerate_MinDigits(t *testing.T) {
	got, err := seeds.Generate("1", 2, seeds.MinDigits(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "10", "11", "100"}, digits(got))

	got, err = seeds.Generate("1", 10, seeds.MinDigits(3))
	require.NoError(t, err)
	assert.Len(t, got, 100, "1..100")
	assert.Equal(t, "100", got[len(got)-1].Digits())

	got, err = seeds.Generate("123", 10, seeds.MinDigits(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"123"}, digits(got), "start already long enough")
}

// TestGenerate_Target stops on the target value, inclusive.
func TestGenerate_Target(t *testing.T) {
	got, err := seeds.Generate("5E", 16, seeds.Target("61"))
	require.NoError(t, err)
	assert.Equal(t, []string{"5E", "5F", "60", "61"}, digits(got))

	got, err = seeds.Generate("7", 10, seeds.Target("7"))
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, digits(got))

	_, err = seeds.Generate("20", 10, seeds.Target("19"))
	assert.ErrorIs(t, err, seeds.ErrTargetUnreachable)

	_, err = seeds.Generate("5", 10, seeds.Target("3"))
	assert.ErrorIs(t, err, seeds.ErrTargetUnreachable)
}

// TestGenerate_Errors validates conditions and literals.
func TestGenerate_Errors(t *testing.T) {
	_, err := seeds.Generate("1", 10, seeds.StopCondition{})
	assert.ErrorIs(t, err, seeds.ErrNoStopCondition)

	_, err = seeds.Generate("1", 10, seeds.Count(-1))
	assert.ErrorIs(t, err, seeds.ErrBadCount)

	_, err = seeds.Generate("1", 10, seeds.MinDigits(0))
	assert.ErrorIs(t, err, seeds.ErrBadMinDigits)

	_, err = seeds.Generate("Z", 10, seeds.Count(3))
	assert.ErrorIs(t, err, number.ErrConstruction)
	assert.ErrorIs(t, err, number.ErrDigitOutOfBase)

	_, err = seeds.Generate("1", 10, seeds.Target("1x"))
	assert.ErrorIs(t, err, number.ErrConstruction)
}

// TestSeq_EarlyStop lets a consumer stop a long enumeration.
func TestSeq_EarlyStop(t *testing.T) {
	var got []string
	for n, err := range seeds.Seq("1", 10, seeds.Count(1_000_000)) {
		require.NoError(t, err)
		got = append(got, n.Digits())
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

// TestSeq_UnboundedCount accepts the largest count and stops on break.
func TestSeq_UnboundedCount(t *testing.T) {
	var got []string
	require.NotPanics(t, func() {
		for n, err := range seeds.Seq("1", 10, seeds.Count(math.MaxInt)) {
			require.NoError(t, err)
			got = append(got, n.Digits())
			if len(got) == 4 {
				break
			}
		}
	})
	assert.Equal(t, []string{"1", "2", "3", "4"}, got)
}

// TestGenerate_CountBeyondPrealloc grows past the capacity hint.
func TestGenerate_CountBeyondPrealloc(t *testing.T) {
	const n = 70_000
	got, err := seeds.Generate("1", 10, seeds.Count(n))
	require.NoError(t, err)
	require.Len(t, got, n+1)
	assert.Equal(t, "1", got[0].Digits())
	assert.Equal(t, "70001", got[n].Digits())
}

// TestGenerate_CustomAlphabet threads number options through.
func TestGenerate_CustomAlphabet(t *testing.T) {
	a, err := alphabet.New("01234567abc")
	require.NoError(t, err)

	got, err := seeds.Generate("6", 10, seeds.Count(4), number.WithAlphabet(a))
	require.NoError(t, err)
	assert.Equal(t, []string{"6", "7", "a", "b", "10"}, digits(got))

	_, err = seeds.Generate("c", 10, seeds.Count(1), number.WithAlphabet(a))
	assert.ErrorIs(t, err, number.ErrDigitOutOfBase, "'c' has value 10")
}

// TestStopCondition_String is used in log lines.
func TestStopCondition_String(t *testing.T) {
	assert.Equal(t, "count=5", seeds.Count(5).String())
	assert.Equal(t, "min_digits=6", seeds.MinDigits(6).String())
	assert.Equal(t, "target=FF", seeds.Target("FF").String())
	assert.Equal(t, "none", seeds.StopCondition{}.String())
}

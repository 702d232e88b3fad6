package bench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyInt(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		for in, want := range map[int]int{5: -4, -5: 4, 1: 0, -1: 0, 0: math.MaxInt} {
			x := in
			assert.Equal(t, float64(want), apply(Simple, &x))
			assert.Equal(t, want, x, "input %d", in)
		}
	})

	t.Run("SimpleExtremes", func(t *testing.T) {
		x := int8(math.MinInt8)
		apply(Simple, &x)
		assert.Equal(t, int8(math.MaxInt8), x)
	})

	t.Run("Complex", func(t *testing.T) {
		x := 5
		apply(Complex, &x)
		assert.Equal(t, 7, x)

		y := int32(0)
		apply(Complex, &y)
		assert.Greater(t, y, int32(-11))
		assert.Less(t, y, int32(11))
	})

	t.Run("BranchingMatchesSimple", func(t *testing.T) {
		for _, in := range []int64{-100, -1, 0, 1, 2, 100, math.MaxInt64, math.MinInt64 + 1} {
			a, b := in, in
			apply(Simple, &a)
			apply(Branching, &b)
			assert.Equal(t, a, b, "input %d", in)
		}
	})
}

func TestApplyFloat(t *testing.T) {
	x := 1.0
	apply(Simple, &x)
	assert.InDelta(t, 2.0, x, 1e-12)

	y := 1.0
	apply(Complex, &y)
	assert.InDelta(t, math.Tanh(2), y, 1e-12)

	z := float32(0.5)
	apply(Branching, &z)
	assert.InDelta(t, 3.0, z, 1e-6)

	n := -0.5
	apply(Branching, &n)
	assert.InDelta(t, 3.0, n, 1e-12)

	for _, op := range []Op{Simple, Complex, Branching} {
		f := 0.0
		apply(op, &f)
		assert.False(t, math.IsInf(f, 0) || math.IsNaN(f), op.String())
	}
}

func TestApplyString(t *testing.T) {
	s := "abc"
	assert.Equal(t, 3.0, apply(Simple, &s))
	assert.Equal(t, "cab", s)

	s = "abc"
	apply(Complex, &s)
	assert.Equal(t, "bca", s)

	s = "abc" // 'a' is odd
	apply(Branching, &s)
	assert.Equal(t, "cab", s)

	s = "bcd" // 'b' is even
	apply(Branching, &s)
	assert.Equal(t, "dbc", s)

	s = ""
	assert.Zero(t, apply(Simple, &s))
	assert.Empty(t, s)
}

func TestApplyUnsupported(t *testing.T) {
	b := true
	assert.Zero(t, apply(Simple, &b))
	assert.True(t, b)
}

func TestFold(t *testing.T) {
	assert.InDelta(t, 1.0, fold(0), 1e-12)
	assert.InDelta(t, (1+2.0)/(2.5)-1, fold(-2), 1e-12)
}

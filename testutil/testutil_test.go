package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG(t *testing.T) {
	t.Run("KnownSequence", func(t *testing.T) {
		rng := NewRNG(1)
		// 1 -> 1^(1<<13)=8193 -> 8193^(8193>>17)=8193 -> 8193^(8193<<5)=270369
		assert.Equal(t, uint32(270369), rng.Uint32())
	})

	t.Run("ZeroSeed", func(t *testing.T) {
		rng := NewRNG(0)
		assert.Equal(t, uint32(1), rng.Seed())
		assert.NotZero(t, rng.Uint32())
	})

	t.Run("Reset", func(t *testing.T) {
		rng := NewRNG(4711)
		a := []uint32{rng.Uint32(), rng.Uint32(), rng.Uint32()}
		rng.Reset()
		b := []uint32{rng.Uint32(), rng.Uint32(), rng.Uint32()}
		assert.Equal(t, a, b)
	})

	t.Run("Intn", func(t *testing.T) {
		rng := NewRNG(4711)
		for range 1000 {
			n := rng.Intn(7)
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 7)
		}
		assert.Panics(t, func() { rng.Intn(0) })
	})

	t.Run("Float64", func(t *testing.T) {
		rng := NewRNG(4711)
		for range 1000 {
			f := rng.Float64()
			assert.Greater(t, f, 0.0)
			assert.Less(t, f, 1.0)
		}
	})
}

func TestGenerator(t *testing.T) {
	g := NewGenerator(4711)

	var (
		i   int
		i8  int8
		u16 uint16
		f64 float64
		f32 float32
		s   string
		b   bool
	)
	for range 100 {
		require.True(t, g.Fill(&i))
		require.True(t, g.Fill(&i8))
		require.True(t, g.Fill(&u16))
		require.True(t, g.Fill(&f64))
		require.True(t, g.Fill(&f32))
		require.True(t, g.Fill(&s))
		require.True(t, g.Fill(&b))

		assert.Positive(t, i)
		assert.Positive(t, i8)
		assert.Positive(t, u16)
		assert.Greater(t, f64, 0.0)
		assert.Less(t, f64, 1.0)
		assert.Greater(t, f32, float32(0))
		assert.Less(t, f32, float32(1))
		assert.Len(t, s, DefaultStringSize)
		for _, c := range s {
			assert.True(t, c >= '0' && c <= '9')
		}
	}

	var c complex128
	assert.False(t, g.Fill(&c))
}

func TestGeneratorDeterministic(t *testing.T) {
	a, b := NewGenerator(99), NewGenerator(99)
	for range 50 {
		var x, y int64
		a.Fill(&x)
		b.Fill(&y)
		assert.Equal(t, x, y)
	}
}

func TestSequence(t *testing.T) {
	var (
		i int
		f float64
		s string
	)
	assert.True(t, Sequence(&i, 42))
	assert.True(t, Sequence(&f, 42))
	assert.True(t, Sequence(&s, 42))
	assert.Equal(t, 42, i)
	assert.Equal(t, 42.0, f)
	assert.Equal(t, "42", s)

	var b bool
	assert.False(t, Sequence(&b, 1))
}

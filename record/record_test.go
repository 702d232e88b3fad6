package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEach(t *testing.T) {
	r := Make3(1, 2.5, "x")

	var got []any
	Each(r, func(i int, v any) {
		assert.Equal(t, len(got), i)
		got = append(got, v)
	})
	assert.Equal(t, []any{1, 2.5, "x"}, got)
}

func TestEachPtr(t *testing.T) {
	r := Make3(1, 2, 3)
	EachPtr(&r, func(_ int, p any) {
		*p.(*int) *= 10
	})
	assert.Equal(t, Make3(10, 20, 30), r)
}

func TestZip(t *testing.T) {
	a := Make2(1, "a")
	b := Make2(2, "b")

	var pairs [][2]any
	require.NoError(t, Zip(a, b, func(_ int, x, y any) {
		pairs = append(pairs, [2]any{x, y})
	}))
	assert.Equal(t, [][2]any{{1, 2}, {"a", "b"}}, pairs)

	called := false
	err := Zip(a, Make3(1, "a", 0), func(int, any, any) { called = true })
	assert.ErrorIs(t, err, ErrArityMismatch)
	assert.False(t, called)
}

func TestEqual(t *testing.T) {
	a := Make2(1, []int{1, 2})
	assert.True(t, Equal(a, Make2(1, []int{1, 2})))
	assert.False(t, Equal(a, Make2(1, []int{1, 3})))
	assert.False(t, Equal(Make1(1), Make2(1, 2)))

	v := Make2(1, 2.0)
	assert.True(t, Equal(v, v.Refs()))
	assert.True(t, Equal(v.Refs(), v.Refs().View()))
}

func TestFieldOutOfRange(t *testing.T) {
	r := Make2(1, 2)
	assert.PanicsWithValue(t, "record: field 2 out of range for arity 2", func() { r.Field(2) })
	assert.Panics(t, func() { r.Ptr(-1) })
	assert.Panics(t, func() { r.Refs().Field(5) })
	assert.Panics(t, func() { r.Refs().View().Field(5) })
}

func TestRef(t *testing.T) {
	t.Run("AliasesStorage", func(t *testing.T) {
		ints := []int{1, 2}
		floats := []float64{0.5, 1.5}
		r := Ref2[int, float64]{P0: &ints[1], P1: &floats[1]}

		assert.Equal(t, Make2(2, 1.5), r.Get())
		r.Set(Make2(7, 7.5))
		assert.Equal(t, []int{1, 7}, ints)
		assert.Equal(t, []float64{0.5, 7.5}, floats)

		*r.Ptr(0).(*int) = 9
		assert.Equal(t, 9, ints[1])
		assert.Equal(t, 7.5, r.Field(1))
	})

	t.Run("SwapWith", func(t *testing.T) {
		a := Make3(1, "a", true)
		b := Make3(2, "b", false)
		a.Refs().SwapWith(b.Refs())
		assert.Equal(t, Make3(2, "b", false), a)
		assert.Equal(t, Make3(1, "a", true), b)
	})

	t.Run("SwapWithSelf", func(t *testing.T) {
		a := Make2(1, 2)
		a.Refs().SwapWith(a.Refs())
		assert.Equal(t, Make2(1, 2), a)
	})
}

func TestView(t *testing.T) {
	x, s := 4, "s"
	v := NewView2(&x, &s)
	assert.Equal(t, 2, v.Arity())
	assert.Equal(t, 4, v.F0())
	assert.Equal(t, "s", v.F1())

	x = 5
	assert.Equal(t, 5, v.F0(), "views observe later writes")
	assert.Equal(t, Make2(5, "s"), v.Get())
}

func TestWideTuple(t *testing.T) {
	r := Make8(0, 1, 2, 3, 4, 5, 6, 7)
	assert.Equal(t, 8, r.Arity())
	for i := range r.Arity() {
		assert.Equal(t, i, r.Field(i))
	}
	ref := r.Refs()
	*ref.P7 = 70
	assert.Equal(t, 70, r.V7)
	assert.Equal(t, 70, ref.View().F7())
}

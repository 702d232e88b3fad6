package soa

import (
	"errors"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/soa/record"
)

type pair = record.Tuple2[int, float64]

func mk(i int, f float64) pair { return record.Make2(i, f) }

// filled returns a vector holding (i, i*1.5) for i in [0, n).
func filled(n int) *Vector2[int, float64] {
	v := NewVector2[int, float64]()
	for i := range n {
		v.PushBack(mk(i, float64(i)*1.5))
	}
	return v
}

func contents(v *Vector2[int, float64]) []pair {
	out := make([]pair, 0, v.Len())
	for k := range v.Len() {
		out = append(out, v.Get(k))
	}
	return out
}

func TestVector2(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		v := NewVector2[int, float64]()
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 0, v.Cap())
		assert.True(t, v.Empty())
		assert.Equal(t, 2, v.Arity())
		assert.Positive(t, v.MaxLen())
		assert.True(t, v.Begin().Equal(v.End()))
	})

	t.Run("Len", func(t *testing.T) {
		v, err := NewVector2Len[int, float64](10)
		require.NoError(t, err)
		assert.Equal(t, 10, v.Len())
		assert.GreaterOrEqual(t, v.Cap(), 10)
		assert.False(t, v.Empty())
		for k := range v.Len() {
			assert.Equal(t, mk(0, 0), v.Get(k))
		}
	})

	t.Run("LenTooLarge", func(t *testing.T) {
		_, err := NewVector2Len[int, float64](-1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("Of", func(t *testing.T) {
		v := NewVector2Of(mk(1, 1.5), mk(2, 2.5))
		assert.Equal(t, []pair{mk(1, 1.5), mk(2, 2.5)}, contents(v))
		assert.Equal(t, 2, v.Cap())
	})

	t.Run("WithCapacity", func(t *testing.T) {
		v := NewVector2[int, float64](WithCapacity(64))
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 64, v.Cap())
	})

	t.Run("PushBackAndIndex", func(t *testing.T) {
		v := NewVector2[int, float64]()
		v.PushBack(mk(1, 1.5))
		v.PushBack(mk(2, 2.5))
		require.Equal(t, 2, v.Len())
		assert.Equal(t, 1, *v.Index(0).P0)
		assert.Equal(t, 2.5, *v.Index(1).P1)
		assert.Equal(t, []int{1, 2}, v.Column0())
		assert.Equal(t, []float64{1.5, 2.5}, v.Column1())
	})

	t.Run("WriteThroughView", func(t *testing.T) {
		v := filled(3)
		*v.Index(1).P0 = 42
		v.Index(2).Set(mk(7, 7.5))
		assert.Equal(t, 42, v.Column0()[1])
		assert.Equal(t, mk(7, 7.5), v.Get(2))
	})

	t.Run("PopBack", func(t *testing.T) {
		v := filled(3)
		v.PopBack()
		assert.Equal(t, 2, v.Len())
		assert.Equal(t, mk(1, 1.5), v.Back().Get())
		assert.True(t, v.synchronized())
	})

	t.Run("FrontBack", func(t *testing.T) {
		v := filled(4)
		assert.Equal(t, mk(0, 0), v.Front().Get())
		assert.Equal(t, mk(3, 4.5), v.Back().Get())
		*v.Front().P1 = 9
		assert.Equal(t, 9.0, v.Column1()[0])
	})

	t.Run("At", func(t *testing.T) {
		v := filled(2)
		r, err := v.At(1)
		require.NoError(t, err)
		assert.Equal(t, mk(1, 1.5), r.Get())

		_, err = v.At(2)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfRange))

		var oob *ErrIndexOutOfBounds
		require.ErrorAs(t, err, &oob)
		assert.Equal(t, 2, oob.Index)
		assert.Equal(t, 2, oob.Len)

		_, err = v.At(-1)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("View", func(t *testing.T) {
		v := filled(2)
		view := v.View(1)
		assert.Equal(t, 1, view.F0())
		assert.Equal(t, 1.5, view.F1())
		assert.Equal(t, mk(1, 1.5), view.Get())
	})

	t.Run("EmplaceBack", func(t *testing.T) {
		v := NewVector2[int, float64]()
		r := v.EmplaceBack(5, 5.5)
		assert.Equal(t, mk(5, 5.5), r.Get())
		*r.P0 = 6
		assert.Equal(t, mk(6, 5.5), v.Get(0))
	})
}

func TestVector2Capacity(t *testing.T) {
	t.Run("ReserveExact", func(t *testing.T) {
		v := NewVector2[int, float64]()
		require.NoError(t, v.Reserve(1000))
		assert.Equal(t, 1000, v.Cap())
		assert.Equal(t, 0, v.Len())
	})

	t.Run("ReserveSmallerIsNoop", func(t *testing.T) {
		v := NewVector2[int, float64]()
		require.NoError(t, v.Reserve(100))
		require.NoError(t, v.Reserve(10))
		assert.Equal(t, 100, v.Cap())
	})

	t.Run("ReserveKeepsContents", func(t *testing.T) {
		v := filled(5)
		require.NoError(t, v.Reserve(500))
		assert.Equal(t, 500, v.Cap())
		assert.Equal(t, contents(filled(5)), contents(v))
	})

	t.Run("ReserveTooLarge", func(t *testing.T) {
		v := NewVector2[int, float64]()
		gen := v.Generation()
		err := v.Reserve(v.MaxLen() + 1)
		require.Error(t, err)

		var ce *ErrCapacityExceeded
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, v.MaxLen(), ce.Max)
		assert.ErrorIs(t, err, ErrTooLarge)
		assert.Equal(t, gen, v.Generation())
	})

	t.Run("ShrinkEmpty", func(t *testing.T) {
		v := NewVector2[int, float64]()
		require.NoError(t, v.Reserve(1000))
		v.ShrinkToFit()
		assert.Equal(t, 0, v.Cap())
	})

	t.Run("ShrinkKeepsContents", func(t *testing.T) {
		v := filled(3)
		require.NoError(t, v.Reserve(100))
		v.ShrinkToFit()
		assert.Equal(t, 3, v.Cap())
		assert.Equal(t, contents(filled(3)), contents(v))
	})

	t.Run("MaxLenIsSmallestColumn", func(t *testing.T) {
		narrow := NewVector1[int8]()
		wide := NewVector2[int8, [64]byte]()
		assert.Less(t, wide.MaxLen(), narrow.MaxLen())
	})

	t.Run("Clear", func(t *testing.T) {
		v := filled(10)
		v.Clear()
		assert.True(t, v.Empty())
		assert.True(t, v.synchronized())
	})
}

func TestVector2Resize(t *testing.T) {
	t.Run("Grow", func(t *testing.T) {
		v := filled(2)
		require.NoError(t, v.Resize(4))
		assert.Equal(t, []pair{mk(0, 0), mk(1, 1.5), mk(0, 0), mk(0, 0)}, contents(v))
	})

	t.Run("Shrink", func(t *testing.T) {
		v := filled(4)
		require.NoError(t, v.Resize(1))
		assert.Equal(t, []pair{mk(0, 0)}, contents(v))
	})

	t.Run("Fill", func(t *testing.T) {
		v := filled(1)
		require.NoError(t, v.ResizeFill(3, mk(9, 9.5)))
		assert.Equal(t, []pair{mk(0, 0), mk(9, 9.5), mk(9, 9.5)}, contents(v))
	})

	t.Run("ShrinkThenGrowZeroes", func(t *testing.T) {
		v := filled(4)
		require.NoError(t, v.Resize(1))
		require.NoError(t, v.Resize(3))
		assert.Equal(t, []pair{mk(0, 0), mk(0, 0), mk(0, 0)}, contents(v))
	})

	t.Run("Negative", func(t *testing.T) {
		v := filled(2)
		assert.ErrorIs(t, v.Resize(-1), ErrTooLarge)
		assert.ErrorIs(t, v.ResizeFill(-1, mk(0, 0)), ErrTooLarge)
		assert.Equal(t, 2, v.Len())
	})
}

func TestVector2Insert(t *testing.T) {
	t.Run("Single", func(t *testing.T) {
		v := filled(3)
		it := v.Insert(1, mk(10, 10.5))
		assert.Equal(t, 1, it.Index())
		assert.Equal(t, mk(10, 10.5), it.Get().Get())
		assert.Equal(t, []pair{mk(0, 0), mk(10, 10.5), mk(1, 1.5), mk(2, 3)}, contents(v))
		assert.True(t, v.synchronized())
	})

	t.Run("AtEnd", func(t *testing.T) {
		v := filled(2)
		it := v.Insert(v.Len(), mk(5, 5))
		assert.Equal(t, 2, it.Index())
		assert.Equal(t, mk(5, 5), v.Back().Get())
	})

	t.Run("IntoEmpty", func(t *testing.T) {
		v := NewVector2[int, float64]()
		it := v.Insert(0, mk(1, 1))
		assert.Equal(t, 0, it.Index())
		assert.Equal(t, 1, v.Len())
	})

	t.Run("N", func(t *testing.T) {
		v := filled(2)
		it, err := v.InsertN(1, 3, mk(7, 7))
		require.NoError(t, err)
		assert.Equal(t, 1, it.Index())
		assert.Equal(t, []pair{mk(0, 0), mk(7, 7), mk(7, 7), mk(7, 7), mk(1, 1.5)}, contents(v))
	})

	t.Run("NZero", func(t *testing.T) {
		v := filled(2)
		it, err := v.InsertN(1, 0, mk(7, 7))
		require.NoError(t, err)
		assert.Equal(t, 1, it.Index())
		assert.Equal(t, 2, v.Len())
	})

	t.Run("NTooLarge", func(t *testing.T) {
		v := filled(2)
		_, err := v.InsertN(0, -1, mk(7, 7))
		assert.ErrorIs(t, err, ErrTooLarge)
		assert.Equal(t, contents(filled(2)), contents(v))
	})

	t.Run("Range", func(t *testing.T) {
		src := NewVector2Of(mk(7, 7), mk(8, 8), mk(9, 9))
		v := filled(2)
		it := v.InsertRange(1, src.CBegin().Advance(1), src.CEnd())
		assert.Equal(t, 1, it.Index())
		assert.Equal(t, []pair{mk(0, 0), mk(8, 8), mk(9, 9), mk(1, 1.5)}, contents(v))
		assert.Equal(t, 3, src.Len())
	})

	t.Run("RangeFromSelf", func(t *testing.T) {
		v := filled(3)
		v.InsertRange(0, v.CBegin(), v.CEnd())
		assert.Equal(t, append(contents(filled(3)), contents(filled(3))...), contents(v))
	})

	t.Run("RangeEmpty", func(t *testing.T) {
		v := filled(2)
		it := v.InsertRange(2, v.CEnd(), v.CEnd())
		assert.Equal(t, 2, it.Index())
		assert.Equal(t, 2, v.Len())
	})

	t.Run("Records", func(t *testing.T) {
		v := filled(2)
		it := v.InsertRecords(1, mk(5, 5), mk(6, 6))
		assert.Equal(t, 1, it.Index())
		assert.Equal(t, []pair{mk(0, 0), mk(5, 5), mk(6, 6), mk(1, 1.5)}, contents(v))
	})

	t.Run("Emplace", func(t *testing.T) {
		v := filled(2)
		it := v.Emplace(0, 4, 4.5)
		assert.Equal(t, mk(4, 4.5), it.Get().Get())
		assert.Equal(t, mk(4, 4.5), v.Front().Get())
	})

	t.Run("BadPositionPanicsBeforeMutation", func(t *testing.T) {
		v := filled(2)
		gen := v.Generation()
		assert.Panics(t, func() { v.Insert(3, mk(1, 1)) })
		assert.Panics(t, func() { v.Emplace(-1, 1, 1) })
		assert.Equal(t, contents(filled(2)), contents(v))
		assert.Equal(t, gen, v.Generation())
		assert.True(t, v.synchronized())
	})
}

func TestVector2Erase(t *testing.T) {
	t.Run("Single", func(t *testing.T) {
		v := filled(4)
		it := v.Erase(1)
		assert.Equal(t, 1, it.Index())
		assert.Equal(t, mk(2, 3), it.Get().Get())
		assert.Equal(t, []pair{mk(0, 0), mk(2, 3), mk(3, 4.5)}, contents(v))
	})

	t.Run("Last", func(t *testing.T) {
		v := filled(3)
		it := v.Erase(2)
		assert.True(t, it.Equal(v.End()))
	})

	t.Run("Range", func(t *testing.T) {
		v := filled(5)
		it := v.EraseRange(1, 3)
		assert.Equal(t, 1, it.Index())
		assert.Equal(t, []pair{mk(0, 0), mk(3, 4.5), mk(4, 6)}, contents(v))
	})

	t.Run("EmptyRange", func(t *testing.T) {
		v := filled(3)
		it := v.EraseRange(1, 1)
		assert.Equal(t, 1, it.Index())
		assert.Equal(t, 3, v.Len())
	})

	t.Run("All", func(t *testing.T) {
		v := filled(3)
		it := v.EraseRange(0, v.Len())
		assert.True(t, v.Empty())
		assert.True(t, it.Equal(v.End()))
	})

	t.Run("BadRange", func(t *testing.T) {
		v := filled(3)
		assert.Panics(t, func() { v.Erase(3) })
		assert.Panics(t, func() { v.EraseRange(2, 1) })
		assert.Equal(t, 3, v.Len())
	})

	t.Run("Rows", func(t *testing.T) {
		v := filled(6)
		n := v.EraseRows(roaring.BitmapOf(1, 3, 4, 99))
		assert.Equal(t, 3, n)
		assert.Equal(t, []pair{mk(0, 0), mk(2, 3), mk(5, 7.5)}, contents(v))
		assert.True(t, v.synchronized())
	})

	t.Run("RowsNone", func(t *testing.T) {
		v := filled(3)
		gen := v.Generation()
		assert.Zero(t, v.EraseRows(nil))
		assert.Zero(t, v.EraseRows(roaring.New()))
		assert.Zero(t, v.EraseRows(roaring.BitmapOf(7)))
		assert.Equal(t, gen, v.Generation())
	})
}

func TestVector2Assign(t *testing.T) {
	t.Run("Records", func(t *testing.T) {
		v := filled(5)
		v.Assign(mk(1, 1), mk(2, 2))
		assert.Equal(t, []pair{mk(1, 1), mk(2, 2)}, contents(v))
	})

	t.Run("N", func(t *testing.T) {
		v := filled(5)
		require.NoError(t, v.AssignN(2, mk(3, 3)))
		assert.Equal(t, []pair{mk(3, 3), mk(3, 3)}, contents(v))
		assert.ErrorIs(t, v.AssignN(-2, mk(3, 3)), ErrTooLarge)
	})

	t.Run("Range", func(t *testing.T) {
		src := filled(4)
		v := filled(1)
		v.AssignRange(src.CBegin().Advance(2), src.CEnd())
		assert.Equal(t, []pair{mk(2, 3), mk(3, 4.5)}, contents(v))
	})

	t.Run("RangeFromSelf", func(t *testing.T) {
		v := filled(4)
		v.AssignRange(v.CBegin().Advance(1), v.CBegin().Advance(3))
		assert.Equal(t, []pair{mk(1, 1.5), mk(2, 3)}, contents(v))
		assert.True(t, v.synchronized())
	})
}

func TestVector2CopyMoveSwap(t *testing.T) {
	t.Run("CloneIsIndependent", func(t *testing.T) {
		v := filled(3)
		c := v.Clone()
		*c.Index(0).P0 = 100
		c.PushBack(mk(9, 9))
		assert.Equal(t, 0, v.Column0()[0])
		assert.Equal(t, 3, v.Len())
		assert.Equal(t, 4, c.Len())
	})

	t.Run("CopyFrom", func(t *testing.T) {
		v := filled(1)
		src := filled(3)
		v.CopyFrom(src)
		assert.Equal(t, contents(src), contents(v))
		*v.Index(0).P0 = 100
		assert.Equal(t, 0, src.Column0()[0])
	})

	t.Run("CopyFromSelf", func(t *testing.T) {
		v := filled(3)
		v.CopyFrom(v)
		assert.Equal(t, contents(filled(3)), contents(v))
	})

	t.Run("Move", func(t *testing.T) {
		v := filled(3)
		col := v.Column0()
		m := v.Move()
		assert.Equal(t, contents(filled(3)), contents(m))
		assert.Equal(t, 0, v.Len())
		assert.True(t, v.synchronized())
		assert.Same(t, &col[0], &m.Column0()[0])
	})

	t.Run("Swap", func(t *testing.T) {
		a := filled(2)
		b := NewVector2Of(mk(9, 9))
		a0 := &a.Column0()[0]
		Swap2(a, b)
		assert.Equal(t, []pair{mk(9, 9)}, contents(a))
		assert.Equal(t, contents(filled(2)), contents(b))
		assert.Same(t, a0, &b.Column0()[0])
	})
}

func TestVector2Generation(t *testing.T) {
	v := filled(2)
	it := v.Begin()
	assert.True(t, it.Valid())

	*it.Get().P0 = 5
	assert.True(t, it.Valid())

	v.PushBack(mk(1, 1))
	assert.False(t, it.Valid())
	assert.True(t, v.Begin().Valid())

	var zero Iterator2[int, float64]
	assert.False(t, zero.Valid())
}

func TestVector2All(t *testing.T) {
	v := filled(4)
	var seen []int
	for k, r := range v.All() {
		seen = append(seen, k)
		*r.P0 *= 10
		if k == 2 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Equal(t, []int{0, 10, 20, 3}, v.Column0())
}

func TestContainer(t *testing.T) {
	var c Container = filled(3)
	assert.Equal(t, 2, c.Arity())

	var fields []any
	c.VisitRecord(1, func(i int, p any) {
		switch i {
		case 0:
			fields = append(fields, *p.(*int))
		case 1:
			fields = append(fields, *p.(*float64))
		}
	})
	assert.Equal(t, []any{1, 1.5}, fields)

	sum := 0.0
	c.VisitColumn(1, func(_ int, p any) {
		sum += *p.(*float64)
	})
	assert.InDelta(t, 4.5, sum, 1e-9)
}

func TestWideVector(t *testing.T) {
	v := NewVector5[int, int, int, int, int]()
	for i := range 10 {
		v.EmplaceBack(i, i+1, i+2, i+3, i+4)
	}
	v.Erase(0)
	v.Insert(0, record.Make5(-1, -1, -1, -1, -1))
	assert.True(t, v.synchronized())
	assert.Equal(t, record.Make5(-1, -1, -1, -1, -1), v.Get(0))
	assert.Equal(t, record.Make5(9, 10, 11, 12, 13), v.Back().Get())

	one := NewVector1Of(record.Make1("a"), record.Make1("b"))
	assert.Equal(t, []string{"a", "b"}, one.Column0())
	assert.True(t, one.Begin().synced())
}

func TestVector2Scenarios(t *testing.T) {
	three := func() *Vector2[int, float64] {
		return NewVector2Of(mk(3, 5.0), mk(123, 92.2), mk(74, 84.8))
	}

	t.Run("PushTwo", func(t *testing.T) {
		v := NewVector2[int, float64]()
		require.Equal(t, 0, v.Len())
		v.PushBack(mk(3, 5.0))
		v.PushBack(mk(123, 92.2))
		assert.Equal(t, 2, v.Len())
		assert.Equal(t, mk(123, 92.2), v.Index(1).Get())
	})

	t.Run("PopBack", func(t *testing.T) {
		v := three()
		v.PopBack()
		assert.Equal(t, 2, v.Len())
		assert.Equal(t, mk(123, 92.2), v.Back().Get())
	})

	t.Run("Swap", func(t *testing.T) {
		a := NewVector2Of(mk(3, 5.0), mk(123, 92.2))
		b := NewVector2Of(mk(74, 84.8), mk(8, 98.4))
		a.Swap(b)
		assert.Equal(t, mk(74, 84.8), a.Get(0))
		assert.Equal(t, mk(8, 98.4), a.Get(1))
		assert.Equal(t, mk(3, 5.0), b.Get(0))
	})

	t.Run("InsertBeforeOne", func(t *testing.T) {
		v := three()
		it := v.Insert(1, mk(8, 98.4))
		assert.Equal(t, mk(8, 98.4), it.Get().Get())
		assert.Equal(t, 4, v.Len())
		assert.Equal(t, mk(3, 5.0), v.Get(0))
		assert.Equal(t, mk(8, 98.4), v.Get(1))
		assert.Equal(t, mk(123, 92.2), v.Get(2))
		assert.Equal(t, mk(74, 84.8), v.Get(3))
	})

	t.Run("ReserveMore", func(t *testing.T) {
		v := three()
		want := v.Cap() + 1000
		require.NoError(t, v.Reserve(want))
		assert.GreaterOrEqual(t, v.Cap(), want)
		assert.Equal(t, 3, v.Len())
	})

	t.Run("ColumnIteration", func(t *testing.T) {
		const n = 1_000_000
		v, err := NewVector2Len[int, float64](n)
		require.NoError(t, err)
		for k := range n {
			*v.Index(k).P0 = k * 7
		}

		col := v.Column0()
		require.Len(t, col, n)
		for k, x := range col {
			if x != k*7 || *v.Index(k).P0 != x {
				t.Fatalf("record %d: column %d, view %d", k, x, *v.Index(k).P0)
			}
		}
	})
}

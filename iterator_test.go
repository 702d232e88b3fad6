package soa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator2(t *testing.T) {
	t.Run("Walk", func(t *testing.T) {
		v := filled(3)
		var got []pair
		for it := v.Begin(); !it.Equal(v.End()); it.Next() {
			require.True(t, it.synced())
			got = append(got, it.Get().Get())
		}
		assert.Equal(t, contents(v), got)
	})

	t.Run("WriteThrough", func(t *testing.T) {
		v := filled(3)
		for it := v.Begin(); !it.Equal(v.End()); it.Next() {
			*it.Get().P1 += 1
		}
		assert.Equal(t, []float64{1, 2.5, 4}, v.Column1())
	})

	t.Run("Backward", func(t *testing.T) {
		v := filled(3)
		var got []int
		it := v.End()
		for !it.Equal(v.Begin()) {
			it.Prev()
			got = append(got, *it.Get().P0)
		}
		assert.Equal(t, []int{2, 1, 0}, got)
	})

	t.Run("Postfix", func(t *testing.T) {
		v := filled(3)
		it := v.Begin()
		old := it.PostNext()
		assert.Equal(t, 0, old.Index())
		assert.Equal(t, 1, it.Index())
		assert.Equal(t, 0, *old.Get().P0)
		assert.Equal(t, 1, *it.Get().P0)

		old = it.PostPrev()
		assert.Equal(t, 1, old.Index())
		assert.Equal(t, 0, it.Index())
		assert.True(t, old.synced())
		assert.True(t, it.synced())
	})

	t.Run("Prefix", func(t *testing.T) {
		v := filled(3)
		it := v.Begin()
		it.Next()
		it.Next()
		assert.Equal(t, mk(2, 3), it.Get().Get())
		it.Prev()
		assert.Equal(t, mk(1, 1.5), it.Get().Get())
	})

	t.Run("Advance", func(t *testing.T) {
		v := filled(5)
		it := v.Begin()
		fwd := it.Advance(3)
		assert.Equal(t, 0, it.Index())
		assert.Equal(t, 3, fwd.Index())
		assert.Equal(t, 1, fwd.Advance(-2).Index())
		assert.True(t, fwd.synced())
	})

	t.Run("Distance", func(t *testing.T) {
		v := filled(5)
		assert.Equal(t, 5, v.Begin().Distance(v.End()))
		assert.Equal(t, -5, v.End().Distance(v.Begin()))
		assert.Equal(t, 0, v.Begin().Distance(v.Begin()))
		assert.Equal(t, 2, v.Begin().Advance(1).Distance(v.Begin().Advance(3)))
	})

	t.Run("Equality", func(t *testing.T) {
		v := filled(3)
		a := v.Begin()
		b := v.Begin()
		assert.True(t, a.Equal(b))
		b.Next()
		assert.False(t, a.Equal(b))
		a.Next()
		assert.True(t, a.Equal(b))
	})

	t.Run("DifferentContainers", func(t *testing.T) {
		a := filled(3)
		b := filled(3)
		assert.False(t, a.Begin().Equal(b.Begin()))
	})

	t.Run("EmptyContainer", func(t *testing.T) {
		v := NewVector2[int, float64]()
		assert.True(t, v.Begin().Equal(v.End()))
		assert.Equal(t, 0, v.Begin().Distance(v.End()))
	})
}

func TestConstIterator2(t *testing.T) {
	t.Run("Walk", func(t *testing.T) {
		v := filled(3)
		var got []pair
		for it := v.CBegin(); !it.Equal(v.CEnd()); it.Next() {
			got = append(got, it.Get().Get())
		}
		assert.Equal(t, contents(v), got)
	})

	t.Run("Fields", func(t *testing.T) {
		v := filled(3)
		it := v.CBegin().Advance(2)
		assert.Equal(t, 2, it.Get().F0())
		assert.Equal(t, 3.0, it.Get().F1())
	})

	t.Run("FromMutable", func(t *testing.T) {
		v := filled(3)
		it := v.Begin().Advance(1)
		c := it.Const()
		assert.Equal(t, it.Index(), c.Index())
		assert.True(t, c.Valid())
		assert.True(t, c.Equal(v.CBegin().Advance(1)))
	})

	t.Run("Postfix", func(t *testing.T) {
		v := filled(2)
		it := v.CBegin()
		old := it.PostNext()
		assert.Equal(t, 0, old.Get().F0())
		assert.Equal(t, 1, it.Get().F0())
		old = it.PostPrev()
		assert.Equal(t, 1, old.Index())
		assert.True(t, it.synced())
	})

	t.Run("Distance", func(t *testing.T) {
		v := filled(4)
		assert.Equal(t, 4, v.CBegin().Distance(v.CEnd()))
		assert.Equal(t, -1, v.CEnd().Distance(v.CEnd().Advance(-1)))
	})

	t.Run("Invalidated", func(t *testing.T) {
		v := filled(2)
		it := v.CBegin()
		v.Erase(0)
		assert.False(t, it.Valid())
	})
}

package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumn_AppendInsertDelete(t *testing.T) {
	c := New[int]()
	c.Append(1)
	c.Append(3)
	c.Insert(1, 2)
	assert.Equal(t, []int{1, 2, 3}, c.Slice())

	c.InsertN(0, 2, 9)
	assert.Equal(t, []int{9, 9, 1, 2, 3}, c.Slice())

	c.Delete(0, 2)
	assert.Equal(t, []int{1, 2, 3}, c.Slice())

	c.InsertSlice(3, c.Slice())
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, c.Slice())
}

func TestColumn_DeleteSorted(t *testing.T) {
	c := New[string]()
	c.AppendSlice([]string{"a", "b", "c", "d", "e"})
	c.DeleteSorted([]int{0, 2, 4})
	assert.Equal(t, []string{"b", "d"}, c.Slice())

	c.DeleteSorted(nil)
	assert.Equal(t, []string{"b", "d"}, c.Slice())
}

func TestColumn_Capacity(t *testing.T) {
	c := New[float64]()
	c.Append(1)
	c.Reserve(100)
	assert.Equal(t, 100, c.Cap())
	assert.Equal(t, 1, c.Len())

	c.Reserve(10)
	assert.Equal(t, 100, c.Cap(), "reserve never shrinks")

	c.ShrinkToFit()
	assert.Equal(t, 1, c.Cap())

	c.Clear()
	c.ShrinkToFit()
	assert.Equal(t, 0, c.Cap())
	assert.Positive(t, c.MaxLen())
}

func TestColumn_ResizeGrowTruncate(t *testing.T) {
	c := New[int]()
	c.Resize(3, 7)
	assert.Equal(t, []int{7, 7, 7}, c.Slice())

	c.Truncate(1)
	c.Grow(3)
	assert.Equal(t, []int{7, 0, 0}, c.Slice(), "grown slots are zeroed, not stale")

	c.Resize(2, 5)
	assert.Equal(t, []int{7, 0}, c.Slice())

	c.Fill(2, 4)
	assert.Equal(t, []int{4, 4}, c.Slice())
}

func TestColumn_CloneIsIndependent(t *testing.T) {
	c := New[int]()
	c.AppendSlice([]int{1, 2})
	d := c.Clone()
	*d.At(0) = 100
	assert.Equal(t, 1, *c.At(0))

	e := New[int]()
	e.CopyFrom(c)
	assert.Equal(t, c.Slice(), e.Slice())
}

func TestColumn_SwapWith(t *testing.T) {
	a, b := New[int](), New[int]()
	a.AppendSlice([]int{1, 2, 3})
	b.Append(9)
	pa := a.At(0)

	a.SwapWith(b)
	assert.Equal(t, []int{9}, a.Slice())
	assert.Equal(t, []int{1, 2, 3}, b.Slice())
	assert.Same(t, pa, b.At(0), "swap must not copy element storage")
}

func TestIter(t *testing.T) {
	c := New[int]()
	c.AppendSlice([]int{10, 20, 30})

	it := c.Begin()
	assert.Equal(t, 10, it.Value())
	it.Next()
	*it.Ptr() = 21
	assert.Equal(t, 21, c.Slice()[1])

	end := c.End()
	assert.Equal(t, 2, it.Distance(end))
	it.Advance(2)
	assert.True(t, it.Equal(end))
	it.Prev()
	assert.Equal(t, 30, it.Value())

	other := New[int]()
	other.AppendSlice([]int{10, 20, 30})
	assert.False(t, other.IterAt(2).Equal(it))
}

func TestSet_EachAndZip(t *testing.T) {
	a, b := New[int](), New[string]()
	s := Set{a, b}

	var order []int
	s.Each(func(i int, c Any) {
		order = append(order, i)
		c.Grow(2)
	})
	assert.Equal(t, []int{0, 1}, order)
	assert.True(t, s.Synchronized())

	clone := s.Clone()
	require.Len(t, clone, 2)
	*clone[0].(*Column[int]).At(0) = 5
	assert.Equal(t, 0, *a.At(0))

	s.Zip(clone, func(_ int, x, y Any) {
		x.SwapWith(y)
	})
	assert.Equal(t, 5, *a.At(0))

	a.Append(1)
	assert.False(t, s.Synchronized())

	assert.Panics(t, func() {
		s.Zip(Set{a}, func(int, Any, Any) {})
	})
}

func TestColumn_Visit(t *testing.T) {
	c := New[int]()
	c.AppendSlice([]int{1, 2, 3})
	c.Visit(func(i int, p any) {
		*p.(*int) *= 10
	})
	assert.Equal(t, []int{10, 20, 30}, c.Slice())
	assert.Equal(t, 20, *c.PtrAt(1).(*int))
}

func TestColumn_AssignAliased(t *testing.T) {
	c := New[int]()
	c.AppendSlice([]int{1, 2, 3, 4})
	c.Assign(c.Slice()[2:])
	assert.Equal(t, []int{3, 4}, c.Slice())

	it := c.Begin()
	assert.Equal(t, []int{3, 4}, it.Span(c.End()))
}

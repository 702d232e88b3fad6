package column

import (
	"math"
	"slices"
	"unsafe"
)

// Column is a growable sequence of T with explicit capacity control.
//
// Capacity follows the caller: Reserve(n) yields exactly n slots, and
// ShrinkToFit trims to the length.
type Column[T any] struct {
	data []T
}

var _ Any = (*Column[int])(nil)

// New returns an empty column.
func New[T any]() *Column[T] {
	return &Column[T]{}
}

// Len returns the number of stored elements.
func (c *Column[T]) Len() int { return len(c.data) }

// Cap returns the number of elements the column can hold without reallocating.
func (c *Column[T]) Cap() int { return cap(c.data) }

// MaxLen returns the largest length the column can theoretically reach.
func (c *Column[T]) MaxLen() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}

// Slice exposes the live backing storage. It is invalidated by any call
// that may grow, shrink or shift the column.
func (c *Column[T]) Slice() []T { return c.data }

// At returns a pointer to element i.
func (c *Column[T]) At(i int) *T { return &c.data[i] }

// PtrAt returns a pointer to element i boxed as any.
func (c *Column[T]) PtrAt(i int) any { return &c.data[i] }

// Append adds v at the end.
func (c *Column[T]) Append(v T) {
	c.data = append(c.data, v)
}

// AppendSlice adds vs at the end, in order.
func (c *Column[T]) AppendSlice(vs []T) {
	c.data = append(c.data, vs...)
}

// Insert places v before position i.
func (c *Column[T]) Insert(i int, v T) {
	c.data = slices.Insert(c.data, i, v)
}

// InsertN places count copies of v before position i.
func (c *Column[T]) InsertN(i, count int, v T) {
	if count <= 0 {
		return
	}
	c.data = slices.Insert(c.data, i, slices.Repeat([]T{v}, count)...)
}

// InsertSlice places vs before position i. vs may alias the column.
func (c *Column[T]) InsertSlice(i int, vs []T) {
	if len(vs) == 0 {
		return
	}
	c.data = slices.Insert(c.data, i, slices.Clone(vs)...)
}

// Delete removes elements [i, j).
func (c *Column[T]) Delete(i, j int) {
	c.data = slices.Delete(c.data, i, j)
}

// DeleteSorted removes the elements at the given strictly ascending
// positions in one compaction pass.
func (c *Column[T]) DeleteSorted(rows []int) {
	if len(rows) == 0 {
		return
	}
	w := rows[0]
	next := 0
	for r := rows[0]; r < len(c.data); r++ {
		if next < len(rows) && rows[next] == r {
			next++
			continue
		}
		c.data[w] = c.data[r]
		w++
	}
	c.Truncate(w)
}

// Truncate shrinks the length to n, zeroing the released slots.
func (c *Column[T]) Truncate(n int) {
	clear(c.data[n:])
	c.data = c.data[:n]
}

// Grow extends the length to n with zero values. It is a no-op if n <= Len.
func (c *Column[T]) Grow(n int) {
	old := len(c.data)
	if n <= old {
		return
	}
	c.data = slices.Grow(c.data, n-old)[:n]
	clear(c.data[old:])
}

// Resize sets the length to n, filling new slots with fill.
func (c *Column[T]) Resize(n int, fill T) {
	old := len(c.data)
	if n <= old {
		c.Truncate(n)
		return
	}
	c.data = slices.Grow(c.data, n-old)[:n]
	for i := old; i < n; i++ {
		c.data[i] = fill
	}
}

// Reserve ensures Cap() >= n. When it reallocates, the new capacity is
// exactly n.
func (c *Column[T]) Reserve(n int) {
	if n <= cap(c.data) {
		return
	}
	grown := make([]T, len(c.data), n)
	copy(grown, c.data)
	c.data = grown
}

// ShrinkToFit releases unused capacity.
func (c *Column[T]) ShrinkToFit() {
	if cap(c.data) == len(c.data) {
		return
	}
	if len(c.data) == 0 {
		c.data = nil
		return
	}
	c.data = slices.Clip(slices.Clone(c.data))
}

// Clear removes every element. Capacity is kept.
func (c *Column[T]) Clear() {
	c.Truncate(0)
}

// Fill replaces the contents with count copies of v.
func (c *Column[T]) Fill(count int, v T) {
	c.Clear()
	c.Resize(count, v)
}

// Assign replaces the contents with a copy of vs. vs may alias the column.
func (c *Column[T]) Assign(vs []T) {
	old := len(c.data)
	c.data = append(c.data[:0], vs...)
	if n := len(c.data); n < old {
		clear(c.data[n:old])
	}
}

// Clone returns an independent copy.
func (c *Column[T]) Clone() *Column[T] {
	return &Column[T]{data: slices.Clone(c.data)}
}

// CloneAny is Clone behind the Any interface.
func (c *Column[T]) CloneAny() Any { return c.Clone() }

// CopyFrom replaces the contents with a copy of src, which must be a
// *Column[T].
func (c *Column[T]) CopyFrom(src Any) {
	c.Assign(src.(*Column[T]).data)
}

// SwapWith exchanges storage with o, which must be a *Column[T]. No element
// is copied.
func (c *Column[T]) SwapWith(o Any) {
	other := o.(*Column[T])
	c.data, other.data = other.data, c.data
}

// Visit calls fn with a pointer to every element, in index order.
func (c *Column[T]) Visit(fn func(i int, p any)) {
	for i := range c.data {
		fn(i, &c.data[i])
	}
}

// Begin returns a cursor at the first element.
func (c *Column[T]) Begin() Iter[T] { return Iter[T]{c: c} }

// End returns the one-past-the-last cursor.
func (c *Column[T]) End() Iter[T] { return Iter[T]{c: c, i: len(c.data)} }

// IterAt returns a cursor at position i.
func (c *Column[T]) IterAt(i int) Iter[T] { return Iter[T]{c: c, i: i} }

package column

// Iter is a bidirectional cursor into a Column.
//
// The zero Iter is detached. Dereferencing the end position panics like an
// out-of-range slice index.
type Iter[T any] struct {
	c *Column[T]
	i int
}

// Next moves one element forward.
func (it *Iter[T]) Next() { it.i++ }

// Prev moves one element backward.
func (it *Iter[T]) Prev() { it.i-- }

// Advance moves n elements; n may be negative.
func (it *Iter[T]) Advance(n int) { it.i += n }

// Index returns the position within the column.
func (it Iter[T]) Index() int { return it.i }

// Ptr returns a pointer to the current element.
func (it Iter[T]) Ptr() *T { return &it.c.data[it.i] }

// Value returns a copy of the current element.
func (it Iter[T]) Value() T { return it.c.data[it.i] }

// Equal reports whether both cursors address the same slot of the same column.
func (it Iter[T]) Equal(o Iter[T]) bool { return it.c == o.c && it.i == o.i }

// Distance returns the signed number of steps from it to last.
func (it Iter[T]) Distance(last Iter[T]) int { return last.i - it.i }

// Span returns the live elements in [it, last).
func (it Iter[T]) Span(last Iter[T]) []T { return it.c.data[it.i:last.i] }

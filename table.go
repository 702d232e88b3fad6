package soa

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/soa/internal/column"
)

// table is the arity-independent core shared by every VectorN. It owns the
// column set and dispatches record-agnostic operations to each column in
// field order.
//
// Invariant: between public calls every column has the same length.
type table struct {
	cols column.Set
	gen  uint64
}

func newTable(cols column.Set, opts []Option) table {
	t := table{cols: cols}
	o := applyOptions(opts)
	if o.capacity > 0 {
		_ = t.Reserve(o.capacity)
	}
	return t
}

// Len returns the number of records.
func (t *table) Len() int { return t.cols[0].Len() }

// Cap returns the capacity of the first column. Other columns may differ;
// only lengths are kept in step.
func (t *table) Cap() int { return t.cols[0].Cap() }

// MaxLen returns the largest number of records every column can hold.
func (t *table) MaxLen() int {
	m := t.cols[0].MaxLen()
	for _, c := range t.cols[1:] {
		m = min(m, c.MaxLen())
	}
	return m
}

// Empty reports whether Len is zero.
func (t *table) Empty() bool { return t.Len() == 0 }

// Generation is incremented by every operation that may reallocate, shift or
// resize column storage. Views and iterators obtained under an older
// generation must not be used.
func (t *table) Generation() uint64 { return t.gen }

func (t *table) touch() { t.gen++ }

func (t *table) checkLen(n int) error {
	if m := t.MaxLen(); n < 0 || n > m {
		return &ErrCapacityExceeded{Requested: n, Max: m}
	}
	return nil
}

func (t *table) checkIndex(k int) error {
	if n := t.Len(); k < 0 || k >= n {
		return &ErrIndexOutOfBounds{Index: k, Len: n}
	}
	return nil
}

// mustPos panics unless pos is a valid insertion point. Checking up front
// keeps the columns in step when the caller passes a bad position.
func (t *table) mustPos(pos int) {
	if n := t.Len(); pos < 0 || pos > n {
		panic(&ErrIndexOutOfBounds{Index: pos, Len: n})
	}
}

func (t *table) mustRange(first, last int) {
	if n := t.Len(); first < 0 || first > last || last > n {
		panic(&ErrIndexOutOfBounds{Index: last, Len: n})
	}
}

// reserveExtra makes room for extra more records in every column before any
// of them is modified, so a bulk insert never stops halfway on growth.
func (t *table) reserveExtra(extra int) error {
	need := t.Len() + extra
	if extra < 0 || need < 0 {
		return &ErrCapacityExceeded{Requested: need, Max: t.MaxLen()}
	}
	if err := t.checkLen(need); err != nil {
		return err
	}
	t.cols.Each(func(_ int, c column.Any) {
		if need > c.Cap() {
			c.Reserve(max(need, 2*c.Cap()))
		}
	})
	return nil
}

// Reserve ensures every column can hold n records without reallocating.
func (t *table) Reserve(n int) error {
	if err := t.checkLen(n); err != nil {
		return err
	}
	t.cols.Each(func(_ int, c column.Any) {
		c.Reserve(n)
	})
	t.touch()
	return nil
}

// ShrinkToFit releases unused capacity in every column.
func (t *table) ShrinkToFit() {
	t.cols.Each(func(_ int, c column.Any) {
		c.ShrinkToFit()
	})
	t.touch()
}

// Clear removes every record. Capacities are left unspecified.
func (t *table) Clear() {
	t.cols.Each(func(_ int, c column.Any) {
		c.Clear()
	})
	t.touch()
}

// PopBack removes the last record. It panics on an empty container.
func (t *table) PopBack() {
	n := t.Len() - 1
	t.cols.Each(func(_ int, c column.Any) {
		c.Truncate(n)
	})
	t.touch()
}

// Resize sets the number of records to n. New records hold the zero value
// of every field.
func (t *table) Resize(n int) error {
	if err := t.checkLen(n); err != nil {
		return err
	}
	t.cols.Each(func(_ int, c column.Any) {
		if n < c.Len() {
			c.Truncate(n)
		} else {
			c.Grow(n)
		}
	})
	t.touch()
	return nil
}

func (t *table) erase(first, last int) {
	t.cols.Each(func(_ int, c column.Any) {
		c.Delete(first, last)
	})
	t.touch()
}

// EraseRows removes every record whose index is in rows, keeping the order
// of the survivors. Indexes at or beyond Len are ignored. It returns the
// number of records removed.
func (t *table) EraseRows(rows *roaring.Bitmap) int {
	if rows == nil || rows.IsEmpty() {
		return 0
	}
	n := t.Len()
	drop := make([]int, 0, min(rows.GetCardinality(), uint64(n)))
	it := rows.Iterator()
	for it.HasNext() {
		r := int(it.Next())
		if r >= n {
			break
		}
		drop = append(drop, r)
	}
	if len(drop) == 0 {
		return 0
	}
	t.cols.Each(func(_ int, c column.Any) {
		c.DeleteSorted(drop)
	})
	t.touch()
	return len(drop)
}

func (t *table) swap(o *table) {
	t.cols.Zip(o.cols, func(_ int, a, b column.Any) {
		a.SwapWith(b)
	})
	t.touch()
	o.touch()
}

func (t *table) copyFrom(o *table) {
	t.cols.Zip(o.cols, func(_ int, dst, src column.Any) {
		dst.CopyFrom(src)
	})
	t.touch()
}

func (t *table) clone() table {
	return table{cols: t.cols.Clone()}
}

// VisitRecord calls fn with a pointer to every field of record k, in field
// order.
func (t *table) VisitRecord(k int, fn func(i int, p any)) {
	t.cols.Each(func(i int, c column.Any) {
		fn(i, c.PtrAt(k))
	})
}

// VisitColumn calls fn with a pointer to field i of every record, in index
// order.
func (t *table) VisitColumn(i int, fn func(k int, p any)) {
	t.cols[i].Visit(fn)
}

// synchronized reports whether every column has the same length.
func (t *table) synchronized() bool { return t.cols.Synchronized() }

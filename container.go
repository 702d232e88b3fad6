package soa

import "github.com/RoaringBitmap/roaring/v2"

// Container is the arity-independent surface of every VectorN.
//
// It lets drivers such as benchmark loops or integrity checkers walk a
// container without knowing its record type. Field pointers are passed as
// any, e.g. *int64 for an int64 column.
type Container interface {
	Arity() int
	Len() int
	Cap() int
	MaxLen() int
	Empty() bool
	Generation() uint64

	Reserve(n int) error
	Resize(n int) error
	ShrinkToFit()
	Clear()
	PopBack()
	EraseRows(rows *roaring.Bitmap) int

	VisitRecord(k int, fn func(i int, p any))
	VisitColumn(i int, fn func(k int, p any))
}

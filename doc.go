// Package soa provides a columnar ("structure of arrays") container for
// fixed-arity records.
//
// A VectorN stores records of N fields in N independent columns, one
// contiguous slice per field, while presenting the API of an ordinary
// sequence of records accessed by index.
//
// # Quick Start
//
//	v := soa.NewVector2[int, float64]()
//	v.PushBack(record.Make2(3, 5.0))
//	v.PushBack(record.Make2(123, 92.2))
//
//	r := v.Index(1)   // record.Ref2[int, float64], aliases the columns
//	*r.P1 = 100       // visible in v.Column1()[1]
//
//	for _, x := range v.Column0() { // single-field fast path
//	    _ = x
//	}
//
// # Views and Invalidation
//
// Index, At, Front, Back, EmplaceBack and iterators return views that point
// straight into column storage. Any operation that may grow, shrink or shift
// a column (push, insert, erase, reserve, resize, clear, swap) invalidates
// previously obtained views. Generation reports the current structural
// version and Iterator.Valid compares against it.
//
// # Ordering
//
// Within one operation every column is touched in ascending field order, and
// multi-record operations handle records in ascending source order.
//
// # Errors
//
// At returns *ErrIndexOutOfBounds (errors.Is ErrOutOfRange) for k >= Len.
// Operations taking a requested length return *ErrCapacityExceeded
// (errors.Is ErrTooLarge) before touching any column. Unchecked access
// (Index, Back on an empty container, PopBack on an empty container) panics
// like a plain slice index.
//
// # Concurrency
//
// A container is not safe for concurrent mutation. Concurrent reads that do
// not overlap a mutation are fine.
package soa

//go:generate go run ./internal/cmd/gensoa -out . -pkg soa

// Package record defines the fixed-arity composite records exchanged with a
// columnar container, and the views that alias them.
//
// For every arity N from 1 to 8 the package provides:
//
//   - TupleN: the record value itself, fields V0..VN-1.
//   - RefN: a mutable view holding one pointer per field. Writes through a
//     RefN land in whatever storage the pointers address.
//   - ViewN: a read-only view. Its accessors F0..FN-1 return copies.
//
// Each, EachPtr and Zip traverse records field by field in ascending order
// without knowing their arity at compile time.
package record

//go:generate go run ../internal/cmd/gensoa -out . -pkg record

// Package column implements the homogeneous growable sequences that back a
// columnar container.
//
// A Column[T] owns one field of every stored record. Columns are grouped in a
// Set, which is the unit the container dispatches record-agnostic operations
// to. Set.Each and Set.Zip visit columns strictly in field order.
package column

package record

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrArityMismatch is returned by Zip when the records differ in arity.
var ErrArityMismatch = errors.New("record: arity mismatch")

// Tuple is a record whose fields can be read by position.
type Tuple interface {
	Arity() int
	Field(i int) any
}

// Mutable is a record whose fields can be addressed by position.
// Ptr returns a pointer to the field, e.g. *int64 for an int64 field.
type Mutable interface {
	Arity() int
	Ptr(i int) any
}

// Each calls fn with every field of t in ascending order.
func Each(t Tuple, fn func(i int, v any)) {
	for i := range t.Arity() {
		fn(i, t.Field(i))
	}
}

// EachPtr calls fn with a pointer to every field of m in ascending order.
func EachPtr(m Mutable, fn func(i int, p any)) {
	for i := range m.Arity() {
		fn(i, m.Ptr(i))
	}
}

// Zip calls fn with parallel fields of a and b in ascending order. Records of
// different arity are rejected before fn is called for any position.
func Zip(a, b Tuple, fn func(i int, x, y any)) error {
	if a.Arity() != b.Arity() {
		return fmt.Errorf("%w: %d != %d", ErrArityMismatch, a.Arity(), b.Arity())
	}
	for i := range a.Arity() {
		fn(i, a.Field(i), b.Field(i))
	}
	return nil
}

// Equal reports whether a and b have the same arity and deeply equal fields.
func Equal(a, b Tuple) bool {
	eq := true
	err := Zip(a, b, func(_ int, x, y any) {
		if eq && !reflect.DeepEqual(x, y) {
			eq = false
		}
	})
	return err == nil && eq
}

func fieldOutOfRange(i, arity int) string {
	return fmt.Sprintf("record: field %d out of range for arity %d", i, arity)
}

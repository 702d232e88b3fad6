package column

import "fmt"

// Any is the element-type independent surface of a Column.
type Any interface {
	Len() int
	Cap() int
	MaxLen() int
	Reserve(n int)
	ShrinkToFit()
	Clear()
	Truncate(n int)
	Grow(n int)
	Delete(i, j int)
	DeleteSorted(rows []int)
	PtrAt(i int) any
	Visit(fn func(i int, p any))
	CloneAny() Any
	CopyFrom(src Any)
	SwapWith(o Any)
}

// Set is the ordered list of columns of one container, one per field.
type Set []Any

// Each calls fn for every column in ascending field order.
func (s Set) Each(fn func(i int, c Any)) {
	for i, c := range s {
		fn(i, c)
	}
}

// Zip calls fn for parallel columns of s and o in ascending field order.
// Sets of different arity are rejected before fn runs.
func (s Set) Zip(o Set, fn func(i int, a, b Any)) {
	if len(s) != len(o) {
		panic(fmt.Sprintf("column: zip of sets with arity %d and %d", len(s), len(o)))
	}
	for i := range s {
		fn(i, s[i], o[i])
	}
}

// Clone returns a deep copy of every column.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	s.Each(func(i int, c Any) {
		out[i] = c.CloneAny()
	})
	return out
}

// Synchronized reports whether every column has the same length.
func (s Set) Synchronized() bool {
	if len(s) == 0 {
		return true
	}
	for _, c := range s[1:] {
		if c.Len() != s[0].Len() {
			return false
		}
	}
	return true
}

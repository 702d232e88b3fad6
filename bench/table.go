package bench

import (
	"fmt"
	"slices"

	"github.com/hupe1980/soa"
	"github.com/hupe1980/soa/record"
	"github.com/hupe1980/soa/testutil"
)

// Table is the layout-independent surface a run drives. Every soa.VectorN
// satisfies it, and so does the slice-of-tuples baseline.
type Table interface {
	Arity() int
	Len() int
	VisitRecord(k int, fn func(i int, p any))
	VisitColumn(i int, fn func(k int, p any))
}

var _ Table = soa.Container(nil)

// rows is the array-of-structures baseline: one tuple per record.
type rows[T any, PT interface {
	*T
	record.Mutable
}] struct {
	data []T
}

func newRows[T any, PT interface {
	*T
	record.Mutable
}](n int) Table {
	return &rows[T, PT]{data: make([]T, n)}
}

func (r *rows[T, PT]) Arity() int {
	var zero T
	return PT(&zero).Arity()
}

func (r *rows[T, PT]) Len() int { return len(r.data) }

func (r *rows[T, PT]) VisitRecord(k int, fn func(i int, p any)) {
	record.EachPtr(PT(&r.data[k]), fn)
}

func (r *rows[T, PT]) VisitColumn(i int, fn func(k int, p any)) {
	for k := range r.data {
		fn(k, PT(&r.data[k]).Ptr(i))
	}
}

func columns[V Table](v V, err error) (Table, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// shape builds empty tables of one record type in either layout.
type shape struct {
	aos func(n int) Table
	soa func(n int) (Table, error)
}

var shapes = map[string]shape{
	"int": {
		aos: newRows[record.Tuple1[int]],
		soa: func(n int) (Table, error) { return columns(soa.NewVector1Len[int](n)) },
	},
	"int2": {
		aos: newRows[record.Tuple2[int, int]],
		soa: func(n int) (Table, error) { return columns(soa.NewVector2Len[int, int](n)) },
	},
	"int5": {
		aos: newRows[record.Tuple5[int, int, int, int, int]],
		soa: func(n int) (Table, error) {
			return columns(soa.NewVector5Len[int, int, int, int, int](n))
		},
	},
	"int8": {
		aos: newRows[record.Tuple8[int, int, int, int, int, int, int, int]],
		soa: func(n int) (Table, error) {
			return columns(soa.NewVector8Len[int, int, int, int, int, int, int, int](n))
		},
	},
	"int-double-double": {
		aos: newRows[record.Tuple3[int, float64, float64]],
		soa: func(n int) (Table, error) { return columns(soa.NewVector3Len[int, float64, float64](n)) },
	},
	"int32-float-string": {
		aos: newRows[record.Tuple3[int32, float32, string]],
		soa: func(n int) (Table, error) { return columns(soa.NewVector3Len[int32, float32, string](n)) },
	},
}

// Shapes returns the registered shape names.
func Shapes() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Build returns a table of cfg.Size random records. Records are generated in
// index order and fields in field order, so both layouts receive identical
// values for the same seed.
func Build(cfg Config) (Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sh := shapes[cfg.Shape]

	var (
		t   Table
		err error
	)
	switch cfg.Layout {
	case AoS:
		t = sh.aos(cfg.Size)
	case SoA:
		if t, err = sh.soa(cfg.Size); err != nil {
			return nil, fmt.Errorf("bench: build %s: %w", cfg.Name(), err)
		}
	}

	g := testutil.NewGenerator(cfg.Seed)
	fill := func(_ int, p any) { g.Fill(p) }
	for k := range t.Len() {
		t.VisitRecord(k, fill)
	}
	return t, nil
}

// Package checksum sums the raw bytes of record fields.
//
// The sum is a cheap integrity witness: two containers holding the same
// records produce the same checksum regardless of layout, so a benchmark can
// prove that the AoS and SoA runs did identical work. Fixed-size values
// contribute their in-memory bytes; strings contribute their content.
package checksum

import (
	"context"
	"reflect"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/soa/record"
)

// Columnar is the read surface Columns needs. soa.Container satisfies it.
type Columnar interface {
	Arity() int
	VisitColumn(i int, fn func(k int, p any))
}

// Value returns the byte sum of the value p points to.
func Value(p any) uint64 {
	switch x := p.(type) {
	case *string:
		return sum(unsafe.Slice(unsafe.StringData(*x), len(*x)))
	case *int:
		return sum(bytesOf(x))
	case *int64:
		return sum(bytesOf(x))
	case *int32:
		return sum(bytesOf(x))
	case *float64:
		return sum(bytesOf(x))
	case *float32:
		return sum(bytesOf(x))
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return 0
	}
	if rv.Elem().Kind() == reflect.String {
		s := rv.Elem().String()
		return sum(unsafe.Slice(unsafe.StringData(s), len(s)))
	}
	size := rv.Type().Elem().Size()
	return sum(unsafe.Slice((*byte)(rv.UnsafePointer()), size))
}

// Record returns the byte sum of every field of m.
func Record(m record.Mutable) uint64 {
	var s uint64
	record.EachPtr(m, func(_ int, p any) {
		s += Value(p)
	})
	return s
}

// Column returns the byte sum of field i across every record of c.
func Column(c Columnar, i int) uint64 {
	var s uint64
	c.VisitColumn(i, func(_ int, p any) {
		s += Value(p)
	})
	return s
}

// Columns returns the byte sum of every field of every record of c. Columns
// are summed concurrently; c must not be mutated until Columns returns.
func Columns(ctx context.Context, c Columnar) (uint64, error) {
	partial := make([]uint64, c.Arity())

	g, ctx := errgroup.WithContext(ctx)
	for i := range partial {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partial[i] = Column(c, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var s uint64
	for _, p := range partial {
		s += p
	}
	return s, nil
}

// Byte folds a sum to one byte, the width of the classic unsigned-char
// checker.
func Byte(s uint64) uint8 { return uint8(s) }

func bytesOf[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

func sum(b []byte) uint64 {
	var s uint64
	for _, x := range b {
		s += uint64(x)
	}
	return s
}

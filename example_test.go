package soa_test

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/soa"
	"github.com/hupe1980/soa/record"
)

// Example_pushAndIndex stores two records and writes through a view.
func Example_pushAndIndex() {
	v := soa.NewVector2[int, float64]()
	v.PushBack(record.Make2(3, 5.0))
	v.PushBack(record.Make2(123, 92.2))

	r := v.Index(1)
	*r.P1 = 100

	fmt.Println(v.Len(), v.Column0(), v.Column1())
	// Output: 2 [3 123] [5 100]
}

// Example_iterate walks records with an iterator and a range function.
func Example_iterate() {
	v := soa.NewVector2Of(record.Make2(1, 0.5), record.Make2(2, 1.5))

	for it := v.CBegin(); !it.Equal(v.CEnd()); it.Next() {
		fmt.Println(it.Index(), it.Get().F0(), it.Get().F1())
	}
	for k, r := range v.All() {
		*r.P0 += 10 * k
	}
	fmt.Println(v.Column0())
	// Output:
	// 0 1 0.5
	// 1 2 1.5
	// [1 12]
}

// Example_insertErase shows the iterators returned by structural edits.
func Example_insertErase() {
	v := soa.NewVector2Of(record.Make2(1, 1.0), record.Make2(3, 3.0))

	it := v.Insert(1, record.Make2(2, 2.0))
	fmt.Println(it.Get().Get())

	it = v.Erase(0)
	fmt.Println(it.Index(), v.Len())

	v.EraseRows(roaring.BitmapOf(1))
	fmt.Println(v.Column0())
	// Output:
	// {2 2}
	// 0 2
	// [2]
}

// Example_at shows the checked accessor.
func Example_at() {
	v := soa.NewVector1Of(record.Make1("a"))

	_, err := v.At(1)
	fmt.Println(err)
	fmt.Println(errors.Is(err, soa.ErrOutOfRange))
	// Output:
	// index out of bounds: index 1, len 1
	// true
}

// Example_reserve shows exact capacity handling.
func Example_reserve() {
	v := soa.NewVector3[int, float64, string]()
	if err := v.Reserve(1000); err != nil {
		panic(err)
	}
	fmt.Println(v.Len(), v.Cap())

	v.ShrinkToFit()
	fmt.Println(v.Cap())
	// Output:
	// 0 1000
	// 0
}

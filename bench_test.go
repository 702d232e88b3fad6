package soa

import (
	"testing"

	"github.com/hupe1980/soa/record"
)

const benchSize = 1 << 20

type benchRow = record.Tuple3[int, float64, float64]

func BenchmarkPushBack(b *testing.B) {
	b.Run("AoS", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			var rows []benchRow
			for i := range benchSize {
				rows = append(rows, record.Make3(i, 1.0, 2.0))
			}
			_ = rows
		}
	})

	b.Run("SoA", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			v := NewVector3[int, float64, float64]()
			for i := range benchSize {
				v.PushBack(record.Make3(i, 1.0, 2.0))
			}
		}
	})

	b.Run("SoAReserved", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			v := NewVector3[int, float64, float64](WithCapacity(benchSize))
			for i := range benchSize {
				v.EmplaceBack(i, 1.0, 2.0)
			}
		}
	})
}

func BenchmarkIterate(b *testing.B) {
	rows := make([]benchRow, benchSize)
	v, err := NewVector3Len[int, float64, float64](benchSize)
	if err != nil {
		b.Fatal(err)
	}
	for i := range benchSize {
		rows[i] = record.Make3(i, float64(i), 1.0)
		v.Index(i).Set(rows[i])
	}

	b.Run("AoSRecord", func(b *testing.B) {
		for b.Loop() {
			var sum float64
			for i := range rows {
				sum += rows[i].V1 * rows[i].V2
			}
			_ = sum
		}
	})

	b.Run("SoARecord", func(b *testing.B) {
		for b.Loop() {
			var sum float64
			for it := v.Begin(); !it.Equal(v.End()); it.Next() {
				r := it.Get()
				sum += *r.P1 * *r.P2
			}
			_ = sum
		}
	})

	b.Run("AoSField", func(b *testing.B) {
		for b.Loop() {
			var sum float64
			for i := range rows {
				sum += rows[i].V1
			}
			_ = sum
		}
	})

	b.Run("SoAField", func(b *testing.B) {
		for b.Loop() {
			var sum float64
			for _, x := range v.Column1() {
				sum += x
			}
			_ = sum
		}
	})
}

func BenchmarkInsertErase(b *testing.B) {
	v, err := NewVector3Len[int, float64, float64](1 << 14)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		v.Insert(v.Len()/2, record.Make3(1, 2.0, 3.0))
		v.Erase(v.Len() / 2)
	}
}

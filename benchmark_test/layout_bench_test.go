package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/soa/bench"
)

// BenchmarkLayouts runs every access pattern against both layouts for the
// record shapes of the classic unpacking study.
func BenchmarkLayouts(b *testing.B) {
	shapes := []string{"int", "int2", "int-double-double", "int5", "int8"}

	for _, shape := range shapes {
		for _, pattern := range []bench.Pattern{bench.Single, bench.Independent, bench.Combined} {
			for _, layout := range []bench.Layout{bench.AoS, bench.SoA} {
				cfg := config(layout, pattern, bench.Simple, shape, sizeMedium)
				b.Run(cfg.Name(), func(b *testing.B) {
					t := buildTable(b, cfg)
					b.ResetTimer()
					for b.Loop() {
						bench.Pass(t, cfg.Pattern, cfg.Op)
					}
					b.ReportMetric(float64(b.Elapsed().Nanoseconds())/float64(b.N)/float64(cfg.Size), "ns/record")
				})
			}
		}
	}
}

// BenchmarkOps compares the per-field operations on the widest shape.
func BenchmarkOps(b *testing.B) {
	for _, op := range []bench.Op{bench.Simple, bench.Complex, bench.Branching} {
		for _, layout := range []bench.Layout{bench.AoS, bench.SoA} {
			cfg := config(layout, bench.Single, op, "int8", sizeMedium)
			b.Run(cfg.Name(), func(b *testing.B) {
				t := buildTable(b, cfg)
				b.ResetTimer()
				for b.Loop() {
					bench.Pass(t, cfg.Pattern, cfg.Op)
				}
			})
		}
	}
}

// BenchmarkScaling shows where the columnar layout starts to pay off.
func BenchmarkScaling(b *testing.B) {
	for _, size := range []int{sizeSmall, sizeMedium, sizeLarge} {
		for _, layout := range []bench.Layout{bench.AoS, bench.SoA} {
			cfg := config(layout, bench.Single, bench.Simple, "int8", size)
			b.Run(fmt.Sprintf("%s/n=%d", layout, size), func(b *testing.B) {
				if testing.Short() && size > sizeMedium {
					b.Skip("large dataset")
				}
				t := buildTable(b, cfg)
				b.ResetTimer()
				for b.Loop() {
					bench.Pass(t, cfg.Pattern, cfg.Op)
				}
			})
		}
	}
}

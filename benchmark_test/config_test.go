package benchmark_test

import (
	"testing"

	"github.com/hupe1980/soa/bench"
)

// ============================================================================
// Benchmark Configuration
// ============================================================================

// Standard dataset sizes.
const (
	sizeSmall  = 10_000    // Quick iteration, fits in L2
	sizeMedium = 1 << 20   // Default, exceeds most L2 caches
	sizeLarge  = 8_000_000 // Memory-bound
)

// Seed for deterministic benchmarks - enables reproducible comparisons.
const benchSeed = 42

// buildTable returns a freshly generated table or fails the benchmark.
func buildTable(b *testing.B, cfg bench.Config) bench.Table {
	b.Helper()
	t, err := bench.Build(cfg)
	if err != nil {
		b.Fatalf("build %s: %v", cfg.Name(), err)
	}
	return t
}

func config(layout bench.Layout, pattern bench.Pattern, op bench.Op, shape string, size int) bench.Config {
	return bench.Config{
		Layout:  layout,
		Pattern: pattern,
		Op:      op,
		Shape:   shape,
		Size:    size,
		Repeats: 1,
		Seed:    benchSeed,
	}
}

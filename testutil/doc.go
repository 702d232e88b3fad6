// Package testutil provides testing utilities for soa.
//
// This package is intended for use in tests and benchmarks only.
// It provides a small deterministic xorshift engine and a generator that
// fills record fields of the usual scalar types.
//
// # Random Records
//
//	g := testutil.NewGenerator(seed)
//	var r record.Tuple3[int, float64, string]
//	record.EachPtr(&r, func(_ int, p any) { g.Fill(p) })
//
// # Deterministic Fixtures
//
//	record.EachPtr(&r, func(i int, p any) { testutil.Sequence(p, k*10+i) })
package testutil

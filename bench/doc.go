// Package bench compares record layouts under the access patterns that
// motivate a columnar container.
//
// A run builds Size random records of a Shape in one Layout (a slice of
// tuples, or a soa.VectorN), then applies an Op to the fields selected by a
// Pattern Repeats times, timing each pass. The final contents are folded
// into a byte checksum so runs over different layouts with the same seed can
// be checked for identical work.
//
// # Patterns
//
//   - single: only the middle field of every record
//   - independent: every field, one at a time
//   - combined: every field of a record, folding the results into one sum
//
// # Usage
//
//	cfg := bench.DefaultConfig()
//	cfg.Layout = bench.SoA
//	res, err := bench.Run(ctx, cfg, bench.NoopLogger())
package bench

// Package testutil provides testing utilities for bitarray.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for generating bit indices, ranges
// and reference bit patterns.
//
// # Random Ranges
//
//	rng := testutil.NewRNG(seed)
//	from, to := rng.Range(length)  // 0 <= from <= to <= length
//	bits := rng.Bools(length, 0.3) // reference pattern, ~30% set
package testutil

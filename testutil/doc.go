// Package testutil provides testing utilities for segview.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic generators for segment data, a flattening
// oracle to check views against, and a fan-out helper for concurrent
// read tests.
//
// # Segment Generation
//
//	rng := testutil.NewRNG(seed)
//	parts := rng.UUIDSegments(100, 100)   // 100 segments of 100 UUID strings
//	parts = testutil.Split(rng, elems, 8) // random cut points, empties allowed
//
// # Oracle
//
//	want := testutil.Flatten(parts...)
//
// # Concurrent Reads
//
//	err := testutil.Parallel(ctx, 8, func(ctx context.Context, worker int) error { ... })
package testutil

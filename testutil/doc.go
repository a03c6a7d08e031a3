// Package testutil provides testing utilities for veclen.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random interleaved 3-component
// vectors and float64 ground truth for squared lengths.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	src := rng.Interleaved(1024)      // 3*1024 floats in [0, 1), Block-aligned
//	vecs := rng.Vec3s(16, -1, 1)      // []mgl32.Vec3
//
// # Verification
//
//	want := testutil.ExactLengthSquared(src)
//	err := testutil.MaxRelativeError(want, got)
package testutil

// Package simd provides SIMD-optimized vector operations.
//
// # Supported Platforms
//
//   - x86-64: AVX2+FMA (8 lanes), SSE2 (4 lanes)
//   - Everything else: portable Go lane emulation
//
// Runtime CPU feature detection selects the optimal implementation.
// Set VECLEN_SIMD=generic|sse2|avx2 to pin an ISA, or build with
// -tags noasm to force the generic Go fallback.
//
// # Operations
//
//   - LengthSquared: squared length of interleaved 3-component vectors
//
// # Strategies
//
// Scalar, Lane128 and Lane256 produce the same results up to float32
// rounding of the summation. The lane strategies transpose each step of
// interleaved xyz input into planar registers and store the results with
// non-temporal writes.
package simd

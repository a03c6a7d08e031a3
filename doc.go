// Package veclen benchmarks the squared length of large arrays of
// 3-component float32 vectors.
//
// Input vectors are interleaved (x0,y0,z0,x1,y1,z1,...) in a 64-byte aligned
// buffer; each output element is x²+y²+z² of one vector. The reduction runs
// with one of three interchangeable strategies:
//
//   - Scalar: one vector at a time
//   - Lane128: 4 vectors per step (SSE on amd64)
//   - Lane256: 8 vectors per step (AVX2+FMA on amd64)
//
// Lane strategies fall back to a portable Go emulation when the CPU lacks
// the instructions or the module is built with -tags noasm.
//
// # Quick Start
//
//	b, _ := veclen.New(veclen.WithVectors(1<<20), veclen.WithIterations(50))
//	report, _ := b.Run(ctx)
//	fmt.Println(report.First, report.Last, report.Elapsed)
//
// One-shot computation:
//
//	out, _ := veclen.Compute(veclen.Scalar, []float32{3, 4, 0, 0, 0, 5, 1, 1, 1})
//	// out == [25 25 3]
//
// # Lane Widths
//
// Lane strategies have no remainder pass: the vector count must be a
// multiple of the lane width. Counts that are a multiple of MaxLaneWidth
// work with every strategy.
//
// # Memory
//
// Buffers come from an Allocator handing out whole 64-byte Blocks at
// 64-byte aligned addresses. The default is a stateless heap allocator;
// NewArena provides a bump allocator sized with ArenaSize.
package veclen

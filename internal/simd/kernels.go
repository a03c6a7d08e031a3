package simd

import "fmt"

// Kernel function pointers - set once at init, zero runtime overhead.
// Generic implementations are the default; platform-specific init()
// functions override with SIMD versions when available.
var (
	kernelScalar  = lengthSquaredScalar
	kernelLane128 = lengthSquaredLane128Generic
	kernelLane256 = lengthSquaredLane256Generic

	// accelerated is indexed by Strategy.
	accelerated [3]bool
)

// LengthSquared writes the squared length of every interleaved 3-component
// vector in src into dst: dst[i] = src[3i]² + src[3i+1]² + src[3i+2]².
//
// len(src) must equal 3*len(dst). Lane strategies additionally require
// len(dst) to be a multiple of s.LaneWidth(); there is no scalar remainder
// pass. Violations panic. An empty dst is a no-op.
//
// Lane kernels write dst with non-temporal stores when dst is aligned to the
// register width, so dst is not expected to be in cache afterwards.
func LengthSquared(s Strategy, dst, src []float32) {
	if len(src) != 3*len(dst) {
		panic(fmt.Sprintf("simd: length mismatch: src has %d floats, dst needs %d", len(src), 3*len(dst)))
	}
	if w := s.LaneWidth(); len(dst)%w != 0 {
		panic(fmt.Sprintf("simd: %s needs a multiple of %d results, got %d", s, w, len(dst)))
	}
	if len(dst) == 0 {
		return
	}

	switch s {
	case Scalar:
		kernelScalar(dst, src)
	case Lane128:
		kernelLane128(dst, src)
	case Lane256:
		kernelLane256(dst, src)
	default:
		panic(fmt.Sprintf("simd: unknown strategy %d", s))
	}
}

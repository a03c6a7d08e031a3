//go:build amd64 && !noasm

package simd

import "unsafe"

// init swaps in the register kernels the active ISA supports. It runs after
// capability_amd64.go has selected the active ISA.
func init() {
	if activeISA >= SSE2 {
		kernelLane128 = lengthSquaredLane128SSE
		accelerated[Lane128] = true
	}
	if activeISA >= AVX2 {
		kernelLane256 = lengthSquaredLane256AVX2
		accelerated[Lane256] = true
	}
}

// Implemented in lengthsq_amd64.s. n is the number of results and must be a
// multiple of the lane width (4 for SSE, 8 for AVX2).

//go:noescape
func lengthSquaredSSE(dst unsafe.Pointer, src unsafe.Pointer, n int64)

//go:noescape
func lengthSquaredAVX2(dst unsafe.Pointer, src unsafe.Pointer, n int64)

func lengthSquaredLane128SSE(dst, src []float32) {
	if len(dst) > 0 {
		lengthSquaredSSE(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), int64(len(dst)))
	}
}

func lengthSquaredLane256AVX2(dst, src []float32) {
	if len(dst) > 0 {
		lengthSquaredAVX2(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), int64(len(dst)))
	}
}

package simd

import "github.com/go-gl/mathgl/mgl32"

// lengthSquaredScalar accumulates x², then y², then z² per vector.
func lengthSquaredScalar(dst, src []float32) {
	for i := range dst {
		v := mgl32.Vec3(src[3*i : 3*i+3])
		dst[i] = v.Dot(v)
	}
}

func lengthSquaredLane128Generic(dst, src []float32) {
	lengthSquaredLanes(dst, src, 4)
}

func lengthSquaredLane256Generic(dst, src []float32) {
	lengthSquaredLanes(dst, src, 8)
}

// lengthSquaredLanes mirrors the register kernels: each step transposes
// width interleaved vectors into planar x, y and z lanes, then reduces them
// lane by lane. len(dst) must be a multiple of width.
func lengthSquaredLanes(dst, src []float32, width int) {
	var x, y, z [MaxLaneWidth]float32

	for i := 0; i+width <= len(dst); i += width {
		in := src[3*i : 3*(i+width)]
		for l := range width {
			x[l] = in[3*l]
			y[l] = in[3*l+1]
			z[l] = in[3*l+2]
		}

		out := dst[i : i+width]
		for l := range width {
			out[l] = x[l]*x[l] + y[l]*y[l] + z[l]*z[l]
		}
	}
}

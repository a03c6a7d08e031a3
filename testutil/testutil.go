package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/hupe1980/veclen/internal/mem"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// Interleaved returns n random 3-component vectors with components in
// [0, 1), laid out xyzxyz... in a Block-aligned slice of length 3n.
func (r *RNG) Interleaved(n int) []float32 {
	out := mem.AllocAlignedFloat32(3 * n)
	r.FillUniform(out)
	return out
}

// Vec3s returns n random vectors with components in [minVal, maxVal).
func (r *RNG) Vec3s(n int, minVal, maxVal float32) []mgl32.Vec3 {
	flat := make([]float32, 3*n)
	r.FillUniformRange(flat, minVal, maxVal)

	out := make([]mgl32.Vec3, n)
	for i := range out {
		out[i] = mgl32.Vec3(flat[3*i : 3*i+3])
	}
	return out
}

// Flatten lays vecs out in interleaved order.
func Flatten(vecs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, 3*len(vecs))
	for _, v := range vecs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// ExactLengthSquared computes squared lengths of interleaved vectors in
// float64, for use as ground truth.
func ExactLengthSquared(src []float32) []float64 {
	out := make([]float64, len(src)/3)
	for i := range out {
		x, y, z := float64(src[3*i]), float64(src[3*i+1]), float64(src[3*i+2])
		out[i] = x*x + y*y + z*z
	}
	return out
}

// MaxRelativeError returns the largest |got-want|/max(1,|want|).
// It returns +Inf on a length mismatch.
func MaxRelativeError(want []float64, got []float32) float64 {
	if len(want) != len(got) {
		return math.Inf(1)
	}
	var worst float64
	for i := range want {
		d := math.Abs(float64(got[i]) - want[i])
		if s := math.Abs(want[i]); s > 1 {
			d /= s
		}
		if d > worst {
			worst = d
		}
	}
	return worst
}

package simd

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/hupe1980/veclen/internal/mem"
)

// Benchmarks in this package are meant to be run twice to compare:
// - default build: asm enabled (SIMD dispatch when available)
// - generic build: `-tags noasm` (forces pure-Go implementations)
//
// Examples:
//   go test ./internal/simd -run '^$' -bench . -benchmem
//   go test ./internal/simd -run '^$' -bench . -benchmem -tags noasm
//   VECLEN_SIMD=sse2 go test ./internal/simd -run '^$' -bench .

func benchRand() *rand.Rand { return rand.New(rand.NewSource(1)) }

func BenchmarkLengthSquared(b *testing.B) {
	r := benchRand()
	for _, n := range []int{1 << 10, 1 << 16, 1 << 20} {
		src := randVectors(r, n)
		dst := mem.AllocAlignedFloat32(n)

		for _, s := range Strategies() {
			b.Run(s.String()+"/n="+strconv.Itoa(n), func(b *testing.B) {
				b.SetBytes(int64(n * 4 * 4))
				b.ResetTimer()
				for b.Loop() {
					LengthSquared(s, dst, src)
				}
			})
		}
	}
}

func BenchmarkLengthSquaredGeneric(b *testing.B) {
	r := benchRand()
	const n = 1 << 16
	src := randVectors(r, n)
	dst := mem.AllocAlignedFloat32(n)

	kernels := []struct {
		name string
		fn   func(dst, src []float32)
	}{
		{"scalar", lengthSquaredScalar},
		{"lane128", lengthSquaredLane128Generic},
		{"lane256", lengthSquaredLane256Generic},
	}
	for _, k := range kernels {
		b.Run(k.name, func(b *testing.B) {
			b.SetBytes(int64(n * 4 * 4))
			for b.Loop() {
				k.fn(dst, src)
			}
		})
	}
}

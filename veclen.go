package veclen

import (
	"context"
	"fmt"
	"math/bits"
	"math/rand/v2"
	"time"

	"github.com/hupe1980/veclen/internal/mem"
	"github.com/hupe1980/veclen/internal/simd"
)

// Strategy selects how vectors are reduced. See the simd package.
type Strategy = simd.Strategy

// ISA is a SIMD instruction set.
type ISA = simd.ISA

// Strategies.
const (
	Scalar  = simd.Scalar
	Lane128 = simd.Lane128
	Lane256 = simd.Lane256
)

// MaxLaneWidth is the widest lane count of any strategy.
const MaxLaneWidth = simd.MaxLaneWidth

// Allocator hands out Block-aligned storage for benchmark buffers.
type Allocator = mem.Allocator

// Arena is a bump Allocator over one reserved region.
type Arena = mem.Arena

// NewArena reserves capacity bytes for a bump allocator.
func NewArena(capacity int) (*Arena, error) {
	return mem.NewArena(capacity)
}

// ArenaSize returns the arena capacity that holds the input and output
// buffers of a run over n vectors.
func ArenaSize(n int) int {
	return mem.RoundUp(3*n*4) + mem.RoundUp(n*4)
}

// CacheLineSize returns the cache line size of the running CPU in bytes.
func CacheLineSize() int {
	return mem.CacheLineSize()
}

// BestStrategy returns the widest strategy the CPU runs natively.
func BestStrategy() Strategy {
	return simd.BestStrategy()
}

// ActiveISA returns the SIMD instruction set selected at start-up.
func ActiveISA() ISA {
	return simd.ActiveISA()
}

// Accelerated reports whether s runs on a native SIMD kernel.
func Accelerated(s Strategy) bool {
	return simd.Accelerated(s)
}

// ParseStrategy parses a strategy name. "auto" and "" resolve to BestStrategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "auto":
		return BestStrategy(), nil
	}
	s, ok := simd.ParseStrategy(name)
	if !ok {
		return Scalar, &ErrUnknownStrategy{Name: name}
	}
	return s, nil
}

// LengthSquared writes the squared length of every interleaved vector of
// src into dst using strategy s.
//
// len(src) must be 3*len(dst), and len(dst) a multiple of s.LaneWidth().
func LengthSquared(s Strategy, dst, src []float32) error {
	if len(src)%3 != 0 || len(src)/3 != len(dst) {
		return ErrInvalidInput
	}
	if err := validateCount(s, len(dst)); err != nil {
		return err
	}
	simd.LengthSquared(s, dst, src)
	return nil
}

// Compute returns the squared lengths of the interleaved vectors in src in a
// new Block-aligned slice.
func Compute(s Strategy, src []float32) ([]float32, error) {
	if len(src)%3 != 0 {
		return nil, ErrInvalidInput
	}
	n := len(src) / 3
	if err := validateCount(s, n); err != nil {
		return nil, err
	}
	if n == 0 {
		return []float32{}, nil
	}
	dst := mem.AllocAlignedFloat32(n)
	simd.LengthSquared(s, dst, src)
	return dst, nil
}

// Report describes a completed Run.
type Report struct {
	Strategy    Strategy
	Accelerated bool
	ISA         ISA
	Vectors     int
	Iterations  int
	Seed        uint64
	First       float32 // squared length of the first vector
	Last        float32 // squared length of the last vector
	Elapsed     time.Duration
	PointerBits int
}

// Benchmark repeatedly reduces a random vector array to squared lengths.
type Benchmark struct {
	opts options
}

// New validates the options and returns a Benchmark.
func New(optFns ...Option) (*Benchmark, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	if o.auto {
		o.strategy = simd.BestStrategy()
	}
	if o.strategy > Lane256 {
		return nil, &ErrUnknownStrategy{Name: o.strategy.String()}
	}
	if o.iterations <= 0 {
		return nil, ErrInvalidIterations
	}
	if err := validateCount(o.strategy, o.vectors); err != nil {
		return nil, err
	}

	return &Benchmark{opts: o}, nil
}

// Strategy returns the strategy the benchmark runs.
func (b *Benchmark) Strategy() Strategy {
	return b.opts.strategy
}

// Run allocates the buffers, fills the input, executes the timed passes and
// releases the buffers again.
func (b *Benchmark) Run(ctx context.Context) (*Report, error) {
	o := b.opts
	s, n := o.strategy, o.vectors
	log := o.logger.WithStrategy(s).WithCount(n)

	in, err := mem.NewBuffer[float32](o.allocator, 3*n)
	if err != nil {
		log.LogAllocation(ctx, mem.RoundUp(3*n*4), mem.RoundUp(n*4), err)
		return nil, fmt.Errorf("allocate input: %w", err)
	}
	defer in.Release()

	out, err := mem.NewBuffer[float32](o.allocator, n)
	if err != nil {
		log.LogAllocation(ctx, in.Bytes(), mem.RoundUp(n*4), err)
		return nil, fmt.Errorf("allocate output: %w", err)
	}
	defer out.Release()
	log.LogAllocation(ctx, in.Bytes(), out.Bytes(), nil)

	seed := o.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec // clock seed
	}
	fillUniform(in.Slice(), seed)

	src, dst := in.Slice(), out.Slice()

	start := time.Now()
	for range o.iterations {
		passStart := time.Now()
		simd.LengthSquared(s, dst, src)
		o.metrics.RecordPass(s, n, time.Since(passStart))
	}
	elapsed := time.Since(start)

	r := &Report{
		Strategy:    s,
		Accelerated: simd.Accelerated(s),
		ISA:         simd.ActiveISA(),
		Vectors:     n,
		Iterations:  o.iterations,
		Seed:        seed,
		Elapsed:     elapsed,
		PointerBits: bits.UintSize,
	}
	if n > 0 {
		r.First = dst[0]
		r.Last = dst[n-1]
	}

	o.metrics.RecordRun(r)
	log.LogRun(ctx, r)
	return r, nil
}

// fillUniform fills dst with values in [0, 1).
func fillUniform(dst []float32, seed uint64) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range dst {
		dst[i] = rng.Float32()
	}
}

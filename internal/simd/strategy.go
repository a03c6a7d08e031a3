package simd

import "strings"

// Strategy selects how LengthSquared walks the input.
type Strategy uint8

const (
	// Scalar computes one vector at a time.
	Scalar Strategy = iota
	// Lane128 computes 4 vectors per step (128-bit registers).
	Lane128
	// Lane256 computes 8 vectors per step (256-bit registers).
	Lane256
)

// MaxLaneWidth is the widest lane count of any strategy. Element counts that
// are a multiple of it are valid for every strategy.
const MaxLaneWidth = 8

// String returns the string representation of a Strategy.
func (s Strategy) String() string {
	switch s {
	case Scalar:
		return "scalar"
	case Lane128:
		return "lane128"
	case Lane256:
		return "lane256"
	default:
		return "unknown"
	}
}

// LaneWidth returns the number of float32 results produced per step.
func (s Strategy) LaneWidth() int {
	switch s {
	case Lane128:
		return 4
	case Lane256:
		return 8
	default:
		return 1
	}
}

// ISA returns the instruction set that natively backs the strategy.
func (s Strategy) ISA() ISA {
	switch s {
	case Lane128:
		return SSE2
	case Lane256:
		return AVX2
	default:
		return Generic
	}
}

// ParseStrategy parses a strategy name. ISA names and register widths are
// accepted as aliases ("sse2", "128", "avx2", "256", "none").
func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar", "none", "generic":
		return Scalar, true
	case "lane128", "sse", "sse2", "128":
		return Lane128, true
	case "lane256", "avx", "avx2", "256":
		return Lane256, true
	default:
		return Scalar, false
	}
}

// Strategies returns all strategies, narrowest first.
func Strategies() []Strategy {
	return []Strategy{Scalar, Lane128, Lane256}
}

// BestStrategy returns the widest strategy the active ISA runs natively.
func BestStrategy() Strategy {
	switch activeISA {
	case AVX2:
		return Lane256
	case SSE2:
		return Lane128
	default:
		return Scalar
	}
}

// Accelerated reports whether s runs on a native SIMD kernel rather than
// the portable Go emulation.
func Accelerated(s Strategy) bool {
	if int(s) >= len(accelerated) {
		return false
	}
	return accelerated[s]
}

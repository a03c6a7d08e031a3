package veclen

import (
	"errors"
	"fmt"

	"github.com/hupe1980/veclen/internal/simd"
)

var (
	// ErrInvalidVectorCount is returned when the vector count is negative.
	ErrInvalidVectorCount = errors.New("vector count must not be negative")
	// ErrInvalidIterations is returned when the iteration count is not positive.
	ErrInvalidIterations = errors.New("iterations must be positive")
	// ErrInvalidInput is returned when an interleaved input is not a multiple of 3 floats.
	ErrInvalidInput = errors.New("input length must be a multiple of 3")
)

// ErrLaneRemainder indicates a vector count that leaves a partial step for a
// lane-parallel strategy. No scalar remainder pass exists; choose a count
// that is a multiple of the lane width (any multiple of simd.MaxLaneWidth
// works for every strategy).
type ErrLaneRemainder struct {
	Strategy  simd.Strategy
	Vectors   int
	LaneWidth int
}

func (e *ErrLaneRemainder) Error() string {
	return fmt.Sprintf("%s processes %d vectors per step: %d vectors leave a remainder of %d",
		e.Strategy, e.LaneWidth, e.Vectors, e.Vectors%e.LaneWidth)
}

// ErrUnknownStrategy indicates a strategy value or name that does not exist.
type ErrUnknownStrategy struct {
	Name string
}

func (e *ErrUnknownStrategy) Error() string {
	return fmt.Sprintf("unknown strategy: %q", e.Name)
}

func validateCount(s simd.Strategy, vectors int) error {
	if vectors < 0 {
		return ErrInvalidVectorCount
	}
	if w := s.LaneWidth(); vectors%w != 0 {
		return &ErrLaneRemainder{Strategy: s, Vectors: vectors, LaneWidth: w}
	}
	return nil
}

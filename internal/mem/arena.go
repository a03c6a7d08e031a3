package mem

import (
	"errors"
	"unsafe"
)

var (
	// ErrArenaFull is returned when the arena cannot satisfy an allocation.
	ErrArenaFull = errors.New("mem: arena is full")
	// ErrInvalidCapacity is returned by NewArena for a non-positive capacity.
	ErrInvalidCapacity = errors.New("mem: arena capacity must be positive")
)

// ArenaStats tracks arena memory usage.
type ArenaStats struct {
	BytesReserved uint64 // capacity of the backing region
	BytesUsed     uint64 // bytes currently handed out (Block-rounded)
	PeakUsed      uint64 // high-water mark of BytesUsed
	Allocs        uint64 // cumulative successful allocations
}

// Arena is a bump allocator over a single Block-aligned region.
//
// Allocations advance an offset by whole Blocks. Deallocating the most
// recent allocation moves the offset back; any other Deallocate is a no-op
// and the space is only recovered by Reset. Arena is not safe for
// concurrent use.
type Arena struct {
	buf   []byte
	off   int
	stats ArenaStats
}

// NewArena reserves capacity bytes (rounded up to whole Blocks).
func NewArena(capacity int) (*Arena, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	buf := AllocAligned(RoundUp(capacity))
	return &Arena{
		buf:   buf,
		stats: ArenaStats{BytesReserved: uint64(len(buf))},
	}, nil
}

// Allocate returns size bytes rounded up to whole Blocks.
// It returns ErrArenaFull if the remaining space is too small.
func (a *Arena) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}
	n := RoundUp(size)
	if n > len(a.buf)-a.off {
		return nil, ErrArenaFull
	}
	b := a.buf[a.off : a.off+n : a.off+n]
	clear(b)
	a.off += n

	a.stats.Allocs++
	a.stats.BytesUsed = uint64(a.off)
	if a.stats.BytesUsed > a.stats.PeakUsed {
		a.stats.PeakUsed = a.stats.BytesUsed
	}
	return b, nil
}

// Deallocate rolls the offset back if b is the most recent allocation.
func (a *Arena) Deallocate(b []byte) {
	if len(b) == 0 || a.off == 0 {
		return
	}
	start := a.off - cap(b)
	if start < 0 || unsafe.Pointer(&b[0]) != unsafe.Pointer(&a.buf[start]) { //nolint:gosec // pointer identity check
		return
	}
	a.off = start
	a.stats.BytesUsed = uint64(a.off)
}

// Reset releases every allocation at once.
func (a *Arena) Reset() {
	a.off = 0
	a.stats.BytesUsed = 0
}

// Available returns the number of bytes still available.
func (a *Arena) Available() int {
	return len(a.buf) - a.off
}

// Stats returns a snapshot of the arena's usage counters.
func (a *Arena) Stats() ArenaStats {
	return a.stats
}

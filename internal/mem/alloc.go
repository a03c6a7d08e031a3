// Package mem provides memory allocation utilities.
package mem

import (
	"unsafe"

	"github.com/klauspost/cpuid/v2"
)

// BlockSize is the allocation unit in bytes. It matches the cache line size
// of current x86-64 and arm64 cores and is also the alignment of every
// region handed out by this package.
const BlockSize = 64

// Alignment is the byte alignment of every allocation (one Block).
const Alignment = BlockSize

// Allocator hands out Block-granular, Block-aligned byte regions.
//
// Allocate returns at least size bytes; the length of the returned slice is
// size rounded up to a whole number of Blocks. Deallocate releases a region
// previously returned by Allocate on the same allocator. Passing any other
// slice is undefined.
type Allocator interface {
	Allocate(size int) ([]byte, error)
	Deallocate(b []byte)
}

// RoundUp rounds size up to the next multiple of BlockSize.
func RoundUp(size int) int {
	return (size + BlockSize - 1) &^ (BlockSize - 1)
}

// Blocks returns the number of Blocks needed to hold size bytes.
func Blocks(size int) int {
	return RoundUp(size) / BlockSize
}

// CacheLineSize returns the L1 cache line size the CPU reports, or
// BlockSize when it cannot be detected.
func CacheLineSize() int {
	if n := cpuid.CPU.CacheLine; n > 0 {
		return n
	}
	return BlockSize
}

// IsAligned reports whether p sits on a Block boundary.
func IsAligned(p unsafe.Pointer) bool {
	return uintptr(p)&(Alignment-1) == 0
}

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}

// AllocAlignedFloat32 allocates a float32 slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
func AllocAlignedFloat32(size int) []float32 {
	if size <= 0 {
		return nil
	}

	byteSlice := AllocAligned(RoundUp(size * 4))

	// 64-byte alignment implies the 4-byte alignment float32 needs.
	ptr := unsafe.Pointer(&byteSlice[0])       //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*float32)(ptr), size) //nolint:gosec // unsafe is required for memory alignment
}

// BlockAllocator is the default heap-backed Allocator.
//
// It carries no state: every BlockAllocator value compares equal to every
// other, so a buffer allocated through one instance may be released through
// any other. Running out of memory is fatal to the process (Go runtime
// behavior); Allocate never returns an error.
type BlockAllocator struct{}

// Default is the process-wide heap allocator.
var Default Allocator = BlockAllocator{}

// Allocate returns size bytes rounded up to whole Blocks.
// A non-positive size yields a nil slice.
func (BlockAllocator) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}
	return AllocAligned(RoundUp(size)), nil
}

// Deallocate drops the region; the garbage collector reclaims it once the
// caller holds no more references.
func (BlockAllocator) Deallocate([]byte) {}

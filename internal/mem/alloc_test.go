package mem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundUp(t *testing.T) {
	tests := []struct {
		size     int
		expected int
	}{
		{0, 0},
		{1, 64},
		{63, 64},
		{64, 64},
		{65, 128},
		{100, 128},
		{1024, 1024},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, RoundUp(tc.size), "size %d", tc.size)
		assert.Equal(t, tc.expected/BlockSize, Blocks(tc.size), "size %d", tc.size)
	}
}

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)

		ptr := unsafe.Pointer(&buf[0])
		addr := uintptr(ptr)
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAllocAlignedFloat32(t *testing.T) {
	sizes := []int{1, 10, 16, 17, 100, 1024}

	for _, size := range sizes {
		buf := AllocAlignedFloat32(size)
		assert.Len(t, buf, size)
		assert.True(t, IsAligned(unsafe.Pointer(&buf[0])), "size %d", size)
	}

	assert.Nil(t, AllocAlignedFloat32(0))
	assert.Nil(t, AllocAlignedFloat32(-1))
}

func TestBlockAllocator(t *testing.T) {
	var a Allocator = BlockAllocator{}

	for _, size := range []int{1, 3, 12, 63, 64, 65, 4096, 12345} {
		buf, err := a.Allocate(size)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, len(buf), size)
		assert.Zero(t, len(buf)%BlockSize, "size %d not rounded to whole blocks", size)
		assert.Equal(t, RoundUp(size), len(buf))
		assert.True(t, IsAligned(unsafe.Pointer(&buf[0])), "size %d", size)

		a.Deallocate(buf)
	}

	buf, err := a.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, buf)
}

func TestBlockAllocatorInstancesAreEqual(t *testing.T) {
	var a, b Allocator = BlockAllocator{}, BlockAllocator{}
	assert.True(t, a == b)
	assert.True(t, Default == a)

	// A region from one instance may be released through another.
	buf, err := a.Allocate(128)
	require.NoError(t, err)
	b.Deallocate(buf)
}

func BenchmarkAllocAligned(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = AllocAligned(size)
			}
		})
	}
}

func BenchmarkAllocAlignedFloat32(b *testing.B) {
	sizes := []int{16, 64, 256, 1024}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = AllocAlignedFloat32(size)
			}
		})
	}
}

func TestCacheLineSize(t *testing.T) {
	n := CacheLineSize()
	assert.Positive(t, n)
	assert.Zero(t, n&(n-1), "cache line size %d is not a power of two", n)
}

package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArena(t *testing.T) {
	_, err := NewArena(0)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	a, err := NewArena(100)
	require.NoError(t, err)
	assert.Equal(t, 128, a.Available())
	assert.Equal(t, uint64(128), a.Stats().BytesReserved)
}

func TestArena_Allocate(t *testing.T) {
	a, err := NewArena(4 * BlockSize)
	require.NoError(t, err)

	b1, err := a.Allocate(10)
	require.NoError(t, err)
	assert.Len(t, b1, BlockSize)
	assert.True(t, IsAligned(unsafe.Pointer(&b1[0])))

	b2, err := a.Allocate(BlockSize + 1)
	require.NoError(t, err)
	assert.Len(t, b2, 2*BlockSize)
	assert.True(t, IsAligned(unsafe.Pointer(&b2[0])))
	assert.Equal(t, uintptr(BlockSize), uintptr(unsafe.Pointer(&b2[0]))-uintptr(unsafe.Pointer(&b1[0])))

	_, err = a.Allocate(2 * BlockSize)
	assert.ErrorIs(t, err, ErrArenaFull)

	b3, err := a.Allocate(BlockSize)
	require.NoError(t, err)
	assert.Len(t, b3, BlockSize)
	assert.Zero(t, a.Available())

	st := a.Stats()
	assert.Equal(t, uint64(3), st.Allocs)
	assert.Equal(t, uint64(4*BlockSize), st.BytesUsed)
	assert.Equal(t, uint64(4*BlockSize), st.PeakUsed)
}

func TestArena_DeallocateLIFO(t *testing.T) {
	a, err := NewArena(4 * BlockSize)
	require.NoError(t, err)

	b1, err := a.Allocate(BlockSize)
	require.NoError(t, err)
	b2, err := a.Allocate(BlockSize)
	require.NoError(t, err)

	// Not the most recent allocation: deferred until Reset.
	a.Deallocate(b1)
	assert.Equal(t, 2*BlockSize, a.Available())

	a.Deallocate(b2)
	assert.Equal(t, 3*BlockSize, a.Available())

	a.Deallocate(b1)
	assert.Equal(t, 4*BlockSize, a.Available())
	assert.Equal(t, uint64(2*BlockSize), a.Stats().PeakUsed)
}

func TestArena_ReuseIsZeroed(t *testing.T) {
	a, err := NewArena(BlockSize)
	require.NoError(t, err)

	b, err := a.Allocate(BlockSize)
	require.NoError(t, err)
	for i := range b {
		b[i] = 0xff
	}
	a.Deallocate(b)

	b, err = a.Allocate(BlockSize)
	require.NoError(t, err)
	for i, v := range b {
		require.Zero(t, v, "byte %d", i)
	}
}

func TestArena_Reset(t *testing.T) {
	a, err := NewArena(2 * BlockSize)
	require.NoError(t, err)

	_, err = a.Allocate(2 * BlockSize)
	require.NoError(t, err)
	_, err = a.Allocate(1)
	require.ErrorIs(t, err, ErrArenaFull)

	a.Reset()
	assert.Equal(t, 2*BlockSize, a.Available())
	assert.Zero(t, a.Stats().BytesUsed)
}

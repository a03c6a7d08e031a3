package mem

import (
	"unsafe"
)

// Element is the set of types a Buffer may hold.
//
// Every member has an alignment of at most 8 bytes, well below BlockSize.
// Types with stricter alignment are not expressible here, which keeps the
// Block alignment guarantee a compile-time property.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 |
		~[3]float32
}

// Buffer is a resizable, Block-aligned array of T.
//
// The buffer exclusively owns its storage. Resize always reallocates and
// copies; there is no in-place growth.
type Buffer[T Element] struct {
	alloc Allocator
	raw   []byte
	data  []T
}

// NewBuffer allocates a zeroed buffer of n elements from a.
// A nil allocator selects Default.
func NewBuffer[T Element](a Allocator, n int) (*Buffer[T], error) {
	if a == nil {
		a = Default
	}
	b := &Buffer[T]{alloc: a}
	if err := b.Resize(n); err != nil {
		return nil, err
	}
	return b, nil
}

// Slice returns the elements. The slice is invalidated by Resize and Release.
func (b *Buffer[T]) Slice() []T {
	return b.data
}

// Len returns the number of elements.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Bytes returns the size of the backing region in bytes (whole Blocks).
func (b *Buffer[T]) Bytes() int {
	return len(b.raw)
}

// Allocator returns the allocator backing the buffer.
func (b *Buffer[T]) Allocator() Allocator {
	return b.alloc
}

// Resize reallocates the buffer to n elements, preserving the common prefix.
// New elements are zero.
func (b *Buffer[T]) Resize(n int) error {
	if n < 0 {
		n = 0
	}
	if n == len(b.data) && b.raw != nil {
		return nil
	}

	var zero T
	raw, err := b.alloc.Allocate(n * int(unsafe.Sizeof(zero)))
	if err != nil {
		return err
	}

	var data []T
	if n > 0 {
		data = unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n) //nolint:gosec // raw is Block-aligned and large enough
		copy(data, b.data)
	}

	b.release()
	b.raw = raw
	b.data = data
	return nil
}

// Release returns the storage to the allocator. The buffer is empty afterwards.
func (b *Buffer[T]) Release() {
	b.release()
	b.raw = nil
	b.data = nil
}

func (b *Buffer[T]) release() {
	if b.raw != nil {
		b.alloc.Deallocate(b.raw)
	}
}

// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Every region is 64-byte aligned and sized in whole 64-byte Blocks, so
// SIMD kernels can rely on aligned (and non-temporal) stores to the start
// of any buffer.
//
// # Allocators
//
//   - BlockAllocator: stateless heap allocator; all values are equal.
//   - Arena: bump allocator over one reserved region with LIFO release.
//
// Buffer[T] is the typed front-end. Its element constraint only admits
// types whose alignment is at most 8 bytes, so an element type that needs
// more than Block alignment does not compile.
package mem

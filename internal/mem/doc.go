// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// AllocAligned returns 64-byte aligned, zero-initialized buffers, so the
// bitutil kernels' aligned-word fast paths always see naturally aligned
// uint64 words.
//
// # Pool
//
// Pool implements bitutil.Allocator, the external buffer allocator
// collaborator bitutil's _to_new operations depend on.
package mem

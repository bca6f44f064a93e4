// Package simd provides word-parallel bitmap kernels over []uint64.
//
// These back the root package's byte-aligned fast paths: AndWords, OrWords,
// XorWords, and PopcountWords operate on batches of 64-bit words staged out
// of arbitrary-offset byte buffers.
//
// # Operations
//
//   - AndWords, OrWords, XorWords: dst[i] op= src[i]
//   - PopcountWords: population count across a []uint64
package simd

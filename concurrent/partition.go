// Package concurrent provides caller-side helpers for running bitutil
// kernels over large spans across multiple goroutines.
//
// bitutil's kernels are single-threaded per call and safe to invoke
// concurrently only when their written regions are disjoint at the byte
// level: an unaligned write performs a read-modify-write of the boundary
// bytes at out_offset/8 and (out_offset+length-1)/8, so two operations
// sharing a boundary byte race even when their logical bit ranges never
// overlap. This package partitions a span at whole-byte boundaries before
// handing chunks to goroutines, so callers never have to reason about that
// race themselves.
package concurrent

import (
	"context"

	"github.com/hupe1980/bitutil"
	"golang.org/x/sync/errgroup"
)

// DefaultChunkBits is used when callers pass chunkBits <= 0.
const DefaultChunkBits = 1 << 20 // 128 KiB per chunk

// DefaultConcurrency caps the number of chunks processed at once when
// callers pass limit <= 0.
const DefaultConcurrency = 8

// BinaryOp is the signature shared by bitutil.And, bitutil.Or, and
// bitutil.Xor.
type BinaryOp func(left []byte, lo int64, right []byte, ro int64, length int64, out []byte, oo int64)

// byteAlignedBounds returns a sequence of bit offsets start=b[0] <
// b[1] < ... < b[n]=start+length such that every interior bound is a
// multiple of 8 — so consecutive chunks [b[i], b[i+1]) never share a
// boundary byte — and each chunk spans roughly chunkBits bits.
func byteAlignedBounds(start, length, chunkBits int64) []int64 {
	if chunkBits <= 0 {
		chunkBits = DefaultChunkBits
	}
	if chunkBits < 8 {
		chunkBits = 8
	}

	end := start + length
	bounds := []int64{start}
	pos := start
	for pos < end {
		next := pos + chunkBits
		next -= next % 8
		if next >= end {
			bounds = append(bounds, end)
			break
		}
		bounds = append(bounds, next)
		pos = next
	}
	return bounds
}

// PopCount computes bitutil.CountSetBits(buf, bitOffset, length) by
// summing the population counts of byte-aligned chunks run concurrently.
// limit bounds how many chunks run at once; limit <= 0 uses
// DefaultConcurrency. It returns early with the first chunk error, but
// CountSetBits itself never fails — the error return exists only to carry
// ctx cancellation/deadline and to keep the signature uniform with Binary.
func PopCount(ctx context.Context, buf []byte, bitOffset, length, chunkBits int64, limit int) (int64, error) {
	bounds := byteAlignedBounds(bitOffset, length, chunkBits)

	g, gctx := errgroup.WithContext(ctx)
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	g.SetLimit(limit)

	counts := make([]int64, len(bounds)-1)
	for i := 0; i < len(bounds)-1; i++ {
		i := i
		lo, hi := bounds[i], bounds[i+1]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			counts[i] = bitutil.CountSetBits(buf, lo, hi-lo)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// Binary runs op (bitutil.And, bitutil.Or, or bitutil.Xor) over
// length bits, partitioning the *output* range [oo, oo+length) at
// byte-aligned chunk boundaries and dispatching one goroutine per chunk.
// Because chunk boundaries are always byte-aligned, distinct chunks never
// touch the same output byte, so this is safe even though each chunk's
// write is itself an unaligned read-modify-write at its own edges.
func Binary(ctx context.Context, op BinaryOp, left []byte, lo int64, right []byte, ro int64, length int64, out []byte, oo int64, chunkBits int64, limit int) error {
	bounds := byteAlignedBounds(oo, length, chunkBits)

	g, gctx := errgroup.WithContext(ctx)
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	g.SetLimit(limit)

	for i := 0; i < len(bounds)-1; i++ {
		chunkStart, chunkEnd := bounds[i], bounds[i+1]
		chunkOffsetFromOut := chunkStart - oo
		chunkLength := chunkEnd - chunkStart

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			op(left, lo+chunkOffsetFromOut, right, ro+chunkOffsetFromOut, chunkLength, out, chunkStart)
			return nil
		})
	}
	return g.Wait()
}

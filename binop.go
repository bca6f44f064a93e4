package bitutil

import "github.com/hupe1980/bitutil/internal/simd"

// wordOp combines two 64-bit words bitwise; bitOp combines two single bits
// logically. The two are kept distinct — rather than deriving one from the
// other — because the word-parallel fast path only ever needs the former
// and the bit-residual path only ever needs the latter; for AND/OR/XOR
// they agree bit-for-bit, but keeping them separate mirrors the original
// implementation's BitOp/LogicalOp split and leaves room for an operator
// whose bitwise and logical shapes diverge.
type wordOp func(a, b uint64) uint64
type bitOp func(a, b bool) bool

func andWordOp(a, b uint64) uint64 { return a & b }
func orWordOp(a, b uint64) uint64  { return a | b }
func xorWordOp(a, b uint64) uint64 { return a ^ b }

func andBitOp(a, b bool) bool { return a && b }
func orBitOp(a, b bool) bool  { return a || b }
func xorBitOp(a, b bool) bool { return a != b }

// And computes the bitwise AND of length bits of left at lo and right at
// ro, writing the result into out at oo.
func And(left []byte, lo int64, right []byte, ro int64, length int64, out []byte, oo int64) {
	binaryOp(left, lo, right, ro, length, out, oo, andWordOp, andBitOp, simd.AndWords)
}

// Or computes the bitwise OR of length bits of left at lo and right at ro,
// writing the result into out at oo.
func Or(left []byte, lo int64, right []byte, ro int64, length int64, out []byte, oo int64) {
	binaryOp(left, lo, right, ro, length, out, oo, orWordOp, orBitOp, simd.OrWords)
}

// Xor computes the bitwise XOR of length bits of left at lo and right at
// ro, writing the result into out at oo.
func Xor(left []byte, lo int64, right []byte, ro int64, length int64, out []byte, oo int64) {
	binaryOp(left, lo, right, ro, length, out, oo, xorWordOp, xorBitOp, simd.XorWords)
}

func binaryOp(left []byte, lo int64, right []byte, ro int64, length int64, out []byte, oo int64, wop wordOp, bop bitOp, simdFn func(dst, src []uint64)) {
	checkSpan(lo, length)
	checkSpan(ro, length)
	checkSpan(oo, length)
	if length == 0 {
		return
	}

	if oo%8 == lo%8 && oo%8 == ro%8 {
		alignedBinaryOp(left, lo, right, ro, out, oo, length, wop, simdFn)
		return
	}
	unalignedBinaryOp(left, lo, right, ro, out, oo, length, wop, bop)
}

// alignedBinaryOp requires lo, ro, oo to share the same remainder mod 8. It
// applies the byte-wise operator directly: bits before lo%8 in the first
// byte and bits past the last used bit in the final byte are do-not-care
// on output. The run's full 8-byte words, starting at its first byte, are
// handed to internal/simd in wordChunk-sized batches and the remaining tail
// bytes get wop directly; since every byte in range
// gets wop applied uniformly (including the don't-care bits at the two
// ends), there is no separate leading/trailing decomposition to track
// here.
func alignedBinaryOp(left []byte, lo int64, right []byte, ro int64, out []byte, oo int64, length int64, wop wordOp, simdFn func(dst, src []uint64)) {
	checkWords(lo, ro, oo)
	nbytes := BytesForBits(length + lo%8)
	l := left[lo/8:]
	r := right[ro/8:]
	o := out[oo/8:]

	nWords := nbytes / 8
	if nWords > 0 {
		var dstChunk, srcChunk [wordChunk]uint64
		remaining := nWords
		pos := int64(0)
		for remaining > 0 {
			n := int64(wordChunk)
			if remaining < n {
				n = remaining
			}
			for i := int64(0); i < n; i++ {
				dstChunk[i] = SafeLoadWord(l[pos+i*8:])
				srcChunk[i] = SafeLoadWord(r[pos+i*8:])
			}
			simdFn(dstChunk[:n], srcChunk[:n])
			for i := int64(0); i < n; i++ {
				SafeStoreWord(o[pos+i*8:], dstChunk[i])
			}
			pos += n * 8
			remaining -= n
		}
	}
	for i := nWords * 8; i < nbytes; i++ {
		o[i] = byte(wop(uint64(l[i]), uint64(r[i])))
	}
}

func unalignedBinaryOp(left []byte, lo int64, right []byte, ro int64, out []byte, oo int64, length int64, wop wordOp, bop bitOp) {
	l := left[lo/8:]
	r := right[ro/8:]
	o := out[oo/8:]

	lo %= 8
	ro %= 8
	oo %= 8

	minOffset := lo
	if ro < minOffset {
		minOffset = ro
	}
	if oo < minOffset {
		minOffset = oo
	}
	minBytes := BytesForBits(length + minOffset)
	nwords := minBytes / 8

	if nwords > 1 {
		outMask := uint64(1)<<uint(oo) - 1

		length -= (nwords - 1) * 64
		lWord0 := SafeLoadWord(l)
		rWord0 := SafeLoadWord(r)
		oWord0 := SafeLoadWord(o)

		for nwords > 1 {
			l = l[8:]
			lWord1 := SafeLoadWord(l)
			lWord := shiftWord(lWord0, lWord1, lo)
			lWord0 = lWord1

			r = r[8:]
			rWord1 := SafeLoadWord(r)
			rWord := shiftWord(rWord0, rWord1, ro)
			rWord0 = rWord1

			word := wop(lWord, rWord)
			if oo != 0 {
				word = (word << uint(oo)) | (word >> uint(64-oo))
				oWord1 := SafeLoadWord(o[8:])
				oWord0 = (oWord0 & outMask) | (word &^ outMask)
				oWord1 = (oWord1 &^ outMask) | (word & outMask)
				SafeStoreWord(o, oWord0)
				SafeStoreWord(o[8:], oWord1)
				oWord0 = oWord1
			} else {
				SafeStoreWord(o, word)
			}
			o = o[8:]

			nwords--
		}
	}

	if length > 0 {
		lr := NewBitReader(l, lo, length)
		rr := NewBitReader(r, ro, length)
		w := NewBitWriter(o, oo, length)
		for i := int64(0); i < length; i++ {
			w.SetTo(bop(lr.IsSet(), rr.IsSet()))
			lr.Next()
			rr.Next()
			w.Next()
		}
		w.Finish()
	}
}

// AndToNew allocates a fresh (length+oo)-bit bitmap from pool, leaves its
// prefix [0, oo) zero, and writes the AND of left/right into [oo, oo+length).
// Bits past oo+length in the last byte are zero.
func AndToNew(pool Allocator, left []byte, lo int64, right []byte, ro int64, length, oo int64) ([]byte, error) {
	return binaryOpToNew(pool, left, lo, right, ro, length, oo, andWordOp, andBitOp, simd.AndWords)
}

// OrToNew is the OR counterpart of AndToNew.
func OrToNew(pool Allocator, left []byte, lo int64, right []byte, ro int64, length, oo int64) ([]byte, error) {
	return binaryOpToNew(pool, left, lo, right, ro, length, oo, orWordOp, orBitOp, simd.OrWords)
}

// XorToNew is the XOR counterpart of AndToNew.
func XorToNew(pool Allocator, left []byte, lo int64, right []byte, ro int64, length, oo int64) ([]byte, error) {
	return binaryOpToNew(pool, left, lo, right, ro, length, oo, xorWordOp, xorBitOp, simd.XorWords)
}

func binaryOpToNew(pool Allocator, left []byte, lo int64, right []byte, ro int64, length, oo int64, wop wordOp, bop bitOp, simdFn func(dst, src []uint64)) ([]byte, error) {
	checkSpan(lo, length)
	checkSpan(ro, length)
	checkSpan(oo, length)

	physBits := length + oo
	out, err := pool.AllocateEmptyBitmap(physBits)
	if err != nil {
		allocErr := newAllocationError(physBits, err)
		pkgLogger.LogAllocationFailure(physBits, allocErr)
		return nil, allocErr
	}
	if length == 0 {
		return out, nil
	}

	binaryOp(left, lo, right, ro, length, out, oo, wop, bop, simdFn)

	// The aligned fast path may have written don't-care bits into the
	// boundary bytes; clear them so the prefix and trailing bits stay zero.
	for i := oo - oo%8; i < oo; i++ {
		ClearBit(out, i)
	}
	for i := physBits; i < BytesForBits(physBits)*8; i++ {
		ClearBit(out, i)
	}
	return out, nil
}

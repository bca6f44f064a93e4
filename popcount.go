package bitutil

import "github.com/hupe1980/bitutil/internal/simd"

// wordChunk bounds how many words are staged on the stack at a time when
// handing the aligned-word loop to internal/simd — large enough to
// amortize the call, small enough to never escape to the heap.
const wordChunk = 64

// CountSetBits returns the number of set bits in length bits of buf
// starting at bitOffset.
//
// It decomposes the span with AlignWords(8) so the middle loop reads only
// 8-byte-aligned words, then delegates batches of that loop to
// internal/simd.PopcountWords; the leading and trailing bits are always
// counted bit-at-a-time.
func CountSetBits(buf []byte, bitOffset, length int64) int64 {
	checkSpan(bitOffset, length)
	if length == 0 {
		return 0
	}

	var count int64

	p := AlignWords(buf, bitOffset, length, 8)

	for i := bitOffset; i < bitOffset+p.LeadingBits; i++ {
		if GetBit(buf, i) {
			count++
		}
	}

	if p.AlignedWords > 0 {
		var chunk [wordChunk]uint64
		remaining := p.AlignedWords
		pos := p.AlignedStart
		for remaining > 0 {
			n := int64(wordChunk)
			if remaining < n {
				n = remaining
			}
			for i := int64(0); i < n; i++ {
				chunk[i] = SafeLoadWord(pos[i*8:])
			}
			count += int64(simd.PopcountWords(chunk[:n]))
			pos = pos[n*8:]
			remaining -= n
		}
	}

	for i := p.TrailingBitOffset; i < bitOffset+length; i++ {
		if GetBit(buf, i) {
			count++
		}
	}

	return count
}

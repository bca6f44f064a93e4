package bitutil

// WordAlignment is the decomposition of a (buf, bitOffset, length) view
// into leading bits (until the next wordSize-aligned byte boundary),
// aligned words, and trailing bits. AlignedStart is always wordSize-byte
// aligned relative to the start of buf.
//
// LeadingBits + AlignedWords*wordSize*8 + (bitOffset+length-TrailingBitOffset) == length
type WordAlignment struct {
	LeadingBits       int64
	AlignedStart      []byte
	AlignedWords      int64
	TrailingBitOffset int64
}

// AlignWords decomposes length bits of buf starting at bitOffset against a
// word size of wordSize bytes (the original template parameter NBYTES;
// this package only ever instantiates it with wordSize=8, but keeping the
// parameter general keeps the analyzer independently testable).
func AlignWords(buf []byte, bitOffset, length, wordSize int64) WordAlignment {
	wordBits := wordSize * 8
	bitEnd := bitOffset + length

	// The first bit position >= bitOffset that is both byte-aligned
	// (%8==0) and whose byte index is a multiple of wordSize: a word
	// load always starts at such a position.
	byteIdx := bitOffset / 8
	startByte := byteIdx
	if bitOffset%8 != 0 {
		startByte++
	}
	bytesToWordBoundary := (wordSize - startByte%wordSize) % wordSize
	alignedStartByte := startByte + bytesToWordBoundary
	alignedStartBit := alignedStartByte * 8

	leadingBits := alignedStartBit - bitOffset
	if leadingBits > length {
		leadingBits = length
	}
	alignedStartBit = bitOffset + leadingBits

	remaining := length - leadingBits
	alignedWords := remaining / wordBits
	trailingBitOffset := alignedStartBit + alignedWords*wordBits
	if trailingBitOffset > bitEnd {
		trailingBitOffset = bitEnd
	}

	var alignedStart []byte
	if alignedWords > 0 {
		alignedStart = buf[alignedStartBit/8:]
	}

	return WordAlignment{
		LeadingBits:       leadingBits,
		AlignedStart:      alignedStart,
		AlignedWords:      alignedWords,
		TrailingBitOffset: trailingBitOffset,
	}
}

package bitutil

import "bytes"

// Equals returns true iff the length bits of left starting at lo are
// bit-for-bit identical to the length bits of right starting at ro.
// Comparison short-circuits on the first difference.
func Equals(left []byte, lo int64, right []byte, ro int64, length int64) bool {
	checkSpan(lo, length)
	checkSpan(ro, length)
	if length == 0 {
		return true
	}

	if lo%8 == 0 && ro%8 == 0 {
		checkWords(lo, ro, 0)
		lBytes := left[lo/8:]
		rBytes := right[ro/8:]
		numBytes := length / 8
		if !bytes.Equal(lBytes[:numBytes], rBytes[:numBytes]) {
			return false
		}
		for i := numBytes * 8; i < length; i++ {
			if GetBit(lBytes, i) != GetBit(rBytes, i) {
				return false
			}
		}
		return true
	}

	l := left[lo/8:]
	r := right[ro/8:]
	lb := lo % 8
	rb := ro % 8

	nWords := length / 64
	if nWords > 1 {
		lCurrent := SafeLoadWord(l)
		rCurrent := SafeLoadWord(r)

		for i := int64(0); i < nWords-1; i++ {
			l = l[8:]
			lNext := SafeLoadWord(l)
			lWord := shiftWord(lCurrent, lNext, lb)
			lCurrent = lNext

			r = r[8:]
			rNext := SafeLoadWord(r)
			rWord := shiftWord(rCurrent, rNext, rb)
			rCurrent = rNext

			if lWord != rWord {
				return false
			}
		}

		length -= (nWords - 1) * 64
	}

	for i := int64(0); i < length; i++ {
		if GetBit(l, lb+i) != GetBit(r, rb+i) {
			return false
		}
	}
	return true
}

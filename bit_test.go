package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSetClearBit(t *testing.T) {
	buf := make([]byte, 2)

	SetBit(buf, 0)
	SetBit(buf, 9)
	assert.Equal(t, byte(0x01), buf[0])
	assert.Equal(t, byte(0x02), buf[1])
	assert.True(t, GetBit(buf, 0))
	assert.True(t, GetBit(buf, 9))
	assert.False(t, GetBit(buf, 1))

	ClearBit(buf, 0)
	assert.False(t, GetBit(buf, 0))
	assert.Equal(t, byte(0x02), buf[1])
}

func TestSetBitTo(t *testing.T) {
	buf := make([]byte, 1)
	SetBitTo(buf, 3, true)
	assert.Equal(t, byte(0x08), buf[0])
	SetBitTo(buf, 3, false)
	assert.Equal(t, byte(0x00), buf[0])
}

func TestBytesForBits(t *testing.T) {
	cases := map[int64]int64{
		0:  0,
		1:  1,
		7:  1,
		8:  1,
		9:  2,
		64: 8,
		65: 9,
	}
	for n, want := range cases {
		assert.Equal(t, want, BytesForBits(n), "n=%d", n)
	}
}

func TestSafeLoadStoreWord(t *testing.T) {
	buf := make([]byte, 16)
	for i := range buf {
		buf[i] = byte(i + 1)
	}

	// Unaligned load starting one byte in.
	w := SafeLoadWord(buf[1:])
	assert.Equal(t, byte(w), byte(2))
	assert.Equal(t, byte(w>>56), byte(9))

	dst := make([]byte, 9)
	SafeStoreWord(dst[1:], w)
	assert.Equal(t, buf[1:9], dst[1:9])
}

func TestBitOrderLSBFirst(t *testing.T) {
	buf := []byte{0b00000101}
	assert.True(t, GetBit(buf, 0))
	assert.False(t, GetBit(buf, 1))
	assert.True(t, GetBit(buf, 2))
}

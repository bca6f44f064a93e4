package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitWriter_Aligned(t *testing.T) {
	buf := make([]byte, 1)
	w := NewBitWriter(buf, 0, 8)
	bits := []bool{false, false, true, false, true, true, false, true}
	for _, b := range bits {
		w.SetTo(b)
		w.Next()
	}
	w.Finish()
	assert.Equal(t, byte(0b10110100), buf[0])
}

func TestBitWriter_PreservesBitsOutsideRange(t *testing.T) {
	// Write bits [3,7) of a 1-byte dst, low 3 bits and bit 7 must survive.
	buf := []byte{0b11000111}
	w := NewBitWriter(buf, 3, 4)
	for _, b := range []bool{true, true, false, true} {
		w.SetTo(b)
		w.Next()
	}
	w.Finish()

	assert.Equal(t, byte(0b11011111), buf[0])
	assert.True(t, GetBit(buf, 0))
	assert.True(t, GetBit(buf, 1))
	assert.True(t, GetBit(buf, 2))
	assert.True(t, GetBit(buf, 7))
}

func TestBitWriter_CrossesByteBoundary(t *testing.T) {
	buf := make([]byte, 2)
	w := NewBitWriter(buf, 4, 8)
	for i := 0; i < 8; i++ {
		w.Set()
		w.Next()
	}
	w.Finish()
	assert.Equal(t, byte(0xF0), buf[0])
	assert.Equal(t, byte(0x0F), buf[1])
}

func TestBitWriter_FinishNoopWhenClean(t *testing.T) {
	buf := []byte{0xAB}
	w := NewBitWriter(buf, 0, 0)
	w.Finish()
	assert.Equal(t, byte(0xAB), buf[0])
}

package bitutil

import (
	"testing"

	"github.com/hupe1980/bitutil/util"
	"github.com/stretchr/testify/assert"
)

func TestEquals_S6(t *testing.T) {
	left := []byte{0xAB, 0xCD}
	right := []byte{0xCD, 0xAB}
	got := Equals(left, 3, right, 3, 10)
	want := slowEquals(left, 3, right, 3, 10)
	assert.Equal(t, want, got)
}

func TestEquals_Reflexive(t *testing.T) {
	rng := util.NewRNG(5)
	buf := rng.RandomBuffer(32)

	for trial := 0; trial < 50; trial++ {
		span := rng.RandomSpan(int64(len(buf))*8, 63, 128)
		assert.True(t, Equals(buf, span.BitOffset, buf, span.BitOffset, span.Length))
	}
}

func TestEquals_Symmetric(t *testing.T) {
	rng := util.NewRNG(6)
	a := rng.RandomBuffer(32)
	b := rng.RandomBuffer(32)

	for trial := 0; trial < 50; trial++ {
		spanA := rng.RandomSpan(int64(len(a))*8, 63, 128)
		spanB := rng.RandomSpan(int64(len(b))*8, 63, 128)
		length := spanA.Length
		if spanB.Length < length {
			length = spanB.Length
		}
		assert.Equal(t,
			Equals(a, spanA.BitOffset, b, spanB.BitOffset, length),
			Equals(b, spanB.BitOffset, a, spanA.BitOffset, length))
	}
}

func TestEquals_ReferenceEquivalence(t *testing.T) {
	rng := util.NewRNG(9)
	a := rng.RandomBuffer(64)
	b := rng.FlipRandomBits(a, 20)

	for trial := 0; trial < 200; trial++ {
		spanA := rng.RandomSpan(int64(len(a))*8, 127, 256)
		spanB := rng.RandomSpan(int64(len(b))*8, 127, 256)
		length := spanA.Length
		if spanB.Length < length {
			length = spanB.Length
		}
		got := Equals(a, spanA.BitOffset, b, spanB.BitOffset, length)
		want := slowEquals(a, spanA.BitOffset, b, spanB.BitOffset, length)
		assert.Equal(t, want, got, "offA=%d offB=%d length=%d", spanA.BitOffset, spanB.BitOffset, length)
	}
}

func TestEquals_EmptyIsTrue(t *testing.T) {
	assert.True(t, Equals([]byte{0xFF}, 3, []byte{0x00}, 5, 0))
}

func slowEquals(left []byte, lo int64, right []byte, ro int64, length int64) bool {
	for i := int64(0); i < length; i++ {
		if GetBit(left, lo+i) != GetBit(right, ro+i) {
			return false
		}
	}
	return true
}

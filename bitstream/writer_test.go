package bitstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitWriter_WriteBit(t *testing.T) {
	w := NewBitWriter()
	for _, b := range []uint64{1, 0, 1, 1, 0, 0, 0, 1} {
		w.WriteBit(b)
	}

	out := w.Close()
	require.Len(t, out, 1)
	assert.Equal(t, byte(0b10110001), out[0])
}

func TestBitWriter_WriteBits_ByteAligned(t *testing.T) {
	w := NewBitWriter()
	w.WriteBits(0b1010, 4)
	w.WriteBits(0b0101, 4)

	out := w.Close()
	require.Len(t, out, 1)
	assert.Equal(t, byte(0b10100101), out[0])
}

func TestBitWriter_WriteBits_SpansAccumulator(t *testing.T) {
	w := NewBitWriter()
	for i := 0; i < 10; i++ {
		w.WriteBits(uint64(i%2), 7) // 70 bits total, crosses a 64-bit boundary
	}

	out := w.Close()
	// 70 bits -> 9 bytes once padded.
	assert.Len(t, out, 9)
}

func TestBitWriter_WriteByte_FastPathWhenAligned(t *testing.T) {
	w := NewBitWriter()
	w.WriteByte(0xAB)
	w.WriteByte(0xCD)

	out := w.Close()
	assert.Equal(t, []byte{0xAB, 0xCD}, out)
}

func TestBitWriter_WriteByte_Unaligned(t *testing.T) {
	w := NewBitWriter()
	w.WriteBit(1)
	w.WriteByte(0xFF)

	out := w.Close()
	require.Len(t, out, 2)
	// 1 followed by eight 1s is nine 1-bits; the second byte is zero-padded.
	assert.Equal(t, []byte{0b11111111, 0b10000000}, out)
}

func TestBitWriter_ByteAlignment(t *testing.T) {
	for n := 1; n <= 40; n++ {
		w := NewBitWriter()
		for i := 0; i < n; i++ {
			w.WriteBit(1)
		}

		out := w.Close()
		want := (n + 7) / 8
		assert.Equal(t, want, len(out), "n=%d", n)
	}
}

func TestBitWriter_Close_ZeroPadsFinalByte(t *testing.T) {
	w := NewBitWriter()
	w.WriteBits(0b101, 3)

	out := w.Close()
	require.Len(t, out, 1)
	assert.Equal(t, byte(0b10100000), out[0])
}

func TestBitWriter_Discard_ReturnsBufferToPool(t *testing.T) {
	w := NewBitWriter()
	w.WriteBits(0xFF, 8)
	w.Discard()

	assert.Nil(t, w.buf)
}

func TestBitWriter_WriteBits_64(t *testing.T) {
	w := NewBitWriter()
	w.WriteBits(0x0123456789ABCDEF, 64)

	out := w.Close()
	require.Len(t, out, 8)
	assert.Equal(t, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}, out)
}

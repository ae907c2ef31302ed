package bitstream

import (
	"fmt"

	"github.com/example-codec/tszgorilla/errs"
)

// BitReader consumes bits MSB-first from an immutable byte slice.
//
// Like BitWriter, reads are staged through a 64-bit accumulator refilled
// from the underlying slice a word at a time. Every read method reports
// errs.ErrEndOfStream if fewer bits remain than were requested.
type BitReader struct {
	data     []byte
	bytePos  int
	bitBuf   uint64
	bitCount int // valid bits remaining in bitBuf
}

// NewBitReader creates a BitReader over data. data is not copied and must
// not be mutated while the reader is in use.
func NewBitReader(data []byte) *BitReader {
	return &BitReader{data: data}
}

// fill tops up the accumulator from the byte slice. It returns false if the
// slice is exhausted.
func (r *BitReader) fill() bool {
	if r.bytePos >= len(r.data) {
		return false
	}

	available := len(r.data) - r.bytePos
	n := 8
	if n > available {
		n = available
	}

	var buf uint64
	for i := 0; i < n; i++ {
		buf = (buf << 8) | uint64(r.data[r.bytePos])
		r.bytePos++
	}
	buf <<= uint(8 * (8 - n))

	r.bitBuf = buf
	r.bitCount = n * 8

	return true
}

// ReadBit consumes a single bit.
func (r *BitReader) ReadBit() (uint64, error) {
	if r.bitCount == 0 && !r.fill() {
		return 0, errs.ErrEndOfStream
	}

	bit := r.bitBuf >> 63
	r.bitBuf <<= 1
	r.bitCount--

	return bit, nil
}

// ReadBits consumes n bits, most significant first, right-aligned into the
// result. n must be in [1, 64].
func (r *BitReader) ReadBits(n int) (uint64, error) {
	if n <= 0 {
		return 0, nil
	}
	if n > 64 {
		return 0, fmt.Errorf("bitstream: ReadBits: n=%d exceeds 64", n)
	}

	if n <= r.bitCount {
		shift := 64 - n
		result := r.bitBuf >> shift
		r.bitBuf <<= n
		r.bitCount -= n

		return result, nil
	}

	var result uint64
	remaining := n
	first := true

	for remaining > 0 {
		if r.bitCount == 0 && !r.fill() {
			return 0, errs.ErrEndOfStream
		}

		take := remaining
		if take > r.bitCount {
			take = r.bitCount
		}

		chunk := r.bitBuf >> (64 - take)
		if first {
			result = chunk
			first = false
		} else {
			result = (result << take) | chunk
		}

		r.bitBuf <<= take
		r.bitCount -= take
		remaining -= take
	}

	return result, nil
}

// ReadByte consumes 8 bits.
func (r *BitReader) ReadByte() (byte, error) {
	v, err := r.ReadBits(8)
	if err != nil {
		return 0, err
	}

	return byte(v), nil
}

// PeekBits returns the next n bits without consuming them, so the decoder
// can test a bucket prefix before committing to it. n must be in [1, 64].
func (r *BitReader) PeekBits(n int) (uint64, error) {
	savedPos, savedBuf, savedCount := r.bytePos, r.bitBuf, r.bitCount

	v, err := r.ReadBits(n)

	r.bytePos, r.bitBuf, r.bitCount = savedPos, savedBuf, savedCount

	return v, err
}

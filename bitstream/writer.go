// Package bitstream provides the MSB-first bit-granularity writer and reader
// that the tszgorilla codec sits on.
//
// Both types expose a sequential, append-only (writer) or read-once (reader)
// view of a byte buffer at bit granularity. Bits are packed most-significant
// bit first within each byte, matching the convention the Gorilla paper's
// prefix codes (0, 10, 110, 1110, 1111) are written in.
package bitstream

import "github.com/example-codec/tszgorilla/internal/pool"

// BitWriter accumulates bits MSB-first into a growable byte buffer.
//
// Bits are staged in a 64-bit accumulator and flushed to the byte buffer a
// full word at a time; this keeps the common case (writing a handful of
// bits per call) allocation-free and branch-light.
type BitWriter struct {
	buf      *pool.ByteBuffer
	bitBuf   uint64
	bitCount int // valid bits staged in bitBuf, 0..63 between calls
	closed   bool
}

// NewBitWriter creates an empty BitWriter.
func NewBitWriter() *BitWriter {
	return &BitWriter{buf: pool.Get()}
}

// WriteBit appends a single bit (0 or 1) at the current cursor.
func (w *BitWriter) WriteBit(bit uint64) {
	w.bitBuf = (w.bitBuf << 1) | (bit & 1)
	w.bitCount++

	if w.bitCount == 64 {
		w.flush()
	}
}

// WriteBits appends the low n bits of value, most significant of those n
// bits first. n must be in [1, 64].
func (w *BitWriter) WriteBits(value uint64, n int) {
	if n <= 0 {
		return
	}

	if n < 64 {
		value &= (uint64(1) << n) - 1
	}

	available := 64 - w.bitCount
	if n <= available {
		w.bitBuf = (w.bitBuf << n) | value
		w.bitCount += n

		if w.bitCount == 64 {
			w.flush()
		}

		return
	}

	// Split across the accumulator boundary: fill the current word, flush,
	// then start the next word with the remaining low bits.
	highBits := n - available
	w.bitBuf = (w.bitBuf << available) | (value >> highBits)
	w.bitCount = 64
	w.flush()

	w.bitBuf = value & ((uint64(1) << highBits) - 1)
	w.bitCount = highBits
}

// WriteByte appends 8 bits, taking a direct byte-append fast path when the
// writer is currently byte-aligned.
func (w *BitWriter) WriteByte(b byte) {
	if w.bitCount == 0 {
		w.buf.Grow(1)
		w.buf.AppendByte(b)

		return
	}

	w.WriteBits(uint64(b), 8)
}

// flush drains whole bytes out of the accumulator into the byte buffer,
// left-aligning any partial residue so the next write continues from the
// correct bit position.
func (w *BitWriter) flush() {
	if w.bitCount == 0 {
		return
	}

	numBytes := (w.bitCount + 7) / 8
	w.buf.Grow(numBytes)

	aligned := w.bitBuf << (64 - w.bitCount)
	for i := 0; i < numBytes; i++ {
		w.buf.AppendByte(byte(aligned >> (56 - 8*i)))
	}

	w.bitBuf = 0
	w.bitCount = 0
}

// Close flushes any pending bits (zero-padding the final byte) and returns
// the accumulated byte slice. The BitWriter must not be used afterwards;
// ownership of the returned slice passes to the caller.
func (w *BitWriter) Close() []byte {
	if !w.closed {
		w.flush()
		w.closed = true
	}

	return w.buf.Bytes()
}

// Discard abandons the writer and returns its backing buffer to the pool.
// Call it instead of Close when a partially written stream is being thrown
// away, e.g. on an error path before the stream was ever finished.
func (w *BitWriter) Discard() {
	if w.closed {
		return
	}

	w.closed = true
	pool.Put(w.buf)
	w.buf = nil
}

// Len reports the number of whole bytes flushed to the buffer so far. It
// does not include bits still staged in the accumulator.
func (w *BitWriter) Len() int {
	return w.buf.Len()
}

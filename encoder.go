package tsz

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/example-codec/tszgorilla/bitstream"
	"github.com/example-codec/tszgorilla/errs"
)

// firstDeltaBits is the width of the first point's raw timestamp delta.
const firstDeltaBits = 14

// maxFirstDelta is one past the largest delta representable in firstDeltaBits.
const maxFirstDelta = uint64(1) << firstDeltaBits

// leadingZerosBits / significantBits are the field widths of the
// non-windowed XOR payload header.
const (
	leadingZerosBits = 5
	significantBits  = 6
	maxLeadingZeros  = (1 << leadingZerosBits) - 1 // 31
)

// noLeadingTrailing marks "no previous XOR window" before the second point.
const noLeadingTrailing = 0xFF

// Encoder turns an ordered sequence of DataPoints sharing a header
// timestamp into a Gorilla-encoded bit stream.
//
// An Encoder is single-use: call Encode for every point in order, then
// Close exactly once to obtain the finished byte slice. It is not safe for
// concurrent use.
type Encoder struct {
	writer *bitstream.BitWriter

	header uint64

	tPrev       uint64
	deltaPrev   uint64
	vPrevBits   uint64
	leadingPrev uint8
	trailingPrev uint8

	first  bool
	closed bool
}

// NewEncoder creates an Encoder that will write a stream headed by
// headerTS. Nothing is emitted until the first call to Encode.
func NewEncoder(headerTS uint64) *Encoder {
	return &Encoder{
		writer: bitstream.NewBitWriter(),
		header: headerTS,
		first:  true,
	}
}

// Encode appends one data point to the stream.
//
// The first call must carry a timestamp within [headerTS, headerTS+2^14).
// Every later call must carry a timestamp no smaller than the previous
// one and a delta-of-delta that fits the widest (32-bit signed) bucket;
// violating either returns an error instead of corrupting the stream.
func (e *Encoder) Encode(dp DataPoint) error {
	if e.closed {
		return fmt.Errorf("tsz: Encode called on a closed Encoder")
	}

	vBits := math.Float64bits(dp.Value())

	if e.first {
		return e.encodeFirst(dp, vBits)
	}

	return e.encodeNext(dp, vBits)
}

func (e *Encoder) encodeFirst(dp DataPoint, vBits uint64) error {
	t := dp.Timestamp()
	if t < e.header {
		return fmt.Errorf("%w: first timestamp %d precedes header %d", errs.ErrNonMonotonicTimestamp, t, e.header)
	}

	delta := t - e.header
	if delta >= maxFirstDelta {
		return fmt.Errorf("%w: delta %d", errs.ErrFirstDeltaTooLarge, delta)
	}

	e.writer.WriteBits(e.header, 64)
	e.writer.WriteBits(delta, firstDeltaBits)
	e.writer.WriteBits(vBits, 64)

	e.tPrev = t
	e.deltaPrev = delta
	e.vPrevBits = vBits
	e.leadingPrev = noLeadingTrailing
	e.trailingPrev = noLeadingTrailing
	e.first = false

	return nil
}

func (e *Encoder) encodeNext(dp DataPoint, vBits uint64) error {
	t := dp.Timestamp()
	if t < e.tPrev {
		return fmt.Errorf("%w: timestamp %d precedes previous %d", errs.ErrNonMonotonicTimestamp, t, e.tPrev)
	}

	delta := t - e.tPrev

	dod := int64(delta) - int64(e.deltaPrev)
	if err := e.writeDeltaOfDelta(dod); err != nil {
		return err
	}

	e.tPrev = t
	e.deltaPrev = delta

	e.writeXOR(vBits)
	e.vPrevBits = vBits

	return nil
}

// writeDeltaOfDelta emits dod using the bucketed prefix code from the wire
// format, smallest bucket first so the encoder never collides with the
// end-of-stream sentinel.
func (e *Encoder) writeDeltaOfDelta(dod int64) error {
	switch {
	case dod == 0:
		e.writer.WriteBit(0)
	case dod >= -63 && dod <= 64:
		e.writer.WriteBits(0b10, 2)
		e.writer.WriteBits(uint64(dod)&0x7F, 7)
	case dod >= -255 && dod <= 256:
		e.writer.WriteBits(0b110, 3)
		e.writer.WriteBits(uint64(dod)&0x1FF, 9)
	case dod >= -2047 && dod <= 2048:
		e.writer.WriteBits(0b1110, 4)
		e.writer.WriteBits(uint64(dod)&0xFFF, 12)
	case dod >= math.MinInt32 && dod <= math.MaxInt32:
		e.writer.WriteBits(0b1111, 4)
		e.writer.WriteBits(uint64(dod)&0xFFFFFFFF, 32)
	default:
		return fmt.Errorf("%w: dod=%d", errs.ErrDeltaOfDeltaOverflow, dod)
	}

	return nil
}

// writeXOR emits the value control bits and, when the value changed, the
// meaningful-window payload per the encoding described in §4.2.3.
func (e *Encoder) writeXOR(vBits uint64) {
	xor := vBits ^ e.vPrevBits

	if xor == 0 {
		e.writer.WriteBit(0)
		return
	}

	e.writer.WriteBit(1)

	leading := bits.LeadingZeros64(xor)
	if leading > maxLeadingZeros {
		leading = maxLeadingZeros
	}
	trailing := bits.TrailingZeros64(xor)

	if e.leadingPrev != noLeadingTrailing &&
		leading >= int(e.leadingPrev) && trailing >= int(e.trailingPrev) {
		e.writer.WriteBit(0)

		significant := 64 - int(e.leadingPrev) - int(e.trailingPrev)
		e.writer.WriteBits(xor>>e.trailingPrev, significant)

		return
	}

	e.writer.WriteBit(1)
	e.writer.WriteBits(uint64(leading), leadingZerosBits)

	significant := 64 - leading - trailing
	e.writer.WriteBits(uint64(significant-1), significantBits)
	e.writer.WriteBits(xor>>uint(trailing), significant)

	e.leadingPrev = uint8(leading)
	e.trailingPrev = uint8(trailing)
}

// Close writes the end-of-stream sentinel, flushes the writer, and returns
// the finished byte stream. The Encoder must not be used afterwards.
func (e *Encoder) Close() []byte {
	if e.closed {
		return e.writer.Close()
	}

	e.writer.WriteBits(0b1111, 4)
	e.writer.WriteBits(0xFFFFFFFF, 32)
	e.closed = true

	return e.writer.Close()
}

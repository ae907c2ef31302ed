package tsz

import (
	"fmt"
	"math"

	"github.com/example-codec/tszgorilla/bitstream"
	"github.com/example-codec/tszgorilla/errs"
)

// Decoder reconstructs the DataPoint sequence written by an Encoder.
//
// Create one with NewDecoder and call Next repeatedly until it returns
// errs.ErrEndOfStream (clean termination) or errs.ErrInvalidBitStream (the
// stream was truncated). Once Next returns either, every later call
// returns the same error. It is not safe for concurrent use.
type Decoder struct {
	reader *bitstream.BitReader

	header uint64

	tPrev        uint64
	deltaPrev    uint64
	vPrevBits    uint64
	leadingPrev  uint8
	trailingPrev uint8

	first bool
	done  bool
	err   error
}

// NewDecoder creates a Decoder over the bytes produced by Encoder.Close.
// Nothing is read until the first call to Next.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		reader: bitstream.NewBitReader(data),
		first:  true,
	}
}

// Next returns the next data point, or a terminal error: errs.ErrEndOfStream
// once the encoder's sentinel is recognised, or errs.ErrInvalidBitStream if
// the stream runs out of bits before a point could be fully reconstructed.
func (d *Decoder) Next() (DataPoint, error) {
	if d.done {
		return DataPoint{}, d.err
	}

	var (
		dp  DataPoint
		err error
	)

	if d.first {
		dp, err = d.decodeFirst()
	} else {
		dp, err = d.decodeNext()
	}

	if err != nil {
		d.done = true
		d.err = err

		return DataPoint{}, err
	}

	return dp, nil
}

func (d *Decoder) readBits(n int) (uint64, error) {
	v, err := d.reader.ReadBits(n)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrInvalidBitStream, err)
	}

	return v, nil
}

func (d *Decoder) readBit() (uint64, error) {
	return d.readBits(1)
}

func (d *Decoder) decodeFirst() (DataPoint, error) {
	header, err := d.readBits(64)
	if err != nil {
		return DataPoint{}, err
	}

	delta, err := d.readBits(firstDeltaBits)
	if err != nil {
		return DataPoint{}, err
	}

	vBits, err := d.readBits(64)
	if err != nil {
		return DataPoint{}, err
	}

	d.header = header
	t := header + delta

	d.tPrev = t
	d.deltaPrev = delta
	d.vPrevBits = vBits
	d.leadingPrev = noLeadingTrailing
	d.trailingPrev = noLeadingTrailing
	d.first = false

	return DataPoint{t: t, v: math.Float64frombits(vBits)}, nil
}

// signExtend interprets the low n bits of v as a two's-complement signed
// integer and sign-extends it to 64 bits.
func signExtend(v uint64, n int) int64 {
	shift := uint(64 - n)
	return int64(v<<shift) >> shift
}

func (d *Decoder) decodeNext() (DataPoint, error) {
	dod, err := d.readDeltaOfDelta()
	if err != nil {
		return DataPoint{}, err
	}

	delta := uint64(int64(d.deltaPrev) + dod)
	t := d.tPrev + delta
	d.tPrev = t
	d.deltaPrev = delta

	vBits, err := d.readValueBits()
	if err != nil {
		return DataPoint{}, err
	}
	d.vPrevBits = vBits

	return DataPoint{t: t, v: math.Float64frombits(vBits)}, nil
}

// readDeltaOfDelta reads the bucketed timestamp prefix and returns the
// signed delta-of-delta, or errs.ErrEndOfStream if the sentinel pattern
// ("1111" + thirty-two one-bits) is recognised.
func (d *Decoder) readDeltaOfDelta() (int64, error) {
	b, err := d.readBit()
	if err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, nil
	}

	b, err = d.readBit()
	if err != nil {
		return 0, err
	}
	if b == 0 {
		v, err := d.readBits(7)
		if err != nil {
			return 0, err
		}
		// The 7-bit bucket holds -63..64, so the pattern 1000000 is +64.
		if v == 1<<6 {
			return 1 << 6, nil
		}
		return signExtend(v, 7), nil
	}

	b, err = d.readBit()
	if err != nil {
		return 0, err
	}
	if b == 0 {
		v, err := d.readBits(9)
		if err != nil {
			return 0, err
		}
		// The 9-bit bucket holds -255..256, so the top-bit-only pattern is +256.
		if v == 1<<8 {
			return 1 << 8, nil
		}
		return signExtend(v, 9), nil
	}

	b, err = d.readBit()
	if err != nil {
		return 0, err
	}
	if b == 0 {
		v, err := d.readBits(12)
		if err != nil {
			return 0, err
		}
		// The 12-bit bucket holds -2047..2048, so the top-bit-only pattern is +2048.
		if v == 1<<11 {
			return 1 << 11, nil
		}
		return signExtend(v, 12), nil
	}

	v, err := d.readBits(32)
	if err != nil {
		return 0, err
	}
	if v == 0xFFFFFFFF {
		return 0, errs.ErrEndOfStream
	}

	return signExtend(v, 32), nil
}

// readValueBits decodes the value control bits and returns the
// reconstructed 64-bit value pattern.
func (d *Decoder) readValueBits() (uint64, error) {
	control, err := d.readBit()
	if err != nil {
		return 0, err
	}
	if control == 0 {
		return d.vPrevBits, nil
	}

	windowControl, err := d.readBit()
	if err != nil {
		return 0, err
	}

	if windowControl == 0 {
		significant := 64 - int(d.leadingPrev) - int(d.trailingPrev)

		payload, err := d.readBits(significant)
		if err != nil {
			return 0, err
		}

		xor := payload << d.trailingPrev

		return xor ^ d.vPrevBits, nil
	}

	leading, err := d.readBits(leadingZerosBits)
	if err != nil {
		return 0, err
	}

	sigField, err := d.readBits(significantBits)
	if err != nil {
		return 0, err
	}
	significant := int(sigField) + 1
	trailing := 64 - int(leading) - significant

	payload, err := d.readBits(significant)
	if err != nil {
		return 0, err
	}

	xor := payload << uint(trailing)

	d.leadingPrev = uint8(leading)
	d.trailingPrev = uint8(trailing)

	return xor ^ d.vPrevBits, nil
}

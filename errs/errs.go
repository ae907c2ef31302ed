// Package errs defines the sentinel errors shared by tszgorilla's codec packages.
//
// Callers compare against these with errors.Is; internal call sites wrap them
// with additional context via fmt.Errorf("%w: ...", errs.Err...).
package errs

import "errors"

var (
	// ErrEndOfStream is returned when a bit- or byte-level reader has no
	// more data available. The decoder also returns it, unwrapped, once it
	// has recognised the codec's end-of-stream sentinel.
	ErrEndOfStream = errors.New("tszgorilla: end of stream")

	// ErrInvalidBitStream is returned when a Decoder runs out of bits in
	// the middle of reconstructing a data point, i.e. the encoded stream
	// was truncated.
	ErrInvalidBitStream = errors.New("tszgorilla: truncated bit stream")

	// ErrInvalidValue is reserved for a bucket/control-bit combination that
	// cannot correspond to any value this codec emits.
	ErrInvalidValue = errors.New("tszgorilla: invalid encoded value")

	// ErrNonMonotonicTimestamp is returned by Encoder.Encode when the
	// caller supplies a timestamp smaller than the previously encoded one.
	ErrNonMonotonicTimestamp = errors.New("tszgorilla: timestamp is not monotonically non-decreasing")

	// ErrFirstDeltaTooLarge is returned by Encoder.Encode when the first
	// data point's timestamp is 2^14 or more past the stream header.
	ErrFirstDeltaTooLarge = errors.New("tszgorilla: first delta does not fit in 14 bits")

	// ErrDeltaOfDeltaOverflow is returned by Encoder.Encode when a
	// delta-of-delta does not fit in the widest (32-bit signed) bucket.
	ErrDeltaOfDeltaOverflow = errors.New("tszgorilla: delta-of-delta does not fit in 32 signed bits")

	// ErrChecksumMismatch is returned by stream.Reader when the envelope's
	// checksum does not match its payload.
	ErrChecksumMismatch = errors.New("tszgorilla: envelope checksum mismatch")

	// ErrEnvelopeTooShort is returned by stream.Reader when the input is
	// smaller than the fixed envelope header.
	ErrEnvelopeTooShort = errors.New("tszgorilla: envelope shorter than header")
)

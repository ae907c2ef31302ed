// Package compress provides optional envelope compression for tszgorilla byte streams.
//
// The core codec (package tsz) already exploits the structure of time-series
// data through delta-of-delta timestamps and XOR-based value encoding; this
// package offers a second, general-purpose compression pass over the
// finished byte buffer returned by Encoder.Close(), for callers who want to
// shrink it further before writing it to disk or shipping it over the wire.
//
// Four codecs are available, selected by CodecID:
//
//   - IDNone: passthrough, zero overhead.
//   - IDS2:   github.com/klauspost/compress/s2, fast with a good ratio.
//   - IDLZ4:  github.com/pierrec/lz4/v4, very fast decompression.
//   - IDZstd: github.com/klauspost/compress/zstd (pure Go) or
//     github.com/valyala/gozstd under the "cgo" build tag, best ratio.
//
// This package never touches the bit-for-bit wire format the core codec
// produces; it only wraps or unwraps the finished byte slice.
package compress

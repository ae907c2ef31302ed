package stream

import (
	"encoding/binary"

	tsz "github.com/example-codec/tszgorilla"
	"github.com/example-codec/tszgorilla/compress"
	"github.com/example-codec/tszgorilla/internal/hash"
	"github.com/example-codec/tszgorilla/internal/options"
)

// envelopeHeaderLen is the fixed-size prefix before the compressed payload:
// one codec id byte plus an 8-byte xxhash64 checksum.
const envelopeHeaderLen = 1 + 8

// Writer accumulates DataPoints through the core Encoder and, on Close,
// wraps the finished byte stream in a compressed, checksummed envelope.
//
// A Writer is single-use, like the tsz.Encoder underneath it: call Encode
// for every point in order, then Close exactly once.
type Writer struct {
	enc    *tsz.Encoder
	config *WriterConfig
}

// NewWriter creates a Writer that will write a core stream headed by
// headerTS, wrapped by the envelope described by opts.
func NewWriter(headerTS uint64, opts ...WriterOption) (*Writer, error) {
	config := defaultWriterConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Writer{
		enc:    tsz.NewEncoder(headerTS),
		config: config,
	}, nil
}

// Encode appends one data point to the underlying core stream.
func (w *Writer) Encode(dp tsz.DataPoint) error {
	return w.enc.Encode(dp)
}

// Close finalises the core stream, compresses it with the configured
// codec, and returns the self-describing envelope bytes.
func (w *Writer) Close() ([]byte, error) {
	payload := w.enc.Close()

	codec, err := compress.CreateCodec(w.config.codec)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, err
	}

	envelope := make([]byte, envelopeHeaderLen+len(compressed))
	envelope[0] = byte(w.config.codec)
	binary.BigEndian.PutUint64(envelope[1:envelopeHeaderLen], hash.Sum64(compressed))
	copy(envelope[envelopeHeaderLen:], compressed)

	return envelope, nil
}

package stream

import (
	"encoding/binary"

	tsz "github.com/example-codec/tszgorilla"
	"github.com/example-codec/tszgorilla/compress"
	"github.com/example-codec/tszgorilla/errs"
	"github.com/example-codec/tszgorilla/internal/hash"
)

// Reader verifies and unwraps a Writer envelope, then decodes the core
// stream through a tsz.Decoder.
type Reader struct {
	dec *tsz.Decoder
}

// NewReader parses the envelope header, verifies its checksum, decompresses
// the payload with the codec named in the envelope, and prepares a core
// Decoder over the result.
func NewReader(envelope []byte) (*Reader, error) {
	if len(envelope) < envelopeHeaderLen {
		return nil, errs.ErrEnvelopeTooShort
	}

	id := compress.CodecID(envelope[0])
	wantSum := binary.BigEndian.Uint64(envelope[1:envelopeHeaderLen])
	compressed := envelope[envelopeHeaderLen:]

	if got := hash.Sum64(compressed); got != wantSum {
		return nil, errs.ErrChecksumMismatch
	}

	codec, err := compress.CreateCodec(id)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, err
	}

	return &Reader{dec: tsz.NewDecoder(payload)}, nil
}

// Next returns the next data point, or a terminal error exactly as
// tsz.Decoder.Next does.
func (r *Reader) Next() (tsz.DataPoint, error) {
	return r.dec.Next()
}

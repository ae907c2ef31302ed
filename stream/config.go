package stream

import (
	"github.com/example-codec/tszgorilla/compress"
	"github.com/example-codec/tszgorilla/internal/options"
)

// WriterConfig holds the envelope options applied to a Writer.
type WriterConfig struct {
	codec compress.CodecID
}

func defaultWriterConfig() *WriterConfig {
	return &WriterConfig{codec: compress.IDNone}
}

// WriterOption configures a Writer's envelope.
//
// This is a type alias for the generic Option interface specialized for
// WriterConfig. The core tsz.Encoder itself takes no options.
type WriterOption = options.Option[*WriterConfig]

// WithCodec selects the compression codec applied to the envelope payload.
// The default is compress.IDNone.
func WithCodec(id compress.CodecID) WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.codec = id
	})
}

package compress

import "fmt"

// CodecID identifies a compression algorithm in the stream envelope header.
type CodecID byte

const (
	IDNone CodecID = iota
	IDS2
	IDLZ4
	IDZstd
)

// String returns the canonical name of the codec.
func (id CodecID) String() string {
	switch id {
	case IDNone:
		return "none"
	case IDS2:
		return "s2"
	case IDLZ4:
		return "lz4"
	case IDZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", byte(id))
	}
}

// Compressor compresses a finished tszgorilla byte stream for storage or transport.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller; NoOpCompressor returns the
	//     input slice itself, the other codecs allocate a new one
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	// Decompress decompresses data and returns the original result.
	//
	// Returns an error if data is corrupted or was compressed with a
	// different algorithm than the one the Decompressor implements.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression directions.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the given CodecID.
func CreateCodec(id CodecID) (Codec, error) {
	switch id {
	case IDNone:
		return NewNoOpCompressor(), nil
	case IDS2:
		return NewS2Compressor(), nil
	case IDLZ4:
		return NewLZ4Compressor(), nil
	case IDZstd:
		return NewZstdCompressor(), nil
	default:
		return nil, fmt.Errorf("compress: unknown codec id %d", byte(id))
	}
}

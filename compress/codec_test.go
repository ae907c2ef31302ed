package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload() []byte {
	b := make([]byte, 4096)
	for i := range b {
		b[i] = byte(i % 7)
	}

	return b
}

func TestCodecs_RoundTrip(t *testing.T) {
	data := payload()

	for _, id := range []CodecID{IDNone, IDS2, IDLZ4, IDZstd} {
		t.Run(id.String(), func(t *testing.T) {
			codec, err := CreateCodec(id)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, data, decompressed)
		})
	}
}

func TestCreateCodec_UnknownID(t *testing.T) {
	_, err := CreateCodec(CodecID(99))
	require.Error(t, err)
}

func TestNoOpCompressor_Passthrough(t *testing.T) {
	c := NewNoOpCompressor()
	data := payload()

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, compressed)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}

func TestCodecID_String(t *testing.T) {
	assert.Equal(t, "none", IDNone.String())
	assert.Equal(t, "s2", IDS2.String())
	assert.Equal(t, "lz4", IDLZ4.String())
	assert.Equal(t, "zstd", IDZstd.String())
	assert.Contains(t, CodecID(42).String(), "unknown")
}

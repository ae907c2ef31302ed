package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, len(bb.B))
	assert.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_AppendByte(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.AppendByte('a')
	bb.AppendByte('b')

	assert.Equal(t, []byte("ab"), bb.Bytes())
	assert.Equal(t, 2, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(DefaultBufferSize)
	bb.AppendByte('x')
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, cap(bb.B))
}

func TestByteBuffer_Grow_SufficientCapacity(t *testing.T) {
	bb := NewByteBuffer(64)
	originalCap := cap(bb.B)

	bb.Grow(10)

	assert.Equal(t, originalCap, cap(bb.B))
}

func TestByteBuffer_Grow_ForcesReallocation(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.B = append(bb.B, make([]byte, 4)...)

	bb.Grow(100)

	assert.GreaterOrEqual(t, cap(bb.B), 104)
}

func TestByteBuffer_Grow_PreservesData(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.B = append(bb.B, []byte("data")...)

	bb.Grow(1000)

	assert.Equal(t, []byte("data"), bb.B)
}

func TestGetPut_ResetsBuffer(t *testing.T) {
	bb := Get()
	bb.AppendByte('z')
	Put(bb)

	bb2 := Get()
	assert.Equal(t, 0, bb2.Len())
}

func TestPut_NilIsNoOp(t *testing.T) {
	assert.NotPanics(t, func() {
		Put(nil)
	})
}

func TestPut_DiscardsOversizedBuffer(t *testing.T) {
	pool := newByteBufferPool(64)

	bb := pool.Get()
	bb.Grow(MaxPooledSize + 1)
	pool.Put(bb)

	bb2 := pool.Get()
	assert.Less(t, cap(bb2.B), MaxPooledSize)
}

// Package pool provides a pooled byte buffer used as the BitWriter's backing store.
package pool

import "sync"

// DefaultBufferSize is the initial capacity handed out by the default pool.
// A handful of data points fit comfortably before the first reallocation.
const DefaultBufferSize = 256

// MaxPooledSize is the capacity above which a returned buffer is discarded
// instead of pooled, so one oversized stream doesn't bloat the pool for
// everyone after it.
const MaxPooledSize = 1 << 20 // 1MiB

// ByteBuffer is an appendable byte slice with pool-friendly Reset/Grow helpers.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes currently stored.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// AppendByte appends a single byte, growing the backing array if necessary.
func (bb *ByteBuffer) AppendByte(b byte) {
	bb.B = append(bb.B, b)
}

// Grow ensures the buffer can accept n more bytes without reallocating.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	grown := make([]byte, len(bb.B), 2*(len(bb.B)+n))
	copy(grown, bb.B)
	bb.B = grown
}

// byteBufferPool pools ByteBuffers to reduce allocations for callers that
// construct many short-lived Encoders, e.g. a batch job re-encoding one
// stream per series.
type byteBufferPool struct {
	pool sync.Pool
}

func newByteBufferPool(defaultSize int) *byteBufferPool {
	return &byteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
	}
}

func (p *byteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

func (p *byteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if cap(bb.B) > MaxPooledSize {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = newByteBufferPool(DefaultBufferSize)

// Get retrieves a ByteBuffer from the default pool.
func Get() *ByteBuffer {
	return defaultPool.Get()
}

// Put returns a ByteBuffer to the default pool for reuse.
func Put(bb *ByteBuffer) {
	defaultPool.Put(bb)
}

package pool

import (
	"sync"
)

// BufferPool manages a pool of fixed-size byte slices. The streaming
// checksum path reads files through these buffers; fixed sizing keeps
// every chunk a whole number of checksum words.
type BufferPool struct {
	size int       // Size of each buffer.
	pool sync.Pool // Thread-safe pool of buffers.
}

// Creates a new buffer pool with a specified buffer size.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
	}
}

// Retrieves a buffer from the pool.
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Returns a buffer to the pool.
func (bp *BufferPool) Put(buf *[]byte) {
	// Don't pool buffers of the wrong size.
	if len(*buf) != bp.size {
		return
	}
	bp.pool.Put(buf)
}

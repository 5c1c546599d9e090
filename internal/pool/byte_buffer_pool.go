// Package pool provides reusable byte buffers for the geometry encoder,
// avoiding a fresh allocation for every encoded blob.
package pool

import (
	"io"
	"sync"
)

// Default and maximum retained sizes for pooled geometry-encoding
// buffers. Most GeoPackage geometry blobs (points, short linestrings)
// fit well under the default; large multi-polygons may grow past it
// (see Grow), and a buffer whose capacity ends up above the max
// threshold is discarded by Put rather than returned to the pool.
const (
	GeometryBufferDefaultSize  = 256        // fits header + envelope + a handful of coordinates
	GeometryBufferMaxThreshold = 1024 * 256 // 256KiB, beyond which buffers aren't returned to the pool
)

// ByteBuffer is a growable byte slice wrapper designed for repeated
// reuse through a sync.Pool, avoiding per-encode allocation.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	if avail := cap(bb.B) - len(bb.B); avail < len(data) {
		bb.Grow(len(data))
	}
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating.
//
// Growth strategy:
//   - Small buffers (<= 4x default): grow by GeometryBufferDefaultSize.
//   - Larger buffers: grow by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := GeometryBufferDefaultSize
	if cap(bb.B) > 4*GeometryBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
// It implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.MustWrite(data)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse. Buffers larger than
// the pool's maxThreshold are discarded to prevent memory bloat from a
// single oversized MultiPolygon pinning a large backing array forever.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var geometryBufferPool = NewByteBufferPool(GeometryBufferDefaultSize, GeometryBufferMaxThreshold)

// GetGeometryBuffer retrieves a ByteBuffer from the default geometry-encoding pool.
func GetGeometryBuffer() *ByteBuffer {
	return geometryBufferPool.Get()
}

// PutGeometryBuffer returns a ByteBuffer to the default geometry-encoding pool.
func PutGeometryBuffer(bb *ByteBuffer) {
	geometryBufferPool.Put(bb)
}

// Package pool provides a pooled byte buffer for STAR's encoders.
//
// Every case encoder appends varint-coded bytes one field at a time; pooling
// the backing slice avoids repeated allocation/GC churn across repeated
// Encode calls in the same process (the `encode` CLI subcommand constructs
// exactly one encoder per invocation, but the
// package is also used directly by long-lived callers such as the test
// suite, which construct many encoders in a loop).
package pool

import "sync"

// DefaultBufferSize is the initial capacity handed out by Get.
const DefaultBufferSize = 4096

// Buffer is a thin wrapper around a growable byte slice, reused via Put/Get
// to avoid reallocating on every encode.
type Buffer struct {
	B []byte
}

var bufferPool = sync.Pool{
	New: func() any {
		return &Buffer{B: make([]byte, 0, DefaultBufferSize)}
	},
}

// Get returns a zero-length Buffer from the pool.
func Get() *Buffer {
	buf, _ := bufferPool.Get().(*Buffer)
	buf.B = buf.B[:0]

	return buf
}

// Put returns a Buffer to the pool for reuse.
func Put(buf *Buffer) {
	if buf == nil {
		return
	}
	bufferPool.Put(buf)
}

// Bytes returns the buffer's current contents.
func (b *Buffer) Bytes() []byte {
	return b.B
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.B)
}

// Grow ensures at least n more bytes of spare capacity, reallocating if
// necessary.
func (b *Buffer) Grow(n int) {
	if cap(b.B)-len(b.B) >= n {
		return
	}

	grown := make([]byte, len(b.B), 2*cap(b.B)+n)
	copy(grown, b.B)
	b.B = grown
}

// Write appends data to the buffer, growing it if necessary.
func (b *Buffer) Write(data []byte) {
	b.Grow(len(data))
	b.B = append(b.B, data...)
}

// WriteByte appends a single byte to the buffer.
func (b *Buffer) WriteByte(c byte) {
	b.Grow(1)
	b.B = append(b.B, c)
}

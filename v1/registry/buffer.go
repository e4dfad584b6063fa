package registry

import "fmt"

// chunkSize is the growth unit for response buffers. Response size is
// unknown up front (the executor streams the body in), so capacity grows
// in whole chunks to avoid reallocating on every write.
const chunkSize = 0x2000

// buffer is an append-only byte accumulator used as the sink for streamed
// response bytes. Capacity grows in chunkSize units and never shrinks,
// and the content stays NUL-terminated after every write so it can be
// handed to C-string style consumers.
//
// A buffer is scoped to a single request and must not be shared.
type buffer struct {
	buf []byte
	off int

	// limit is the maximum logical length, 0 for unlimited. A write
	// that would exceed it fails with ErrOutOfMemory and leaves the
	// content untouched.
	limit int
}

func newBuffer() *buffer {
	return &buffer{buf: make([]byte, chunkSize)}
}

func newBufferLimit(limit int) *buffer {
	b := newBuffer()
	b.limit = limit
	return b
}

// Write implements io.Writer. The append is all-or-nothing: on failure
// the prior content is intact and nothing from p was retained.
func (b *buffer) Write(p []byte) (int, error) {
	if b.limit > 0 && b.off+len(p) > b.limit {
		return 0, fmt.Errorf("buffer limit %d exceeded: %w", b.limit, ErrOutOfMemory)
	}
	// +1 keeps room for the NUL terminator.
	need := b.off + len(p) + 1
	if need > len(b.buf) {
		grown := make([]byte, roundUpChunk(need))
		copy(grown, b.buf[:b.off])
		b.buf = grown
	}
	copy(b.buf[b.off:], p)
	b.off += len(p)
	b.buf[b.off] = 0
	return len(p), nil
}

// Bytes returns the accumulated content without the NUL terminator. The
// slice aliases the buffer's backing store.
func (b *buffer) Bytes() []byte {
	return b.buf[:b.off]
}

// Len returns the logical content length.
func (b *buffer) Len() int {
	return b.off
}

func (b *buffer) String() string {
	return string(b.buf[:b.off])
}

func roundUpChunk(n int) int {
	return (n + chunkSize - 1) &^ (chunkSize - 1)
}

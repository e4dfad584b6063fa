package registry

import (
	"bytes"
	"errors"
	"testing"
)

func fillPattern(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte('a' + i%26)
	}
	return p
}

func checkContent(t *testing.T, b *buffer, want []byte) {
	t.Helper()
	if b.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", b.Len(), len(want))
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatal("content mismatch")
	}
	// The byte after the logical end must be the NUL terminator.
	if b.buf[b.off] != 0 {
		t.Fatal("buffer not NUL-terminated")
	}
}

func TestBufferGrowth(t *testing.T) {
	cases := []struct {
		name   string
		chunks []int
	}{
		{"single small write", []int{10}},
		{"one byte past a chunk", []int{chunkSize + 1}},
		{"exactly one extra chunk", []int{chunkSize, chunkSize}},
		{"many chunks", []int{chunkSize, chunkSize / 2, 3 * chunkSize, 1, chunkSize - 1}},
		{"terminator forces growth", []int{chunkSize}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBuffer()
			var want []byte
			for _, n := range tc.chunks {
				p := fillPattern(n)
				wrote, err := b.Write(p)
				if err != nil {
					t.Fatalf("Write(%d bytes): %v", n, err)
				}
				if wrote != n {
					t.Fatalf("Write returned %d, want %d", wrote, n)
				}
				want = append(want, p...)
			}
			checkContent(t, b, want)
		})
	}
}

func TestBufferLimitAtomic(t *testing.T) {
	b := newBufferLimit(16)
	if _, err := b.Write(fillPattern(12)); err != nil {
		t.Fatalf("first write: %v", err)
	}
	before := append([]byte(nil), b.Bytes()...)

	_, err := b.Write(fillPattern(8))
	if !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}

	// The failed append must not have changed anything.
	checkContent(t, b, before)

	// A write that still fits must succeed afterwards.
	if _, err := b.Write(fillPattern(4)); err != nil {
		t.Fatalf("write within limit after failure: %v", err)
	}
	checkContent(t, b, append(before, fillPattern(4)...))
}

func TestBufferString(t *testing.T) {
	b := newBuffer()
	b.Write([]byte("hello "))
	b.Write([]byte("world"))
	if b.String() != "hello world" {
		t.Fatalf("String() = %q", b.String())
	}
}

package encoding

import "io"

// Stream is a sequential view over a wire buffer.
type Stream interface {
	Offset() uint64
	Skip(int) error
	Read([]byte) (int, error)
	Write([]byte) (int, error)
}

// Buffer is a Stream over a byte slice. Writes past the end grow it, reads
// and skips past the end fail.
type Buffer struct {
	buf []byte
	off int
}

func NewBuffer(b []byte) *Buffer {
	return &Buffer{buf: b}
}

func (b *Buffer) Bytes() []byte {
	return b.buf
}

func (b *Buffer) Len() int {
	return len(b.buf) - b.off
}

func (b *Buffer) Offset() uint64 {
	return uint64(b.off)
}

func (b *Buffer) Skip(n int) error {
	if n < 0 {
		return ErrOffsetInvalid
	} else if b.Len() < n {
		return io.ErrUnexpectedEOF
	}
	b.off += n
	return nil
}

func (b *Buffer) Read(p []byte) (int, error) {
	if b.Len() < len(p) {
		return 0, io.ErrUnexpectedEOF
	}
	n := copy(p, b.buf[b.off:])
	b.off += n
	return n, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	if end := b.off + len(p); end > len(b.buf) {
		b.buf = append(b.buf[:b.off], p...)
	} else {
		copy(b.buf[b.off:], p)
	}
	b.off += len(p)
	return len(p), nil
}

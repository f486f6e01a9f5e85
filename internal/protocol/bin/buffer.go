package bin

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// Buffer is the append-only output side of the codec. The zero value is
// ready to use.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a Buffer with size bytes preallocated.
func NewBuffer(size int) *Buffer {
	return &Buffer{buf: make([]byte, 0, size)}
}

// Bytes returns the bytes written so far. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte { return b.buf }

// Copy returns a copy of the bytes written so far.
func (b *Buffer) Copy() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

func (b *Buffer) Len() int { return len(b.buf) }

// Reset empties the buffer and keeps its capacity.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

// Put appends raw bytes with no framing.
func (b *Buffer) Put(raw []byte) { b.buf = append(b.buf, raw...) }

func (b *Buffer) PutTag(tag uint32) { b.PutUint32(tag) }

func (b *Buffer) PutUint32(v uint32) { b.buf = binary.LittleEndian.AppendUint32(b.buf, v) }

func (b *Buffer) PutInt32(v int32) { b.PutUint32(uint32(v)) }

func (b *Buffer) PutUint64(v uint64) { b.buf = binary.LittleEndian.AppendUint64(b.buf, v) }

func (b *Buffer) PutInt64(v int64) { b.PutUint64(uint64(v)) }

func (b *Buffer) PutDouble(v float64) { b.PutUint64(math.Float64bits(v)) }

func (b *Buffer) PutInt128(v Int128) { b.buf = append(b.buf, v[:]...) }

func (b *Buffer) PutInt256(v Int256) { b.buf = append(b.buf, v[:]...) }

// PutBool writes one of the two Bool constructor tags.
func (b *Buffer) PutBool(v bool) {
	if v {
		b.PutTag(TagBoolTrue)
		return
	}
	b.PutTag(TagBoolFalse)
}

// PutBytes writes a length-prefixed blob padded to a multiple of 4 bytes.
func (b *Buffer) PutBytes(v []byte) error {
	if len(v) > MaxBlobLen {
		return &EncodeError{Op: "bytes", Err: fmt.Errorf("%w: %d bytes", ErrBlobTooLarge, len(v))}
	}
	putBlob(b, v)
	return nil
}

// PutString writes s with the blob layout. s must be valid UTF-8.
func (b *Buffer) PutString(s string) error {
	if !utf8.ValidString(s) {
		return &EncodeError{Op: "string", Err: ErrEncoding}
	}
	if len(s) > MaxBlobLen {
		return &EncodeError{Op: "string", Err: fmt.Errorf("%w: %d bytes", ErrBlobTooLarge, len(s))}
	}
	putBlob(b, s)
	return nil
}

// putBlob appends the prefix, payload and zero padding. Callers check the
// length against MaxBlobLen.
func putBlob[T []byte | string](b *Buffer, v T) {
	n := len(v)
	prefix := 1
	if n <= shortPrefixMax {
		b.buf = append(b.buf, byte(n))
	} else {
		b.buf = append(b.buf, longPrefixMark, byte(n), byte(n>>8), byte(n>>16))
		prefix = 4
	}
	b.buf = append(b.buf, v...)
	for i := 0; i < padding(prefix+n); i++ {
		b.buf = append(b.buf, 0)
	}
}

// BlobSize returns the encoded size of an n byte blob, padding included.
func BlobSize(n int) int {
	prefix := 1
	if n > shortPrefixMax {
		prefix = 4
	}
	return prefix + n + padding(prefix+n)
}

func padding(n int) int {
	return (4 - n%4) % 4
}

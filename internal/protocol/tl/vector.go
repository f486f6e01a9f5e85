package tl

import (
	"fmt"

	"github.com/danmuck/tlwire/internal/protocol/bin"
)

// minElemSize is the smallest encoding of any TL value: a tag, an int, or an
// empty padded blob.
const minElemSize = 4

// EncodeVector writes the vector tag, the element count, then each element
// in order using enc.
func EncodeVector[T any](b *bin.Buffer, items []T, enc func(*bin.Buffer, T) error) error {
	b.PutTag(bin.TagVector)
	b.PutUint32(uint32(len(items)))
	for _, item := range items {
		if err := enc(b, item); err != nil {
			return err
		}
	}
	return nil
}

// DecodeVector reads a vector whose elements are decoded by dec. The first
// element failure fails the whole vector.
func DecodeVector[T any](c *bin.Cursor, dec func(*bin.Cursor) (T, error)) ([]T, error) {
	n, err := VectorHeader(c)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := dec(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// VectorHeader verifies the vector tag and returns the element count. The
// count is checked against the cursor limits and the bytes left, so a bogus
// count fails before anything is allocated.
func VectorHeader(c *bin.Cursor) (int, error) {
	start := c.Offset()
	tag, err := c.Tag()
	if err != nil {
		return 0, err
	}
	if tag != bin.TagVector {
		return 0, bin.MalformedVector(start, tag)
	}
	count, err := c.Uint32()
	if err != nil {
		return 0, err
	}
	n := int(count)
	if limit := c.Limits().MaxVectorLen; limit > 0 && n > limit {
		return 0, &bin.DecodeError{
			Op:     "vector",
			Offset: start,
			Err:    fmt.Errorf("%w: %d elements > %d", bin.ErrLimitExceeded, n, limit),
		}
	}
	if n > c.Remaining()/minElemSize {
		return 0, bin.Truncated("vector", c.Offset(), n*minElemSize, c.Remaining())
	}
	return n, nil
}

// Element writers for EncodeVector.

func PutInt(b *bin.Buffer, v int32) error {
	b.PutInt32(v)
	return nil
}

func PutLong(b *bin.Buffer, v int64) error {
	b.PutInt64(v)
	return nil
}

func PutDouble(b *bin.Buffer, v float64) error {
	b.PutDouble(v)
	return nil
}

func PutBool(b *bin.Buffer, v bool) error {
	b.PutBool(v)
	return nil
}

func PutInt128(b *bin.Buffer, v bin.Int128) error {
	b.PutInt128(v)
	return nil
}

func PutInt256(b *bin.Buffer, v bin.Int256) error {
	b.PutInt256(v)
	return nil
}

func PutString(b *bin.Buffer, v string) error { return b.PutString(v) }

func PutBytes(b *bin.Buffer, v []byte) error { return b.PutBytes(v) }

// PutObject writes a boxed object, tag included.
func PutObject[T Object](b *bin.Buffer, v T) error {
	if any(v) == nil {
		return &bin.EncodeError{Op: "object", Err: ErrNilObject}
	}
	return v.Encode(b)
}

// PutBare writes a bare constructor value, tag omitted.
func PutBare[T any, P interface {
	*T
	Object
}](b *bin.Buffer, v T) error {
	return P(&v).EncodeBare(b)
}

// Element readers for DecodeVector. Primitive readers are the bin.Cursor
// method expressions, e.g. (*bin.Cursor).Int32.

// ReaderOf returns an element reader for boxed objects of base type T.
func ReaderOf[T any](r *Registry, base string) func(*bin.Cursor) (T, error) {
	return func(c *bin.Cursor) (T, error) {
		return DecodeAs[T](r, c, base)
	}
}

// ReadBare decodes a bare constructor value of type T.
func ReadBare[T any, P interface {
	*T
	Object
}](c *bin.Cursor) (T, error) {
	var v T
	if err := P(&v).DecodeBare(c); err != nil {
		return v, err
	}
	return v, nil
}

package bin

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// Cursor reads primitives forward from a caller-owned byte slice. It never
// seeks backward and never reads past the end of the slice.
type Cursor struct {
	buf    []byte
	off    int
	limits Limits
	scope  any
}

// NewCursor returns a Cursor over b with DefaultLimits.
func NewCursor(b []byte) *Cursor {
	return &Cursor{buf: b, limits: DefaultLimits()}
}

// NewCursorWithLimits returns a Cursor over b bounded by limits.
func NewCursorWithLimits(b []byte, limits Limits) *Cursor {
	return &Cursor{buf: b, limits: limits}
}

func (c *Cursor) Limits() Limits { return c.limits }

// Scope is an opaque value the object layer carries across nested decodes.
func (c *Cursor) Scope() any { return c.scope }

// SetScope replaces the value returned by Scope.
func (c *Cursor) SetScope(v any) { c.scope = v }

// Offset is the number of bytes consumed so far.
func (c *Cursor) Offset() int { return c.off }

// Remaining is the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

// Rest returns the unread bytes without consuming them.
func (c *Cursor) Rest() []byte { return c.buf[c.off:] }

func (c *Cursor) next(op string, n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, Truncated(op, c.off, n, c.Remaining())
	}
	out := c.buf[c.off : c.off+n]
	c.off += n
	return out, nil
}

// Skip consumes n bytes.
func (c *Cursor) Skip(n int) error {
	_, err := c.next("skip", n)
	return err
}

// PeekTag returns the next tag without consuming it.
func (c *Cursor) PeekTag() (uint32, error) {
	if c.Remaining() < TagSize {
		return 0, Truncated("tag", c.off, TagSize, c.Remaining())
	}
	return binary.LittleEndian.Uint32(c.buf[c.off:]), nil
}

func (c *Cursor) Tag() (uint32, error) {
	b, err := c.next("tag", TagSize)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ConsumeTag reads a tag and fails unless it equals want. name labels the
// constructor expected at this position.
func (c *Cursor) ConsumeTag(want uint32, name string) error {
	off := c.off
	got, err := c.Tag()
	if err != nil {
		return err
	}
	if got != want {
		return UnknownConstructor("decode "+name, off, got, name)
	}
	return nil
}

func (c *Cursor) Uint32() (uint32, error) {
	b, err := c.next("int", 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) Int32() (int32, error) {
	v, err := c.Uint32()
	return int32(v), err
}

func (c *Cursor) Uint64() (uint64, error) {
	b, err := c.next("long", 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (c *Cursor) Int64() (int64, error) {
	v, err := c.Uint64()
	return int64(v), err
}

func (c *Cursor) Double() (float64, error) {
	b, err := c.next("double", 8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

func (c *Cursor) Int128() (Int128, error) {
	var v Int128
	b, err := c.next("int128", len(v))
	if err != nil {
		return v, err
	}
	copy(v[:], b)
	return v, nil
}

func (c *Cursor) Int256() (Int256, error) {
	var v Int256
	b, err := c.next("int256", len(v))
	if err != nil {
		return v, err
	}
	copy(v[:], b)
	return v, nil
}

// Bool decodes a Bool as a two-constructor base type.
func (c *Cursor) Bool() (bool, error) {
	off := c.off
	tag, err := c.Tag()
	if err != nil {
		return false, err
	}
	switch tag {
	case TagBoolTrue:
		return true, nil
	case TagBoolFalse:
		return false, nil
	default:
		return false, UnknownConstructor("decode Bool", off, tag, "Bool")
	}
}

// Bytes decodes a padded blob and returns a copy of its payload.
func (c *Cursor) Bytes() ([]byte, error) {
	payload, err := c.blob("bytes")
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

// String decodes a padded blob that must hold valid UTF-8.
func (c *Cursor) String() (string, error) {
	off := c.off
	payload, err := c.blob("string")
	if err != nil {
		return "", err
	}
	if !utf8.Valid(payload) {
		return "", &DecodeError{Op: "string", Offset: off, Err: ErrEncoding}
	}
	return string(payload), nil
}

func (c *Cursor) blob(op string) ([]byte, error) {
	start := c.off
	head, err := c.next(op, 1)
	if err != nil {
		return nil, err
	}
	n := int(head[0])
	prefix := 1
	switch {
	case n <= shortPrefixMax:
	case n == longPrefixMark:
		ext, err := c.next(op, 3)
		if err != nil {
			return nil, err
		}
		n = int(ext[0]) | int(ext[1])<<8 | int(ext[2])<<16
		prefix = 4
	default:
		return nil, &DecodeError{Op: op, Offset: start, Err: fmt.Errorf("%w: prefix byte %d", ErrInvalidLength, n)}
	}
	if limit := c.limits.MaxBlobBytes; limit > 0 && n > limit {
		return nil, &DecodeError{Op: op, Offset: start, Err: fmt.Errorf("%w: %d bytes > %d", ErrLimitExceeded, n, limit)}
	}
	payload, err := c.next(op, n)
	if err != nil {
		return nil, err
	}
	if _, err := c.next(op, padding(prefix+n)); err != nil {
		return nil, err
	}
	return payload, nil
}

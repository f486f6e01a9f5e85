package tl

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/danmuck/tlwire/internal/protocol/bin"
	"github.com/rs/zerolog/log"
)

// DecodeAny reads one tag, resolves it and decodes the matching constructor
// from the rest of the cursor. An unresolved tag fails with
// bin.ErrUnknownConstructor carrying the tag and the offset it was read at.
// gzip_packed is unwrapped and the inner object returned.
//
// r becomes the cursor scope for the duration of the call, so fields nested
// inside the object resolve against r and report to its observer.
func (r *Registry) DecodeAny(c *bin.Cursor) (Object, error) {
	prev := c.Scope()
	c.SetScope(r)
	defer c.SetScope(prev)

	start := c.Offset()
	obj, name, err := r.decodeAny(c, start)
	if r.observer != nil {
		r.observer.ObserveDecode(name, c.Offset()-start, err)
	}
	return obj, err
}

func (r *Registry) decodeAny(c *bin.Cursor, start int) (Object, string, error) {
	tag, err := c.Tag()
	if err != nil {
		return nil, "", err
	}
	ctor, ok := r.byTag[tag]
	if !ok {
		log.Debug().Int("layer", r.layer).Int("offset", start).Msgf("tl unknown constructor 0x%08x", tag)
		return nil, "", bin.UnknownConstructor("decode_any", start, tag, "")
	}
	obj, err := ctor.Decode(c)
	if err != nil {
		return nil, ctor.Name, err
	}
	if packed, ok := obj.(*GzipPacked); ok {
		inner, err := r.unpack(packed, start, c.Limits())
		if err != nil {
			return nil, ctor.Name, err
		}
		return inner, inner.TLName(), nil
	}
	return obj, ctor.Name, nil
}

// unpack inflates a gzip_packed body and decodes the single object inside.
// Offsets in errors from the inner decode are relative to the inflated bytes.
func (r *Registry) unpack(p *GzipPacked, start int, limits bin.Limits) (Object, error) {
	zr, err := gzip.NewReader(bytes.NewReader(p.PackedData))
	if err != nil {
		return nil, &bin.DecodeError{Op: "gzip_packed", Offset: start, Err: fmt.Errorf("%w: %v", ErrCorruptPacked, err)}
	}
	defer zr.Close()

	var src io.Reader = zr
	if limits.MaxUnpackedBytes > 0 {
		src = io.LimitReader(zr, int64(limits.MaxUnpackedBytes)+1)
	}
	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, &bin.DecodeError{Op: "gzip_packed", Offset: start, Err: fmt.Errorf("%w: %v", ErrCorruptPacked, err)}
	}
	if limits.MaxUnpackedBytes > 0 && len(raw) > limits.MaxUnpackedBytes {
		return nil, &bin.DecodeError{
			Op:     "gzip_packed",
			Offset: start,
			Err:    fmt.Errorf("%w: inflated payload over %d bytes", bin.ErrLimitExceeded, limits.MaxUnpackedBytes),
		}
	}

	inner := bin.NewCursorWithLimits(raw, limits)
	obj, err := r.DecodeAny(inner)
	if err != nil {
		return nil, err
	}
	if inner.Remaining() != 0 {
		return nil, &bin.DecodeError{Op: "gzip_packed", Offset: inner.Offset(), Err: ErrTrailingData}
	}
	return obj, nil
}

// DecodeAs decodes a field declared with an abstract base type. The decoded
// constructor must satisfy T; otherwise the error names base as expected.
// A registry set as the cursor scope by an enclosing DecodeAny takes
// precedence over r.
func DecodeAs[T any](r *Registry, c *bin.Cursor, base string) (T, error) {
	var zero T
	if scoped, ok := c.Scope().(*Registry); ok && scoped != nil {
		r = scoped
	}
	start := c.Offset()
	obj, err := r.DecodeAny(c)
	if err != nil {
		return zero, err
	}
	v, ok := obj.(T)
	if !ok {
		return zero, bin.UnknownConstructor("decode "+base, start, obj.TLTag(), base)
	}
	return v, nil
}

// Decode decodes exactly one object from data. Bytes left after the object
// fail with ErrTrailingData.
func (r *Registry) Decode(data []byte) (Object, error) {
	return r.DecodeWithLimits(data, bin.DefaultLimits())
}

func (r *Registry) DecodeWithLimits(data []byte, limits bin.Limits) (Object, error) {
	c := bin.NewCursorWithLimits(data, limits)
	obj, err := r.DecodeAny(c)
	if err != nil {
		return nil, err
	}
	if c.Remaining() != 0 {
		return nil, &bin.DecodeError{Op: "decode", Offset: c.Offset(), Err: ErrTrailingData}
	}
	return obj, nil
}

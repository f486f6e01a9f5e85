package tl

import (
	"bytes"
	"compress/gzip"

	"github.com/danmuck/tlwire/internal/protocol/bin"
)

// BoolTrue and BoolFalse are the Bool constructors as standalone objects.
// Fields typed Bool use bin.Cursor.Bool directly; these exist so a bare Bool
// can pass through DecodeAny.
type BoolTrue struct{}

func (*BoolTrue) TLTag() uint32                { return bin.TagBoolTrue }
func (*BoolTrue) TLName() string               { return "boolTrue" }
func (*BoolTrue) EncodeBare(*bin.Buffer) error { return nil }
func (*BoolTrue) DecodeBare(*bin.Cursor) error { return nil }
func (v *BoolTrue) Encode(b *bin.Buffer) error {
	b.PutTag(v.TLTag())
	return nil
}

type BoolFalse struct{}

func (*BoolFalse) TLTag() uint32                { return bin.TagBoolFalse }
func (*BoolFalse) TLName() string               { return "boolFalse" }
func (*BoolFalse) EncodeBare(*bin.Buffer) error { return nil }
func (*BoolFalse) DecodeBare(*bin.Cursor) error { return nil }
func (v *BoolFalse) Encode(b *bin.Buffer) error {
	b.PutTag(v.TLTag())
	return nil
}

// GzipPacked wraps the gzip-compressed encoding of exactly one object.
// DecodeAny unwraps it transparently.
type GzipPacked struct {
	PackedData []byte
}

func (*GzipPacked) TLTag() uint32  { return bin.TagGzipPacked }
func (*GzipPacked) TLName() string { return "gzip_packed" }

func (v *GzipPacked) Encode(b *bin.Buffer) error {
	b.PutTag(v.TLTag())
	return v.EncodeBare(b)
}

func (v *GzipPacked) EncodeBare(b *bin.Buffer) error {
	return b.PutBytes(v.PackedData)
}

func (v *GzipPacked) DecodeBare(c *bin.Cursor) error {
	data, err := c.Bytes()
	if err != nil {
		return err
	}
	v.PackedData = data
	return nil
}

// Pack encodes obj and wraps the result in gzip_packed.
func Pack(obj Object) (*GzipPacked, error) {
	raw, err := Encode(obj)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return &GzipPacked{PackedData: buf.Bytes()}, nil
}

func builtins() []Constructor {
	return []Constructor{
		{Tag: bin.TagBoolTrue, Name: "boolTrue", Base: "Bool", Decode: Bare[BoolTrue]()},
		{Tag: bin.TagBoolFalse, Name: "boolFalse", Base: "Bool", Decode: Bare[BoolFalse]()},
		{Tag: bin.TagGzipPacked, Name: "gzip_packed", Base: "Object", Decode: Bare[GzipPacked]()},
	}
}

package bin

import (
	"bytes"
	"errors"
	"testing"
)

func TestPutStringShortIsPadded(t *testing.T) {
	var b Buffer
	if err := b.PutString("hi"); err != nil {
		t.Fatalf("put string: %v", err)
	}
	want := []byte{0x02, 0x68, 0x69, 0x00}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("encoding mismatch: got=% x want=% x", b.Bytes(), want)
	}
}

func TestPutBytesPaddingInvariant(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 253, 254, 255, 1000} {
		var b Buffer
		if err := b.PutBytes(bytes.Repeat([]byte{0xAB}, n)); err != nil {
			t.Fatalf("put bytes len=%d: %v", n, err)
		}
		if b.Len()%4 != 0 {
			t.Fatalf("len=%d encoded to %d bytes, not a multiple of 4", n, b.Len())
		}
		if b.Len() != BlobSize(n) {
			t.Fatalf("len=%d encoded to %d bytes, BlobSize says %d", n, b.Len(), BlobSize(n))
		}
	}
}

func TestPutBytesPrefixWidthBoundary(t *testing.T) {
	var short Buffer
	if err := short.PutBytes(make([]byte, 253)); err != nil {
		t.Fatalf("put 253: %v", err)
	}
	if short.Bytes()[0] != 253 {
		t.Fatalf("expected 1-byte prefix 253, got %d", short.Bytes()[0])
	}
	if short.Len() != 256 {
		t.Fatalf("expected 256 bytes, got %d", short.Len())
	}

	var long Buffer
	if err := long.PutBytes(make([]byte, 254)); err != nil {
		t.Fatalf("put 254: %v", err)
	}
	if got := long.Bytes()[:4]; !bytes.Equal(got, []byte{254, 254, 0, 0}) {
		t.Fatalf("expected sentinel + 3-byte length, got % x", got)
	}
	if long.Len() != 260 {
		t.Fatalf("expected 260 bytes, got %d", long.Len())
	}
}

func TestPutStringAndPutBytesShareLayout(t *testing.T) {
	for _, n := range []int{0, 2, 253, 254, 1000} {
		text := string(bytes.Repeat([]byte{'x'}, n))
		var fromString, fromBytes Buffer
		if err := fromString.PutString(text); err != nil {
			t.Fatalf("put string len=%d: %v", n, err)
		}
		if err := fromBytes.PutBytes([]byte(text)); err != nil {
			t.Fatalf("put bytes len=%d: %v", n, err)
		}
		if !bytes.Equal(fromString.Bytes(), fromBytes.Bytes()) {
			t.Fatalf("len=%d: string and bytes encodings differ", n)
		}
	}
}

func TestPutIntegersLittleEndian(t *testing.T) {
	var b Buffer
	b.PutTag(0x7b8e7de6)
	b.PutInt32(12345)
	b.PutInt64(9876543210)
	want := []byte{
		0xE6, 0x7D, 0x8E, 0x7B,
		0x39, 0x30, 0x00, 0x00,
		0xEA, 0x16, 0xB0, 0x4C, 0x02, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("encoding mismatch: got=% x want=% x", b.Bytes(), want)
	}
}

func TestPutBoolWritesConstructorTags(t *testing.T) {
	var b Buffer
	b.PutBool(true)
	b.PutBool(false)
	want := []byte{0xb5, 0x75, 0x72, 0x99, 0x37, 0x97, 0x79, 0xbc}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("bool encoding mismatch: got=% x want=% x", b.Bytes(), want)
	}
}

func TestPutStringRejectsInvalidUTF8(t *testing.T) {
	var b Buffer
	err := b.PutString(string([]byte{0xff, 0xfe}))
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected ErrEncoding, got %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("failed encode must not write, wrote %d bytes", b.Len())
	}
}

func TestResetKeepsBufferUsable(t *testing.T) {
	b := NewBuffer(16)
	b.PutInt32(1)
	b.Reset()
	b.PutInt32(2)
	if !bytes.Equal(b.Copy(), []byte{2, 0, 0, 0}) {
		t.Fatalf("unexpected bytes after reset: % x", b.Bytes())
	}
}

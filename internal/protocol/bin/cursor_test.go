package bin

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestCursorReadsConcreteScenario(t *testing.T) {
	buf := []byte{
		0xE6, 0x7D, 0x8E, 0x7B,
		0x39, 0x30, 0x00, 0x00,
		0xEA, 0x16, 0xB0, 0x4C, 0x02, 0x00, 0x00, 0x00,
	}
	c := NewCursor(buf)
	if err := c.ConsumeTag(0x7b8e7de6, "inputPeerUser"); err != nil {
		t.Fatalf("consume tag: %v", err)
	}
	id, err := c.Int32()
	if err != nil || id != 12345 {
		t.Fatalf("user_id: got=%d err=%v", id, err)
	}
	hash, err := c.Int64()
	if err != nil || hash != 9876543210 {
		t.Fatalf("access_hash: got=%d err=%v", hash, err)
	}
	if c.Remaining() != 0 {
		t.Fatalf("expected buffer fully consumed, %d left", c.Remaining())
	}
}

func TestCursorBlobRoundTripAllWidths(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 253, 254, 255, 1000} {
		payload := bytes.Repeat([]byte{byte(n)}, n)
		var b Buffer
		if err := b.PutBytes(payload); err != nil {
			t.Fatalf("put len=%d: %v", n, err)
		}
		b.PutInt32(-1) // sentinel after the field proves padding was skipped
		c := NewCursor(b.Bytes())
		got, err := c.Bytes()
		if err != nil {
			t.Fatalf("read len=%d: %v", n, err)
		}
		if !bytes.Equal(got, payload) {
			t.Fatalf("payload mismatch len=%d", n)
		}
		next, err := c.Int32()
		if err != nil || next != -1 {
			t.Fatalf("len=%d: trailing sentinel got=%d err=%v", n, next, err)
		}
	}
}

func TestCursorStringRejectsInvalidUTF8(t *testing.T) {
	c := NewCursor([]byte{0x02, 0xff, 0xfe, 0x00})
	_, err := c.String()
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected ErrEncoding, got %v", err)
	}
}

func TestCursorTruncatedReportsOffset(t *testing.T) {
	c := NewCursor([]byte{1, 0, 0, 0, 2, 0})
	if _, err := c.Int32(); err != nil {
		t.Fatalf("first int: %v", err)
	}
	_, err := c.Int64()
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
	if de.Offset != 4 {
		t.Fatalf("expected offset 4, got %d", de.Offset)
	}
	if c.Offset() != 4 {
		t.Fatalf("failed read must not advance, offset=%d", c.Offset())
	}
}

func TestCursorTruncatedBlobPayload(t *testing.T) {
	// prefix says 10 bytes, only 3 follow
	c := NewCursor([]byte{10, 'a', 'b', 'c'})
	_, err := c.Bytes()
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestCursorTruncatedBlobPadding(t *testing.T) {
	c := NewCursor([]byte{2, 'h', 'i'})
	_, err := c.String()
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated for missing padding, got %v", err)
	}
}

func TestCursorRejectsReservedPrefix(t *testing.T) {
	c := NewCursor([]byte{255, 0, 0, 0})
	_, err := c.Bytes()
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestCursorBlobLimit(t *testing.T) {
	var b Buffer
	if err := b.PutBytes(make([]byte, 300)); err != nil {
		t.Fatalf("put: %v", err)
	}
	limits := DefaultLimits()
	limits.MaxBlobBytes = 256
	_, err := NewCursorWithLimits(b.Bytes(), limits).Bytes()
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestCursorBoolUnknownTag(t *testing.T) {
	c := NewCursor([]byte{0xef, 0xbe, 0xad, 0xde})
	_, err := c.Bool()
	if !errors.Is(err, ErrUnknownConstructor) {
		t.Fatalf("expected ErrUnknownConstructor, got %v", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Tag != 0xdeadbeef || !de.HasTag || de.Expected != "Bool" {
		t.Fatalf("unexpected decode error: %+v", de)
	}
}

func TestCursorBoolRoundTrip(t *testing.T) {
	var b Buffer
	b.PutBool(true)
	b.PutBool(false)
	c := NewCursor(b.Bytes())
	v1, err := c.Bool()
	if err != nil || !v1 {
		t.Fatalf("first bool: got=%v err=%v", v1, err)
	}
	v2, err := c.Bool()
	if err != nil || v2 {
		t.Fatalf("second bool: got=%v err=%v", v2, err)
	}
}

func TestCursorDoubleRoundTrip(t *testing.T) {
	var b Buffer
	for _, v := range []float64{0, -1.5, math.Pi, math.Inf(-1)} {
		b.PutDouble(v)
	}
	c := NewCursor(b.Bytes())
	for _, want := range []float64{0, -1.5, math.Pi, math.Inf(-1)} {
		got, err := c.Double()
		if err != nil || got != want {
			t.Fatalf("double: got=%v want=%v err=%v", got, want, err)
		}
	}
}

func TestConsumeTagMismatch(t *testing.T) {
	var b Buffer
	b.PutTag(0x11111111)
	err := NewCursor(b.Bytes()).ConsumeTag(0x22222222, "geoPoint")
	if !errors.Is(err, ErrUnknownConstructor) {
		t.Fatalf("expected ErrUnknownConstructor, got %v", err)
	}
}

package bin

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated          = errors.New("bin: truncated input")
	ErrUnknownConstructor = errors.New("bin: unknown constructor")
	ErrMalformedVector    = errors.New("bin: malformed vector")
	ErrEncoding           = errors.New("bin: invalid utf-8")
	ErrLimitExceeded      = errors.New("bin: limit exceeded")
	ErrBlobTooLarge       = errors.New("bin: blob too large")
	ErrInvalidLength      = errors.New("bin: invalid length prefix")
)

// DecodeError reports where a decode failed. It is created once at the point
// of detection and returned unchanged by every caller above it.
type DecodeError struct {
	Op       string
	Offset   int
	Tag      uint32
	HasTag   bool
	Expected string
	Err      error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%s at offset %d", e.Op, e.Offset)
	if e.HasTag {
		msg += fmt.Sprintf(" tag=0x%08x", e.Tag)
	}
	if e.Expected != "" {
		msg += " expected=" + e.Expected
	}
	return msg + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Truncated builds the error for a read of n bytes that ran past the input.
func Truncated(op string, offset, n, remaining int) error {
	return &DecodeError{
		Op:     op,
		Offset: offset,
		Err:    fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, n, remaining),
	}
}

// UnknownConstructor builds the error for a tag that cannot be resolved.
// expected names the base type the caller was decoding, if any.
func UnknownConstructor(op string, offset int, tag uint32, expected string) error {
	return &DecodeError{
		Op:       op,
		Offset:   offset,
		Tag:      tag,
		HasTag:   true,
		Expected: expected,
		Err:      ErrUnknownConstructor,
	}
}

// MalformedVector builds the error for a vector whose leading tag is wrong.
func MalformedVector(offset int, tag uint32) error {
	return &DecodeError{
		Op:       "vector",
		Offset:   offset,
		Tag:      tag,
		HasTag:   true,
		Expected: "vector",
		Err:      ErrMalformedVector,
	}
}

// EncodeError reports a value that cannot be written to the wire.
type EncodeError struct {
	Op  string
	Err error
}

func (e *EncodeError) Error() string { return "encode " + e.Op + ": " + e.Err.Error() }

func (e *EncodeError) Unwrap() error { return e.Err }

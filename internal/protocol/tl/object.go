package tl

import "github.com/danmuck/tlwire/internal/protocol/bin"

// Object is a tagged TL constructor value.
//
// Encode writes the tag followed by the body. EncodeBare and DecodeBare
// handle the body only; the tag is owned by whichever caller knew to expect
// it (usually the envelope).
type Object interface {
	TLTag() uint32
	TLName() string
	Encode(b *bin.Buffer) error
	EncodeBare(b *bin.Buffer) error
	DecodeBare(c *bin.Cursor) error
}

// Encode returns the wire form of obj.
func Encode(obj Object) ([]byte, error) {
	b := bin.NewBuffer(64)
	if err := obj.Encode(b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Opt is an optional field gated by a flags bit. The zero value is absent.
type Opt[T any] struct {
	Value T
	Set   bool
}

// Some returns a present optional holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{Value: v, Set: true}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// Or returns the value if present and def otherwise.
func (o Opt[T]) Or(def T) T {
	if o.Set {
		return o.Value
	}
	return def
}

// Flag returns bit if o is present and 0 otherwise.
func (o Opt[T]) Flag(bit uint) uint32 {
	if o.Set {
		return 1 << bit
	}
	return 0
}

// FlagIf returns bit if v is true and 0 otherwise. Used for flag-only fields.
func FlagIf(v bool, bit uint) uint32 {
	if v {
		return 1 << bit
	}
	return 0
}

// Has reports whether bit is set in flags.
func Has(flags uint32, bit uint) bool {
	return flags&(1<<bit) != 0
}

// Bare adapts a constructor type into the registry's bare decoder.
func Bare[T any, P interface {
	*T
	Object
}]() DecodeFunc {
	return func(c *bin.Cursor) (Object, error) {
		v := P(new(T))
		if err := v.DecodeBare(c); err != nil {
			return nil, err
		}
		return v, nil
	}
}

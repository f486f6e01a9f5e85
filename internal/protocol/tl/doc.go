// Package tl owns the object layer of the TL codec.
//
// Ownership boundary:
// - Object contract every generated constructor satisfies
// - constructor Registry (tag -> bare decoder), immutable once built
// - polymorphic envelope (DecodeAny) and gzip_packed transparency
// - vector codec and optional-field helpers used by generated code
package tl

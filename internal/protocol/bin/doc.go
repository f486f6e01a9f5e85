// Package bin owns the TL primitive wire codec.
//
// Ownership boundary:
// - append-only output Buffer
// - forward-only input Cursor
// - fixed-width integers, doubles, Bool tags, padded bytes/strings
// - decode error taxonomy shared by every layer above
package bin

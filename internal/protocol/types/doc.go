// Package types holds the representative TL layer generated from schema.tl.
//
// Regenerate with go generate after editing the schema.
package types

//go:generate go run ../../../cmd/tlctl gen --schema schema.tl --output types_gen.go --package types

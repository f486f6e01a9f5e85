package config

import (
	"github.com/danmuck/tlwire/internal/protocol/bin"
	"github.com/danmuck/tlwire/internal/protocol/gen"
)

// Limits returns the decode limits for a cursor.
func (c CodecConfig) Limits() bin.Limits {
	return bin.Limits{
		MaxBlobBytes:     c.MaxBlobBytes,
		MaxVectorLen:     c.MaxVectorLen,
		MaxUnpackedBytes: c.MaxUnpackedBytes,
	}
}

// Options returns the generator options for this section.
func (g GenConfig) Options() gen.Options {
	return gen.Options{Package: g.Package, Layer: g.Layer}
}

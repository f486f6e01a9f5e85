// Package gen renders Go types for a parsed TL schema. Every constructor
// becomes a struct implementing tl.Object, every base type a class interface
// with a boxed decoder, and the package gets a registry built on first use.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"

	"github.com/danmuck/tlwire/internal/protocol/schema"
	"github.com/rs/zerolog/log"
)

// Options controls the generated file.
type Options struct {
	// Package is the Go package name of the output.
	Package string
	// Layer overrides the schema's layer comment when non-zero.
	Layer int
	// Source is recorded in the file header.
	Source string
}

// Generate validates s and returns the formatted Go source for its types.
// Function declarations are not rendered.
func Generate(s *schema.Schema, opts Options) ([]byte, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("gen: package name required")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if opts.Layer != 0 {
		cp := *s
		cp.Layer = opts.Layer
		s = &cp
	}

	model, err := newBuilder(s).file(opts.Package, opts.Source)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, model); err != nil {
		return nil, fmt.Errorf("gen: execute template: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format output: %w", err)
	}
	log.Debug().
		Str("package", opts.Package).
		Int("layer", s.Layer).
		Int("types", len(model.Bases)).
		Int("constructors", len(model.Ctors)).
		Msg("gen rendered schema")
	return out, nil
}

// GenerateFile parses the schema at src and writes the generated source to
// dst, creating its directory if needed.
func GenerateFile(src, dst string, opts Options) error {
	s, err := schema.ParseFile(src)
	if err != nil {
		return err
	}
	if opts.Source == "" {
		opts.Source = filepath.Base(src)
	}
	out, err := Generate(s, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("gen: create output dir: %w", err)
	}
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return fmt.Errorf("gen: write %s: %w", dst, err)
	}
	log.Info().Str("schema", src).Str("output", dst).Msg("gen wrote types")
	return nil
}

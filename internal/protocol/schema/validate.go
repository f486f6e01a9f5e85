package schema

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Validate checks that every definition can be encoded and decoded:
// tags and names are unique, conditional fields reference an earlier flags
// field with a bit in 0..31, flag-only fields are conditional, every
// referenced type is declared, and no vector holds a bare constructor that
// encodes to zero bytes.
func (s *Schema) Validate() error {
	if err := s.validate(); err != nil {
		log.Error().Err(err).Msg("schema.Validate failed")
		return err
	}
	log.Debug().Int("types", len(s.Types)).Int("functions", len(s.Functions)).Msg("schema.Validate ok")
	return nil
}

func (s *Schema) validate() error {
	tags := make(map[uint32]string)
	names := make(map[string]struct{})
	bases := make(map[string]struct{})
	for _, def := range s.Types {
		bases[def.Result] = struct{}{}
	}

	all := append(append([]Definition{}, s.Types...), s.Functions...)
	for _, def := range all {
		if prev, ok := tags[def.Tag]; ok {
			return ValidationError{Line: def.Line, Name: def.Name, Reason: fmt.Sprintf("tag 0x%08x already used by %s", def.Tag, prev)}
		}
		tags[def.Tag] = def.Name
		if def.Section == SectionTypes {
			if _, ok := names[def.Name]; ok {
				return ValidationError{Line: def.Line, Name: def.Name, Reason: "duplicate constructor name"}
			}
			names[def.Name] = struct{}{}
		}
	}

	for _, def := range all {
		if err := s.validateParams(def, bases); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) validateParams(def Definition, bases map[string]struct{}) error {
	flags := make(map[string]struct{})
	seen := make(map[string]struct{})
	for _, p := range def.Params {
		fail := func(reason string) error {
			return ValidationError{Line: def.Line, Name: def.Name, Field: p.Name, Reason: reason}
		}
		if _, dup := seen[p.Name]; dup {
			return fail("duplicate field name")
		}
		seen[p.Name] = struct{}{}

		if p.Conditional {
			if _, ok := flags[p.FlagField]; !ok {
				return fail(fmt.Sprintf("condition references %q before it is declared as a flags field", p.FlagField))
			}
			if p.FlagBit < 0 || p.FlagBit > 31 {
				return fail(fmt.Sprintf("flag bit %d outside 0..31", p.FlagBit))
			}
			if p.Type.Kind == KindFlags {
				return fail("flags field cannot be conditional")
			}
		} else if p.Type.Kind == KindTrue {
			return fail("true is only valid behind a flag condition")
		}
		if p.Type.Kind == KindFlags {
			flags[p.Name] = struct{}{}
		}
		if err := s.validateRef(p.Type, bases); err != "" {
			return fail(err)
		}
	}
	return nil
}

func (s *Schema) validateRef(t TypeRef, bases map[string]struct{}) string {
	switch t.Kind {
	case KindVector:
		if t.Elem.Kind == KindBare {
			if def, ok := s.Lookup(t.Elem.Name); ok && len(def.Params) == 0 {
				return fmt.Sprintf("vector of zero-field bare constructor %q", t.Elem.Name)
			}
		}
		return s.validateRef(*t.Elem, bases)
	case KindObject:
		if _, ok := bases[t.Name]; !ok {
			return fmt.Sprintf("unknown type %q", t.Name)
		}
	case KindBare:
		if _, ok := s.Lookup(t.Name); !ok {
			return fmt.Sprintf("unknown constructor %q", t.Name)
		}
	}
	return ""
}

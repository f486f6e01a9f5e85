package schema

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ParseFile parses the schema at path.
func ParseFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// ParseString parses schema text.
func ParseString(src string) (*Schema, error) {
	return Parse(strings.NewReader(src))
}

// Parse reads TL schema text. Declarations may span lines and end with ';'.
// A "// LAYER N" comment sets the schema layer.
func Parse(r io.Reader) (*Schema, error) {
	s := &Schema{}
	section := SectionTypes
	var (
		pending   strings.Builder
		startLine int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			if layer, ok := parseLayerComment(line[i+2:]); ok {
				s.Layer = layer
			}
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch line {
		case "---types---":
			section = SectionTypes
			continue
		case "---functions---":
			section = SectionFunctions
			continue
		}
		if pending.Len() == 0 {
			startLine = lineNo
		} else {
			pending.WriteByte(' ')
		}
		pending.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			continue
		}
		decl := pending.String()
		pending.Reset()
		def, skip, err := parseDefinition(decl, startLine, section)
		if err != nil {
			log.Error().Err(err).Int("line", startLine).Msg("schema.Parse failed")
			return nil, err
		}
		if skip {
			continue
		}
		def.Section = section
		if section == SectionFunctions {
			s.Functions = append(s.Functions, def)
		} else {
			s.Types = append(s.Types, def)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if pending.Len() != 0 {
		return nil, ValidationError{Line: startLine, Reason: "unterminated declaration"}
	}
	log.Debug().
		Int("layer", s.Layer).
		Int("types", len(s.Types)).
		Int("functions", len(s.Functions)).
		Msg("schema.Parse ok")
	return s, nil
}

func parseLayerComment(comment string) (int, bool) {
	fields := strings.Fields(comment)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "LAYER") {
		return 0, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseDefinition parses one declaration. Functions may return any type
// expression and may declare type variables ({X:Type}) used as !X; both are
// kept opaque since only types are rendered.
func parseDefinition(decl string, line int, section Section) (Definition, bool, error) {
	body := strings.TrimSpace(strings.TrimSuffix(decl, ";"))
	lhs, result, ok := strings.Cut(body, "=")
	if !ok {
		return Definition{}, false, ValidationError{Line: line, Reason: "missing '='"}
	}
	tokens := strings.Fields(lhs)
	if len(tokens) == 0 {
		return Definition{}, false, ValidationError{Line: line, Reason: "missing constructor name"}
	}

	def := Definition{Line: line, Result: strings.TrimSpace(result)}
	name, tagText, hasTag := strings.Cut(tokens[0], "#")
	def.Name = name
	if _, builtin := builtinNames[name]; builtin {
		return Definition{}, true, nil
	}
	if def.Result == "" || (section == SectionTypes && strings.ContainsAny(def.Result, " <")) {
		return Definition{}, false, ValidationError{Line: line, Name: name, Reason: "unsupported result type " + strconv.Quote(def.Result)}
	}
	if hasTag {
		tag, err := strconv.ParseUint(tagText, 16, 32)
		if err != nil {
			return Definition{}, false, ValidationError{Line: line, Name: name, Reason: "invalid tag " + strconv.Quote(tagText)}
		}
		def.Tag = uint32(tag)
		def.ExplicitTag = true
	} else {
		def.Tag = ComputeTag(decl)
	}

	var typeParams map[string]struct{}
	for _, tok := range tokens[1:] {
		if section == SectionFunctions && strings.HasPrefix(tok, "{") && strings.HasSuffix(tok, "}") {
			tname, kind, ok := strings.Cut(tok[1:len(tok)-1], ":")
			if !ok || tname == "" || kind != "Type" {
				return Definition{}, false, ValidationError{Line: line, Name: name, Field: tok, Reason: "malformed type parameter"}
			}
			if typeParams == nil {
				typeParams = make(map[string]struct{})
			}
			typeParams[tname] = struct{}{}
			continue
		}
		if strings.HasPrefix(tok, "{") || strings.HasPrefix(tok, "[") {
			return Definition{}, false, ValidationError{Line: line, Name: name, Reason: "generic parameters are not supported"}
		}
		pname, ptype, ok := strings.Cut(tok, ":")
		if !ok || pname == "" || ptype == "" {
			return Definition{}, false, ValidationError{Line: line, Name: name, Field: tok, Reason: "malformed parameter"}
		}
		p, err := parseParam(pname, ptype, typeParams)
		if err != nil {
			err.Line, err.Name = line, name
			return Definition{}, false, *err
		}
		def.Params = append(def.Params, p)
	}
	return def, false, nil
}

func parseParam(name, typ string, typeParams map[string]struct{}) (Param, *ValidationError) {
	p := Param{Name: name}
	if cond, rest, ok := strings.Cut(typ, "?"); ok {
		field, bitText, ok := strings.Cut(cond, ".")
		if !ok {
			return p, &ValidationError{Field: name, Reason: "malformed condition " + strconv.Quote(cond)}
		}
		bit, err := strconv.Atoi(bitText)
		if err != nil {
			return p, &ValidationError{Field: name, Reason: "malformed flag bit " + strconv.Quote(bitText)}
		}
		p.Conditional = true
		p.FlagField = field
		p.FlagBit = bit
		typ = rest
	}
	if tname, ok := typeParamRef(typ, typeParams); ok {
		if _, declared := typeParams[tname]; !declared {
			return p, &ValidationError{Field: name, Reason: "undeclared type parameter " + strconv.Quote(tname)}
		}
		p.Type = TypeRef{Kind: KindTypeParam, Name: tname}
		return p, nil
	}
	ref, err := parseType(typ)
	if err != nil {
		err.Field = name
		return p, err
	}
	p.Type = ref
	return p, nil
}

func parseType(typ string) (TypeRef, *ValidationError) {
	if kind, ok := primitiveKinds[typ]; ok {
		return TypeRef{Kind: kind}, nil
	}
	if strings.HasPrefix(typ, "Vector<") && strings.HasSuffix(typ, ">") {
		elem, err := parseType(typ[len("Vector<") : len(typ)-1])
		if err != nil {
			return TypeRef{}, err
		}
		if elem.Kind == KindFlags || elem.Kind == KindTrue {
			return TypeRef{}, &ValidationError{Reason: "invalid vector element " + strconv.Quote(typ)}
		}
		return TypeRef{Kind: KindVector, Elem: &elem}, nil
	}
	if strings.ContainsAny(typ, "<>%!{}") {
		return TypeRef{}, &ValidationError{Reason: "unsupported type " + strconv.Quote(typ)}
	}
	if isBaseName(typ) {
		return TypeRef{Kind: KindObject, Name: typ}, nil
	}
	return TypeRef{Kind: KindBare, Name: typ}, nil
}

// typeParamRef reports whether typ refers to a type variable, either as !X
// or by a bare name declared with {X:Type}.
func typeParamRef(typ string, typeParams map[string]struct{}) (string, bool) {
	if strings.HasPrefix(typ, "!") {
		return typ[1:], true
	}
	_, ok := typeParams[typ]
	return typ, ok
}

// isBaseName reports whether the last dotted segment starts upper-case.
func isBaseName(name string) bool {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}

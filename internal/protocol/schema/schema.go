package schema

import (
	"fmt"
	"hash/crc32"
	"strings"
)

// Kind classifies a parameter type.
type Kind int

const (
	KindFlags Kind = iota + 1
	KindInt
	KindLong
	KindDouble
	KindInt128
	KindInt256
	KindString
	KindBytes
	KindBool
	KindTrue
	KindVector
	// KindObject is a boxed reference to an abstract base type.
	KindObject
	// KindBare is a reference to one concrete constructor without its tag.
	KindBare
	// KindTypeParam is a function type variable; Name holds the variable.
	KindTypeParam
)

var primitiveKinds = map[string]Kind{
	"#":      KindFlags,
	"int":    KindInt,
	"long":   KindLong,
	"double": KindDouble,
	"int128": KindInt128,
	"int256": KindInt256,
	"string": KindString,
	"bytes":  KindBytes,
	"Bool":   KindBool,
	"true":   KindTrue,
}

var kindNames = map[Kind]string{
	KindFlags:  "#",
	KindInt:    "int",
	KindLong:   "long",
	KindDouble: "double",
	KindInt128: "int128",
	KindInt256: "int256",
	KindString: "string",
	KindBytes:  "bytes",
	KindBool:   "Bool",
	KindTrue:   "true",
}

// builtinNames are constructors the codec implements by hand; schema lines
// declaring them are skipped.
var builtinNames = map[string]struct{}{
	"boolFalse":   {},
	"boolTrue":    {},
	"true":        {},
	"vector":      {},
	"int":         {},
	"long":        {},
	"double":      {},
	"string":      {},
	"bytes":       {},
	"int128":      {},
	"int256":      {},
	"gzip_packed": {},
	"error":       {},
	"null":        {},
}

// TypeRef is a parsed parameter type.
type TypeRef struct {
	Kind Kind
	// Name is the base type (KindObject) or constructor (KindBare) name.
	Name string
	Elem *TypeRef
}

func (t TypeRef) String() string {
	switch t.Kind {
	case KindVector:
		return "Vector<" + t.Elem.String() + ">"
	case KindObject, KindBare:
		return t.Name
	case KindTypeParam:
		return "!" + t.Name
	}
	if name, ok := kindNames[t.Kind]; ok {
		return name
	}
	return "?"
}

// Param is one field of a constructor.
type Param struct {
	Name string
	Type TypeRef
	// Conditional fields are present only when FlagField has bit FlagBit set.
	Conditional bool
	FlagField   string
	FlagBit     int
}

// Section is where a definition was declared.
type Section int

const (
	SectionTypes Section = iota
	SectionFunctions
)

// Definition is one constructor (or function) line.
type Definition struct {
	Name        string
	Tag         uint32
	ExplicitTag bool
	Params      []Param
	Result      string
	Section     Section
	Line        int
}

// HasFlags reports whether any param is a flags field.
func (d Definition) HasFlags() bool {
	for _, p := range d.Params {
		if p.Type.Kind == KindFlags {
			return true
		}
	}
	return false
}

// Schema is a parsed TL schema.
type Schema struct {
	Layer     int
	Types     []Definition
	Functions []Definition
}

// BaseType groups the constructors of one abstract base type.
type BaseType struct {
	Name         string
	Constructors []Definition
}

// BaseTypes returns base types in first-declaration order.
func (s *Schema) BaseTypes() []BaseType {
	index := make(map[string]int)
	var out []BaseType
	for _, def := range s.Types {
		i, ok := index[def.Result]
		if !ok {
			i = len(out)
			index[def.Result] = i
			out = append(out, BaseType{Name: def.Result})
		}
		out[i].Constructors = append(out[i].Constructors, def)
	}
	return out
}

// Lookup returns the type constructor named name.
func (s *Schema) Lookup(name string) (Definition, bool) {
	for _, def := range s.Types {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// ComputeTag derives a constructor tag from its declaration: CRC32 (IEEE) of
// the line with the explicit tag, angle brackets and the terminator removed.
func ComputeTag(decl string) uint32 {
	return crc32.ChecksumIEEE([]byte(Normalize(decl)))
}

// Normalize returns the canonical text ComputeTag hashes.
func Normalize(decl string) string {
	decl = strings.TrimSpace(decl)
	decl = strings.TrimSuffix(decl, ";")
	fields := strings.Fields(strings.NewReplacer("<", " ", ">", " ").Replace(decl))
	if len(fields) > 0 {
		if i := strings.IndexByte(fields[0], '#'); i >= 0 {
			fields[0] = fields[0][:i]
		}
	}
	return strings.Join(fields, " ")
}

// ValidationError reports a schema line that cannot be used.
type ValidationError struct {
	Line   int
	Name   string
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	switch {
	case e.Name == "":
		return fmt.Sprintf("schema: line %d: %s", e.Line, e.Reason)
	case e.Field == "":
		return fmt.Sprintf("schema: line %d %s: %s", e.Line, e.Name, e.Reason)
	default:
		return fmt.Sprintf("schema: line %d %s.%s: %s", e.Line, e.Name, e.Field, e.Reason)
	}
}

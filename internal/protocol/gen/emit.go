package gen

import (
	"fmt"

	"github.com/danmuck/tlwire/internal/protocol/schema"
)

var primitiveGoTypes = map[schema.Kind]string{
	schema.KindInt:    "int32",
	schema.KindLong:   "int64",
	schema.KindDouble: "float64",
	schema.KindInt128: "bin.Int128",
	schema.KindInt256: "bin.Int256",
	schema.KindString: "string",
	schema.KindBytes:  "[]byte",
	schema.KindBool:   "bool",
}

var primitivePut = map[schema.Kind]string{
	schema.KindInt:    "PutInt32",
	schema.KindLong:   "PutInt64",
	schema.KindDouble: "PutDouble",
	schema.KindInt128: "PutInt128",
	schema.KindInt256: "PutInt256",
	schema.KindBool:   "PutBool",
}

var primitiveRead = map[schema.Kind]string{
	schema.KindInt:    "Int32",
	schema.KindLong:   "Int64",
	schema.KindDouble: "Double",
	schema.KindInt128: "Int128",
	schema.KindInt256: "Int256",
	schema.KindString: "String",
	schema.KindBytes:  "Bytes",
	schema.KindBool:   "Bool",
}

var elemWriters = map[schema.Kind]string{
	schema.KindInt:    "tl.PutInt",
	schema.KindLong:   "tl.PutLong",
	schema.KindDouble: "tl.PutDouble",
	schema.KindInt128: "tl.PutInt128",
	schema.KindInt256: "tl.PutInt256",
	schema.KindString: "tl.PutString",
	schema.KindBytes:  "tl.PutBytes",
	schema.KindBool:   "tl.PutBool",
}

func (b *builder) goType(t schema.TypeRef) (string, error) {
	if g, ok := primitiveGoTypes[t.Kind]; ok {
		return g, nil
	}
	switch t.Kind {
	case schema.KindVector:
		if t.Elem.Kind == schema.KindVector {
			return "", fmt.Errorf("nested vectors are not supported")
		}
		elem, err := b.goType(*t.Elem)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case schema.KindObject:
		class, ok := b.classOf[t.Name]
		if !ok {
			return "", fmt.Errorf("unknown type %q", t.Name)
		}
		return class, nil
	case schema.KindBare:
		return goName(t.Name), nil
	}
	return "", fmt.Errorf("no Go type for %s", t)
}

// encodeStmt returns the statement writing expr of type t to b.
func (b *builder) encodeStmt(t schema.TypeRef, expr, path string) (string, error) {
	if put, ok := primitivePut[t.Kind]; ok {
		return fmt.Sprintf("b.%s(%s)", put, expr), nil
	}
	switch t.Kind {
	case schema.KindString:
		return wrapErr(fmt.Sprintf("b.PutString(%s)", expr)), nil
	case schema.KindBytes:
		return wrapErr(fmt.Sprintf("b.PutBytes(%s)", expr)), nil
	case schema.KindObject:
		return wrapErr(fmt.Sprintf("tl.PutObject(b, %s)", expr)), nil
	case schema.KindBare:
		return wrapErr(fmt.Sprintf("%s.EncodeBare(b)", expr)), nil
	case schema.KindVector:
		w, err := b.elemWriter(*t.Elem)
		if err != nil {
			return "", fmt.Errorf("gen: %s: %w", path, err)
		}
		return wrapErr(fmt.Sprintf("tl.EncodeVector(b, %s, %s)", expr, w)), nil
	}
	return "", fmt.Errorf("gen: %s: cannot encode %s", path, t)
}

// decodeStmt returns the statement reading a value of type t into target.
func (b *builder) decodeStmt(t schema.TypeRef, target string) (string, error) {
	if read, ok := primitiveRead[t.Kind]; ok {
		return wrapAssign(target, fmt.Sprintf("c.%s()", read)), nil
	}
	switch t.Kind {
	case schema.KindObject:
		return wrapAssign(target, fmt.Sprintf("Decode%s(c)", goName(t.Name))), nil
	case schema.KindBare:
		return wrapErr(fmt.Sprintf("%s.DecodeBare(c)", target)), nil
	case schema.KindVector:
		r, err := b.elemReader(*t.Elem)
		if err != nil {
			return "", err
		}
		return wrapAssign(target, fmt.Sprintf("tl.DecodeVector(c, %s)", r)), nil
	}
	return "", fmt.Errorf("gen: cannot decode %s", t)
}

func (b *builder) elemWriter(t schema.TypeRef) (string, error) {
	if w, ok := elemWriters[t.Kind]; ok {
		return w, nil
	}
	switch t.Kind {
	case schema.KindObject:
		return "tl.PutObject[" + b.classOf[t.Name] + "]", nil
	case schema.KindBare:
		return "tl.PutBare[" + goName(t.Name) + "]", nil
	}
	return "", fmt.Errorf("unsupported vector element %s", t)
}

func (b *builder) elemReader(t schema.TypeRef) (string, error) {
	if read, ok := primitiveRead[t.Kind]; ok {
		return "(*bin.Cursor)." + read, nil
	}
	switch t.Kind {
	case schema.KindObject:
		return "Decode" + goName(t.Name), nil
	case schema.KindBare:
		return "tl.ReadBare[" + goName(t.Name) + "]", nil
	}
	return "", fmt.Errorf("unsupported vector element %s", t)
}

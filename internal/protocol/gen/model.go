package gen

import (
	"fmt"
	"strings"

	"github.com/danmuck/tlwire/internal/protocol/schema"
)

type fileModel struct {
	Package string
	Layer   int
	Source  string
	Bases   []baseModel
	Ctors   []ctorModel
}

type baseModel struct {
	TLName string
	Class  string
	Marker string
	Func   string
	Ctors  []string
}

type ctorModel struct {
	TLName string
	GoName string
	Tag    uint32
	Decl   string
	Base   string
	Marker string
	Fields []fieldModel
	Flags  []flagModel
	Locals []string
	Checks []string
	Encode []string
	Decode []string
}

type fieldModel struct {
	Name string
	Type string
	Doc  string
}

type flagModel struct {
	Local string
	Sets  []string
}

// builder turns schema definitions into template models.
type builder struct {
	s       *schema.Schema
	classOf map[string]string
}

func newBuilder(s *schema.Schema) *builder {
	b := &builder{s: s, classOf: make(map[string]string)}
	for _, base := range s.BaseTypes() {
		b.classOf[base.Name] = className(base.Name)
	}
	return b
}

func className(base string) string { return goName(base) + "Class" }

func markerName(base string) string { return "is" + goName(base) }

func (b *builder) file(pkg, source string) (fileModel, error) {
	m := fileModel{Package: pkg, Layer: b.s.Layer, Source: source}
	for _, base := range b.s.BaseTypes() {
		bm := baseModel{
			TLName: base.Name,
			Class:  className(base.Name),
			Marker: markerName(base.Name),
			Func:   "Decode" + goName(base.Name),
		}
		for _, def := range base.Constructors {
			bm.Ctors = append(bm.Ctors, goName(def.Name))
		}
		m.Bases = append(m.Bases, bm)
	}
	for _, def := range b.s.Types {
		cm, err := b.ctor(def)
		if err != nil {
			return fileModel{}, err
		}
		m.Ctors = append(m.Ctors, cm)
	}
	return m, nil
}

func (b *builder) ctor(def schema.Definition) (ctorModel, error) {
	cm := ctorModel{
		TLName: def.Name,
		GoName: goName(def.Name),
		Tag:    def.Tag,
		Decl:   declString(def),
		Base:   def.Result,
		Marker: markerName(def.Result),
	}
	flagIndex := make(map[string]int)
	usedFlags := make(map[string]bool)
	var bits []flagBit
	present := make(map[flagBit][]string)
	for _, p := range def.Params {
		if !p.Conditional {
			continue
		}
		usedFlags[p.FlagField] = true
		fb := flagBit{p.FlagField, p.FlagBit}
		if _, ok := present[fb]; !ok {
			bits = append(bits, fb)
		}
		expr := "v." + goName(p.Name)
		if p.Type.Kind != schema.KindTrue {
			expr += ".Set"
		}
		present[fb] = append(present[fb], expr)
	}
	for _, fb := range bits {
		if check := presenceCheck(def.Name, present[fb]); check != "" {
			cm.Checks = append(cm.Checks, check)
		}
	}

	for _, p := range def.Params {
		field := goName(p.Name)
		target := "v." + field
		switch {
		case p.Type.Kind == schema.KindFlags:
			local := localName(p.Name)
			flagIndex[p.Name] = len(cm.Flags)
			cm.Flags = append(cm.Flags, flagModel{Local: local})
			cm.Encode = append(cm.Encode, fmt.Sprintf("b.PutUint32(%s)", local))
			if usedFlags[p.Name] {
				cm.Locals = append(cm.Locals, local)
				cm.Decode = append(cm.Decode, wrapAssign(local, "c.Uint32()"))
			} else {
				cm.Decode = append(cm.Decode, wrapAssign("_", "c.Uint32()"))
			}

		case p.Conditional && p.Type.Kind == schema.KindTrue:
			cm.Fields = append(cm.Fields, fieldModel{Name: field, Type: "bool", Doc: condDoc(p)})
			fm := &cm.Flags[flagIndex[p.FlagField]]
			fm.Sets = append(fm.Sets, fmt.Sprintf("tl.FlagIf(%s, %d)", target, p.FlagBit))
			cm.Decode = append(cm.Decode, fmt.Sprintf("%s = tl.Has(%s, %d)", target, localName(p.FlagField), p.FlagBit))

		case p.Conditional:
			goType, err := b.goType(p.Type)
			if err != nil {
				return ctorModel{}, fmt.Errorf("gen: %s.%s: %w", def.Name, p.Name, err)
			}
			cm.Fields = append(cm.Fields, fieldModel{Name: field, Type: "tl.Opt[" + goType + "]", Doc: condDoc(p)})
			fm := &cm.Flags[flagIndex[p.FlagField]]
			fm.Sets = append(fm.Sets, fmt.Sprintf("%s.Flag(%d)", target, p.FlagBit))
			enc, err := b.encodeStmt(p.Type, target+".Value", def.Name+"."+p.Name)
			if err != nil {
				return ctorModel{}, err
			}
			dec, err := b.decodeStmt(p.Type, target+".Value")
			if err != nil {
				return ctorModel{}, err
			}
			cm.Encode = append(cm.Encode, fmt.Sprintf("if %s.Set {\n%s\n}", target, enc))
			cm.Decode = append(cm.Decode, fmt.Sprintf("if tl.Has(%s, %d) {\n%s\n%s.Set = true\n}", localName(p.FlagField), p.FlagBit, dec, target))

		default:
			goType, err := b.goType(p.Type)
			if err != nil {
				return ctorModel{}, fmt.Errorf("gen: %s.%s: %w", def.Name, p.Name, err)
			}
			cm.Fields = append(cm.Fields, fieldModel{Name: field, Type: goType})
			enc, err := b.encodeStmt(p.Type, target, def.Name+"."+p.Name)
			if err != nil {
				return ctorModel{}, err
			}
			dec, err := b.decodeStmt(p.Type, target)
			if err != nil {
				return ctorModel{}, err
			}
			cm.Encode = append(cm.Encode, enc)
			cm.Decode = append(cm.Decode, dec)
		}
	}
	return cm, nil
}

type flagBit struct {
	field string
	bit   int
}

// presenceCheck rejects encoding when fields sharing one flag bit are not all
// present or all absent. One field needs no check.
func presenceCheck(name string, exprs []string) string {
	if len(exprs) < 2 {
		return ""
	}
	var conds []string
	for _, e := range exprs[1:] {
		conds = append(conds, exprs[0]+" != "+e)
	}
	return fmt.Sprintf("if %s {\nreturn &bin.EncodeError{Op: %q, Err: tl.ErrFlagConflict}\n}", strings.Join(conds, " || "), name)
}

func condDoc(p schema.Param) string {
	return fmt.Sprintf("%s.%d", p.FlagField, p.FlagBit)
}

func declString(def schema.Definition) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%s#%08x", def.Name, def.Tag))
	for _, p := range def.Params {
		typ := p.Type.String()
		if p.Conditional {
			typ = fmt.Sprintf("%s.%d?%s", p.FlagField, p.FlagBit, typ)
		}
		parts = append(parts, p.Name+":"+typ)
	}
	return strings.Join(parts, " ") + " = " + def.Result
}

func wrapAssign(target, call string) string {
	return fmt.Sprintf("if %s, err = %s; err != nil {\nreturn err\n}", target, call)
}

func wrapErr(call string) string {
	return fmt.Sprintf("if err := %s; err != nil {\nreturn err\n}", call)
}

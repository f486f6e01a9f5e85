package gen

import (
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"join": func(sets []string) string { return strings.Join(sets, " | ") },
}

var fileTemplate = template.Must(template.New("file").Funcs(funcs).Parse(`// Code generated by tlctl gen. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.Package}}

import (
	"sync"

	"github.com/danmuck/tlwire/internal/protocol/bin"
	"github.com/danmuck/tlwire/internal/protocol/tl"
)

// Layer is the schema layer these types were generated from.
const Layer = {{.Layer}}
{{range .Bases}}
// {{.Class}} is implemented by every {{.TLName}} constructor:
{{- range .Ctors}} {{.}}{{end}}.
type {{.Class}} interface {
	tl.Object
	{{.Marker}}()
}

// {{.Func}} decodes a boxed {{.TLName}}.
func {{.Func}}(c *bin.Cursor) ({{.Class}}, error) {
	return tl.DecodeAs[{{.Class}}](Registry(), c, "{{.TLName}}")
}
{{end}}
{{- range .Ctors}}
// {{.GoName}} is {{.Decl}}.
{{- if .Fields}}
type {{.GoName}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}}{{if .Doc}} // {{.Doc}}{{end}}
{{- end}}
}
{{- else}}
type {{.GoName}} struct{}
{{- end}}

const {{.GoName}}Tag uint32 = {{printf "0x%08x" .Tag}}

func (*{{.GoName}}) TLTag() uint32 { return {{.GoName}}Tag }

func (*{{.GoName}}) TLName() string { return "{{.TLName}}" }

func (*{{.GoName}}) {{.Marker}}() {}

func (v *{{.GoName}}) Encode(b *bin.Buffer) error {
	b.PutTag({{.GoName}}Tag)
	return v.EncodeBare(b)
}

func (v *{{.GoName}}) EncodeBare(b *bin.Buffer) error {
{{- range .Checks}}
	{{.}}
{{- end}}
{{- range .Flags}}
{{- if .Sets}}
	{{.Local}} := {{join .Sets}}
{{- else}}
	var {{.Local}} uint32
{{- end}}
{{- end}}
{{- range .Encode}}
	{{.}}
{{- end}}
	return nil
}

func (v *{{.GoName}}) Decode(c *bin.Cursor) error {
	if err := c.ConsumeTag({{.GoName}}Tag, "{{.TLName}}"); err != nil {
		return err
	}
	return v.DecodeBare(c)
}

func (v *{{.GoName}}) DecodeBare(c *bin.Cursor) (err error) {
{{- if .Fields}}
	*v = {{.GoName}}{}
{{- end}}
{{- range .Locals}}
	var {{.}} uint32
{{- end}}
{{- range .Decode}}
	{{.}}
{{- end}}
	return nil
}
{{end}}
// Constructors returns the registry entries for every type in this package.
func Constructors() []tl.Constructor {
	return []tl.Constructor{
{{- range .Ctors}}
		{Tag: {{.GoName}}Tag, Name: "{{.TLName}}", Base: "{{.Base}}", Decode: tl.Bare[{{.GoName}}]()},
{{- end}}
	}
}

var (
	registryOnce sync.Once
	registry     *tl.Registry
)

// Registry returns the registry holding this package's constructors and the
// builtins. It is built on first use.
func Registry() *tl.Registry {
	registryOnce.Do(func() {
		registry = tl.MustRegistry(Layer, Constructors())
	})
	return registry
}
`))

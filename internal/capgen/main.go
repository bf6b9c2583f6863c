// Command capgen generates the capability interfaces, handle dispatch,
// special-name table and forwarding methods of package snekvm from the
// capability table.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

type Capability struct {
	Name      string
	Attr      string
	Args      []string
	Optional  int
	Native    string
	Numeric   string
	Compare   string
	Reflected bool
	Variadic  bool
}

type nativeType struct {
	GoType string
	Zero   string
	From   string
	To     string
}

var nativeTypes = map[string]nativeType{
	"bool":    {"bool", "false", "rt.Bool(v)", "handleToBool"},
	"string":  {"string", `""`, "rt.Str(v)", "handleToString"},
	"bytes":   {"[]byte", "nil", "rt.Bytes(v)", "handleToBytes"},
	"hash":    {"uint64", "0", "rt.hashResult(v)", "handleToHash"},
	"int":     {"int", "0", "rt.IntFromInt64(int64(v))", "handleToInt"},
	"bigint":  {"*big.Int", "nil", "rt.Int(v)", "handleToBigInt"},
	"float":   {"float64", "0", "rt.Float(v)", "handleToFloat"},
	"complex": {"complex128", "0", "rt.Complex(v)", "handleToComplex"},
}

// capabilities implemented by hand on PyObject
var objectSkip = map[string]bool{
	"GetAttribute": true,
	"SetAttr":      true,
	"DelAttr":      true,
}

var numericKinds = []string{"PyBool", "PyInt", "PyFloat", "PyComplex"}

func (c Capability) Params() string {
	if c.Variadic {
		return "rt *Runtime, args []*Handle, kwargs []KwArg"
	}
	if len(c.Args) == 0 {
		return "rt *Runtime"
	}
	return "rt *Runtime, " + strings.Join(c.Args, ", ") + " *Handle"
}

func (c Capability) CallArgs() string {
	if c.Variadic {
		return "rt, args, kwargs"
	}
	return strings.Join(append([]string{"rt"}, c.Args...), ", ")
}

func (c Capability) ArgList() string {
	if len(c.Args) == 0 {
		return "nil"
	}
	return "[]*Handle{" + strings.Join(c.Args, ", ") + "}"
}

func (c Capability) TableArgs() string {
	parts := []string{"rt"}
	for i := range c.Args {
		parts = append(parts, fmt.Sprintf("argAt(args, %d)", i))
	}
	return strings.Join(parts, ", ")
}

func (c Capability) Min() int {
	if c.Variadic {
		return 0
	}
	return len(c.Args) - c.Optional
}

func (c Capability) Max() int {
	if c.Variadic {
		return -1
	}
	return len(c.Args)
}

func (c Capability) NativeType() nativeType {
	return nativeTypes[c.Native]
}

const header = "// Code generated by capgen. DO NOT EDIT.\n\npackage snekvm\n\n"

var capabilityTemplate = template.Must(template.New("capability").Parse(header + `import (
	"math/big"
	"runtime"
)

{{range .}}
// {{.Name}}Op is implemented by values supporting {{.Attr}}.
type {{.Name}}Op interface {
	{{.Name}}({{.Params}}) (*Handle, error)
}
{{if .Native}}
// Native{{.Name}}Op is the native form of {{.Name}}Op.
type Native{{.Name}}Op interface {
	Native{{.Name}}({{.Params}}) ({{.NativeType.GoType}}, error)
}
{{end}}{{end}}
{{range .}}
// {{.Name}} dispatches {{.Attr}}.
func (h *Handle) {{.Name}}({{.Params}}) (*Handle, error) {
	defer runtime.KeepAlive(h)
	if op, ok := h.value.({{.Name}}Op); ok {
		return op.{{.Name}}({{.CallArgs}})
	}
{{- if .Native}}
	if op, ok := h.value.(Native{{.Name}}Op); ok {
		v, err := op.Native{{.Name}}({{.CallArgs}})
		if err != nil {
			return nil, err
		}
		return {{.NativeType.From}}, nil
	}
{{- end}}
	return nil, notImplemented(h, "{{.Attr}}")
}
{{if .Native}}
// Native{{.Name}} dispatches {{.Attr}}, returning a native value.
func (h *Handle) Native{{.Name}}({{.Params}}) ({{.NativeType.GoType}}, error) {
	defer runtime.KeepAlive(h)
	if op, ok := h.value.(Native{{.Name}}Op); ok {
		return op.Native{{.Name}}({{.CallArgs}})
	}
	if op, ok := h.value.({{.Name}}Op); ok {
		r, err := op.{{.Name}}({{.CallArgs}})
		if err != nil {
			return {{.NativeType.Zero}}, err
		}
		return {{.NativeType.To}}(r, "{{.Attr}}")
	}
	return {{.NativeType.Zero}}, notImplemented(h, "{{.Attr}}")
}
{{end}}{{end}}
var specials = map[string]special{
{{- range .}}
	"{{.Attr}}": {
		min: {{.Min}},
		max: {{.Max}},
		has: func(v Value) bool {
			if _, ok := v.({{.Name}}Op); ok {
				return true
			}
{{- if .Native}}
			if _, ok := v.(Native{{.Name}}Op); ok {
				return true
			}
{{- end}}
			return false
		},
		run: func(rt *Runtime, h *Handle, args []*Handle, kwargs []KwArg) (*Handle, error) {
{{- if .Variadic}}
			return h.{{.Name}}(rt, args, kwargs)
{{- else}}
			return h.{{.Name}}({{.TableArgs}})
{{- end}}
		},
	},
{{- end}}
}
`))

var objectTemplate = template.Must(template.New("object").Parse(header + `{{range .}}
var _ {{.Name}}Op = (*PyObject)(nil)

func (o *PyObject) {{.Name}}({{.Params}}) (*Handle, error) {
{{- if .Variadic}}
	return o.callSpecial(rt, "{{.Attr}}", args, kwargs)
{{- else}}
	return o.callSpecial(rt, "{{.Attr}}", {{.ArgList}}, nil)
{{- end}}
}
{{end}}`))

type numericMethod struct {
	Kind string
	Capability
}

var numericTemplate = template.Must(template.New("numeric").Parse(header + `{{range .}}
{{- if .Compare}}
func (v *{{.Kind}}) Native{{.Name}}(rt *Runtime, other *Handle) (bool, error) {
	return rt.numericCompare({{.Compare}}, v.Self(), other)
}
{{else}}
func (v *{{.Kind}}) {{.Name}}(rt *Runtime, other *Handle) (*Handle, error) {
{{- if .Reflected}}
	return rt.numericBinary({{.Numeric}}, other, v.Self())
{{- else}}
	return rt.numericBinary({{.Numeric}}, v.Self(), other)
{{- end}}
}
{{end}}{{end}}`))

func main() {
	out := flag.String("out", ".", "output directory")
	flag.Parse()

	var objectCaps []Capability
	for _, c := range capabilities {
		if !objectSkip[c.Name] {
			objectCaps = append(objectCaps, c)
		}
	}

	var numeric []numericMethod
	for _, kind := range numericKinds {
		for _, c := range capabilities {
			if c.Numeric != "" {
				numeric = append(numeric, numericMethod{
					Kind:       kind,
					Capability: c,
				})
			}
		}
		for _, c := range capabilities {
			if c.Compare != "" {
				numeric = append(numeric, numericMethod{
					Kind:       kind,
					Capability: c,
				})
			}
		}
	}

	ce(write(filepath.Join(*out, "capability_gen.go"), capabilityTemplate, capabilities))
	ce(write(filepath.Join(*out, "object_gen.go"), objectTemplate, objectCaps))
	ce(write(filepath.Join(*out, "numeric_gen.go"), numericTemplate, numeric))
}

func write(path string, tmpl *template.Template, data any) error {
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, data); err != nil {
		return fmt.Errorf("execute %s: %w", tmpl.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	return os.WriteFile(path, src, 0644)
}

func ce(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

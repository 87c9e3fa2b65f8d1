// Package tuplegen generates the per-length code of the
// tuple and tuplefunc packages.
//
// Go functions cannot be generic over the shape of a
// recursive type, so every operation whose result type
// depends on the length of a tuple is written out once for
// each length from 1 up to a configured maximum.
package tuplegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"
)

const (
	// DefaultMax is the default largest tuple length
	// for which code is generated.
	DefaultMax = 8

	// Limit is the largest permitted value for Config.Max.
	// Deeper nesting exceeds the compiler's limit on
	// type unification depth.
	Limit = 48

	// DefaultTupleImport is the import path of the tuple package
	// used by generated tuplefunc code.
	DefaultTupleImport = "github.com/rogpeppe/hlist/tuple"
)

var (
	// ErrInvalidArity is returned when the configured maximum
	// tuple length is out of range.
	ErrInvalidArity = errors.New("invalid maximum arity")

	// ErrInvalidPackage is returned when the configured
	// package name is not a Go identifier.
	ErrInvalidPackage = errors.New("invalid package name")
)

// Config holds the parameters for code generation.
type Config struct {
	// Package holds the package name of the generated file.
	// If empty, the name of the target package is used.
	Package string

	// Max holds the largest tuple length to generate code for.
	// If zero, DefaultMax is used.
	Max int

	// TupleImport holds the import path of the tuple package.
	// It is only used when generating tuplefunc code.
	// If empty, DefaultTupleImport is used.
	TupleImport string
}

// Kind identifies one of the generated files.
type Kind string

const (
	KindTuple     Kind = "tuple"
	KindTupleFunc Kind = "tuplefunc"
)

// Generate returns the gofmt-formatted source for the given kind of file.
func Generate(kind Kind, cfg Config) ([]byte, error) {
	var tmpl *template.Template
	switch kind {
	case KindTuple:
		tmpl = tupleTemplate
	case KindTupleFunc:
		tmpl = tupleFuncTemplate
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	cfg, err := cfg.withDefaults(kind)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newParams(cfg)); err != nil {
		return nil, fmt.Errorf("cannot execute %s template: %w", kind, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("cannot format generated %s code: %w", kind, err)
	}
	return src, nil
}

func (cfg Config) withDefaults(kind Kind) (Config, error) {
	if cfg.Package == "" {
		cfg.Package = string(kind)
	}
	if !token.IsIdentifier(cfg.Package) {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidPackage, cfg.Package)
	}
	if cfg.Max == 0 {
		cfg.Max = DefaultMax
	}
	if cfg.Max < 1 || cfg.Max > Limit {
		return Config{}, fmt.Errorf("%w: %d is not in [1, %d]", ErrInvalidArity, cfg.Max, Limit)
	}
	if cfg.TupleImport == "" {
		cfg.TupleImport = DefaultTupleImport
	}
	return cfg, nil
}

type params struct {
	Config
	Arities []arity
}

func newParams(cfg Config) params {
	p := params{
		Config: cfg,
	}
	for n := 1; n <= cfg.Max; n++ {
		p.Arities = append(p.Arities, arity{
			N:   n,
			Max: cfg.Max,
		})
	}
	return p
}

// arity holds the template helpers for tuples of length N.
type arity struct {
	N   int
	Max int
}

// field describes element I of a tuple, found at Path
// relative to the tuple value.
type field struct {
	I    int
	Path string
}

// Next returns the arity one greater than a.
func (a arity) Next() arity {
	return arity{
		N:   a.N + 1,
		Max: a.Max,
	}
}

// HasNext reports whether a.Next is within the generated range.
func (a arity) HasNext() bool {
	return a.N < a.Max
}

// List formats each element index with format and joins
// the results with sep. Format may refer to the index
// more than once with %[1]d.
func (a arity) List(format, sep string) string {
	parts := make([]string, a.N)
	for i := range parts {
		parts[i] = fmt.Sprintf(format, i)
	}
	return strings.Join(parts, sep)
}

// TypeParams returns the type parameter list A0, ..., An any.
func (a arity) TypeParams() string {
	return a.List("A%d", ", ") + " any"
}

// TypeArgs returns the type argument list A0, ..., An.
func (a arity) TypeArgs() string {
	return a.List("A%d", ", ")
}

// Nest returns the nested Cons type whose element types
// are formatted with elem and whose innermost tail is tail.
func (a arity) Nest(elem, tail string) string {
	var b strings.Builder
	for i := 0; i < a.N; i++ {
		fmt.Fprintf(&b, "Cons["+elem+", ", i)
	}
	b.WriteString(tail)
	b.WriteString(strings.Repeat("]", a.N))
	return b.String()
}

// Fields returns the fields holding each element.
func (a arity) Fields() []field {
	fields := make([]field, a.N)
	for i := range fields {
		fields[i] = field{
			I:    i,
			Path: strings.Repeat("Tail.", i) + "Head",
		}
	}
	return fields
}

// RestPath returns the path to the tail following
// the last element.
func (a arity) RestPath() string {
	return strings.TrimSuffix(strings.Repeat("Tail.", a.N), ".")
}

// Plural returns word, with an "s" suffix unless a.N is 1.
func (a arity) Plural(word string) string {
	if a.N == 1 {
		return word
	}
	return word + "s"
}

var tupleTemplate = template.Must(template.New("tuple").Parse(`// Code generated by tuplegen; DO NOT EDIT.

package {{.Package}}

import (
	"cmp"

	"github.com/rogpeppe/hlist/option"
	"github.com/rogpeppe/hlist/result"
)
{{range .Arities}}
// T{{.N}} is the tuple type holding {{.N}} {{.Plural "value"}}.
type T{{.N}}[{{.TypeParams}}] = {{.Nest "A%d" "Unit"}}

// AtLeast{{.N}} is the type of a tuple holding at least {{.N}} {{.Plural "value"}}:
// the leading ones have the given types and the remaining values are in R.
type AtLeast{{.N}}[{{.TypeParams}}, R Tuple] = {{.Nest "A%d" "R"}}

// New{{.N}} returns the tuple holding the given values.
func New{{.N}}[{{.TypeParams}}]({{.List "a%[1]d A%[1]d" ", "}}) (t T{{.N}}[{{.TypeArgs}}]) {
{{- range .Fields}}
	t.{{.Path}} = a{{.I}}
{{- end}}
	return t
}

// Unpack{{.N}} returns the values held by t.
func Unpack{{.N}}[{{.TypeParams}}](t T{{.N}}[{{.TypeArgs}}]) ({{.TypeArgs}}) {
	return {{range $i, $f := .Fields}}{{if $i}}, {{end}}t.{{$f.Path}}{{end}}
}

// Split{{.N}} returns the first {{.N}} {{.Plural "value"}} held by t and
// the tuple holding the rest.
func Split{{.N}}[{{.TypeParams}}, R Tuple](t AtLeast{{.N}}[{{.TypeArgs}}, R]) ({{.TypeArgs}}, R) {
	return {{range .Fields}}t.{{.Path}}, {{end}}t.{{.RestPath}}
}

// Prefix{{.N}} returns the first {{.N}} {{.Plural "value"}} held by t,
// ignoring any that follow.
func Prefix{{.N}}[{{.TypeParams}}, R Tuple](t AtLeast{{.N}}[{{.TypeArgs}}, R]) ({{.TypeArgs}}) {
	return {{range $i, $f := .Fields}}{{if $i}}, {{end}}t.{{$f.Path}}{{end}}
}

// Concat{{.N}} returns the tuple holding the values of t
// followed by the values of r.
func Concat{{.N}}[{{.TypeParams}}, R Tuple](t T{{.N}}[{{.TypeArgs}}], r R) (u AtLeast{{.N}}[{{.TypeArgs}}, R]) {
{{- range .Fields}}
	u.{{.Path}} = t.{{.Path}}
{{- end}}
	u.{{.RestPath}} = r
	return u
}
{{- if .HasNext}}{{$next := .Next}}

// PushBack{{.N}} returns the tuple holding the values of t
// followed by a{{.N}}.
func PushBack{{.N}}[{{$next.TypeParams}}](t T{{.N}}[{{.TypeArgs}}], a{{.N}} A{{.N}}) (u T{{$next.N}}[{{$next.TypeArgs}}]) {
{{- range .Fields}}
	u.{{.Path}} = t.{{.Path}}
{{- end}}
	u.{{.RestPath}}.Head = a{{.N}}
	return u
}
{{- end}}

// Refs{{.N}} returns a tuple of read-only references
// to the values held by *t.
func Refs{{.N}}[{{.TypeParams}}](t *T{{.N}}[{{.TypeArgs}}]) (u T{{.N}}[{{.List "Ref[A%d]" ", "}}]) {
{{- range .Fields}}
	u.{{.Path}} = RefTo(&t.{{.Path}})
{{- end}}
	return u
}

// Ptrs{{.N}} returns a tuple of pointers to the values held by *t.
func Ptrs{{.N}}[{{.TypeParams}}](t *T{{.N}}[{{.TypeArgs}}]) (u T{{.N}}[{{.List "*A%d" ", "}}]) {
{{- range .Fields}}
	u.{{.Path}} = &t.{{.Path}}
{{- end}}
	return u
}

// Deref{{.N}} returns the tuple holding the current values
// referred to by t.
func Deref{{.N}}[{{.TypeParams}}](t T{{.N}}[{{.List "Ref[A%d]" ", "}}]) (u T{{.N}}[{{.TypeArgs}}]) {
{{- range .Fields}}
	u.{{.Path}} = t.{{.Path}}.Value()
{{- end}}
	return u
}

// Some{{.N}} returns t with each value wrapped in option.Some.
func Some{{.N}}[{{.TypeParams}}](t T{{.N}}[{{.TypeArgs}}]) (u T{{.N}}[{{.List "option.Option[A%d]" ", "}}]) {
{{- range .Fields}}
	u.{{.Path}} = option.Some(t.{{.Path}})
{{- end}}
	return u
}

// Ok{{.N}} returns t with each value wrapped in result.Ok.
// The failure type E must be specified explicitly.
func Ok{{.N}}[E any, {{.TypeParams}}](t T{{.N}}[{{.TypeArgs}}]) (u T{{.N}}[{{.List "result.Result[A%d, E]" ", "}}]) {
{{- range .Fields}}
	u.{{.Path}} = result.Ok[A{{.I}}, E](t.{{.Path}})
{{- end}}
	return u
}

// Compare{{.N}} compares x and y lexicographically,
// returning -1, 0 or +1 as for [cmp.Compare].
func Compare{{.N}}[{{.TypeArgs}} cmp.Ordered](x, y T{{.N}}[{{.TypeArgs}}]) int {
{{- range .Fields}}
	if c := cmp.Compare(x.{{.Path}}, y.{{.Path}}); c != 0 {
		return c
	}
{{- end}}
	return 0
}

// CompareFunc{{.N}} is like Compare{{.N}} but compares element i
// with the function ci, so the elements need not be ordered types.
func CompareFunc{{.N}}[{{.TypeParams}}](x, y T{{.N}}[{{.TypeArgs}}], {{.List "c%[1]d func(A%[1]d, A%[1]d) int" ", "}}) int {
{{- range .Fields}}
	if c := c{{.I}}(x.{{.Path}}, y.{{.Path}}); c != 0 {
		return c
	}
{{- end}}
	return 0
}
{{end}}`))

var tupleFuncTemplate = template.Must(template.New("tuplefunc").Parse(`// Code generated by tuplegen; DO NOT EDIT.

package {{.Package}}

import (
	"context"

	"{{.TupleImport}}"
)
{{range .Arities}}
// ToA_{{.N}}_1 converts a function of {{.N}} {{.Plural "argument"}} into a function
// of a single tuple argument.
func ToA_{{.N}}_1[{{.TypeArgs}}, R any](f func({{.TypeArgs}}) R) func(tuple.T{{.N}}[{{.TypeArgs}}]) R {
	return func(t tuple.T{{.N}}[{{.TypeArgs}}]) R {
		return f(tuple.Unpack{{.N}}[{{.TypeArgs}}](t))
	}
}

// FromA_{{.N}}_1 is the inverse of ToA_{{.N}}_1.
func FromA_{{.N}}_1[{{.TypeArgs}}, R any](f func(tuple.T{{.N}}[{{.TypeArgs}}]) R) func({{.TypeArgs}}) R {
	return func({{.List "a%[1]d A%[1]d" ", "}}) R {
		return f(tuple.New{{.N}}[{{.TypeArgs}}]({{.List "a%d" ", "}}))
	}
}

// ToR_1_{{.N}} converts a function returning {{.N}} {{.Plural "value"}} into a function
// returning a single tuple.
func ToR_1_{{.N}}[A, {{.List "R%d" ", "}} any](f func(A) ({{.List "R%d" ", "}})) func(A) tuple.T{{.N}}[{{.List "R%d" ", "}}] {
	return func(a A) tuple.T{{.N}}[{{.List "R%d" ", "}}] {
		return tuple.New{{.N}}[{{.List "R%d" ", "}}](f(a))
	}
}

// FromR_1_{{.N}} is the inverse of ToR_1_{{.N}}.
func FromR_1_{{.N}}[A, {{.List "R%d" ", "}} any](f func(A) tuple.T{{.N}}[{{.List "R%d" ", "}}]) func(A) ({{.List "R%d" ", "}}) {
	return func(a A) ({{.List "R%d" ", "}}) {
		return tuple.Unpack{{.N}}[{{.List "R%d" ", "}}](f(a))
	}
}

// ToRE_1_{{.N}} converts a function returning {{.N}} {{.Plural "value"}} and an error
// into a function returning a single tuple and an error.
func ToRE_1_{{.N}}[A, {{.List "R%d" ", "}} any](f func(A) ({{.List "R%d" ", "}}, error)) func(A) (tuple.T{{.N}}[{{.List "R%d" ", "}}], error) {
	return func(a A) (tuple.T{{.N}}[{{.List "R%d" ", "}}], error) {
		{{.List "r%d" ", "}}, err := f(a)
		return tuple.New{{.N}}[{{.List "R%d" ", "}}]({{.List "r%d" ", "}}), err
	}
}

// FromRE_1_{{.N}} is the inverse of ToRE_1_{{.N}}.
func FromRE_1_{{.N}}[A, {{.List "R%d" ", "}} any](f func(A) (tuple.T{{.N}}[{{.List "R%d" ", "}}], error)) func(A) ({{.List "R%d" ", "}}, error) {
	return func(a A) ({{.List "R%d" ", "}}, error) {
		t, err := f(a)
		{{.List "r%d" ", "}} := tuple.Unpack{{.N}}[{{.List "R%d" ", "}}](t)
		return {{.List "r%d" ", "}}, err
	}
}

// ToCRE_1_{{.N}} is like ToRE_1_{{.N}} but for a function that
// also takes a context.
func ToCRE_1_{{.N}}[A, {{.List "R%d" ", "}} any](f func(context.Context, A) ({{.List "R%d" ", "}}, error)) func(context.Context, A) (tuple.T{{.N}}[{{.List "R%d" ", "}}], error) {
	return func(ctx context.Context, a A) (tuple.T{{.N}}[{{.List "R%d" ", "}}], error) {
		{{.List "r%d" ", "}}, err := f(ctx, a)
		return tuple.New{{.N}}[{{.List "R%d" ", "}}]({{.List "r%d" ", "}}), err
	}
}

// FromCRE_1_{{.N}} is the inverse of ToCRE_1_{{.N}}.
func FromCRE_1_{{.N}}[A, {{.List "R%d" ", "}} any](f func(context.Context, A) (tuple.T{{.N}}[{{.List "R%d" ", "}}], error)) func(context.Context, A) ({{.List "R%d" ", "}}, error) {
	return func(ctx context.Context, a A) ({{.List "R%d" ", "}}, error) {
		t, err := f(ctx, a)
		{{.List "r%d" ", "}} := tuple.Unpack{{.N}}[{{.List "R%d" ", "}}](t)
		return {{.List "r%d" ", "}}, err
	}
}
{{end}}`))

// The gentuple command generates the per-arity source files
// of the oktup module. It's invoked by go:generate directives.
//
// Usage:
//
//	gentuple --kind tuple|all|tuplefunc [--max n] [--tuple-max n] [--package name] --output file
//
// The all and tuplefunc kinds refer to the tuple types, so their
// maximum arity may not exceed --tuple-max, which must match the
// --max the tuple package was generated with.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/spf13/pflag"
	"golang.org/x/tools/imports"
)

var (
	kindFlag     = pflag.String("kind", "", "kind of file to generate (tuple, all or tuplefunc)")
	maxFlag      = pflag.Int("max", 10, "maximum arity to generate")
	tupleMaxFlag = pflag.Int("tuple-max", 10, "maximum arity of the generated tuple package")
	packageFlag  = pflag.String("package", "", "package name of the generated file (defaults to the kind's usual package)")
	outputFlag   = pflag.StringP("output", "o", "", "output file name")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gentuple: ")
	pflag.Parse()
	if *outputFlag == "" || pflag.NArg() > 0 {
		pflag.Usage()
		os.Exit(2)
	}
	data, err := generate(*kindFlag, *packageFlag, *maxFlag, *tupleMaxFlag)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*outputFlag, data, 0o666); err != nil {
		log.Fatal(err)
	}
}

// kind describes one kind of generated file.
type kind struct {
	pkg  string
	min  int
	tmpl *template.Template

	// usesTuple is set when the generated code refers
	// to the types in the tuple package.
	usesTuple bool
}

var kinds = map[string]kind{
	"tuple": {
		pkg:  "tuple",
		min:  1,
		tmpl: template.Must(template.New("tuple").Parse(tupleTemplate)),
	},
	"all": {
		pkg:       "oktup",
		min:       1,
		tmpl:      template.Must(template.New("all").Parse(allTemplate)),
		usesTuple: true,
	},
	"tuplefunc": {
		pkg:       "tuplefunc",
		min:       2,
		tmpl:      template.Must(template.New("tuplefunc").Parse(tuplefuncTemplate)),
		usesTuple: true,
	},
}

// generate returns the formatted source of the given kind of file
// holding declarations for all arities up to max. The tuple
// package is assumed to define tuples up to tupleMax.
func generate(kindName, pkg string, max, tupleMax int) ([]byte, error) {
	k, ok := kinds[kindName]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kindName)
	}
	if max < k.min {
		return nil, fmt.Errorf("maximum arity %d is less than %d", max, k.min)
	}
	if k.usesTuple && max > tupleMax {
		return nil, fmt.Errorf("maximum arity %d exceeds tuple arity %d", max, tupleMax)
	}
	if pkg == "" {
		pkg = k.pkg
	}
	var arities []arity
	for n := k.min; n <= max; n++ {
		arities = append(arities, newArity(n))
	}
	var buf bytes.Buffer
	if err := k.tmpl.Execute(&buf, params{
		Package: pkg,
		Arities: arities,
	}); err != nil {
		return nil, fmt.Errorf("cannot execute %s template: %w", kindName, err)
	}
	data, err := imports.Process(kindName+"_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("cannot format generated code: %w\n%s", err, buf.Bytes())
	}
	return data, nil
}

type params struct {
	Package string
	Arities []arity
}

// arity holds the pre-rendered fragments of code
// needed by the templates for a single arity.
type arity struct {
	N int

	// Elems holds the element indexes, 0 to N-1.
	Elems []int

	// TypeParams holds the type parameter list for a tuple
	// of this arity, for example "A0, A1 any".
	TypeParams string

	// TypeArgs holds the type arguments corresponding
	// to TypeParams, for example "A0, A1".
	TypeArgs string

	// RTypeParams and RTypeArgs are like TypeParams and
	// TypeArgs but name the parameters R0, R1, etc.
	RTypeParams string
	RTypeArgs   string

	// Params holds value parameters of the tuple types,
	// for example "v0 A0, v1 A1".
	Params string

	// OptParams holds Optioner parameters of the tuple types,
	// for example "x0 opt.Optioner[A0], x1 opt.Optioner[A1]".
	OptParams string

	// Vars holds the value variables, for example "v0, v1".
	Vars string

	// RVars holds the result variables, for example "r0, r1".
	RVars string

	// Fields holds the tuple fields selected from t, for example "t.V0, t.V1".
	Fields string

	// Results holds the result list of the Values method,
	// for example "(A0, A1)".
	Results string

	// Absent holds the condition under which at least one
	// ok variable is false, for example "!(ok0 && ok1)".
	Absent string
}

func newArity(n int) arity {
	list := func(format string, sep string) string {
		s := make([]string, n)
		for i := range s {
			s[i] = strings.ReplaceAll(format, "#", fmt.Sprint(i))
		}
		return strings.Join(s, sep)
	}
	a := arity{
		N:           n,
		TypeArgs:    list("A#", ", "),
		RTypeArgs:   list("R#", ", "),
		Params:      list("v# A#", ", "),
		OptParams:   list("x# opt.Optioner[A#]", ", "),
		Vars:        list("v#", ", "),
		RVars:       list("r#", ", "),
		Fields:      list("t.V#", ", "),
		TypeParams:  list("A#", ", ") + " any",
		RTypeParams: list("R#", ", ") + " any",
	}
	for i := 0; i < n; i++ {
		a.Elems = append(a.Elems, i)
	}
	if n == 1 {
		a.Absent = "!ok0"
		a.Results = a.TypeArgs
	} else {
		a.Absent = "!(" + list("ok#", " && ") + ")"
		a.Results = "(" + a.TypeArgs + ")"
	}
	return a
}

const header = `// Code generated by gentuple; DO NOT EDIT.

package {{.Package}}
`

const tupleTemplate = header + `
{{range .Arities}}
// T{{.N}} is a tuple of arity {{.N}}.
type T{{.N}}[{{.TypeParams}}] struct {
{{- range .Elems}}
	V{{.}} A{{.}}
{{- end}}
}

// Mk{{.N}} returns a T{{.N}} holding the given values.
func Mk{{.N}}[{{.TypeParams}}]({{.Params}}) T{{.N}}[{{.TypeArgs}}] {
	return T{{.N}}[{{.TypeArgs}}]{ {{.Vars}} }
}

// Values returns the values held by t.
func (t T{{.N}}[{{.TypeArgs}}]) Values() {{.Results}} {
	return {{.Fields}}
}
{{end}}`

const allTemplate = header + `
import (
	"github.com/rogpeppe/oktup/opt"
	"github.com/rogpeppe/oktup/tuple"
)
{{range .Arities}}
// All{{.N}} returns the values of its arguments as a [tuple.T{{.N}}]
// if they are all present. Otherwise it returns an absent value.
func All{{.N}}[{{.TypeParams}}]({{.OptParams}}) opt.Opt[tuple.T{{.N}}[{{.TypeArgs}}]] {
{{- range .Elems}}
	v{{.}}, ok{{.}} := opt.Of(x{{.}}).Get()
{{- end}}
	if {{.Absent}} {
		return opt.None[tuple.T{{.N}}[{{.TypeArgs}}]]()
	}
	return opt.Some(tuple.Mk{{.N}}({{.Vars}}))
}
{{end}}`

const tuplefuncTemplate = header + `
import (
	"github.com/rogpeppe/oktup/opt"
	"github.com/rogpeppe/oktup/tuple"
)
{{range .Arities}}
// ToR_0_{{.N}} converts a function returning {{.N}} values
// to a function returning a [tuple.T{{.N}}].
func ToR_0_{{.N}}[{{.RTypeParams}}](f func() ({{.RTypeArgs}})) func() tuple.T{{.N}}[{{.RTypeArgs}}] {
	return func() tuple.T{{.N}}[{{.RTypeArgs}}] {
		{{.RVars}} := f()
		return tuple.Mk{{.N}}({{.RVars}})
	}
}

// ToRE_0_{{.N}} converts a function returning {{.N}} values and an error
// to a function returning a [tuple.T{{.N}}] and an error.
func ToRE_0_{{.N}}[{{.RTypeParams}}](f func() ({{.RTypeArgs}}, error)) func() (tuple.T{{.N}}[{{.RTypeArgs}}], error) {
	return func() (tuple.T{{.N}}[{{.RTypeArgs}}], error) {
		{{.RVars}}, err := f()
		return tuple.Mk{{.N}}({{.RVars}}), err
	}
}

// ToRO_0_{{.N}} converts a function returning {{.N}} values and an error
// to a function returning an optional [tuple.T{{.N}}] which is
// absent when the error is non-nil.
func ToRO_0_{{.N}}[{{.RTypeParams}}](f func() ({{.RTypeArgs}}, error)) func() opt.Opt[tuple.T{{.N}}[{{.RTypeArgs}}]] {
	return func() opt.Opt[tuple.T{{.N}}[{{.RTypeArgs}}]] {
		{{.RVars}}, err := f()
		return opt.FromResult(tuple.Mk{{.N}}({{.RVars}}), err)
	}
}
{{end}}`

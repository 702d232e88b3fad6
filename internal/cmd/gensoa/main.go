// Command gensoa emits the per-arity record and container types.
//
// Go has no variadic type parameters, so every arity from 1 to -max gets its
// own unrolled TupleN/RefN/ViewN (package record) and VectorN/IteratorN
// (package soa). Usage from a go:generate directive:
//
//	go run ./internal/cmd/gensoa -out . -pkg soa
//	go run ../internal/cmd/gensoa -out . -pkg record
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

var (
	verbose = flag.Bool("v", false, "verbose output")
	output  = flag.String("out", ".", "output directory")
	pkg     = flag.String("pkg", "", "package to generate (soa, record)")
	maxN    = flag.Int("max", 8, "largest record arity")
)

var words = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func main() {
	flag.Parse()

	if *maxN < 1 || *maxN >= len(words) {
		fmt.Fprintf(os.Stderr, "-max must be in [1, %d]\n", len(words)-1)
		os.Exit(1)
	}

	gen := &Generator{OutputDir: *output, Max: *maxN, Verbose: *verbose}

	var err error
	switch *pkg {
	case "record":
		err = gen.Record()
	case "soa":
		err = gen.Vectors()
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s -pkg soa|record [-out dir] [-max n]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Generator renders the templates for arities 1..Max.
type Generator struct {
	OutputDir string
	Max       int
	Verbose   bool
}

// Arity is the template input for one record width.
type Arity struct {
	N      int
	Word   string
	Fields []int
}

func (g *Generator) arities() []Arity {
	out := make([]Arity, 0, g.Max)
	for n := 1; n <= g.Max; n++ {
		fields := make([]int, n)
		for i := range fields {
			fields[i] = i
		}
		out = append(out, Arity{N: n, Word: words[n], Fields: fields})
	}
	return out
}

// Record writes tuple_gen.go.
func (g *Generator) Record() error {
	return g.render(recordTemplate, "tuple_gen.go", g.arities())
}

// Vectors writes one vectorN_gen.go per arity.
func (g *Generator) Vectors() error {
	for _, a := range g.arities() {
		if err := g.render(vectorTemplate, fmt.Sprintf("vector%d_gen.go", a.N), a); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) render(tmpl *template.Template, name string, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("%s: gofmt: %w", name, err)
	}
	path := filepath.Join(g.OutputDir, name)
	if g.Verbose {
		fmt.Printf("writing %s (%d bytes)\n", path, len(src))
	}
	return os.WriteFile(path, src, 0o644) //nolint:gosec // generated sources are world-readable
}

// each formats f once per field, substituting the field index for every
// %[1]d, and joins the results with sep.
func each(f, sep string, fields []int) string {
	parts := make([]string, len(fields))
	for i, fi := range fields {
		parts[i] = fmt.Sprintf(f, fi)
	}
	return strings.Join(parts, sep)
}

var funcs = template.FuncMap{
	// tp renders the type parameter list "T0, T1".
	"tp": func(fields []int) string { return each("T%[1]d", ", ", fields) },
	// tpd renders the declaration "T0, T1 any".
	"tpd":  func(fields []int) string { return each("T%[1]d", ", ", fields) + " any" },
	"list": func(f string, fields []int) string { return each(f, ", ", fields) },
	"ands": func(f string, fields []int) string { return each(f, " &&\n", fields) },
	"ints": func(fields []int) string { return strings.TrimSuffix(strings.Repeat("int, ", len(fields)), ", ") },
	"tail": func(fields []int) []int { return fields[1:] },
	"spec": newIterSpec,
	"plural": func(n int) string {
		if n == 1 {
			return ""
		}
		return "s"
	},
}

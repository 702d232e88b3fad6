package main

import "text/template"

var recordTemplate = template.Must(template.New("record").Funcs(funcs).Parse(`// Code generated by gensoa. DO NOT EDIT.

package record
{{range .}}{{$T := tp .Fields}}{{$D := tpd .Fields}}{{$N := .N}}
// Tuple{{.N}} is a record with {{.Word}} field{{plural .N}}.
type Tuple{{.N}}[{{$D}}] struct {
{{range .Fields}}	V{{.}} T{{.}}
{{end}}}

// Make{{.N}} returns the Tuple{{.N}} holding the given fields.
func Make{{.N}}[{{$D}}]({{list "v%[1]d T%[1]d" .Fields}}) Tuple{{.N}}[{{$T}}] {
	return Tuple{{.N}}[{{$T}}]{ {{- list "V%[1]d: v%[1]d" .Fields -}} }
}

// Arity returns {{.N}}.
func (t Tuple{{.N}}[{{$T}}]) Arity() int { return {{.N}} }

// Field returns field i.
func (t Tuple{{.N}}[{{$T}}]) Field(i int) any {
	switch i {
{{range .Fields}}	case {{.}}:
		return t.V{{.}}
{{end}}	}
	panic(fieldOutOfRange(i, {{.N}}))
}

// Ptr returns a pointer to field i.
func (t *Tuple{{.N}}[{{$T}}]) Ptr(i int) any {
	switch i {
{{range .Fields}}	case {{.}}:
		return &t.V{{.}}
{{end}}	}
	panic(fieldOutOfRange(i, {{.N}}))
}

// Refs returns a mutable view of t.
func (t *Tuple{{.N}}[{{$T}}]) Refs() Ref{{.N}}[{{$T}}] {
	return Ref{{.N}}[{{$T}}]{ {{- list "P%[1]d: &t.V%[1]d" .Fields -}} }
}

// Ref{{.N}} is a mutable view of a {{.Word}}-field record stored elsewhere.
type Ref{{.N}}[{{$D}}] struct {
{{range .Fields}}	P{{.}} *T{{.}}
{{end}}}

// Arity returns {{.N}}.
func (r Ref{{.N}}[{{$T}}]) Arity() int { return {{.N}} }

// Field returns a copy of field i.
func (r Ref{{.N}}[{{$T}}]) Field(i int) any {
	switch i {
{{range .Fields}}	case {{.}}:
		return *r.P{{.}}
{{end}}	}
	panic(fieldOutOfRange(i, {{.N}}))
}

// Ptr returns the pointer to field i.
func (r Ref{{.N}}[{{$T}}]) Ptr(i int) any {
	switch i {
{{range .Fields}}	case {{.}}:
		return r.P{{.}}
{{end}}	}
	panic(fieldOutOfRange(i, {{.N}}))
}

// Get copies the referenced record.
func (r Ref{{.N}}[{{$T}}]) Get() Tuple{{.N}}[{{$T}}] {
	return Tuple{{.N}}[{{$T}}]{ {{- list "V%[1]d: *r.P%[1]d" .Fields -}} }
}

// Set writes every field of t through the view, in field order.
func (r Ref{{.N}}[{{$T}}]) Set(t Tuple{{.N}}[{{$T}}]) {
{{range .Fields}}	*r.P{{.}} = t.V{{.}}
{{end}}}

// SwapWith exchanges the referenced records field by field.
func (r Ref{{.N}}[{{$T}}]) SwapWith(o Ref{{.N}}[{{$T}}]) {
{{range .Fields}}	*r.P{{.}}, *o.P{{.}} = *o.P{{.}}, *r.P{{.}}
{{end}}}

// View returns a read-only view of the same record.
func (r Ref{{.N}}[{{$T}}]) View() View{{.N}}[{{$T}}] {
	return NewView{{.N}}({{list "r.P%[1]d" .Fields}})
}

// View{{.N}} is a read-only view of a {{.Word}}-field record stored elsewhere.
type View{{.N}}[{{$D}}] struct {
{{range .Fields}}	p{{.}} *T{{.}}
{{end}}}

// NewView{{.N}} returns a View{{.N}} over the given field pointers.
func NewView{{.N}}[{{$D}}]({{list "p%[1]d *T%[1]d" .Fields}}) View{{.N}}[{{$T}}] {
	return View{{.N}}[{{$T}}]{ {{- list "p%[1]d: p%[1]d" .Fields -}} }
}

// Arity returns {{.N}}.
func (v View{{.N}}[{{$T}}]) Arity() int { return {{.N}} }

// Field returns a copy of field i.
func (v View{{.N}}[{{$T}}]) Field(i int) any {
	switch i {
{{range .Fields}}	case {{.}}:
		return *v.p{{.}}
{{end}}	}
	panic(fieldOutOfRange(i, {{.N}}))
}
{{range .Fields}}
// F{{.}} returns a copy of field {{.}}.
func (v View{{$N}}[{{$T}}]) F{{.}}() T{{.}} { return *v.p{{.}} }
{{end}}
// Get copies the referenced record.
func (v View{{.N}}[{{$T}}]) Get() Tuple{{.N}}[{{$T}}] {
	return Tuple{{.N}}[{{$T}}]{ {{- list "V%[1]d: *v.p%[1]d" .Fields -}} }
}
{{end}}`))

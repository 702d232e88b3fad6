package main

import (
	"fmt"
	"text/template"
)

// iterSpec is the template input for one iterator type of an arity.
type iterSpec struct {
	Arity   Arity
	Mutable bool
	Base    string // type name without parameters
	Name    string // instantiated type
	Get     string // type returned by Get
	C       string // instantiated read-only iterator
}

func newIterSpec(a Arity, mutable bool) iterSpec {
	tp := each("T%[1]d", ", ", a.Fields)
	s := iterSpec{
		Arity:   a,
		Mutable: mutable,
		C:       fmt.Sprintf("ConstIterator%d[%s]", a.N, tp),
	}
	if mutable {
		s.Base = fmt.Sprintf("Iterator%d", a.N)
		s.Get = fmt.Sprintf("record.Ref%d[%s]", a.N, tp)
	} else {
		s.Base = fmt.Sprintf("ConstIterator%d", a.N)
		s.Get = fmt.Sprintf("record.View%d[%s]", a.N, tp)
	}
	s.Name = fmt.Sprintf("%s[%s]", s.Base, tp)
	return s
}

var vectorTemplate = template.Must(template.New("vector").Funcs(funcs).Parse(`// Code generated by gensoa. DO NOT EDIT.
{{- $T := tp .Fields}}{{$D := tpd .Fields}}{{$N := .N}}
{{- $V := printf "Vector%d[%s]" .N $T}}
{{- $I := printf "Iterator%d[%s]" .N $T}}
{{- $C := printf "ConstIterator%d[%s]" .N $T}}
{{- $TU := printf "record.Tuple%d[%s]" .N $T}}
{{- $RF := printf "record.Ref%d[%s]" .N $T}}
{{- $VW := printf "record.View%d[%s]" .N $T}}

package soa

import (
	"iter"

	"github.com/hupe1980/soa/internal/column"
	"github.com/hupe1980/soa/record"
)

// Vector{{.N}} stores records of {{.Word}} field{{plural .N}} in {{.Word}} column{{plural .N}}, one per field.
//
// The zero value is not usable; construct with NewVector{{.N}}.
type Vector{{.N}}[{{$D}}] struct {
	table
{{range .Fields}}	c{{.}} *column.Column[T{{.}}]
{{end}}}

var _ Container = (*Vector{{.N}}[{{ints .Fields}}])(nil)

// NewVector{{.N}} returns an empty Vector{{.N}}.
func NewVector{{.N}}[{{$D}}](opts ...Option) *{{$V}} {
	v := &{{$V}}{}
	v.table = newTable(column.Set{ {{- list "column.New[T%[1]d]()" .Fields -}} }, opts)
	v.bind()
	return v
}

// NewVector{{.N}}Len returns a Vector{{.N}} holding n zero-valued records.
func NewVector{{.N}}Len[{{$D}}](n int, opts ...Option) (*{{$V}}, error) {
	v := NewVector{{.N}}[{{$T}}](opts...)
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// NewVector{{.N}}Of returns a Vector{{.N}} holding records in order.
func NewVector{{.N}}Of[{{$D}}](records ...{{$TU}}) *{{$V}} {
	v := NewVector{{.N}}[{{$T}}](WithCapacity(len(records)))
	for _, r := range records {
		v.PushBack(r)
	}
	return v
}

func (v *{{$V}}) bind() {
{{range .Fields}}	v.c{{.}} = v.cols[{{.}}].(*column.Column[T{{.}}])
{{end}}}

// Arity returns {{.N}}.
func (v *{{$V}}) Arity() int { return {{.N}} }

// Clone returns a deep copy. Mutating either container never affects the other.
func (v *{{$V}}) Clone() *{{$V}} {
	out := &{{$V}}{table: v.clone()}
	out.bind()
	return out
}

// Move transfers the contents of v into a new container. v is left empty,
// with every column at length zero.
func (v *{{$V}}) Move() *{{$V}} {
	out := NewVector{{.N}}[{{$T}}]()
	out.Swap(v)
	return out
}

// CopyFrom replaces the contents of v with a copy of src.
func (v *{{$V}}) CopyFrom(src *{{$V}}) {
	if v == src {
		return
	}
	v.copyFrom(&src.table)
}

// Assign replaces the contents of v with records, in order.
func (v *{{$V}}) Assign(records ...{{$TU}}) {
	v.Clear()
	_ = v.reserveExtra(len(records))
	for _, r := range records {
		v.PushBack(r)
	}
}

// AssignN replaces the contents of v with count copies of r.
func (v *{{$V}}) AssignN(count int, r {{$TU}}) error {
	if err := v.checkLen(count); err != nil {
		return err
	}
{{range .Fields}}	v.c{{.}}.Fill(count, r.V{{.}})
{{end}}	v.touch()
	return nil
}

// AssignRange replaces the contents of v with the records in [first, last),
// which may belong to any Vector{{.N}} of the same type, including v.
func (v *{{$V}}) AssignRange(first, last {{$C}}) {
{{range .Fields}}	v.c{{.}}.Assign(first.c{{.}}.Span(last.c{{.}}))
{{end}}	v.touch()
}

// PushBack appends r, writing its fields to the columns in field order.
func (v *{{$V}}) PushBack(r {{$TU}}) {
{{range .Fields}}	v.c{{.}}.Append(r.V{{.}})
{{end}}	v.touch()
}

// EmplaceBack appends a record built from the given fields and returns a
// view of it.
func (v *{{$V}}) EmplaceBack({{list "v%[1]d T%[1]d" .Fields}}) {{$RF}} {
{{range .Fields}}	v.c{{.}}.Append(v{{.}})
{{end}}	v.touch()
	return v.Back()
}

// Index returns a mutable view of record k. k is not checked beyond the
// slice bounds check of each column.
func (v *{{$V}}) Index(k int) {{$RF}} {
	return {{$RF}}{ {{- list "P%[1]d: v.c%[1]d.At(k)" .Fields -}} }
}

// At is Index with a range check. It returns *ErrIndexOutOfBounds when
// k >= Len.
func (v *{{$V}}) At(k int) ({{$RF}}, error) {
	if err := v.checkIndex(k); err != nil {
		return {{$RF}}{}, err
	}
	return v.Index(k), nil
}

// View returns a read-only view of record k.
func (v *{{$V}}) View(k int) {{$VW}} {
	return record.NewView{{.N}}({{list "v.c%[1]d.At(k)" .Fields}})
}

// Get returns a copy of record k.
func (v *{{$V}}) Get(k int) {{$TU}} {
	return {{$TU}}{ {{- list "V%[1]d: *v.c%[1]d.At(k)" .Fields -}} }
}

// Front returns a mutable view of the first record.
func (v *{{$V}}) Front() {{$RF}} { return v.Index(0) }

// Back returns a mutable view of the last record.
func (v *{{$V}}) Back() {{$RF}} { return v.Index(v.Len() - 1) }

// ResizeFill sets the number of records to n. New records are copies of fill.
func (v *{{$V}}) ResizeFill(n int, fill {{$TU}}) error {
	if err := v.checkLen(n); err != nil {
		return err
	}
{{range .Fields}}	v.c{{.}}.Resize(n, fill.V{{.}})
{{end}}	v.touch()
	return nil
}

// Insert places r before position pos and returns an iterator to it.
func (v *{{$V}}) Insert(pos int, r {{$TU}}) {{$I}} {
	v.mustPos(pos)
{{range .Fields}}	v.c{{.}}.Insert(pos, r.V{{.}})
{{end}}	v.touch()
	return v.iterAt(pos)
}

// InsertN places count copies of r before position pos and returns an
// iterator to the first of them.
func (v *{{$V}}) InsertN(pos, count int, r {{$TU}}) ({{$I}}, error) {
	v.mustPos(pos)
	if err := v.reserveExtra(count); err != nil {
		return {{$I}}{}, err
	}
{{range .Fields}}	v.c{{.}}.InsertN(pos, count, r.V{{.}})
{{end}}	v.touch()
	return v.iterAt(pos), nil
}

// InsertRange places the records in [first, last) before position pos and
// returns an iterator to the first inserted record. The source range may
// belong to v.
func (v *{{$V}}) InsertRange(pos int, first, last {{$C}}) {{$I}} {
	v.mustPos(pos)
	_ = v.reserveExtra(first.Distance(last))
{{range .Fields}}	v.c{{.}}.InsertSlice(pos, first.c{{.}}.Span(last.c{{.}}))
{{end}}	v.touch()
	return v.iterAt(pos)
}

// InsertRecords places records before position pos, keeping their order,
// and returns an iterator to the first inserted record.
func (v *{{$V}}) InsertRecords(pos int, records ...{{$TU}}) {{$I}} {
	v.mustPos(pos)
	_ = v.reserveExtra(len(records))
	for j, r := range records {
{{range .Fields}}		v.c{{.}}.Insert(pos+j, r.V{{.}})
{{end}}	}
	v.touch()
	return v.iterAt(pos)
}

// Emplace places a record built from the given fields before position pos
// and returns an iterator to it.
func (v *{{$V}}) Emplace(pos int, {{list "v%[1]d T%[1]d" .Fields}}) {{$I}} {
	v.mustPos(pos)
{{range .Fields}}	v.c{{.}}.Insert(pos, v{{.}})
{{end}}	v.touch()
	return v.iterAt(pos)
}

// Erase removes record pos and returns an iterator to the record that
// followed it.
func (v *{{$V}}) Erase(pos int) {{$I}} {
	v.mustRange(pos, pos+1)
	v.erase(pos, pos+1)
	return v.iterAt(pos)
}

// EraseRange removes records [first, last) and returns an iterator to the
// record that followed them.
func (v *{{$V}}) EraseRange(first, last int) {{$I}} {
	v.mustRange(first, last)
	v.erase(first, last)
	return v.iterAt(first)
}

// Swap exchanges the contents of v and o column by column. No record is
// copied.
func (v *{{$V}}) Swap(o *{{$V}}) {
	v.swap(&o.table)
}

// Swap{{.N}} exchanges the contents of a and b.
func Swap{{.N}}[{{$D}}](a, b *{{$V}}) {
	a.Swap(b)
}

// Begin returns an iterator at the first record.
func (v *{{$V}}) Begin() {{$I}} { return v.iterAt(0) }

// End returns the one-past-the-last iterator.
func (v *{{$V}}) End() {{$I}} { return v.iterAt(v.Len()) }

// CBegin returns a read-only iterator at the first record.
func (v *{{$V}}) CBegin() {{$C}} { return v.Begin().Const() }

// CEnd returns the one-past-the-last read-only iterator.
func (v *{{$V}}) CEnd() {{$C}} { return v.End().Const() }

func (v *{{$V}}) iterAt(k int) {{$I}} {
	return {{$I}}{
		owner: &v.table,
		gen:   v.gen,
{{range .Fields}}		c{{.}}: v.c{{.}}.IterAt(k),
{{end}}	}
}

// All iterates over mutable views of every record in index order.
func (v *{{$V}}) All() iter.Seq2[int, {{$RF}}] {
	return func(yield func(int, {{$RF}}) bool) {
		for k := range v.Len() {
			if !yield(k, v.Index(k)) {
				return
			}
		}
	}
}
{{range .Fields}}
// Column{{.}} returns the live storage of field {{.}}. It is the fast path for
// single-field scans and is invalidated like any other view.
func (v *{{$V}}) Column{{.}}() []T{{.}} { return v.c{{.}}.Slice() }
{{end}}
// Iterator{{.N}} is a bidirectional iterator over a Vector{{.N}}. Its position is one
// cursor per column; every move advances all of them in field order.
{{template "iterator" (spec . true)}}
// ConstIterator{{.N}} is the read-only counterpart of Iterator{{.N}}.
{{template "iterator" (spec . false)}}`))

func init() {
	template.Must(vectorTemplate.New("iterator").Parse(`
{{- $A := .Arity}}{{$D := tpd $A.Fields}}{{$name := .Name -}}
type {{.Base}}[{{$D}}] struct {
	owner *table
	gen   uint64
{{range $A.Fields}}	c{{.}} column.Iter[T{{.}}]
{{end}}}

// Next moves to the following record.
func (it *{{$name}}) Next() {
{{range $A.Fields}}	it.c{{.}}.Next()
{{end}}}

// Prev moves to the preceding record.
func (it *{{$name}}) Prev() {
{{range $A.Fields}}	it.c{{.}}.Prev()
{{end}}}

// PostNext moves to the following record and returns the position before
// the move.
func (it *{{$name}}) PostNext() {{$name}} {
	old := *it
	it.Next()
	return old
}

// PostPrev moves to the preceding record and returns the position before
// the move.
func (it *{{$name}}) PostPrev() {{$name}} {
	old := *it
	it.Prev()
	return old
}

// Advance returns a copy of it moved by n records; n may be negative.
func (it {{$name}}) Advance(n int) {{$name}} {
{{range $A.Fields}}	it.c{{.}}.Advance(n)
{{end}}	return it
}
{{if .Mutable}}
// Get returns a mutable view of the current record.
func (it {{$name}}) Get() {{.Get}} {
	return {{.Get}}{ {{- list "P%[1]d: it.c%[1]d.Ptr()" $A.Fields -}} }
}
{{else}}
// Get returns a read-only view of the current record.
func (it {{$name}}) Get() {{.Get}} {
	return record.NewView{{$A.N}}({{list "it.c%[1]d.Ptr()" $A.Fields}})
}
{{end}}
// Equal reports whether both iterators address the same record of the same
// container.
func (it {{$name}}) Equal(o {{$name}}) bool {
	return {{ands "it.c%[1]d.Equal(o.c%[1]d)" $A.Fields}}
}

// Distance returns the signed number of records from it to last.
func (it {{$name}}) Distance(last {{$name}}) int { return it.c0.Distance(last.c0) }

// Index returns the logical position of it.
func (it {{$name}}) Index() int { return it.c0.Index() }

// Valid reports whether the container has not been restructured since it
// was obtained.
func (it {{$name}}) Valid() bool { return it.owner != nil && it.owner.gen == it.gen }

func (it {{$name}}) synced() bool {
	return {{if gt $A.N 1}}{{ands "it.c%[1]d.Index() == it.c0.Index()" (tail $A.Fields)}}{{else}}true{{end}}
}
{{if .Mutable}}
// Const returns the read-only iterator at the same position.
func (it {{$name}}) Const() {{.C}} {
	return {{.C}}{
		owner: it.owner,
		gen:   it.gen,
{{range $A.Fields}}		c{{.}}: it.c{{.}},
{{end}}	}
}
{{end}}`))
}

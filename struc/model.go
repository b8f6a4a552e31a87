package struc

import (
	"fmt"
	"go/token"
	"go/types"
)

type TagName = string
type FieldName = string

type Shape int

const (
	Record Shape = iota
	Union
)

// Model is the parsed form of one annotated type: either a record (struct)
// with its fields or a union (interface) with its variants.
type Model struct {
	TypeName string
	Package  Package
	FilePath string
	Shape    Shape
	Typ      *types.Named
	Fields   []Field   // populated for records
	Variants []Variant // populated for unions

	// ScopeNames are the identifiers already declared in the package,
	// used to keep generated names collision free.
	ScopeNames []string
}

type Package struct {
	Name string
	Path string
}

// Variant is one member type of a union.
type Variant struct {
	Name   string
	Typ    *types.Named
	Fields []Field
}

type Field struct {
	Name     FieldName
	Typ      types.Type
	Embedded bool
	Tag      string // raw struct tag, kept verbatim for untouched fields
	Pos      token.Position
	Flat     *FlatTag // nil if the field carries no flattening annotation
}

// FlatTag is one extracted flattening annotation together with the leaf
// customizations that must be relocated to the innermost chain link.
type FlatTag struct {
	Path     []string // ordered nesting keys, len >= 1, verbatim
	LeafName string   // pre-existing json rename, overrides the last path key
	LeafOpts []string // pre-existing json options (omitempty, string, ...)
	Rest     string   // remaining tag keys of the field, re-rendered
}

func (m *Model) Annotated() int {
	n := 0
	for i := range m.Fields {
		if m.Fields[i].Flat != nil {
			n++
		}
	}
	for v := range m.Variants {
		for i := range m.Variants[v].Fields {
			if m.Variants[v].Fields[i].Flat != nil {
				n++
			}
		}
	}
	return n
}

type DiagnosticKind string

const (
	DuplicateAnnotation      DiagnosticKind = "DuplicateAnnotation"
	EmptyPath                DiagnosticKind = "EmptyPath"
	UnnamedFieldNotSupported DiagnosticKind = "UnnamedFieldNotSupported"
	UnsupportedShape         DiagnosticKind = "UnsupportedShape"
)

// Diagnostic is a generation time error attached to the offending source
// construct. Generation aborts on the first one, nothing is emitted.
type Diagnostic struct {
	Kind DiagnosticKind
	Pos  token.Position
	msg  string
}

func Diag(kind DiagnosticKind, pos token.Position, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Kind: kind, Pos: pos, msg: fmt.Sprintf(format, args...)}
}

func (d *Diagnostic) Error() string {
	if d.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", d.Pos, d.msg)
	}
	return d.msg
}

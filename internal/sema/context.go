package sema

import (
	"fmt"

	"sdml/internal/ast"
	"sdml/internal/diag"
	"sdml/internal/source"
)

// Context is threaded through the walk. It carries the read-only index of
// all grouped declarations (relation and attribute checks must look
// sideways at models other than the one being visited), the error sink,
// and the current position in the tree.
//
// The position accessors panic when used out of order: "current field" is
// only valid inside a model, "current attribute" only inside a field.
// Violating that is a traversal defect, never a user input problem.
type Context struct {
	Decls *Declarations

	// Relations accumulates edges during the build pass; nil in validate
	// mode, which never touches the relation map.
	Relations *RelationMap

	reporter diag.Reporter

	model *ast.ModelDecl
	field *ast.FieldDecl
	attr  *ast.Attribute
}

func newContext(decls *Declarations, reporter diag.Reporter, relations *RelationMap) *Context {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Context{
		Decls:     decls,
		Relations: relations,
		reporter:  reporter,
	}
}

// Report accumulates an error and lets the traversal continue.
func (cx *Context) Report(code diag.Code, span source.Span, format string, args ...any) {
	cx.reporter.Report(code, diag.SevError, span, fmt.Sprintf(format, args...), nil)
}

// ReportWithNote accumulates an error carrying one secondary span.
func (cx *Context) ReportWithNote(code diag.Code, span source.Span, noteSpan source.Span, noteMsg, format string, args ...any) {
	diag.ReportError(cx.reporter, code, span, fmt.Sprintf(format, args...)).
		WithNote(noteSpan, noteMsg).
		Emit()
}

// Model returns the model currently being visited.
func (cx *Context) Model() *ast.ModelDecl {
	if cx.model == nil {
		panic("sema: model context used outside a model")
	}
	return cx.model
}

// Field returns the field currently being visited.
func (cx *Context) Field() *ast.FieldDecl {
	if cx.field == nil {
		panic("sema: field context used outside a field")
	}
	return cx.field
}

// Attribute returns the attribute currently being inspected.
func (cx *Context) Attribute() *ast.Attribute {
	if cx.attr == nil {
		panic("sema: attribute context used outside an attribute")
	}
	return cx.attr
}

// FieldTarget returns the model the current field points at, either through
// its unresolved type spelling or through its resolved relation edge. Nil
// for non-relation fields.
func (cx *Context) FieldTarget() *ast.ModelDecl {
	field := cx.Field()
	var name string
	switch field.Type.Type.Kind() {
	case ast.TypeUnknown:
		name = field.Type.Type.Name().Text
	case ast.TypeRelation:
		name = field.Type.Type.Relation().ReferencedModel.Text
	default:
		return nil
	}
	return cx.Decls.Models[name]
}

func (cx *Context) pushModel(m *ast.ModelDecl) {
	cx.model = m
}

func (cx *Context) popModel() {
	cx.model = nil
}

func (cx *Context) pushField(f *ast.FieldDecl) {
	if cx.model == nil {
		panic("sema: field pushed outside a model")
	}
	cx.field = f
}

func (cx *Context) popField() {
	cx.field = nil
}

func (cx *Context) pushAttr(a *ast.Attribute) {
	if cx.field == nil {
		panic("sema: attribute pushed outside a field")
	}
	cx.attr = a
}

func (cx *Context) popAttr() {
	cx.attr = nil
}

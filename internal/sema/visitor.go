package sema

import (
	"sdml/internal/ast"
)

// Visitor is the hook interface shared by all analysis passes. A pass
// implements the hooks it cares about (usually by embedding NopVisitor) and
// stays decoupled from every other pass; the walk chains an ordered list of
// visitors and invokes each hook in sequence at every node, so N passes
// cost one traversal.
type Visitor interface {
	EnterDeclarations(cx *Context)
	ExitDeclarations(cx *Context)
	VisitConfig(cx *Context, cfg *ast.ConfigDecl)
	VisitEnum(cx *Context, enum *ast.EnumDecl)
	EnterModel(cx *Context, model *ast.ModelDecl)
	ExitModel(cx *Context, model *ast.ModelDecl)
	EnterField(cx *Context, field *ast.FieldDecl)
	ExitField(cx *Context, field *ast.FieldDecl)
	VisitAttribute(cx *Context, attr *ast.Attribute)
}

// NopVisitor implements every hook as a no-op; passes embed it and override
// only what they need.
type NopVisitor struct{}

func (NopVisitor) EnterDeclarations(*Context)                 {}
func (NopVisitor) ExitDeclarations(*Context)                  {}
func (NopVisitor) VisitConfig(*Context, *ast.ConfigDecl)      {}
func (NopVisitor) VisitEnum(*Context, *ast.EnumDecl)          {}
func (NopVisitor) EnterModel(*Context, *ast.ModelDecl)        {}
func (NopVisitor) ExitModel(*Context, *ast.ModelDecl)         {}
func (NopVisitor) EnterField(*Context, *ast.FieldDecl)        {}
func (NopVisitor) ExitField(*Context, *ast.FieldDecl)         {}
func (NopVisitor) VisitAttribute(*Context, *ast.Attribute)    {}

// chain fans every hook out to an ordered list of visitors.
type chain []Visitor

func (c chain) EnterDeclarations(cx *Context) {
	for _, v := range c {
		v.EnterDeclarations(cx)
	}
}

func (c chain) ExitDeclarations(cx *Context) {
	for _, v := range c {
		v.ExitDeclarations(cx)
	}
}

func (c chain) VisitConfig(cx *Context, cfg *ast.ConfigDecl) {
	for _, v := range c {
		v.VisitConfig(cx, cfg)
	}
}

func (c chain) VisitEnum(cx *Context, enum *ast.EnumDecl) {
	for _, v := range c {
		v.VisitEnum(cx, enum)
	}
}

func (c chain) EnterModel(cx *Context, model *ast.ModelDecl) {
	for _, v := range c {
		v.EnterModel(cx, model)
	}
}

func (c chain) ExitModel(cx *Context, model *ast.ModelDecl) {
	for _, v := range c {
		v.ExitModel(cx, model)
	}
}

func (c chain) EnterField(cx *Context, field *ast.FieldDecl) {
	for _, v := range c {
		v.EnterField(cx, field)
	}
}

func (c chain) ExitField(cx *Context, field *ast.FieldDecl) {
	for _, v := range c {
		v.ExitField(cx, field)
	}
}

func (c chain) VisitAttribute(cx *Context, attr *ast.Attribute) {
	for _, v := range c {
		v.VisitAttribute(cx, attr)
	}
}

package ast

import (
	"sdml/internal/source"
	"sdml/internal/token"
)

// AttrArgKind identifies the shape of an attribute argument.
type AttrArgKind uint8

const (
	// ArgNamed is a named-argument list: @relation(name: "x", field: y).
	ArgNamed AttrArgKind = iota
	// ArgFunc is a function-call-shaped marker: @default(auto()).
	ArgFunc
	// ArgIdent is a bare identifier: @default(ADMIN).
	ArgIdent
)

// NamedArg is a single `name: value` pair inside a named-argument list.
type NamedArg struct {
	Name  token.Token
	Value token.Token
}

// AttrArg is the argument of an attribute, one of three shapes.
type AttrArg struct {
	Kind  AttrArgKind
	Span  source.Span
	Named []NamedArg  // ArgNamed
	Func  token.Token // ArgFunc: the function name
	Ident token.Token // ArgIdent
}

// NamedArgNames returns the argument names of a named-argument list in
// declaration order.
func (a *AttrArg) NamedArgNames() []string {
	names := make([]string, 0, len(a.Named))
	for _, na := range a.Named {
		names = append(names, na.Name.Text)
	}
	return names
}

// Named lookup by argument name; nil if absent.
func (a *AttrArg) NamedArg(name string) *NamedArg {
	for i := range a.Named {
		if a.Named[i].Name.Text == name {
			return &a.Named[i]
		}
	}
	return nil
}

// Attribute is a `@name` or `@name(arg)` marker on a field.
type Attribute struct {
	Name token.Token
	Span source.Span
	Arg  *AttrArg // nil when the attribute has no argument
}

// IsRelation reports whether this is a relation-shaped attribute.
func (a *Attribute) IsRelation() bool {
	return a.Name.Text == AttrRelation
}

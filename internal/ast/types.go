package ast

import (
	"fmt"

	"sdml/internal/token"
)

// TypeKind identifies the variant held by a Type cell.
type TypeKind uint8

const (
	// TypeUnknown is an unresolved non-primitive spelling. The only mutable
	// variant: the semantic build pass resolves it exactly once.
	TypeUnknown TypeKind = iota
	// TypePrimitive is a built-in scalar type.
	TypePrimitive
	// TypeEnum references a declared enumeration.
	TypeEnum
	// TypeRelation references another model through a relation edge.
	TypeRelation
)

// Type is the type value of a field. Primitive types are fixed by the
// parser; everything else starts as Unknown(name) and is resolved in place
// by the semantic build pass. The cell is write-once: the resolver is the
// single writer, and a second write panics because it can only come from a
// traversal defect, never from user input.
type Type struct {
	kind TypeKind
	name token.Token
	prim PrimitiveKind
	rel  *RelationEdge
}

// NewUnknownType wraps a non-primitive type spelling for later resolution.
func NewUnknownType(name token.Token) *Type {
	return &Type{kind: TypeUnknown, name: name}
}

// NewPrimitiveType builds a resolved primitive type cell.
func NewPrimitiveType(kind PrimitiveKind, name token.Token) *Type {
	return &Type{kind: TypePrimitive, name: name, prim: kind}
}

// Kind returns the current variant of the cell.
func (t *Type) Kind() TypeKind { return t.kind }

// Name returns the type's name token: the unresolved spelling for Unknown,
// the primitive spelling, or the enum name.
func (t *Type) Name() token.Token { return t.name }

// Primitive returns the primitive kind; valid only for TypePrimitive.
func (t *Type) Primitive() PrimitiveKind { return t.prim }

// Relation returns the relation edge; nil unless Kind is TypeRelation.
func (t *Type) Relation() *RelationEdge { return t.rel }

// ResolveEnum transitions Unknown → Enum.
func (t *Type) ResolveEnum(name token.Token) {
	t.mustBeUnknown()
	t.kind = TypeEnum
	t.name = name
}

// ResolveRelation transitions Unknown → Relation.
func (t *Type) ResolveRelation(edge *RelationEdge) {
	t.mustBeUnknown()
	t.kind = TypeRelation
	t.rel = edge
}

func (t *Type) mustBeUnknown() {
	if t.kind != TypeUnknown {
		panic(fmt.Sprintf("type cell %q resolved twice", t.name.Text))
	}
}

func (t *Type) String() string {
	switch t.kind {
	case TypePrimitive:
		return t.prim.String()
	case TypeEnum:
		return t.name.Text
	case TypeRelation:
		return t.rel.ReferencedModel.Text
	default:
		return fmt.Sprintf("?%s", t.name.Text)
	}
}

package ast

import (
	"sdml/internal/source"
	"sdml/internal/token"
)

// Arity is the modifier attached to a field type.
type Arity uint8

const (
	// NonOptional is a plain required field.
	NonOptional Arity = iota
	// Optional marks a `Type?` field.
	Optional
	// Array marks a `Type[]` field.
	Array
)

func (a Arity) String() string {
	switch a {
	case NonOptional:
		return "required"
	case Optional:
		return "optional"
	case Array:
		return "array"
	}
	return "unknown"
}

// FieldType pairs a type value with its arity modifier.
type FieldType struct {
	Type  *Type
	Arity Arity
}

// FieldDecl is a single field of a model: name, type, and attributes.
type FieldDecl struct {
	Name  token.Token
	Type  FieldType
	Attrs []*Attribute
	Span  source.Span
}

// Attr returns the first attribute with the given name, or nil.
func (f *FieldDecl) Attr(name string) *Attribute {
	for _, a := range f.Attrs {
		if a.Name.Text == name {
			return a
		}
	}
	return nil
}

// HasAttr reports whether the field carries an attribute with the given name.
func (f *FieldDecl) HasAttr(name string) bool {
	return f.Attr(name) != nil
}

// IsScalar reports whether the field is primitive- or enum-typed and not an
// array. Unknown fields are not scalar until resolved.
func (f *FieldDecl) IsScalar() bool {
	if f.Type.Arity == Array {
		return false
	}
	switch f.Type.Type.Kind() {
	case TypePrimitive, TypeEnum:
		return true
	default:
		return false
	}
}

// IsUnique reports whether the field is declared @unique or @id.
// Identifier fields are unique by construction.
func (f *FieldDecl) IsUnique() bool {
	return f.HasAttr(AttrUnique) || f.HasAttr(AttrID)
}

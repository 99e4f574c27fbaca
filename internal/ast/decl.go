package ast

import (
	"sdml/internal/source"
	"sdml/internal/token"
)

// Declaration is a top-level schema declaration: config, enum, or model.
type Declaration interface {
	// DeclName returns the declaration's name token.
	DeclName() token.Token
	// DeclSpan returns the span of the whole declaration.
	DeclSpan() source.Span

	declNode()
}

// ConfigEntry is a single `key = literal` pair inside a config block.
type ConfigEntry struct {
	Key   token.Token
	Value token.Token
}

// ConfigDecl is a named configuration block.
type ConfigDecl struct {
	Name    token.Token
	Span    source.Span
	Entries []ConfigEntry
}

func (c *ConfigDecl) DeclName() token.Token { return c.Name }
func (c *ConfigDecl) DeclSpan() source.Span { return c.Span }
func (c *ConfigDecl) declNode()             {}

// EnumDecl is a named enumeration with its declared values.
type EnumDecl struct {
	Name   token.Token
	Span   source.Span
	Values []token.Token
}

func (e *EnumDecl) DeclName() token.Token { return e.Name }
func (e *EnumDecl) DeclSpan() source.Span { return e.Span }
func (e *EnumDecl) declNode()             {}

// HasValue reports whether the enum declares the given value.
func (e *EnumDecl) HasValue(name string) bool {
	for _, v := range e.Values {
		if v.Text == name {
			return true
		}
	}
	return false
}

// ModelDecl is a user-declared entity with its ordered fields.
type ModelDecl struct {
	Name   token.Token
	Span   source.Span
	Fields []*FieldDecl
}

func (m *ModelDecl) DeclName() token.Token { return m.Name }
func (m *ModelDecl) DeclSpan() source.Span { return m.Span }
func (m *ModelDecl) declNode()             {}

// Field returns the field with the given name, or nil.
func (m *ModelDecl) Field(name string) *FieldDecl {
	for _, f := range m.Fields {
		if f.Name.Text == name {
			return f
		}
	}
	return nil
}

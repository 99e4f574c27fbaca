package token

import (
	"sdml/internal/source"
)

// Token represents a single schema token with its location.
// Text holds the payload: the identifier spelling, the unquoted string
// value, or the literal digits as written.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Eq reports whether two tokens carry the same payload. Spans never
// participate in token equality: the same identifier spelled at two
// different locations is the same token for all semantic purposes.
func (t Token) Eq(other Token) bool {
	return t.Kind == other.Kind && t.Text == other.Text
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsKeyword reports whether the token is a schema keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwConfig, KwEnum, KwModel, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

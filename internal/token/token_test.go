package token

import (
	"testing"

	"sdml/internal/source"
)

func TestLookupKeyword(t *testing.T) {
	cases := map[string]Kind{
		"config": KwConfig,
		"enum":   KwEnum,
		"model":  KwModel,
		"true":   KwTrue,
		"false":  KwFalse,
		"User":   Ident,
		"Model":  Ident, // регистр имеет значение
		"":       Ident,
	}
	for text, want := range cases {
		if got := LookupKeyword(text); got != want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestTokenEqIgnoresSpan(t *testing.T) {
	a := Token{Kind: Ident, Text: "authorId", Span: source.Span{Start: 0, End: 8}}
	b := Token{Kind: Ident, Text: "authorId", Span: source.Span{Start: 40, End: 48}}
	if !a.Eq(b) {
		t.Fatal("same spelling at different locations must compare equal")
	}
	c := Token{Kind: Ident, Text: "authorID"}
	if a.Eq(c) {
		t.Fatal("different spellings must not compare equal")
	}
	d := Token{Kind: StringLit, Text: "authorId"}
	if a.Eq(d) {
		t.Fatal("different kinds must not compare equal")
	}
}

func TestTokenClassification(t *testing.T) {
	for _, k := range []Kind{IntLit, FloatLit, StringLit, KwTrue, KwFalse} {
		if !(Token{Kind: k}).IsLiteral() {
			t.Errorf("%v must be a literal", k)
		}
	}
	if (Token{Kind: Ident}).IsLiteral() {
		t.Error("identifier is not a literal")
	}
	if !(Token{Kind: Ident}).IsIdent() || (Token{Kind: KwModel}).IsIdent() {
		t.Error("IsIdent misbehaves")
	}
	if !(Token{Kind: KwModel}).IsKeyword() || (Token{Kind: IntLit}).IsKeyword() {
		t.Error("IsKeyword misbehaves")
	}
}

func TestKindString(t *testing.T) {
	if got := KwModel.String(); got != "'model'" {
		t.Errorf("KwModel.String() = %q", got)
	}
	if got := Ident.String(); got != "identifier" {
		t.Errorf("Ident.String() = %q", got)
	}
	if got := Kind(200).String(); got != "unknown" {
		t.Errorf("out-of-range kind must stringify as unknown, got %q", got)
	}
}

package parser

import (
	"fmt"

	"sdml/internal/ast"
	"sdml/internal/diag"
	"sdml/internal/token"
)

// parseConfig разбирает `config <name> { key = literal ... }`.
func (p *Parser) parseConfig() (ast.Declaration, bool) {
	kw := p.bump() // config

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken); !ok {
		return nil, false
	}

	cfg := &ast.ConfigDecl{Name: name}
	for !p.atAny(token.RBrace, token.EOF) {
		key, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
		if !ok {
			p.resyncBlock()
			break
		}
		if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken); !ok {
			p.resyncBlock()
			break
		}
		value := p.lx.Peek()
		if !value.IsLiteral() {
			p.report(diag.SynExpectConfigValue, value.Span,
				fmt.Sprintf("expected literal config value, found %s", value.Kind))
			p.resyncBlock()
			break
		}
		p.bump()
		cfg.Entries = append(cfg.Entries, ast.ConfigEntry{Key: key, Value: value})
	}

	rbrace, ok := p.expect(token.RBrace, diag.SynUnexpectedToken)
	if !ok {
		return nil, false
	}
	cfg.Span = kw.Span.Cover(rbrace.Span)
	return cfg, true
}

// parseEnum разбирает `enum <name> { VALUE ... }`.
func (p *Parser) parseEnum() (ast.Declaration, bool) {
	kw := p.bump() // enum

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken); !ok {
		return nil, false
	}

	enum := &ast.EnumDecl{Name: name}
	for !p.atAny(token.RBrace, token.EOF) {
		value := p.lx.Peek()
		if value.Kind != token.Ident {
			p.report(diag.SynExpectEnumValue, value.Span,
				fmt.Sprintf("expected enum value identifier, found %s", value.Kind))
			p.resyncBlock()
			break
		}
		p.bump()
		enum.Values = append(enum.Values, value)
	}

	rbrace, ok := p.expect(token.RBrace, diag.SynUnexpectedToken)
	if !ok {
		return nil, false
	}
	enum.Span = kw.Span.Cover(rbrace.Span)
	return enum, true
}

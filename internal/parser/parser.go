package parser

import (
	"fmt"
	"slices"

	"sdml/internal/ast"
	"sdml/internal/diag"
	"sdml/internal/lexer"
	"sdml/internal/source"
	"sdml/internal/token"
)

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	reporter diag.Reporter
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile scans and parses one schema file into its flat declaration list.
// No name resolution and no duplicate checking happens here; the output is
// exactly what the semantic analyzer expects as input.
func ParseFile(file *source.File, reporter diag.Reporter) []ast.Declaration {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	p := Parser{
		lx:       lexer.New(file, reporter),
		reporter: reporter,
	}
	return p.parseDeclarations()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) bump() token.Token {
	tok := p.lx.Next()
	p.lastSpan = tok.Span
	return tok
}

// expect потребляет токен ожидаемого типа или репортит диагностику.
func (p *Parser) expect(k token.Kind, code diag.Code) (token.Token, bool) {
	tok := p.lx.Peek()
	if tok.Kind != k {
		p.report(code, tok.Span, fmt.Sprintf("expected %s, found %s", k, tok.Kind))
		return tok, false
	}
	return p.bump(), true
}

func (p *Parser) report(code diag.Code, span source.Span, msg string) {
	p.reporter.Report(code, diag.SevError, span, msg, nil)
}

// parseDeclarations — основной цикл верхнего уровня: пока не EOF — parseDeclaration.
func (p *Parser) parseDeclarations() []ast.Declaration {
	var decls []ast.Declaration
	for !p.at(token.EOF) {
		decl, ok := p.parseDeclaration()
		if !ok {
			p.resyncTop()
			continue
		}
		decls = append(decls, decl)
	}
	return decls
}

// parseDeclaration выбирает по первому токену нужный распознаватель
// top-level конструкции.
func (p *Parser) parseDeclaration() (ast.Declaration, bool) {
	switch p.lx.Peek().Kind {
	case token.KwConfig:
		return p.parseConfig()
	case token.KwEnum:
		return p.parseEnum()
	case token.KwModel:
		return p.parseModel()
	default:
		p.report(diag.SynUnexpectedTopLevel, p.lx.Peek().Span,
			fmt.Sprintf("expected 'config', 'enum' or 'model', found %s", p.lx.Peek().Kind))
		return nil, false
	}
}

// resyncTop — восстановление после ошибки на верхнем уровне:
// прокручиваем до стартового токена следующей декларации или EOF.
func (p *Parser) resyncTop() {
	p.bump()
	for !p.atAny(token.EOF, token.KwConfig, token.KwEnum, token.KwModel) {
		p.bump()
	}
}

// resyncBlock прокручивает до закрывающей скобки блока (или EOF), чтобы
// одна испорченная строка не утащила за собой весь блок.
func (p *Parser) resyncBlock() {
	for !p.atAny(token.EOF, token.RBrace) {
		p.bump()
	}
}

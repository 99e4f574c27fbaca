package parser

import (
	"fmt"

	"sdml/internal/ast"
	"sdml/internal/diag"
	"sdml/internal/token"
)

// parseModel разбирает `model <name> { field ... }`.
func (p *Parser) parseModel() (ast.Declaration, bool) {
	kw := p.bump() // model

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken); !ok {
		return nil, false
	}

	model := &ast.ModelDecl{Name: name}
	for !p.atAny(token.RBrace, token.EOF) {
		field, ok := p.parseField()
		if !ok {
			p.resyncField()
			continue
		}
		model.Fields = append(model.Fields, field)
	}

	rbrace, ok := p.expect(token.RBrace, diag.SynUnexpectedToken)
	if !ok {
		return nil, false
	}
	model.Span = kw.Span.Cover(rbrace.Span)
	return model, true
}

// parseField разбирает `name ':' Type ('?' | '[]')? attribute*`.
func (p *Parser) parseField() (*ast.FieldDecl, bool) {
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken); !ok {
		return nil, false
	}

	typeTok, ok := p.expect(token.Ident, diag.SynExpectType)
	if !ok {
		return nil, false
	}

	// Примитивы фиксируются сразу; всё прочее остаётся Unknown до sema.
	var typ *ast.Type
	if prim, isPrim := ast.LookupPrimitive(typeTok.Text); isPrim {
		typ = ast.NewPrimitiveType(prim, typeTok)
	} else {
		typ = ast.NewUnknownType(typeTok)
	}

	arity := ast.NonOptional
	switch {
	case p.at(token.Question):
		p.bump()
		arity = ast.Optional
	case p.at(token.LBracket):
		p.bump()
		if _, ok := p.expect(token.RBracket, diag.SynUnexpectedToken); !ok {
			return nil, false
		}
		arity = ast.Array
	}

	field := &ast.FieldDecl{
		Name: name,
		Type: ast.FieldType{Type: typ, Arity: arity},
	}

	for p.at(token.At) {
		attr, ok := p.parseAttribute()
		if !ok {
			return nil, false
		}
		field.Attrs = append(field.Attrs, attr)
	}

	field.Span = name.Span.Cover(p.lastSpan)
	return field, true
}

// resyncField — восстановление после испорченного поля: съедаем токен
// виновника и крутим до правдоподобного начала следующего поля либо '}'.
func (p *Parser) resyncField() {
	if !p.atAny(token.EOF, token.RBrace) {
		p.bump()
	}
	for !p.atAny(token.EOF, token.RBrace, token.Ident) {
		p.bump()
	}
}

// parseAttribute разбирает `'@' ident arg?` где arg — один из
// `(name: value, ...)`, `(ident())`, `(ident)`.
func (p *Parser) parseAttribute() (*ast.Attribute, bool) {
	at := p.bump() // @

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		return nil, false
	}

	attr := &ast.Attribute{Name: name, Span: at.Span.Cover(name.Span)}
	if !p.at(token.LParen) {
		return attr, true
	}
	p.bump() // (

	arg, ok := p.parseAttrArg()
	if !ok {
		return nil, false
	}

	rparen, ok := p.expect(token.RParen, diag.SynUnexpectedToken)
	if !ok {
		return nil, false
	}
	arg.Span = at.Span.Cover(rparen.Span)
	attr.Arg = arg
	attr.Span = at.Span.Cover(rparen.Span)
	return attr, true
}

func (p *Parser) parseAttrArg() (*ast.AttrArg, bool) {
	first := p.lx.Peek()

	// true/false без скобок вокруг — голый идентификаторный аргумент
	if first.Kind == token.KwTrue || first.Kind == token.KwFalse {
		p.bump()
		return &ast.AttrArg{Kind: ast.ArgIdent, Ident: first}, true
	}

	if first.Kind != token.Ident {
		p.report(diag.SynExpectAttributeArg, first.Span,
			fmt.Sprintf("expected attribute argument, found %s", first.Kind))
		return nil, false
	}
	p.bump()

	switch {
	case p.at(token.LParen):
		// функциональный маркер: ident()
		p.bump()
		if _, ok := p.expect(token.RParen, diag.SynExpectAttributeArg); !ok {
			return nil, false
		}
		return &ast.AttrArg{Kind: ast.ArgFunc, Func: first}, true

	case p.at(token.Colon):
		// список именованных аргументов: first уже съеден как первое имя
		return p.parseNamedArgs(first)

	default:
		return &ast.AttrArg{Kind: ast.ArgIdent, Ident: first}, true
	}
}

func (p *Parser) parseNamedArgs(firstName token.Token) (*ast.AttrArg, bool) {
	arg := &ast.AttrArg{Kind: ast.ArgNamed}
	name := firstName

	for {
		if _, ok := p.expect(token.Colon, diag.SynExpectAttributeArg); !ok {
			return nil, false
		}
		value := p.lx.Peek()
		if value.Kind != token.Ident && !value.IsLiteral() {
			p.report(diag.SynExpectAttributeArg, value.Span,
				fmt.Sprintf("expected argument value, found %s", value.Kind))
			return nil, false
		}
		p.bump()
		arg.Named = append(arg.Named, ast.NamedArg{Name: name, Value: value})

		if !p.at(token.Comma) {
			return arg, true
		}
		p.bump() // ,

		next, ok := p.expect(token.Ident, diag.SynExpectAttributeArg)
		if !ok {
			return nil, false
		}
		name = next
	}
}

package lexer

import (
	"sdml/internal/diag"
	"sdml/internal/token"
)

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDec(ch)
}

func isDec(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	mark := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	span := lx.cursor.SpanFrom(mark)
	text := string(lx.file.Content[span.Start:span.End])
	return token.Token{
		Kind: token.LookupKeyword(text),
		Span: span,
		Text: text,
	}
}

func (lx *Lexer) scanNumber() token.Token {
	mark := lx.cursor.Mark()
	kind := token.IntLit

	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть: '.' за которой цифра
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump()
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// число, срастающееся с идентификатором — ошибка ("12abc")
	if !lx.cursor.EOF() && isIdentStart(lx.cursor.Peek()) {
		for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		span := lx.cursor.SpanFrom(mark)
		text := string(lx.file.Content[span.Start:span.End])
		lx.reporter.Report(diag.LexBadNumber, diag.SevError, span,
			"malformed numeric literal '"+text+"'", nil)
		return token.Token{Kind: token.Invalid, Span: span, Text: text}
	}

	span := lx.cursor.SpanFrom(mark)
	return token.Token{
		Kind: kind,
		Span: span,
		Text: string(lx.file.Content[span.Start:span.End]),
	}
}

func (lx *Lexer) scanString() token.Token {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка

	var value []byte
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			span := lx.cursor.SpanFrom(mark)
			lx.reporter.Report(diag.LexUnterminatedString, diag.SevError, span,
				"unterminated string literal", nil)
			return token.Token{Kind: token.Invalid, Span: span, Text: string(value)}
		}
		ch := lx.cursor.Bump()
		if ch == '"' {
			break
		}
		if ch == '\\' && !lx.cursor.EOF() {
			// поддерживаем только \" и \\
			next := lx.cursor.Bump()
			switch next {
			case '"', '\\':
				value = append(value, next)
			default:
				value = append(value, ch, next)
			}
			continue
		}
		value = append(value, ch)
	}

	return token.Token{
		Kind: token.StringLit,
		Span: lx.cursor.SpanFrom(mark),
		Text: string(value), // payload без кавычек
	}
}

var punctKinds = map[byte]token.Kind{
	'@': token.At,
	':': token.Colon,
	',': token.Comma,
	'=': token.Assign,
	'?': token.Question,
	'.': token.Dot,
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
}

func (lx *Lexer) scanPunct() token.Token {
	mark := lx.cursor.Mark()
	ch := lx.cursor.Bump()
	span := lx.cursor.SpanFrom(mark)

	if kind, ok := punctKinds[ch]; ok {
		return token.Token{Kind: kind, Span: span, Text: string(ch)}
	}

	lx.reporter.Report(diag.LexUnknownChar, diag.SevError, span,
		"unknown character '"+string(ch)+"'", nil)
	return token.Token{Kind: token.Invalid, Span: span, Text: string(ch)}
}

package lexer

import (
	"github.com/scientificaj/icl/internal/token"
)

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func (lx *Lexer) scanIdent() token.Token {
	m := lx.cur.Mark()
	for !lx.cur.EOF() && isIdentCont(lx.cur.Peek()) {
		lx.cur.Bump()
	}
	span := lx.cur.SpanFrom(m)
	lexeme := lx.cur.File.Text(span)
	kind := token.Ident
	if k, ok := token.Keywords[lexeme]; ok {
		kind = k
	}
	return token.Token{Kind: kind, Lexeme: lexeme, Span: span}
}

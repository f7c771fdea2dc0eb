package lexer

import "github.com/scientificaj/icl/internal/token"

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// scanNumber consumes one or more digits, optionally followed by a '.' and
// more digits. The decimal point is only consumed when followed by a digit
// (spec.md §4.1), so that "1.." (a range) never eats the range operator.
func (lx *Lexer) scanNumber() token.Token {
	m := lx.cur.Mark()
	for !lx.cur.EOF() && isDigit(lx.cur.Peek()) {
		lx.cur.Bump()
	}
	kind := token.IntLit
	if lx.cur.Peek() == '.' && isDigit(lx.cur.PeekAt(1)) {
		kind = token.FloatLit
		lx.cur.Bump() // '.'
		for !lx.cur.EOF() && isDigit(lx.cur.Peek()) {
			lx.cur.Bump()
		}
	}
	span := lx.cur.SpanFrom(m)
	return token.Token{Kind: kind, Lexeme: lx.cur.File.Text(span), Span: span}
}

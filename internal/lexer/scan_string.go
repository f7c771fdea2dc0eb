package lexer

import (
	"strings"

	"github.com/scientificaj/icl/internal/diag"
	"github.com/scientificaj/icl/internal/token"
)

// scanString consumes a double-quoted string literal with escapes \n \t \"
// \\; any other \x yields x verbatim (spec.md §4.1). Lexeme carries the
// unescaped, decoded value (the outer quotes are not included) — the raw
// quoted text is recoverable from the span if a pack needs it.
func (lx *Lexer) scanString() token.Token {
	m := lx.cur.Mark()
	lx.cur.Bump() // opening quote
	var b strings.Builder
	closed := false
	for !lx.cur.EOF() {
		c := lx.cur.Bump()
		if c == '"' {
			closed = true
			break
		}
		if c == '\\' {
			if lx.cur.EOF() {
				break
			}
			e := lx.cur.Bump()
			switch e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte(e)
			}
			continue
		}
		b.WriteByte(c)
	}
	span := lx.cur.SpanFrom(m)
	if !closed {
		lx.err(diag.New(diag.LexUnterminatedString, span, "unterminated string literal"))
	}
	return token.Token{Kind: token.StringLit, Lexeme: b.String(), Span: span}
}

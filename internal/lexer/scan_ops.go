package lexer

import (
	"github.com/scientificaj/icl/internal/diag"
	"github.com/scientificaj/icl/internal/token"
)

// twoCharOps must be tried before any single-character fallback (spec.md
// §4.1: "must be tried before single-character fallbacks").
var twoCharOps = map[[2]byte]token.Kind{
	{':', '='}: token.ColonEq,
	{'=', '>'}: token.Arrow,
	{'.', '.'}: token.DotDot,
	{'=', '='}: token.EqEq,
	{'!', '='}: token.NotEq,
	{'<', '='}: token.LtEq,
	{'>', '='}: token.GtEq,
	{'&', '&'}: token.AndAnd,
	{'|', '|'}: token.OrOr,
}

var oneCharOps = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	',': token.Comma,
	':': token.Colon,
	';': token.Semicolon,
	'@': token.At,
	'#': token.Hash,
	'?': token.Question,
	'!': token.Bang,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'<': token.Lt,
	'>': token.Gt,
	'=': token.Eq,
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	m := lx.cur.Mark()
	b0 := lx.cur.Peek()
	b1 := lx.cur.PeekAt(1)
	if kind, ok := twoCharOps[[2]byte{b0, b1}]; ok {
		lx.cur.Bump()
		lx.cur.Bump()
		span := lx.cur.SpanFrom(m)
		return token.Token{Kind: kind, Lexeme: lx.cur.File.Text(span), Span: span}
	}
	if kind, ok := oneCharOps[b0]; ok {
		lx.cur.Bump()
		span := lx.cur.SpanFrom(m)
		return token.Token{Kind: kind, Lexeme: lx.cur.File.Text(span), Span: span}
	}
	lx.cur.Bump()
	span := lx.cur.SpanFrom(m)
	lx.err(diag.New(diag.LexUnknownChar, span, "unknown character %q", string(b0)))
	return token.Token{Kind: token.Invalid, Lexeme: lx.cur.File.Text(span), Span: span}
}

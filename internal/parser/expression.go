package parser

import (
	"strconv"

	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/diag"
	"github.com/scientificaj/icl/internal/token"
)

// precedence table from spec.md §4.2: low to high.
func binPrec(k token.Kind) (int, ast.BinaryOp, bool) {
	switch k {
	case token.OrOr:
		return 1, ast.BinOr, true
	case token.AndAnd:
		return 2, ast.BinAnd, true
	case token.EqEq:
		return 3, ast.BinEq, true
	case token.NotEq:
		return 3, ast.BinNeq, true
	case token.Lt:
		return 4, ast.BinLt, true
	case token.LtEq:
		return 4, ast.BinLte, true
	case token.Gt:
		return 4, ast.BinGt, true
	case token.GtEq:
		return 4, ast.BinGte, true
	case token.Plus:
		return 5, ast.BinAdd, true
	case token.Minus:
		return 5, ast.BinSub, true
	case token.Star:
		return 6, ast.BinMul, true
	case token.Slash:
		return 6, ast.BinDiv, true
	case token.Percent:
		return 6, ast.BinMod, true
	default:
		return 0, 0, false
	}
}

// parseExpr climbs precedence starting above minPrec (Pratt/precedence
// climbing). Unary operators are handled inside parseUnary, which binds
// tighter than every binary operator; postfix call binds tighter still.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parseUnary()
	if left == nil {
		return nil
	}
	for {
		prec, op, ok := binPrec(p.peek().Kind)
		if !ok || prec <= minPrec {
			return left
		}
		p.advance()
		right := p.parseExpr(prec)
		if right == nil {
			return left
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, Sp: left.Span().Cover(right.Span())}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	switch p.peek().Kind {
	case token.Bang:
		start := p.advance().Span
		x := p.parseUnary()
		if x == nil {
			return nil
		}
		return &ast.UnaryExpr{Op: ast.UnaryNot, Operand: x, Sp: start.Cover(x.Span())}
	case token.Minus:
		start := p.advance().Span
		x := p.parseUnary()
		if x == nil {
			return nil
		}
		return &ast.UnaryExpr{Op: ast.UnaryNeg, Operand: x, Sp: start.Cover(x.Span())}
	case token.Plus:
		start := p.advance().Span
		x := p.parseUnary()
		if x == nil {
			return nil
		}
		return &ast.UnaryExpr{Op: ast.UnaryPos, Operand: x, Sp: start.Cover(x.Span())}
	default:
		return p.parsePostfix()
	}
}

func (p *Parser) parsePostfix() ast.Expr {
	x := p.parsePrimary()
	if x == nil {
		return nil
	}
	for p.at(token.LParen) {
		x = p.parseCallTail(x, false)
	}
	return x
}

func (p *Parser) parseCallTail(callee ast.Expr, atPrefixed bool) ast.Expr {
	p.advance() // '('
	var args []ast.Expr
	for !p.at(token.RParen) && !p.at(token.EOF) {
		arg := p.parseExpr(0)
		if arg != nil {
			args = append(args, arg)
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.RParen, ")").Span
	return &ast.CallExpr{Callee: callee, Args: args, AtPrefixed: atPrefixed, Sp: callee.Span().Cover(end)}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		n, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			n = 0
		}
		return &ast.LiteralExpr{Kind: ast.LitInt, Raw: tok.Lexeme, Int: n, Sp: tok.Span}
	case token.FloatLit:
		p.advance()
		f, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			f = 0
		}
		return &ast.LiteralExpr{Kind: ast.LitFloat, Raw: tok.Lexeme, Flt: f, Sp: tok.Span}
	case token.StringLit:
		p.advance()
		return &ast.LiteralExpr{Kind: ast.LitString, Raw: tok.Lexeme, Str: tok.Lexeme, Sp: tok.Span}
	case token.True:
		p.advance()
		return &ast.LiteralExpr{Kind: ast.LitBool, Bool: true, Sp: tok.Span}
	case token.False:
		p.advance()
		return &ast.LiteralExpr{Kind: ast.LitBool, Bool: false, Sp: tok.Span}
	case token.Ident:
		p.advance()
		return &ast.IdentExpr{Name: tok.Lexeme, Sp: tok.Span}
	case token.LParen:
		p.advance()
		inner := p.parseExpr(0)
		p.expect(token.RParen, ")")
		return inner
	case token.At:
		return p.parseAtCall()
	case token.KwFn:
		return p.parseLambda()
	default:
		p.errorf(diag.ParUnexpectedToken, tok.Span, "expected expression, found %s", tok.Kind)
		return nil
	}
}

// parseAtCall parses `@name(args)`, the at_call feature: an intent-marked
// call, structurally a CallExpr with AtPrefixed set.
func (p *Parser) parseAtCall() ast.Expr {
	start := p.advance().Span // '@'
	nameTok := p.expect(token.Ident, "function name")
	callee := &ast.IdentExpr{Name: nameTok.Lexeme, Sp: nameTok.Span}
	if !p.at(token.LParen) {
		p.errorf(diag.ParExpectedToken, p.peek().Span, "expected ( after @%s", nameTok.Lexeme)
		return &ast.CallExpr{Callee: callee, AtPrefixed: true, Sp: start.Cover(nameTok.Span)}
	}
	call := p.parseCallTail(callee, true)
	if ce, ok := call.(*ast.CallExpr); ok {
		ce.Sp = start.Cover(ce.Sp)
	}
	return call
}

// parseLambda parses the anonymous function expression form `fn(params) =>
// expr`. spec.md §3 lists "lambda" as an Expr kind without giving concrete
// syntax; this is the natural expression-level counterpart of the
// statement-level `fn name(params) => expr` form (see DESIGN.md).
func (p *Parser) parseLambda() ast.Expr {
	start := p.advance().Span // 'fn'
	params := p.parseParamList()
	p.expect(token.Arrow, "=>")
	body := p.parseExpr(0)
	end := start
	if body != nil {
		end = body.Span()
	}
	return &ast.LambdaExpr{Params: params, Body: body, Sp: start.Cover(end)}
}

package parser

import (
	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/diag"
	"github.com/scientificaj/icl/internal/token"
)

// parseStmt dispatches on the current token, recovering via synchronize()
// if the statement is malformed (spec.md §4.2).
func (p *Parser) parseStmt() ast.Stmt {
	before := p.pos
	var s ast.Stmt
	switch {
	case p.at(token.Hash):
		s = p.parseMacro()
	case p.at(token.KwFn):
		s = p.parseFn()
	case p.at(token.KwIf):
		s = p.parseIf()
	case p.at(token.KwLoop):
		s = p.parseLoop()
	case p.at(token.KwRet):
		s = p.parseRet()
	case p.isAssignmentStart():
		s = p.parseAssignment()
	default:
		s = p.parseExprStmt()
	}
	if p.pos == before {
		// No progress was made (likely a bad token at statement start);
		// force forward motion so the caller never loops forever.
		p.errorf(diag.ParUnexpectedToken, p.peek().Span, "unexpected token %s", p.peek().Kind)
		p.advance()
		return nil
	}
	p.consumeStmtSeparators()
	return s
}

func (p *Parser) consumeStmtSeparators() {
	for p.at(token.Semicolon) {
		p.advance()
	}
}

// isAssignmentStart recognizes `IDENT := …` or `IDENT : IDENT := …`.
func (p *Parser) isAssignmentStart() bool {
	if !p.at(token.Ident) {
		return false
	}
	if p.peekAt(1).Kind == token.ColonEq {
		return true
	}
	if p.peekAt(1).Kind == token.Colon && p.peekAt(2).Kind == token.Ident && p.peekAt(3).Kind == token.ColonEq {
		return true
	}
	return false
}

func (p *Parser) parseAssignment() ast.Stmt {
	name := p.advance()
	hasHint := false
	hint := ast.TypeUnknown
	if p.at(token.Colon) {
		p.advance()
		hintTok := p.expect(token.Ident, "type name")
		hint = ast.ParseType(hintTok.Lexeme)
		hasHint = true
	}
	p.expect(token.ColonEq, ":=")
	value := p.parseExpr(0)
	sp := name.Span
	if value != nil {
		sp = sp.Cover(value.Span())
	}
	return &ast.AssignStmt{Name: name.Lexeme, TypeHint: hint, HasHint: hasHint, Value: value, Sp: sp}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	start := p.peek().Span
	x := p.parseExpr(0)
	if x == nil {
		p.synchronize()
		return nil
	}
	return &ast.ExprStmt{X: x, Sp: start.Cover(x.Span())}
}

func (p *Parser) parseBlock() []ast.Stmt {
	p.expect(token.LBrace, "{")
	var stmts []ast.Stmt
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		before := p.pos
		s := p.parseStmt()
		if s != nil {
			stmts = append(stmts, s)
		}
		if p.pos == before {
			p.advance()
		}
	}
	p.expect(token.RBrace, "}")
	return stmts
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.advance().Span // 'if'
	cond := p.parseExpr(0)
	p.expect(token.Question, "?")
	then := p.parseBlock()
	var els []ast.Stmt
	end := p.toks[p.pos-1].Span
	if p.at(token.Colon) {
		p.advance()
		els = p.parseBlock()
		end = p.toks[p.pos-1].Span
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els, Sp: start.Cover(end)}
}

func (p *Parser) parseLoop() ast.Stmt {
	start := p.advance().Span // 'loop'
	iterTok := p.expect(token.Ident, "loop variable name")
	p.expect(token.KwIn, "in")
	from := p.parseExpr(0)
	p.expect(token.DotDot, "..")
	to := p.parseExpr(0)
	body := p.parseBlock()
	end := p.toks[p.pos-1].Span
	return &ast.LoopStmt{Iter: iterTok.Lexeme, Start: from, End: to, Body: body, Sp: start.Cover(end)}
}

func (p *Parser) parseRet() ast.Stmt {
	start := p.advance().Span // 'ret'
	var val ast.Expr
	end := start
	if !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) {
		val = p.parseExpr(0)
		if val != nil {
			end = val.Span()
		}
	}
	return &ast.RetStmt{Value: val, Sp: start.Cover(end)}
}

func (p *Parser) parseParamList() []ast.Param {
	p.expect(token.LParen, "(")
	var params []ast.Param
	for !p.at(token.RParen) && !p.at(token.EOF) {
		nameTok := p.expect(token.Ident, "parameter name")
		param := ast.Param{Name: nameTok.Lexeme, Sp: nameTok.Span}
		if p.at(token.Colon) {
			p.advance()
			hintTok := p.expect(token.Ident, "type name")
			param.TypeHint = ast.ParseType(hintTok.Lexeme)
			param.HasHint = true
			param.Sp = param.Sp.Cover(hintTok.Span)
		}
		params = append(params, param)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RParen, ")")
	return params
}

func (p *Parser) parseFn() ast.Stmt {
	start := p.advance().Span // 'fn'
	nameTok := p.expect(token.Ident, "function name")
	params := p.parseParamList()
	hasRet := false
	retType := ast.TypeUnknown
	if p.at(token.Colon) {
		p.advance()
		hintTok := p.expect(token.Ident, "return type")
		retType = ast.ParseType(hintTok.Lexeme)
		hasRet = true
	}
	fn := &ast.FnStmt{Name: nameTok.Lexeme, Params: params, ReturnType: retType, HasReturn: hasRet}
	switch {
	case p.at(token.Arrow):
		p.advance()
		fn.ExprBody = p.parseExpr(0)
		end := start
		if fn.ExprBody != nil {
			end = fn.ExprBody.Span()
		}
		fn.Sp = start.Cover(end)
	default:
		fn.Body = p.parseBlock()
		fn.Sp = start.Cover(p.toks[p.pos-1].Span)
	}
	return fn
}

func (p *Parser) parseMacro() ast.Stmt {
	start := p.advance().Span // '#'
	nameTok := p.expect(token.Ident, "macro name")
	p.expect(token.LParen, "(")
	var args []ast.Expr
	for !p.at(token.RParen) && !p.at(token.EOF) {
		args = append(args, p.parseExpr(0))
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.RParen, ")").Span
	return &ast.MacroStmt{Name: nameTok.Lexeme, Args: args, Sp: start.Cover(end)}
}

// Package parser builds an ast.Program from a token stream: recursive
// descent for statements, Pratt precedence climbing for expressions.
package parser

import (
	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/diag"
	"github.com/scientificaj/icl/internal/source"
	"github.com/scientificaj/icl/internal/token"
)

// Parser consumes a pre-scanned token slice (always ending in EOF) and
// produces an ast.Program, accumulating diagnostics in a Bag rather than
// aborting on the first syntax error — spec.md §4.2's synchronization rule.
type Parser struct {
	toks []token.Token
	pos  int
	fid  source.FileID
	bag  *diag.Bag
}

// New creates a Parser over toks, all of which must share fid.
func New(toks []token.Token, fid source.FileID) *Parser {
	return &Parser{toks: toks, fid: fid, bag: diag.NewBag(256)}
}

func (p *Parser) peek() token.Token { return p.toks[p.pos] }

func (p *Parser) peekAt(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[idx]
}

func (p *Parser) at(k token.Kind) bool { return p.peek().Kind == k }

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) emptySpanHere() source.Span {
	sp := p.peek().Span
	return source.Span{File: sp.File, Start: sp.Start, End: sp.Start}
}

func (p *Parser) errorf(code diag.Code, span source.Span, format string, args ...any) {
	e := diag.New(code, span, format, args...)
	p.bag.Add(e.Diag)
}

// expect consumes the current token if it has kind k; otherwise it records
// a ParExpectedToken diagnostic and returns the current (unconsumed) token
// so callers can keep building a partial node.
func (p *Parser) expect(k token.Kind, what string) token.Token {
	if p.at(k) {
		return p.advance()
	}
	p.errorf(diag.ParExpectedToken, p.peek().Span, "expected %s, found %s", what, p.peek().Kind)
	return p.peek()
}

// synchronize skips tokens until a statement boundary: ';', '}', or a
// statement-starting keyword (spec.md §4.2).
func (p *Parser) synchronize() {
	for !p.at(token.EOF) {
		switch p.peek().Kind {
		case token.Semicolon:
			p.advance()
			return
		case token.RBrace, token.KwFn, token.KwIf, token.KwLoop, token.KwRet, token.Hash:
			return
		}
		p.advance()
	}
}

// Bag returns the diagnostics accumulated while parsing.
func (p *Parser) Bag() *diag.Bag { return p.bag }

// ParseProgram parses the whole token stream into an ast.Program. Parse
// errors are collected in the Parser's Bag; ParseProgram itself never
// returns early on error (see Bag().ToError() for the raised form).
func (p *Parser) ParseProgram() *ast.Program {
	start := p.peek().Span
	var stmts []ast.Stmt
	for !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		s := p.parseStmt()
		if s != nil {
			stmts = append(stmts, s)
		}
	}
	end := p.peek().Span
	span := start.Cover(end)
	if len(stmts) > 0 {
		span = stmts[0].Span().Cover(stmts[len(stmts)-1].Span())
	}
	return &ast.Program{Stmts: stmts, Sp: span}
}

// Parse parses an already scanned token stream in one call, returning the
// program and any accumulated diagnostics.
func Parse(toks []token.Token, fid source.FileID) (*ast.Program, *diag.Bag) {
	p := New(toks, fid)
	prog := p.ParseProgram()
	return prog, p.Bag()
}

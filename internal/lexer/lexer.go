package lexer

import (
	"golang.org/x/text/unicode/norm"

	"github.com/scientificaj/icl/internal/diag"
	"github.com/scientificaj/icl/internal/source"
	"github.com/scientificaj/icl/internal/token"
)

// Lexer converts one registered source.File into a token stream. It is a
// single forward pass: no lookahead buffer beyond the one or two bytes
// peeked by each scanner, and no backtracking.
type Lexer struct {
	cur  Cursor
	errs *diag.Bag
}

// New registers src under name in fs (after NFC-normalizing it, so that
// identifiers compare equal independent of the input's Unicode
// normalization form) and returns a Lexer ready to scan it.
func New(fs *source.FileSet, name, src string) *Lexer {
	normalized := norm.NFC.String(src)
	file := fs.AddFile(name, normalized)
	return &Lexer{cur: NewCursor(file), errs: diag.NewBag(256)}
}

// NewForFile builds a Lexer over an already-registered file, without
// re-normalizing (used when the file was normalized at registration time).
func NewForFile(file *source.File) *Lexer {
	return &Lexer{cur: NewCursor(file), errs: diag.NewBag(256)}
}

// Errors returns the diagnostics accumulated while scanning (LEX001/LEX002).
func (lx *Lexer) Errors() *diag.Bag { return lx.errs }

func (lx *Lexer) err(e *diag.Error) { lx.errs.Add(e.Diag) }

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func (lx *Lexer) skipTrivia() {
	for !lx.cur.EOF() {
		b := lx.cur.Peek()
		switch {
		case isSpace(b):
			lx.cur.Bump()
		case b == '/' && lx.cur.PeekAt(1) == '/':
			for !lx.cur.EOF() && lx.cur.Peek() != '\n' {
				lx.cur.Bump()
			}
		default:
			return
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	end := lx.cur.File.Len()
	return source.Span{File: lx.cur.File.ID, Start: end, End: end}
}

// Next scans and returns the next token. Once EOF is reached it keeps
// returning an EOF token at the final position (spec.md §4.1).
func (lx *Lexer) Next() token.Token {
	lx.skipTrivia()
	if lx.cur.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	b := lx.cur.Peek()
	switch {
	case isIdentStart(b):
		return lx.scanIdent()
	case isDigit(b):
		return lx.scanNumber()
	case b == '.' && isDigit(lx.cur.PeekAt(1)):
		return lx.scanNumber()
	case b == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Tokenize scans the entire file and returns every token including the
// trailing EOF.
func (lx *Lexer) Tokenize() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

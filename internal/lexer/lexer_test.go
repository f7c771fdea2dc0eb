package lexer

import (
	"testing"

	"github.com/scientificaj/icl/internal/source"
	"github.com/scientificaj/icl/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexBasicAssignment(t *testing.T) {
	fs := source.NewFileSet()
	lx := New(fs, "a.icl", "x := 1 + 2;")
	toks := lx.Tokenize()
	want := []token.Kind{token.Ident, token.ColonEq, token.IntLit, token.Plus, token.IntLit, token.Semicolon, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if lx.Errors().Len() != 0 {
		t.Errorf("unexpected errors: %v", lx.Errors().Items())
	}
}

func TestLexMultiCharOpsGreedy(t *testing.T) {
	fs := source.NewFileSet()
	lx := New(fs, "a.icl", ":= => .. == != <= >= && ||")
	toks := lx.Tokenize()
	want := []token.Kind{
		token.ColonEq, token.Arrow, token.DotDot, token.EqEq, token.NotEq,
		token.LtEq, token.GtEq, token.AndAnd, token.OrOr, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexNumberDotRequiresDigit(t *testing.T) {
	fs := source.NewFileSet()
	lx := New(fs, "a.icl", "1..2")
	toks := lx.Tokenize()
	want := []token.Kind{token.IntLit, token.DotDot, token.IntLit, token.EOF}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestLexFloatLiteral(t *testing.T) {
	fs := source.NewFileSet()
	lx := New(fs, "a.icl", "3.14")
	toks := lx.Tokenize()
	if toks[0].Kind != token.FloatLit || toks[0].Lexeme != "3.14" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestLexStringEscapes(t *testing.T) {
	fs := source.NewFileSet()
	lx := New(fs, "a.icl", `"a\nb\t\"c\\d\x"`)
	toks := lx.Tokenize()
	want := "a\nb\t\"c\\d" + "x"
	if toks[0].Kind != token.StringLit || toks[0].Lexeme != want {
		t.Fatalf("got %q, want %q", toks[0].Lexeme, want)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	fs := source.NewFileSet()
	lx := New(fs, "a.icl", `"abc`)
	_ = lx.Tokenize()
	if lx.Errors().Len() != 1 {
		t.Fatalf("expected 1 error, got %d", lx.Errors().Len())
	}
	if lx.Errors().Items()[0].Code != "LEX002" {
		t.Errorf("got code %v", lx.Errors().Items()[0].Code)
	}
}

func TestLexUnknownChar(t *testing.T) {
	fs := source.NewFileSet()
	lx := New(fs, "a.icl", "x := 1 $ 2;")
	_ = lx.Tokenize()
	if lx.Errors().Len() != 1 || lx.Errors().Items()[0].Code != "LEX001" {
		t.Fatalf("expected LEX001, got %v", lx.Errors().Items())
	}
}

func TestLexLineComment(t *testing.T) {
	fs := source.NewFileSet()
	lx := New(fs, "a.icl", "x := 1 // comment\ny := 2;")
	toks := lx.Tokenize()
	want := []token.Kind{
		token.Ident, token.ColonEq, token.IntLit,
		token.Ident, token.ColonEq, token.IntLit, token.Semicolon, token.EOF,
	}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexKeywords(t *testing.T) {
	fs := source.NewFileSet()
	lx := New(fs, "a.icl", "fn if loop in ret true false")
	toks := lx.Tokenize()
	want := []token.Kind{token.KwFn, token.KwIf, token.KwLoop, token.KwIn, token.KwRet, token.True, token.False, token.EOF}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

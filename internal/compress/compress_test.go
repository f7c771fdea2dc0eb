package compress

import (
	"strings"
	"testing"

	"github.com/scientificaj/icl/internal/lexer"
	"github.com/scientificaj/icl/internal/parser"
	"github.com/scientificaj/icl/internal/source"
)

func encode(t *testing.T, src string) string {
	t.Helper()
	fs := source.NewFileSet()
	lx := lexer.New(fs, "t.icl", src)
	toks := lx.Tokenize()
	prog, bag := parser.Parse(toks, 0)
	if bag.HasErrors() {
		t.Fatalf("parse errors: %v", bag.Items())
	}
	return Encode(prog)
}

func TestEncodeSimpleAssignment(t *testing.T) {
	out := encode(t, "x := 1 + 2")
	if out != "x:=(1+2)\n" {
		t.Fatalf("unexpected encoding: %q", out)
	}
}

func TestEncodeTypedAssignment(t *testing.T) {
	out := encode(t, "x:Num := 1")
	if !strings.HasPrefix(out, "x:Num:=1") {
		t.Fatalf("unexpected encoding: %q", out)
	}
}

func TestEncodeIfElse(t *testing.T) {
	out := encode(t, "if x > 0 ? { ret 1 } : { ret 0 }")
	want := "if (x>0)?{ret 1}:{ret 0}\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestEncodeLoop(t *testing.T) {
	out := encode(t, "loop i in 0..10 { print(i) }")
	want := "loop i in 0..10{print(i)}\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestEncodeFnExprBody(t *testing.T) {
	out := encode(t, "fn double(x) => x * 2")
	want := "fn double(x)=>(x*2)\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestEncodeStringLiteralRequoted(t *testing.T) {
	out := encode(t, `print("hi")`)
	want := "print(\"hi\")\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestEncodeEndsWithSingleTrailingNewline(t *testing.T) {
	out := encode(t, "x := 1\ny := 2")
	if strings.HasSuffix(out, "\n\n") {
		t.Fatalf("expected single trailing newline, got %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected trailing newline, got %q", out)
	}
}

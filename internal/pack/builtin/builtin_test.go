package builtin

import (
	"strings"
	"testing"

	"github.com/scientificaj/icl/internal/ir"
	"github.com/scientificaj/icl/internal/lexer"
	"github.com/scientificaj/icl/internal/lower"
	"github.com/scientificaj/icl/internal/pack"
	"github.com/scientificaj/icl/internal/parser"
	"github.com/scientificaj/icl/internal/source"
)

func compile(t *testing.T, src string) *ir.Module {
	t.Helper()
	fs := source.NewFileSet()
	lx := lexer.New(fs, "t.icl", src)
	toks := lx.Tokenize()
	prog, bag := parser.Parse(toks, 0)
	if bag.HasErrors() {
		t.Fatalf("parse errors: %v", bag.Items())
	}
	mod, err := ir.Build(prog)
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	return mod
}

func TestRegistryHasEveryTarget(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, target := range []string{"python", "js", "rust", "web", "go", "java", "typescript"} {
		if !r.Has(target) {
			t.Errorf("expected registry to have target %q", target)
		}
	}
}

func TestPythonEmitAssignment(t *testing.T) {
	mod := compile(t, `x := 1 + 2`)
	out, err := lower.New(Python{}.Manifest()).Lower(mod)
	if err != nil {
		t.Fatalf("lower error: %v", err)
	}
	code, err := Python{}.Emit(out, pack.EmitContext{Manifest: Python{}.Manifest()})
	if err != nil {
		t.Fatalf("emit error: %v", err)
	}
	if !strings.Contains(code, "x = (1 + 2)") {
		t.Fatalf("unexpected python output: %s", code)
	}
}

func TestJSEmitFunctionAndReturn(t *testing.T) {
	mod := compile(t, `fn double(n) => n * 2`)
	out, err := lower.New(JS{}.Manifest()).Lower(mod)
	if err != nil {
		t.Fatalf("lower error: %v", err)
	}
	code, err := JS{}.Emit(out, pack.EmitContext{Manifest: JS{}.Manifest()})
	if err != nil {
		t.Fatalf("emit error: %v", err)
	}
	if !strings.Contains(code, "function double(n)") || !strings.Contains(code, "return") {
		t.Fatalf("unexpected js output: %s", code)
	}
}

func TestRustEmitTypedAssignment(t *testing.T) {
	mod := compile(t, `x := true`)
	out, err := lower.New(Rust{}.Manifest()).Lower(mod)
	if err != nil {
		t.Fatalf("lower error: %v", err)
	}
	code, err := Rust{}.Emit(out, pack.EmitContext{Manifest: Rust{}.Manifest()})
	if err != nil {
		t.Fatalf("emit error: %v", err)
	}
	if !strings.Contains(code, ": bool") {
		t.Fatalf("expected bool type annotation, got: %s", code)
	}
}

func TestWebScaffoldProducesThreeFiles(t *testing.T) {
	b, err := Web{}.Scaffold("console.log(1);", pack.EmitContext{Manifest: Web{}.Manifest()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"index.html", "styles.css", "app.js"} {
		if _, ok := b.Files[want]; !ok {
			t.Errorf("expected scaffold to contain %s", want)
		}
	}
	if b.PrimaryPath != "index.html" {
		t.Errorf("expected primary path index.html, got %s", b.PrimaryPath)
	}
}

func TestExperimentalGoEmitPrint(t *testing.T) {
	mod := compile(t, `print("hi")`)
	goPack := BraceTarget{Profile: braceProfiles[0]}
	out, err := lower.New(goPack.Manifest()).Lower(mod)
	if err != nil {
		t.Fatalf("lower error: %v", err)
	}
	code, err := goPack.Emit(out, pack.EmitContext{Manifest: goPack.Manifest()})
	if err != nil {
		t.Fatalf("emit error: %v", err)
	}
	if !strings.Contains(code, "fmt.Println(") {
		t.Fatalf("unexpected go output: %s", code)
	}
}

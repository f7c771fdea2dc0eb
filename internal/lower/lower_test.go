package lower

import (
	"testing"

	"github.com/scientificaj/icl/internal/ir"
	"github.com/scientificaj/icl/internal/lexer"
	"github.com/scientificaj/icl/internal/lowered"
	"github.com/scientificaj/icl/internal/pack"
	"github.com/scientificaj/icl/internal/parser"
	"github.com/scientificaj/icl/internal/source"
)

func buildModule(t *testing.T, src string) *ir.Module {
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

func fullCoverage() pack.FeatureSet {
	fs := pack.FeatureSet{}
	for _, f := range pack.Catalog {
		fs[f] = true
	}
	return fs
}

func TestLowerSimpleAssignment(t *testing.T) {
	mod := buildModule(t, `x := 1`)
	m := pack.Manifest{Target: "python", FeatureCoverage: fullCoverage()}
	out, err := New(m).Lower(mod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Stmts) != 1 {
		t.Fatalf("expected 1 stmt, got %d", len(out.Stmts))
	}
	if out.Target != "python" {
		t.Fatalf("expected target python, got %s", out.Target)
	}
}

func TestLowerGatesMissingFeature(t *testing.T) {
	mod := buildModule(t, `x := 1 + 2`)
	declared := pack.FeatureSet{
		pack.FeatureAssignment: true,
		pack.FeatureLiteral:    true,
	}
	m := pack.Manifest{Target: "toy", FeatureCoverage: declared}
	_, err := New(m).Lower(mod)
	if err == nil {
		t.Fatal("expected a missing-feature error")
	}
}

func TestLowerCanonicalizesExprBodyFn(t *testing.T) {
	mod := buildModule(t, `fn double(n) => n * 2`)
	m := pack.Manifest{Target: "python", FeatureCoverage: fullCoverage()}
	out, err := New(m).Lower(mod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn, ok := out.Stmts[0].(*lowered.Fn)
	if !ok {
		t.Fatalf("expected *lowered.Fn, got %T", out.Stmts[0])
	}
	if len(fn.Body) != 1 {
		t.Fatalf("expected canonicalized body with 1 stmt, got %d", len(fn.Body))
	}
	if _, ok := fn.Body[0].(*lowered.Return); !ok {
		t.Fatalf("expected appended return, got %T", fn.Body[0])
	}
}

func TestLowerRequiredHelpersForWebPrint(t *testing.T) {
	mod := buildModule(t, `print("hi")`)
	m := pack.Manifest{Target: "web", FeatureCoverage: fullCoverage()}
	out, err := New(m).Lower(mod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, h := range out.RequiredHelpers {
		if h == "print" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected print in required helpers, got %v", out.RequiredHelpers)
	}
}

func TestLowerNoHelpersForNonWebTarget(t *testing.T) {
	mod := buildModule(t, `print("hi")`)
	m := pack.Manifest{Target: "python", FeatureCoverage: fullCoverage()}
	out, err := New(m).Lower(mod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.RequiredHelpers) != 0 {
		t.Fatalf("expected no required helpers, got %v", out.RequiredHelpers)
	}
}

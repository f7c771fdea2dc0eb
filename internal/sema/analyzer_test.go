package sema

import (
	"testing"

	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/lexer"
	"github.com/scientificaj/icl/internal/parser"
	"github.com/scientificaj/icl/internal/source"
)

func TestAnalyzeSimpleAssignment(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs, "t.icl", "x := 1 + 2;")
	toks := lx.Tokenize()
	prog, pbag := parser.Parse(toks, 0)
	if pbag.Len() != 0 {
		t.Fatalf("parse errors: %v", pbag.Items())
	}
	res, bag := Analyze(prog)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	as := prog.Stmts[0].(*ast.AssignStmt)
	bin := as.Value.(*ast.BinaryExpr)
	if res.ExprTypes[bin] != ast.TypeNum {
		t.Errorf("got %v", res.ExprTypes[bin])
	}
}

func TestAnalyzeReturnOutsideFunction(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs, "t.icl", "ret 1;")
	toks := lx.Tokenize()
	prog, _ := parser.Parse(toks, 0)
	_, bag := Analyze(prog)
	if bag.Len() != 1 || bag.Items()[0].Code != "SEM008" {
		t.Fatalf("got %v", bag.Items())
	}
}

func TestAnalyzeAssignTypeMismatch(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs, "t.icl", `x:Num := "hello";`)
	toks := lx.Tokenize()
	prog, _ := parser.Parse(toks, 0)
	_, bag := Analyze(prog)
	if bag.Len() != 1 || bag.Items()[0].Code != "SEM002" {
		t.Fatalf("got %v", bag.Items())
	}
}

func TestAnalyzeArityMismatch(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs, "t.icl", "fn add(a,b) => a+b; x := add(1);")
	toks := lx.Tokenize()
	prog, _ := parser.Parse(toks, 0)
	_, bag := Analyze(prog)
	if bag.Len() != 1 || bag.Items()[0].Code != "SEM019" {
		t.Fatalf("got %v", bag.Items())
	}
}

func TestAnalyzePrintIsBuiltin(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs, "t.icl", `print(1);`)
	toks := lx.Tokenize()
	prog, _ := parser.Parse(toks, 0)
	_, bag := Analyze(prog)
	if bag.HasErrors() {
		t.Fatalf("print should resolve without a prior declaration: %v", bag.Items())
	}
}

func TestAnalyzeForwardReference(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs, "t.icl", "fn a() => b(); fn b() => 1;")
	toks := lx.Tokenize()
	prog, _ := parser.Parse(toks, 0)
	_, bag := Analyze(prog)
	if bag.HasErrors() {
		t.Fatalf("forward reference should resolve: %v", bag.Items())
	}
}

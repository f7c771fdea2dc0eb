package parser

import (
	"testing"

	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/lexer"
	"github.com/scientificaj/icl/internal/source"
)

func parseSrc(t *testing.T, src string) (*ast.Program, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	lx := lexer.New(fs, "t.icl", src)
	toks := lx.Tokenize()
	if lx.Errors().Len() != 0 {
		t.Fatalf("lex errors: %v", lx.Errors().Items())
	}
	prog, bag := Parse(toks, 0)
	if bag.Len() != 0 {
		t.Fatalf("parse errors: %v", bag.Items())
	}
	return prog, fs
}

func TestParseAssignment(t *testing.T) {
	prog, _ := parseSrc(t, "x := 1 + 2;")
	if len(prog.Stmts) != 1 {
		t.Fatalf("want 1 stmt, got %d", len(prog.Stmts))
	}
	as, ok := prog.Stmts[0].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("want AssignStmt, got %T", prog.Stmts[0])
	}
	if as.Name != "x" || as.HasHint {
		t.Errorf("got %+v", as)
	}
	bin, ok := as.Value.(*ast.BinaryExpr)
	if !ok || bin.Op != ast.BinAdd {
		t.Fatalf("want binary add, got %+v", as.Value)
	}
}

func TestParseTypedAssignment(t *testing.T) {
	prog, _ := parseSrc(t, `x : Num := 1;`)
	as := prog.Stmts[0].(*ast.AssignStmt)
	if !as.HasHint || as.TypeHint != ast.TypeNum {
		t.Fatalf("got %+v", as)
	}
}

func TestParsePrecedence(t *testing.T) {
	prog, _ := parseSrc(t, "x := 1 + 2 * 3;")
	as := prog.Stmts[0].(*ast.AssignStmt)
	top := as.Value.(*ast.BinaryExpr)
	if top.Op != ast.BinAdd {
		t.Fatalf("top should be +, got %v", top.Op)
	}
	right := top.Right.(*ast.BinaryExpr)
	if right.Op != ast.BinMul {
		t.Fatalf("right should be *, got %v", right.Op)
	}
}

func TestParseIfElse(t *testing.T) {
	prog, _ := parseSrc(t, `if x > 0 ? { y := 1; } : { y := 2; }`)
	ifs := prog.Stmts[0].(*ast.IfStmt)
	if len(ifs.Then) != 1 || len(ifs.Else) != 1 {
		t.Fatalf("got %+v", ifs)
	}
}

func TestParseLoop(t *testing.T) {
	prog, _ := parseSrc(t, `loop i in 0..10 { x := i; }`)
	l := prog.Stmts[0].(*ast.LoopStmt)
	if l.Iter != "i" {
		t.Fatalf("got %+v", l)
	}
}

func TestParseFnBlockAndExprBody(t *testing.T) {
	prog, _ := parseSrc(t, `fn add(a,b):Num { ret a + b; } fn sub(a,b):Num => a - b;`)
	fn1 := prog.Stmts[0].(*ast.FnStmt)
	if fn1.IsExprBody() || len(fn1.Body) != 1 {
		t.Fatalf("got %+v", fn1)
	}
	fn2 := prog.Stmts[1].(*ast.FnStmt)
	if !fn2.IsExprBody() {
		t.Fatalf("got %+v", fn2)
	}
}

func TestParseCallAndAtCall(t *testing.T) {
	prog, _ := parseSrc(t, `out := add(1,2); x := @print(1);`)
	as := prog.Stmts[0].(*ast.AssignStmt)
	call := as.Value.(*ast.CallExpr)
	if call.AtPrefixed || len(call.Args) != 2 {
		t.Fatalf("got %+v", call)
	}
	as2 := prog.Stmts[1].(*ast.AssignStmt)
	call2 := as2.Value.(*ast.CallExpr)
	if !call2.AtPrefixed {
		t.Fatalf("got %+v", call2)
	}
}

func TestParseMacro(t *testing.T) {
	prog, _ := parseSrc(t, `#std(1, 2);`)
	m := prog.Stmts[0].(*ast.MacroStmt)
	if m.Name != "std" || len(m.Args) != 2 {
		t.Fatalf("got %+v", m)
	}
}

func TestParseSynchronizesAfterError(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs, "t.icl", "x := ; y := 1;")
	toks := lx.Tokenize()
	prog, bag := Parse(toks, 0)
	if bag.Len() == 0 {
		t.Fatalf("expected at least one parse error")
	}
	found := false
	for _, s := range prog.Stmts {
		if as, ok := s.(*ast.AssignStmt); ok && as.Name == "y" {
			found = true
		}
	}
	if !found {
		t.Fatalf("parser did not recover to parse 'y := 1;', got %+v", prog.Stmts)
	}
}

package sema

import (
	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/diag"
)

// Result is everything later stages need from semantic analysis: the
// resolved type of every expression node (keyed by the node's own pointer
// identity, spec.md §3's "stable per-expression key") and the signatures
// registered at module scope.
type Result struct {
	ExprTypes map[ast.Expr]ast.Type
	FnSigs    map[string]SymbolInfo
}

// Analyzer walks one ast.Program, registering top-level function
// signatures before checking bodies so forward references resolve
// (spec.md §4.3).
type Analyzer struct {
	arena      *scopeArena
	bag        *diag.Bag
	exprTypes  map[ast.Expr]ast.Type
	fnReturns  []ast.Type // stack of enclosing function return types
	fnHasDecl  []bool     // whether the enclosing function declared a return type
}

// Analyze runs both passes over prog and returns the inference result plus
// any diagnostics raised.
func Analyze(prog *ast.Program) (*Result, *diag.Bag) {
	a := &Analyzer{
		arena:     newScopeArena(),
		bag:       diag.NewBag(512),
		exprTypes: map[ast.Expr]ast.Type{},
	}
	root := a.arena.root()
	a.defineBuiltins(root)

	// Pass 1: register every top-level fn signature.
	for _, s := range prog.Stmts {
		if fn, ok := s.(*ast.FnStmt); ok {
			a.registerFnSig(root, fn)
		}
	}

	// Pass 2: walk statements in order in a fresh child scope chain.
	for _, s := range prog.Stmts {
		a.checkStmt(root, s)
	}

	return &Result{ExprTypes: a.exprTypes, FnSigs: a.collectFnSigs(root)}, a.bag
}

func (a *Analyzer) collectFnSigs(root int) map[string]SymbolInfo {
	out := map[string]SymbolInfo{}
	for name, info := range a.arena.scopes[root].symbols {
		if info.IsFunction {
			out[name] = info
		}
	}
	return out
}

// defineBuiltins seeds the root scope with the prelude every program can
// call without a prior declaration, mirroring
// original_source/icl/semantic.py's _define_builtins: print(value) takes
// one Any-typed argument and returns Void.
func (a *Analyzer) defineBuiltins(scope int) {
	a.arena.define(scope, "print", SymbolInfo{
		Name: "print", Type: ast.TypeFn, IsFunction: true,
		Arity: 1, ReturnType: ast.TypeVoid, ParamTypes: []ast.Type{ast.TypeAny},
	})
}

func (a *Analyzer) registerFnSig(scope int, fn *ast.FnStmt) {
	paramTypes := make([]ast.Type, len(fn.Params))
	for i, p := range fn.Params {
		if p.HasHint {
			paramTypes[i] = p.TypeHint
		} else {
			paramTypes[i] = ast.TypeAny
		}
	}
	ret := ast.TypeVoid
	if fn.HasReturn {
		ret = fn.ReturnType
	} else if fn.IsExprBody() {
		ret = ast.TypeAny
	}
	a.arena.define(scope, fn.Name, SymbolInfo{
		Name: fn.Name, Type: ast.TypeFn, IsFunction: true,
		Arity: len(fn.Params), ReturnType: ret, ParamTypes: paramTypes,
	})
}


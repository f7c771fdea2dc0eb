package sema

import (
	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/diag"
)

func (a *Analyzer) addStmt(code diag.Code, s ast.Stmt, format string, args ...any) {
	a.bag.Add(diag.New(code, s.Span(), format, args...).Diag)
}

func (a *Analyzer) checkStmt(scope int, s ast.Stmt) {
	switch n := s.(type) {
	case *ast.AssignStmt:
		valType := ast.TypeAny
		if n.Value != nil {
			valType = a.checkExpr(scope, n.Value)
		}
		bound := valType
		if n.HasHint {
			if !compatible(valType, n.TypeHint) {
				a.addStmt(diag.SemAssignTypeMismatch, n, "cannot assign %s to %s-typed %q", valType, n.TypeHint, n.Name)
			}
			bound = n.TypeHint
		}
		a.arena.define(scope, n.Name, SymbolInfo{Name: n.Name, Type: bound})

	case *ast.ExprStmt:
		a.checkExpr(scope, n.X)

	case *ast.IfStmt:
		condType := a.checkExpr(scope, n.Cond)
		if !compatible(condType, ast.TypeBool) {
			a.addStmt(diag.SemIfCondType, n, "if condition must be Bool, got %s", condType)
		}
		thenScope := a.arena.child(scope)
		for _, st := range n.Then {
			a.checkStmt(thenScope, st)
		}
		if n.Else != nil {
			elseScope := a.arena.child(scope)
			for _, st := range n.Else {
				a.checkStmt(elseScope, st)
			}
		}

	case *ast.LoopStmt:
		startType := a.checkExpr(scope, n.Start)
		endType := a.checkExpr(scope, n.End)
		if !compatible(startType, ast.TypeNum) || !compatible(endType, ast.TypeNum) {
			a.addStmt(diag.SemLoopBoundType, n, "loop bounds must be Num, got %s and %s", startType, endType)
		}
		body := a.arena.child(scope)
		a.arena.define(body, n.Iter, SymbolInfo{Name: n.Iter, Type: ast.TypeNum})
		for _, st := range n.Body {
			a.checkStmt(body, st)
		}

	case *ast.FnStmt:
		a.checkFn(scope, n)

	case *ast.RetStmt:
		a.checkRet(scope, n)

	case *ast.MacroStmt:
		a.addStmt(diag.SemUnexpandedMacro, n, "macro #%s survived to semantic analysis unexpanded", n.Name)
	}
}

func (a *Analyzer) checkFn(scope int, fn *ast.FnStmt) {
	// Re-register locally in case this fn is nested (not a top-level
	// signature captured by pass 1).
	if _, ok := a.arena.lookup(scope, fn.Name); !ok {
		a.registerFnSig(scope, fn)
	}

	body := a.arena.child(scope)
	for _, p := range fn.Params {
		t := ast.TypeAny
		if p.HasHint {
			t = p.TypeHint
		}
		a.arena.define(body, p.Name, SymbolInfo{Name: p.Name, Type: t})
	}

	retType := ast.TypeVoid
	hasDecl := fn.HasReturn
	if fn.HasReturn {
		retType = fn.ReturnType
	}
	a.fnReturns = append(a.fnReturns, retType)
	a.fnHasDecl = append(a.fnHasDecl, hasDecl)

	if fn.IsExprBody() {
		bodyType := a.checkExpr(body, fn.ExprBody)
		if hasDecl && !compatible(bodyType, retType) {
			a.addStmt(diag.SemReturnTypeMismatch, fn, "function %q declares return %s but body is %s", fn.Name, retType, bodyType)
		}
	} else {
		for _, st := range fn.Body {
			a.checkStmt(body, st)
		}
		if hasDecl && retType != ast.TypeVoid && !returnsOnEveryPath(fn.Body) {
			a.addStmt(diag.SemMissingReturn, fn, "function %q must return on every path", fn.Name)
		}
	}

	a.fnReturns = a.fnReturns[:len(a.fnReturns)-1]
	a.fnHasDecl = a.fnHasDecl[:len(a.fnHasDecl)-1]
}

func (a *Analyzer) checkRet(scope int, n *ast.RetStmt) {
	if len(a.fnReturns) == 0 {
		a.addStmt(diag.SemReturnOutsideFn, n, "return outside a function")
		if n.Value != nil {
			a.checkExpr(scope, n.Value)
		}
		return
	}
	want := a.fnReturns[len(a.fnReturns)-1]
	hasDecl := a.fnHasDecl[len(a.fnHasDecl)-1]
	got := ast.TypeVoid
	if n.Value != nil {
		got = a.checkExpr(scope, n.Value)
	}
	if hasDecl && !compatible(got, want) {
		a.addStmt(diag.SemReturnTypeMismatch, n, "return type %s incompatible with declared %s", got, want)
	}
}

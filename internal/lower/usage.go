// Package lower walks a built IR Module into a target's Lowered Module:
// it computes the feature set the program actually exercises, gates that
// against the target pack's declared coverage (LOW001), canonicalizes
// expression-body functions to block bodies with an appended return, and
// computes the target's required_helpers list.
package lower

import (
	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/ir"
	"github.com/scientificaj/icl/internal/pack"
)

// usageWalker accumulates the set of catalog features a Module exercises.
type usageWalker struct {
	used pack.FeatureSet
}

func computeUsage(mod *ir.Module) pack.FeatureSet {
	w := &usageWalker{used: pack.FeatureSet{}}
	for _, s := range mod.Stmts {
		w.stmt(s)
	}
	return w.used
}

// Usage exposes computeUsage for callers outside the lowering path itself,
// such as the contract test harness's feature-status matrix, which needs a
// program's actual exercised feature set independent of any one target's
// coverage.
func Usage(mod *ir.Module) pack.FeatureSet {
	return computeUsage(mod)
}

func (w *usageWalker) stmt(s ir.Stmt) {
	switch n := s.(type) {
	case *ir.Assign:
		w.used[pack.FeatureAssignment] = true
		if n.Type != ast.TypeAny {
			w.used[pack.FeatureTypedAnnot] = true
		}
		w.expr(n.Value)
	case *ir.ExprStmt:
		w.used[pack.FeatureExpressionStmt] = true
		w.expr(n.X)
	case *ir.If:
		w.used[pack.FeatureIf] = true
		w.expr(n.Cond)
		w.stmts(n.Then)
		w.stmts(n.Else)
	case *ir.Loop:
		w.used[pack.FeatureLoop] = true
		w.expr(n.Start)
		w.expr(n.End)
		w.stmts(n.Body)
	case *ir.Fn:
		w.used[pack.FeatureFunction] = true
		if n.HasReturn {
			w.used[pack.FeatureTypedAnnot] = true
		}
		for _, p := range n.Params {
			if p.Type != ast.TypeAny {
				w.used[pack.FeatureTypedAnnot] = true
			}
		}
		if n.IsExprBody() {
			w.expr(n.ExprBody)
		} else {
			w.stmts(n.Body)
		}
	case *ir.Return:
		w.used[pack.FeatureReturn] = true
		if n.Value != nil {
			w.expr(n.Value)
		}
	}
}

func (w *usageWalker) stmts(ss []ir.Stmt) {
	for _, s := range ss {
		w.stmt(s)
	}
}

func (w *usageWalker) expr(e ir.Expr) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ir.Literal:
		w.used[pack.FeatureLiteral] = true
	case *ir.Ident:
		w.used[pack.FeatureReference] = true
	case *ir.Unary:
		w.used[pack.FeatureUnary] = true
		w.expr(n.Operand)
	case *ir.Binary:
		switch n.Op.Category() {
		case ast.CatArithmetic:
			w.used[pack.FeatureArithmetic] = true
		case ast.CatComparison:
			w.used[pack.FeatureComparison] = true
		default:
			w.used[pack.FeatureLogic] = true
		}
		w.expr(n.Left)
		w.expr(n.Right)
	case *ir.Call:
		w.used[pack.FeatureCall] = true
		if n.AtPrefixed {
			w.used[pack.FeatureAtCall] = true
		}
		w.expr(n.Callee)
		for _, a := range n.Args {
			w.expr(a)
		}
	case *ir.Lambda:
		w.used[pack.FeatureFunction] = true
		for _, p := range n.Params {
			if p.Type != ast.TypeAny {
				w.used[pack.FeatureTypedAnnot] = true
			}
		}
		w.expr(n.Body)
	}
}

// referencesName reports whether mod transitively contains an IdentExpr
// reference named name, used to compute the "print" required helper for
// web-family targets.
func referencesName(mod *ir.Module, name string) bool {
	for _, s := range mod.Stmts {
		if stmtReferencesName(s, name) {
			return true
		}
	}
	return false
}

func stmtReferencesName(s ir.Stmt, name string) bool {
	switch n := s.(type) {
	case *ir.Assign:
		return exprReferencesName(n.Value, name)
	case *ir.ExprStmt:
		return exprReferencesName(n.X, name)
	case *ir.If:
		return exprReferencesName(n.Cond, name) || stmtsReferenceName(n.Then, name) || stmtsReferenceName(n.Else, name)
	case *ir.Loop:
		return exprReferencesName(n.Start, name) || exprReferencesName(n.End, name) || stmtsReferenceName(n.Body, name)
	case *ir.Fn:
		if n.IsExprBody() {
			return exprReferencesName(n.ExprBody, name)
		}
		return stmtsReferenceName(n.Body, name)
	case *ir.Return:
		return exprReferencesName(n.Value, name)
	}
	return false
}

func stmtsReferenceName(ss []ir.Stmt, name string) bool {
	for _, s := range ss {
		if stmtReferencesName(s, name) {
			return true
		}
	}
	return false
}

func exprReferencesName(e ir.Expr, name string) bool {
	if e == nil {
		return false
	}
	switch n := e.(type) {
	case *ir.Ident:
		return n.Name == name
	case *ir.Unary:
		return exprReferencesName(n.Operand, name)
	case *ir.Binary:
		return exprReferencesName(n.Left, name) || exprReferencesName(n.Right, name)
	case *ir.Call:
		if exprReferencesName(n.Callee, name) {
			return true
		}
		for _, a := range n.Args {
			if exprReferencesName(a, name) {
				return true
			}
		}
		return false
	case *ir.Lambda:
		return exprReferencesName(n.Body, name)
	}
	return false
}

package sema

import (
	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/diag"
)

func (a *Analyzer) add(code diag.Code, e ast.Expr, format string, args ...any) {
	a.bag.Add(diag.New(code, e.Span(), format, args...).Diag)
}

func (a *Analyzer) setType(e ast.Expr, t ast.Type) ast.Type {
	a.exprTypes[e] = t
	return t
}

// compatible implements the gradual-typing rule shared by every binary/unary
// check: Any is compatible with anything, and otherwise types must match
// exactly (spec.md §4.3).
func compatible(t ast.Type, want ...ast.Type) bool {
	if t == ast.TypeAny {
		return true
	}
	for _, w := range want {
		if w == ast.TypeAny || t == w {
			return true
		}
	}
	return false
}

// checkExpr infers and records the type of e, recursing into subexpressions.
func (a *Analyzer) checkExpr(scope int, e ast.Expr) ast.Type {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		switch n.Kind {
		case ast.LitInt, ast.LitFloat:
			return a.setType(e, ast.TypeNum)
		case ast.LitString:
			return a.setType(e, ast.TypeStr)
		case ast.LitBool:
			return a.setType(e, ast.TypeBool)
		default:
			return a.setType(e, ast.TypeAny)
		}

	case *ast.IdentExpr:
		info, ok := a.arena.lookup(scope, n.Name)
		if !ok {
			a.add(diag.SemUnresolvedSymbol, e, "unresolved symbol %q", n.Name)
			return a.setType(e, ast.TypeAny)
		}
		return a.setType(e, info.Type)

	case *ast.UnaryExpr:
		operand := a.checkExpr(scope, n.Operand)
		switch n.Op {
		case ast.UnaryNot:
			if !compatible(operand, ast.TypeBool) {
				a.add(diag.SemUnaryOperandType, e, "unary ! requires Bool, got %s", operand)
			}
			return a.setType(e, ast.TypeBool)
		default: // UnaryNeg, UnaryPos
			if !compatible(operand, ast.TypeNum) {
				a.add(diag.SemUnaryOperandType, e, "unary operator requires Num, got %s", operand)
			}
			return a.setType(e, ast.TypeNum)
		}

	case *ast.BinaryExpr:
		return a.checkBinary(scope, n)

	case *ast.CallExpr:
		return a.checkCall(scope, n)

	case *ast.LambdaExpr:
		inner := a.arena.child(scope)
		for _, p := range n.Params {
			t := ast.TypeAny
			if p.HasHint {
				t = p.TypeHint
			}
			a.arena.define(inner, p.Name, SymbolInfo{Name: p.Name, Type: t})
		}
		if n.Body != nil {
			a.checkExpr(inner, n.Body)
		}
		return a.setType(e, ast.TypeFn)

	default:
		return a.setType(e, ast.TypeAny)
	}
}

func (a *Analyzer) checkBinary(scope int, n *ast.BinaryExpr) ast.Type {
	lt := a.checkExpr(scope, n.Left)
	rt := a.checkExpr(scope, n.Right)

	switch n.Op.Category() {
	case ast.CatArithmetic:
		if n.Op == ast.BinAdd && lt == ast.TypeStr && rt == ast.TypeStr {
			return a.setType(n, ast.TypeStr)
		}
		if !compatible(lt, ast.TypeNum) || !compatible(rt, ast.TypeNum) {
			a.add(diag.SemBinaryOperandType, n, "operator %s requires Num operands, got %s and %s", n.Op, lt, rt)
		}
		return a.setType(n, ast.TypeNum)

	case ast.CatComparison:
		if n.Op == ast.BinEq || n.Op == ast.BinNeq {
			return a.setType(n, ast.TypeBool)
		}
		if !compatible(lt, ast.TypeNum) || !compatible(rt, ast.TypeNum) {
			a.add(diag.SemBinaryOperandType, n, "ordering operator %s requires Num operands, got %s and %s", n.Op, lt, rt)
		}
		return a.setType(n, ast.TypeBool)

	default: // CatLogic
		if !compatible(lt, ast.TypeBool) || !compatible(rt, ast.TypeBool) {
			a.add(diag.SemLogicOperandType, n, "operator %s requires Bool operands, got %s and %s", n.Op, lt, rt)
		}
		return a.setType(n, ast.TypeBool)
	}
}

func (a *Analyzer) checkCall(scope int, n *ast.CallExpr) ast.Type {
	for _, arg := range n.Args {
		a.checkExpr(scope, arg)
	}

	ident, isIdent := n.Callee.(*ast.IdentExpr)
	if !isIdent {
		calleeType := a.checkExpr(scope, n.Callee)
		if !compatible(calleeType, ast.TypeFn) {
			a.add(diag.SemCallTargetInvalid, n, "call target is not callable (type %s)", calleeType)
		}
		return a.setType(n, ast.TypeAny)
	}

	info, ok := a.arena.lookup(scope, ident.Name)
	if !ok {
		a.add(diag.SemUnresolvedSymbol, n, "unresolved symbol %q", ident.Name)
		a.setType(ident, ast.TypeAny)
		return a.setType(n, ast.TypeAny)
	}
	a.setType(ident, info.Type)

	if !compatible(info.Type, ast.TypeFn) {
		a.add(diag.SemCallTargetInvalid, n, "call target %q is not callable (type %s)", ident.Name, info.Type)
		return a.setType(n, ast.TypeAny)
	}

	if info.IsFunction {
		if len(n.Args) != info.Arity {
			a.add(diag.SemArityMismatch, n, "function %q expects %d argument(s), got %d", ident.Name, info.Arity, len(n.Args))
		}
		return a.setType(n, info.ReturnType)
	}
	return a.setType(n, ast.TypeAny)
}

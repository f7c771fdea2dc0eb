package lower

import (
	"sort"

	"github.com/scientificaj/icl/internal/diag"
	"github.com/scientificaj/icl/internal/ir"
	"github.com/scientificaj/icl/internal/lowered"
	"github.com/scientificaj/icl/internal/pack"
)

// webFamily are the targets for which a "print" reference requires the
// "print" runtime helper (spec.md §4.5).
var webFamily = map[string]bool{"web": true, "js": true, "ts": true}

// Lowerer walks one ir.Module into a lowered.Module for a single target
// pack, assigning fresh lowered.IDs and canonicalizing expression bodies.
type Lowerer struct {
	manifest pack.Manifest
	next     lowered.ID
}

// New creates a Lowerer for the given target manifest.
func New(m pack.Manifest) *Lowerer {
	return &Lowerer{manifest: m}
}

func (l *Lowerer) nextID() lowered.ID {
	l.next++
	return l.next - 1
}

// Lower gates mod's feature usage against l.manifest's declared coverage
// (LOW001, naming every missing feature) and then produces the target's
// Lowered Module.
func (l *Lowerer) Lower(mod *ir.Module) (*lowered.Module, error) {
	used := computeUsage(mod)
	missing := pack.Missing(used, l.manifest.FeatureCoverage)
	if len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = string(f)
		}
		return nil, diag.NewNoSpan(diag.LowFeatureNotCovered,
			"target %q does not cover required feature(s): %v", l.manifest.Target, names)
	}

	stmts, err := l.stmts(mod.Stmts)
	if err != nil {
		return nil, err
	}

	return &lowered.Module{
		Target:          l.manifest.Target,
		Stmts:           stmts,
		RequiredHelpers: l.requiredHelpers(mod),
	}, nil
}

func (l *Lowerer) requiredHelpers(mod *ir.Module) []string {
	var helpers []string
	if webFamily[l.manifest.Target] && referencesName(mod, "print") {
		helpers = append(helpers, "print")
	}
	sort.Strings(helpers)
	return helpers
}

func (l *Lowerer) stmts(in []ir.Stmt) ([]lowered.Stmt, error) {
	out := make([]lowered.Stmt, 0, len(in))
	for _, s := range in {
		st, err := l.stmt(s)
		if err != nil {
			return nil, err
		}
		if st != nil {
			out = append(out, st)
		}
	}
	return out, nil
}

func (l *Lowerer) stmt(s ir.Stmt) (lowered.Stmt, error) {
	switch n := s.(type) {
	case *ir.Assign:
		v, err := l.expr(n.Value)
		if err != nil {
			return nil, err
		}
		return lowered.NewAssign(l.nextID(), n.Span(), n.Name, n.Type, v), nil

	case *ir.ExprStmt:
		x, err := l.expr(n.X)
		if err != nil {
			return nil, err
		}
		return lowered.NewExprStmt(l.nextID(), n.Span(), x), nil

	case *ir.If:
		cond, err := l.expr(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := l.stmts(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := l.stmts(n.Else)
		if err != nil {
			return nil, err
		}
		return lowered.NewIf(l.nextID(), n.Span(), cond, then, els), nil

	case *ir.Loop:
		start, err := l.expr(n.Start)
		if err != nil {
			return nil, err
		}
		end, err := l.expr(n.End)
		if err != nil {
			return nil, err
		}
		body, err := l.stmts(n.Body)
		if err != nil {
			return nil, err
		}
		return lowered.NewLoop(l.nextID(), n.Span(), n.Iter, start, end, body), nil

	case *ir.Fn:
		return l.fn(n)

	case *ir.Return:
		var v lowered.Expr
		if n.Value != nil {
			ve, err := l.expr(n.Value)
			if err != nil {
				return nil, err
			}
			v = ve
		}
		return lowered.NewReturn(l.nextID(), n.Span(), v), nil

	default:
		return nil, diag.NewNoSpan(diag.LowUnknownIRNode, "lowering encountered an unrecognized IR statement shape")
	}
}

// fn canonicalizes an expression-body function into a block body with an
// appended return of the expression (spec.md §4.5).
func (l *Lowerer) fn(n *ir.Fn) (*lowered.Fn, error) {
	params := make([]lowered.Param, len(n.Params))
	for i, p := range n.Params {
		params[i] = lowered.Param{Name: p.Name, Type: p.Type}
	}

	if n.IsExprBody() {
		body, err := l.expr(n.ExprBody)
		if err != nil {
			return nil, err
		}
		ret := lowered.NewReturn(l.nextID(), n.ExprBody.Span(), body)
		fnID := l.nextID()
		return lowered.NewFn(fnID, n.Span(), n.Name, params, n.ReturnType, n.HasReturn, []lowered.Stmt{ret}), nil
	}

	body, err := l.stmts(n.Body)
	if err != nil {
		return nil, err
	}
	return lowered.NewFn(l.nextID(), n.Span(), n.Name, params, n.ReturnType, n.HasReturn, body), nil
}

func (l *Lowerer) expr(e ir.Expr) (lowered.Expr, error) {
	if e == nil {
		return nil, nil
	}
	switch n := e.(type) {
	case *ir.Literal:
		return lowered.NewLiteral(l.nextID(), n.Span(), n.Type(), n.Kind, n.Int, n.Flt, n.Str, n.Bool), nil

	case *ir.Ident:
		return lowered.NewIdent(l.nextID(), n.Span(), n.Type(), n.Name), nil

	case *ir.Unary:
		operand, err := l.expr(n.Operand)
		if err != nil {
			return nil, err
		}
		return lowered.NewUnary(l.nextID(), n.Span(), n.Type(), n.Op, operand), nil

	case *ir.Binary:
		left, err := l.expr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := l.expr(n.Right)
		if err != nil {
			return nil, err
		}
		return lowered.NewBinary(l.nextID(), n.Span(), n.Type(), n.Op, left, right), nil

	case *ir.Call:
		callee, err := l.expr(n.Callee)
		if err != nil {
			return nil, err
		}
		args := make([]lowered.Expr, len(n.Args))
		for i, a := range n.Args {
			la, err := l.expr(a)
			if err != nil {
				return nil, err
			}
			args[i] = la
		}
		return lowered.NewCall(l.nextID(), n.Span(), n.Type(), callee, args, n.AtPrefixed), nil

	case *ir.Lambda:
		params := make([]lowered.Param, len(n.Params))
		for i, p := range n.Params {
			params[i] = lowered.Param{Name: p.Name, Type: p.Type}
		}
		body, err := l.expr(n.Body)
		if err != nil {
			return nil, err
		}
		return lowered.NewLambda(l.nextID(), n.Span(), n.Type(), params, body), nil

	default:
		return nil, diag.NewNoSpan(diag.LowUnknownIRNode, "lowering encountered an unrecognized IR expression shape")
	}
}

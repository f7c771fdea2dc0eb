package ir

import (
	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/diag"
	"github.com/scientificaj/icl/internal/sema"
)

// Builder walks an ast.Program plus its sema.Result, assigning monotonic
// ir_ids and copying each node's inferred expr_type (spec.md §4.4).
type Builder struct {
	types map[ast.Expr]ast.Type
	next  ID
}

// NewBuilder creates a Builder keyed off the analyzer's inferred types.
func NewBuilder(res *sema.Result) *Builder {
	return &Builder{types: res.ExprTypes}
}

func (b *Builder) nextID() ID {
	b.next++
	return b.next - 1
}

func (b *Builder) typeOf(e ast.Expr) ast.Type {
	if t, ok := b.types[e]; ok {
		return t
	}
	return ast.TypeAny
}

// Build lowers prog into a Module, running semantic analysis itself. Most
// callers already hold a *sema.Result from an earlier analysis pass (the
// front-end runs sema.Analyze once for diagnostics before IR construction)
// and should call BuildFrom instead to avoid analyzing prog twice; Build
// remains for standalone callers (tests, tools) that only have an
// *ast.Program.
func Build(prog *ast.Program) (*Module, error) {
	res, bag := sema.Analyze(prog)
	if bag.HasErrors() {
		return nil, bag.ToError()
	}
	return BuildFrom(prog, res)
}

// BuildFrom lowers prog into a Module using an already-computed sema.Result,
// skipping re-analysis. A MacroStmt surviving to this point is a fatal
// structural invariant violation (spec.md §3/§4.4): semantic analysis
// should already have rejected it with SEM010, so reaching here means that
// stage was skipped or bypassed.
func BuildFrom(prog *ast.Program, res *sema.Result) (*Module, error) {
	b := NewBuilder(res)
	stmts, err := b.buildStmts(prog.Stmts)
	if err != nil {
		return nil, err
	}
	return &Module{SchemaVersion: SchemaVersion, Stmts: stmts}, nil
}

func (b *Builder) buildStmts(in []ast.Stmt) ([]Stmt, error) {
	out := make([]Stmt, 0, len(in))
	for _, s := range in {
		st, err := b.buildStmt(s)
		if err != nil {
			return nil, err
		}
		if st != nil {
			out = append(out, st)
		}
	}
	return out, nil
}

func (b *Builder) buildStmt(s ast.Stmt) (Stmt, error) {
	switch n := s.(type) {
	case *ast.AssignStmt:
		val, err := b.buildExpr(n.Value)
		if err != nil {
			return nil, err
		}
		t := b.typeOf(n.Value)
		if n.HasHint {
			t = n.TypeHint
		}
		return &Assign{sbase: sbase{b.nextID(), n.Sp}, Name: n.Name, Type: t, Value: val}, nil

	case *ast.ExprStmt:
		x, err := b.buildExpr(n.X)
		if err != nil {
			return nil, err
		}
		return &ExprStmt{sbase: sbase{b.nextID(), n.Sp}, X: x}, nil

	case *ast.IfStmt:
		cond, err := b.buildExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := b.buildStmts(n.Then)
		if err != nil {
			return nil, err
		}
		var els []Stmt
		if n.Else != nil {
			els, err = b.buildStmts(n.Else)
			if err != nil {
				return nil, err
			}
		}
		return &If{sbase: sbase{b.nextID(), n.Sp}, Cond: cond, Then: then, Else: els}, nil

	case *ast.LoopStmt:
		start, err := b.buildExpr(n.Start)
		if err != nil {
			return nil, err
		}
		end, err := b.buildExpr(n.End)
		if err != nil {
			return nil, err
		}
		body, err := b.buildStmts(n.Body)
		if err != nil {
			return nil, err
		}
		return &Loop{sbase: sbase{b.nextID(), n.Sp}, Iter: n.Iter, Start: start, End: end, Body: body}, nil

	case *ast.FnStmt:
		params := make([]Param, len(n.Params))
		for i, p := range n.Params {
			t := ast.TypeAny
			if p.HasHint {
				t = p.TypeHint
			}
			params[i] = Param{Name: p.Name, Type: t}
		}
		fn := &Fn{sbase: sbase{b.nextID(), n.Sp}, Name: n.Name, Params: params, ReturnType: n.ReturnType, HasReturn: n.HasReturn}
		if n.IsExprBody() {
			body, err := b.buildExpr(n.ExprBody)
			if err != nil {
				return nil, err
			}
			fn.ExprBody = body
		} else {
			body, err := b.buildStmts(n.Body)
			if err != nil {
				return nil, err
			}
			fn.Body = body
		}
		return fn, nil

	case *ast.RetStmt:
		var val Expr
		if n.Value != nil {
			v, err := b.buildExpr(n.Value)
			if err != nil {
				return nil, err
			}
			val = v
		}
		return &Return{sbase: sbase{b.nextID(), n.Sp}, Value: val}, nil

	case *ast.MacroStmt:
		return nil, diag.New(diag.SemUnexpandedMacro, n.Sp,
			"macro #%s reached IR construction unexpanded", n.Name).
			WithHint("expand macros before calling ir.Build; this is an internal invariant violation")

	default:
		return nil, nil
	}
}

func (b *Builder) buildExpr(e ast.Expr) (Expr, error) {
	if e == nil {
		return nil, nil
	}
	switch n := e.(type) {
	case *ast.LiteralExpr:
		return &Literal{base: base{b.nextID(), n.Sp, b.typeOf(e)}, Kind: n.Kind, Int: n.Int, Flt: n.Flt, Str: n.Str, Bool: n.Bool}, nil

	case *ast.IdentExpr:
		return &Ident{base: base{b.nextID(), n.Sp, b.typeOf(e)}, Name: n.Name}, nil

	case *ast.UnaryExpr:
		operand, err := b.buildExpr(n.Operand)
		if err != nil {
			return nil, err
		}
		return &Unary{base: base{b.nextID(), n.Sp, b.typeOf(e)}, Op: n.Op, Operand: operand}, nil

	case *ast.BinaryExpr:
		left, err := b.buildExpr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.buildExpr(n.Right)
		if err != nil {
			return nil, err
		}
		return &Binary{base: base{b.nextID(), n.Sp, b.typeOf(e)}, Op: n.Op, Left: left, Right: right}, nil

	case *ast.CallExpr:
		callee, err := b.buildExpr(n.Callee)
		if err != nil {
			return nil, err
		}
		args := make([]Expr, len(n.Args))
		for i, arg := range n.Args {
			a, err := b.buildExpr(arg)
			if err != nil {
				return nil, err
			}
			args[i] = a
		}
		return &Call{base: base{b.nextID(), n.Sp, b.typeOf(e)}, Callee: callee, Args: args, AtPrefixed: n.AtPrefixed}, nil

	case *ast.LambdaExpr:
		params := make([]Param, len(n.Params))
		for i, p := range n.Params {
			t := ast.TypeAny
			if p.HasHint {
				t = p.TypeHint
			}
			params[i] = Param{Name: p.Name, Type: t}
		}
		body, err := b.buildExpr(n.Body)
		if err != nil {
			return nil, err
		}
		return &Lambda{base: base{b.nextID(), n.Sp, b.typeOf(e)}, Params: params, Body: body}, nil

	default:
		return nil, nil
	}
}

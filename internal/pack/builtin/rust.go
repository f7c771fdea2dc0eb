package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/bundle"
	"github.com/scientificaj/icl/internal/lowered"
	"github.com/scientificaj/icl/internal/pack"
)

// Rust is the statically-typed stable target: every binding gets a Rust
// type inferred from a scope stack, since the source language itself is
// gradually typed (spec.md §4.7).
type Rust struct{}

func (Rust) Manifest() pack.Manifest {
	return pack.Manifest{
		PackID:               "icl.pack.rust",
		Version:              "1.0.0",
		Target:               "rust",
		Stability:            pack.StabilityStable,
		FileExtension:        "rs",
		BlockModel:           "braces",
		StatementTermination: ";",
		TypeStrategy:         "local-inference",
		FeatureCoverage:      fullCatalogCoverage(),
		Aliases:              []string{"rs"},
	}
}

func (r Rust) Emit(mod *lowered.Module, ctx pack.EmitContext) (string, error) {
	e := &rustEmitter{b: &strings.Builder{}, scopes: []rustScope{{}}}
	e.stmts(mod.Stmts, 0)
	return e.b.String(), nil
}

func (r Rust) Scaffold(code string, ctx pack.EmitContext) (bundle.OutputBundle, error) {
	return pack.DefaultScaffold(code, r.Manifest()), nil
}

// rustScope maps a binding name to its inferred Rust type string, one layer
// per block; lookups walk outward to the enclosing function/module scope.
type rustScope map[string]string

type rustEmitter struct {
	b      *strings.Builder
	scopes []rustScope
}

func (e *rustEmitter) push()  { e.scopes = append(e.scopes, rustScope{}) }
func (e *rustEmitter) pop()   { e.scopes = e.scopes[:len(e.scopes)-1] }
func (e *rustEmitter) define(name, ty string) {
	e.scopes[len(e.scopes)-1][name] = ty
}

func (e *rustEmitter) lookup(name string) string {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if t, ok := e.scopes[i][name]; ok {
			return t
		}
	}
	return "f64"
}

func (e *rustEmitter) indent(depth int) string { return strings.Repeat("    ", depth) }

// rustType maps spec.md's closed semantic Type set onto a concrete Rust
// type, per §4.7's table: Any/Num -> f64, Bool -> bool, Str -> String,
// Void -> (), Fn -> f64 (closures are stored behind a numeric alias at
// call sites since the source language has no first-class function type
// annotation beyond "this is callable").
func rustType(t ast.Type) string {
	switch t {
	case ast.TypeBool:
		return "bool"
	case ast.TypeStr:
		return "String"
	case ast.TypeVoid:
		return "()"
	case ast.TypeFn:
		return "f64"
	default:
		return "f64"
	}
}

func (e *rustEmitter) stmts(ss []lowered.Stmt, depth int) {
	for _, s := range ss {
		e.stmt(s, depth)
	}
}

func (e *rustEmitter) stmt(s lowered.Stmt, depth int) {
	ind := e.indent(depth)
	switch n := s.(type) {
	case *lowered.Assign:
		ty := rustType(n.Type)
		e.define(n.Name, ty)
		fmt.Fprintf(e.b, "%slet mut %s: %s = %s;\n", ind, n.Name, ty, e.coerce(n.Value, ty))

	case *lowered.ExprStmt:
		if call, ok := n.X.(*lowered.Call); ok && isPrintRef(call.Callee) {
			fmt.Fprintf(e.b, "%sprintln!(\"{}\", %s);\n", ind, e.argList(call.Args))
			return
		}
		fmt.Fprintf(e.b, "%s%s;\n", ind, e.expr(n.X))

	case *lowered.If:
		fmt.Fprintf(e.b, "%sif %s {\n", ind, e.coerce(n.Cond, "bool"))
		e.push()
		e.stmts(n.Then, depth+1)
		e.pop()
		if len(n.Else) > 0 {
			fmt.Fprintf(e.b, "%s} else {\n", ind)
			e.push()
			e.stmts(n.Else, depth+1)
			e.pop()
		}
		fmt.Fprintf(e.b, "%s}\n", ind)

	case *lowered.Loop:
		e.push()
		e.define(n.Iter, "i64")
		fmt.Fprintf(e.b, "%sfor %s in (%s as i64)..(%s as i64) {\n", ind, n.Iter, e.expr(n.Start), e.expr(n.End))
		e.stmts(n.Body, depth+1)
		e.pop()
		fmt.Fprintf(e.b, "%s}\n", ind)

	case *lowered.Fn:
		e.push()
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			ty := rustType(p.Type)
			e.define(p.Name, ty)
			params[i] = fmt.Sprintf("%s: %s", p.Name, ty)
		}
		ret := "()"
		if n.HasReturn {
			ret = rustType(n.ReturnType)
		}
		fmt.Fprintf(e.b, "%sfn %s(%s) -> %s {\n", ind, n.Name, strings.Join(params, ", "), ret)
		e.stmts(n.Body, depth+1)
		e.pop()
		fmt.Fprintf(e.b, "%s}\n", ind)

	case *lowered.Return:
		if n.Value == nil {
			fmt.Fprintf(e.b, "%sreturn;\n", ind)
		} else {
			fmt.Fprintf(e.b, "%sreturn %s;\n", ind, e.expr(n.Value))
		}
	}
}

func (e *rustEmitter) argList(args []lowered.Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = e.expr(a)
	}
	return strings.Join(parts, ", ")
}

// coerce renders x as Rust source, inserting an `as` cast or String
// conversion when x's static type doesn't match want (i64<->f64,
// bool<->f64, i64<->bool, any->String).
func (e *rustEmitter) coerce(x lowered.Expr, want string) string {
	rendered := e.expr(x)
	got := e.staticType(x)
	if got == want {
		return rendered
	}
	switch want {
	case "String":
		return fmt.Sprintf("%s.to_string()", rendered)
	case "f64", "bool":
		return fmt.Sprintf("(%s as %s)", rendered, want)
	default:
		return rendered
	}
}

func (e *rustEmitter) staticType(x lowered.Expr) string {
	switch n := x.(type) {
	case *lowered.Literal:
		switch n.Kind {
		case ast.LitBool:
			return "bool"
		case ast.LitString:
			return "String"
		default:
			return "f64"
		}
	case *lowered.Ident:
		return e.lookup(n.Name)
	default:
		return rustType(x.Type())
	}
}

func (e *rustEmitter) expr(x lowered.Expr) string {
	switch n := x.(type) {
	case *lowered.Literal:
		return rustLiteral(n)
	case *lowered.Ident:
		return n.Name
	case *lowered.Unary:
		return rustUnary(n, e)
	case *lowered.Binary:
		return e.binary(n)
	case *lowered.Call:
		if isPrintRef(n.Callee) {
			return fmt.Sprintf("println!(\"{}\", {})", e.argList(n.Args))
		}
		return fmt.Sprintf("%s(%s)", e.expr(n.Callee), e.argList(n.Args))
	case *lowered.Lambda:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Name
		}
		return fmt.Sprintf("(|%s| %s)", strings.Join(params, ", "), e.expr(n.Body))
	default:
		return ""
	}
}

// binary applies string-concatenation-via-format! when either operand is a
// String and the operator is +, per spec.md §4.7's coercion table.
func (e *rustEmitter) binary(n *lowered.Binary) string {
	if n.Op == ast.BinAdd {
		lt, rt := e.staticType(n.Left), e.staticType(n.Right)
		if lt == "String" || rt == "String" {
			return fmt.Sprintf("format!(\"{}{}\", %s, %s)", e.expr(n.Left), e.expr(n.Right))
		}
	}
	return fmt.Sprintf("(%s %s %s)", e.expr(n.Left), n.Op.String(), e.expr(n.Right))
}

func rustUnary(n *lowered.Unary, e *rustEmitter) string {
	switch n.Op {
	case ast.UnaryNot:
		return fmt.Sprintf("(!%s)", e.expr(n.Operand))
	case ast.UnaryNeg:
		return fmt.Sprintf("(-%s)", e.expr(n.Operand))
	default:
		return e.expr(n.Operand)
	}
}

func rustLiteral(n *lowered.Literal) string {
	switch n.Kind {
	case ast.LitInt:
		return strconv.FormatInt(n.Int, 10) + "_f64"
	case ast.LitFloat:
		return strconv.FormatFloat(n.Flt, 'g', -1, 64)
	case ast.LitString:
		return strconv.Quote(n.Str) + ".to_string()"
	case ast.LitBool:
		return strconv.FormatBool(n.Bool)
	default:
		return "Default::default()"
	}
}

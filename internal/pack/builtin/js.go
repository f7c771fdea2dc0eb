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

// JS is the brace-blocked, dynamically-typed stable target. printTarget, if
// non-empty, redirects "print" calls at a DOM element instead of console.log
// (used by the web bundle target).
type JS struct {
	printTarget string
}

func (j JS) Manifest() pack.Manifest {
	helpers := []string{}
	if j.printTarget != "" {
		helpers = append(helpers, "print")
	}
	return pack.Manifest{
		PackID:               "icl.pack.js",
		Version:              "1.0.0",
		Target:               "js",
		Stability:            pack.StabilityStable,
		FileExtension:        "js",
		BlockModel:           "braces",
		StatementTermination: ";",
		TypeStrategy:         "dynamic",
		RuntimeHelpers:       helpers,
		FeatureCoverage:      fullCatalogCoverage(),
		Aliases:              []string{"javascript"},
	}
}

func (j JS) Emit(mod *lowered.Module, ctx pack.EmitContext) (string, error) {
	e := &jsEmitter{b: &strings.Builder{}, printTarget: j.printTarget}
	if e.printTarget != "" {
		fmt.Fprintf(e.b, "function print(value) {\n  var el = document.getElementById(%s);\n  el.textContent += String(value) + \"\\n\";\n}\n\n", strconv.Quote(e.printTarget))
	}
	e.stmts(mod.Stmts, 0)
	return e.b.String(), nil
}

func (j JS) Scaffold(code string, ctx pack.EmitContext) (bundle.OutputBundle, error) {
	return pack.DefaultScaffold(code, j.Manifest()), nil
}

type jsEmitter struct {
	b           *strings.Builder
	printTarget string
}

func (e *jsEmitter) indent(depth int) string { return strings.Repeat("  ", depth) }

func (e *jsEmitter) stmts(ss []lowered.Stmt, depth int) {
	for _, s := range ss {
		e.stmt(s, depth)
	}
}

func (e *jsEmitter) printCall() string {
	if e.printTarget != "" {
		return "print"
	}
	return "console.log"
}

func (e *jsEmitter) stmt(s lowered.Stmt, depth int) {
	ind := e.indent(depth)
	switch n := s.(type) {
	case *lowered.Assign:
		fmt.Fprintf(e.b, "%slet %s = %s;\n", ind, n.Name, e.expr(n.Value))

	case *lowered.ExprStmt:
		if call, ok := n.X.(*lowered.Call); ok && isPrintRef(call.Callee) {
			fmt.Fprintf(e.b, "%s%s(%s);\n", ind, e.printCall(), e.argList(call.Args))
			return
		}
		fmt.Fprintf(e.b, "%s%s;\n", ind, e.expr(n.X))

	case *lowered.If:
		fmt.Fprintf(e.b, "%sif (%s) {\n", ind, e.expr(n.Cond))
		e.stmts(n.Then, depth+1)
		if len(n.Else) > 0 {
			fmt.Fprintf(e.b, "%s} else {\n", ind)
			e.stmts(n.Else, depth+1)
		}
		fmt.Fprintf(e.b, "%s}\n", ind)

	case *lowered.Loop:
		fmt.Fprintf(e.b, "%sfor (let %s = %s; %s < %s; %s++) {\n", ind, n.Iter, e.expr(n.Start), n.Iter, e.expr(n.End), n.Iter)
		e.stmts(n.Body, depth+1)
		fmt.Fprintf(e.b, "%s}\n", ind)

	case *lowered.Fn:
		fmt.Fprintf(e.b, "%sfunction %s(%s) {\n", ind, n.Name, e.paramList(n.Params))
		e.stmts(n.Body, depth+1)
		fmt.Fprintf(e.b, "%s}\n", ind)

	case *lowered.Return:
		if n.Value == nil {
			fmt.Fprintf(e.b, "%sreturn;\n", ind)
		} else {
			fmt.Fprintf(e.b, "%sreturn %s;\n", ind, e.expr(n.Value))
		}
	}
}

func (e *jsEmitter) paramList(params []lowered.Param) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

func (e *jsEmitter) argList(args []lowered.Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = e.expr(a)
	}
	return strings.Join(parts, ", ")
}

func (e *jsEmitter) expr(x lowered.Expr) string {
	switch n := x.(type) {
	case *lowered.Literal:
		return jsLiteral(n)
	case *lowered.Ident:
		return n.Name
	case *lowered.Unary:
		return jsUnary(n, e)
	case *lowered.Binary:
		return fmt.Sprintf("(%s %s %s)", e.expr(n.Left), n.Op.String(), e.expr(n.Right))
	case *lowered.Call:
		if isPrintRef(n.Callee) {
			return fmt.Sprintf("%s(%s)", e.printCall(), e.argList(n.Args))
		}
		return fmt.Sprintf("%s(%s)", e.expr(n.Callee), e.argList(n.Args))
	case *lowered.Lambda:
		return fmt.Sprintf("((%s) => %s)", e.paramList(n.Params), e.expr(n.Body))
	default:
		return ""
	}
}

func jsUnary(n *lowered.Unary, e *jsEmitter) string {
	switch n.Op {
	case ast.UnaryNot:
		return fmt.Sprintf("(!%s)", e.expr(n.Operand))
	case ast.UnaryNeg:
		return fmt.Sprintf("(-%s)", e.expr(n.Operand))
	default:
		return fmt.Sprintf("(+%s)", e.expr(n.Operand))
	}
}

func jsLiteral(n *lowered.Literal) string {
	switch n.Kind {
	case ast.LitInt:
		return strconv.FormatInt(n.Int, 10)
	case ast.LitFloat:
		return strconv.FormatFloat(n.Flt, 'g', -1, 64)
	case ast.LitString:
		return strconv.Quote(n.Str)
	case ast.LitBool:
		if n.Bool {
			return "true"
		}
		return "false"
	default:
		return "null"
	}
}

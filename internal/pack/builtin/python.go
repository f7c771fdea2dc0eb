// Package builtin holds the stable and experimental language packs
// registered by cmd/iclc: each file emits one target's source text from a
// lowered.Module and, where the target needs more than one file, its own
// Scaffold.
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

func fullCatalogCoverage() pack.FeatureSet {
	fs := pack.FeatureSet{}
	for _, f := range pack.Catalog {
		fs[f] = true
	}
	return fs
}

// Python is the indentation-blocked, dynamically-typed stable target.
type Python struct{}

func (Python) Manifest() pack.Manifest {
	return pack.Manifest{
		PackID:               "icl.pack.python",
		Version:              "1.0.0",
		Target:               "python",
		Stability:            pack.StabilityStable,
		FileExtension:        "py",
		BlockModel:           "indent",
		StatementTermination: "newline",
		TypeStrategy:         "dynamic",
		FeatureCoverage:      fullCatalogCoverage(),
		Aliases:              []string{"py"},
	}
}

func (p Python) Emit(mod *lowered.Module, ctx pack.EmitContext) (string, error) {
	e := &pyEmitter{b: &strings.Builder{}}
	e.stmts(mod.Stmts, 0)
	return e.b.String(), nil
}

func (p Python) Scaffold(code string, ctx pack.EmitContext) (bundle.OutputBundle, error) {
	return pack.DefaultScaffold(code, p.Manifest()), nil
}

type pyEmitter struct {
	b *strings.Builder
}

func (e *pyEmitter) indent(depth int) string { return strings.Repeat("    ", depth) }

func (e *pyEmitter) stmts(ss []lowered.Stmt, depth int) {
	if len(ss) == 0 {
		fmt.Fprintf(e.b, "%spass\n", e.indent(depth))
		return
	}
	for _, s := range ss {
		e.stmt(s, depth)
	}
}

func (e *pyEmitter) stmt(s lowered.Stmt, depth int) {
	ind := e.indent(depth)
	switch n := s.(type) {
	case *lowered.Assign:
		fmt.Fprintf(e.b, "%s%s = %s\n", ind, n.Name, e.expr(n.Value))

	case *lowered.ExprStmt:
		if call, ok := n.X.(*lowered.Call); ok && isPrintRef(call.Callee) {
			fmt.Fprintf(e.b, "%sprint(%s)\n", ind, e.argList(call.Args))
			return
		}
		fmt.Fprintf(e.b, "%s%s\n", ind, e.expr(n.X))

	case *lowered.If:
		fmt.Fprintf(e.b, "%sif %s:\n", ind, e.expr(n.Cond))
		e.stmts(n.Then, depth+1)
		if len(n.Else) > 0 {
			fmt.Fprintf(e.b, "%selse:\n", ind)
			e.stmts(n.Else, depth+1)
		}

	case *lowered.Loop:
		fmt.Fprintf(e.b, "%sfor %s in range(%s, %s):\n", ind, n.Iter, e.expr(n.Start), e.expr(n.End))
		e.stmts(n.Body, depth+1)

	case *lowered.Fn:
		fmt.Fprintf(e.b, "%sdef %s(%s):\n", ind, n.Name, e.paramList(n.Params))
		e.stmts(n.Body, depth+1)

	case *lowered.Return:
		if n.Value == nil {
			fmt.Fprintf(e.b, "%sreturn\n", ind)
		} else {
			fmt.Fprintf(e.b, "%sreturn %s\n", ind, e.expr(n.Value))
		}
	}
}

func (e *pyEmitter) paramList(params []lowered.Param) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

func (e *pyEmitter) argList(args []lowered.Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = e.expr(a)
	}
	return strings.Join(parts, ", ")
}

func (e *pyEmitter) expr(x lowered.Expr) string {
	switch n := x.(type) {
	case *lowered.Literal:
		return pyLiteral(n)
	case *lowered.Ident:
		return n.Name
	case *lowered.Unary:
		return pyUnary(n, e)
	case *lowered.Binary:
		return fmt.Sprintf("(%s %s %s)", e.expr(n.Left), pyBinOp(n.Op), e.expr(n.Right))
	case *lowered.Call:
		if isPrintRef(n.Callee) {
			return fmt.Sprintf("print(%s)", e.argList(n.Args))
		}
		return fmt.Sprintf("%s(%s)", e.expr(n.Callee), e.argList(n.Args))
	case *lowered.Lambda:
		return fmt.Sprintf("(lambda %s: %s)", e.paramList(n.Params), e.expr(n.Body))
	default:
		return ""
	}
}

func pyUnary(n *lowered.Unary, e *pyEmitter) string {
	switch n.Op {
	case ast.UnaryNot:
		return fmt.Sprintf("(not %s)", e.expr(n.Operand))
	case ast.UnaryNeg:
		return fmt.Sprintf("(-%s)", e.expr(n.Operand))
	default:
		return fmt.Sprintf("(+%s)", e.expr(n.Operand))
	}
}

func pyBinOp(op ast.BinaryOp) string {
	switch op {
	case ast.BinAnd:
		return "and"
	case ast.BinOr:
		return "or"
	default:
		return op.String()
	}
}

func pyLiteral(n *lowered.Literal) string {
	switch n.Kind {
	case ast.LitInt:
		return strconv.FormatInt(n.Int, 10)
	case ast.LitFloat:
		return strconv.FormatFloat(n.Flt, 'g', -1, 64)
	case ast.LitString:
		return strconv.Quote(n.Str)
	case ast.LitBool:
		if n.Bool {
			return "True"
		}
		return "False"
	default:
		return "None"
	}
}

// isPrintRef reports whether callee is a bare reference to "print", the one
// name every target treats as the built-in output intrinsic.
func isPrintRef(callee lowered.Expr) bool {
	id, ok := callee.(*lowered.Ident)
	return ok && id.Name == "print"
}

// Package compress implements the deterministic compressed-form encoding
// of a parsed program: one line per top-level statement, per spec.md §6.
package compress

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scientificaj/icl/internal/ast"
)

// Encode renders prog as the compressed form. Output always ends with a
// single trailing newline.
func Encode(prog *ast.Program) string {
	var b strings.Builder
	for _, s := range prog.Stmts {
		b.WriteString(encodeStmt(s))
		b.WriteString("\n")
	}
	return b.String()
}

func encodeStmt(s ast.Stmt) string {
	switch n := s.(type) {
	case *ast.AssignStmt:
		if n.HasHint {
			return fmt.Sprintf("%s:%s:=%s", n.Name, n.TypeHint, encodeExpr(n.Value))
		}
		return fmt.Sprintf("%s:=%s", n.Name, encodeExpr(n.Value))

	case *ast.ExprStmt:
		return encodeExpr(n.X)

	case *ast.IfStmt:
		head := fmt.Sprintf("if %s?{%s}", encodeExpr(n.Cond), encodeStmts(n.Then))
		if n.Else != nil {
			head += fmt.Sprintf(":{%s}", encodeStmts(n.Else))
		}
		return head

	case *ast.LoopStmt:
		return fmt.Sprintf("loop %s in %s..%s{%s}", n.Iter, encodeExpr(n.Start), encodeExpr(n.End), encodeStmts(n.Body))

	case *ast.FnStmt:
		params := encodeParams(n.Params)
		ret := ""
		if n.HasReturn {
			ret = ":" + n.ReturnType.String()
		}
		if n.IsExprBody() {
			return fmt.Sprintf("fn %s(%s)%s=>%s", n.Name, params, ret, encodeExpr(n.ExprBody))
		}
		return fmt.Sprintf("fn %s(%s)%s{%s}", n.Name, params, ret, encodeStmts(n.Body))

	case *ast.RetStmt:
		if n.Value == nil {
			return "ret"
		}
		return "ret " + encodeExpr(n.Value)

	case *ast.MacroStmt:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = encodeExpr(a)
		}
		return fmt.Sprintf("#%s(%s)", n.Name, strings.Join(args, ","))

	default:
		return ""
	}
}

func encodeStmts(ss []ast.Stmt) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = encodeStmt(s)
	}
	return strings.Join(parts, ";")
}

func encodeParams(params []ast.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if p.HasHint {
			parts[i] = fmt.Sprintf("%s:%s", p.Name, p.TypeHint)
		} else {
			parts[i] = p.Name
		}
	}
	return strings.Join(parts, ",")
}

func encodeExpr(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		return encodeLiteral(n)

	case *ast.IdentExpr:
		return n.Name

	case *ast.UnaryExpr:
		return encodeUnaryOp(n.Op) + encodeExpr(n.Operand)

	case *ast.BinaryExpr:
		return fmt.Sprintf("(%s%s%s)", encodeExpr(n.Left), n.Op.String(), encodeExpr(n.Right))

	case *ast.CallExpr:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = encodeExpr(a)
		}
		prefix := ""
		if n.AtPrefixed {
			prefix = "@"
		}
		return fmt.Sprintf("%s%s(%s)", prefix, encodeExpr(n.Callee), strings.Join(args, ","))

	case *ast.LambdaExpr:
		return fmt.Sprintf("fn(%s)=>%s", encodeParams(n.Params), encodeExpr(n.Body))

	default:
		return ""
	}
}

func encodeUnaryOp(op ast.UnaryOp) string {
	switch op {
	case ast.UnaryNot:
		return "!"
	case ast.UnaryNeg:
		return "-"
	default:
		return "+"
	}
}

func encodeLiteral(n *ast.LiteralExpr) string {
	switch n.Kind {
	case ast.LitInt:
		return strconv.FormatInt(n.Int, 10)
	case ast.LitFloat:
		return strconv.FormatFloat(n.Flt, 'g', -1, 64)
	case ast.LitString:
		return strconv.Quote(n.Str)
	case ast.LitBool:
		return strconv.FormatBool(n.Bool)
	default:
		return ""
	}
}

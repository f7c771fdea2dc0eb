package lowered

import (
	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/source"
)

// These constructors exist because base/sbase are unexported: the lowerer
// lives in a separate package (internal/lower) and needs a way to stamp a
// fresh ID and span onto each node without reaching into unexported fields.

func NewLiteral(id ID, sp source.Span, ty ast.Type, kind ast.LiteralKind, i int64, f float64, s string, b bool) *Literal {
	return &Literal{base: base{id, sp, ty}, Kind: kind, Int: i, Flt: f, Str: s, Bool: b}
}

func NewIdent(id ID, sp source.Span, ty ast.Type, name string) *Ident {
	return &Ident{base: base{id, sp, ty}, Name: name}
}

func NewUnary(id ID, sp source.Span, ty ast.Type, op ast.UnaryOp, operand Expr) *Unary {
	return &Unary{base: base{id, sp, ty}, Op: op, Operand: operand}
}

func NewBinary(id ID, sp source.Span, ty ast.Type, op ast.BinaryOp, left, right Expr) *Binary {
	return &Binary{base: base{id, sp, ty}, Op: op, Left: left, Right: right}
}

func NewCall(id ID, sp source.Span, ty ast.Type, callee Expr, args []Expr, atPrefixed bool) *Call {
	return &Call{base: base{id, sp, ty}, Callee: callee, Args: args, AtPrefixed: atPrefixed}
}

func NewLambda(id ID, sp source.Span, ty ast.Type, params []Param, body Expr) *Lambda {
	return &Lambda{base: base{id, sp, ty}, Params: params, Body: body}
}

func NewAssign(id ID, sp source.Span, name string, typ ast.Type, value Expr) *Assign {
	return &Assign{sbase: sbase{id, sp}, Name: name, Type: typ, Value: value}
}

func NewExprStmt(id ID, sp source.Span, x Expr) *ExprStmt {
	return &ExprStmt{sbase: sbase{id, sp}, X: x}
}

func NewIf(id ID, sp source.Span, cond Expr, then, els []Stmt) *If {
	return &If{sbase: sbase{id, sp}, Cond: cond, Then: then, Else: els}
}

func NewLoop(id ID, sp source.Span, iter string, start, end Expr, body []Stmt) *Loop {
	return &Loop{sbase: sbase{id, sp}, Iter: iter, Start: start, End: end, Body: body}
}

func NewFn(id ID, sp source.Span, name string, params []Param, returnType ast.Type, hasReturn bool, body []Stmt) *Fn {
	return &Fn{sbase: sbase{id, sp}, Name: name, Params: params, ReturnType: returnType, HasReturn: hasReturn, Body: body}
}

func NewReturn(id ID, sp source.Span, value Expr) *Return {
	return &Return{sbase: sbase{id, sp}, Value: value}
}

// Package lowered defines the Lowered Module: a target-shaped reshape of
// IR, gated by a pack's declared feature coverage and carrying the
// module-level required_helpers/diagnostics fields spec.md §3 specifies.
// It has no dependency on the lowerer or the pack registry so that both
// can depend on it without a cycle.
package lowered

import (
	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/source"
)

// ID is a fresh identifier assigned during lowering (lowered_id).
type ID uint32

type Expr interface {
	lowExprNode()
	ID() ID
	Span() source.Span
	Type() ast.Type
}

type base struct {
	id ID
	sp source.Span
	ty ast.Type
}

func (b base) ID() ID            { return b.id }
func (b base) Span() source.Span { return b.sp }
func (b base) Type() ast.Type    { return b.ty }

type Literal struct {
	base
	Kind ast.LiteralKind
	Int  int64
	Flt  float64
	Str  string
	Bool bool
}

func (*Literal) lowExprNode() {}

type Ident struct {
	base
	Name string
}

func (*Ident) lowExprNode() {}

type Unary struct {
	base
	Op      ast.UnaryOp
	Operand Expr
}

func (*Unary) lowExprNode() {}

type Binary struct {
	base
	Op    ast.BinaryOp
	Left  Expr
	Right Expr
}

func (*Binary) lowExprNode() {}

type Call struct {
	base
	Callee     Expr
	Args       []Expr
	AtPrefixed bool
}

func (*Call) lowExprNode() {}

type Param struct {
	Name string
	Type ast.Type
}

type Lambda struct {
	base
	Params []Param
	Body   Expr
}

func (*Lambda) lowExprNode() {}

type Stmt interface {
	lowStmtNode()
	ID() ID
	Span() source.Span
}

type sbase struct {
	id ID
	sp source.Span
}

func (b sbase) ID() ID            { return b.id }
func (b sbase) Span() source.Span { return b.sp }

type Assign struct {
	sbase
	Name  string
	Type  ast.Type
	Value Expr
}

func (*Assign) lowStmtNode() {}

type ExprStmt struct {
	sbase
	X Expr
}

func (*ExprStmt) lowStmtNode() {}

type If struct {
	sbase
	Cond Expr
	Then []Stmt
	Else []Stmt
}

func (*If) lowStmtNode() {}

type Loop struct {
	sbase
	Iter  string
	Start Expr
	End   Expr
	Body  []Stmt
}

func (*Loop) lowStmtNode() {}

// Fn is always canonicalized to a block body: an expression-body function
// gains an appended Return wrapping the expression (spec.md §4.5).
type Fn struct {
	sbase
	Name       string
	Params     []Param
	ReturnType ast.Type
	HasReturn  bool
	Body       []Stmt
}

func (*Fn) lowStmtNode() {}

type Return struct {
	sbase
	Value Expr
}

func (*Return) lowStmtNode() {}

// Diagnostic is a soft, non-fatal warning attached to the module.
type Diagnostic struct {
	Span    source.Span
	Message string
}

// Module is the target-shaped program handed to a pack's Emit.
type Module struct {
	Target          string
	Stmts           []Stmt
	RequiredHelpers []string
	Diagnostics     []Diagnostic
}

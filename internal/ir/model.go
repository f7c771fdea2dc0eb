// Package ir defines the canonical, target-agnostic Intermediate
// Representation: IR mirrors the AST shape but every node carries a fresh
// monotonic ir_id and the inferred expr_type from semantic analysis.
package ir

import (
	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/source"
)

// SchemaVersion is recorded on every built Module (spec.md §3).
const SchemaVersion = "1.0"

// ID is a monotonically increasing identifier assigned during IR
// construction; it is unique within one Module.
type ID uint32

// Expr is the closed IR expression sum.
type Expr interface {
	irExprNode()
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

func (*Literal) irExprNode() {}

type Ident struct {
	base
	Name string
}

func (*Ident) irExprNode() {}

type Unary struct {
	base
	Op      ast.UnaryOp
	Operand Expr
}

func (*Unary) irExprNode() {}

type Binary struct {
	base
	Op    ast.BinaryOp
	Left  Expr
	Right Expr
}

func (*Binary) irExprNode() {}

type Call struct {
	base
	Callee     Expr
	Args       []Expr
	AtPrefixed bool
}

func (*Call) irExprNode() {}

type Param struct {
	Name string
	Type ast.Type
}

type Lambda struct {
	base
	Params []Param
	Body   Expr
}

func (*Lambda) irExprNode() {}

// Stmt is the closed IR statement sum.
type Stmt interface {
	irStmtNode()
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

func (*Assign) irStmtNode() {}

type ExprStmt struct {
	sbase
	X Expr
}

func (*ExprStmt) irStmtNode() {}

type If struct {
	sbase
	Cond Expr
	Then []Stmt
	Else []Stmt
}

func (*If) irStmtNode() {}

type Loop struct {
	sbase
	Iter  string
	Start Expr
	End   Expr
	Body  []Stmt
}

func (*Loop) irStmtNode() {}

type Fn struct {
	sbase
	Name       string
	Params     []Param
	ReturnType ast.Type
	HasReturn  bool
	Body       []Stmt // nil if ExprBody set
	ExprBody   Expr
}

func (*Fn) irStmtNode() {}

func (f *Fn) IsExprBody() bool { return f.ExprBody != nil }

type Return struct {
	sbase
	Value Expr // nil for bare return
}

func (*Return) irStmtNode() {}

// Module is the built, target-agnostic IR for one compiled program.
type Module struct {
	SchemaVersion string
	Stmts         []Stmt
}

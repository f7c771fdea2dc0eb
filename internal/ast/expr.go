package ast

import "github.com/scientificaj/icl/internal/source"

// Expr is the closed expression sum. Every concrete type is a pointer type
// so that an Expr value is stable as a map key — this is the "stable
// per-expression key" (spec.md §3's ExprIdentity) the semantic analyzer and
// IR builder rely on to attach inferred types.
type Expr interface {
	exprNode()
	Span() source.Span
}

// LiteralKind distinguishes the literal sub-kinds the lexer can produce.
type LiteralKind uint8

const (
	LitInt LiteralKind = iota
	LitFloat
	LitString
	LitBool
)

// LiteralExpr is a numeric, string, or boolean literal.
type LiteralExpr struct {
	Kind LiteralKind
	// Raw holds the lexer's lexeme (already unescaped for strings).
	Raw  string
	Int  int64
	Flt  float64
	Str  string
	Bool bool
	Sp   source.Span
}

func (*LiteralExpr) exprNode()            {}
func (e *LiteralExpr) Span() source.Span { return e.Sp }

// IdentExpr references a bound name.
type IdentExpr struct {
	Name string
	Sp   source.Span
}

func (*IdentExpr) exprNode()            {}
func (e *IdentExpr) Span() source.Span { return e.Sp }

// UnaryOp is the closed set of unary operators.
type UnaryOp uint8

const (
	UnaryNot UnaryOp = iota
	UnaryNeg
	UnaryPos
)

// UnaryExpr applies a unary operator to one operand.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
	Sp      source.Span
}

func (*UnaryExpr) exprNode()            {}
func (e *UnaryExpr) Span() source.Span { return e.Sp }

// BinaryOp is the closed set of binary operators.
type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinEq
	BinNeq
	BinLt
	BinLte
	BinGt
	BinGte
	BinAnd
	BinOr
)

func (op BinaryOp) String() string {
	switch op {
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	case BinMod:
		return "%"
	case BinEq:
		return "=="
	case BinNeq:
		return "!="
	case BinLt:
		return "<"
	case BinLte:
		return "<="
	case BinGt:
		return ">"
	case BinGte:
		return ">="
	case BinAnd:
		return "&&"
	case BinOr:
		return "||"
	default:
		return "?"
	}
}

// Category groups an operator for the semantic rules and feature catalog
// of spec.md §4.3/§4.5: arithmetic, comparison, or logic.
type OpCategory uint8

const (
	CatArithmetic OpCategory = iota
	CatComparison
	CatLogic
)

func (op BinaryOp) Category() OpCategory {
	switch op {
	case BinAdd, BinSub, BinMul, BinDiv, BinMod:
		return CatArithmetic
	case BinEq, BinNeq, BinLt, BinLte, BinGt, BinGte:
		return CatComparison
	default:
		return CatLogic
	}
}

// BinaryExpr applies a binary operator to two operands.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	Sp    source.Span
}

func (*BinaryExpr) exprNode()            {}
func (e *BinaryExpr) Span() source.Span { return e.Sp }

// CallExpr is a function call. AtPrefixed records whether the call was
// written with the '@' intent marker (spec.md's at_call feature).
type CallExpr struct {
	Callee     Expr
	Args       []Expr
	AtPrefixed bool
	Sp         source.Span
}

func (*CallExpr) exprNode()            {}
func (e *CallExpr) Span() source.Span { return e.Sp }

// LambdaExpr is an anonymous function value.
type LambdaExpr struct {
	Params []Param
	Body   Expr
	Sp     source.Span
}

func (*LambdaExpr) exprNode()            {}
func (e *LambdaExpr) Span() source.Span { return e.Sp }

// Param is a function parameter: a name with an optional type hint.
type Param struct {
	Name     string
	TypeHint Type // TypeUnknown if no hint was given
	HasHint  bool
	Sp       source.Span
}

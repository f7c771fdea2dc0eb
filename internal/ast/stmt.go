package ast

import "github.com/scientificaj/icl/internal/source"

// Stmt is the closed statement sum.
type Stmt interface {
	stmtNode()
	Span() source.Span
}

// AssignStmt binds Name to Value, optionally with a type hint.
type AssignStmt struct {
	Name     string
	TypeHint Type
	HasHint  bool
	Value    Expr
	Sp       source.Span
}

func (*AssignStmt) stmtNode()            {}
func (s *AssignStmt) Span() source.Span { return s.Sp }

// ExprStmt wraps an expression used for its side effects.
type ExprStmt struct {
	X  Expr
	Sp source.Span
}

func (*ExprStmt) stmtNode()            {}
func (s *ExprStmt) Span() source.Span { return s.Sp }

// IfStmt is `if E ? { then } [ : { else } ]`.
type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt // nil if there is no else block
	Sp   source.Span
}

func (*IfStmt) stmtNode()            {}
func (s *IfStmt) Span() source.Span { return s.Sp }

// hasElse reports whether this if has an else block.
func (s *IfStmt) hasElse() bool { return s.Else != nil }

// LoopStmt is `loop i in start..end { body }`, a half-open range.
type LoopStmt struct {
	Iter  string
	Start Expr
	End   Expr
	Body  []Stmt
	Sp    source.Span
}

func (*LoopStmt) stmtNode()            {}
func (s *LoopStmt) Span() source.Span { return s.Sp }

// FnStmt is a function definition, either block-bodied or expression-bodied.
type FnStmt struct {
	Name       string
	Params     []Param
	ReturnType Type
	HasReturn  bool
	Body       []Stmt // nil if ExprBody is set
	ExprBody   Expr   // nil if Body is set
	Sp         source.Span
}

func (*FnStmt) stmtNode()            {}
func (s *FnStmt) Span() source.Span { return s.Sp }

// IsExprBody reports whether this function uses `=> expr` form.
func (s *FnStmt) IsExprBody() bool { return s.ExprBody != nil }

// RetStmt is `ret [E]`.
type RetStmt struct {
	Value Expr // nil if bare `ret`
	Sp    source.Span
}

func (*RetStmt) stmtNode()            {}
func (s *RetStmt) Span() source.Span { return s.Sp }

// MacroStmt is `#name(args)`. It must be fully expanded before IR
// construction (spec.md §3); one surviving to IR is SEM010/a fatal
// invariant violation.
type MacroStmt struct {
	Name string
	Args []Expr
	Sp   source.Span
}

func (*MacroStmt) stmtNode()            {}
func (s *MacroStmt) Span() source.Span { return s.Sp }

// Program is an ordered sequence of top-level statements.
type Program struct {
	Stmts []Stmt
	Sp    source.Span
}

// Package graph implements the Intent Graph: a labeled, typed-edge
// structural view of a program, built from the AST in parallel with IR
// construction, used for optimization, diffing, and explanation.
package graph

import "github.com/scientificaj/icl/internal/source"

// NodeID is the graph's node identifier: "n1", "n2", … assigned
// monotonically by the builder, in source order.
type NodeID string

// EdgeRole is the closed set of typed edge roles spec.md §3 names.
type EdgeRole string

const (
	RoleContains     EdgeRole = "contains"
	RoleValue        EdgeRole = "value"
	RoleExpr         EdgeRole = "expr"
	RoleCondition    EdgeRole = "condition"
	RoleContainsThen EdgeRole = "contains_then"
	RoleContainsElse EdgeRole = "contains_else"
	RoleStart        EdgeRole = "start"
	RoleEnd          EdgeRole = "end"
	RoleContainsBody EdgeRole = "contains_body"
	RoleOperand      EdgeRole = "operand"
	RoleArg          EdgeRole = "arg"
	RoleCallee       EdgeRole = "callee"
	RoleReturnExpr   EdgeRole = "return_expr"
	RoleBody         EdgeRole = "body"
)

// Node kinds. ModuleIntent is the fixed root kind; every other kind mirrors
// one AST shape.
const (
	KindModule     = "ModuleIntent"
	KindAssignment = "AssignmentIntent"
	KindExprStmt   = "ExprStmtIntent"
	KindIf         = "IfIntent"
	KindLoop       = "LoopIntent"
	KindFn         = "FnIntent"
	KindReturn     = "ReturnIntent"
	KindLiteral    = "LiteralIntent"
	KindRef        = "RefIntent"
	KindUnary      = "OperationIntent"
	KindBinary     = "OperationIntent"
	KindCall       = "CallIntent"
	KindLambda     = "LambdaIntent"
)

// IntentNode is one node of the graph: a kind label plus a free-form
// attribute bag (deep-compared for the "changed" diff predicate).
type IntentNode struct {
	ID    NodeID
	Kind  string
	Attrs map[string]any
}

// IntentEdge is one typed, optionally-ordered edge between two nodes.
// Order is nil for edge roles where sequence isn't semantic; edges with a
// nil Order sort after every ordered edge for the same (source, role).
type IntentEdge struct {
	Source NodeID
	Target NodeID
	Role   EdgeRole
	Order  *int
}

// Graph is one immutable Intent Graph value. Optimize returns a new Graph
// rather than mutating this one (spec.md §3's immutability rule).
type Graph struct {
	RootID NodeID
	Nodes  map[NodeID]IntentNode
	Edges  []IntentEdge
}

// SourceMapEntry associates one node with the span it was built from.
type SourceMapEntry struct {
	NodeID NodeID
	Span   source.Span
	Note   string
}

// SourceMap is the ordered set of entries recorded during a Build.
type SourceMap []SourceMapEntry

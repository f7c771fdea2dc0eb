package graph

import (
	"fmt"

	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/source"
)

// Builder walks an ast.Program into a Graph plus its SourceMap, assigning
// node ids n1, n2, … in the order nodes are first visited.
type Builder struct {
	nodes   map[NodeID]IntentNode
	edges   []IntentEdge
	sourceM SourceMap
	next    int
}

// Build constructs the Intent Graph and source map for prog.
func Build(prog *ast.Program) (*Graph, SourceMap) {
	b := &Builder{nodes: map[NodeID]IntentNode{}}
	root := b.node(KindModule, map[string]any{}, prog.Sp, "module root")
	for i, s := range prog.Stmts {
		child := b.stmt(s)
		order := i
		b.edge(root, child, RoleContains, &order)
	}
	return &Graph{RootID: root, Nodes: b.nodes, Edges: b.edges}, b.sourceM
}

func (b *Builder) node(kind string, attrs map[string]any, sp source.Span, note string) NodeID {
	b.next++
	id := NodeID(fmt.Sprintf("n%d", b.next))
	b.nodes[id] = IntentNode{ID: id, Kind: kind, Attrs: attrs}
	b.sourceM = append(b.sourceM, SourceMapEntry{NodeID: id, Span: sp, Note: note})
	return id
}

func (b *Builder) edge(src, dst NodeID, role EdgeRole, order *int) {
	b.edges = append(b.edges, IntentEdge{Source: src, Target: dst, Role: role, Order: order})
}

func (b *Builder) stmts(ss []ast.Stmt, parent NodeID, role EdgeRole) {
	for i, s := range ss {
		order := i
		child := b.stmt(s)
		b.edge(parent, child, role, &order)
	}
}

func (b *Builder) stmt(s ast.Stmt) NodeID {
	switch n := s.(type) {
	case *ast.AssignStmt:
		id := b.node(KindAssignment, map[string]any{"name": n.Name, "type_hint": n.TypeHint.String(), "has_hint": n.HasHint}, n.Sp, "assignment")
		valID := b.expr(n.Value)
		b.edge(id, valID, RoleValue, nil)
		return id

	case *ast.ExprStmt:
		id := b.node(KindExprStmt, map[string]any{}, n.Sp, "expression statement")
		exprID := b.expr(n.X)
		b.edge(id, exprID, RoleExpr, nil)
		return id

	case *ast.IfStmt:
		id := b.node(KindIf, map[string]any{}, n.Sp, "if")
		condID := b.expr(n.Cond)
		b.edge(id, condID, RoleCondition, nil)
		b.stmts(n.Then, id, RoleContainsThen)
		if n.Else != nil {
			b.stmts(n.Else, id, RoleContainsElse)
		}
		return id

	case *ast.LoopStmt:
		id := b.node(KindLoop, map[string]any{"iter": n.Iter}, n.Sp, "loop")
		startID := b.expr(n.Start)
		endID := b.expr(n.End)
		b.edge(id, startID, RoleStart, nil)
		b.edge(id, endID, RoleEnd, nil)
		b.stmts(n.Body, id, RoleContainsBody)
		return id

	case *ast.FnStmt:
		attrs := map[string]any{"name": n.Name, "has_return": n.HasReturn, "return_type": n.ReturnType.String(), "arity": len(n.Params)}
		id := b.node(KindFn, attrs, n.Sp, "function")
		if n.IsExprBody() {
			bodyID := b.expr(n.ExprBody)
			b.edge(id, bodyID, RoleBody, nil)
		} else {
			b.stmts(n.Body, id, RoleContainsBody)
		}
		return id

	case *ast.RetStmt:
		id := b.node(KindReturn, map[string]any{}, n.Sp, "return")
		if n.Value != nil {
			valID := b.expr(n.Value)
			b.edge(id, valID, RoleReturnExpr, nil)
		}
		return id

	default:
		return b.node(KindExprStmt, map[string]any{"unrecognized": true}, s.Span(), "unrecognized statement")
	}
}

func (b *Builder) expr(e ast.Expr) NodeID {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		return b.node(KindLiteral, literalAttrs(n), n.Sp, "literal")

	case *ast.IdentExpr:
		return b.node(KindRef, map[string]any{"name": n.Name}, n.Sp, "reference")

	case *ast.UnaryExpr:
		id := b.node(KindUnary, map[string]any{"op": unaryOpString(n.Op)}, n.Sp, "unary operation")
		operandID := b.expr(n.Operand)
		b.edge(id, operandID, RoleOperand, nil)
		return id

	case *ast.BinaryExpr:
		id := b.node(KindBinary, map[string]any{"op": n.Op.String()}, n.Sp, "binary operation")
		leftID := b.expr(n.Left)
		rightID := b.expr(n.Right)
		one := 0
		two := 1
		b.edge(id, leftID, RoleOperand, &one)
		b.edge(id, rightID, RoleOperand, &two)
		return id

	case *ast.CallExpr:
		id := b.node(KindCall, map[string]any{"at_prefixed": n.AtPrefixed}, n.Sp, "call")
		calleeID := b.expr(n.Callee)
		b.edge(id, calleeID, RoleCallee, nil)
		for i, arg := range n.Args {
			order := i
			argID := b.expr(arg)
			b.edge(id, argID, RoleArg, &order)
		}
		return id

	case *ast.LambdaExpr:
		names := make([]string, len(n.Params))
		for i, p := range n.Params {
			names[i] = p.Name
		}
		id := b.node(KindLambda, map[string]any{"params": names}, n.Sp, "lambda")
		bodyID := b.expr(n.Body)
		b.edge(id, bodyID, RoleBody, nil)
		return id

	default:
		return b.node(KindLiteral, map[string]any{"unrecognized": true}, e.Span(), "unrecognized expression")
	}
}

func unaryOpString(op ast.UnaryOp) string {
	switch op {
	case ast.UnaryNot:
		return "!"
	case ast.UnaryNeg:
		return "-"
	default:
		return "+"
	}
}

func literalAttrs(n *ast.LiteralExpr) map[string]any {
	switch n.Kind {
	case ast.LitInt:
		return map[string]any{"value": float64(n.Int), "value_type": "Num"}
	case ast.LitFloat:
		return map[string]any{"value": n.Flt, "value_type": "Num"}
	case ast.LitString:
		return map[string]any{"value": n.Str, "value_type": "Str"}
	case ast.LitBool:
		return map[string]any{"value": n.Bool, "value_type": "Bool"}
	default:
		return map[string]any{}
	}
}

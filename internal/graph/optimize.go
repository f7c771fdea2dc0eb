package graph

import "math"

// Optimize runs the three ordered passes from spec.md §4.8 over a deep copy
// of g: constant folding, dead-assignment removal, then orphan pruning.
// Folding is error-tolerant — any evaluation failure (division by zero)
// just leaves that node untouched, per spec.md §7's optimizer policy.
func Optimize(g *Graph) *Graph {
	out := deepCopy(g)
	foldConstants(out)
	removeDeadAssignments(out)
	pruneOrphans(out)
	return out
}

func deepCopy(g *Graph) *Graph {
	nodes := make(map[NodeID]IntentNode, len(g.Nodes))
	for id, n := range g.Nodes {
		attrs := make(map[string]any, len(n.Attrs))
		for k, v := range n.Attrs {
			attrs[k] = v
		}
		nodes[id] = IntentNode{ID: n.ID, Kind: n.Kind, Attrs: attrs}
	}
	edges := make([]IntentEdge, len(g.Edges))
	for i, e := range g.Edges {
		cp := e
		if e.Order != nil {
			o := *e.Order
			cp.Order = &o
		}
		edges[i] = cp
	}
	return &Graph{RootID: g.RootID, Nodes: nodes, Edges: edges}
}

// operandEdges returns the edges of role "operand" sourced at id, in Order.
func operandEdges(g *Graph, id NodeID) []IntentEdge {
	var out []IntentEdge
	for _, e := range g.Edges {
		if e.Source == id && e.Role == RoleOperand {
			out = append(out, e)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && orderLess(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func orderLess(a, b IntentEdge) bool {
	if a.Order == nil {
		return false
	}
	if b.Order == nil {
		return true
	}
	return *a.Order < *b.Order
}

func foldConstants(g *Graph) {
	changed := true
	for changed {
		changed = false
		for id, n := range g.Nodes {
			if n.Kind != KindBinary { // KindUnary and KindBinary share "OperationIntent"
				continue
			}
			op, _ := n.Attrs["op"].(string)
			operands := operandEdges(g, id)
			if foldNode(g, id, op, operands) {
				changed = true
			}
		}
	}
}

func foldNode(g *Graph, id NodeID, op string, operands []IntentEdge) bool {
	switch len(operands) {
	case 1:
		return foldUnary(g, id, op, operands[0].Target)
	case 2:
		return foldBinary(g, id, op, operands[0].Target, operands[1].Target)
	default:
		return false
	}
}

func literalValue(g *Graph, id NodeID) (any, string, bool) {
	n, ok := g.Nodes[id]
	if !ok || n.Kind != KindLiteral {
		return nil, "", false
	}
	v, ok := n.Attrs["value"]
	vt, _ := n.Attrs["value_type"].(string)
	return v, vt, ok
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}

func foldUnary(g *Graph, id NodeID, op string, operand NodeID) bool {
	v, vt, ok := literalValue(g, operand)
	if !ok {
		return false
	}
	switch op {
	case "-":
		f, ok := asFloat(v)
		if !ok {
			return false
		}
		replaceWithLiteral(g, id, -f, "Num", op)
		return true
	case "+":
		f, ok := asFloat(v)
		if !ok {
			return false
		}
		replaceWithLiteral(g, id, f, "Num", op)
		return true
	case "!":
		b, ok := v.(bool)
		if !ok || vt != "Bool" {
			return false
		}
		replaceWithLiteral(g, id, !b, "Bool", op)
		return true
	default:
		return false
	}
}

func foldBinary(g *Graph, id NodeID, op string, left, right NodeID) bool {
	lv, lt, ok := literalValue(g, left)
	if !ok {
		return false
	}
	rv, rt, ok := literalValue(g, right)
	if !ok {
		return false
	}

	switch op {
	case "==", "!=":
		eq := valuesEqual(lv, rv)
		if op == "!=" {
			eq = !eq
		}
		replaceWithLiteral(g, id, eq, "Bool", op)
		return true
	case "&&", "||":
		lb, lok := lv.(bool)
		rb, rok := rv.(bool)
		if !lok || !rok {
			return false
		}
		var result bool
		if op == "&&" {
			result = lb && rb
		} else {
			result = lb || rb
		}
		replaceWithLiteral(g, id, result, "Bool", op)
		return true
	}

	if lt == "Str" && rt == "Str" && op == "+" {
		ls, _ := lv.(string)
		rs, _ := rv.(string)
		replaceWithLiteral(g, id, ls+rs, "Str", op)
		return true
	}

	lf, lok := asFloat(lv)
	rf, rok := asFloat(rv)
	if !lok || !rok {
		return false
	}

	switch op {
	case "+":
		replaceWithLiteral(g, id, lf+rf, "Num", op)
	case "-":
		replaceWithLiteral(g, id, lf-rf, "Num", op)
	case "*":
		replaceWithLiteral(g, id, lf*rf, "Num", op)
	case "/":
		if rf == 0 {
			return false
		}
		replaceWithLiteral(g, id, lf/rf, "Num", op)
	case "%":
		if rf == 0 {
			return false
		}
		replaceWithLiteral(g, id, mod(lf, rf), "Num", op)
	case "<":
		replaceWithLiteral(g, id, lf < rf, "Bool", op)
	case "<=":
		replaceWithLiteral(g, id, lf <= rf, "Bool", op)
	case ">":
		replaceWithLiteral(g, id, lf > rf, "Bool", op)
	case ">=":
		replaceWithLiteral(g, id, lf >= rf, "Bool", op)
	default:
		return false
	}
	return true
}

func mod(a, b float64) float64 {
	return math.Mod(a, b)
}

func valuesEqual(a, b any) bool {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		return af == bf
	}
	return a == b
}

func replaceWithLiteral(g *Graph, id NodeID, value any, valueType, foldedFrom string) {
	g.Nodes[id] = IntentNode{
		ID:   id,
		Kind: KindLiteral,
		Attrs: map[string]any{
			"value":       value,
			"value_type":  valueType,
			"folded_from": foldedFrom,
		},
	}
	removeOutgoingEdges(g, id)
}

func removeOutgoingEdges(g *Graph, id NodeID) {
	out := g.Edges[:0]
	for _, e := range g.Edges {
		if e.Source != id {
			out = append(out, e)
		}
	}
	g.Edges = out
}

// removeDeadAssignments collects every referenced name (RefIntent.name) and
// removes AssignmentIntent nodes whose name is never referenced.
func removeDeadAssignments(g *Graph) {
	referenced := map[string]bool{}
	for _, n := range g.Nodes {
		if n.Kind == KindRef {
			if name, ok := n.Attrs["name"].(string); ok {
				referenced[name] = true
			}
		}
	}
	for id, n := range g.Nodes {
		if n.Kind != KindAssignment {
			continue
		}
		name, _ := n.Attrs["name"].(string)
		if !referenced[name] {
			removeNode(g, id)
		}
	}
}

func removeNode(g *Graph, id NodeID) {
	delete(g.Nodes, id)
	out := g.Edges[:0]
	for _, e := range g.Edges {
		if e.Source != id && e.Target != id {
			out = append(out, e)
		}
	}
	g.Edges = out
}

// pruneOrphans repeatedly removes any non-root node with no incoming edge.
func pruneOrphans(g *Graph) {
	changed := true
	for changed {
		changed = false
		incoming := map[NodeID]bool{}
		for _, e := range g.Edges {
			incoming[e.Target] = true
		}
		for id := range g.Nodes {
			if id == g.RootID {
				continue
			}
			if !incoming[id] {
				removeNode(g, id)
				changed = true
			}
		}
	}
}

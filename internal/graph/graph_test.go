package graph

import (
	"testing"

	"github.com/scientificaj/icl/internal/lexer"
	"github.com/scientificaj/icl/internal/parser"
	"github.com/scientificaj/icl/internal/source"
)

func parseSrc(t *testing.T, src string) *Graph {
	t.Helper()
	fs := source.NewFileSet()
	lx := lexer.New(fs, "t.icl", src)
	toks := lx.Tokenize()
	prog, bag := parser.Parse(toks, 0)
	if bag.HasErrors() {
		t.Fatalf("parse errors: %v", bag.Items())
	}
	g, _ := Build(prog)
	return g
}

func TestBuildRootIsModuleIntent(t *testing.T) {
	g := parseSrc(t, `x := 1`)
	root, ok := g.Nodes[g.RootID]
	if !ok || root.Kind != KindModule {
		t.Fatalf("expected root kind ModuleIntent, got %+v", root)
	}
}

func TestOptimizeConstantFolding(t *testing.T) {
	g := parseSrc(t, `print(1 + 2)`)
	out := Optimize(g)
	foundFolded := false
	for _, n := range out.Nodes {
		if n.Kind == KindLiteral {
			if v, ok := n.Attrs["value"].(float64); ok && v == 3 {
				if n.Attrs["folded_from"] == "+" {
					foundFolded = true
				}
			}
		}
	}
	if !foundFolded {
		t.Fatalf("expected a folded literal with value 3")
	}
}

func TestOptimizeDeadAssignmentRemoval(t *testing.T) {
	g := parseSrc(t, "x := 1\nprint(2)")
	out := Optimize(g)
	for _, n := range out.Nodes {
		if n.Kind == KindAssignment && n.Attrs["name"] == "x" {
			t.Fatalf("expected dead assignment x to be removed")
		}
	}
}

func TestOptimizeDivisionByZeroSkipsFold(t *testing.T) {
	g := parseSrc(t, `print(1 / 0)`)
	out := Optimize(g)
	sawUnfoldedDivide := false
	for _, n := range out.Nodes {
		if n.Kind == KindBinary && n.Attrs["op"] == "/" {
			sawUnfoldedDivide = true
		}
	}
	if !sawUnfoldedDivide {
		t.Fatalf("expected division by zero to remain unfolded")
	}
}

func TestDiffEmptyForIdenticalGraphs(t *testing.T) {
	g := parseSrc(t, `x := 1`)
	d := Compute(g, g)
	if len(d.AddedNodes) != 0 || len(d.RemovedNodes) != 0 || len(d.ChangedNodes) != 0 {
		t.Fatalf("expected empty diff for identical graphs, got %+v", d)
	}
}

func TestDiffChangedNodeOnValueEdit(t *testing.T) {
	before := parseSrc(t, `x := 1`)
	after := parseSrc(t, `x := 2`)
	d := Compute(before, after)
	if len(d.AddedNodes) != 0 || len(d.RemovedNodes) != 0 {
		t.Fatalf("expected no added/removed nodes for same-shape programs, got %+v", d)
	}
	if len(d.ChangedNodes) == 0 {
		t.Fatalf("expected at least one changed node")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := parseSrc(t, `x := 1 + 2`)
	data, err := ToJSON(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := FromJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.RootID != g.RootID {
		t.Fatalf("root id mismatch: %s vs %s", back.RootID, g.RootID)
	}
	if len(back.Nodes) != len(g.Nodes) {
		t.Fatalf("node count mismatch: %d vs %d", len(back.Nodes), len(g.Nodes))
	}
	if len(back.Edges) != len(g.Edges) {
		t.Fatalf("edge count mismatch: %d vs %d", len(back.Edges), len(g.Edges))
	}
}

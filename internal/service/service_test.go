package service

import (
	"testing"

	"github.com/scientificaj/icl/internal/graph"
	"github.com/scientificaj/icl/internal/pack/builtin"
)

func newService(t *testing.T) *Service {
	t.Helper()
	r, err := builtin.NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return New(r)
}

func TestCompileRequiresExactlyOneSourceParam(t *testing.T) {
	s := newService(t)
	_, err := s.Dispatch("compile", Params{"target": "python"})
	if err == nil {
		t.Fatal("expected an error when source and input_path are both missing")
	}
	payload := AsErrorPayload(err)
	if payload.Code != "SRV002" {
		t.Fatalf("expected SRV002, got %q", payload.Code)
	}
}

func TestCompileRejectsConflictingTargetParams(t *testing.T) {
	s := newService(t)
	_, err := s.Dispatch("compile", Params{
		"source":  "x := 1",
		"target":  "python",
		"targets": []string{"js"},
	})
	if err == nil {
		t.Fatal("expected a conflicting params error")
	}
	if AsErrorPayload(err).Code != "SRV001" {
		t.Fatalf("expected SRV001, got %q", AsErrorPayload(err).Code)
	}
}

func TestCompileHappyPath(t *testing.T) {
	s := newService(t)
	res, err := s.Dispatch("compile", Params{"source": "x := 1 + 2\nprint(x)", "target": "python"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	targets, ok := res["targets"].([]Result)
	if !ok || len(targets) != 1 {
		t.Fatalf("expected one target result, got %+v", res)
	}
}

func TestCheckReportsStatementCount(t *testing.T) {
	s := newService(t)
	res, err := s.Dispatch("check", Params{"source": "x := 1\ny := 2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res["statement_count"] != 2 {
		t.Fatalf("expected 2 statements, got %v", res["statement_count"])
	}
}

func TestExplainReturnsGraphJSON(t *testing.T) {
	s := newService(t)
	res, err := s.Dispatch("explain", Params{"source": "x := 1", "optimize": true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := res["graph"].(string); !ok {
		t.Fatalf("expected a graph string, got %+v", res)
	}
}

func TestCompressReturnsCompressedForm(t *testing.T) {
	s := newService(t)
	res, err := s.Dispatch("compress", Params{"source": "x := 1 + 2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res["compressed"] != "x:=(1+2)\n" {
		t.Fatalf("unexpected compressed form: %v", res["compressed"])
	}
}

func TestDiffRoundTripsGraphParams(t *testing.T) {
	s := newService(t)
	explainRes, err := s.Dispatch("explain", Params{"source": "x := 1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := explainRes["graph"].(string)

	res, err := s.Dispatch("diff", Params{"before_graph": g, "after_graph": g})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	added, ok := res["added_nodes"].([]graph.NodeID)
	if !ok {
		t.Fatalf("expected added_nodes to be a []graph.NodeID, got %T", res["added_nodes"])
	}
	if len(added) != 0 {
		t.Fatalf("expected no added nodes diffing a graph against itself, got %v", added)
	}
}

func TestCapabilitiesListsRegisteredTargets(t *testing.T) {
	s := newService(t)
	res, err := s.Dispatch("capabilities", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	targets, ok := res["targets"].([]Result)
	if !ok || len(targets) == 0 {
		t.Fatalf("expected at least one registered target, got %+v", res)
	}
}

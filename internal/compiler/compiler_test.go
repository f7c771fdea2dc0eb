package compiler

import (
	"strings"
	"testing"

	"github.com/scientificaj/icl/internal/bundle"
	"github.com/scientificaj/icl/internal/pack/builtin"
)

func TestCompileSinglePythonTarget(t *testing.T) {
	r, err := builtin.NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	front, artifact, err := CompileSource(r, "t.icl", "x := 1 + 2", "python", false)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	if front.IR == nil {
		t.Fatal("expected front-end IR to be built")
	}
	if !strings.Contains(artifact.Code, "x = (1 + 2)") {
		t.Fatalf("unexpected python code: %s", artifact.Code)
	}
}

func TestCompileTargetsPreservesOrderAndDedups(t *testing.T) {
	r, err := builtin.NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	artifacts, err := CompileTargets(r, "t.icl", "print(1)", []string{"js", "python", "js"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(artifacts.Targets) != 2 {
		t.Fatalf("expected 2 deduped targets, got %d", len(artifacts.Targets))
	}
	if artifacts.Targets[0].Target != "js" || artifacts.Targets[1].Target != "python" {
		t.Fatalf("expected order [js python], got [%s %s]", artifacts.Targets[0].Target, artifacts.Targets[1].Target)
	}
}

func TestCompileUnknownTargetFails(t *testing.T) {
	r, err := builtin.NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = CompileTargets(r, "t.icl", "x := 1", []string{"cobol"}, false)
	if err == nil {
		t.Fatal("expected an error for an unknown target")
	}
}

func TestCompileTargetsCachedPopulatesAndReusesCache(t *testing.T) {
	r, err := builtin.NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cache, err := bundle.OpenCache(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := CompileTargetsCached(r, "t.icl", "x := 1\nprint(x)", []string{"python"}, false, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := CompileTargetsCached(r, "t.icl", "x := 1\nprint(x)", []string{"python"}, false, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Targets[0].Code != second.Targets[0].Code {
		t.Fatalf("expected identical code from cache hit, got %q vs %q", first.Targets[0].Code, second.Targets[0].Code)
	}
}

func TestCompileWithOptimizeAttachesGraph(t *testing.T) {
	r, err := builtin.NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, artifact, err := CompileSource(r, "t.icl", "x := 1 + 2\nprint(x)", "python", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artifact.Graph == nil {
		t.Fatal("expected an optimized graph to be attached")
	}
}

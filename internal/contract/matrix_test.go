package contract

import (
	"testing"

	"github.com/scientificaj/icl/internal/compiler"
	"github.com/scientificaj/icl/internal/lower"
	"github.com/scientificaj/icl/internal/pack"
	"github.com/scientificaj/icl/internal/pack/builtin"
)

func TestFixturesParseAndAnalyzeCleanly(t *testing.T) {
	for _, fx := range Fixtures {
		front, err := compiler.RunFrontEnd(fx.Name+".icl", fx.Source)
		if err != nil {
			t.Fatalf("fixture %q failed front-end: %v", fx.Name, err)
		}
		if front == nil {
			t.Fatalf("fixture %q produced a nil front-end result", fx.Name)
		}
	}
}

func TestFixturesCoverEveryCatalogFeature(t *testing.T) {
	seen := pack.FeatureSet{}
	for _, fx := range Fixtures {
		front, err := compiler.RunFrontEnd(fx.Name+".icl", fx.Source)
		if err != nil {
			t.Fatalf("fixture %q failed front-end: %v", fx.Name, err)
		}
		for f, ok := range lower.Usage(front.IR) {
			if ok {
				seen[f] = true
			}
		}
	}
	for _, f := range pack.Catalog {
		if !seen[f] {
			t.Errorf("no fixture exercises catalog feature %q", f)
		}
	}
}

func TestRunClassifiesEveryBuiltinTargetWithoutContradictions(t *testing.T) {
	r, err := builtin.NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matrices := Run(r)
	if len(matrices) == 0 {
		t.Fatal("expected at least one target matrix")
	}

	for _, tm := range matrices {
		if cs := contradictions(tm); len(cs) > 0 {
			t.Errorf("target %q has contradictions: %v (observations: %+v)", tm.Target, cs, tm.Observations)
		}
	}
}

func TestStableTargetsPassRequiresFullCoverage(t *testing.T) {
	r, err := builtin.NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, tm := range Run(r) {
		if tm.Stability != pack.StabilityStable {
			continue
		}
		if !Passes(tm) {
			t.Errorf("stable target %q does not pass the contract harness; status=%+v", tm.Target, tm.Status)
		}
	}
}

func TestClassifyCells(t *testing.T) {
	pass := Observation{OK: true}
	low001 := Observation{OK: false, LOW001: true}
	otherFail := Observation{OK: false, LOW001: false}

	cases := []struct {
		name     string
		declared bool
		obs      []Observation
		want     Status
	}{
		{"unexercised", true, nil, Unexercised},
		{"supported", true, []Observation{pass}, Supported},
		{"declared_supported_but_rejected", true, []Observation{low001}, DeclaredSupportedButRejected},
		{"declared_supported_but_failed", true, []Observation{otherFail}, DeclaredSupportedButFailed},
		{"unsupported_enforced", false, []Observation{low001}, UnsupportedEnforced},
		{"declared_unsupported_but_passed", false, []Observation{pass}, DeclaredUnsupportedButPassed},
		{"declared_unsupported_but_failed_nonstruct", false, []Observation{otherFail}, DeclaredUnsupportedButFailedNonstruct},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := classify(c.declared, c.obs)
			if got != c.want {
				t.Fatalf("classify(%v, %v) = %q, want %q", c.declared, c.obs, got, c.want)
			}
		})
	}
}

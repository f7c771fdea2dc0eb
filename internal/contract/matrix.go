package contract

import (
	"errors"

	"github.com/scientificaj/icl/internal/compiler"
	"github.com/scientificaj/icl/internal/diag"
	"github.com/scientificaj/icl/internal/lower"
	"github.com/scientificaj/icl/internal/pack"
)

// Status is one of the eight feature-status cells spec.md §4.11 defines,
// classifying one (target, feature) observation across the fixture set.
type Status string

const (
	// Supported: the target declares the feature and at least one fixture
	// exercising it compiled successfully.
	Supported Status = "supported"
	// DeclaredUnsupportedButPassed: the target does not declare the
	// feature, yet a fixture exercising it compiled successfully anyway —
	// a contradiction the pass rule rejects.
	DeclaredUnsupportedButPassed Status = "declared_unsupported_but_passed"
	// DeclaredSupportedButRejected: the target declares the feature, but
	// every fixture exercising it was rejected with LOW001 — a
	// contradiction.
	DeclaredSupportedButRejected Status = "declared_supported_but_rejected"
	// UnsupportedEnforced: the target does not declare the feature, and
	// every fixture exercising it was rejected with LOW001 — consistent.
	UnsupportedEnforced Status = "unsupported_enforced"
	// DeclaredSupportedButFailed: the target declares the feature, a
	// fixture exercising it was rejected, but not via LOW001 (some other
	// failure) — a contradiction, reported distinctly from outright
	// rejection since the cause isn't the coverage gate itself.
	DeclaredSupportedButFailed Status = "declared_supported_but_failed"
	// DeclaredUnsupportedButFailedNonstruct: the target does not declare
	// the feature, and a fixture exercising it failed for a reason other
	// than LOW001 — consistent with non-coverage, but not cleanly
	// enforced, so tracked as its own cell rather than folded into
	// UnsupportedEnforced.
	DeclaredUnsupportedButFailedNonstruct Status = "declared_unsupported_but_failed_nonstruct"
	// Unexercised: no fixture in the closed set exercises this feature
	// against this target at all.
	Unexercised Status = "unexercised"
)

// Observation is one fixture's outcome compiling against one target.
type Observation struct {
	Fixture string
	Target  string
	OK      bool
	LOW001  bool // true iff the failure (OK == false) was diag.LowFeatureNotCovered
}

// TargetMatrix is the feature-status matrix for a single target: one
// Status per catalog feature, plus the raw observations that produced it.
type TargetMatrix struct {
	Target       string
	Stability    pack.Stability
	Status       map[pack.Feature]Status
	Observations []Observation
}

// Run compiles every Fixture against every target registry has registered,
// and classifies each (target, feature) pair into its status cell
// (spec.md §4.11). It never invokes the Go toolchain or any external
// interpreter — "passed" means compile_source succeeded, nothing more.
func Run(registry *pack.Registry) []TargetMatrix {
	out := make([]TargetMatrix, 0, len(registry.Targets()))
	for _, target := range registry.Targets() {
		out = append(out, runTarget(registry, target))
	}
	return out
}

func runTarget(registry *pack.Registry, target string) TargetMatrix {
	p, err := registry.Get(target)
	if err != nil {
		return TargetMatrix{Target: target, Status: map[pack.Feature]Status{}}
	}
	manifest := p.Manifest()

	// usedBy[f] collects every fixture observation that exercises f.
	usedBy := map[pack.Feature][]Observation{}
	var all []Observation

	for _, fx := range Fixtures {
		front, err := compiler.RunFrontEnd(fx.Name+".icl", fx.Source)
		if err != nil {
			// A fixture that doesn't even parse/analyze is a harness bug,
			// not a target-coverage signal; skip it for this target.
			continue
		}
		used := lower.Usage(front.IR)

		_, compileErr := compiler.CompileSource(registry, fx.Name+".icl", fx.Source, target, false)
		obs := Observation{Fixture: fx.Name, Target: target, OK: compileErr == nil}
		if compileErr != nil {
			var derr *diag.Error
			obs.LOW001 = errors.As(compileErr, &derr) && derr.Diag.Code == diag.LowFeatureNotCovered
		}
		all = append(all, obs)

		for _, f := range pack.Catalog {
			if used[f] {
				usedBy[f] = append(usedBy[f], obs)
			}
		}
	}

	status := map[pack.Feature]Status{}
	for _, f := range pack.Catalog {
		status[f] = classify(manifest.FeatureCoverage[f], usedBy[f])
	}

	return TargetMatrix{Target: target, Stability: manifest.Stability, Status: status, Observations: all}
}

func classify(declared bool, obs []Observation) Status {
	if len(obs) == 0 {
		return Unexercised
	}

	anyPass := false
	anyLOW001 := false
	anyOtherFail := false
	for _, o := range obs {
		switch {
		case o.OK:
			anyPass = true
		case o.LOW001:
			anyLOW001 = true
		default:
			anyOtherFail = true
		}
	}

	if declared {
		if anyPass {
			return Supported
		}
		if anyOtherFail {
			return DeclaredSupportedButFailed
		}
		return DeclaredSupportedButRejected
	}

	if anyPass {
		return DeclaredUnsupportedButPassed
	}
	if anyLOW001 && !anyOtherFail {
		return UnsupportedEnforced
	}
	return DeclaredUnsupportedButFailedNonstruct
}

// contradictions are the status cells that represent a target's declared
// coverage disagreeing with its observed behavior.
func contradictions(tm TargetMatrix) []pack.Feature {
	var out []pack.Feature
	for _, f := range pack.Catalog {
		switch tm.Status[f] {
		case DeclaredUnsupportedButPassed, DeclaredSupportedButRejected, DeclaredSupportedButFailed:
			out = append(out, f)
		}
	}
	return out
}

// Passes applies spec.md §4.11's pass rule to tm: a stable target passes
// iff it has no contradictions and every catalog feature is Supported; an
// experimental or beta target passes iff it simply has no contradictions.
func Passes(tm TargetMatrix) bool {
	if len(contradictions(tm)) > 0 {
		return false
	}
	if tm.Stability != pack.StabilityStable {
		return true
	}
	for _, f := range pack.Catalog {
		if tm.Status[f] != Supported {
			return false
		}
	}
	return true
}

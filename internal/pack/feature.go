// Package pack defines the language-pack contract: manifest, feature
// catalog, registry, and the Pack interface (emit + scaffold) every target
// backend implements.
package pack

// Feature is one entry of the closed feature catalog from spec.md §3.
type Feature string

const (
	FeatureAssignment     Feature = "assignment"
	FeatureExpressionStmt Feature = "expression_stmt"
	FeatureIf             Feature = "if"
	FeatureLoop           Feature = "loop"
	FeatureFunction       Feature = "function"
	FeatureReturn         Feature = "return"
	FeatureLiteral        Feature = "literal"
	FeatureReference      Feature = "reference"
	FeatureUnary          Feature = "unary"
	FeatureArithmetic     Feature = "arithmetic"
	FeatureComparison     Feature = "comparison"
	FeatureLogic          Feature = "logic"
	FeatureCall           Feature = "call"
	FeatureAtCall         Feature = "at_call"
	FeatureTypedAnnot     Feature = "typed_annotation"
)

// Catalog is the full closed set, in the order spec.md §3 lists it.
var Catalog = []Feature{
	FeatureAssignment, FeatureExpressionStmt, FeatureIf, FeatureLoop,
	FeatureFunction, FeatureReturn, FeatureLiteral, FeatureReference,
	FeatureUnary, FeatureArithmetic, FeatureComparison, FeatureLogic,
	FeatureCall, FeatureAtCall, FeatureTypedAnnot,
}

// FeatureSet is a coverage/usage map over the closed catalog.
type FeatureSet map[Feature]bool

// Missing returns every feature present in used but not true in declared,
// sorted in catalog order (spec.md §4.5's LOW001 gate).
func Missing(used FeatureSet, declared FeatureSet) []Feature {
	var out []Feature
	for _, f := range Catalog {
		if used[f] && !declared[f] {
			out = append(out, f)
		}
	}
	return out
}

// Package contract implements the contract test harness of spec.md §4.11:
// compile a closed set of canonical fixture programs against every
// registered target and build a feature-status matrix.
package contract

// Fixture is one canonical program the harness compiles against every
// registered target. The feature set it exercises is derived from its IR
// via lower.Usage rather than declared by hand, so it can never drift from
// what the program actually does.
type Fixture struct {
	Name   string
	Source string
}

// Fixtures is the closed set the harness runs, grounded on
// original_source/tests/test_golden_programs.py's GOLDEN_PROGRAMS, plus two
// extra programs (unary_toggle, typed_pipeline) added so every catalog
// feature is exercised by at least one fixture.
var Fixtures = []Fixture{
	{
		Name:   "factorial",
		Source: "fn fact(n:Num):Num { if n <= 1 ? { ret 1 } : { ret n * @fact(n - 1) } }\nprint(@fact(5))",
	},
	{
		Name:   "loop_sum",
		Source: "sum := 0\nloop i in 0..5 { sum := sum + i }\nprint(sum)",
	},
	{
		Name:   "nested_conditional",
		Source: "x := 3\nif x > 2 ? { if x < 10 ? { print(1) } : { print(2) } } : { print(0) }",
	},
	{
		Name:   "function_chain",
		Source: "fn add(a:Num,b:Num):Num => a + b\nfn twice(v:Num):Num => @add(v, v)\nprint(@twice(7))",
	},
	{
		Name:   "logic_gate",
		Source: "ok := true && !false\nif ok ? { print(1) } : { print(0) }",
	},
	{
		Name:   "unary_toggle",
		Source: "flag := !true\nprint(flag)",
	},
	{
		Name:   "typed_pipeline",
		Source: "fn id(v:Num):Num { ret v }\nn:Num := @id(9)\nprint(n)",
	},
}

package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/bundle"
	"github.com/scientificaj/icl/internal/lowered"
	"github.com/scientificaj/icl/internal/pack"
)

// braceProfile is the per-target syntax table a BraceTarget emits from. The
// experimental packs are all structurally brace/C-family languages, so one
// emitter parameterized by this profile covers them, at the cost of
// declaring typed_annotation, logic, and at_call unsupported (none of them
// get a faithful Any-compatible gradual type system or a short-circuit
// boolean idiom worth emitting in a best-effort scaffold).
type braceProfile struct {
	target    string
	aliases   []string
	ext       string
	letKw     string // variable declaration keyword, e.g. "var", "let"
	fnKw      string // function declaration keyword, e.g. "function", "" for C-family
	printFmt  string // Printf-style format string taking one argument
	semicolon bool
}

var braceProfiles = []braceProfile{
	{target: "go", ext: "go", letKw: "", fnKw: "func", printFmt: "fmt.Println(%s)", semicolon: false},
	{target: "java", ext: "java", letKw: "var", fnKw: "", printFmt: "System.out.println(%s)", semicolon: true},
	{target: "csharp", aliases: []string{"c#"}, ext: "cs", letKw: "var", fnKw: "", printFmt: "Console.WriteLine(%s)", semicolon: true},
	{target: "cpp", aliases: []string{"c++"}, ext: "cpp", letKw: "auto", fnKw: "", printFmt: "std::cout << %s << std::endl", semicolon: true},
	{target: "php", ext: "php", letKw: "", fnKw: "function", printFmt: "echo %s", semicolon: true},
	{target: "ruby", ext: "rb", letKw: "", fnKw: "def", printFmt: "puts %s", semicolon: false},
	{target: "kotlin", ext: "kt", letKw: "var", fnKw: "fun", printFmt: "println(%s)", semicolon: false},
	{target: "swift", ext: "swift", letKw: "var", fnKw: "func", printFmt: "print(%s)", semicolon: false},
	{target: "lua", ext: "lua", letKw: "local", fnKw: "function", printFmt: "print(%s)", semicolon: false},
	{target: "dart", ext: "dart", letKw: "var", fnKw: "", printFmt: "print(%s)", semicolon: true},
	{target: "typescript", aliases: []string{"ts"}, ext: "ts", letKw: "let", fnKw: "function", printFmt: "console.log(%s)", semicolon: true},
}

// unsupportedFeatures is the coverage every experimental brace target
// declares: the full catalog minus typed_annotation, logic, and at_call.
func unsupportedFeatures() pack.FeatureSet {
	fs := fullCatalogCoverage()
	delete(fs, pack.FeatureTypedAnnot)
	delete(fs, pack.FeatureLogic)
	delete(fs, pack.FeatureAtCall)
	return fs
}

// BraceTarget is the shared experimental pack for every profile above.
type BraceTarget struct {
	Profile braceProfile
}

// ExperimentalPacks returns one BraceTarget per profile, ready for
// registration.
func ExperimentalPacks() []pack.Pack {
	out := make([]pack.Pack, len(braceProfiles))
	for i, p := range braceProfiles {
		out[i] = BraceTarget{Profile: p}
	}
	return out
}

func (t BraceTarget) Manifest() pack.Manifest {
	return pack.Manifest{
		PackID:               "icl.pack.experimental." + t.Profile.target,
		Version:              "0.1.0",
		Target:               t.Profile.target,
		Stability:            pack.StabilityExperimental,
		FileExtension:        t.Profile.ext,
		BlockModel:           "braces",
		StatementTermination: termLabel(t.Profile.semicolon),
		TypeStrategy:         "best-effort",
		FeatureCoverage:      unsupportedFeatures(),
		Aliases:              t.Profile.aliases,
	}
}

func termLabel(semi bool) string {
	if semi {
		return ";"
	}
	return "newline"
}

func (t BraceTarget) Emit(mod *lowered.Module, ctx pack.EmitContext) (string, error) {
	e := &braceEmitter{b: &strings.Builder{}, p: t.Profile}
	e.stmts(mod.Stmts, 0)
	return e.b.String(), nil
}

func (t BraceTarget) Scaffold(code string, ctx pack.EmitContext) (bundle.OutputBundle, error) {
	return pack.DefaultScaffold(code, t.Manifest()), nil
}

type braceEmitter struct {
	b *strings.Builder
	p braceProfile
}

func (e *braceEmitter) term() string {
	if e.p.semicolon {
		return ";"
	}
	return ""
}

func (e *braceEmitter) indent(depth int) string { return strings.Repeat("  ", depth) }

func (e *braceEmitter) stmts(ss []lowered.Stmt, depth int) {
	for _, s := range ss {
		e.stmt(s, depth)
	}
}

func (e *braceEmitter) stmt(s lowered.Stmt, depth int) {
	ind := e.indent(depth)
	switch n := s.(type) {
	case *lowered.Assign:
		decl := e.p.letKw
		if decl != "" {
			decl += " "
		}
		fmt.Fprintf(e.b, "%s%s%s = %s%s\n", ind, decl, n.Name, e.expr(n.Value), e.term())

	case *lowered.ExprStmt:
		if call, ok := n.X.(*lowered.Call); ok && isPrintRef(call.Callee) {
			fmt.Fprintf(e.b, "%s%s%s\n", ind, fmt.Sprintf(e.p.printFmt, e.argList(call.Args)), e.term())
			return
		}
		fmt.Fprintf(e.b, "%s%s%s\n", ind, e.expr(n.X), e.term())

	case *lowered.If:
		fmt.Fprintf(e.b, "%sif (%s) {\n", ind, e.expr(n.Cond))
		e.stmts(n.Then, depth+1)
		if len(n.Else) > 0 {
			fmt.Fprintf(e.b, "%s} else {\n", ind)
			e.stmts(n.Else, depth+1)
		}
		fmt.Fprintf(e.b, "%s}\n", ind)

	case *lowered.Loop:
		fmt.Fprintf(e.b, "%sfor (%s = %s; %s < %s; %s++) {\n", ind, n.Iter, e.expr(n.Start), n.Iter, e.expr(n.End), n.Iter)
		e.stmts(n.Body, depth+1)
		fmt.Fprintf(e.b, "%s}\n", ind)

	case *lowered.Fn:
		kw := e.p.fnKw
		if kw != "" {
			kw += " "
		}
		fmt.Fprintf(e.b, "%s%s%s(%s) {\n", ind, kw, n.Name, e.paramList(n.Params))
		e.stmts(n.Body, depth+1)
		fmt.Fprintf(e.b, "%s}\n", ind)

	case *lowered.Return:
		if n.Value == nil {
			fmt.Fprintf(e.b, "%sreturn%s\n", ind, e.term())
		} else {
			fmt.Fprintf(e.b, "%sreturn %s%s\n", ind, e.expr(n.Value), e.term())
		}
	}
}

func (e *braceEmitter) paramList(params []lowered.Param) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

func (e *braceEmitter) argList(args []lowered.Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = e.expr(a)
	}
	return strings.Join(parts, ", ")
}

func (e *braceEmitter) expr(x lowered.Expr) string {
	switch n := x.(type) {
	case *lowered.Literal:
		return braceLiteral(n)
	case *lowered.Ident:
		return n.Name
	case *lowered.Unary:
		return braceUnary(n, e)
	case *lowered.Binary:
		return fmt.Sprintf("(%s %s %s)", e.expr(n.Left), n.Op.String(), e.expr(n.Right))
	case *lowered.Call:
		if isPrintRef(n.Callee) {
			return fmt.Sprintf(e.p.printFmt, e.argList(n.Args))
		}
		return fmt.Sprintf("%s(%s)", e.expr(n.Callee), e.argList(n.Args))
	case *lowered.Lambda:
		return fmt.Sprintf("(%s) -> %s", e.paramList(n.Params), e.expr(n.Body))
	default:
		return ""
	}
}

func braceUnary(n *lowered.Unary, e *braceEmitter) string {
	switch n.Op {
	case ast.UnaryNot:
		return fmt.Sprintf("(!%s)", e.expr(n.Operand))
	case ast.UnaryNeg:
		return fmt.Sprintf("(-%s)", e.expr(n.Operand))
	default:
		return fmt.Sprintf("(+%s)", e.expr(n.Operand))
	}
}

func braceLiteral(n *lowered.Literal) string {
	switch n.Kind {
	case ast.LitInt:
		return strconv.FormatInt(n.Int, 10)
	case ast.LitFloat:
		return strconv.FormatFloat(n.Flt, 'g', -1, 64)
	case ast.LitString:
		return strconv.Quote(n.Str)
	case ast.LitBool:
		return strconv.FormatBool(n.Bool)
	default:
		return "null"
	}
}

// Package compiler implements the orchestrator: one shared front-end run
// followed by a per-target lowering/emission fan-out, per spec.md §4.9.
package compiler

import (
	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/graph"
	"github.com/scientificaj/icl/internal/ir"
	"github.com/scientificaj/icl/internal/lexer"
	"github.com/scientificaj/icl/internal/parser"
	"github.com/scientificaj/icl/internal/sema"
	"github.com/scientificaj/icl/internal/source"
)

// FrontEnd is the shared, target-independent result of lexing, parsing,
// semantic analysis, IR construction, and Intent Graph construction — run
// exactly once per compile regardless of how many targets are requested.
type FrontEnd struct {
	FileSet   *source.FileSet
	Program   *ast.Program
	Sema      *sema.Result
	IR        *ir.Module
	Graph     *graph.Graph
	SourceMap graph.SourceMap
}

// RunFrontEnd lexes and parses filename/src, then builds the semantic
// result, IR module, and AST-derived Intent Graph. It fails fast on the
// first stage that reports a fatal diagnostic, per spec.md §7's per-stage
// policy.
func RunFrontEnd(filename, src string) (*FrontEnd, error) {
	fs := source.NewFileSet()
	lx := lexer.New(fs, filename, src)
	toks := lx.Tokenize()
	if lx.Errors().HasErrors() {
		return nil, lx.Errors().ToError()
	}

	fid := source.FileID(0)
	prog, bag := parser.Parse(toks, fid)
	if bag.HasErrors() {
		return nil, bag.ToError()
	}

	semaRes, semaBag := sema.Analyze(prog)
	if semaBag.HasErrors() {
		return nil, semaBag.ToError()
	}

	irMod, err := ir.BuildFrom(prog, semaRes)
	if err != nil {
		return nil, err
	}

	g, srcMap := graph.Build(prog)

	return &FrontEnd{
		FileSet:   fs,
		Program:   prog,
		Sema:      semaRes,
		IR:        irMod,
		Graph:     g,
		SourceMap: srcMap,
	}, nil
}

// Package service implements the ICL façade: the single dispatch surface
// the CLI and any embedder call through, per spec.md §6. It owns parameter
// validation and the uniform {code, message, hint?, span?} error payload;
// everything else it delegates to internal/compiler, internal/compress,
// and internal/graph.
package service

import (
	"errors"
	"os"

	"github.com/scientificaj/icl/internal/ast"
	"github.com/scientificaj/icl/internal/compiler"
	"github.com/scientificaj/icl/internal/compress"
	"github.com/scientificaj/icl/internal/diag"
	"github.com/scientificaj/icl/internal/graph"
	"github.com/scientificaj/icl/internal/lexer"
	"github.com/scientificaj/icl/internal/pack"
	"github.com/scientificaj/icl/internal/parser"
	"github.com/scientificaj/icl/internal/source"
)

// Params is the loosely-typed bag every method reads its arguments from.
// Keys mirror spec.md §6's method parameter tables.
type Params map[string]any

// Result is the loosely-typed bag every method returns on success.
type Result map[string]any

// Service dispatches the six façade methods against one pack registry.
type Service struct {
	Registry *pack.Registry
}

// New builds a Service around registry.
func New(registry *pack.Registry) *Service {
	return &Service{Registry: registry}
}

// ErrorPayload is the uniform shape every failed call returns, per
// spec.md §6: {code, message, hint?, span?}.
type ErrorPayload struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Hint    string         `json:"hint,omitempty"`
	Span    map[string]any `json:"span,omitempty"`
}

// AsErrorPayload converts any error returned by a façade method into its
// structured payload. Errors that aren't a *diag.Error (e.g. raw I/O
// failures) are reported with an empty code.
func AsErrorPayload(err error) ErrorPayload {
	var de *diag.Error
	if errors.As(err, &de) {
		d := de.Diagnostic()
		p := ErrorPayload{Code: string(d.Code), Message: d.Message, Hint: d.Hint}
		if d.HasSpan {
			p.Span = map[string]any{
				"file":  d.Primary.File,
				"start": d.Primary.Start,
				"end":   d.Primary.End,
			}
		}
		return p
	}
	return ErrorPayload{Message: err.Error()}
}

// Dispatch routes method to the matching façade operation.
func (s *Service) Dispatch(method string, p Params) (Result, error) {
	switch method {
	case "compile":
		return s.compile(p)
	case "check":
		return s.check(p)
	case "explain":
		return s.explain(p)
	case "compress":
		return s.compress(p)
	case "diff":
		return s.diff(p)
	case "capabilities":
		return s.capabilities(p)
	default:
		return nil, diag.NewNoSpan(diag.SrvMissingParam, "unknown method %q", method)
	}
}

// readSource resolves the exactly-one-of source/input_path parameter pair
// (SRV001/SRV002).
func readSource(p Params) (string, error) {
	src, hasSrc := p["source"].(string)
	path, hasPath := p["input_path"].(string)
	switch {
	case hasSrc && hasPath:
		return "", diag.NewNoSpan(diag.SrvConflictingParams, "exactly one of source/input_path may be set")
	case hasSrc:
		return src, nil
	case hasPath:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", diag.NewNoSpan(diag.SrvMissingParam, "could not read input_path %q: %v", path, err)
		}
		return string(data), nil
	default:
		return "", diag.NewNoSpan(diag.SrvMissingParam, "exactly one of source/input_path is required")
	}
}

func readFilename(p Params) string {
	if path, ok := p["input_path"].(string); ok && path != "" {
		return path
	}
	if name, ok := p["filename"].(string); ok && name != "" {
		return name
	}
	return "input.icl"
}

// readTargets resolves the exactly-one-of target/targets parameter pair
// into a non-empty slice (SRV001/SRV002).
func readTargets(p Params) ([]string, error) {
	one, hasOne := p["target"].(string)
	many, hasMany := p["targets"].([]string)
	if !hasMany {
		if raw, ok := p["targets"].([]any); ok {
			for _, v := range raw {
				if s, ok := v.(string); ok {
					many = append(many, s)
				}
			}
			hasMany = len(raw) > 0
		}
	}
	switch {
	case hasOne && hasMany:
		return nil, diag.NewNoSpan(diag.SrvConflictingParams, "exactly one of target/targets may be set")
	case hasOne:
		return []string{one}, nil
	case hasMany:
		if len(many) == 0 {
			return nil, diag.NewNoSpan(diag.SrvMissingParam, "targets must not be empty")
		}
		return many, nil
	default:
		return nil, diag.NewNoSpan(diag.SrvMissingParam, "exactly one of target/targets is required")
	}
}

func readOptimize(p Params) bool {
	b, _ := p["optimize"].(bool)
	return b
}

// compile runs the full pipeline and returns per-target emitted code and
// scaffold bundles (spec.md §4.9).
func (s *Service) compile(p Params) (Result, error) {
	src, err := readSource(p)
	if err != nil {
		return nil, err
	}
	targets, err := readTargets(p)
	if err != nil {
		return nil, err
	}
	optimize := readOptimize(p)

	artifacts, err := compiler.CompileTargets(s.Registry, readFilename(p), src, targets, optimize)
	if err != nil {
		return nil, err
	}

	outTargets := make([]Result, 0, len(artifacts.Targets))
	for _, t := range artifacts.Targets {
		entry := Result{
			"target":       t.Target,
			"code":         t.Code,
			"files":        t.Bundle.Files,
			"primary_path": t.Bundle.PrimaryPath,
			"bundle":       t.Bundle,
		}
		if t.Graph != nil {
			gj, err := graph.ToJSON(t.Graph)
			if err != nil {
				return nil, err
			}
			entry["graph"] = string(gj)
		}
		outTargets = append(outTargets, entry)
	}
	return Result{"targets": outTargets}, nil
}

// check runs the front-end only and reports whether it succeeded, without
// emitting any target code (spec.md §4.9).
func (s *Service) check(p Params) (Result, error) {
	src, err := readSource(p)
	if err != nil {
		return nil, err
	}
	front, err := compiler.RunFrontEnd(readFilename(p), src)
	if err != nil {
		return nil, err
	}
	return Result{"ok": true, "statement_count": len(front.Program.Stmts)}, nil
}

// explain runs the front-end and returns the Intent Graph, optimized if
// requested (spec.md §4.8).
func (s *Service) explain(p Params) (Result, error) {
	src, err := readSource(p)
	if err != nil {
		return nil, err
	}
	front, err := compiler.RunFrontEnd(readFilename(p), src)
	if err != nil {
		return nil, err
	}
	g := front.Graph
	if readOptimize(p) {
		g = graph.Optimize(g)
	}
	data, err := graph.ToJSON(g)
	if err != nil {
		return nil, err
	}
	return Result{"graph": string(data)}, nil
}

// compress parses the source and renders its deterministic compressed
// form (spec.md §6).
func (s *Service) compress(p Params) (Result, error) {
	src, err := readSource(p)
	if err != nil {
		return nil, err
	}
	prog, err := parseOnly(readFilename(p), src)
	if err != nil {
		return nil, err
	}
	return Result{"compressed": compress.Encode(prog)}, nil
}

// diff resolves exactly one of {before_graph, before_path} and exactly one
// of {after_graph, after_path} to two Graphs, then returns their structural
// diff (spec.md §4.8, SRV003 on malformed graph JSON).
func (s *Service) diff(p Params) (Result, error) {
	before, err := readGraphParam(p, "before_graph", "before_path", "before")
	if err != nil {
		return nil, err
	}
	after, err := readGraphParam(p, "after_graph", "after_path", "after")
	if err != nil {
		return nil, err
	}
	d := graph.Compute(before, after)
	return Result{
		"added_nodes":   d.AddedNodes,
		"removed_nodes": d.RemovedNodes,
		"changed_nodes": d.ChangedNodes,
		"added_edges":   d.AddedEdges,
		"removed_edges": d.RemovedEdges,
	}, nil
}

// capabilities reports every registered target's manifest so callers can
// introspect the pack registry (spec.md §4.6).
func (s *Service) capabilities(_ Params) (Result, error) {
	manifests := s.Registry.Manifests()
	out := make([]Result, 0, len(manifests))
	for _, m := range manifests {
		out = append(out, Result{
			"target":         m.Target,
			"version":        m.Version,
			"stability":      string(m.Stability),
			"file_extension": m.FileExtension,
			"aliases":        m.Aliases,
		})
	}
	return Result{"targets": out}, nil
}

func parseOnly(filename, src string) (*ast.Program, error) {
	fs := source.NewFileSet()
	lx := lexer.New(fs, filename, src)
	toks := lx.Tokenize()
	if lx.Errors().HasErrors() {
		return nil, lx.Errors().ToError()
	}
	prog, bag := parser.Parse(toks, 0)
	if bag.HasErrors() {
		return nil, bag.ToError()
	}
	return prog, nil
}

func readGraphParam(p Params, graphKey, pathKey, label string) (*graph.Graph, error) {
	rawGraph, hasGraph := p[graphKey].(string)
	path, hasPath := p[pathKey].(string)
	switch {
	case hasGraph && hasPath:
		return nil, diag.NewNoSpan(diag.SrvConflictingParams, "exactly one of %s/%s may be set", graphKey, pathKey)
	case hasGraph:
		g, err := graph.FromJSON([]byte(rawGraph))
		if err != nil {
			return nil, diag.NewNoSpan(diag.SrvBadGraph, "%s is not a valid graph: %v", label, err)
		}
		return g, nil
	case hasPath:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, diag.NewNoSpan(diag.SrvMissingParam, "could not read %s %q: %v", pathKey, path, err)
		}
		g, err := graph.FromJSON(data)
		if err != nil {
			return nil, diag.NewNoSpan(diag.SrvBadGraph, "%s is not a valid graph: %v", label, err)
		}
		return g, nil
	default:
		return nil, diag.NewNoSpan(diag.SrvMissingParam, "exactly one of %s/%s is required", graphKey, pathKey)
	}
}

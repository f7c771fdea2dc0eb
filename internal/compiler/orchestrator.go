package compiler

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/scientificaj/icl/internal/bundle"
	"github.com/scientificaj/icl/internal/graph"
	"github.com/scientificaj/icl/internal/lower"
	"github.com/scientificaj/icl/internal/lowered"
	"github.com/scientificaj/icl/internal/pack"
)

// cacheHint carries the pieces needed for cache lookups across a call to
// CompileTargetsCached: the raw source (for keying) and the Cache to use.
// Left nil, compilation always runs live (CompileTargets' behavior).
type cacheHint struct {
	cache *bundle.Cache
	src   string
}

// TargetArtifact is one target's slice of a compile: its lowered module,
// emitted code, scaffold bundle, and (if requested) an optimized copy of
// the shared Intent Graph.
type TargetArtifact struct {
	Target       string
	Lowered      *lowered.Module
	Code         string
	Bundle       bundle.OutputBundle
	Graph        *graph.Graph // nil unless Optimize was requested
	Optimization bool
}

// MultiTargetArtifacts is the result of compiling one source against one or
// more targets: the shared front-end data plus one TargetArtifact per
// requested target, in caller order.
type MultiTargetArtifacts struct {
	Front   *FrontEnd
	Targets []TargetArtifact
}

// CompileTargets runs the front-end once, then lowers and emits against
// each requested target concurrently (one goroutine per target via
// errgroup, spec.md §5's expansion), preserving caller order in the
// result slice regardless of completion order. Target names are deduped,
// keeping the first occurrence's position.
func CompileTargets(registry *pack.Registry, filename, src string, targets []string, optimize bool) (*MultiTargetArtifacts, error) {
	return compileTargets(registry, filename, src, targets, optimize, nil)
}

// CompileTargetsCached behaves like CompileTargets, but consults cache
// first for each target and populates it after a live compile, keyed on
// (source, target, pack version) (spec.md §9's `.iclcache` wiring). A nil
// cache makes this identical to CompileTargets.
func CompileTargetsCached(registry *pack.Registry, filename, src string, targets []string, optimize bool, cache *bundle.Cache) (*MultiTargetArtifacts, error) {
	return compileTargets(registry, filename, src, targets, optimize, &cacheHint{cache: cache, src: src})
}

func compileTargets(registry *pack.Registry, filename, src string, targets []string, optimize bool, hint *cacheHint) (*MultiTargetArtifacts, error) {
	front, err := RunFrontEnd(filename, src)
	if err != nil {
		return nil, err
	}

	deduped := dedupPreserveOrder(targets)
	results := make([]TargetArtifact, len(deduped))

	g, _ := errgroup.WithContext(context.Background())
	for i, t := range deduped {
		i, t := i, t
		g.Go(func() error {
			artifact, err := compileOneTargetCached(registry, front, t, optimize, hint)
			if err != nil {
				return err
			}
			results[i] = artifact
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &MultiTargetArtifacts{Front: front, Targets: results}, nil
}

// CompileSource is compile_targets([target]) projected to its single
// element (spec.md §4.9).
func CompileSource(registry *pack.Registry, filename, src, target string, optimize bool) (*FrontEnd, TargetArtifact, error) {
	artifacts, err := CompileTargets(registry, filename, src, []string{target}, optimize)
	if err != nil {
		return nil, TargetArtifact{}, err
	}
	return artifacts.Front, artifacts.Targets[0], nil
}

// compileOneTargetCached consults hint's cache before doing a live compile,
// and populates it afterward. The cache only ever holds non-optimized
// artifacts (the Intent Graph isn't msgpack-serializable as a pointer
// graph), so an optimize=true request always compiles live.
func compileOneTargetCached(registry *pack.Registry, front *FrontEnd, target string, optimize bool, hint *cacheHint) (TargetArtifact, error) {
	if hint == nil || hint.cache == nil || optimize {
		return compileOneTarget(registry, front, target, optimize)
	}

	p, err := registry.Get(target)
	if err != nil {
		return TargetArtifact{}, err
	}
	manifest := p.Manifest()
	key := bundle.Key(hint.src, manifest.Target, manifest.Version)

	if cached, ok, err := hint.cache.Get(key); err == nil && ok {
		return TargetArtifact{Target: cached.Target, Code: cached.Code, Bundle: cached.Bundle}, nil
	}

	artifact, err := compileOneTarget(registry, front, target, optimize)
	if err != nil {
		return TargetArtifact{}, err
	}
	_ = hint.cache.Put(key, bundle.CachedArtifact{
		Target:      manifest.Target,
		PackVersion: manifest.Version,
		Code:        artifact.Code,
		Bundle:      artifact.Bundle,
	})
	return artifact, nil
}

func compileOneTarget(registry *pack.Registry, front *FrontEnd, target string, optimize bool) (TargetArtifact, error) {
	p, err := registry.Get(target)
	if err != nil {
		return TargetArtifact{}, err
	}
	manifest := p.Manifest()

	lowMod, err := lower.New(manifest).Lower(front.IR)
	if err != nil {
		return TargetArtifact{}, err
	}

	var g *graph.Graph
	if optimize {
		g = graph.Optimize(front.Graph)
	}

	ctx := pack.EmitContext{Manifest: manifest}
	code, err := p.Emit(lowMod, ctx)
	if err != nil {
		return TargetArtifact{}, err
	}

	b, err := p.Scaffold(code, ctx)
	if err != nil {
		return TargetArtifact{}, err
	}

	return TargetArtifact{
		Target:       manifest.Target,
		Lowered:      lowMod,
		Code:         code,
		Bundle:       b,
		Graph:        g,
		Optimization: optimize,
	}, nil
}

func dedupPreserveOrder(targets []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(targets))
	for _, t := range targets {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

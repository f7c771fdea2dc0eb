package pack

import (
	"sort"
	"strings"

	"github.com/scientificaj/icl/internal/diag"
)

// Registry holds packs keyed by their canonical target name, plus an alias
// table so lookups can resolve alternative spellings (spec.md §4.6).
type Registry struct {
	packs   map[string]Pack
	aliases map[string]string // alias -> canonical target
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{packs: map[string]Pack{}, aliases: map[string]string{}}
}

// Register validates p's manifest and adds it under its canonical target
// name and every declared alias. Registration failure raises PACK002.
func (r *Registry) Register(p Pack) error {
	m := p.Manifest()
	if errs := m.validate(); len(errs) > 0 {
		return diag.NewNoSpan(diag.PackInvalid, "invalid pack manifest for %q: %s", m.Target, strings.Join(errs, "; "))
	}
	if _, exists := r.packs[m.Target]; exists {
		return diag.NewNoSpan(diag.PackDuplicateName, "target %q is already registered", m.Target)
	}
	r.packs[m.Target] = p
	r.aliases[m.Target] = m.Target
	for _, alias := range m.Aliases {
		r.aliases[alias] = m.Target
	}
	return nil
}

// Resolve maps an alias or canonical name to its canonical target name.
func (r *Registry) Resolve(nameOrAlias string) (string, bool) {
	canon, ok := r.aliases[nameOrAlias]
	return canon, ok
}

// Has reports whether target (or an alias of it) is registered.
func (r *Registry) Has(target string) bool {
	_, ok := r.Resolve(target)
	return ok
}

// Get returns the pack registered for target (or one of its aliases).
// A lookup miss raises PACK001 naming every available target.
func (r *Registry) Get(target string) (Pack, error) {
	canon, ok := r.Resolve(target)
	if !ok {
		return nil, diag.NewNoSpan(diag.PackNotFound, "unknown target %q; available targets: %s", target, strings.Join(r.Targets(), ", "))
	}
	return r.packs[canon], nil
}

// Targets returns every registered canonical target name, sorted
// lexicographically, optionally filtered to one stability tier.
func (r *Registry) Targets(stability ...Stability) []string {
	var filter *Stability
	if len(stability) > 0 {
		filter = &stability[0]
	}
	var out []string
	for name, p := range r.packs {
		if filter != nil && p.Manifest().Stability != *filter {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Manifests returns the manifests of every registered pack, sorted by
// target name, optionally filtered to one stability tier.
func (r *Registry) Manifests(stability ...Stability) []Manifest {
	names := r.Targets(stability...)
	out := make([]Manifest, 0, len(names))
	for _, n := range names {
		out = append(out, r.packs[n].Manifest())
	}
	return out
}

// Validate re-runs manifest validation for one target, or every registered
// target if target is empty.
func (r *Registry) Validate(target string) error {
	if target != "" {
		p, err := r.Get(target)
		if err != nil {
			return err
		}
		if errs := p.Manifest().validate(); len(errs) > 0 {
			return diag.NewNoSpan(diag.PackInvalid, "invalid pack manifest for %q: %s", target, strings.Join(errs, "; "))
		}
		return nil
	}
	for _, name := range r.Targets() {
		if err := r.Validate(name); err != nil {
			return err
		}
	}
	return nil
}

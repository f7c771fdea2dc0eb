package pack

import (
	"github.com/scientificaj/icl/internal/bundle"
	"github.com/scientificaj/icl/internal/lowered"
)

// Module is a convenience alias so pack implementations only need to import
// this package for the Lowered Module type they consume.
type Module = lowered.Module

// EmitContext carries whatever per-compile parameters an emitter needs
// beyond the Lowered Module itself (currently just the target's own
// manifest, but kept as a struct so packs can add fields without breaking
// the interface).
type EmitContext struct {
	Manifest Manifest
}

// Pack is the contract every registered target backend implements:
// spec.md §4.6's (manifest, emit, scaffold) bundle.
type Pack interface {
	Manifest() Manifest
	Emit(mod *lowered.Module, ctx EmitContext) (string, error)
	Scaffold(code string, ctx EmitContext) (bundle.OutputBundle, error)
}

// DefaultScaffold is the one-file bundle fallback spec.md §4.6 describes:
// primary = "main." + file_extension.
func DefaultScaffold(code string, m Manifest) bundle.OutputBundle {
	path := "main." + m.FileExtension
	return bundle.NewSingleFile(path, code)
}

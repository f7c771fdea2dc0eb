// Package bundle defines the OutputBundle a pack's Scaffold produces and
// the rules for persisting it to a filesystem path (spec.md §6).
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputBundle is a named collection of files, one of which is primary.
type OutputBundle struct {
	PrimaryPath string
	Files       map[string]string // relative path -> content
}

// NewSingleFile builds the default one-file bundle every pack falls back to
// when it has no multi-file scaffold of its own.
func NewSingleFile(path, content string) OutputBundle {
	return OutputBundle{PrimaryPath: path, Files: map[string]string{path: content}}
}

// ErrAmbiguousTarget is returned when a multi-file bundle is written to a
// path that carries a file extension (CLI010 in spec.md §6).
var ErrAmbiguousTarget = fmt.Errorf("bundle: writing a multi-file bundle to a path with a file extension is ambiguous (CLI010)")

// WriteTo persists the bundle to path per spec.md §6's rules:
//   - a path with a file extension and a single-file bundle writes that
//     file's contents directly to path;
//   - a directory path (or any case that would be ambiguous for a
//     single file) creates the directory and writes each file at
//     path/relative_name;
//   - a multi-file bundle written to an extensioned path is a usage error.
func (b OutputBundle) WriteTo(path string) error {
	if len(b.Files) == 1 && filepath.Ext(path) != "" {
		for _, content := range b.Files {
			return writeFile(path, content)
		}
	}
	if filepath.Ext(path) != "" && len(b.Files) > 1 {
		return ErrAmbiguousTarget
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return err
	}
	for rel, content := range b.Files {
		full := filepath.Join(path, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return err
		}
		if err := writeFile(full, content); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path, content string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(content)
	return err
}

// Package sema implements the two-phase semantic analyzer: scope/symbol
// binding and a gradual (Any-compatible) type inference pass over the AST.
package sema

import "github.com/scientificaj/icl/internal/ast"

// SymbolInfo is what a scope binds a name to.
type SymbolInfo struct {
	Name       string
	Type       ast.Type
	IsFunction bool
	Arity      int
	ReturnType ast.Type
	ParamTypes []ast.Type
}

// scopeRec is one entry in the scope arena: a parent index (-1 for the
// module/root scope) and its own symbol table. Modeling scopes as an arena
// with parent indices (rather than heap-shared mutable records) keeps the
// analyzer's state self-contained and easy to discard after analysis, per
// the design notes in spec.md §9.
type scopeRec struct {
	parent  int
	symbols map[string]SymbolInfo
}

// scopeArena owns every scope created during one analysis pass.
type scopeArena struct {
	scopes []scopeRec
}

func newScopeArena() *scopeArena {
	a := &scopeArena{}
	a.scopes = append(a.scopes, scopeRec{parent: -1, symbols: map[string]SymbolInfo{}})
	return a
}

// root returns the module-level scope index.
func (a *scopeArena) root() int { return 0 }

// child creates a new scope nested under parent and returns its index.
func (a *scopeArena) child(parent int) int {
	a.scopes = append(a.scopes, scopeRec{parent: parent, symbols: map[string]SymbolInfo{}})
	return len(a.scopes) - 1
}

// define binds name to info in the given scope, overwriting any previous
// binding in that same scope (assignment may legally rebind a name to a
// different type).
func (a *scopeArena) define(scope int, name string, info SymbolInfo) {
	a.scopes[scope].symbols[name] = info
}

// lookup resolves name starting at scope and walking parent links.
func (a *scopeArena) lookup(scope int, name string) (SymbolInfo, bool) {
	for idx := scope; idx != -1; idx = a.scopes[idx].parent {
		if info, ok := a.scopes[idx].symbols[name]; ok {
			return info, true
		}
	}
	return SymbolInfo{}, false
}

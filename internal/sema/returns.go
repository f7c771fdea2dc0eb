package sema

import "github.com/scientificaj/icl/internal/ast"

// returnsOnEveryPath reports whether every execution path through stmts
// ends in a return: either a direct RetStmt, or an IfStmt whose then- and
// else-blocks both return on every path (spec.md §4.3). Loops never count,
// since their range may be empty.
func returnsOnEveryPath(stmts []ast.Stmt) bool {
	for _, s := range stmts {
		switch n := s.(type) {
		case *ast.RetStmt:
			return true
		case *ast.IfStmt:
			if n.Else != nil && returnsOnEveryPath(n.Then) && returnsOnEveryPath(n.Else) {
				return true
			}
		}
	}
	return false
}

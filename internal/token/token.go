package token

import "github.com/scientificaj/icl/internal/source"

// Token is a single lexical unit: its category, its exact source text, and
// its provenance span.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   source.Span
}

func (t Token) String() string {
	if t.Lexeme != "" {
		return t.Kind.String() + "(" + t.Lexeme + ")"
	}
	return t.Kind.String()
}

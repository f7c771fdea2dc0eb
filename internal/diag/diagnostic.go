package diag

import (
	"fmt"

	"github.com/scientificaj/icl/internal/source"
)

// Note attaches auxiliary context (e.g. "first defined here") to a
// Diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is the structured shape every compiler stage produces: it maps
// 1:1 onto the error payload of the service façade ({code, message, hint,
// span}).
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	HasSpan  bool
	Hint     string
	Notes    []Note
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Severity, d.Code, d.Message)
}

// Error is the Go error wrapper around a Diagnostic, so compiler stages can
// return idiomatic `error` values while still letting callers recover the
// structured payload via As/errors.As.
type Error struct {
	Diag Diagnostic
}

func (e *Error) Error() string { return e.Diag.String() }

// Diagnostic implements the small interface the service façade uses to
// extract {code, message, hint, span} without string parsing.
func (e *Error) Diagnostic() Diagnostic { return e.Diag }

// New builds an *Error carrying a fatal (SevError) Diagnostic with a span.
func New(code Code, span source.Span, format string, args ...any) *Error {
	return &Error{Diag: Diagnostic{
		Severity: SevError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Primary:  span,
		HasSpan:  true,
	}}
}

// NewNoSpan builds an *Error carrying a fatal Diagnostic with no span
// (service/CLI usage errors, which are not tied to a source location).
func NewNoSpan(code Code, format string, args ...any) *Error {
	return &Error{Diag: Diagnostic{
		Severity: SevError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
	}}
}

// WithHint returns a copy of the error annotated with a hint pointing at
// the responsible stage; used for internal invariant violations.
func (e *Error) WithHint(hint string) *Error {
	cp := *e
	cp.Diag.Hint = hint
	return &cp
}

// WithNote returns a copy of the error with an additional note appended.
func (e *Error) WithNote(span source.Span, msg string) *Error {
	cp := *e
	cp.Diag.Notes = append(append([]Note{}, cp.Diag.Notes...), Note{Span: span, Msg: msg})
	return &cp
}

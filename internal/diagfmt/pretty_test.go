package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/scientificaj/icl/internal/diag"
	"github.com/scientificaj/icl/internal/source"
)

func TestPrettyRendersHeaderAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.AddFile("t.icl", "x := foo\n")

	span := source.Span{File: f.ID, Start: 5, End: 8}
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SemUnresolvedSymbol,
		Message:  "unresolved symbol \"foo\"",
		Primary:  span,
		HasSpan:  true,
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, Options{Color: false})
	out := buf.String()

	if !strings.Contains(out, "t.icl:1:6: ERROR SEM001: unresolved symbol \"foo\"") {
		t.Fatalf("unexpected header line: %q", out)
	}
	if !strings.Contains(out, "x := foo") {
		t.Fatalf("expected source context line, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected a caret underline, got %q", out)
	}
}

func TestPrettyHandlesNoSpanDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SrvMissingParam,
		Message:  "exactly one of source/input_path is required",
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, Options{Color: false})
	out := buf.String()
	if !strings.Contains(out, "SRV002") {
		t.Fatalf("expected SRV002 in output, got %q", out)
	}
}

func TestPrettyShowsHint(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.AddFile("t.icl", "x := 1\n")
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LowUnknownIRNode,
		Message:  "internal error",
		Primary:  source.Span{File: f.ID, Start: 0, End: 1},
		HasSpan:  true,
		Hint:     "this indicates a lowerer bug",
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, Options{Color: false})
	out := buf.String()
	if !strings.Contains(out, "hint: this indicates a lowerer bug") {
		t.Fatalf("expected hint line, got %q", out)
	}
}

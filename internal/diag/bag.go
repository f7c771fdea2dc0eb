package diag

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// Bag accumulates diagnostics up to a fixed capacity. The lexer, the parser
// and the semantic analyzer each collect their diagnostics in a Bag; a
// failing stage is reported through ToError as its first diagnostic.
type Bag struct {
	items   []Diagnostic
	maximum uint16
}

// NewBag creates a Bag with the given capacity.
func NewBag(maximum int) *Bag {
	cap16, err := safecast.Conv[uint16](maximum)
	if err != nil {
		panic(fmt.Errorf("diag: bag capacity overflow: %w", err))
	}
	return &Bag{items: make([]Diagnostic, 0, cap16), maximum: cap16}
}

// Add appends d if capacity remains, reporting whether it was added.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.maximum) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Len returns the number of diagnostics currently held.
func (b *Bag) Len() int { return len(b.items) }

// HasErrors reports whether any diagnostic has SevError severity.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// Items returns a read-only view of the held diagnostics.
func (b *Bag) Items() []Diagnostic { return b.items }

// Sort orders diagnostics by file, start offset, end offset, severity
// (descending), then code, for deterministic reporting.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup removes diagnostics sharing the same (code, primary span) pair,
// keeping the first occurrence.
func (b *Bag) Dedup() {
	seen := make(map[string]bool, len(b.items))
	out := b.items[:0:0]
	for _, d := range b.items {
		key := string(d.Code) + ":" + d.Primary.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	b.items = out
}

// First returns the first diagnostic and the total count, or (Diagnostic{},
// 0) if the bag is empty. Used to build the "first error, N more" reporting
// rule from spec.md §4.2.
func (b *Bag) First() (Diagnostic, int) {
	if len(b.items) == 0 {
		return Diagnostic{}, 0
	}
	return b.items[0], len(b.items)
}

// ToError raises the first fatal diagnostic as an *Error, annotated with
// the count of additional diagnostics in its message when there is more
// than one.
func (b *Bag) ToError() *Error {
	first, n := b.First()
	if n == 0 {
		return nil
	}
	msg := first.Message
	if n > 1 {
		msg = fmt.Sprintf("%s (and %d more error(s))", msg, n-1)
	}
	return &Error{Diag: Diagnostic{
		Severity: first.Severity,
		Code:     first.Code,
		Message:  msg,
		Primary:  first.Primary,
		HasSpan:  first.HasSpan,
		Notes:    first.Notes,
	}}
}

// Package source holds provenance data shared by every later compiler stage:
// file content, byte spans, and the line/column coordinates diagnostics and
// source maps report against.
package source

import "fmt"

// FileID identifies a file registered in a FileSet.
type FileID uint32

// Span is an immutable, half-open byte range within one file.
//
// Start is inclusive, End is exclusive. A Span never spans multiple files;
// Cover/Merge on spans from different files is a no-op returning the
// receiver, since there is no single file the result could name.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// Empty reports whether the span has zero length.
func (s Span) Empty() bool { return s.Start == s.End }

// Len returns the length of the span in bytes.
func (s Span) Len() uint32 { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span that contains both s and other.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// IsBefore reports whether s starts strictly before other in the same file.
func (s Span) IsBefore(other Span) bool {
	return s.File == other.File && s.Start < other.Start
}

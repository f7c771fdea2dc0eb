// Package lexer turns ICL source text into a token stream: a single
// forward pass over the file, skipping whitespace and line comments, with
// greedy multi-character operator matching.
package lexer

import (
	"fortio.org/safecast"

	"github.com/scientificaj/icl/internal/source"
)

// Cursor is a byte-offset read position within one source file.
type Cursor struct {
	File *source.File
	Off  uint32
}

// NewCursor creates a cursor positioned at the start of f.
func NewCursor(f *source.File) Cursor {
	return Cursor{File: f, Off: 0}
}

// EOF reports whether the cursor has reached the end of the file.
func (c *Cursor) EOF() bool { return c.Off >= c.File.Len() }

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekAt returns the byte n positions ahead of the cursor, or 0 past EOF.
func (c *Cursor) PeekAt(n uint32) byte {
	off := c.Off + n
	if off >= c.File.Len() {
		return 0
	}
	return c.File.Content[off]
}

// Bump consumes and returns the current byte, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Mark is a saved cursor position, used to build a Span once a lexeme ends.
type Mark uint32

// Mark captures the current offset.
func (c *Cursor) Mark() Mark { return Mark(c.Off) }

// SpanFrom builds the Span from m to the cursor's current offset.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	start, err := safecast.Conv[uint32](m)
	if err != nil {
		panic(err)
	}
	return source.Span{File: c.File.ID, Start: start, End: c.Off}
}

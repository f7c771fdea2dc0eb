package source

import "strings"

// Position is a 1-based human-facing coordinate within a file.
type Position struct {
	Line   uint32
	Column uint32
}

// File is one registered source file: its name and content plus a cache of
// line-start byte offsets used to convert Span offsets into Positions.
type File struct {
	ID          FileID
	Name        string
	Content     string
	lineOffsets []uint32 // byte offset of the start of each line; lineOffsets[0] == 0
}

func newFile(id FileID, name, content string) *File {
	f := &File{ID: id, Name: name, Content: content}
	f.lineOffsets = append(f.lineOffsets, 0)
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			f.lineOffsets = append(f.lineOffsets, uint32(i+1))
		}
	}
	return f
}

// Len returns the byte length of the file's content.
func (f *File) Len() uint32 { return uint32(len(f.Content)) }

// Position converts a byte offset into a 1-based line/column pair.
// Column counts bytes, not runes, from the start of the line.
func (f *File) Position(offset uint32) Position {
	if offset > f.Len() {
		offset = f.Len()
	}
	lo, hi := 0, len(f.lineOffsets)-1
	line := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if f.lineOffsets[mid] <= offset {
			line = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	col := offset - f.lineOffsets[line]
	return Position{Line: uint32(line) + 1, Column: col + 1}
}

// LineText returns the content of the given 1-based line, without its
// trailing newline.
func (f *File) LineText(line uint32) string {
	if line == 0 || int(line) > len(f.lineOffsets) {
		return ""
	}
	start := f.lineOffsets[line-1]
	var end uint32
	if int(line) < len(f.lineOffsets) {
		end = f.lineOffsets[line] - 1 // exclude the '\n'
	} else {
		end = f.Len()
	}
	if end < start {
		end = start
	}
	return strings.TrimSuffix(f.Content[start:end], "\r")
}

// Text returns the substring of the file's content covered by span.
// Span.File is not checked against f.ID; callers must only pass spans
// obtained from this file.
func (f *File) Text(span Span) string {
	start, end := span.Start, span.End
	if end > f.Len() {
		end = f.Len()
	}
	if start > end {
		start = end
	}
	return f.Content[start:end]
}

// FileSpan builds a Span over the full content of the file.
func (f *File) FileSpan() Span {
	return Span{File: f.ID, Start: 0, End: f.Len()}
}

// FileSet is a registry of source files sharing one FileID namespace, so
// that Spans and diagnostics produced from different files compare and sort
// consistently within one compile.
type FileSet struct {
	files []*File
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{}
}

// AddFile registers a new file and returns its handle.
func (fs *FileSet) AddFile(name, content string) *File {
	id := FileID(len(fs.files))
	f := newFile(id, name, content)
	fs.files = append(fs.files, f)
	return f
}

// File returns the file registered under id, or nil if id is unknown.
func (fs *FileSet) File(id FileID) *File {
	if int(id) >= len(fs.files) {
		return nil
	}
	return fs.files[id]
}

// Position converts a span's start offset to a human Position using the
// span's own file.
func (fs *FileSet) Position(span Span) Position {
	f := fs.File(span.File)
	if f == nil {
		return Position{}
	}
	return f.Position(span.Start)
}

// EndPosition converts a span's end offset to a human Position.
func (fs *FileSet) EndPosition(span Span) Position {
	f := fs.File(span.File)
	if f == nil {
		return Position{}
	}
	return f.Position(span.End)
}

// Package diagfmt renders a diag.Bag as human-readable terminal output:
// one "path:line:col: SEVERITY CODE: message" header per diagnostic, a
// line of source context, and a caret-underlined span beneath it.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/scientificaj/icl/internal/diag"
	"github.com/scientificaj/icl/internal/source"
)

// Options configures Pretty's output.
type Options struct {
	Color     bool
	ShowNotes bool
}

// Pretty writes every diagnostic in bag to w. Call bag.Sort() first for a
// stable, line-ordered report.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts Options) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	infoColor := color.New(color.FgCyan, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	codeColor := color.New(color.FgMagenta)
	lineNumColor := color.New(color.FgBlue)
	underlineColor := color.New(color.FgRed, color.Bold)

	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !opts.Color

	for idx, d := range bag.Items() {
		if idx > 0 {
			fmt.Fprintln(w)
		}

		f := fs.File(d.Primary.File)
		path := "<unknown>"
		if f != nil {
			path = f.Name
		}

		sevStr := d.Severity.String()
		var sevColored string
		switch d.Severity {
		case diag.SevError:
			sevColored = errorColor.Sprint(sevStr)
		case diag.SevWarning:
			sevColored = warningColor.Sprint(sevStr)
		default:
			sevColored = infoColor.Sprint(sevStr)
		}

		if !d.HasSpan || f == nil {
			fmt.Fprintf(w, "%s: %s %s: %s\n", pathColor.Sprint(path), sevColored, codeColor.Sprint(string(d.Code)), d.Message)
			if d.Hint != "" {
				fmt.Fprintf(w, "  %s: %s\n", infoColor.Sprint("hint"), d.Hint)
			}
			continue
		}

		pos := fs.Position(d.Primary)
		endPos := fs.EndPosition(d.Primary)

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			pathColor.Sprint(path), pos.Line, pos.Column, sevColored, codeColor.Sprint(string(d.Code)), d.Message)

		lineText := f.LineText(pos.Line)
		lineNumWidth := max(len(fmt.Sprintf("%d", pos.Line)), 3)
		gutter := fmt.Sprintf("%s | ", lineNumColor.Sprint(fmt.Sprintf("%*d", lineNumWidth, pos.Line)))
		gutterLen := lineNumWidth + 3

		io.WriteString(w, gutter)
		io.WriteString(w, lineText)
		io.WriteString(w, "\n")

		endCol := endPos.Column
		if endPos.Line > pos.Line {
			endCol, _ = safecast.Conv[uint32](len(lineText) + 1)
		}
		visualStart := visualWidthUpTo(lineText, pos.Column, 8)
		visualEnd := visualWidthUpTo(lineText, endCol, 8)

		var underline strings.Builder
		for range gutterLen {
			underline.WriteByte(' ')
		}
		for range visualStart {
			underline.WriteByte(' ')
		}
		spanLen := visualEnd - visualStart
		if spanLen <= 0 {
			underline.WriteByte('^')
		} else {
			for i := 0; i < spanLen; i++ {
				if i == spanLen-1 {
					underline.WriteByte('^')
				} else {
					underline.WriteByte('~')
				}
			}
		}
		fmt.Fprintln(w, underlineColor.Sprint(underline.String()))

		if d.Hint != "" {
			fmt.Fprintf(w, "  %s: %s\n", infoColor.Sprint("hint"), d.Hint)
		}

		if opts.ShowNotes {
			for _, note := range d.Notes {
				nf := fs.File(note.Span.File)
				notePath := path
				if nf != nil {
					notePath = nf.Name
				}
				notePos := fs.Position(note.Span)
				fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
					infoColor.Sprint("note"), pathColor.Sprint(notePath), notePos.Line, notePos.Column, note.Msg)
			}
		}
	}
}

// visualWidthUpTo computes the visual column width of s up to the given
// 1-based byte column, expanding tabs and accounting for wide runes.
func visualWidthUpTo(s string, byteCol uint32, tabWidth int) int {
	if byteCol <= 1 {
		return 0
	}
	bytePos := 0
	visualPos := 0
	for _, r := range s {
		if bytePos >= int(byteCol-1) {
			break
		}
		if r == '\t' {
			visualPos = (visualPos + tabWidth) / tabWidth * tabWidth
		} else {
			visualPos += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}
	return visualPos
}

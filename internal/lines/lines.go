// Package lines implements the lines iterator (a supplemental
// interface, not one of components A-H): splitting
// text into a slice of (LineInfo, line) entries and a chain of
// modifier functions that trim, filter, sort, and annotate them
// (spec.md §6). Unlike Python's generator-based lines pipeline, every
// stage here is a plain slice-to-slice function, matching this
// module's batch-pipeline style elsewhere (split.Multisplit,
// quoted.SplitQuotedStrings): a modifier takes the entries produced by
// an earlier stage and returns the entries for the next one.
package lines

import (
	"github.com/larryhastings/big-sub001/sep"
	"github.com/larryhastings/big-sub001/split"
)

// Lines is the shared state every LineInfo in one pipeline points
// back to: the tab width used by Detab, and the starting column number
// new indent levels are measured against.
type Lines struct {
	TabWidth     int
	ColumnNumber int
}

// LineInfo carries the metadata Split (and the modifier chain)
// attaches to one line: its raw unmodified text, position, and
// whatever leading/trailing/indent bookkeeping modifiers have recorded
// against it. Extra holds caller- or modifier-defined attributes (e.g.
// Grep's match), keyed by name, mirroring the **kwargs bag the Python
// LineInfo constructor accepts.
type LineInfo struct {
	Owner        *Lines
	Raw          string // original line, trailing linebreak included
	LineNumber   int
	ColumnNumber int
	Leading      string
	Trailing     string
	End          string
	Indent       int
	Extra        map[string]any
}

// Entry is one (info, line) pair, the Go analog of the 2-tuple a
// Python lines iterator yields.
type Entry struct {
	Info *LineInfo
	Line string
}

// Detab expands tabs in s using the pipeline's tab width.
func (li *LineInfo) Detab(s string) string {
	return expandTabs(s, li.Owner.TabWidth)
}

// ClipLeading removes the leading n bytes of line, appends them
// unchanged to Leading, advances ColumnNumber by their detabbed width,
// and returns what remains of line.
func (li *LineInfo) ClipLeading(line string, n int) string {
	clipped := line[:n]
	li.Leading += clipped
	li.ColumnNumber += len(li.Detab(clipped))
	return line[n:]
}

// ClipTrailing removes the trailing n bytes of line, prepends them to
// Trailing, and returns what remains of line.
func (li *LineInfo) ClipTrailing(line string, n int) string {
	cut := len(line) - n
	li.Trailing = line[cut:] + li.Trailing
	return line[:cut]
}

func expandTabs(s string, tabWidth int) string {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	out := make([]byte, 0, len(s))
	col := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' {
			pad := tabWidth - (col % tabWidth)
			for j := 0; j < pad; j++ {
				out = append(out, ' ')
			}
			col += pad
			continue
		}
		out = append(out, c)
		if c == '\n' {
			col = 0
		} else {
			col++
		}
	}
	return string(out)
}

// Options configures Split.
type Options struct {
	Separators   *sep.Set // nil means split at linebreak characters
	LineNumber   int      // starting line number; 0 defaults to 1
	ColumnNumber int      // starting column number; 0 defaults to 1
	TabWidth     int      // 0 defaults to 8
}

// Split breaks s into Entry values (spec.md §6's `lines` constructor).
// Each line's End is the linebreak (or separator) that terminated it,
// empty for the final line if s doesn't end in one; Raw is line+End.
func Split(s string, opts Options) ([]Entry, error) {
	seps := opts.Separators
	if seps == nil {
		seps = sep.NamedUnicodeLinebreaks
	}
	lineNumber := opts.LineNumber
	if lineNumber == 0 {
		lineNumber = 1
	}
	columnNumber := opts.ColumnNumber
	if columnNumber == 0 {
		columnNumber = 1
	}
	tabWidth := opts.TabWidth
	if tabWidth == 0 {
		tabWidth = 8
	}

	owner := &Lines{TabWidth: tabWidth, ColumnNumber: columnNumber}

	pieces, err := split.Multisplit(s, seps, split.Options{MaxSplit: -1, Separate: true, Strip: split.StripNone})
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(pieces))
	for _, p := range pieces {
		raw := p.Text + p.Sep
		info := &LineInfo{
			Owner:        owner,
			Raw:          raw,
			LineNumber:   lineNumber,
			ColumnNumber: columnNumber,
			End:          p.Sep,
		}
		out = append(out, Entry{Info: info, Line: p.Text})
		lineNumber++
	}
	return out, nil
}

// SplitSlice wraps a caller-supplied slice of raw lines (already split
// on whatever boundary the caller chose, linebreaks stripped) as
// Entry values, for callers that have their own line source instead of
// a single string to split (the Go analog of passing an arbitrary
// iterable into the Python `lines` constructor).
func SplitSlice(rawLines []string, opts Options) []Entry {
	lineNumber := opts.LineNumber
	if lineNumber == 0 {
		lineNumber = 1
	}
	columnNumber := opts.ColumnNumber
	if columnNumber == 0 {
		columnNumber = 1
	}
	tabWidth := opts.TabWidth
	if tabWidth == 0 {
		tabWidth = 8
	}
	owner := &Lines{TabWidth: tabWidth, ColumnNumber: columnNumber}

	out := make([]Entry, 0, len(rawLines))
	for _, line := range rawLines {
		info := &LineInfo{
			Owner:        owner,
			Raw:          line,
			LineNumber:   lineNumber,
			ColumnNumber: columnNumber,
		}
		out = append(out, Entry{Info: info, Line: line})
		lineNumber++
	}
	return out
}

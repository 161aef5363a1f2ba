// Package pstring implements the positioned-string type (component
// F): a value-level subtype of Go's string that remembers, for every
// character of every substring, its origin source label, line number
// and column number, including tab expansion and user-chosen
// first-column indexing.
//
// Origin's lazily-computed linebreak-offset table is modeled on the
// teacher's token.Pos{Offset,Line,Column} bookkeeping (token/token.go),
// generalized from "one position" to "a cached table of every
// linebreak offset in the whole source text" since a positioned
// string must answer (line, column) for arbitrary offsets cheaply.
package pstring

import (
	"sync"

	"github.com/larryhastings/big-sub001/bigerr"
)

// Origin is the immutable source record a positioned string's
// segments point into (spec.md §3).
type Origin struct {
	Text              string
	Source            string // "" means absent
	LineNumber        int
	ColumnNumber      int
	FirstColumnNumber int
	TabWidth          int

	once       sync.Once
	breaks     []int // byte offsets of the start of each line after the first
}

// NewOrigin validates and returns a new Origin. Every argument is used
// as given; NewDefault supplies the usual defaults (line/column 1,
// first column 1, tab width 8).
func NewOrigin(text, source string, lineNumber, columnNumber, firstColumnNumber, tabWidth int) (*Origin, error) {
	if lineNumber < 0 {
		return nil, bigerr.ArgumentValueErrorf("line_number must be >= 0")
	}
	if firstColumnNumber < 0 {
		return nil, bigerr.ArgumentValueErrorf("first_column_number must be >= 0")
	}
	if columnNumber < firstColumnNumber {
		return nil, bigerr.ArgumentValueErrorf("column_number must be >= first_column_number")
	}
	if tabWidth < 1 {
		return nil, bigerr.ArgumentValueErrorf("tab_width must be >= 1")
	}
	return &Origin{
		Text:              text,
		Source:            source,
		LineNumber:        lineNumber,
		ColumnNumber:      columnNumber,
		FirstColumnNumber: firstColumnNumber,
		TabWidth:          tabWidth,
	}, nil
}

// computeBreaks fills the lazily computed linebreak-offset table
// exactly once, published atomically via sync.Once so concurrent
// readers always see either nothing or the complete table (spec.md
// §5's Origin cache requirement).
func (o *Origin) computeBreaks() {
	o.once.Do(func() {
		var breaks []int
		text := o.Text
		for i := 0; i < len(text); i++ {
			switch text[i] {
			case '\n':
				breaks = append(breaks, i+1)
			case '\r':
				if i+1 < len(text) && text[i+1] == '\n' {
					i++
				}
				breaks = append(breaks, i+1)
			}
		}
		o.breaks = breaks
	})
}

// LineColumn returns the 1-based (line, column) of the character at
// byte offset off within o.Text, honoring tab expansion and the
// Origin's first-column indexing (spec.md §3's tab-handling
// invariant).
func (o *Origin) LineColumn(off int) (line, col int) {
	o.computeBreaks()
	line = o.LineNumber
	lineStart := 0
	for _, b := range o.breaks {
		if b > off {
			break
		}
		lineStart = b
		line++
	}
	col = o.FirstColumnNumber
	for i := lineStart; i < off && i < len(o.Text); i++ {
		if o.Text[i] == '\t' {
			col = ((col-o.FirstColumnNumber)/o.TabWidth+1)*o.TabWidth + o.FirstColumnNumber
		} else {
			col++
		}
	}
	return line, col
}

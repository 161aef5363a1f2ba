package textutil

import (
	"strings"

	"github.com/larryhastings/big-sub001/bigerr"
)

// OverflowStrategy controls how MergeColumns handles a column whose
// line is wider than its max width.
type OverflowStrategy int

const (
	OverflowRaise OverflowStrategy = iota
	OverflowIntrudeAll
)

// Column is one column's source text plus its width bounds
// (original_source's (text, min_width, max_width) column tuple).
// MinWidth is accepted for API parity but never read: every line, and
// the blank placeholder used once a column runs out of lines, is
// padded to MaxWidth.
type Column struct {
	Text     string
	MinWidth int
	MaxWidth int
}

// MergeColumns lays out columns side by side, one source line per
// output line, separated by columnSeparator (a single space by
// default). A line wider than its column's MaxWidth either raises an
// error (OverflowRaise) or is allowed to intrude into the following
// columns on that line (OverflowIntrudeAll), per original_source's
// merge_columns.
func MergeColumns(columns []Column, columnSeparator string, strategy OverflowStrategy) (string, error) {
	if len(columns) == 0 {
		return "", bigerr.ArgumentValueErrorf("merge_columns requires at least one column")
	}
	if columnSeparator == "" {
		columnSeparator = " "
	}

	type padded struct {
		line      string
		intruding bool
	}
	var allLines [][]padded
	var blanks []string
	maxLines := 0

	for colNum, col := range columns {
		raw := strings.Split(strings.TrimRight(col.Text, "\n"), "\n")
		if len(raw) > maxLines {
			maxLines = len(raw)
		}
		blanks = append(blanks, strings.Repeat(" ", col.MaxWidth))

		lines := make([]padded, len(raw))
		for i, line := range raw {
			line = strings.TrimRight(line, " \t")
			overflow := len(line) > col.MaxWidth
			if overflow {
				if strategy == OverflowRaise {
					return "", bigerr.OverflowErrorf("overflow in column %d: %q is %d characters, column max_width is %d", colNum, line, len(line), col.MaxWidth)
				}
				lines[i] = padded{line: line, intruding: true}
				continue
			}
			lines[i] = padded{line: line + strings.Repeat(" ", col.MaxWidth-len(line))}
		}
		allLines = append(allLines, lines)
	}

	var outLines []string
	for row := 0; row < maxLines; row++ {
		var b strings.Builder
		for colNum := range columns {
			if colNum > 0 {
				b.WriteString(columnSeparator)
			}
			if row < len(allLines[colNum]) {
				p := allLines[colNum][row]
				b.WriteString(p.line)
				if p.intruding {
					break
				}
			} else {
				b.WriteString(blanks[colNum])
			}
		}
		outLines = append(outLines, strings.TrimRight(b.String(), " "))
	}
	return strings.TrimRight(strings.Join(outLines, "\n"), " \n"), nil
}

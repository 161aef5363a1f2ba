package lines

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/larryhastings/big-sub001/bigerr"
	"github.com/larryhastings/big-sub001/quoted"
	"github.com/larryhastings/big-sub001/sep"
	"github.com/larryhastings/big-sub001/split"
)

// Rstrip strips trailing whitespace from every line (or, if separators
// is non-nil, trailing runs of those separators), clipping what it
// removes to each LineInfo's Trailing.
func Rstrip(entries []Entry, separators *sep.Set) ([]Entry, error) {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		var stripped string
		if separators == nil {
			stripped = strings.TrimRightFunc(e.Line, unicode.IsSpace)
		} else {
			var err error
			stripped, err = split.Multistrip(e.Line, separators, false, true)
			if err != nil {
				return nil, err
			}
		}
		line := e.Line
		if stripped != line {
			line = e.Info.ClipTrailing(line, len(line)-len(stripped))
		}
		out[i] = Entry{Info: e.Info, Line: line}
	}
	return out, nil
}

// Strip strips leading and trailing whitespace (or separators, if
// non-nil) from every line, clipping what it removes to each
// LineInfo's Leading and Trailing.
func Strip(entries []Entry, separators *sep.Set) ([]Entry, error) {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		line := e.Line
		if line == "" {
			out[i] = e
			continue
		}
		var leadLen, trailLen int
		if separators == nil {
			lstripped := strings.TrimLeftFunc(line, unicode.IsSpace)
			leadLen = len(line) - len(lstripped)
			rstripped := strings.TrimRightFunc(lstripped, unicode.IsSpace)
			trailLen = len(lstripped) - len(rstripped)
		} else {
			stripped, err := split.Multistrip(line, separators, true, true)
			if err != nil {
				return nil, err
			}
			if stripped == "" {
				// line was made up entirely of separators.
				trailLen = len(line)
			} else {
				idx := strings.Index(line, stripped)
				leadLen = idx
				trailLen = len(line) - idx - len(stripped)
			}
		}
		if leadLen > 0 {
			line = e.Info.ClipLeading(line, leadLen)
		}
		if trailLen > 0 {
			line = e.Info.ClipTrailing(line, trailLen)
		}
		out[i] = Entry{Info: e.Info, Line: line}
	}
	return out, nil
}

// FilterLineCommentLines drops lines whose first non-whitespace
// characters match one of commentMarkers, the way a line beginning
// with "#" is dropped wholesale by a shell-script reader. Unlike
// StripLineComments, it never truncates a line; it only drops whole
// lines, and ignores quoting.
func FilterLineCommentLines(entries []Entry, commentMarkers []string) ([]Entry, error) {
	if len(commentMarkers) == 0 {
		return nil, bigerr.ArgumentValueErrorf("illegal comment_markers")
	}
	var match func(string) bool
	if len(commentMarkers) == 1 {
		marker := commentMarkers[0]
		match = func(s string) bool {
			return strings.HasPrefix(strings.TrimLeftFunc(s, unicode.IsSpace), marker)
		}
	} else {
		set, err := sep.NewSet(sep.Unicode, commentMarkers...)
		if err != nil {
			return nil, err
		}
		re := sep.Compile(set, true, false).Re
		anchored := regexp.MustCompile(`^\s*(?:` + re.String() + `)`)
		match = anchored.MatchString
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if match(e.Line) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Containing only yields lines that contain s (or, if invert, lines
// that don't).
func Containing(entries []Entry, s string, invert bool) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		has := strings.Contains(e.Line, s)
		if has != invert {
			out = append(out, e)
		}
	}
	return out
}

// Grep only yields lines matching pattern, recording the match (or,
// if invert, only yields lines that *don't* match, recording nil) in
// each LineInfo.Extra under matchKey (defaulting to "match").
func Grep(entries []Entry, pattern string, invert bool, matchKey string) ([]Entry, error) {
	if matchKey == "" {
		matchKey = "match"
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, bigerr.ArgumentValueErrorf("bad grep pattern %q: %v", pattern, err)
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		m := re.FindStringSubmatchIndex(e.Line)
		if invert {
			if m == nil {
				setExtra(e.Info, matchKey, nil)
				out = append(out, e)
			}
			continue
		}
		if m != nil {
			setExtra(e.Info, matchKey, m)
			out = append(out, e)
		}
	}
	return out, nil
}

func setExtra(li *LineInfo, key string, value any) {
	if li.Extra == nil {
		li.Extra = map[string]any{}
	}
	li.Extra[key] = value
}

// Sort sorts all entries before returning them, ordering by Line
// lexicographically unless key is non-nil.
func Sort(entries []Entry, key func(Entry) string, reverse bool) []Entry {
	out := append([]Entry(nil), entries...)
	if key == nil {
		key = func(e Entry) string { return e.Line }
	}
	sort.SliceStable(out, func(i, j int) bool {
		if reverse {
			return key(out[i]) > key(out[j])
		}
		return key(out[i]) < key(out[j])
	})
	return out
}

// ConvertTabsToSpaces detabs every line using the pipeline's tab width.
func ConvertTabsToSpaces(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{Info: e.Info, Line: e.Info.Detab(e.Line)}
	}
	return out
}

// FilterEmptyLines drops entries whose Line is empty.
func FilterEmptyLines(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Line == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

// StripLineCommentsOptions configures StripLineComments.
type StripLineCommentsOptions struct {
	Escape          string // default "\\"
	Quotes          []string
	MultilineQuotes []string
}

// StripLineComments truncates each line at the leftmost occurrence of
// any marker in lineCommentMarkers, ignoring markers that fall inside
// a quoted string. Each line is scanned on its own, so no quote of
// either class (quotes or multilineQuotes) carries over to the next
// line. Unlike FilterLineCommentLines it never drops a line, only shortens
// it, and the truncated suffix is clipped to LineInfo.Trailing.
func StripLineComments(entries []Entry, lineCommentMarkers []string, opts StripLineCommentsOptions) ([]Entry, error) {
	if len(lineCommentMarkers) == 0 {
		return nil, bigerr.ArgumentValueErrorf("illegal line_comment_markers")
	}
	escape := opts.Escape
	if escape == "" {
		escape = `\`
	}

	hasQuoting := len(opts.Quotes) > 0 || len(opts.MultilineQuotes) > 0

	out := make([]Entry, len(entries))

	for i, e := range entries {
		line := e.Line
		info := e.Info

		if !hasQuoting {
			idx, _ := firstMarker(line, lineCommentMarkers)
			if idx < 0 {
				out[i] = e
				continue
			}
			suffix := line[idx:]
			line = info.ClipTrailing(line, len(suffix))
			out[i] = Entry{Info: info, Line: line}
			continue
		}

		// Each line is scanned independently with no State carried
		// over, so a quote left open at the end of one line is not
		// resumed on the next: quoted.SplitQuotedStrings reports it as
		// a triple with a non-empty Leading and empty Trailing, and
		// this function's own per-line call never sees the rest of
		// the quoted text on the following line. Quoted text that must
		// span multiple physical lines should be scanned once over the
		// whole joined text with quoted.SplitQuotedStrings directly
		// (threading its State between calls), not through this
		// per-line modifier.
		triples, err := quoted.SplitQuotedStrings(line, quoted.Options{
			Quotes: opts.Quotes, MultilineQuotes: opts.MultilineQuotes,
			Escape: escape,
		})
		if err != nil {
			return nil, err
		}

		var keptLen int
		truncated := false
		for _, tr := range triples {
			if tr.Leading != "" {
				// inside a quote (including one left open at the end
				// of the line): never scan it for comment markers.
				keptLen += len(tr.Leading) + len(tr.Body) + len(tr.Trailing)
				continue
			}
			idx, _ := firstMarker(tr.Body, lineCommentMarkers)
			if idx < 0 {
				keptLen += len(tr.Body)
				continue
			}
			keptLen += idx
			truncated = true
			break
		}

		if truncated && keptLen < len(line) {
			suffix := line[keptLen:]
			line = info.ClipTrailing(line, len(suffix))
		}

		out[i] = Entry{Info: info, Line: line}
	}

	return out, nil
}

func firstMarker(s string, markers []string) (int, string) {
	best := -1
	bestMarker := ""
	for _, m := range markers {
		if idx := strings.Index(s, m); idx >= 0 && (best < 0 || idx < best) {
			best = idx
			bestMarker = m
		}
	}
	return best, bestMarker
}

// StripIndent strips leading whitespace from every line and tracks the
// indent level in each LineInfo.Indent (spec.md §6's lines_strip_indent):
// only tab and space are understood as indent characters, tabs are
// detabbed using the pipeline's tab width before being measured, and a
// dedent that doesn't match any previously-seen indent level is an
// error. Blank (all-whitespace or empty) lines take the indent level
// of the next non-blank line, or 0 if there is none.
func StripIndent(entries []Entry) ([]Entry, error) {
	out := make([]Entry, 0, len(entries))
	indent := 0
	var leadings []int
	var pendingBlank []int // indexes into out awaiting their indent

	for _, e := range entries {
		info := e.Info
		line := e.Line

		lstripped := strings.TrimLeftFunc(line, unicode.IsSpace)
		if lstripped == "" {
			line = info.ClipTrailing(line, len(line))
			out = append(out, Entry{Info: info, Line: line})
			pendingBlank = append(pendingBlank, len(out)-1)
			continue
		}

		line = info.ClipLeading(line, len(line)-len(lstripped))
		columnNumber := info.ColumnNumber

		var newIndent bool
		switch {
		case columnNumber == info.Owner.ColumnNumber:
			indent = 0
			leadings = leadings[:0]
			newIndent = false
		case len(leadings) == 0:
			newIndent = true
		case leadings[len(leadings)-1] == columnNumber:
			newIndent = false
		case columnNumber > leadings[len(leadings)-1]:
			newIndent = true
		default:
			leadings = leadings[:len(leadings)-1]
			indent--
			for len(leadings) > 0 {
				l := leadings[len(leadings)-1]
				if l >= columnNumber {
					if l > columnNumber {
						leadings = leadings[:0]
					}
					break
				}
				leadings = leadings[:len(leadings)-1]
				indent--
			}
			if len(leadings) == 0 {
				return nil, bigerr.IndentationErrorf("line %d column %d: unindent doesn't match any outer indentation level", info.LineNumber, columnNumber)
			}
			newIndent = false
		}

		if newIndent {
			leadings = append(leadings, columnNumber)
			indent++
		}

		if len(pendingBlank) > 0 {
			for _, idx := range pendingBlank {
				out[idx].Info.Indent = indent
			}
			pendingBlank = pendingBlank[:0]
		}

		info.Indent = indent
		out = append(out, Entry{Info: info, Line: line})
	}

	for _, idx := range pendingBlank {
		out[idx].Info.Indent = 0
	}

	return out, nil
}

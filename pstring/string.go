package pstring

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/larryhastings/big-sub001/bigerr"
	"github.com/larryhastings/big-sub001/sep"
	"github.com/larryhastings/big-sub001/split"
)

// Range is a slice of an Origin's text (spec.md §3).
type Range struct {
	Origin *Origin
	Start  int
	Stop   int
}

func (r Range) text() string { return r.Origin.Text[r.Start:r.Stop] }

// String is the positioned-string value: conceptually a pair of the
// underlying text and an ordered, non-empty sequence of Ranges whose
// concatenated origin slices equal Value.
type String struct {
	Value    string
	Segments []Range
}

// New constructs a positioned string over a fresh Origin (spec.md
// §4.F's constructor contract). Every argument is used as given;
// NewDefault supplies the usual defaults (line 1, column 1, first
// column 1, tab width 8).
func New(text, source string, lineNumber, columnNumber, firstColumnNumber, tabWidth int) (*String, error) {
	o, err := NewOrigin(text, source, lineNumber, columnNumber, firstColumnNumber, tabWidth)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return &String{Value: "", Segments: []Range{{Origin: o, Start: 0, Stop: 0}}}, nil
	}
	return &String{Value: text, Segments: []Range{{Origin: o, Start: 0, Stop: len(text)}}}, nil
}

// NewDefault is New with every positional default applied (line 1,
// column 1, first column 1, tab width 8).
func NewDefault(text string) *String {
	s, _ := New(text, "", 1, 1, 1, 8)
	return s
}

// LineNumber/ColumnNumber report the position of the first character
// of the first segment (spec.md §3).
func (s *String) LineNumber() int {
	if len(s.Segments) == 0 {
		return 0
	}
	first := s.Segments[0]
	line, _ := first.Origin.LineColumn(first.Start)
	return line
}

func (s *String) ColumnNumber() int {
	if len(s.Segments) == 0 {
		return 0
	}
	first := s.Segments[0]
	_, col := first.Origin.LineColumn(first.Start)
	return col
}

// Source returns the first segment's origin source label, or "".
func (s *String) Source() string {
	if len(s.Segments) == 0 {
		return ""
	}
	return s.Segments[0].Origin.Source
}

// Where returns "<source> line L column C" or "line L column C" when
// source is absent (spec.md §4.F).
func (s *String) Where() string {
	line, col := s.LineNumber(), s.ColumnNumber()
	if src := s.Source(); src != "" {
		return fmt.Sprintf("%s line %d column %d", src, line, col)
	}
	return fmt.Sprintf("line %d column %d", line, col)
}

// appendRanges appends r2 onto r, fusing with the last element of r
// when r2 is contiguous with it in the same Origin (spec.md §3's
// fusion invariant, enforced on construction).
func appendRanges(r []Range, r2 ...Range) []Range {
	for _, seg := range r2 {
		if seg.Start == seg.Stop {
			continue
		}
		if n := len(r); n > 0 {
			last := r[n-1]
			if last.Origin == seg.Origin && last.Stop == seg.Start {
				r[n-1].Stop = seg.Stop
				continue
			}
		}
		r = append(r, seg)
	}
	return r
}

// Concat implements a+b: concatenates segment lists, fusing adjacent
// same-origin contiguous ranges (spec.md §4.F).
func Concat(a, b *String) *String {
	segs := append([]Range(nil), a.Segments...)
	segs = appendRanges(segs, b.Segments...)
	if len(segs) == 0 {
		segs = []Range{{Origin: emptyOrigin(), Start: 0, Stop: 0}}
	}
	return &String{Value: a.Value + b.Value, Segments: segs}
}

var sharedEmptyOrigin *Origin

func emptyOrigin() *Origin {
	if sharedEmptyOrigin == nil {
		sharedEmptyOrigin, _ = NewOrigin("", "", 1, 1, 1, 8)
	}
	return sharedEmptyOrigin
}

// Cat concatenates many positioned strings in a single pass (spec.md
// §4.F's cat, which must avoid the O(n^2) cost of repeated +).
func Cat(strs ...*String) *String {
	if len(strs) == 0 {
		return &String{Value: "", Segments: []Range{{Origin: emptyOrigin(), Start: 0, Stop: 0}}}
	}
	var b strings.Builder
	var segs []Range
	for _, s := range strs {
		b.WriteString(s.Value)
		segs = appendRanges(segs, s.Segments...)
	}
	if len(segs) == 0 {
		segs = []Range{{Origin: emptyOrigin(), Start: 0, Stop: 0}}
	}
	return &String{Value: b.String(), Segments: segs}
}

// Slice returns s[start:stop] (byte offsets into s.Value), producing
// new segments that still reference the original Origins — never
// copying origin text (spec.md §4.F).
func (s *String) Slice(start, stop int) (*String, error) {
	n := len(s.Value)
	start = clampIndex(start, 0, n)
	stop = clampIndex(stop, 0, n)
	if stop < start {
		stop = start
	}
	if start == 0 && stop == n {
		return s, nil
	}
	var segs []Range
	pos := 0
	for _, seg := range s.Segments {
		segText := seg.Stop - seg.Start
		segStart, segEnd := pos, pos+segText
		lo := max(start, segStart)
		hi := min(stop, segEnd)
		if lo < hi {
			segs = appendRanges(segs, Range{Origin: seg.Origin, Start: seg.Start + (lo - segStart), Stop: seg.Start + (hi - segStart)})
		}
		pos = segEnd
	}
	if len(segs) == 0 {
		segs = []Range{{Origin: emptyOrigin(), Start: 0, Stop: 0}}
	}
	return &String{Value: s.Value[start:stop], Segments: segs}, nil
}

func clampIndex(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

// Where/position-sensitive folding operations: these mint a fresh
// Origin, and only when the text actually changes (Replace uses the
// same foldIfChanged helper).
var caser = cases.Fold()
var upperCaser = cases.Upper(language.Und)
var lowerCaser = cases.Lower(language.Und)
var titleCaser = cases.Title(language.Und)

func (s *String) foldIfChanged(newText string) *String {
	if newText == s.Value {
		return s
	}
	o, _ := NewOrigin(newText, s.Source(), s.LineNumber(), s.ColumnNumber(), s.firstColumn(), s.tabWidth())
	return &String{Value: newText, Segments: []Range{{Origin: o, Start: 0, Stop: len(newText)}}}
}

func (s *String) firstColumn() int {
	if len(s.Segments) == 0 {
		return 1
	}
	return s.Segments[0].Origin.FirstColumnNumber
}

func (s *String) tabWidth() int {
	if len(s.Segments) == 0 {
		return 8
	}
	return s.Segments[0].Origin.TabWidth
}

func (s *String) Lower() *String    { return s.foldIfChanged(lowerCaser.String(s.Value)) }
func (s *String) Upper() *String    { return s.foldIfChanged(upperCaser.String(s.Value)) }
func (s *String) Casefold() *String { return s.foldIfChanged(caser.String(s.Value)) }
func (s *String) Title() *String    { return s.foldIfChanged(titleCaser.String(s.Value)) }

func (s *String) Swapcase() *String {
	var b strings.Builder
	for _, r := range s.Value {
		if strings.ToUpper(string(r)) == string(r) {
			b.WriteString(strings.ToLower(string(r)))
		} else {
			b.WriteString(strings.ToUpper(string(r)))
		}
	}
	return s.foldIfChanged(b.String())
}

func (s *String) Capitalize() *String {
	if s.Value == "" {
		return s
	}
	r := []rune(s.Value)
	head := strings.ToUpper(string(r[0]))
	tail := strings.ToLower(string(r[1:]))
	return s.foldIfChanged(head + tail)
}

// Replace: when old is empty or no occurrence is found, returns self
// unchanged (identity-preserving per spec.md §9). Otherwise the result
// is a positioned string over a fresh Origin holding the replaced
// text: the regions left unreplaced do not keep their positions in
// s's original Origins.
func (s *String) Replace(old, new string, count int) *String {
	if old == "" {
		return s
	}
	if !strings.Contains(s.Value, old) {
		return s
	}
	var replaced string
	if count < 0 {
		replaced = strings.ReplaceAll(s.Value, old, new)
	} else {
		replaced = strings.Replace(s.Value, old, new, count)
	}
	return s.foldIfChanged(replaced)
}

// Multisplit-backed operations. variant is always Unicode for
// pstring since positioned strings model Unicode text only (bytes
// variant belongs to a future pbytes package, out of scope here).
func (s *String) multisplitSegments(seps []string, opts split.Options) ([]*String, error) {
	set, err := sep.NewSet(sep.Unicode, seps...)
	if err != nil {
		return nil, err
	}
	pieces, err := split.Multisplit(s.Value, set, opts)
	if err != nil {
		return nil, err
	}
	out := make([]*String, 0, len(pieces))
	pos := 0
	for _, p := range pieces {
		piece, err := s.Slice(pos, pos+len(p.Text))
		if err != nil {
			return nil, err
		}
		out = append(out, piece)
		pos += len(p.Text) + len(p.Sep)
	}
	return out, nil
}

// Split mirrors str.split (keep=false semantics).
func (s *String) Split(seps []string, maxSplit int) ([]*String, error) {
	return s.multisplitSegments(seps, split.Options{MaxSplit: maxSplit, Strip: split.StripNone})
}

// Rsplit mirrors str.rsplit.
func (s *String) Rsplit(seps []string, maxSplit int) ([]*String, error) {
	return s.multisplitSegments(seps, split.Options{MaxSplit: maxSplit, Reverse: true, Strip: split.StripNone})
}

// Strip/Lstrip/Rstrip use multistrip's compiled pattern, then Slice
// to recover a positioned substring over the stripped byte range.
func (s *String) stripBounds(seps []string, left, right bool) (int, int, error) {
	set, err := sep.NewSet(sep.Unicode, seps...)
	if err != nil {
		return 0, 0, err
	}
	stripped, err := split.Multistrip(s.Value, set, left, right)
	if err != nil {
		return 0, 0, err
	}
	idx := strings.Index(s.Value, stripped)
	if idx < 0 {
		idx = 0
	}
	return idx, idx + len(stripped), nil
}

func (s *String) Strip(seps []string) (*String, error) {
	a, b, err := s.stripBounds(seps, true, true)
	if err != nil {
		return nil, err
	}
	return s.Slice(a, b)
}

func (s *String) Lstrip(seps []string) (*String, error) {
	a, b, err := s.stripBounds(seps, true, false)
	if err != nil {
		return nil, err
	}
	return s.Slice(a, b)
}

func (s *String) Rstrip(seps []string) (*String, error) {
	a, b, err := s.stripBounds(seps, false, true)
	if err != nil {
		return nil, err
	}
	return s.Slice(a, b)
}

// RemovePrefix/RemoveSuffix mirror str.removeprefix/removesuffix.
func (s *String) RemovePrefix(prefix string) (*String, error) {
	if !strings.HasPrefix(s.Value, prefix) {
		return s, nil
	}
	return s.Slice(len(prefix), len(s.Value))
}

func (s *String) RemoveSuffix(suffix string) (*String, error) {
	if !strings.HasSuffix(s.Value, suffix) {
		return s, nil
	}
	return s.Slice(0, len(s.Value)-len(suffix))
}

// Partition/Rpartition implement spec.md §4.F's partition extension:
// count>=1 returns 2*count+1 elements, padded on the side that ran
// out of separators.
func (s *String) Partition(sepText string, count int) ([]*String, error) {
	if count == 0 {
		return []*String{s}, nil
	}
	if count < 0 {
		return nil, bigerr.ArgumentValueErrorf("count must be >= 0")
	}
	set, err := sep.NewSet(sep.Unicode, sepText)
	if err != nil {
		return nil, err
	}
	pieces, err := split.Multisplit(s.Value, set, split.Options{MaxSplit: count, Separate: true})
	if err != nil {
		return nil, err
	}
	alt := split.Alternating(pieces)
	want := 2*count + 1
	for len(alt) < want {
		alt = append(alt, "")
	}
	return s.sliceAlternating(alt)
}

func (s *String) Rpartition(sepText string, count int) ([]*String, error) {
	if count == 0 {
		return []*String{s}, nil
	}
	if count < 0 {
		return nil, bigerr.ArgumentValueErrorf("count must be >= 0")
	}
	set, err := sep.NewSet(sep.Unicode, sepText)
	if err != nil {
		return nil, err
	}
	pieces, err := split.Multisplit(s.Value, set, split.Options{MaxSplit: count, Reverse: true, Separate: true})
	if err != nil {
		return nil, err
	}
	alt := split.Alternating(pieces)
	want := 2*count + 1
	if len(alt) < want {
		pad := make([]string, want-len(alt))
		alt = append(pad, alt...)
	}
	return s.sliceAlternating(alt)
}

// sliceAlternating re-derives positioned substrings for an already
// computed alternating []string result by walking s.Value alongside
// it (byte offsets only, since positions are recoverable from
// contiguous concatenation).
func (s *String) sliceAlternating(alt []string) ([]*String, error) {
	out := make([]*String, len(alt))
	pos := 0
	for i, piece := range alt {
		sliceStr, err := s.Slice(pos, pos+len(piece))
		if err != nil {
			return nil, err
		}
		out[i] = sliceStr
		pos += len(piece)
	}
	return out, nil
}

// Splitlines splits on all Unicode line-break atoms plus CRLF as one
// (spec.md §4.F).
func (s *String) Splitlines(keepEnds bool) ([]*String, error) {
	set, err := sep.NewSet(sep.Unicode,
		"\n", "\r\n", "\r", "\v", "\f", "", "", "", "", " ", " ")
	if err != nil {
		return nil, err
	}
	opts := split.Options{MaxSplit: -1, Separate: true, Strip: split.StripRight}
	pieces, err := split.Multisplit(s.Value, set, opts)
	if err != nil {
		return nil, err
	}
	var result []*String
	pos := 0
	for _, p := range pieces {
		end := pos + len(p.Text)
		if keepEnds {
			end += len(p.Sep)
		}
		if p.Text == "" && p.Sep == "" {
			pos += len(p.Text) + len(p.Sep)
			continue
		}
		piece, err := s.Slice(pos, end)
		if err != nil {
			return nil, err
		}
		result = append(result, piece)
		pos += len(p.Text) + len(p.Sep)
	}
	return result, nil
}

// Join is the positioned-string equivalent of str.join.
func (s *String) Join(parts []*String) *String {
	if len(parts) == 0 {
		return NewDefault("")
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out = Concat(Concat(out, s), p)
	}
	return out
}

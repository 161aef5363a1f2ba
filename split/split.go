// Package split implements the multisplit engine (component B): the
// canonical splitter that multipartition and multistrip (also in this
// package) are thin configurations over.
//
// The engine always computes its result as a slice of Piece (the
// AS_PAIRS representation) and derives the other three keep-mode
// representations from it, since AS_PAIRS carries the most
// information (spec.md §4.B).
package split

import (
	"strings"

	"github.com/larryhastings/big-sub001/bigerr"
	"github.com/larryhastings/big-sub001/sep"
)

// Keep selects the shape of a multisplit result.
type Keep int

const (
	KeepFalse Keep = iota
	KeepTrue
	KeepAlternating
	KeepAsPairs
)

// Strip selects which ends of the split result have separator pieces
// removed.
type Strip int

const (
	StripNone Strip = iota
	StripLeft
	StripRight
	StripBoth
	StripProgressive
)

// Piece is one (text, following-separator) pair; the last Piece in a
// result always has an empty Sep.
type Piece struct {
	Text string
	Sep  string
}

// Options configures a multisplit call. The zero value has MaxSplit 0;
// DefaultOptions returns options with MaxSplit -1 (unlimited).
type Options struct {
	MaxSplit int // -1 means unlimited
	Reverse  bool
	Separate bool
	Strip    Strip
}

// DefaultOptions returns the zero-configuration options: unlimited
// splits, forward, separators coalesced (not Separate), no strip.
func DefaultOptions() Options {
	return Options{MaxSplit: -1, Reverse: false, Separate: false, Strip: StripNone}
}

// Multisplit is the canonical splitter (spec.md §4.B).
func Multisplit(text string, seps *sep.Set, opts Options) ([]Piece, error) {
	if seps == nil {
		return nil, bigerr.ArgumentValueErrorf("separator set must not be nil")
	}
	if opts.MaxSplit == 0 {
		return []Piece{{Text: text, Sep: ""}}, nil
	}

	workText := text
	workSeps := seps
	if opts.Reverse {
		workText = reverseRunes(text)
		workSeps = seps.Reversed()
	}

	compiled := sep.Compile(workSeps, opts.Separate, false)
	// A leading separator match (one that starts at offset 0) produces
	// an empty first nonsep piece that left-stripping always discards
	// for free; it must not itself consume one of maxsplit's splits,
	// mirroring str.split(None, maxsplit)'s behavior of not counting
	// the leading-whitespace skip as a split.
	freeLeading := opts.MaxSplit >= 0 && leftStripping(opts.Strip) &&
		hasLeadingMatch(workText, compiled.Re)
	effectiveMaxSplit := opts.MaxSplit
	if freeLeading && effectiveMaxSplit >= 0 {
		effectiveMaxSplit++
	}
	alt := rawAlternating(workText, compiled.Re, effectiveMaxSplit)
	exhausted := alt.exhausted

	list := alt.pieces // alternating nonsep,sep,nonsep,...,nonsep (odd length)

	switch opts.Strip {
	case StripLeft:
		list = stripLeftList(list)
	case StripRight:
		list = stripRightList(list)
	case StripBoth:
		list = stripLeftList(list)
		list = stripRightList(list)
	case StripProgressive:
		// Forward: left side is always fully explored; right side is
		// conditional on whether splitting ran to completion.
		// Reverse: mirrored, since we process the reversed text
		// left-to-right, which corresponds to the original text's
		// right-to-left order.
		if !opts.Reverse {
			list = stripLeftList(list)
			if exhausted {
				list = stripRightList(list)
			}
		} else {
			list = stripRightList(list)
			if exhausted {
				list = stripLeftList(list)
			}
		}
	}

	pieces := toPieces(list)

	if opts.Reverse {
		for i := range pieces {
			pieces[i].Text = reverseRunes(pieces[i].Text)
			pieces[i].Sep = reverseRunes(pieces[i].Sep)
		}
		pieces = reversePiecesAsPairs(pieces)
	}

	return pieces, nil
}

func leftStripping(s Strip) bool {
	return s == StripLeft || s == StripBoth || s == StripProgressive
}

func hasLeadingMatch(text string, re interface {
	FindStringIndex(string) []int
}) bool {
	loc := re.FindStringIndex(text)
	return loc != nil && loc[0] == 0
}

func reverseRunes(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// reversePiecesAsPairs converts a reversed-domain AS_PAIRS list (where
// each piece's sep is the separator that *preceded* it in the
// original text, since we built it while scanning right-to-left) back
// into forward AS_PAIRS order: out[i].Text is rev[n-1-i].Text, and
// out[i].Sep is the separator between out[i] and out[i+1] in forward
// order, which rev[n-2-i] recorded as the separator preceding its own
// text — i.e. one slot further back in the reversed-domain list, not
// the same slot.
func reversePiecesAsPairs(rev []Piece) []Piece {
	n := len(rev)
	out := make([]Piece, n)
	for i := 0; i < n; i++ {
		text := rev[n-1-i].Text
		var fwdSep string
		if j := n - 2 - i; j >= 0 {
			fwdSep = rev[j].Sep
		}
		out[i] = Piece{Text: text, Sep: fwdSep}
	}
	return out
}

type altResult struct {
	pieces    []string
	exhausted bool
}

// rawAlternating runs re over text, producing the alternating
// [nonsep, sep, nonsep, sep, ..., nonsep] list, honoring maxsplit
// (-1 = unlimited). exhausted reports whether every separator match
// in text was consumed (false means maxsplit cut the scan short and
// the final nonsep piece may itself contain unmatched separators).
func rawAlternating(text string, re interface {
	FindAllStringIndex(string, int) [][]int
}, maxSplit int) altResult {
	locs := re.FindAllStringIndex(text, -1)
	limit := len(locs)
	exhausted := true
	if maxSplit >= 0 && maxSplit < limit {
		limit = maxSplit
		exhausted = false
	}
	out := make([]string, 0, 2*limit+1)
	prev := 0
	for i := 0; i < limit; i++ {
		loc := locs[i]
		out = append(out, text[prev:loc[0]], text[loc[0]:loc[1]])
		prev = loc[1]
	}
	out = append(out, text[prev:])
	return altResult{pieces: out, exhausted: exhausted}
}

func stripLeftList(list []string) []string {
	for len(list) >= 3 && list[0] == "" {
		list = list[2:]
	}
	return list
}

func stripRightList(list []string) []string {
	for len(list) >= 3 && list[len(list)-1] == "" {
		list = list[:len(list)-2]
	}
	return list
}

func toPieces(list []string) []Piece {
	n := (len(list) + 1) / 2
	out := make([]Piece, n)
	for i := 0; i < n; i++ {
		text := list[2*i]
		var s string
		if 2*i+1 < len(list) {
			s = list[2*i+1]
		}
		out[i] = Piece{Text: text, Sep: s}
	}
	return out
}

// Bare returns the keep=false representation: just the non-separator
// substrings.
func Bare(pieces []Piece) []string {
	out := make([]string, len(pieces))
	for i, p := range pieces {
		out[i] = p.Text
	}
	return out
}

// Joined returns the keep=true representation: each non-separator
// substring with its following separator appended, so concatenating
// the whole slice reconstructs the input.
func Joined(pieces []Piece) []string {
	out := make([]string, len(pieces))
	for i, p := range pieces {
		out[i] = p.Text + p.Sep
	}
	return out
}

// Alternating returns the keep=ALTERNATING representation.
func Alternating(pieces []Piece) []string {
	out := make([]string, 0, 2*len(pieces)-1)
	for i, p := range pieces {
		out = append(out, p.Text)
		if i != len(pieces)-1 {
			out = append(out, p.Sep)
		}
	}
	return out
}

// MultipartitionResult is multipartition's fixed-length output:
// always 2*count+1 elements, alternating text/sep/text/.../text.
type MultipartitionResult struct {
	Parts []string
}

// Multipartition implements spec.md §4.B's multipartition: multisplit
// with keep=ALTERNATING, maxsplit=count, strip=false, then pad to
// exactly 2*count+1 elements (right-pad normally, left-pad in reverse
// mode).
func Multipartition(text string, seps *sep.Set, count int, reverse, separate bool) (*MultipartitionResult, error) {
	if count < 0 {
		return nil, bigerr.ArgumentValueErrorf("count must be >= 0, got %d", count)
	}
	if count == 0 {
		return &MultipartitionResult{Parts: []string{text}}, nil
	}
	pieces, err := Multisplit(text, seps, Options{MaxSplit: count, Reverse: reverse, Separate: separate, Strip: StripNone})
	if err != nil {
		return nil, err
	}
	parts := Alternating(pieces)
	want := 2*count + 1
	if len(parts) < want {
		pad := make([]string, want-len(parts))
		if reverse {
			parts = append(pad, parts...)
		} else {
			parts = append(parts, pad...)
		}
	}
	return &MultipartitionResult{Parts: parts}, nil
}

// Multistrip implements spec.md §4.B's multistrip: compiles the
// separators (separate=false, keep=false) and anchors the pattern at
// the requested end(s).
func Multistrip(text string, seps *sep.Set, left, right bool) (string, error) {
	if seps == nil {
		return "", bigerr.ArgumentValueErrorf("separator set must not be nil")
	}
	compiled := sep.Compile(seps, false, false)
	out := text
	if left {
		loc := compiled.Re.FindStringIndex(out)
		if loc != nil && loc[0] == 0 {
			out = out[loc[1]:]
		}
	}
	if right {
		locs := compiled.Re.FindAllStringIndex(out, -1)
		for len(locs) > 0 {
			last := locs[len(locs)-1]
			if last[1] == len(out) {
				out = out[:last[0]]
				locs = compiled.Re.FindAllStringIndex(out, -1)
				continue
			}
			break
		}
	}
	return out, nil
}

// NormalizeWhitespaceCollapse splits text on seps with keep=false and
// separate=false, stripping separators from both ends, then rejoins
// the pieces with replacement: a one-line configuration of
// Multisplit, not a new algorithm. textutil.NormalizeWhitespace does
// not call it; it calls Multisplit itself, without stripping the ends.
func NormalizeWhitespaceCollapse(text string, seps *sep.Set, replacement string) (string, error) {
	pieces, err := Multisplit(text, seps, Options{MaxSplit: -1, Separate: false, Strip: StripBoth})
	if err != nil {
		return "", err
	}
	return strings.Join(Bare(pieces), replacement), nil
}

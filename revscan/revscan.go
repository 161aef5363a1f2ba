// Package revscan implements the reverse-scan adapter (component C):
// reversed_re_finditer, re_partition and re_rpartition, all built on
// top of Go's left-to-right regexp engine.
package revscan

import (
	"regexp"
	"sort"

	"github.com/larryhastings/big-sub001/bigerr"
)

// Match is one regular-expression match: Start/End are byte offsets,
// Text is the matched substring.
type Match struct {
	Start, End int
	Text       string
}

// ReversedFindAll yields the set of non-overlapping matches a
// right-to-left scanner would produce, in right-to-left order, using
// only re's left-to-right FindAllStringIndex (spec.md §4.C).
func ReversedFindAll(re *regexp.Regexp, text string) []Match {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	type cand struct{ start, end int }
	heap := make([]cand, 0, len(locs))
	zeroes := map[int]bool{}
	hasZero := false
	for _, l := range locs {
		heap = append(heap, cand{l[0], l[1]})
		if l[0] == l[1] {
			hasZero = true
			zeroes[l[0]] = true
		}
	}
	if hasZero {
		// Ensure every match's start position also has a registered
		// zero-length match candidate, per spec.md §4.C step 2.
		for _, c := range append([]cand(nil), heap...) {
			if c.start != c.end && !zeroes[c.start] {
				if m := matchAt(re, text, c.start, len(text)); m != nil && m.Start == m.End {
					heap = append(heap, cand{m.Start, m.End})
					zeroes[c.start] = true
				}
			}
		}
	}

	// Priority order for both the heap and the per-round candidates
	// list: rightmost end first, earliest start breaks ties.
	byPriority := func(a, b cand) bool {
		if a.end != b.end {
			return a.end > b.end
		}
		return a.start < b.start
	}
	sort.Slice(heap, func(i, j int) bool { return byPriority(heap[i], heap[j]) })

	var out []Match
	var candidates []cand
	previousStart := len(text)

	for len(candidates) > 0 || len(heap) > 0 {
		// Step a: re-validate the surviving candidates list against
		// the new previousStart — drop anything now fully behind it,
		// keep anything still wholly ahead of it, and re-anchor
		// straddlers with endpos=previousStart.
		var kept []cand
		for _, c := range candidates {
			switch {
			case c.start >= previousStart:
				// already consumed by a later yielded match
			case c.end <= previousStart:
				kept = append(kept, c)
			default:
				if m := matchAt(re, text, c.start, previousStart); m != nil {
					kept = append(kept, cand{m.Start, m.End})
				}
			}
		}
		candidates = kept

		if len(candidates) == 0 {
			// Step b: pop heap entries (in priority order) until one
			// qualifies (end<=previousStart — earlier ones are stale,
			// already behind a match we've yielded), then probe every
			// position strictly between its start and
			// min(end, previousStart) for overlapping alternatives.
			// This is what realizes right-preference: e.g. pattern
			// (abcdef|efg|ab|b|c|d) on "abcdefgh" must prefer efg
			// over the tail of the forward match abcdef.
			var best *cand
			for len(heap) > 0 {
				top := heap[0]
				heap = heap[1:]
				if top.end <= previousStart {
					best = &top
					break
				}
			}
			if best == nil {
				break
			}

			limit := best.end
			if previousStart < limit {
				limit = previousStart
			}
			candidates = append(candidates, *best)
			for pos := best.start + 1; pos < limit; pos++ {
				if m := matchAt(re, text, pos, previousStart); m != nil {
					candidates = append(candidates, cand{m.Start, m.End})
				}
			}
		}

		if len(candidates) == 0 {
			break
		}

		sort.Slice(candidates, func(i, j int) bool { return byPriority(candidates[i], candidates[j]) })
		winner := candidates[0]
		candidates = candidates[1:]
		out = append(out, Match{Start: winner.start, End: winner.end, Text: text[winner.start:winner.end]})
		previousStart = winner.start
	}

	return out
}

// matchAt anchors re at pos and returns the match if re matches
// exactly starting there, truncating the search space to endpos.
func matchAt(re *regexp.Regexp, text string, pos, endpos int) *Match {
	if pos < 0 || pos > endpos || endpos > len(text) {
		return nil
	}
	sub := text[pos:endpos]
	anchored := re
	loc := anchored.FindStringIndex(sub)
	if loc == nil || loc[0] != 0 {
		return nil
	}
	return &Match{Start: pos, End: pos + loc[1], Text: text[pos : pos+loc[1]]}
}

// RePartition partitions text at up to count occurrences of pattern,
// scanning left to right.
func RePartition(text string, re *regexp.Regexp, count int) ([]string, error) {
	if count < 0 {
		return nil, bigerr.ArgumentValueErrorf("count must be >= 0, got %d", count)
	}
	if count == 0 {
		return []string{text}, nil
	}
	locs := re.FindAllStringIndex(text, count)
	out := make([]string, 0, 2*count+1)
	prev := 0
	for _, l := range locs {
		out = append(out, text[prev:l[0]], text[l[0]:l[1]])
		prev = l[1]
	}
	out = append(out, text[prev:])
	want := 2*count + 1
	for len(out) < want {
		out = append(out, "")
	}
	return out, nil
}

// ReRpartition partitions text at up to count occurrences of pattern,
// scanning right to left via ReversedFindAll, left-padding with empty
// strings when fewer than count matches are available (spec.md
// §4.C's re_rpartition).
func ReRpartition(text string, re *regexp.Regexp, count int) ([]string, error) {
	if count < 0 {
		return nil, bigerr.ArgumentValueErrorf("count must be >= 0, got %d", count)
	}
	if count == 0 {
		return []string{text}, nil
	}
	matches := ReversedFindAll(re, text)
	if len(matches) > count {
		matches = matches[:count]
	}
	// matches are right-to-left; rebuild forward order, partitioning
	// at each from the right.
	out := make([]string, 0, 2*count+1)
	end := len(text)
	segments := make([]string, 0, len(matches))
	seps := make([]string, 0, len(matches))
	for _, m := range matches {
		segments = append(segments, text[m.End:end])
		seps = append(seps, m.Text)
		end = m.Start
	}
	head := text[:end]

	missing := count - len(matches)
	for i := 0; i < missing; i++ {
		out = append(out, "", "")
	}
	out = append(out, head)
	for i := len(segments) - 1; i >= 0; i-- {
		out = append(out, seps[i], segments[i])
	}
	return out, nil
}

package textutil

import (
	"sort"

	"github.com/larryhastings/big-sub001/bigerr"
)

// CombineSplits takes a string and one or more "split arrays" (each
// array's pieces concatenate to reproduce s) and returns s cut at the
// union of every split array's boundary points (original_source's
// combine_splits, reimplemented as a boundary-set union rather than
// its incremental min-heap walk — same result, since all a split
// array contributes is where it would cut s).
func CombineSplits(s string, splitArrays ...[]string) ([]string, error) {
	boundarySet := map[int]bool{}
	for _, arr := range splitArrays {
		pos := 0
		for _, piece := range arr {
			pos += len(piece)
			if pos > len(s) {
				return nil, bigerr.ArgumentValueErrorf("split array is longer than the original string")
			}
			boundarySet[pos] = true
		}
	}
	boundaries := make([]int, 0, len(boundarySet)+1)
	for b := range boundarySet {
		if b != len(s) {
			boundaries = append(boundaries, b)
		}
	}
	sort.Ints(boundaries)

	out := make([]string, 0, len(boundaries)+1)
	start := 0
	for _, b := range boundaries {
		out = append(out, s[start:b])
		start = b
	}
	out = append(out, s[start:])
	return out, nil
}

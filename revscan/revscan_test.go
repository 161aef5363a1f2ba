package revscan

import (
	"regexp"
	"testing"
)

func TestReversedFindAllPrefersRightmostAlternative(t *testing.T) {
	re := regexp.MustCompile(`(abcdef|efg|ab|b|c|d)`)
	matches := ReversedFindAll(re, "abcdefgh")

	want := []struct {
		start, end int
		text       string
	}{
		{4, 7, "efg"},
		{3, 4, "d"},
		{2, 3, "c"},
		{0, 2, "ab"},
	}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d: %+v", len(matches), len(want), matches)
	}
	for i, w := range want {
		m := matches[i]
		if m.Start != w.start || m.End != w.end || m.Text != w.text {
			t.Errorf("index %d: got {%d,%d,%q} want {%d,%d,%q}", i, m.Start, m.End, m.Text, w.start, w.end, w.text)
		}
	}
}

func TestReversedFindAllNoOverlap(t *testing.T) {
	re := regexp.MustCompile(`x`)
	matches := ReversedFindAll(re, "axbxc")
	want := []struct{ start, end int }{{3, 4}, {1, 2}}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d: %+v", len(matches), len(want), matches)
	}
	for i, w := range want {
		if matches[i].Start != w.start || matches[i].End != w.end {
			t.Errorf("index %d: got {%d,%d} want {%d,%d}", i, matches[i].Start, matches[i].End, w.start, w.end)
		}
	}
}

func TestRePartition(t *testing.T) {
	re := regexp.MustCompile(`(abcdef|efg|ab|b|c|d)`)
	got, err := RePartition("abcdefgh", re, 4)
	if err != nil {
		t.Fatal(err)
	}
	// Go's leftmost-first alternation matches only "abcdef" scanning
	// forward from position 0 (the next scan starts at 6 and "gh"
	// doesn't match), so only one of the requested 4 splits is found;
	// the result is padded out to the full 2*count+1 = 9 elements.
	want := []string{"", "abcdef", "gh", "", "", "", "", "", ""}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestReRpartition(t *testing.T) {
	re := regexp.MustCompile(`(abcdef|efg|ab|b|c|d)`)
	got, err := ReRpartition("abcdefgh", re, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"", "ab", "", "c", "", "d", "", "efg", "h"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestReRpartitionPadsWhenFewerMatchesThanCount(t *testing.T) {
	re := regexp.MustCompile(`,`)
	got, err := ReRpartition("a,b", re, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"", "", "", "", "a", ",", "b"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
}

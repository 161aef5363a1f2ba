package split

import (
	"strings"
	"testing"

	"github.com/larryhastings/big-sub001/sep"
)

func mustSet(t *testing.T, items ...string) *sep.Set {
	t.Helper()
	s, err := sep.NewSet(sep.Unicode, items...)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return s
}

func TestMultisplitRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
		seps []string
	}{
		{"simple", "a,b,c", []string{","}},
		{"multi sep", "a, b; c", []string{",", ";", " "}},
		{"no seps found", "abc", []string{","}},
		{"empty", "", []string{","}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces, err := Multisplit(tt.text, mustSet(t, tt.seps...), Options{MaxSplit: -1, Strip: StripNone})
			if err != nil {
				t.Fatalf("Multisplit: %v", err)
			}
			got := strings.Join(Joined(pieces), "")
			if got != tt.text {
				t.Errorf("round trip: got %q want %q", got, tt.text)
			}
		})
	}
}

func TestMultisplitOverlappingSeparators(t *testing.T) {
	pieces, err := Multisplit("wxabcyz", mustSet(t, "a", "abc"), Options{MaxSplit: -1})
	if err != nil {
		t.Fatal(err)
	}
	got := Bare(pieces)
	want := []string{"wx", "yz"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestMultisplitMaxSplitZero(t *testing.T) {
	pieces, err := Multisplit("a,b,c", mustSet(t, ","), Options{MaxSplit: 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(pieces) != 1 || pieces[0].Text != "a,b,c" {
		t.Errorf("maxsplit=0 should yield input unchanged, got %+v", pieces)
	}
}

func TestMultisplitReverseAlternating(t *testing.T) {
	pieces, err := Multisplit("A x x Z", mustSet(t, " x "), Options{MaxSplit: -1, Reverse: true})
	if err != nil {
		t.Fatal(err)
	}
	alt := Alternating(pieces)
	want := []string{"A x", " x ", "Z"}
	if len(alt) != len(want) {
		t.Fatalf("got %v want %v", alt, want)
	}
	for i := range want {
		if alt[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, alt[i], want[i])
		}
	}
}

func TestMultipartition(t *testing.T) {
	res, err := Multipartition("aXYbYXc", mustSet(t, "X", "Y"), 2, false, true)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "X", "", "Y", "bYXc"}
	if len(res.Parts) != len(want) {
		t.Fatalf("got %v want %v", res.Parts, want)
	}
	for i := range want {
		if res.Parts[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, res.Parts[i], want[i])
		}
	}
}

func TestMultistrip(t *testing.T) {
	got, err := Multistrip("  hello  ", mustSet(t, " "), true, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("got %q want %q", got, "hello")
	}
}

func TestMultisplitProgressiveStrip(t *testing.T) {
	pieces, err := Multisplit("  a b c  ", mustSet(t, " "), Options{MaxSplit: 2, Separate: false, Strip: StripProgressive})
	if err != nil {
		t.Fatal(err)
	}
	got := Bare(pieces)
	want := []string{"a", "b", "c  "}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
}

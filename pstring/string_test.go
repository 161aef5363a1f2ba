package pstring

import (
	"testing"

	"github.com/kr/pretty"
)

func TestNewDefaultTracksPosition(t *testing.T) {
	s := NewDefault("ab\ncd")
	if s.LineNumber() != 1 || s.ColumnNumber() != 1 {
		t.Fatalf("got line %d col %d, want 1 1", s.LineNumber(), s.ColumnNumber())
	}
	tail, err := s.Slice(3, 5)
	if err != nil {
		t.Fatal(err)
	}
	if tail.Value != "cd" {
		t.Fatalf("got %q want cd", tail.Value)
	}
	if tail.LineNumber() != 2 || tail.ColumnNumber() != 1 {
		t.Errorf("got line %d col %d, want 2 1", tail.LineNumber(), tail.ColumnNumber())
	}
}

func TestSliceFusesContiguousSegments(t *testing.T) {
	s := NewDefault("hello world")
	a, err := s.Slice(0, 5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Slice(5, 11)
	if err != nil {
		t.Fatal(err)
	}
	cat := Concat(a, b)
	if cat.Value != "hello world" {
		t.Fatalf("got %q", cat.Value)
	}
	if len(cat.Segments) != 1 {
		t.Fatalf("expected fused single segment, got %d:\n%s", len(cat.Segments), pretty.Sprint(cat.Segments))
	}
}

func TestCatAvoidsQuadraticConcat(t *testing.T) {
	parts := []*String{NewDefault("a"), NewDefault("b"), NewDefault("c")}
	got := Cat(parts...)
	if got.Value != "abc" {
		t.Fatalf("got %q want abc", got.Value)
	}
}

func TestUpperMintsNewOriginOnlyWhenChanged(t *testing.T) {
	s := NewDefault("ABC")
	upper := s.Upper()
	if upper != s {
		t.Errorf("Upper() on already-uppercase text should return identical *String, got a new one")
	}
	lower := NewDefault("abc")
	upperLower := lower.Upper()
	if upperLower.Value != "ABC" {
		t.Fatalf("got %q want ABC", upperLower.Value)
	}
	if upperLower == lower {
		t.Errorf("Upper() that changes text must return a distinct *String")
	}
}

func TestReplaceIdentityPreservingWhenAbsent(t *testing.T) {
	s := NewDefault("hello")
	same := s.Replace("xyz", "q", -1)
	if same != s {
		t.Errorf("Replace with no match must return the identical *String")
	}
}

func TestSplitRoundTrips(t *testing.T) {
	s := NewDefault("a,b,c")
	pieces, err := s.Split([]string{","}, -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(pieces) != 3 {
		t.Fatalf("got %d pieces", len(pieces))
	}
	for i, want := range []string{"a", "b", "c"} {
		if pieces[i].Value != want {
			t.Errorf("index %d: got %q want %q", i, pieces[i].Value, want)
		}
	}
}

func TestStripTracksPosition(t *testing.T) {
	s := NewDefault("  hi  ")
	stripped, err := s.Strip([]string{" "})
	if err != nil {
		t.Fatal(err)
	}
	if stripped.Value != "hi" {
		t.Fatalf("got %q want hi", stripped.Value)
	}
	if stripped.ColumnNumber() != 3 {
		t.Errorf("got column %d want 3", stripped.ColumnNumber())
	}
}

func TestSplitlinesKeepEnds(t *testing.T) {
	s := NewDefault("a\nb\r\nc")
	lines, err := s.Splitlines(true)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a\n", "b\r\n", "c"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), pretty.Sprint(lines))
	}
	for i := range want {
		if lines[i].Value != want[i] {
			t.Errorf("index %d: got %q want %q\ndiff:\n%s", i, lines[i].Value, want[i], pretty.Diff(lines[i], want[i]))
		}
	}
}

func TestJoin(t *testing.T) {
	sep := NewDefault(", ")
	parts := []*String{NewDefault("a"), NewDefault("b"), NewDefault("c")}
	got := sep.Join(parts)
	if got.Value != "a, b, c" {
		t.Fatalf("got %q want %q", got.Value, "a, b, c")
	}
}

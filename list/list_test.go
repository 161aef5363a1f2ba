package list

import (
	"testing"

	"github.com/kr/pretty"
)

func TestAppendAndValues(t *testing.T) {
	l := New(nil, 1, 2, 3)
	got := l.Values()
	want := []any{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
}

func TestPrependAndReversedValues(t *testing.T) {
	l := New(nil)
	l.Append(1)
	l.Append(2)
	l.Prepend(0)
	got := l.Values()
	want := []any{0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
	rev := l.ReversedValues()
	wantRev := []any{2, 1, 0}
	for i := range wantRev {
		if rev[i] != wantRev[i] {
			t.Errorf("index %d: got %v want %v", i, rev[i], wantRev[i])
		}
	}
}

func TestGetSetInsert(t *testing.T) {
	l := New(nil, "a", "b", "c")
	v, err := l.Get(1)
	if err != nil || v != "b" {
		t.Fatalf("Get(1) = %v, %v", v, err)
	}
	if err := l.Set(1, "B"); err != nil {
		t.Fatal(err)
	}
	if err := l.Insert(1, "X"); err != nil {
		t.Fatal(err)
	}
	got := l.Values()
	want := []any{"a", "X", "B", "c"}
	if len(got) != len(want) {
		t.Fatalf("node chain mismatch:\n%s", pretty.Sprint(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v want %v\ndiff:\n%s", i, got[i], want[i], pretty.Diff(got, want))
		}
	}
}

func TestPopAndRemove(t *testing.T) {
	l := New(nil, 1, 2, 3)
	v, err := l.Pop(-1)
	if err != nil || v != 3 {
		t.Fatalf("Pop(-1) = %v, %v", v, err)
	}
	if err := l.Remove(1); err != nil {
		t.Fatal(err)
	}
	got := l.Values()
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("got %v, want [2]", got)
	}
}

func TestCursorIteration(t *testing.T) {
	l := New(nil, 1, 2, 3)
	c := l.Head()
	defer c.Close()
	var out []any
	for {
		v, err := c.Next()
		if err != nil {
			break
		}
		out = append(out, v)
	}
	want := []any{1, 2, 3}
	if len(out) != len(want) {
		t.Fatalf("got %v want %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("index %d: got %v want %v", i, out[i], want[i])
		}
	}
}

func TestCursorSurvivesClear(t *testing.T) {
	l := New(nil, 1, 2, 3)
	c := l.Head()
	if _, err := c.Next(); err != nil {
		t.Fatal(err)
	}
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", l.Len())
	}
	if !c.IsSpecial() {
		t.Errorf("node referenced by a live cursor should become a TOMBSTONE (special) after Clear")
	}
	c.Close()
}

func TestCursorInsertAppend(t *testing.T) {
	l := New(nil, 1, 3)
	c := l.Head()
	defer c.Close()
	if _, err := c.Next(); err != nil {
		t.Fatal(err)
	}
	if err := c.Append(2); err != nil {
		t.Fatal(err)
	}
	got := l.Values()
	want := []any{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestSpliceMovesNodes(t *testing.T) {
	a := New(nil, 1, 2)
	b := New(nil, 3, 4)
	if err := a.Splice(b, nil); err != nil {
		t.Fatal(err)
	}
	got := a.Values()
	want := []any{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
	if b.Len() != 0 {
		t.Errorf("b.Len() = %d, want 0", b.Len())
	}
}

func TestReverseAndRotate(t *testing.T) {
	l := New(nil, 1, 2, 3, 4)
	l.Reverse()
	got := l.Values()
	want := []any{4, 3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reverse index %d: got %v want %v", i, got[i], want[i])
		}
	}
	l.Rotate(1)
	got = l.Values()
	want = []any{1, 4, 3, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rotate index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestCutTransfersOwnership(t *testing.T) {
	l := New(nil, 1, 2, 3, 4)
	start, stop := 1, 3
	cut, err := l.Cut(&start, &stop, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := cut.Values(); len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("cut.Values() = %v, want [2 3]:\n%s", got, pretty.Sprint(got))
	}
	if got := l.Values(); len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Errorf("l.Values() = %v, want [1 4]:\n%s", got, pretty.Sprint(got))
	}
}

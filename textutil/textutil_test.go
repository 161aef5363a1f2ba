package textutil

import "testing"

func TestSplitTitleCase(t *testing.T) {
	got := SplitTitleCase("WhenIWasATeapot", true)
	want := []string{"When", "I", "Was", "A", "Teapot"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestSplitTitleCaseNoSplitAllCaps(t *testing.T) {
	got := SplitTitleCase("WhenIWasATeapot", false)
	want := []string{"When", "IWas", "ATeapot"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestGentlyTitle(t *testing.T) {
	got := GentlyTitle("he said 'no i did not'")
	want := "He Said 'No I Did Not'"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestGentlyTitleOApostrophe(t *testing.T) {
	got := GentlyTitle("peter o'toole")
	want := "Peter O'Toole"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestCombineSplits(t *testing.T) {
	got, err := CombineSplits("abcde", []string{"abcd", "e"}, []string{"a", "bcde"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "bcd", "e"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestWrapWords(t *testing.T) {
	got, err := WrapWords([]string{"this", "is", "a", "test"}, 6, true)
	if err != nil {
		t.Fatal(err)
	}
	want := "this\nis a\ntest"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestIntToWords(t *testing.T) {
	tests := []struct {
		i        int64
		flowery  bool
		ordinal  bool
		expected string
	}{
		{2, true, false, "two"},
		{35, true, false, "thirty-five"},
		{123, true, false, "one hundred and twenty-three"},
		{1, false, true, "first"},
		{20, false, true, "twentieth"},
		{-5, true, false, "negative five"},
	}
	for _, tt := range tests {
		got := IntToWords(tt.i, tt.flowery, tt.ordinal)
		if got != tt.expected {
			t.Errorf("IntToWords(%d, %v, %v) = %q, want %q", tt.i, tt.flowery, tt.ordinal, got, tt.expected)
		}
	}
}

func TestMergeColumnsRaisesOnOverflow(t *testing.T) {
	cols := []Column{{Text: "this line is far too long for the column", MinWidth: 0, MaxWidth: 5}}
	_, err := MergeColumns(cols, " ", OverflowRaise)
	if err == nil {
		t.Fatal("expected an overflow error")
	}
}

func TestSplitTextWithCodeProse(t *testing.T) {
	got := SplitTextWithCode("hello world\nfoo bar", 8, 4, true, true)
	want := []string{"hello", "world", "\n", "foo", "bar"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestSplitTextWithCodePreservesCodeBlock(t *testing.T) {
	got := SplitTextWithCode("intro\n\n    x = 1\n    y = 2\n", 8, 4, true, true)
	want := []string{"intro", "\n\n", "    x = 1\n    y = 2"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestMergeColumnsSideBySide(t *testing.T) {
	cols := []Column{
		{Text: "a\nbb", MaxWidth: 3},
		{Text: "x\nyy", MaxWidth: 3},
	}
	got, err := MergeColumns(cols, "|", OverflowRaise)
	if err != nil {
		t.Fatal(err)
	}
	want := "a  |x\nbb |yy"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

package lines

import (
	"testing"
)

func lineTexts(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Line
	}
	return out
}

func TestSplitBasic(t *testing.T) {
	entries, err := Split("one\ntwo\nthree", Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"one", "two", "three"}
	got := lineTexts(entries)
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
	if entries[0].Info.LineNumber != 1 || entries[2].Info.LineNumber != 3 {
		t.Errorf("bad line numbers: %d, %d", entries[0].Info.LineNumber, entries[2].Info.LineNumber)
	}
	if entries[0].Info.End != "\n" || entries[2].Info.End != "" {
		t.Errorf("bad ends: %q, %q", entries[0].Info.End, entries[2].Info.End)
	}
	if entries[0].Info.Raw != "one\n" {
		t.Errorf("bad raw: %q", entries[0].Info.Raw)
	}
}

func TestRstrip(t *testing.T) {
	entries, err := Split("a  \nb\t\n", Options{})
	if err != nil {
		t.Fatal(err)
	}
	stripped, err := Rstrip(entries, nil)
	if err != nil {
		t.Fatal(err)
	}
	if stripped[0].Line != "a" || stripped[0].Info.Trailing != "  " {
		t.Errorf("got line=%q trailing=%q", stripped[0].Line, stripped[0].Info.Trailing)
	}
	if stripped[1].Line != "b" || stripped[1].Info.Trailing != "\t" {
		t.Errorf("got line=%q trailing=%q", stripped[1].Line, stripped[1].Info.Trailing)
	}
}

func TestStrip(t *testing.T) {
	entries, err := Split("  a b  \n", Options{})
	if err != nil {
		t.Fatal(err)
	}
	stripped, err := Strip(entries, nil)
	if err != nil {
		t.Fatal(err)
	}
	if stripped[0].Line != "a b" {
		t.Errorf("got %q", stripped[0].Line)
	}
	if stripped[0].Info.Leading != "  " || stripped[0].Info.Trailing != "  " {
		t.Errorf("got leading=%q trailing=%q", stripped[0].Info.Leading, stripped[0].Info.Trailing)
	}
}

func TestFilterLineCommentLines(t *testing.T) {
	entries, err := Split("keep\n# drop\n  # also drop\nkeep2", Options{})
	if err != nil {
		t.Fatal(err)
	}
	filtered, err := FilterLineCommentLines(entries, []string{"#"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"keep", "keep2"}
	got := lineTexts(filtered)
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestContaining(t *testing.T) {
	entries, _ := Split("apple\nbanana\ncherry", Options{})
	got := lineTexts(Containing(entries, "an", false))
	if len(got) != 1 || got[0] != "banana" {
		t.Errorf("got %v", got)
	}
	got = lineTexts(Containing(entries, "an", true))
	if len(got) != 2 {
		t.Errorf("got %v", got)
	}
}

func TestGrep(t *testing.T) {
	entries, _ := Split("foo123\nbar\nfoo456", Options{})
	matched, err := Grep(entries, `foo(\d+)`, false, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 2 {
		t.Fatalf("got %d entries", len(matched))
	}
	if matched[0].Info.Extra["match"] == nil {
		t.Error("expected match recorded in Extra")
	}
}

func TestSort(t *testing.T) {
	entries, _ := Split("banana\napple\ncherry", Options{})
	sorted := Sort(entries, nil, false)
	got := lineTexts(sorted)
	want := []string{"apple", "banana", "cherry"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestFilterEmptyLines(t *testing.T) {
	entries, _ := Split("a\n\nb\n\nc", Options{})
	filtered := FilterEmptyLines(entries)
	got := lineTexts(filtered)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i, l := range filtered {
		if l.Info.LineNumber != 2*i+1 {
			t.Errorf("line number not preserved: got %d want %d", l.Info.LineNumber, 2*i+1)
		}
	}
}

func TestStripLineCommentsNoQuoting(t *testing.T) {
	entries, _ := Split("value = 1 # comment\nplain", Options{})
	out, err := StripLineComments(entries, []string{"#"}, StripLineCommentsOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if out[0].Line != "value = 1 " {
		t.Errorf("got %q", out[0].Line)
	}
	if out[1].Line != "plain" {
		t.Errorf("got %q", out[1].Line)
	}
}

func TestStripLineCommentsIgnoresQuoted(t *testing.T) {
	entries, _ := Split(`s = "a # b" # real comment`, Options{})
	out, err := StripLineComments(entries, []string{"#"}, StripLineCommentsOptions{Quotes: []string{`"`}})
	if err != nil {
		t.Fatal(err)
	}
	if out[0].Line != `s = "a # b" ` {
		t.Errorf("got %q", out[0].Line)
	}
}

func TestConvertTabsToSpaces(t *testing.T) {
	entries, _ := Split("a\tb", Options{TabWidth: 4})
	out := ConvertTabsToSpaces(entries)
	if out[0].Line != "a   b" {
		t.Errorf("got %q", out[0].Line)
	}
}

func TestStripIndent(t *testing.T) {
	entries := SplitSlice([]string{"top", "  nested", "  nested2", "    deeper", "back"}, Options{})
	out, err := StripIndent(entries)
	if err != nil {
		t.Fatal(err)
	}
	wantIndent := []int{0, 1, 1, 2, 0}
	for i, e := range out {
		if e.Info.Indent != wantIndent[i] {
			t.Errorf("index %d: got indent %d want %d", i, e.Info.Indent, wantIndent[i])
		}
	}
	if out[1].Line != "nested" || out[1].Info.Leading != "  " {
		t.Errorf("got line=%q leading=%q", out[1].Line, out[1].Info.Leading)
	}
}

func TestStripIndentRejectsBadDedent(t *testing.T) {
	entries := SplitSlice([]string{"top", "    nested", "  bad"}, Options{})
	_, err := StripIndent(entries)
	if err == nil {
		t.Fatal("expected an IndentationError")
	}
}

func TestStripIndentBlankLinesTakeNextIndent(t *testing.T) {
	entries := SplitSlice([]string{"top", "", "  nested"}, Options{})
	out, err := StripIndent(entries)
	if err != nil {
		t.Fatal(err)
	}
	if out[1].Info.Indent != 1 {
		t.Errorf("blank line got indent %d, want 1", out[1].Info.Indent)
	}
}

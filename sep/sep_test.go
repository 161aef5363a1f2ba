package sep

import "testing"

func TestCompileLongestFirst(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  []string
	}{
		{"simple", []string{"a", "abc"}, []string{"abc", "a"}},
		{"already sorted", []string{"xyz", "xy", "x"}, []string{"xyz", "xy", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSet(Unicode, tt.items...)
			if err != nil {
				t.Fatalf("NewSet: %v", err)
			}
			got := s.Items()
			if len(got) != len(tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("index %d: got %q want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNewSetRejectsEmpty(t *testing.T) {
	if _, err := NewSet(Unicode); err == nil {
		t.Fatal("expected error for empty separator set")
	}
	if _, err := NewSet(Unicode, ""); err == nil {
		t.Fatal("expected error for empty separator element")
	}
}

func TestCompileMemoizes(t *testing.T) {
	s, err := NewSet(Unicode, "a", "b")
	if err != nil {
		t.Fatal(err)
	}
	c1 := Compile(s, false, true)
	c2 := Compile(s, false, true)
	if c1 != c2 {
		t.Errorf("expected memoized compile to return the same *Compiled")
	}
	c3 := Compile(s, true, true)
	if c1 == c3 {
		t.Errorf("expected different flags to produce a different compile")
	}
}

func TestReversedStandardSets(t *testing.T) {
	r := NamedASCIIWhitespace.Reversed()
	if r == nil {
		t.Fatal("expected a reversed form")
	}
}

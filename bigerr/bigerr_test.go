package bigerr

import (
	"testing"

	"github.com/juju/errors"
)

func TestIsMatchesConstructedKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"argument type", ArgumentTypeErrorf("want %s", "int"), ArgumentType},
		{"argument value", ArgumentValueErrorf("bad value %d", 5), ArgumentValue},
		{"syntax", SyntaxErrorf(3, "unexpected %q", "x"), Syntax},
		{"undefined index", UndefinedIndexErrorf("no such index %d", 2), UndefinedIndex},
		{"special node", SpecialNodeErrorf("tombstone"), SpecialNode},
		{"overflow", OverflowErrorf("too wide"), Overflow},
		{"lookup", LookupErrorf("missing key %q", "k"), Lookup},
		{"indentation", IndentationErrorf("bad dedent"), Indentation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.kind) {
				t.Errorf("Is(err, %v) = false, want true", tt.kind)
			}
			for _, other := range []Kind{ArgumentType, ArgumentValue, Syntax, UndefinedIndex, SpecialNode, Overflow, Lookup, Indentation} {
				if other == tt.kind {
					continue
				}
				if Is(tt.err, other) {
					t.Errorf("Is(err, %v) = true, want false", other)
				}
			}
		})
	}
}

func TestIsResolvesThroughErrorsCause(t *testing.T) {
	err := LookupErrorf("missing %q", "k")
	cause := errors.Cause(err)
	if _, ok := cause.(*Error); !ok {
		t.Fatalf("errors.Cause(err) = %T, want *Error", cause)
	}
	if !Is(err, Lookup) {
		t.Errorf("Is(err, Lookup) = false, want true")
	}
}

func TestIsFalseForUnrelatedError(t *testing.T) {
	if Is(errors.New("plain"), Lookup) {
		t.Errorf("Is(plain error, Lookup) = true, want false")
	}
}

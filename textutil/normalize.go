package textutil

import (
	"strings"

	"github.com/larryhastings/big-sub001/sep"
	"github.com/larryhastings/big-sub001/split"
)

// NormalizeWhitespace turns every run of separator characters into
// replacement, including leading/trailing runs (so " a  b" becomes
// " a b" with the default replacement, not "a b" — leading/trailing
// separators are normalized, not stripped). separators defaults to
// the Unicode whitespace-without-CRLF set; replacement defaults to
// a single space.
func NormalizeWhitespace(s string, separators *sep.Set, replacement string) (string, error) {
	if separators == nil {
		separators = sep.NamedUnicodeWhitespaceWithoutCRLF
	}
	if replacement == "" {
		replacement = " "
	}
	if s == "" {
		return "", nil
	}
	pieces, err := split.Multisplit(s, separators, split.Options{MaxSplit: -1, Separate: false, Strip: split.StripNone})
	if err != nil {
		return "", err
	}
	return strings.Join(split.Bare(pieces), replacement), nil
}

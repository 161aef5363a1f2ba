package textutil

import (
	"strings"
	"unicode"

	"github.com/larryhastings/big-sub001/bigerr"
)

// WrapWords combines words into lines, each no longer than margin
// (unless a single word exceeds margin on its own), honoring a single
// "\n" element as a line break and "\n\n" as a paragraph break
// (original_source's wrap_words). When twoSpaces is true, a word
// ending in sentence-ending punctuation (. ? !) is followed by two
// spaces rather than one.
func WrapWords(words []string, margin int, twoSpaces bool) (string, error) {
	if len(words) == 0 {
		return "", bigerr.ArgumentValueErrorf("no words to wrap")
	}
	var b strings.Builder
	col := 0
	lastWord := ""
	for _, word := range words {
		if isAllSpace(word) {
			lastWord = word
			col = 0
			b.WriteString(word)
			continue
		}
		l := len(word)
		space := " "
		lenSpace := 1
		if twoSpaces && endsInSentencePunctuation(lastWord) {
			space = "  "
			lenSpace = 2
		}
		if l+lenSpace+col > margin {
			if col > 0 {
				b.WriteString("\n")
				col = 0
			}
		} else if col > 0 {
			b.WriteString(space)
			col += lenSpace
		}
		b.WriteString(word)
		col += l
		lastWord = word
	}
	return b.String(), nil
}

func isAllSpace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func endsInSentencePunctuation(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "?") || strings.HasSuffix(s, "!")
}

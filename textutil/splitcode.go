package textutil

import (
	"strings"
)

// SplitTextWithCode splits s into word tokens suitable for WrapWords:
// paragraphs are separated by blank lines, each blank-line run
// becoming a single "\n\n" token, and a paragraph whose lines are all
// indented by at least codeIndent spaces (when allowCode is true) is
// kept as one preformatted token instead of being broken into words —
// so WrapWords reproduces the paragraph's original line breaks and
// internal spacing verbatim, the way a code example embedded in a doc
// comment survives word-wrapping unmangled.
//
// This is a line-paragraph-grained port of original_source's
// character-at-a-time _column_wrapper_splitter state machine: it
// decides "is this paragraph code" per paragraph rather than
// detecting the code/prose boundary mid-paragraph as the original
// does, trading that for a simpler implementation at the cost of requiring a
// paragraph to be wholly code or wholly prose — see DESIGN.md.
func SplitTextWithCode(s string, tabWidth, codeIndent int, allowCode, convertTabsToSpaces bool) []string {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	if codeIndent <= 0 {
		codeIndent = 4
	}
	if s == "" {
		return []string{""}
	}

	rawLines := strings.Split(s, "\n")
	if len(rawLines) > 0 && rawLines[len(rawLines)-1] == "" {
		// a trailing "\n" is the previous line's terminator, not an
		// extra blank line of its own.
		rawLines = rawLines[:len(rawLines)-1]
	}

	var paragraphs [][]string
	var para []string
	for _, line := range rawLines {
		if strings.TrimSpace(line) == "" {
			if len(para) > 0 {
				paragraphs = append(paragraphs, para)
				para = nil
			}
			continue
		}
		para = append(para, line)
	}
	if len(para) > 0 {
		paragraphs = append(paragraphs, para)
	}

	var words []string
	for i, p := range paragraphs {
		if i > 0 {
			words = append(words, "\n\n")
		}
		words = append(words, paragraphWords(p, tabWidth, codeIndent, allowCode, convertTabsToSpaces)...)
	}

	if len(words) == 0 {
		return []string{""}
	}
	return words
}

func paragraphWords(lines []string, tabWidth, codeIndent int, allowCode, convertTabsToSpaces bool) []string {
	isCode := allowCode && paragraphIsCode(lines, tabWidth, codeIndent)
	if isCode {
		body := make([]string, len(lines))
		for i, l := range lines {
			if convertTabsToSpaces {
				l = expandTabsSimple(l, tabWidth)
			}
			body[i] = l
		}
		return []string{strings.Join(body, "\n")}
	}

	var words []string
	for i, l := range lines {
		words = append(words, strings.Fields(l)...)
		if i != len(lines)-1 {
			words = append(words, "\n")
		}
	}
	return words
}

func paragraphIsCode(lines []string, tabWidth, codeIndent int) bool {
	for _, l := range lines {
		expanded := expandTabsSimple(l, tabWidth)
		leading := len(expanded) - len(strings.TrimLeft(expanded, " "))
		if leading < codeIndent {
			return false
		}
	}
	return true
}

func expandTabsSimple(s string, tabWidth int) string {
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			pad := tabWidth - (col % tabWidth)
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}

package sep

// Named separator tuples exported at package scope (spec.md §6).
// bytes_linebreaks specifically excludes \v and \f, matching the byte
// (non-Unicode) linebreak semantics Go's own strings.Fields-family
// avoids probing for: the library hard-codes the ASCII answer at
// package init rather than "probing once" as the Python original
// does, since Go's byte/string semantics are fixed at compile time,
// not host-dependent.
var (
	NamedASCIIWhitespace            = mustSet(Unicode, " ", "\t", "\n", "\r", "\v", "\f")
	NamedASCIIWhitespaceWithoutCRLF = mustSet(Unicode, " ", "\t", "\v", "\f")
	NamedASCIILinebreaks            = mustSet(Unicode, "\n", "\r\n", "\r", "\v", "\f")
	NamedASCIILinebreaksWithoutCRLF = mustSet(Unicode, "\n", "\r", "\v", "\f")

	// Unicode whitespace code points beyond ASCII, matching Python's
	// str.isspace() set: NEL, NBSP, Ogham space mark, the U+2000-U+200A
	// space run, line/paragraph separators, narrow/medium math spaces,
	// and ideographic space. Written as literal characters, most of
	// which render invisibly.
	NamedUnicodeWhitespace = mustSet(Unicode,
		" ", "\t", "\n", "\r", "\v", "\f",
		"", " ", " ",
		" ", " ", " ", " ", " ", " ",
		" ", " ", " ", " ", " ",
		" ", " ", " ", " ", "　",
	)
	NamedUnicodeWhitespaceWithoutCRLF = mustSet(Unicode,
		" ", "\t", "\v", "\f",
		"", " ", " ",
		" ", " ", " ", " ", " ", " ",
		" ", " ", " ", " ", " ",
		" ", " ", " ", " ", "　",
	)
	NamedUnicodeLinebreaks = mustSet(Unicode,
		"\n", "\r\n", "\r", "\v", "\f", "", " ", " ",
	)
	NamedUnicodeLinebreaksWithoutCRLF = mustSet(Unicode,
		"\n", "\r", "\v", "\f", "", " ", " ",
	)

	// Bytes variants: excludes \v and \f from the "linebreaks" family
	// per spec.md §6.
	NamedBytesWhitespace            = mustSet(Bytes, " ", "\t", "\n", "\r", "\v", "\f")
	NamedBytesWhitespaceWithoutCRLF = mustSet(Bytes, " ", "\t", "\v", "\f")
	NamedBytesLinebreaks            = mustSet(Bytes, "\n", "\r\n", "\r")
	NamedBytesLinebreaksWithoutCRLF = mustSet(Bytes, "\n", "\r")
)

func mustSet(v Variant, items ...string) *Set {
	s, err := NewSet(v, items...)
	if err != nil {
		panic(err)
	}
	return s
}

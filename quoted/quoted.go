// Package quoted implements the quoted-string splitter (component D):
// it tokenizes text into (leading-quote, body, trailing-quote)
// triples, honoring escape sequences and single-line vs. multi-line
// quote classes, with resumable state for streaming callers.
package quoted

import (
	"sort"
	"strings"

	"github.com/larryhastings/big-sub001/bigerr"
	"github.com/larryhastings/big-sub001/sep"
	"github.com/larryhastings/big-sub001/split"
)

// Triple is one (leading quote marker, body, trailing quote marker)
// result; joining leading+body+trailing across all triples
// reconstructs the input (spec.md §4.D).
type Triple struct {
	Leading, Body, Trailing string
}

// Options configures SplitQuotedStrings.
type Options struct {
	Quotes          []string // single-line quote markers
	MultilineQuotes []string // multi-line quote markers
	Escape          string   // possibly empty
	State           string   // resume: open quote marker, or "" if not resuming
}

// SplitQuotedStrings implements spec.md §4.D. It consumes a
// multisplit AS_PAIRS stream over the union of quote markers, their
// escaped forms, and the doubled escape, exactly as the state machine
// description prescribes.
func SplitQuotedStrings(text string, opts Options) ([]Triple, error) {
	if len(opts.Quotes) == 0 && len(opts.MultilineQuotes) == 0 {
		return nil, bigerr.ArgumentValueErrorf("quotes and multiline_quotes must not both be empty")
	}
	quoteSet := map[string]bool{}
	multilineSet := map[string]bool{}
	for _, q := range opts.Quotes {
		if q == "" {
			return nil, bigerr.ArgumentValueErrorf("quote markers must not be empty")
		}
		if quoteSet[q] {
			return nil, bigerr.ArgumentValueErrorf("repeated quote marker %q", q)
		}
		quoteSet[q] = true
	}
	for _, q := range opts.MultilineQuotes {
		if q == "" {
			return nil, bigerr.ArgumentValueErrorf("multiline quote markers must not be empty")
		}
		if quoteSet[q] {
			return nil, bigerr.ArgumentValueErrorf("marker %q is in both quotes and multiline_quotes", q)
		}
		if multilineSet[q] {
			return nil, bigerr.ArgumentValueErrorf("repeated multiline quote marker %q", q)
		}
		multilineSet[q] = true
	}

	atoms := map[string]bool{}
	for q := range quoteSet {
		atoms[q] = true
	}
	for q := range multilineSet {
		atoms[q] = true
	}
	if opts.Escape != "" {
		for q := range quoteSet {
			atoms[opts.Escape+string(q[0])] = true
		}
		atoms[opts.Escape+opts.Escape] = true
	}
	atomList := make([]string, 0, len(atoms))
	for a := range atoms {
		atomList = append(atomList, a)
	}
	sort.Strings(atomList)

	sset, err := sep.NewSet(sep.Unicode, atomList...)
	if err != nil {
		return nil, err
	}
	pieces, err := split.Multisplit(text, sset, split.Options{MaxSplit: -1, Separate: true, Strip: split.StripNone})
	if err != nil {
		return nil, err
	}

	var out []Triple
	var buf strings.Builder
	quote := opts.State
	offset := 0

	flushUnquoted := func() {
		if buf.Len() == 0 {
			return
		}
		out = append(out, Triple{Leading: "", Body: buf.String(), Trailing: ""})
		buf.Reset()
	}

	isMultiline := func(q string) bool { return multilineSet[q] }

	for _, p := range pieces {
		buf.WriteString(p.Text)
		offset += len(p.Text)
		marker := p.Sep
		if marker == "" {
			continue
		}
		switch {
		case quote == "":
			if quoteSet[marker] || multilineSet[marker] {
				flushUnquoted()
				quote = marker
			} else {
				buf.WriteString(marker)
			}
		case opts.Escape != "" && strings.HasPrefix(marker, opts.Escape) && marker != opts.Escape+opts.Escape && marker == opts.Escape+string(quote[0]):
			buf.WriteString(marker)
		case opts.Escape != "" && marker == opts.Escape+opts.Escape:
			buf.WriteString(marker)
		case marker == quote:
			body := buf.String()
			buf.Reset()
			if !isMultiline(quote) && strings.ContainsAny(body, "\n\r") {
				return nil, bigerr.SyntaxErrorf(offset, "illegal newline inside single-line quoted string")
			}
			leading := quote
			if opts.State != "" && len(out) == 0 {
				leading = ""
			}
			out = append(out, Triple{Leading: leading, Body: body, Trailing: marker})
			quote = ""
		default:
			buf.WriteString(marker)
		}
		offset += len(marker)
	}

	if quote != "" {
		// An unterminated quote at EOF is not an error (original_source
		// big/text.py: split_quoted_strings doesn't raise when s ends
		// with an unterminated quoted string — the last triple yielded
		// has a non-empty leading_quote and an empty trailing_quote).
		leading := quote
		if opts.State != "" && len(out) == 0 {
			leading = ""
		}
		out = append(out, Triple{Leading: leading, Body: buf.String(), Trailing: ""})
		buf.Reset()
		return out, nil
	}
	flushUnquoted()
	return out, nil
}

// Package delim implements the delimiter state machine (component E):
// nested open/close delimiter parsing with per-delimiter quoting,
// escape, and multiline policies, scanning over a multisplit stream
// the way the teacher's lexer scans over single bytes (lexer/lexer.go's
// scan() dispatch switch is the idiom this state machine's per-token
// dispatch is grounded on, generalized from a byte alphabet to a
// multi-character token alphabet).
package delim

import (
	"strings"

	"github.com/larryhastings/big-sub001/bigerr"
	"github.com/larryhastings/big-sub001/sep"
	"github.com/larryhastings/big-sub001/split"
)

// Delimiter is the immutable record keyed externally by its open
// text (spec.md §3).
type Delimiter struct {
	Close     string
	Escape    string
	Quoting   bool
	Multiline bool
}

// Validate enforces spec.md §3's Delimiter constraints.
func (d Delimiter) Validate() error {
	if d.Close == `\` {
		return bigerr.ArgumentValueErrorf(`delimiter close must not be "\\"`)
	}
	if d.Quoting != (d.Escape != "") {
		return bigerr.ArgumentValueErrorf("quoting must be true iff escape is non-empty")
	}
	if !d.Multiline && !d.Quoting {
		return bigerr.ArgumentValueErrorf("multiline=false is only permitted when quoting=true")
	}
	return nil
}

// Default delimiters, mirroring big.text's module-scope instances.
var (
	Parentheses    = Delimiter{Close: ")", Multiline: true}
	SquareBrackets = Delimiter{Close: "]", Multiline: true}
	CurlyBraces    = Delimiter{Close: "}", Multiline: true}
	AngleBrackets  = Delimiter{Close: ">", Multiline: true}
	SingleQuote    = Delimiter{Close: "'", Escape: `\`, Quoting: true, Multiline: false}
	DoubleQuote    = Delimiter{Close: `"`, Escape: `\`, Quoting: true, Multiline: false}
)

// DefaultDelimiters is split_delimiters_default_delimiters: note it
// does NOT include angle brackets, matching the Python original.
func DefaultDelimiters() map[string]Delimiter {
	return map[string]Delimiter{
		"(": Parentheses,
		"[": SquareBrackets,
		"{": CurlyBraces,
		`'`: SingleQuote,
		`"`: DoubleQuote,
	}
}

// Triple is one (body, open, close) result; exactly one of Open/Close
// is non-empty, except the final trailing triple where both are
// empty (spec.md §4.E).
type Triple struct {
	Body, Open, Close string
}

type frame struct {
	open string
	d    Delimiter
}

func isLinebreakToken(s string) bool {
	return s == "\n" || s == "\r\n" || s == "\r"
}

// SplitDelimiters implements spec.md §4.E. state primes the open
// stack (outermost first) for streaming multi-buffer parsing; the
// returned finalState is the stack remaining open at EOF, suitable
// for priming the next call.
func SplitDelimiters(text string, delimiters map[string]Delimiter, state []string) ([]Triple, []string, error) {
	if len(delimiters) == 0 {
		return nil, nil, bigerr.ArgumentValueErrorf("delimiter map must not be empty")
	}
	for open, d := range delimiters {
		if open == "" {
			return nil, nil, bigerr.ArgumentValueErrorf("delimiter open marker must not be empty")
		}
		if open == `\` {
			return nil, nil, bigerr.ArgumentValueErrorf(`delimiter open must not be "\\"`)
		}
		if err := d.Validate(); err != nil {
			return nil, nil, err
		}
	}

	// The "outside a quoting delimiter" alphabet: every delimiter's
	// open marker, so any of them can be recognized as a PUSH no
	// matter how deep the current (non-quoting) nesting is. This list
	// never changes across states, unlike the quoting alphabet below.
	openAtoms := make([]string, 0, len(delimiters))
	for open := range delimiters {
		openAtoms = append(openAtoms, open)
	}

	var stack []frame
	for _, open := range state {
		d, ok := delimiters[open]
		if !ok {
			return nil, nil, bigerr.ArgumentValueErrorf("unknown open marker %q in initial state", open)
		}
		stack = append(stack, frame{open: open, d: d})
	}

	var out []Triple
	var buf strings.Builder
	pos := 0
	offset := 0

	for pos <= len(text) {
		var cur *frame
		if len(stack) > 0 {
			cur = &stack[len(stack)-1]
		}

		// Each state gets its own token alphabet, recompiled (and the
		// remaining text re-split) on every PUSH/POP, rather than one
		// fixed alphabet reused for the whole text: while quoting, the
		// only tokens that matter are this delimiter's own close,
		// escape sequences, and (if single-line) linebreaks. Leaving
		// an ancestor's longer open marker in the alphabet here could
		// otherwise shadow this delimiter's own close whenever the two
		// share a prefix; leaving this delimiter's tokens out of an
		// ancestor's alphabet could do the reverse. Scoping the
		// alphabet to exactly the current state avoids both.
		var atomList []string
		if cur != nil && cur.d.Quoting {
			atoms := map[string]bool{cur.d.Close: true}
			atoms[cur.d.Escape+cur.d.Close] = true
			atoms[cur.d.Escape+cur.d.Escape] = true
			if !cur.d.Multiline {
				atoms["\n"] = true
				atoms["\r\n"] = true
				atoms["\r"] = true
			}
			atomList = make([]string, 0, len(atoms))
			for a := range atoms {
				atomList = append(atomList, a)
			}
		} else {
			atomList = openAtoms
			if cur != nil {
				atomList = append(append([]string(nil), openAtoms...), cur.d.Close)
			}
		}

		sset, err := sep.NewSet(sep.Unicode, atomList...)
		if err != nil {
			return nil, nil, err
		}
		pieces, err := split.Multisplit(text[pos:], sset, split.Options{MaxSplit: 1, Separate: true, Strip: split.StripNone})
		if err != nil {
			return nil, nil, err
		}
		p := pieces[0]
		buf.WriteString(p.Text)
		offset += len(p.Text)
		pos += len(p.Text)
		token := p.Sep
		if token == "" {
			break
		}
		pos += len(token)

		switch {
		case cur != nil && cur.d.Quoting && (token == cur.d.Escape+cur.d.Close || token == cur.d.Escape+cur.d.Escape):
			buf.WriteString(token)

		case cur != nil && token == cur.d.Close:
			body := buf.String()
			buf.Reset()
			out = append(out, Triple{Body: body, Close: token})
			stack = stack[:len(stack)-1]

		case cur != nil && cur.d.Quoting && isLinebreakToken(token) && !cur.d.Multiline:
			return nil, nil, bigerr.SyntaxErrorf(offset, "illegal newline inside single-line delimiter %q", cur.open)

		case cur != nil && cur.d.Quoting:
			// Inside a quoting delimiter, anything that isn't our
			// own close/escape is literal body text.
			buf.WriteString(token)

		default:
			if d, ok := delimiters[token]; ok {
				body := buf.String()
				buf.Reset()
				out = append(out, Triple{Body: body, Open: token})
				stack = append(stack, frame{open: token, d: d})
			} else {
				// Not our delimiter's close and not a recognized
				// open in this (non-quoting) context: treat as
				// body text.
				buf.WriteString(token)
			}
		}
		offset += len(token)
	}

	if buf.Len() > 0 || len(out) == 0 {
		out = append(out, Triple{Body: buf.String()})
	}

	finalState := make([]string, len(stack))
	for i, f := range stack {
		finalState[i] = f.open
	}
	return out, finalState, nil
}

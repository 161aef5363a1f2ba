package pstring

import "strings"

// Render produces a debug rendering of a positioned string's segment
// list, one "origin.Source:start-stop" entry per segment — modeled on
// format/formatter.go's bytes.Buffer + write-helper idiom, generalized
// from rendering SQL AST nodes to rendering segment provenance.
func (s *String) Render() string {
	var b strings.Builder
	b.WriteString(s.Value)
	b.WriteString(" {")
	for i, seg := range s.Segments {
		if i > 0 {
			b.WriteString(", ")
		}
		src := seg.Origin.Source
		if src == "" {
			src = "<unknown>"
		}
		b.WriteString(src)
		b.WriteByte(':')
		writeInt(&b, seg.Start)
		b.WriteByte('-')
		writeInt(&b, seg.Stop)
	}
	b.WriteString("}")
	return b.String()
}

func writeInt(b *strings.Builder, n int) {
	if n == 0 {
		b.WriteByte('0')
		return
	}
	if n < 0 {
		b.WriteByte('-')
		n = -n
	}
	var digits [20]byte
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	b.Write(digits[i:])
}

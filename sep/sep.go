// Package sep implements the separator compiler (component A): it
// turns a set of separator texts into a single compiled regular
// expression alternation, sorted longest-first so the leftmost-wins
// alternation realizes greedy matching, with an optional capturing
// outer group and an optional one-or-more wrapper.
//
// The compiled-pattern cache is the bounded, concurrency-safe cache
// spec.md §5 requires; it is modeled on the teacher's sync.Pool
// Get/New idiom (ast/pool.go) but keyed rather than typed, since what
// is being pooled here is a compiled *regexp.Regexp rather than a
// zero-value struct.
package sep

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/larryhastings/big-sub001/bigerr"
)

// Variant distinguishes Unicode-string separators from byte-sequence
// separators. The two differ in which *named* separator tuples they
// pick (see Named*, below) and in how Reversed reverses each separator
// (rune-wise for Unicode, byte-wise for Bytes); otherwise user-supplied
// separator sets behave identically under either variant.
type Variant int

const (
	Unicode Variant = iota
	Bytes
)

// Set is an ordered, non-empty collection of non-empty separator
// texts, all of the same Variant. Construct with NewSet, which
// validates and canonicalizes the longest-first order.
type Set struct {
	items   []string
	variant Variant
	key     string // canonical cache key, computed once
}

// NewSet validates items (spec.md §3's Separator set invariants) and
// returns a canonicalized Set sorted longest-first.
func NewSet(variant Variant, items ...string) (*Set, error) {
	if len(items) == 0 {
		return nil, bigerr.ArgumentValueErrorf("separator set must not be empty")
	}
	cp := make([]string, len(items))
	copy(cp, items)
	for _, it := range cp {
		if it == "" {
			return nil, bigerr.ArgumentValueErrorf("separator elements must not be empty")
		}
	}
	sort.SliceStable(cp, func(i, j int) bool { return len(cp[i]) > len(cp[j]) })
	return &Set{items: cp, variant: variant, key: cacheKey(cp)}, nil
}

func cacheKey(items []string) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(it)
		b.WriteByte(0)
	}
	return b.String()
}

// Items returns the canonical longest-first separator texts.
func (s *Set) Items() []string { return append([]string(nil), s.items...) }

// Variant returns the set's variant.
func (s *Set) Variant() Variant { return s.variant }

func isAllWhitespace(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' && r != '\v' && r != '\f' {
			return false
		}
	}
	return len(s) > 0
}

// quote regex-escapes an element, unless it is purely whitespace, in
// which case it is emitted verbatim so the resulting pattern stays
// human-readable (spec.md §4.A).
func quote(s string) string {
	if isAllWhitespace(s) {
		return s
	}
	return regexp.QuoteMeta(s)
}

type compileKey struct {
	setKey   string
	variant  Variant
	separate bool
	keep     bool
}

// Compiled is a compiled separator pattern plus the flags it was
// compiled under.
type Compiled struct {
	Re       *regexp.Regexp
	Separate bool
	Keep     bool
}

const cacheCapacity = 512

type cache struct {
	mu    sync.Mutex
	order []compileKey
	m     map[compileKey]*Compiled
}

var globalCache = &cache{m: make(map[compileKey]*Compiled, cacheCapacity)}

func (c *cache) get(k compileKey) (*Compiled, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[k]
	return v, ok
}

func (c *cache) put(k compileKey, v *Compiled) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.m[k]; ok {
		return
	}
	if len(c.order) >= cacheCapacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.m, oldest)
	}
	c.order = append(c.order, k)
	c.m[k] = v
}

// Compile builds (or fetches from the memoization cache) the regular
// expression matching any element of s, under the given separate/keep
// flags. separate=false wraps the alternation in (?:...)+  so runs of
// adjacent separators match as one; keep=true makes the outer group
// capturing.
func Compile(s *Set, separate, keep bool) *Compiled {
	k := compileKey{setKey: s.key, variant: s.variant, separate: separate, keep: keep}
	if v, ok := globalCache.get(k); ok {
		return v
	}
	alt := make([]string, len(s.items))
	for i, it := range s.items {
		alt[i] = quote(it)
	}
	body := strings.Join(alt, "|")
	if !separate {
		body = "(?:" + body + ")+"
	} else {
		body = "(?:" + body + ")"
	}
	pattern := body
	if keep {
		pattern = "(" + body + ")"
	}
	re := regexp.MustCompile(pattern)
	compiled := &Compiled{Re: re, Separate: separate, Keep: keep}
	globalCache.put(k, compiled)
	return compiled
}

// Reversed returns a Set whose elements are each individually
// reversed (rune-wise for Unicode, byte-wise for Bytes), used by the
// multisplit reverse-mode algorithm (spec.md §4.B), which splits the
// reversed text on this set and un-reverses every piece. For the
// standard sets below the reversed set is precomputed rather than
// rebuilt on each call.
func (s *Set) Reversed() *Set {
	if r, ok := reversedStandardSets[s.key]; ok {
		return r
	}
	rev := make([]string, len(s.items))
	for i, it := range s.items {
		rev[i] = reverseText(it, s.variant)
	}
	out, _ := NewSet(s.variant, rev...)
	return out
}

func reverseText(s string, v Variant) string {
	if v == Bytes {
		b := []byte(s)
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		return string(b)
	}
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// reversedStandardSets holds precomputed reversed forms for the named
// separator tuples in Named*, keyed by their canonical cache key, so
// Reversed is O(1) for every set multisplit's reverse mode is likely
// to be called with in practice.
var reversedStandardSets = map[string]*Set{}

func registerStandardReversed(sets ...*Set) {
	for _, s := range sets {
		rev := make([]string, len(s.items))
		for i, it := range s.items {
			rev[i] = reverseText(it, s.variant)
		}
		out, _ := NewSet(s.variant, rev...)
		reversedStandardSets[s.key] = out
	}
}

func init() {
	registerStandardReversed(
		NamedASCIIWhitespace, NamedASCIIWhitespaceWithoutCRLF,
		NamedUnicodeWhitespace, NamedUnicodeWhitespaceWithoutCRLF,
		NamedASCIILinebreaks, NamedASCIILinebreaksWithoutCRLF,
		NamedUnicodeLinebreaks, NamedUnicodeLinebreaksWithoutCRLF,
		NamedBytesWhitespace, NamedBytesWhitespaceWithoutCRLF,
		NamedBytesLinebreaks, NamedBytesLinebreaksWithoutCRLF,
	)
}

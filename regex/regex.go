// Package regex compiles a set of named patterns into a single matcher
// capable of reporting, at any byte offset, the longest match among a
// caller-supplied subset of those patterns.
//
// Each pattern is compiled independently with Go's standard regexp
// package, anchored to the start of the search window. regexp is
// RE2-derived: matching is guaranteed linear in input length, with no
// catastrophic backtracking, which is why it is used here instead of a
// hand-rolled backtracking engine.
package regex

import (
	"fmt"
	"regexp"
	"sort"
)

// Error reports a pattern that failed to compile.
type Error struct {
	Name    string
	Pattern string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("regex: invalid pattern %q for %q: %s", e.Pattern, e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Match is the result of a successful match: the id of the winning
// pattern (its position in declaration order), the byte length consumed
// and the captured submatches, as [start, end) byte offsets relative to
// the start of the searched buffer.
type Match struct {
	ID       int
	Name     string
	Length   int
	Captures []Capture
}

// Capture is a single positional (unnamed) capture group, indexed from 0.
// A capture group that did not participate in the match (e.g. the
// unmatched side of an alternation) has Matched == false; its index is
// still reserved so later groups keep their declared position.
type Capture struct {
	Start, End int
	Matched    bool
}

// Text extracts the capture's text from buf, which must be the same
// buffer the match was computed against. It returns "" for a
// non-participating capture.
func (c Capture) Text(buf []byte) string {
	if !c.Matched {
		return ""
	}
	return string(buf[c.Start:c.End])
}

type pattern struct {
	name    string
	keyword bool
	re      *regexp.Regexp
	// groups is the number of capturing groups declared by this pattern.
	groups int
}

// Matcher is a combined multi-pattern matcher built from a set of named
// regexes via Builder.
type Matcher struct {
	patterns []pattern
	byName   map[string]int
}

// Builder accumulates named patterns before compiling them into a Matcher.
type Builder struct {
	patterns []pattern
	seen     map[string]bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{seen: byNameInit()}
}

func byNameInit() map[string]bool { return map[string]bool{} }

// Add compiles and appends a named pattern. Declaration order is
// preserved and used as the final tiebreak when matches are equal length
// and equally "keyword".
func (b *Builder) Add(name, expr string, keyword bool) error {
	if b.seen == nil {
		b.seen = map[string]bool{}
	}
	anchored := "\\A(?:" + expr + ")"
	re, err := regexp.Compile(anchored)
	if err != nil {
		return &Error{Name: name, Pattern: expr, Err: err}
	}
	b.patterns = append(b.patterns, pattern{
		name:    name,
		keyword: keyword,
		re:      re,
		groups:  re.NumSubexp(),
	})
	return nil
}

// Build finalizes the Matcher. The Builder must not be reused afterwards.
func (b *Builder) Build() *Matcher {
	byName := make(map[string]int, len(b.patterns))
	for i, p := range b.patterns {
		byName[p.name] = i
	}
	return &Matcher{patterns: b.patterns, byName: byName}
}

// Names returns the declared pattern names in declaration order.
func (m *Matcher) Names() []string {
	out := make([]string, len(m.patterns))
	for i, p := range m.patterns {
		out[i] = p.name
	}
	return out
}

// IDOf returns the declaration-order id of name, or -1 if unknown.
func (m *Matcher) IDOf(name string) int {
	if id, ok := m.byName[name]; ok {
		return id
	}
	return -1
}

// NameOf returns the name declared for id.
func (m *Matcher) NameOf(id int) string {
	return m.patterns[id].name
}

// Match searches buf[offset:] for the longest match among the patterns
// whose id is in allowed. allowed may be nil, meaning "all patterns".
// Ties are broken first by keyword (true beats false), then by
// declaration order (earlier wins).
func (m *Matcher) Match(buf []byte, offset int, allowed []int) (Match, bool) {
	ids := allowed
	if ids == nil {
		ids = make([]int, len(m.patterns))
		for i := range m.patterns {
			ids[i] = i
		}
	}
	window := buf[offset:]
	best := -1
	bestLen := -1
	var bestLoc []int
	for _, id := range ids {
		if id < 0 || id >= len(m.patterns) {
			continue
		}
		p := m.patterns[id]
		loc := p.re.FindSubmatchIndex(window)
		if loc == nil {
			continue
		}
		length := loc[1] - loc[0]
		if !better(m, id, length, best, bestLen) {
			continue
		}
		best, bestLen, bestLoc = id, length, loc
	}
	if best < 0 {
		return Match{}, false
	}
	p := m.patterns[best]
	captures := make([]Capture, p.groups)
	for g := 1; g <= p.groups; g++ {
		lo, hi := bestLoc[2*g], bestLoc[2*g+1]
		if lo < 0 {
			continue
		}
		captures[g-1] = Capture{Start: offset + lo, End: offset + hi, Matched: true}
	}
	return Match{ID: best, Name: p.name, Length: bestLen, Captures: captures}, true
}

// better reports whether candidate (length candLen, declared at id) beats
// the current best (declared at bestID with length bestLen). bestID < 0
// means "no current best".
func better(m *Matcher, id, candLen, bestID, bestLen int) bool {
	if bestID < 0 {
		return true
	}
	if candLen != bestLen {
		return candLen > bestLen
	}
	candKeyword := m.patterns[id].keyword
	bestKeyword := m.patterns[bestID].keyword
	if candKeyword != bestKeyword {
		return candKeyword
	}
	return id < bestID
}

// sortedIDs is a small helper used by callers that build an allowed set
// from a map and want deterministic iteration order for reproducible
// diagnostics.
func sortedIDs(ids map[int]struct{}) []int {
	out := make([]int, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// SortedIDs exposes sortedIDs for callers outside the package that need
// deterministic ordering of an id set (e.g. building diagnostic messages).
func SortedIDs(ids map[int]struct{}) []int { return sortedIDs(ids) }

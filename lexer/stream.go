package lexer

import (
	"fmt"

	"github.com/alecthomas/earley/regex"
)

// Allowed is the sum type spec.md §4.2 calls `Allowed ∈ { All, Some(set of
// TerminalId) }`: either every terminal is a candidate, or only a
// specific set is (in addition to the grammar's always-on default-allowed
// set).
type Allowed struct {
	all  bool
	some map[TerminalID]bool
}

// AllTerminals returns the "every terminal is a candidate" variant.
func AllTerminals() Allowed { return Allowed{all: true} }

// SomeTerminals returns the variant restricted to ids (plus the grammar's
// default-allowed set, always unioned in by the stream).
func SomeTerminals(ids ...TerminalID) Allowed {
	some := make(map[TerminalID]bool, len(ids))
	for _, id := range ids {
		some[id] = true
	}
	return Allowed{some: some}
}

// IsAll reports whether this is the All variant.
func (a Allowed) IsAll() bool { return a.all }

// Contains reports whether id is a member of this Allowed set on its own
// (ignoring the grammar's default-allowed set, which stream scanning
// unions in separately).
func (a Allowed) Contains(id TerminalID) bool {
	if a.all {
		return true
	}
	return a.some[id]
}

func allowedEqual(a, b Allowed) bool {
	if a.all != b.all {
		return false
	}
	if a.all {
		return true
	}
	if len(a.some) != len(b.some) {
		return false
	}
	for id := range a.some {
		if !b.some[id] {
			return false
		}
	}
	return true
}

// Stream is a stateful view over a source buffer that, on demand and
// given an allowed terminal set, yields the next token or a lexical
// error. It supports peeking exactly one token ahead, per spec.md §4.2.
type Stream struct {
	grammar *Grammar
	file    string
	buf     []byte

	offset int

	hasLookahead    bool
	lookaheadAllowed Allowed
	lookaheadToken   *Token
	lookaheadErr     error
	lookaheadNext    int

	hasLast  bool
	lastSpan Span
}

// NewStream creates a Stream over buf, attributing spans to file.
func NewStream(grammar *Grammar, file string, buf []byte) *Stream {
	return &Stream{grammar: grammar, file: file, buf: buf}
}

// Grammar returns the LexerGrammar this Stream was built with.
func (s *Stream) Grammar() *Grammar { return s.grammar }

// Peek returns the next token without consuming it, or (nil, nil) at EOF,
// or a *LexingError. Calling Peek repeatedly with the same Allowed value
// without an intervening Next returns the same result without rescanning.
func (s *Stream) Peek(allowed Allowed) (*Token, error) {
	if s.hasLookahead && allowedEqual(s.lookaheadAllowed, allowed) {
		return s.lookaheadToken, s.lookaheadErr
	}
	tok, next, err := s.scan(s.offset, allowed)
	s.hasLookahead = true
	s.lookaheadAllowed = allowed
	s.lookaheadToken = tok
	s.lookaheadErr = err
	s.lookaheadNext = next
	return tok, err
}

// Next consumes and returns the next token, or (nil, nil) at EOF, or a
// *LexingError.
func (s *Stream) Next(allowed Allowed) (*Token, error) {
	tok, err := s.Peek(allowed)
	s.hasLookahead = false
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	s.offset = s.lookaheadNext
	s.lastSpan = tok.Span
	s.hasLast = true
	return tok, nil
}

// LastLocation returns the location of the last token returned by Next,
// or a synthetic EOF location (the end of the buffer) if none has been
// returned yet.
func (s *Stream) LastLocation() Span {
	if s.hasLast {
		return s.lastSpan
	}
	return Span{File: s.file, Start: len(s.buf), End: len(s.buf)}
}

// scan runs the combined matcher starting at start, skipping ignored
// terminals, per spec.md §4.2 steps 1-6. It does not mutate Stream state;
// callers commit the returned next offset themselves.
func (s *Stream) scan(start int, allowed Allowed) (*Token, int, error) {
	candidates := s.candidateIDs(allowed)
	p := start
	for {
		if p >= len(s.buf) {
			return nil, p, nil
		}
		m, ok := s.grammar.matcher.Match(s.buf, p, candidates)
		if !ok {
			return nil, p, &LexingError{
				Span_:    Span{File: s.file, Start: p, End: p + 1},
				Message_: fmt.Sprintf("no terminal matches the input at offset %d", p),
			}
		}
		id := TerminalID(m.ID)
		span := Span{File: s.file, Start: p, End: p + m.Length}
		if msg, unwanted := s.grammar.ErrorMessage(id); unwanted {
			return nil, p, &LexingError{Span_: span, Message_: msg}
		}
		if s.grammar.Ignored(id) {
			p += m.Length
			continue
		}
		attrs := make(map[int]string, len(m.Captures))
		for i, c := range m.Captures {
			if !c.Matched {
				continue
			}
			attrs[i] = c.Text(s.buf)
		}
		return &Token{ID: id, Name: s.grammar.Name(id), Span: span, Attributes: attrs}, p + m.Length, nil
	}
}

func (s *Stream) candidateIDs(allowed Allowed) []int {
	if allowed.IsAll() {
		return nil
	}
	set := make(map[int]struct{}, len(allowed.some)+len(s.grammar.defaultAllowed))
	for _, id := range s.grammar.defaultAllowed {
		set[int(id)] = struct{}{}
	}
	for id := range allowed.some {
		set[int(id)] = struct{}{}
	}
	return regex.SortedIDs(set)
}

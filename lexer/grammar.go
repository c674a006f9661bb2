package lexer

import (
	"github.com/alecthomas/earley/regex"
)

// Grammar is an ordered sequence of terminals plus the derived lookup
// tables described in spec.md §3: a combined matcher, the set of ids that
// are silently dropped by default (Ignores), a mapping of unwanted
// terminal ids to their error message (Errors), a mapping of terminal ids
// to human descriptions (Descriptions), and the "default allowed" set,
// which is exactly the ignored terminals so whitespace/comments remain
// candidates at every position regardless of what the caller asks for.
type Grammar struct {
	terminals      []Terminal
	matcher        *regex.Matcher
	ignores        map[TerminalID]bool
	errors         map[TerminalID]string
	descriptions   map[TerminalID]string
	defaultAllowed []TerminalID
	nameToID       map[string]TerminalID
}

// NewGrammar builds a Grammar from an ordered terminal list, per spec.md
// §4.2. Duplicate terminal names fail with a *DuplicateDefinitionError; an
// unwanted terminal with no error message fails with
// *UnwantedNoMessageError.
func NewGrammar(terminals []Terminal) (*Grammar, error) {
	b := regex.NewBuilder()
	ignores := map[TerminalID]bool{}
	errs := map[TerminalID]string{}
	descs := map[TerminalID]string{}
	nameToID := make(map[string]TerminalID, len(terminals))
	firstSpan := map[string]Span{}

	for i, t := range terminals {
		id := TerminalID(i)
		if old, dup := firstSpan[t.Name]; dup {
			return nil, &DuplicateDefinitionError{Name: t.Name, Span: t.Span, OldSpan: old}
		}
		firstSpan[t.Name] = t.Span
		nameToID[t.Name] = id

		if t.Ignore {
			ignores[id] = true
		}
		if t.Unwanted {
			if t.Error == "" {
				return nil, &UnwantedNoMessageError{Name: t.Name, Span: t.Span}
			}
			errs[id] = t.Error
		}
		if t.Description != "" {
			descs[id] = t.Description
		}
		if err := b.Add(t.Name, t.Pattern, t.Keyword); err != nil {
			return nil, &RegexError{Message_: err.Error(), Span: t.Span}
		}
	}

	var defaultAllowed []TerminalID
	for id := range ignores {
		defaultAllowed = append(defaultAllowed, id)
	}

	return &Grammar{
		terminals:      terminals,
		matcher:        b.Build(),
		ignores:        ignores,
		errors:         errs,
		descriptions:   descs,
		defaultAllowed: defaultAllowed,
		nameToID:       nameToID,
	}, nil
}

// Len returns the number of declared terminals.
func (g *Grammar) Len() int { return len(g.terminals) }

// Name returns the declared name of id.
func (g *Grammar) Name(id TerminalID) string { return g.terminals[id].Name }

// ID looks up a terminal by name.
func (g *Grammar) ID(name string) (TerminalID, bool) {
	id, ok := g.nameToID[name]
	return id, ok
}

// Ignored reports whether id is silently dropped by the lexed stream.
func (g *Grammar) Ignored(id TerminalID) bool { return g.ignores[id] }

// Unwanted reports whether id always produces a lexing error.
func (g *Grammar) Unwanted(id TerminalID) bool {
	_, ok := g.errors[id]
	return ok
}

// ErrorMessage returns the stored message for an unwanted terminal.
func (g *Grammar) ErrorMessage(id TerminalID) (string, bool) {
	m, ok := g.errors[id]
	return m, ok
}

// Description returns the human-readable description of id, if any.
func (g *Grammar) Description(id TerminalID) (string, bool) {
	d, ok := g.descriptions[id]
	return d, ok
}

// DefaultAllowed returns the ids that are always candidates regardless of
// the caller-supplied allowed set — exactly the ignored terminals.
func (g *Grammar) DefaultAllowed() []TerminalID {
	out := make([]TerminalID, len(g.defaultAllowed))
	copy(out, g.defaultAllowed)
	return out
}

// Matcher exposes the combined regex matcher for this grammar.
func (g *Grammar) Matcher() *regex.Matcher { return g.matcher }

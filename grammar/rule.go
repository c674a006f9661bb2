package grammar

import "github.com/alecthomas/earley/lexer"

// Rule is one production `LHS ::= elements` plus the proxy recipe used to
// build the attribute map for nodes derived from it, per spec.md §3.
type Rule struct {
	LHS             NonTerminalID
	Elements        []RuleElement
	Proxy           []ProxyEntry
	LeftAssociative bool

	// Span locates the rule's declaration, for error messages. The
	// parser-grammar source format that would populate this is out of
	// scope here (spec.md §6); it is carried so a future grammar-source
	// front end has somewhere to put it.
	Span lexer.Span
}

// Arity returns the number of RHS elements.
func (r Rule) Arity() int { return len(r.Elements) }

// nullableGiven reports whether every element of r is itself a non-terminal
// present in nullables — i.e. whether r on its own witnesses its LHS
// being nullable.
func (r Rule) nullableGiven(nullables map[NonTerminalID]bool) bool {
	for _, e := range r.Elements {
		if e.Kind != ElementNonTerminal {
			return false
		}
		if !nullables[e.NonTerminal] {
			return false
		}
	}
	return true
}

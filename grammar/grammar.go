package grammar

import "github.com/alecthomas/earley/lexer"

// Grammar is an ordered set of rules over a dense non-terminal id space,
// plus the derived lookup tables described in spec.md §3.
type Grammar struct {
	rules     []Rule
	axioms    map[NonTerminalID]bool
	idOf      map[string]NonTerminalID
	nameOf    []string
	rulesOf   [][]RuleID
	nullables map[NonTerminalID]bool
}

// Rule returns the rule identified by id.
func (g *Grammar) Rule(id RuleID) Rule { return g.rules[id] }

// NumRules returns the number of declared rules.
func (g *Grammar) NumRules() int { return len(g.rules) }

// RulesOf returns the ids of every rule whose LHS is id, in declaration
// order.
func (g *Grammar) RulesOf(id NonTerminalID) []RuleID { return g.rulesOf[id] }

// Axioms returns the set of axiom non-terminal ids.
func (g *Grammar) Axioms() map[NonTerminalID]bool { return g.axioms }

// IsAxiom reports whether id is an axiom non-terminal.
func (g *Grammar) IsAxiom(id NonTerminalID) bool { return g.axioms[id] }

// Nullable reports whether id is in the nullables least fixed point.
func (g *Grammar) Nullable(id NonTerminalID) bool { return g.nullables[id] }

// NameOf returns the declared name of a non-terminal.
func (g *Grammar) NameOf(id NonTerminalID) string { return g.nameOf[id] }

// IDOf looks up a non-terminal by name.
func (g *Grammar) IDOf(name string) (NonTerminalID, bool) {
	id, ok := g.idOf[name]
	return id, ok
}

// Builder accumulates non-terminal declarations and rules before
// resolving them into a Grammar. It is the Go shape of the abstract
// grammar interface described in spec.md §6: a grammar-source front end
// (out of scope here) would call AddNonTerminal/AddRule from whatever it
// parses.
type Builder struct {
	names     []string
	spans     []lexer.Span
	idOf      map[string]NonTerminalID
	axioms    map[NonTerminalID]bool
	rules     []Rule
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{idOf: map[string]NonTerminalID{}, axioms: map[NonTerminalID]bool{}}
}

// AddNonTerminal declares a non-terminal, returning its dense id. A
// second declaration of the same name fails with
// *lexer.DuplicateDefinitionError.
func (b *Builder) AddNonTerminal(name string, axiom bool, span lexer.Span) (NonTerminalID, error) {
	if old, dup := b.idOf[name]; dup {
		return 0, &lexer.DuplicateDefinitionError{Name: name, Span: span, OldSpan: b.spans[old]}
	}
	id := NonTerminalID(len(b.names))
	b.idOf[name] = id
	b.names = append(b.names, name)
	b.spans = append(b.spans, span)
	if axiom {
		b.axioms[id] = true
	}
	return id, nil
}

// AddRule appends a rule, returning its dense id. The rule's LHS must
// already have been declared via AddNonTerminal.
func (b *Builder) AddRule(rule Rule) RuleID {
	id := RuleID(len(b.rules))
	b.rules = append(b.rules, rule)
	return id
}

// Build resolves the accumulated declarations into a Grammar, computing
// rules_of and the nullability least fixed point.
//
// The fixed point is a worklist algorithm ported from the reference
// recognizer: seed the worklist with every non-terminal that has a rule
// with an empty RHS, then repeatedly pop a newly-nullable non-terminal
// and re-check every rule that mentions it in its RHS (via an is_in
// reverse index); if all of that rule's elements are now nullable
// non-terminals, its LHS becomes nullable too and joins the worklist.
func (b *Builder) Build() (*Grammar, error) {
	if err := b.checkProxies(); err != nil {
		return nil, err
	}

	n := len(b.names)
	rulesOf := make([][]RuleID, n)
	isIn := make([][]RuleID, n)
	nullables := make(map[NonTerminalID]bool, n)
	var stack []NonTerminalID

	for i, rule := range b.rules {
		id := RuleID(i)
		rulesOf[rule.LHS] = append(rulesOf[rule.LHS], id)
		if len(rule.Elements) == 0 {
			if !nullables[rule.LHS] {
				nullables[rule.LHS] = true
				stack = append(stack, rule.LHS)
			}
		}
		for _, e := range rule.Elements {
			if e.Kind == ElementNonTerminal {
				isIn[e.NonTerminal] = append(isIn[e.NonTerminal], id)
			}
		}
	}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, ruleID := range isIn[current] {
			rule := b.rules[ruleID]
			if nullables[rule.LHS] {
				continue
			}
			if rule.nullableGiven(nullables) {
				nullables[rule.LHS] = true
				stack = append(stack, rule.LHS)
			}
		}
	}

	names := make([]string, n)
	copy(names, b.names)
	idOf := make(map[string]NonTerminalID, n)
	for k, v := range b.idOf {
		idOf[k] = v
	}
	axioms := make(map[NonTerminalID]bool, len(b.axioms))
	for k, v := range b.axioms {
		axioms[k] = v
	}
	rules := make([]Rule, len(b.rules))
	copy(rules, b.rules)

	return &Grammar{
		rules:     rules,
		axioms:    axioms,
		idOf:      idOf,
		nameOf:    names,
		rulesOf:   rulesOf,
		nullables: nullables,
	}, nil
}

package earley_test

import (
	"testing"

	"github.com/alecthomas/earley/grammar"
	"github.com/alecthomas/earley/lexer"
)

// buildArithmeticGrammar constructs the lexer/parser grammar pair from
// spec.md §8 scenario 5: single-digit numbers, left-associative `*`/`/`
// binding tighter than right-associative `+`/`-`, with parenthesization.
func buildArithmeticGrammar(t *testing.T) (*lexer.Grammar, *grammar.Grammar) {
	t.Helper()

	lg, err := lexer.NewGrammar([]lexer.Terminal{
		{Name: "NUMBER", Pattern: "([0-9])"},
		{Name: "PM", Pattern: "[-+]"},
		{Name: "TD", Pattern: "[*/]"},
		{Name: "LPAR", Pattern: `\(`},
		{Name: "RPAR", Pattern: `\)`},
	})
	if err != nil {
		t.Fatalf("building lexer grammar: %v", err)
	}
	number, _ := lg.ID("NUMBER")
	pm, _ := lg.ID("PM")
	td, _ := lg.ID("TD")
	lpar, _ := lg.ID("LPAR")
	rpar, _ := lg.ID("RPAR")

	b := grammar.NewBuilder()
	expr, err := b.AddNonTerminal("Expr", true, lexer.Span{})
	if err != nil {
		t.Fatalf("declaring Expr: %v", err)
	}

	variant := func(name string) []grammar.ProxyEntry {
		return []grammar.ProxyEntry{
			{Key: "variant", Value: grammar.ProxyValue{Kind: grammar.ProxyLiteral, Literal: name}},
		}
	}

	// 0: Expr -> NUMBER.0@value <Literal>
	b.AddRule(grammar.Rule{
		LHS: expr,
		Elements: []grammar.RuleElement{
			{Kind: grammar.ElementTerminal, Terminal: number, Attribute: grammar.Indexed(0), Key: "value"},
		},
		Proxy: variant("Literal"),
	})
	// 1: (left-assoc) Expr@left TD Expr@right <MulDiv>
	b.AddRule(grammar.Rule{
		LHS: expr,
		Elements: []grammar.RuleElement{
			{Kind: grammar.ElementNonTerminal, NonTerminal: expr, Key: "left"},
			{Kind: grammar.ElementTerminal, Terminal: td},
			{Kind: grammar.ElementNonTerminal, NonTerminal: expr, Key: "right"},
		},
		Proxy:           variant("MulDiv"),
		LeftAssociative: true,
	})
	// 2: (right-assoc) Expr@left PM Expr@right <AddSub>
	b.AddRule(grammar.Rule{
		LHS: expr,
		Elements: []grammar.RuleElement{
			{Kind: grammar.ElementNonTerminal, NonTerminal: expr, Key: "left"},
			{Kind: grammar.ElementTerminal, Terminal: pm},
			{Kind: grammar.ElementNonTerminal, NonTerminal: expr, Key: "right"},
		},
		Proxy:           variant("AddSub"),
		LeftAssociative: false,
	})
	// 3: LPAR Expr@value RPAR <Through>
	b.AddRule(grammar.Rule{
		LHS: expr,
		Elements: []grammar.RuleElement{
			{Kind: grammar.ElementTerminal, Terminal: lpar},
			{Kind: grammar.ElementNonTerminal, NonTerminal: expr, Key: "value"},
			{Kind: grammar.ElementTerminal, Terminal: rpar},
		},
		Proxy: variant("Through"),
	})

	g, err := b.Build()
	if err != nil {
		t.Fatalf("building parser grammar: %v", err)
	}
	return lg, g
}

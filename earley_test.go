package earley_test

import (
	"testing"

	"github.com/alecthomas/earley"
	"github.com/alecthomas/earley/grammar"
	"github.com/alecthomas/earley/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1 (spec.md §8): empty grammar, empty input.
func TestEmptyGrammarEmptyInputFailsToParse(t *testing.T) {
	lg, err := lexer.NewGrammar(nil)
	require.NoError(t, err)

	s := lexer.NewStream(lg, "<input>", nil)
	tok, err := s.Next(lexer.AllTerminals())
	require.NoError(t, err)
	assert.Nil(t, tok)

	b := grammar.NewBuilder()
	// A non-axiom non-terminal with no rule pointing at it: the grammar
	// has no axiom, so nothing can ever be accepted.
	b.AddNonTerminal("Unreachable", false, lexer.Span{})
	pg, err := b.Build()
	require.NoError(t, err)

	p, err := earley.NewParser(lg, pg)
	require.NoError(t, err)

	_, err = p.ParseBytes("<input>", nil)
	require.Error(t, err)
	var serr *earley.SyntaxError
	require.ErrorAs(t, err, &serr)
}

// Scenario 6 (spec.md §8): prefix-only input fails with SyntaxError.
func TestPrefixOnlyInputFailsToParse(t *testing.T) {
	lg, pg := buildArithmeticGrammar(t)
	p, err := earley.NewParser(lg, pg)
	require.NoError(t, err)

	_, err = p.ParseString("<input>", "1+2+")
	require.Error(t, err)
	var serr *earley.SyntaxError
	require.ErrorAs(t, err, &serr)
}

// Scenario 5 (spec.md §8): arithmetic precedence/associativity, driven
// through the top-level Parser facade rather than the internal package
// directly.
func TestParserResolvesArithmeticPrecedenceAndAssociativity(t *testing.T) {
	lg, pg := buildArithmeticGrammar(t)
	p, err := earley.NewParser(lg, pg)
	require.NoError(t, err)

	ast, err := p.ParseString("<input>", "1+2+3*4*5+6+7*8")
	require.NoError(t, err)

	require.Equal(t, earley.ASTNode, ast.Kind)
	assert.Equal(t, "AddSub", variantOf(t, ast))
	assert.Equal(t, "1", literalValue(t, ast.Attributes["left"]))
}

func variantOf(t *testing.T, n earley.AST) string {
	t.Helper()
	require.Equal(t, earley.ASTNode, n.Kind)
	v := n.Attributes["variant"]
	require.Equal(t, earley.ASTLiteral, v.Kind)
	return v.Literal.(string)
}

func literalValue(t *testing.T, n earley.AST) string {
	t.Helper()
	require.Equal(t, "Literal", variantOf(t, n))
	v := n.Attributes["value"]
	require.Equal(t, earley.ASTLiteral, v.Kind)
	return v.Literal.(string)
}

// buildArithmeticGrammar constructs scenario 5's grammar directly via
// the grammar.Builder API, mirroring internal/earley's test fixture
// (grammar-source-file parsing is a collaborator, out of scope here).
func buildArithmeticGrammar(t *testing.T) (*lexer.Grammar, *grammar.Grammar) {
	t.Helper()

	lg, err := lexer.NewGrammar([]lexer.Terminal{
		{Name: "NUMBER", Pattern: "([0-9])"},
		{Name: "PM", Pattern: "[-+]"},
		{Name: "TD", Pattern: "[*/]"},
		{Name: "LPAR", Pattern: `\(`},
		{Name: "RPAR", Pattern: `\)`},
	})
	require.NoError(t, err)

	numberID, ok := lg.ID("NUMBER")
	require.True(t, ok)
	pmID, ok := lg.ID("PM")
	require.True(t, ok)
	tdID, ok := lg.ID("TD")
	require.True(t, ok)
	lparID, ok := lg.ID("LPAR")
	require.True(t, ok)
	rparID, ok := lg.ID("RPAR")
	require.True(t, ok)

	b := grammar.NewBuilder()
	expr, err := b.AddNonTerminal("Expr", true, lexer.Span{})
	require.NoError(t, err)

	variant := func(name string) []grammar.ProxyEntry {
		return []grammar.ProxyEntry{
			{Key: "variant", Value: grammar.ProxyValue{Kind: grammar.ProxyLiteral, Literal: name}},
		}
	}

	b.AddRule(grammar.Rule{
		LHS: expr,
		Elements: []grammar.RuleElement{
			{Kind: grammar.ElementTerminal, Terminal: numberID, Attribute: grammar.Indexed(0), Key: "value"},
		},
		Proxy: variant("Literal"),
	})
	b.AddRule(grammar.Rule{
		LHS: expr,
		Elements: []grammar.RuleElement{
			{Kind: grammar.ElementNonTerminal, NonTerminal: expr, Key: "left"},
			{Kind: grammar.ElementTerminal, Terminal: tdID},
			{Kind: grammar.ElementNonTerminal, NonTerminal: expr, Key: "right"},
		},
		Proxy:           variant("MulDiv"),
		LeftAssociative: true,
	})
	b.AddRule(grammar.Rule{
		LHS: expr,
		Elements: []grammar.RuleElement{
			{Kind: grammar.ElementNonTerminal, NonTerminal: expr, Key: "left"},
			{Kind: grammar.ElementTerminal, Terminal: pmID},
			{Kind: grammar.ElementNonTerminal, NonTerminal: expr, Key: "right"},
		},
		Proxy: variant("AddSub"),
	})
	b.AddRule(grammar.Rule{
		LHS: expr,
		Elements: []grammar.RuleElement{
			{Kind: grammar.ElementTerminal, Terminal: lparID},
			{Kind: grammar.ElementNonTerminal, NonTerminal: expr, Key: "value"},
			{Kind: grammar.ElementTerminal, Terminal: rparID},
		},
		Proxy: variant("Through"),
	})

	pg, err := b.Build()
	require.NoError(t, err)
	return lg, pg
}

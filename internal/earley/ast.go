package earley

import (
	"github.com/alecthomas/earley/grammar"
	"github.com/alecthomas/earley/lexer"
	"go.uber.org/zap"
)

// ASTKind tags an AST node's variant.
type ASTKind int

const (
	ASTNode ASTKind = iota
	ASTTerminal
	ASTLiteral
)

// AST is the closed tagged union `{Node, Terminal, Literal}` from
// spec.md §3.
type AST struct {
	Kind        ASTKind
	NonTerminal grammar.NonTerminalID
	Attributes  map[string]AST
	Span        lexer.Span
	Token       lexer.Token
	Literal     interface{}
}

// spanOf computes the span covered by a Rule syntaxItem. A nullable rule
// (or a nullable axiom accepted on empty input, spec.md §8 scenario 4)
// can have item.start == item.end, consuming no tokens at all, so this
// never indexes rawInput unconditionally: it synthesizes a zero-width
// span at the boundary instead, falling back to the zero Span when
// rawInput itself is empty.
func spanOf(item syntaxItem, rawInput []lexer.Token) lexer.Span {
	if item.start < item.end {
		return rawInput[item.start].Span.Join(rawInput[item.end-1].Span)
	}
	if item.start < len(rawInput) {
		s := rawInput[item.start].Span
		return lexer.Span{File: s.File, Start: s.Start, End: s.Start}
	}
	if len(rawInput) > 0 {
		s := rawInput[len(rawInput)-1].Span
		return lexer.Span{File: s.File, Start: s.End, End: s.End}
	}
	return lexer.Span{}
}

// buildAST recursively turns a selected syntaxItem into an AST, running
// the attribute evaluator of spec.md §4.6.
func buildAST(item syntaxItem, forest Forest, rawInput []lexer.Token, g *grammar.Grammar, logger *zap.Logger) AST {
	if item.kind == itemKindToken {
		return AST{Kind: ASTTerminal, Token: item.token, Span: item.token.Span}
	}

	rule := g.Rule(item.rule)
	span := spanOf(item, rawInput)
	children := findChildren(item, forest, rawInput, g, logger)

	allAttributes := make(map[string]AST, len(rule.Elements))
	for i, child := range children {
		elem := rule.Elements[i]
		if elem.Key == "" {
			continue
		}
		childAST := buildAST(child, forest, rawInput, g, logger)
		switch elem.Attribute.Kind {
		case grammar.AttributeNamed:
			allAttributes[elem.Key] = childAST.Attributes[elem.Attribute.Name]
		case grammar.AttributeIndexed:
			text, _ := childAST.Token.Attribute(elem.Attribute.Index)
			allAttributes[elem.Key] = AST{Kind: ASTLiteral, Literal: text, Span: childAST.Token.Span}
		default:
			allAttributes[elem.Key] = childAST
		}
	}

	removed := map[string]bool{}
	attributes := make(map[string]AST, len(rule.Proxy)+len(allAttributes))
	for _, entry := range rule.Proxy {
		attributes[entry.Key] = evaluateProxy(entry.Value, allAttributes, removed, span)
	}
	for key, val := range allAttributes {
		if !removed[key] {
			attributes[key] = val
		}
	}

	return AST{Kind: ASTNode, NonTerminal: rule.LHS, Attributes: attributes, Span: span}
}

// evaluateProxy computes a single ProxyValue against allAttributes,
// marking consumed attribute references in removed, per spec.md §4.6
// step 3.
func evaluateProxy(pv grammar.ProxyValue, allAttributes map[string]AST, removed map[string]bool, span lexer.Span) AST {
	switch pv.Kind {
	case grammar.ProxyReference:
		removed[pv.Reference] = true
		return allAttributes[pv.Reference]
	case grammar.ProxyNode:
		attrs := make(map[string]AST, len(pv.NodeProxy))
		for _, entry := range pv.NodeProxy {
			attrs[entry.Key] = evaluateProxy(entry.Value, allAttributes, removed, span)
		}
		return AST{Kind: ASTNode, NonTerminal: pv.Node, Attributes: attrs, Span: span}
	default: // grammar.ProxyLiteral
		return AST{Kind: ASTLiteral, Literal: pv.Literal, Span: span}
	}
}

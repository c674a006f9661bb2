// Package grammar describes the parser grammar: non-terminals, rules, and
// the per-rule attribute-construction recipe ("proxy") that the attribute
// evaluator runs once a derivation tree has been selected.
package grammar

import "github.com/alecthomas/earley/lexer"

// NonTerminalID is a dense integer identifier for a non-terminal within a
// single Grammar.
type NonTerminalID int

// RuleID is a dense integer identifier for a rule within a single Grammar.
// Declaration order doubles as precedence: §4.5's tree selector breaks
// ambiguity ties by picking the largest RuleID as the outer node, so
// earlier-declared rules for the same non-terminal bind tighter.
type RuleID int

// ElementKind distinguishes a RuleElement that matches a terminal token
// from one that matches a non-terminal's derivation.
type ElementKind int

const (
	ElementTerminal ElementKind = iota
	ElementNonTerminal
)

// AttributeKind tags how a RuleElement's value is captured into the
// attribute map built for its rule.
type AttributeKind int

const (
	// AttributeNone stores the child AST directly, unnamed.
	AttributeNone AttributeKind = iota
	// AttributeNamed stores child.attributes[Name] (child must be a Node).
	AttributeNamed
	// AttributeIndexed stores Literal(token.Attributes[Index]) (child must
	// be a Terminal).
	AttributeIndexed
)

// Attribute is the closed tagged union `{None, Named(name), Indexed(index)}`
// from spec.md §3. It describes how to extract a value out of the AST
// already built for this element's child: None takes the child AST
// as-is, Named(name) reads one of the child Node's own attributes, and
// Indexed(i) reads one of the child Terminal token's positional captures.
type Attribute struct {
	Kind  AttributeKind
	Name  string
	Index int
}

// None reports the no-attribute variant.
func None() Attribute { return Attribute{Kind: AttributeNone} }

// NamedAttr reports the Named(name) variant: extract child.Attributes[name].
func NamedAttr(name string) Attribute { return Attribute{Kind: AttributeNamed, Name: name} }

// Indexed reports the Indexed(index) variant: extract the child token's
// capture at the given positional index.
func Indexed(index int) Attribute { return Attribute{Kind: AttributeIndexed, Index: index} }

// ProxyValueKind tags a ProxyValue's variant.
type ProxyValueKind int

const (
	// ProxyLiteral evaluates to itself: Literal holds one of string/int/
	// float64/bool.
	ProxyLiteral ProxyValueKind = iota
	// ProxyReference reads an already-produced attribute by key and marks
	// it consumed.
	ProxyReference
	// ProxyNode constructs a nested node: a non-terminal id plus its own
	// proxy recipe, evaluated against the same attribute map.
	ProxyNode
)

// ProxyValue is the closed tagged union described in spec.md §3's Rule
// entry: "a literal ..., a reference to an attribute already produced by
// the elements, or a nested node-constructor (non-terminal id + proxy)."
type ProxyValue struct {
	Kind       ProxyValueKind
	Literal    interface{}
	Reference  string
	Node       NonTerminalID
	NodeProxy  []ProxyEntry
}

// ProxyEntry is one `(key, ProxyValue)` pair in a rule's proxy list, or a
// nested node's own proxy list.
type ProxyEntry struct {
	Key   string
	Value ProxyValue
}

// RuleElement is one position in a rule's right-hand side. Key is the
// optional name under which this element's extracted value is stored in
// the parent's attribute map during evaluation (spec.md §4.6 "elements
// with a key"); an element with an empty Key does not participate in
// all_attributes at all.
type RuleElement struct {
	Kind        ElementKind
	Terminal    lexer.TerminalID
	NonTerminal NonTerminalID
	Attribute   Attribute
	Key         string
}

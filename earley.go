package earley

import (
	"github.com/alecthomas/earley/grammar"
	internal "github.com/alecthomas/earley/internal/earley"
	"github.com/alecthomas/earley/lexer"
	"github.com/alecthomas/repr"
	"go.uber.org/zap"
)

// ASTKind tags an AST node's variant: Node (a rule expansion with
// evaluated attributes), Terminal (a single consumed token) or Literal
// (a proxy-computed scalar), per spec.md §3.
type ASTKind = internal.ASTKind

const (
	ASTNode     = internal.ASTNode
	ASTTerminal = internal.ASTTerminal
	ASTLiteral  = internal.ASTLiteral
)

// AST is the attribute-evaluated result of parsing: a closed tagged
// union of {Node, Terminal, Literal} (spec.md §3, §4.6).
type AST = internal.AST

// Parser combines a lexer Grammar and a parser Grammar into a single
// entry point running the full source-bytes -> tokens -> chart ->
// forest -> selected tree pipeline (spec.md's data flow, §1 and §4).
type Parser struct {
	lexerGrammar  *lexer.Grammar
	parserGrammar *grammar.Grammar
	trace         *zap.Logger
}

// NewParser builds a Parser from a compiled lexer grammar and parser
// grammar, applying any options. Grammar-source-file parsing is out of
// scope here (spec.md §1, §6): callers build both grammars directly,
// e.g. via lexer.NewGrammar and grammar.NewBuilder.
func NewParser(lexerGrammar *lexer.Grammar, parserGrammar *grammar.Grammar, options ...Option) (*Parser, error) {
	p := &Parser{lexerGrammar: lexerGrammar, parserGrammar: parserGrammar}
	for _, opt := range options {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ParseBytes runs the lexer and recognizer over buf (attributing spans
// to file) and returns the selected, attribute-evaluated AST.
func (p *Parser) ParseBytes(file string, buf []byte) (AST, error) {
	return p.Parse(lexer.NewStream(p.lexerGrammar, file, buf))
}

// ParseString is a convenience wrapper around ParseBytes.
func (p *Parser) ParseString(file string, src string) (AST, error) {
	return p.ParseBytes(file, []byte(src))
}

// Parse runs the recognizer and tree selector over an already-built
// Stream, per spec.md §4.3-§4.6: Recognise produces a chart and the
// token vector actually consumed, BuildForest turns the chart into a
// shared-packed parse forest, and SelectTree deterministically resolves
// any ambiguity and evaluates each rule's attribute recipe into the
// returned AST.
func (p *Parser) Parse(stream *lexer.Stream) (AST, error) {
	chart, rawInput, err := internal.Recognise(stream, p.parserGrammar, p.trace)
	if err != nil {
		return AST{}, err
	}
	forest, err := internal.BuildForest(chart, rawInput, p.parserGrammar)
	if err != nil {
		return AST{}, err
	}
	return internal.SelectTree(forest, rawInput, p.parserGrammar, p.trace), nil
}

// Dump pretty-prints an AST for debugging, the same role repr.Println
// plays in the teacher's examples.
func Dump(ast AST) string {
	return repr.String(ast, repr.Indent("  "))
}

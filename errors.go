// Package earley provides a two-stage language front end: a
// regex-driven, context-sensitive lexer (see the lexer and regex
// sub-packages) feeding a general Earley recognizer that builds a
// shared-packed parse forest, resolves ambiguity deterministically, and
// evaluates per-rule attribute recipes into a structured AST.
package earley

import "github.com/alecthomas/earley/lexer"

// The error kinds below re-export the lexer package's structured errors
// under the top-level package name, so callers driving the facade in
// this file don't need to import the lexer package just to type-assert
// on an error kind (spec.md §7).
type (
	// Error is implemented by every error kind this package produces.
	Error = lexer.Error
	// RegexError reports a malformed pattern during lexer-grammar compile.
	RegexError = lexer.RegexError
	// UnwantedNoMessageError reports an unwanted terminal with no error message.
	UnwantedNoMessageError = lexer.UnwantedNoMessageError
	// DuplicateDefinitionError reports two declarations sharing a name.
	DuplicateDefinitionError = lexer.DuplicateDefinitionError
	// LexingError reports a lexical failure at a source position.
	LexingError = lexer.LexingError
	// SyntaxError reports a parse failure: an empty chart position, a
	// disallowed token, or premature EOF.
	SyntaxError = lexer.SyntaxError
	// SerializationError reports a failed grammar deserialization.
	SerializationError = lexer.SerializationError
	// IoError wraps a collaborator I/O failure.
	IoError = lexer.IoError
)

// WarningSet pairs a value with an accumulated list of non-fatal
// warnings (spec.md §7). This module's Go version predates generic type
// aliases, so callers needing the type reach for lexer.WarningSet[T]
// directly rather than an alias through this package.

package lexer

import "fmt"

// Error is implemented by every error kind produced by this module. It
// mirrors participle's Error interface (an error that also exposes an
// unadorned message and its source location) rather than relying on
// untyped fmt.Errorf strings, so callers composing pipelines can recover
// structured information.
type Error interface {
	error
	Message() string
	Location() Span
}

// RegexError reports a malformed pattern during lexer-grammar compile.
//
// The field is named Message_ to avoid colliding with the Message()
// method required by the Error interface.
type RegexError struct {
	Message_ string
	Span     Span
}

func (e *RegexError) Error() string   { return fmt.Sprintf("%s: %s", e.Span, e.Message_) }
func (e *RegexError) Message() string { return e.Message_ }
func (e *RegexError) Location() Span  { return e.Span }

// UnwantedNoMessageError reports an unwanted terminal with no error
// message attached (spec.md §7 LexerGrammarUnwantedNoDescription).
type UnwantedNoMessageError struct {
	Name string
	Span Span
}

func (e *UnwantedNoMessageError) Error() string {
	return fmt.Sprintf("%s: unwanted terminal %q has no error message", e.Span, e.Name)
}
func (e *UnwantedNoMessageError) Message() string { return fmt.Sprintf("unwanted terminal %q has no error message", e.Name) }
func (e *UnwantedNoMessageError) Location() Span  { return e.Span }

// DuplicateDefinitionError reports two declarations (terminal or
// non-terminal) sharing the same name (spec.md §7 GrammarDuplicateDefinition).
type DuplicateDefinitionError struct {
	Name    string
	Span    Span
	OldSpan Span
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("%s: duplicate definition of %q (first declared at %s)", e.Span, e.Name, e.OldSpan)
}
func (e *DuplicateDefinitionError) Message() string {
	return fmt.Sprintf("duplicate definition of %q (first declared at %s)", e.Name, e.OldSpan)
}
func (e *DuplicateDefinitionError) Location() Span { return e.Span }

// LexingError reports that no terminal matched at a given offset, or that
// an unwanted terminal matched.
type LexingError struct {
	Span_    Span
	Message_ string
}

func (e *LexingError) Error() string   { return fmt.Sprintf("%s: %s", e.Span_, e.Message_) }
func (e *LexingError) Message() string { return e.Message_ }
func (e *LexingError) Location() Span  { return e.Span_ }

// SyntaxError reports an empty chart position, a disallowed token, or
// premature EOF during recognition.
type SyntaxError struct {
	Span_    Span
	Message_ string
}

func (e *SyntaxError) Error() string   { return fmt.Sprintf("%s: %s", e.Span_, e.Message_) }
func (e *SyntaxError) Message() string { return e.Message_ }
func (e *SyntaxError) Location() Span  { return e.Span_ }

// SerializationError reports a failed deserialization of a compiled
// grammar. Declared for API completeness (spec.md §6, §7); this module
// never constructs one, since on-disk serialization is out of scope here.
type SerializationError struct {
	Message_ string
}

func (e *SerializationError) Error() string   { return e.Message_ }
func (e *SerializationError) Message() string { return e.Message_ }
func (e *SerializationError) Location() Span  { return Span{} }

// IoError wraps a collaborator I/O failure. Declared for API completeness;
// never constructed here, since file I/O is out of scope (spec.md §1, §6).
type IoError struct {
	Err error
}

func (e *IoError) Error() string   { return e.Err.Error() }
func (e *IoError) Message() string { return e.Err.Error() }
func (e *IoError) Location() Span  { return Span{} }
func (e *IoError) Unwrap() error   { return e.Err }

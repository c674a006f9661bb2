package lexer

// TerminalID is a dense integer identifier for a Terminal within a single
// LexerGrammar.
type TerminalID int

// Terminal is a single named lexical class: a name (unique within its
// grammar), a regex pattern, the ignore/unwanted/keyword flags, and the
// optional error message / description carried alongside it.
//
// An unwanted Terminal must carry an error message — this is checked by
// the LexerGrammar builder, not here, since Terminal itself is just a
// plain data carrier (participle's equivalent, lexer/regex.reRule, is
// likewise a dumb struct validated by its builder).
type Terminal struct {
	Name        string
	Pattern     string
	Ignore      bool
	Unwanted    bool
	Keyword     bool
	Error       string
	Description string
	Span        Span
}

package lexer_test

import (
	"testing"

	"github.com/alecthomas/earley/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 2 (spec.md §8): single-terminal lex.
func TestSingleTerminalLex(t *testing.T) {
	g, err := lexer.NewGrammar([]lexer.Terminal{{Name: "A", Pattern: "wot!"}})
	require.NoError(t, err)

	s := lexer.NewStream(g, "<input>", []byte("wot!"))
	tok, err := s.Next(lexer.AllTerminals())
	require.NoError(t, err)
	require.NotNil(t, tok)
	assert.Equal(t, "A", tok.Name)
	assert.Equal(t, 0, tok.Span.Start)
	assert.Equal(t, 4, tok.Span.End)

	tok, err = s.Next(lexer.AllTerminals())
	require.NoError(t, err)
	assert.Nil(t, tok)
}

func TestTrailingSpacesAreCapturedByThePattern(t *testing.T) {
	g, err := lexer.NewGrammar([]lexer.Terminal{{Name: "B", Pattern: "wot!  "}})
	require.NoError(t, err)

	s := lexer.NewStream(g, "<input>", []byte("wot!  "))
	tok, err := s.Next(lexer.AllTerminals())
	require.NoError(t, err)
	require.NotNil(t, tok)
	assert.Equal(t, 0, tok.Span.Start)
	assert.Equal(t, 6, tok.Span.End)
}

// Scenario 3 (spec.md §8): ignored vs unwanted.
func TestIgnoredCommentProducesNoToken(t *testing.T) {
	g, err := lexer.NewGrammar([]lexer.Terminal{
		{Name: "COMMENT", Pattern: `/\*([^*]|\*[^/])*\*/`, Ignore: true},
	})
	require.NoError(t, err)

	s := lexer.NewStream(g, "<input>", []byte("/*hi*/"))
	tok, err := s.Next(lexer.AllTerminals())
	require.NoError(t, err)
	assert.Nil(t, tok)
}

func TestUnwantedUnclosedCommentReportsStoredMessage(t *testing.T) {
	g, err := lexer.NewGrammar([]lexer.Terminal{
		{Name: "COMMENT", Pattern: `/\*([^*]|\*[^/])*\*/`, Ignore: true},
		{Name: "ECOMMENT", Pattern: `/\*([^*]|\*[^/])*`, Unwanted: true, Error: "unclosed comment"},
	})
	require.NoError(t, err)

	s := lexer.NewStream(g, "<input>", []byte("/*hi"))
	_, err = s.Next(lexer.AllTerminals())
	require.Error(t, err)
	var lerr *lexer.LexingError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "unclosed comment", lerr.Message())
}

func TestPeekDoesNotConsume(t *testing.T) {
	g, err := lexer.NewGrammar([]lexer.Terminal{{Name: "A", Pattern: "a"}})
	require.NoError(t, err)
	s := lexer.NewStream(g, "<input>", []byte("a"))

	peeked, err := s.Peek(lexer.AllTerminals())
	require.NoError(t, err)
	require.NotNil(t, peeked)

	next, err := s.Next(lexer.AllTerminals())
	require.NoError(t, err)
	assert.Equal(t, peeked.Span, next.Span)

	after, err := s.Next(lexer.AllTerminals())
	require.NoError(t, err)
	assert.Nil(t, after)
}

func TestAllowedRestrictsScanning(t *testing.T) {
	g, err := lexer.NewGrammar([]lexer.Terminal{
		{Name: "A", Pattern: "a"},
		{Name: "B", Pattern: "b"},
	})
	require.NoError(t, err)
	aID, _ := g.ID("A")

	s := lexer.NewStream(g, "<input>", []byte("b"))
	_, err = s.Next(lexer.SomeTerminals(aID))
	require.Error(t, err)
	var lerr *lexer.LexingError
	require.ErrorAs(t, err, &lerr)
}

func TestIdempotentLexing(t *testing.T) {
	g, err := lexer.NewGrammar([]lexer.Terminal{
		{Name: "WS", Pattern: `\s+`, Ignore: true},
		{Name: "NUM", Pattern: `[0-9]+`},
	})
	require.NoError(t, err)

	run := func() []string {
		s := lexer.NewStream(g, "<input>", []byte("1 22  333"))
		var names []string
		for {
			tok, err := s.Next(lexer.AllTerminals())
			require.NoError(t, err)
			if tok == nil {
				break
			}
			names = append(names, tok.Span.String())
		}
		return names
	}
	assert.Equal(t, run(), run())
}

/*
File    : minipar/internal/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestTokenize_Operators(t *testing.T) {
	toks, err := Tokenize(`1 + 2 * 3 / 4 % 5 - 6`)
	require.NoError(t, err)
	assert.Equal(t, []TokenType{
		NUMBER, PLUS, NUMBER, STAR, NUMBER, SLASH, NUMBER, PERCENT, NUMBER, MINUS, NUMBER, EOF,
	}, tokenTypes(toks))
}

func TestTokenize_TwoCharOperatorsMaximalMunch(t *testing.T) {
	toks, err := Tokenize(`a == b != c <= d >= e && f || g -> h`)
	require.NoError(t, err)
	var got []TokenType
	for _, tok := range toks {
		got = append(got, tok.Type)
	}
	assert.Contains(t, got, EQ)
	assert.Contains(t, got, NE)
	assert.Contains(t, got, LE)
	assert.Contains(t, got, GE)
	assert.Contains(t, got, AND)
	assert.Contains(t, got, OR)
	assert.Contains(t, got, ARROW)
}

func TestTokenize_Keywords(t *testing.T) {
	toks, err := Tokenize(`func if else while break continue return true false par seq c_channel s_channel`)
	require.NoError(t, err)
	want := []TokenType{FUNC, IF, ELSE, WHILE, BREAK, CONTINUE, RETURN, TRUE, FALSE, PAR, SEQ, C_CHANNEL, S_CHANNEL, EOF}
	assert.Equal(t, want, tokenTypes(toks))
}

func TestTokenize_StringLiteral(t *testing.T) {
	toks, err := Tokenize(`"hello world"`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestTokenize_UnterminatedStringIsLexError(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestTokenize_NewlineAsTerminatorAfterSignificantToken(t *testing.T) {
	toks, err := Tokenize("x = 1\ny = 2")
	require.NoError(t, err)
	var sawNewline bool
	for _, tok := range toks {
		if tok.Type == NEWLINE {
			sawNewline = true
		}
	}
	assert.True(t, sawNewline, "a newline following a significant token must surface as NEWLINE")
}

func TestTokenize_NewlineAfterOpenBraceIsSuppressed(t *testing.T) {
	toks, err := Tokenize("if (true) {\n}")
	require.NoError(t, err)
	for i, tok := range toks {
		if tok.Type == LBRACE {
			assert.NotEqual(t, NEWLINE, toks[i+1].Type, "a newline right after '{' is not a statement terminator")
		}
	}
}

func TestTokenize_LineComment(t *testing.T) {
	toks, err := Tokenize("x = 1 # trailing comment\ny = 2")
	require.NoError(t, err)
	for _, tok := range toks {
		assert.NotContains(t, tok.Literal, "trailing comment")
	}
}

func TestTokenize_BlockComment(t *testing.T) {
	toks, err := Tokenize("x /* a block\ncomment */ = 1")
	require.NoError(t, err)
	assert.Equal(t, []TokenType{IDENT, ASSIGN, NUMBER, EOF}, tokenTypes(toks))
}

func TestTokenize_UnterminatedBlockCommentIsLexError(t *testing.T) {
	_, err := Tokenize("x /* never closed")
	require.Error(t, err)
}

func TestDump_StableFormat(t *testing.T) {
	toks, err := Tokenize(`x`)
	require.NoError(t, err)
	out := Dump(toks)
	assert.Contains(t, out, "({x, IDENT}, 1) | line: 1")
}

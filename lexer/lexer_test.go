package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OxenFxc/lua-ast-parser/diag"
)

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestTokenizeArithmeticExpression(t *testing.T) {
	d := diag.New("1 + 2 * 3", "test")
	toks := New("1 + 2 * 3", d, DefaultOptions()).Tokenize()
	require.False(t, d.HasErrors())
	assert.Equal(t, []Kind{NUMBER, Plus, NUMBER, Star, NUMBER, EOF}, kinds(toks))
}

func TestTokenizeKeywordsVsIdentifiers(t *testing.T) {
	d := diag.New("local x = funcname", "test")
	toks := New("local x = funcname", d, DefaultOptions()).Tokenize()
	require.False(t, d.HasErrors())
	assert.Equal(t, []Kind{KwLocal, IDENTIFIER, Assign, IDENTIFIER, EOF}, kinds(toks))
}

func TestTokenizeBooleanAndNilKeywords(t *testing.T) {
	d := diag.New("true false nil", "test")
	toks := New("true false nil", d, DefaultOptions()).Tokenize()
	require.False(t, d.HasErrors())
	assert.Equal(t, []Kind{BOOLEAN, BOOLEAN, NIL, EOF}, kinds(toks))
}

func TestOperatorPrefixesMatchLongestFirst(t *testing.T) {
	d := diag.New("... .. . == = ~= <= < >= > // /", "test")
	toks := New("... .. . == = ~= <= < >= > // /", d, DefaultOptions()).Tokenize()
	require.False(t, d.HasErrors())
	assert.Equal(t, []Kind{
		Ellipsis, Concat, Dot, Eq, Assign, Ne, Le, Lt, Ge, Gt, DSlash, Slash, EOF,
	}, kinds(toks))
}

func TestTokenizeStringLiteralDecodesEscapes(t *testing.T) {
	d := diag.New(`"a\nb"`, "test")
	toks := New(`"a\nb"`, d, DefaultOptions()).Tokenize()
	require.False(t, d.HasErrors())
	require.Len(t, toks, 2)
	assert.Equal(t, STRING, toks[0].Kind)
	assert.Equal(t, "a\nb", toks[0].Decoded)
}

func TestTokenizeLongBracketString(t *testing.T) {
	src := "[[line one\nline two]]"
	d := diag.New(src, "test")
	toks := New(src, d, DefaultOptions()).Tokenize()
	require.False(t, d.HasErrors())
	require.Len(t, toks, 2)
	assert.Equal(t, STRING, toks[0].Kind)
	assert.Equal(t, "line one\nline two", toks[0].Decoded)
}

func TestLineCommentSkippedByDefault(t *testing.T) {
	src := "1 -- comment here\n+ 2"
	d := diag.New(src, "test")
	toks := New(src, d, DefaultOptions()).Tokenize()
	require.False(t, d.HasErrors())
	assert.Equal(t, []Kind{NUMBER, Plus, NUMBER, EOF}, kinds(toks))
}

func TestCommentsKeptWhenRequested(t *testing.T) {
	src := "1 -- comment\n"
	d := diag.New(src, "test")
	opts := Options{SkipComments: false, SkipNewlines: false}
	toks := New(src, d, opts).Tokenize()
	require.False(t, d.HasErrors())
	assert.Equal(t, []Kind{NUMBER, COMMENT, NEWLINE, EOF}, kinds(toks))
}

func TestLongBracketComment(t *testing.T) {
	src := "--[[ hidden\nbody ]]1"
	d := diag.New(src, "test")
	toks := New(src, d, DefaultOptions()).Tokenize()
	require.False(t, d.HasErrors())
	assert.Equal(t, []Kind{NUMBER, EOF}, kinds(toks))
}

func TestUnexpectedCharacterRecordsDiagnosticAndSkipsToken(t *testing.T) {
	src := "1 @ 2"
	d := diag.New(src, "test")
	toks := New(src, d, DefaultOptions()).Tokenize()
	assert.True(t, d.HasErrors())
	assert.Equal(t, []Kind{NUMBER, NUMBER, EOF}, kinds(toks))
}

func TestTokenizeAlwaysEndsWithEOF(t *testing.T) {
	d := diag.New("", "test")
	toks := New("", d, DefaultOptions()).Tokenize()
	require.Len(t, toks, 1)
	assert.Equal(t, EOF, toks[0].Kind)
}

func TestDotFollowedByDigitLexesAsNumber(t *testing.T) {
	// A '.' immediately followed by a digit is ambiguous with field
	// access only in the parser's grammar; the lexer itself always
	// prefers the longer numeral lexeme, matching a real Lua lexer.
	d := diag.New("t.1", "test")
	toks := New("t.1", d, DefaultOptions()).Tokenize()
	require.False(t, d.HasErrors())
	assert.Equal(t, []Kind{IDENTIFIER, NUMBER, EOF}, kinds(toks))
	assert.Equal(t, ".1", toks[1].Lexeme)
}

func TestLeadingDotNumberIsFloat(t *testing.T) {
	d := diag.New(".5", "test")
	toks := New(".5", d, DefaultOptions()).Tokenize()
	require.False(t, d.HasErrors())
	require.Len(t, toks, 2)
	assert.Equal(t, NUMBER, toks[0].Kind)
	assert.Equal(t, ".5", toks[0].Lexeme)
}

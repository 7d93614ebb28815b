package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceTracksLineAndColumn(t *testing.T) {
	s := New("ab\ncd")
	s.Advance(2)
	assert.Equal(t, 1, s.Pos().Line)
	assert.Equal(t, 3, s.Pos().Column)
	s.Advance(1) // consume '\n'
	assert.Equal(t, 2, s.Pos().Line)
	assert.Equal(t, 1, s.Pos().Column)
}

func TestAdvanceTreatsCRLFAsOneLineBreak(t *testing.T) {
	s := New("a\r\nb")
	s.Advance(1)
	s.Advance(1) // '\r'
	assert.Equal(t, 2, s.Pos().Line)
	s.Advance(1) // '\n' of the same break
	assert.Equal(t, 2, s.Pos().Line)
	assert.Equal(t, 1, s.Pos().Column)
}

func TestPeekPastEndReturnsZero(t *testing.T) {
	s := New("a")
	assert.Equal(t, byte(0), s.Peek(5))
}

func TestReadIdentifier(t *testing.T) {
	s := New("foo_Bar2 + 1")
	assert.Equal(t, "foo_Bar2", s.ReadIdentifier())
}

func TestReadNumberDecimalWithExponent(t *testing.T) {
	s := New("1.5e-3rest")
	lex, err := s.ReadNumber()
	require.NoError(t, err)
	assert.Equal(t, "1.5e-3", lex)
}

func TestReadNumberHexWithFraction(t *testing.T) {
	s := New("0x1.8p4rest")
	lex, err := s.ReadNumber()
	require.NoError(t, err)
	assert.Equal(t, "0x1.8p4", lex)
}

func TestReadNumberMalformedExponent(t *testing.T) {
	s := New("1e")
	_, err := s.ReadNumber()
	assert.Error(t, err)
}

func TestReadStringSimpleEscapes(t *testing.T) {
	s := New(`hello\nworld"`)
	decoded, err := s.ReadString('"')
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", decoded)
}

func TestReadStringHexEscape(t *testing.T) {
	s := New(`\x41"`)
	decoded, err := s.ReadString('"')
	require.NoError(t, err)
	assert.Equal(t, "A", decoded)
}

func TestReadStringDecimalEscape(t *testing.T) {
	s := New(`\065"`)
	decoded, err := s.ReadString('"')
	require.NoError(t, err)
	assert.Equal(t, "A", decoded)
}

func TestReadStringUnterminatedByNewline(t *testing.T) {
	s := New("abc\ndef\"")
	_, err := s.ReadString('"')
	assert.Error(t, err)
}

func TestReadStringUnterminatedByEOF(t *testing.T) {
	s := New("abc")
	_, err := s.ReadString('"')
	assert.Error(t, err)
}

func TestLongBracketLevelDetection(t *testing.T) {
	s := New("[==[body]==]")
	level, ok := s.LongBracketLevel()
	require.True(t, ok)
	assert.Equal(t, 2, level)
}

func TestLongBracketLevelRejectsPlainBracket(t *testing.T) {
	s := New("[expr]")
	_, ok := s.LongBracketLevel()
	assert.False(t, ok)
}

func TestReadLongBracketDropsLeadingNewline(t *testing.T) {
	s := New("\nhello]]")
	content, err := s.ReadLongBracket(0)
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
}

func TestReadLongBracketUnterminated(t *testing.T) {
	s := New("body without closer")
	_, err := s.ReadLongBracket(0)
	assert.Error(t, err)
}

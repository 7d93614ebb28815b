/*
lexer.go implements the single-pass token-stream driver spec.md §4.3
describes: skip whitespace and comments, dispatch on the lead
character, and classify identifiers against the keyword table.
Grounded on go-mix's lexer/lexer.go for the overall drive loop shape;
the literal grammar itself (numbers, string escapes, long brackets)
is pinned to a real Lua lexer (SPEC_FULL.md §4.3,
_examples/256lights-zb/internal/lualex).
*/
package lexer

import (
	"github.com/OxenFxc/lua-ast-parser/diag"
	"github.com/OxenFxc/lua-ast-parser/scanner"
)

// Options controls token-stream shape, per spec.md §6's `parse`
// options.
type Options struct {
	SkipComments bool
	SkipNewlines bool
	StrictMode   bool // unused by the lexer itself; threaded through to the parser
}

// DefaultOptions returns spec.md §6's stated defaults.
func DefaultOptions() Options {
	return Options{SkipComments: true, SkipNewlines: true}
}

// Lexer drives a scanner.Scanner into a token slice.
type Lexer struct {
	sc   *scanner.Scanner
	diag *diag.Collector
	opts Options
}

// New creates a Lexer over src, recording any lexical diagnostics into
// d.
func New(src string, d *diag.Collector, opts Options) *Lexer {
	return &Lexer{sc: scanner.New(src), diag: d, opts: opts}
}

// Tokenize runs the lexer to completion and returns the full token
// slice, always terminated by exactly one EOF token with a zero-width
// span at the end of input (spec.md §3.2).
func (l *Lexer) Tokenize() []Token {
	var toks []Token
	for {
		t := l.next()
		if t.Kind == COMMENT && l.opts.SkipComments {
			continue
		}
		if t.Kind == NEWLINE && l.opts.SkipNewlines {
			continue
		}
		if t.Kind == INVALID {
			continue
		}
		toks = append(toks, t)
		if t.Kind == EOF {
			return toks
		}
	}
}

func (l *Lexer) emit(kind Kind, m scanner.Mark) Token {
	return Token{Kind: kind, Lexeme: l.sc.Source()[m.Offset:l.sc.Offset()], Span: l.sc.Span(m)}
}

// emitString is emit plus the escape-decoded payload, used for both
// quoted and long-bracket strings.
func (l *Lexer) emitString(m scanner.Mark, decoded string) Token {
	t := l.emit(STRING, m)
	t.Decoded = decoded
	return t
}

// next scans and returns exactly one token (which may be a COMMENT or
// NEWLINE the caller filters out per Options).
func (l *Lexer) next() Token {
	l.skipInlineWhitespace()

	if l.sc.AtEnd() {
		m := l.sc.Mark()
		return Token{Kind: EOF, Lexeme: "", Span: l.sc.Span(m)}
	}

	c := l.sc.Current()

	if c == '\n' || c == '\r' {
		m := l.sc.Mark()
		if c == '\r' && l.sc.Peek(1) == '\n' {
			l.sc.Advance(2)
		} else {
			l.sc.Advance(1)
		}
		return l.emit(NEWLINE, m)
	}

	if c == '-' && l.sc.Peek(1) == '-' {
		return l.readComment()
	}

	switch {
	case isIdentStart(c):
		return l.readIdentifier()
	case isDigit(c):
		return l.readNumber()
	case c == '.' && isDigit(l.sc.Peek(1)):
		return l.readNumber()
	case c == '"' || c == '\'':
		return l.readString()
	case c == '[':
		if level, ok := l.sc.LongBracketLevel(); ok {
			return l.readLongString(level)
		}
		return l.readPunct()
	default:
		return l.readPunct()
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (l *Lexer) skipInlineWhitespace() {
	for !l.sc.AtEnd() && (l.sc.Current() == ' ' || l.sc.Current() == '\t') {
		l.sc.Advance(1)
	}
}

func (l *Lexer) readComment() Token {
	m := l.sc.Mark()
	l.sc.Advance(2) // "--"
	if level, ok := l.sc.LongBracketLevel(); ok {
		l.sc.Advance(2 + level) // "[" + "="*level + "["
		if _, err := l.sc.ReadLongBracket(level); err != nil {
			l.diag.Errorf(l.sc.Span(m), "lexer", "unterminated long comment: %v", err)
		}
		return l.emit(COMMENT, m)
	}
	for !l.sc.AtEnd() && l.sc.Current() != '\n' && l.sc.Current() != '\r' {
		l.sc.Advance(1)
	}
	return l.emit(COMMENT, m)
}

func (l *Lexer) readIdentifier() Token {
	m := l.sc.Mark()
	lexeme := l.sc.ReadIdentifier()
	if kind, ok := Keywords[lexeme]; ok {
		return l.emit(kind, m)
	}
	return l.emit(IDENTIFIER, m)
}

func (l *Lexer) readNumber() Token {
	m := l.sc.Mark()
	_, err := l.sc.ReadNumber()
	if err != nil {
		l.diag.Errorf(l.sc.Span(m), "lexer", "invalid number literal: %v", err)
	}
	return l.emit(NUMBER, m)
}

func (l *Lexer) readString() Token {
	m := l.sc.Mark()
	quote := l.sc.Current()
	l.sc.Advance(1)
	decoded, err := l.sc.ReadString(quote)
	if err != nil {
		l.diag.Errorf(l.sc.Span(m), "lexer", "%v", err)
	}
	return l.emitString(m, decoded)
}

func (l *Lexer) readLongString(level int) Token {
	m := l.sc.Mark()
	l.sc.Advance(2 + level) // "[" + "="*level + "["
	content, err := l.sc.ReadLongBracket(level)
	if err != nil {
		l.diag.Errorf(l.sc.Span(m), "lexer", "unterminated long string: %v", err)
	}
	return l.emitString(m, content)
}

// operatorTable lists prefix-ambiguous operators longest-first, as
// spec.md §4.3 requires ("Operator prefixes are matched longest-first
// against the operator table").
var operatorTable = []struct {
	text string
	kind Kind
}{
	{"...", Ellipsis},
	{"..", Concat},
	{"::", DoubleColon},
	{"==", Eq},
	{"~=", Ne},
	{"<=", Le},
	{">=", Ge},
	{"//", DSlash},
	{".", Dot},
	{"=", Assign},
	{"<", Lt},
	{">", Gt},
	{"/", Slash},
	{":", Colon},
	{"+", Plus},
	{"-", Minus},
	{"*", Star},
	{"%", Percent},
	{"^", Caret},
	{"#", Hash},
	{"(", LParen},
	{")", RParen},
	{"{", LBrace},
	{"}", RBrace},
	{"[", LBracket},
	{"]", RBracket},
	{",", Comma},
	{";", Semicolon},
}

func (l *Lexer) readPunct() Token {
	m := l.sc.Mark()
	for _, op := range operatorTable {
		if l.matchesAt(op.text) {
			l.sc.Advance(len(op.text))
			return l.emit(op.kind, m)
		}
	}
	// Unclassified character: record an error and advance one
	// character to preserve progress, per spec.md §4.3.
	l.diag.Errorf(l.sc.Span(m), "lexer", "unexpected character %q", string(l.sc.Current()))
	l.sc.Advance(1)
	return l.emit(INVALID, m)
}

func (l *Lexer) matchesAt(text string) bool {
	for i := 0; i < len(text); i++ {
		if l.sc.Peek(i) != text[i] {
			return false
		}
	}
	return true
}

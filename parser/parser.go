/*
Package parser implements the recursive-descent/precedence-climbing
parser spec.md §4.4 describes. A single Parser struct owns the shared
token-cursor state; statement parsing and expression parsing are split
across files in this package by concern (parser.go holds the shared
primitives, statements.go the statement grammar, expressions.go the
precedence-climbing expression grammar), not across separate
sub-parser objects — spec.md §9 calls for "a single Parser owns both
sub-tables... there are no true object cycles," which a plain method
split on one receiver gives for free.

Grounded on go-mix's parser/parser.go for the shared-state shape
(current index, diagnostics collector, peek/advance/check/match/expect
primitives); the grammar itself targets spec.md's Lua-modeled language
rather than go-mix's own C-like grammar, cross-checked against
_examples/256lights-zb/internal/luacode/parser.go for Lua-specific
forms (generic/numeric for, method-call sugar, table constructors).
*/
package parser

import (
	"github.com/OxenFxc/lua-ast-parser/ast"
	"github.com/OxenFxc/lua-ast-parser/diag"
	"github.com/OxenFxc/lua-ast-parser/lexer"
	"github.com/OxenFxc/lua-ast-parser/pos"
)

// Options controls parser behavior, per spec.md §6's `parse` options.
type Options struct {
	SkipComments bool
	SkipNewlines bool
	StrictMode   bool // currently unused by the parser, per spec.md §6
}

// DefaultOptions mirrors lexer.DefaultOptions.
func DefaultOptions() Options {
	return Options{SkipComments: true, SkipNewlines: true}
}

// Parser holds the token cursor and diagnostics collector shared by
// every parsing method in this package.
type Parser struct {
	tokens []lexer.Token
	pos    int
	diag   *diag.Collector
	opts   Options
}

// New creates a Parser over a pre-lexed token stream.
func New(tokens []lexer.Token, d *diag.Collector, opts Options) *Parser {
	return &Parser{tokens: tokens, diag: d, opts: opts}
}

// Parse lexes src and parses it into a Program. It never panics on a
// malformed program (spec.md §4.4.3): parse errors are recorded in d
// and a best-effort partial AST is still returned. Callers check
// d.HasErrors() to know whether the result represents success.
func Parse(src string, d *diag.Collector, opts Options) *ast.Program {
	lx := lexer.New(src, d, lexer.Options{SkipComments: opts.SkipComments, SkipNewlines: opts.SkipNewlines, StrictMode: opts.StrictMode})
	toks := lx.Tokenize()
	p := New(toks, d, opts)
	return p.ParseProgram()
}

// ParseProgram parses the entire token stream as a sequence of
// statements terminated by EOF.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.peek(0)
	var body []ast.Statement
	for !p.check(lexer.EOF) {
		before := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			body = append(body, stmt)
		}
		p.matchToken(lexer.Semicolon)
		if p.pos == before {
			// expect() failed to consume anything; force progress so a
			// malformed program can never loop forever.
			p.advance()
		}
	}
	end := p.previous()
	return &ast.Program{Body: body, Sp: joinOrStart(start, end)}
}

// --- token-cursor primitives ---

func (p *Parser) peek(k int) lexer.Token {
	idx := p.pos + k
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[idx]
}

func (p *Parser) previous() lexer.Token {
	if p.pos == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) current() lexer.Token { return p.peek(0) }

func (p *Parser) advance() lexer.Token {
	t := p.current()
	if !p.check(lexer.EOF) {
		p.pos++
	}
	return t
}

func (p *Parser) check(k lexer.Kind) bool { return p.current().Kind == k }

func (p *Parser) checkAny(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

func (p *Parser) matchToken(k lexer.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of kind k or records a diagnostic and
// returns a synthetic failure token without advancing — spec.md
// §4.4.3's "failed expect returns a sentinel; parsing continues."
func (p *Parser) expect(k lexer.Kind) lexer.Token {
	if p.check(k) {
		return p.advance()
	}
	got := p.current()
	p.diag.Errorf(got.Span, "parser", "expected %s, got %s %q", k, got.Kind, got.Lexeme)
	return lexer.Token{Kind: k, Span: got.Span}
}

func joinOrStart(start, end lexer.Token) pos.Span {
	return pos.Join(start.Span, end.Span)
}

/*
expressions.go implements spec.md §4.4.2: parseExpression is
parseBinary(0), a single precedence-climbing function threading a
minimum-precedence parameter through its recursive calls, rather than
a per-token registered-parselet table.
*/
package parser

import (
	"github.com/OxenFxc/lua-ast-parser/ast"
	"github.com/OxenFxc/lua-ast-parser/lexer"
	"github.com/OxenFxc/lua-ast-parser/pos"
)

// binOp describes one binary operator's precedence level and
// associativity, per the table in spec.md §4.4.2.
type binOp struct {
	prec      int
	rightAssc bool
}

var binaryOps = map[lexer.Kind]binOp{
	lexer.KwOr:    {1, false},
	lexer.KwAnd:   {2, false},
	lexer.Lt:      {3, false},
	lexer.Gt:      {3, false},
	lexer.Le:      {3, false},
	lexer.Ge:      {3, false},
	lexer.Eq:      {3, false},
	lexer.Ne:      {3, false},
	lexer.Concat:  {4, true},
	lexer.Plus:    {5, false},
	lexer.Minus:   {5, false},
	lexer.Star:    {6, false},
	lexer.Slash:   {6, false},
	lexer.DSlash:  {6, false},
	lexer.Percent: {6, false},
	lexer.Caret:   {8, true},
}

func (p *Parser) parseExpression() ast.Expression {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(minPrec int) ast.Expression {
	left := p.parseUnary()
	for {
		op, ok := binaryOps[p.current().Kind]
		if !ok || op.prec < minPrec {
			return left
		}
		opTok := p.advance()
		nextMin := op.prec + 1
		if op.rightAssc {
			nextMin = op.prec
		}
		right := p.parseBinary(nextMin)
		left = &ast.BinaryExpr{Op: opTok.Kind, Left: left, Right: right, Sp: join(left.Span(), right.Span())}
	}
}

// parseUnary handles level 7's prefix operators (`not`, `-`, `#`);
// anything else falls through to exponentiation/primary parsing.
func (p *Parser) parseUnary() ast.Expression {
	switch p.current().Kind {
	case lexer.KwNot, lexer.Minus, lexer.Hash:
		opTok := p.advance()
		operand := p.parseUnaryOperand()
		return &ast.UnaryExpr{Op: opTok.Kind, X: operand, Sp: join(opTok.Span, operand.Span())}
	default:
		return p.parseExponent()
	}
}

// parseUnaryOperand parses a unary operator's operand at precedence
// level 7, so `-a^b` binds as `-(a^b)` (level 8 is higher, so `^`
// still grabs its right-hand side first via parseExponent below) while
// a second prefix operator (`- -x`, `not not x`) nests correctly.
func (p *Parser) parseUnaryOperand() ast.Expression {
	switch p.current().Kind {
	case lexer.KwNot, lexer.Minus, lexer.Hash:
		return p.parseUnary()
	default:
		return p.parseExponent()
	}
}

// parseExponent handles level 8 (`^`, right-associative), which binds
// tighter than any prefix operator and so is parsed beneath parseUnary
// rather than through the generic binary-operator loop.
func (p *Parser) parseExponent() ast.Expression {
	base := p.parsePrimaryExpression()
	if p.check(lexer.Caret) {
		opTok := p.advance()
		right := p.parseUnary()
		return &ast.BinaryExpr{Op: opTok.Kind, Left: base, Right: right, Sp: join(base.Span(), right.Span())}
	}
	return base
}

// parsePrimaryExpression parses a literal, identifier-led prefix
// chain, parenthesized expression, function expression, or table
// constructor — the primary-expression grammar of spec.md §4.4.2.
func (p *Parser) parsePrimaryExpression() ast.Expression {
	tok := p.current()
	switch tok.Kind {
	case lexer.NUMBER:
		p.advance()
		kind := ast.LitInt
		if isFloatLexeme(tok.Lexeme) {
			kind = ast.LitFloat
		}
		return &ast.Literal{LitKind: kind, Raw: tok.Lexeme, Sp: tok.Span}
	case lexer.STRING:
		p.advance()
		return &ast.Literal{LitKind: ast.LitString, Raw: tok.Lexeme, Value: tok.Decoded, Sp: tok.Span}
	case lexer.BOOLEAN:
		p.advance()
		return &ast.Literal{LitKind: ast.LitBool, Raw: tok.Lexeme, Sp: tok.Span}
	case lexer.NIL:
		p.advance()
		return &ast.Literal{LitKind: ast.LitNil, Raw: tok.Lexeme, Sp: tok.Span}
	case lexer.Ellipsis:
		// The vararg expression `...` has no dedicated AST node; the
		// evaluator recognizes the reserved name "..." as a request for
		// the current call's extra arguments (SPEC_FULL.md §4.6).
		p.advance()
		return &ast.Identifier{Name: "...", Sp: tok.Span}
	case lexer.KwFunction:
		return p.parseFunctionExpr()
	case lexer.LBrace:
		return p.parseTableConstructor()
	case lexer.LParen:
		p.advance()
		inner := p.parseExpression()
		p.expect(lexer.RParen)
		// Parentheses only affect parsing (they stop a prefix-expression
		// chain from absorbing a trailing call/index as part of the
		// nested expression); the printer re-derives where parentheses
		// are needed from operator precedence, so no grouping node is
		// kept in the AST.
		return p.parseSuffixChain(inner)
	case lexer.IDENTIFIER:
		return p.parsePrefixExpression()
	default:
		p.diag.Errorf(tok.Span, "parser", "unexpected token %s %q in expression", tok.Kind, tok.Lexeme)
		p.advance()
		return &ast.Literal{LitKind: ast.LitNil, Raw: "nil", Sp: tok.Span}
	}
}

// parsePrefixExpression parses an Identifier followed by zero or more
// `.name`, `[expr]`, `:name`, `(args)` suffixes — the grammar
// statement-level assignment/call disambiguation (spec.md §4.4.1)
// shares with general expression parsing.
func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.expect(lexer.IDENTIFIER)
	var base ast.Expression = &ast.Identifier{Name: tok.Lexeme, Sp: tok.Span}
	return p.parseSuffixChain(base)
}

// parseSuffixChain consumes a (possibly empty) run of member/call
// suffixes following a primary expression.
func (p *Parser) parseSuffixChain(base ast.Expression) ast.Expression {
	for {
		switch p.current().Kind {
		case lexer.Dot:
			p.advance()
			sel := p.parseIdentifierName()
			base = &ast.MemberExpr{Base: base, Selector: sel, Sp: join(base.Span(), sel.Sp)}
		case lexer.LBracket:
			p.advance()
			key := p.parseExpression()
			end := p.expect(lexer.RBracket)
			base = &ast.MemberExpr{Base: base, Selector: key, Computed: true, Sp: join(base.Span(), end.Span)}
		case lexer.Colon:
			p.advance()
			sel := p.parseIdentifierName()
			member := &ast.MemberExpr{Base: base, Selector: sel, IsMethodCall: true, Sp: join(base.Span(), sel.Sp)}
			args, end := p.parseCallArguments()
			base = &ast.CallExpr{Callee: member, Args: args, IsMethod: true, Sp: join(base.Span(), end)}
		case lexer.LParen, lexer.STRING, lexer.LBrace:
			args, end := p.parseCallArguments()
			base = &ast.CallExpr{Callee: base, Args: args, Sp: join(base.Span(), end)}
		default:
			return base
		}
	}
}

// parseCallArguments parses the three call-suffix forms spec.md
// §4.4.2 lists: a parenthesized expression list (required by the base
// spec), and the SPEC_FULL.md-added table-constructor and bare-string
// argument sugar (a single argument each).
func (p *Parser) parseCallArguments() ([]ast.Expression, pos.Span) {
	switch p.current().Kind {
	case lexer.STRING:
		tok := p.advance()
		lit := &ast.Literal{LitKind: ast.LitString, Raw: tok.Lexeme, Value: tok.Decoded, Sp: tok.Span}
		return []ast.Expression{lit}, tok.Span
	case lexer.LBrace:
		tbl := p.parseTableConstructor()
		return []ast.Expression{tbl}, tbl.Span()
	default:
		p.expect(lexer.LParen)
		var args []ast.Expression
		if !p.check(lexer.RParen) {
			args = p.parseExpressionList()
		}
		end := p.expect(lexer.RParen)
		return args, end.Span
	}
}

func (p *Parser) parseFunctionExpr() ast.Expression {
	start := p.advance() // 'function'
	params, vararg, body, end := p.parseFunctionBody()
	return &ast.FunctionExpr{Params: params, Vararg: vararg, Body: body, Sp: join(start.Span, end.Span)}
}

func (p *Parser) parseTableConstructor() ast.Expression {
	start := p.expect(lexer.LBrace)
	var fields []ast.TableField
	for !p.check(lexer.RBrace) && !p.check(lexer.EOF) {
		fields = append(fields, p.parseTableField())
		if !p.matchToken(lexer.Comma) && !p.matchToken(lexer.Semicolon) {
			break
		}
	}
	end := p.expect(lexer.RBrace)
	return &ast.TableConstructorExpr{Fields: fields, Sp: join(start.Span, end.Span)}
}

func (p *Parser) parseTableField() ast.TableField {
	if p.check(lexer.LBracket) {
		p.advance()
		key := p.parseExpression()
		p.expect(lexer.RBracket)
		p.expect(lexer.Assign)
		value := p.parseExpression()
		return ast.ComputedField{Key: key, Value: value}
	}
	if p.check(lexer.IDENTIFIER) && p.peek(1).Kind == lexer.Assign {
		name := p.parseIdentifierName()
		p.advance() // '='
		value := p.parseExpression()
		return ast.NamedField{Key: name, Value: value}
	}
	return ast.ArrayField{Value: p.parseExpression()}
}

// isFloatLexeme reports whether a raw NUMBER lexeme denotes a float
// rather than an integer literal: a decimal point, exponent marker, or
// (for hex literals) binary-exponent marker makes it fractional. The
// evaluator performs the actual numeric conversion (SPEC_FULL.md §3);
// this is only used to pick the Literal's LitKind for the printer and
// evaluator dispatch.
func isFloatLexeme(raw string) bool {
	isHex := len(raw) > 1 && raw[0] == '0' && (raw[1] == 'x' || raw[1] == 'X')
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '.':
			return true
		case 'e', 'E':
			if !isHex {
				return true
			}
		case 'p', 'P':
			if isHex {
				return true
			}
		}
	}
	return false
}

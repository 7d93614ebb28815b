/*
statements.go implements the statement dispatch and grammar of
spec.md §4.4.1: the leading token's kind picks the production, and the
ambiguous IDENTIFIER-leading case is disambiguated by what follows
(assignment vs. bare call statement).
*/
package parser

import (
	"github.com/OxenFxc/lua-ast-parser/ast"
	"github.com/OxenFxc/lua-ast-parser/lexer"
	"github.com/OxenFxc/lua-ast-parser/pos"
)

func join(a, b pos.Span) pos.Span { return pos.Join(a, b) }

// parseBlock parses statements until EOF or one of terminators, which
// it does not consume — each caller consumes its own terminator
// (`end`, `until`, `else`, `elseif`).
func (p *Parser) parseBlock(terminators ...lexer.Kind) []ast.Statement {
	var body []ast.Statement
	for !p.check(lexer.EOF) && !p.checkAny(terminators...) {
		before := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			body = append(body, stmt)
		}
		p.matchToken(lexer.Semicolon)
		if p.pos == before {
			p.advance()
		}
	}
	return body
}

// atExprListEnd reports whether the current token can never start an
// expression, i.e. it terminates an optional expression list such as
// `return`'s argument list.
func (p *Parser) atExprListEnd() bool {
	return p.checkAny(lexer.EOF, lexer.Semicolon, lexer.KwEnd, lexer.KwElse, lexer.KwElseif, lexer.KwUntil)
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.current().Kind {
	case lexer.Semicolon:
		p.advance()
		return nil
	case lexer.KwLocal:
		return p.parseLocal()
	case lexer.KwIf:
		return p.parseIf()
	case lexer.KwWhile:
		return p.parseWhile()
	case lexer.KwRepeat:
		return p.parseRepeat()
	case lexer.KwFor:
		return p.parseFor()
	case lexer.KwFunction:
		return p.parseFunctionDecl()
	case lexer.KwReturn:
		return p.parseReturn()
	case lexer.KwBreak:
		t := p.advance()
		return &ast.BreakStmt{Sp: t.Span}
	case lexer.KwDo:
		return p.parseDo()
	case lexer.KwGoto:
		return p.parseGoto()
	case lexer.DoubleColon:
		return p.parseLabel()
	case lexer.IDENTIFIER:
		return p.parseExpressionOrAssignment()
	default:
		got := p.current()
		p.diag.Errorf(got.Span, "parser", "unexpected token %s %q at statement position", got.Kind, got.Lexeme)
		p.advance()
		return nil
	}
}

func (p *Parser) parseIdentifierName() *ast.Identifier {
	t := p.expect(lexer.IDENTIFIER)
	return &ast.Identifier{Name: t.Lexeme, Sp: t.Span}
}

func (p *Parser) parseExpressionList() []ast.Expression {
	list := []ast.Expression{p.parseExpression()}
	for p.matchToken(lexer.Comma) {
		list = append(list, p.parseExpression())
	}
	return list
}

func (p *Parser) parseLocal() ast.Statement {
	start := p.advance() // 'local'
	if p.check(lexer.KwFunction) {
		p.advance()
		name := p.parseIdentifierName()
		params, vararg, body, end := p.parseFunctionBody()
		return &ast.FunctionDeclStmt{
			Name: name, Params: params, Vararg: vararg, Body: body,
			IsLocal: true, Sp: join(start.Span, end.Span),
		}
	}
	names := []*ast.Identifier{p.parseIdentifierName()}
	for p.matchToken(lexer.Comma) {
		names = append(names, p.parseIdentifierName())
	}
	stmt := &ast.LocalStmt{Names: names, Sp: join(start.Span, names[len(names)-1].Sp)}
	if p.matchToken(lexer.Assign) {
		stmt.Init = p.parseExpressionList()
		stmt.Sp = join(start.Span, stmt.Init[len(stmt.Init)-1].Span())
	}
	return stmt
}

func (p *Parser) parseIf() ast.Statement {
	start := p.advance() // 'if'
	var clauses []ast.IfClause

	cond := p.parseExpression()
	p.expect(lexer.KwThen)
	body := p.parseBlock(lexer.KwElseif, lexer.KwElse, lexer.KwEnd)
	clauses = append(clauses, ast.IfClause{Cond: cond, Body: body})

	for p.check(lexer.KwElseif) {
		p.advance()
		c := p.parseExpression()
		p.expect(lexer.KwThen)
		b := p.parseBlock(lexer.KwElseif, lexer.KwElse, lexer.KwEnd)
		clauses = append(clauses, ast.IfClause{Cond: c, Body: b})
	}
	if p.check(lexer.KwElse) {
		p.advance()
		b := p.parseBlock(lexer.KwEnd)
		clauses = append(clauses, ast.IfClause{Cond: nil, Body: b})
	}
	end := p.expect(lexer.KwEnd)
	return &ast.IfStmt{Clauses: clauses, Sp: join(start.Span, end.Span)}
}

func (p *Parser) parseWhile() ast.Statement {
	start := p.advance() // 'while'
	cond := p.parseExpression()
	p.expect(lexer.KwDo)
	body := p.parseBlock(lexer.KwEnd)
	end := p.expect(lexer.KwEnd)
	return &ast.WhileStmt{Cond: cond, Body: body, Sp: join(start.Span, end.Span)}
}

// parseRepeat parses `repeat Body until Cond`. Cond's lexical scope
// includes Body's locals; that falls out naturally here because the
// evaluator (not the parser) creates the block environment and keeps
// it alive while evaluating Cond (spec.md §4.4.1 note).
func (p *Parser) parseRepeat() ast.Statement {
	start := p.advance() // 'repeat'
	body := p.parseBlock(lexer.KwUntil)
	p.expect(lexer.KwUntil)
	cond := p.parseExpression()
	return &ast.RepeatStmt{Body: body, Cond: cond, Sp: join(start.Span, cond.Span())}
}

func (p *Parser) parseFor() ast.Statement {
	start := p.advance() // 'for'
	first := p.parseIdentifierName()

	if p.check(lexer.Assign) {
		p.advance()
		startExpr := p.parseExpression()
		p.expect(lexer.Comma)
		stopExpr := p.parseExpression()
		var step ast.Expression
		if p.matchToken(lexer.Comma) {
			step = p.parseExpression()
		}
		p.expect(lexer.KwDo)
		body := p.parseBlock(lexer.KwEnd)
		end := p.expect(lexer.KwEnd)
		return &ast.ForNumericStmt{
			Var: first, Start: startExpr, Stop: stopExpr, Step: step, Body: body,
			Sp: join(start.Span, end.Span),
		}
	}

	vars := []*ast.Identifier{first}
	for p.matchToken(lexer.Comma) {
		vars = append(vars, p.parseIdentifierName())
	}
	p.expect(lexer.KwIn)
	iterators := p.parseExpressionList()
	p.expect(lexer.KwDo)
	body := p.parseBlock(lexer.KwEnd)
	end := p.expect(lexer.KwEnd)
	return &ast.ForGenericStmt{Vars: vars, Iterators: iterators, Body: body, Sp: join(start.Span, end.Span)}
}

// parseFunctionName parses the dotted/method name a `function ...`
// declaration binds to: `a`, `a.b.c`, or `a.b:m`. isMethod is true iff
// the last segment used `:` sugar.
func (p *Parser) parseFunctionName() (ast.Expression, bool) {
	var base ast.Expression = p.parseIdentifierName()
	for p.check(lexer.Dot) {
		p.advance()
		sel := p.parseIdentifierName()
		base = &ast.MemberExpr{Base: base, Selector: sel, Sp: join(base.Span(), sel.Sp)}
	}
	if p.check(lexer.Colon) {
		p.advance()
		sel := p.parseIdentifierName()
		base = &ast.MemberExpr{Base: base, Selector: sel, IsMethodCall: true, Sp: join(base.Span(), sel.Sp)}
		return base, true
	}
	return base, false
}

func (p *Parser) parseFunctionDecl() ast.Statement {
	start := p.advance() // 'function'
	name, isMethod := p.parseFunctionName()
	params, vararg, body, end := p.parseFunctionBody()
	if isMethod {
		self := &ast.Identifier{Name: "self", Sp: start.Span}
		params = append([]*ast.Identifier{self}, params...)
	}
	return &ast.FunctionDeclStmt{
		Name: name, Params: params, Vararg: vararg, Body: body,
		IsMethod: isMethod, Sp: join(start.Span, end.Span),
	}
}

// parseFunctionBody parses `(params) block end`, shared by function
// declarations and anonymous function expressions.
func (p *Parser) parseFunctionBody() (params []*ast.Identifier, vararg bool, body []ast.Statement, end lexer.Token) {
	p.expect(lexer.LParen)
	if !p.check(lexer.RParen) {
		for {
			if p.check(lexer.Ellipsis) {
				p.advance()
				vararg = true
				break
			}
			params = append(params, p.parseIdentifierName())
			if !p.matchToken(lexer.Comma) {
				break
			}
		}
	}
	p.expect(lexer.RParen)
	body = p.parseBlock(lexer.KwEnd)
	end = p.expect(lexer.KwEnd)
	return params, vararg, body, end
}

// parseReturn permits `return` at any statement position, per
// SPEC_FULL.md §9's resolution of spec.md's Open Question.
func (p *Parser) parseReturn() ast.Statement {
	start := p.advance() // 'return'
	stmt := &ast.ReturnStmt{Sp: start.Span}
	if !p.atExprListEnd() {
		stmt.Args = p.parseExpressionList()
		stmt.Sp = join(start.Span, stmt.Args[len(stmt.Args)-1].Span())
	}
	return stmt
}

func (p *Parser) parseDo() ast.Statement {
	start := p.advance() // 'do'
	body := p.parseBlock(lexer.KwEnd)
	end := p.expect(lexer.KwEnd)
	return &ast.DoStmt{Body: body, Sp: join(start.Span, end.Span)}
}

func (p *Parser) parseGoto() ast.Statement {
	start := p.advance() // 'goto'
	label := p.expect(lexer.IDENTIFIER)
	return &ast.GotoStmt{Label: label.Lexeme, Sp: join(start.Span, label.Span)}
}

func (p *Parser) parseLabel() ast.Statement {
	start := p.advance() // '::'
	name := p.expect(lexer.IDENTIFIER)
	end := p.expect(lexer.DoubleColon)
	return &ast.LabelStmt{Name: name.Lexeme, Sp: join(start.Span, end.Span)}
}

// parseExpressionOrAssignment resolves the IDENTIFIER-leading
// ambiguity spec.md §4.4.1 describes: a comma-separated list of
// prefix-expressions is either the LHS of an assignment (if `=`
// follows) or, if it is a single call expression, an expression
// statement; anything else is a diagnostic.
func (p *Parser) parseExpressionOrAssignment() ast.Statement {
	start := p.current()
	targets := []ast.Expression{p.parsePrefixExpression()}
	for p.matchToken(lexer.Comma) {
		targets = append(targets, p.parsePrefixExpression())
	}

	if p.check(lexer.Assign) {
		p.advance()
		init := p.parseExpressionList()
		for _, t := range targets {
			if !isAssignable(t) {
				p.diag.Errorf(t.Span(), "parser", "invalid assignment target")
			}
		}
		return &ast.AssignmentStmt{Targets: targets, Init: init, Sp: join(start.Span, init[len(init)-1].Span())}
	}

	if len(targets) == 1 {
		if call, ok := targets[0].(*ast.CallExpr); ok {
			return &ast.ExpressionStmt{X: call, Sp: call.Sp}
		}
	}
	p.diag.Errorf(start.Span, "parser", "expression used as a statement must be a function call")
	return &ast.ExpressionStmt{X: targets[0], Sp: targets[0].Span()}
}

func isAssignable(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.MemberExpr:
		return true
	default:
		return false
	}
}

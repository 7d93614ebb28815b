package printer

import "github.com/OxenFxc/lua-ast-parser/lexer"

// binOp mirrors parser's own operator table (spec.md §4.4.2) so the
// printer can decide parenthesization the same way the parser decided
// binding — this package does not import parser to avoid a needless
// cross-package dependency for a handful of constants.
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

// unaryBindingPrec is level 7: the precedence a unary operator's own
// operand is rendered at.
const unaryBindingPrec = 7

// callPrec is higher than every operator level, so any binary or
// unary expression used as a call/member base or call callee gets
// parenthesized (`(a + b)()`, `(-a).x`) while every already-atomic
// expression form (literal, identifier, call, member, function,
// table) renders unwrapped regardless of parent precedence.
const callPrec = 9

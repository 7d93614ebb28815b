/*
Package printer implements the AST-to-source emitter spec.md §4.5
describes: a depth-first traversal with one exhaustive switch per node
category (no visitor framework, matching the ast package's closed
tagged-variant design, spec.md §9). It is structurally the inverse of
package parser — every construct parser/expressions.go and
parser/statements.go know how to read, this package knows how to
write back out.

Grounded on go-mix's print_visitor.go for the buffer/indent-level
bookkeeping shape (single mutable Printer holding a strings.Builder
and an indent counter); the per-node emission rules themselves target
this dialect's grammar rather than go-mix's own.
*/
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OxenFxc/lua-ast-parser/ast"
	"github.com/OxenFxc/lua-ast-parser/lexer"
)

// QuoteStyle controls how the printer chooses string-literal
// delimiters (spec.md §6's `quote_style` option).
type QuoteStyle int

const (
	QuoteAuto QuoteStyle = iota
	QuoteSingle
	QuoteDouble
)

// Semicolons controls trailing-`;` emission after statements (spec.md
// §6's `semicolons` option).
type Semicolons int

const (
	SemicolonsOmit Semicolons = iota
	SemicolonsInsert
	SemicolonsPreserve
)

// Options controls print formatting, per spec.md §6's `print` options.
type Options struct {
	Indent             string
	MaxLineLength      int // advisory; not enforced as a hard wrap
	QuoteStyle         QuoteStyle
	Semicolons         Semicolons
	InsertFinalNewline bool
}

// DefaultOptions mirrors spec.md §6's stated `print` defaults.
func DefaultOptions() Options {
	return Options{
		Indent:             "  ",
		MaxLineLength:      80,
		QuoteStyle:         QuoteAuto,
		Semicolons:         SemicolonsOmit,
		InsertFinalNewline: true,
	}
}

// Printer holds the emission buffer and current indent depth. It is
// not safe for concurrent use — like every other pipeline stage, one
// instance serves exactly one print() call (spec.md §5).
type Printer struct {
	opts   Options
	buf    strings.Builder
	indent int
}

// New creates a Printer with the given Options.
func New(opts Options) *Printer {
	return &Printer{opts: opts}
}

// Print renders a full Program to source text.
func Print(prog *ast.Program, opts Options) string {
	p := New(opts)
	p.printBlock(prog.Body)
	out := p.buf.String()
	out = strings.TrimSuffix(out, "\n")
	if opts.InsertFinalNewline {
		out += "\n"
	}
	return out
}

func (p *Printer) writeIndent() {
	p.buf.WriteString(strings.Repeat(p.opts.Indent, p.indent))
}

func (p *Printer) line(s string) {
	p.writeIndent()
	p.buf.WriteString(s)
	p.buf.WriteByte('\n')
}

// printBlock emits one statement per line, each preceded by the
// current indent.
func (p *Printer) printBlock(stmts []ast.Statement) {
	for _, s := range stmts {
		p.printStatement(s)
	}
}

func (p *Printer) withIndent(f func()) {
	p.indent++
	f()
	p.indent--
}

// stmtTerminator returns the trailing punctuation a statement gets,
// per the Semicolons option.
func (p *Printer) stmtTerminator(hadExplicitSemi bool) string {
	switch p.opts.Semicolons {
	case SemicolonsInsert:
		return ";"
	case SemicolonsPreserve:
		if hadExplicitSemi {
			return ";"
		}
		return ""
	default:
		return ""
	}
}

func (p *Printer) printStatement(s ast.Statement) {
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		p.line(p.exprString(n.X) + p.stmtTerminator(false))
	case *ast.LocalStmt:
		p.printLocal(n)
	case *ast.AssignmentStmt:
		p.printAssignment(n)
	case *ast.FunctionDeclStmt:
		p.printFunctionDecl(n)
	case *ast.IfStmt:
		p.printIf(n)
	case *ast.WhileStmt:
		p.printWhile(n)
	case *ast.RepeatStmt:
		p.printRepeat(n)
	case *ast.ForNumericStmt:
		p.printForNumeric(n)
	case *ast.ForGenericStmt:
		p.printForGeneric(n)
	case *ast.ReturnStmt:
		p.printReturn(n)
	case *ast.BreakStmt:
		p.line("break" + p.stmtTerminator(false))
	case *ast.DoStmt:
		p.printDo(n)
	case *ast.GotoStmt:
		p.line("goto " + n.Label + p.stmtTerminator(false))
	case *ast.LabelStmt:
		p.line("::" + n.Name + "::")
	default:
		p.line(fmt.Sprintf("--[[ unprintable statement %T ]]", n))
	}
}

func (p *Printer) printLocal(n *ast.LocalStmt) {
	names := identifierList(n.Names)
	if len(n.Init) == 0 {
		p.line("local " + names + p.stmtTerminator(false))
		return
	}
	p.line("local " + names + " = " + exprList(n.Init, p) + p.stmtTerminator(false))
}

func (p *Printer) printAssignment(n *ast.AssignmentStmt) {
	targets := make([]string, len(n.Targets))
	for i, t := range n.Targets {
		targets[i] = p.exprString(t)
	}
	p.line(strings.Join(targets, ", ") + " = " + exprList(n.Init, p) + p.stmtTerminator(false))
}

func identifierList(ids []*ast.Identifier) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.Name
	}
	return strings.Join(parts, ", ")
}

func exprList(exprs []ast.Expression, p *Printer) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = p.exprString(e)
	}
	return strings.Join(parts, ", ")
}

func (p *Printer) printFunctionDecl(n *ast.FunctionDeclStmt) {
	header := "function "
	if n.IsLocal {
		header = "local function "
	}
	header += p.functionNameString(n)
	header += "(" + p.paramListString(n) + ")"
	p.line(header)
	p.withIndent(func() { p.printBlock(n.Body) })
	p.line("end")
}

// functionNameString renders a FunctionDeclStmt's bound name,
// stripping the implicit `self` parameter this package's parser
// prepends for `:`-method declarations back off the printed parameter
// list (it is never user-visible source text).
func (p *Printer) functionNameString(n *ast.FunctionDeclStmt) string {
	if n.IsLocal {
		return n.Name.(*ast.Identifier).Name
	}
	return p.exprStringMethodAware(n.Name)
}

// exprStringMethodAware prints a function-declaration name chain,
// rendering the final `:`-sugared segment with `:` instead of `.`.
func (p *Printer) exprStringMethodAware(e ast.Expression) string {
	if m, ok := e.(*ast.MemberExpr); ok && m.IsMethodCall {
		return p.exprString(m.Base) + ":" + p.exprString(m.Selector)
	}
	return p.exprString(e)
}

func (p *Printer) paramListString(n *ast.FunctionDeclStmt) string {
	params := n.Params
	if n.IsMethod && len(params) > 0 {
		params = params[1:] // drop the implicit `self`
	}
	return paramsString(params, n.Vararg)
}

func paramsString(params []*ast.Identifier, vararg bool) string {
	parts := make([]string, 0, len(params)+1)
	for _, id := range params {
		parts = append(parts, id.Name)
	}
	if vararg {
		parts = append(parts, "...")
	}
	return strings.Join(parts, ", ")
}

func (p *Printer) printIf(n *ast.IfStmt) {
	for i, clause := range n.Clauses {
		switch {
		case i == 0:
			p.line("if " + p.exprString(clause.Cond) + " then")
		case clause.Cond == nil:
			p.line("else")
		default:
			p.line("elseif " + p.exprString(clause.Cond) + " then")
		}
		p.withIndent(func() { p.printBlock(clause.Body) })
	}
	p.line("end")
}

func (p *Printer) printWhile(n *ast.WhileStmt) {
	p.line("while " + p.exprString(n.Cond) + " do")
	p.withIndent(func() { p.printBlock(n.Body) })
	p.line("end")
}

func (p *Printer) printRepeat(n *ast.RepeatStmt) {
	p.line("repeat")
	p.withIndent(func() { p.printBlock(n.Body) })
	p.line("until " + p.exprString(n.Cond))
}

func (p *Printer) printForNumeric(n *ast.ForNumericStmt) {
	header := "for " + n.Var.Name + " = " + p.exprString(n.Start) + ", " + p.exprString(n.Stop)
	if n.Step != nil {
		header += ", " + p.exprString(n.Step)
	}
	p.line(header + " do")
	p.withIndent(func() { p.printBlock(n.Body) })
	p.line("end")
}

func (p *Printer) printForGeneric(n *ast.ForGenericStmt) {
	header := "for " + identifierList(n.Vars) + " in " + exprList(n.Iterators, p) + " do"
	p.line(header)
	p.withIndent(func() { p.printBlock(n.Body) })
	p.line("end")
}

func (p *Printer) printReturn(n *ast.ReturnStmt) {
	if len(n.Args) == 0 {
		p.line("return" + p.stmtTerminator(false))
		return
	}
	p.line("return " + exprList(n.Args, p) + p.stmtTerminator(false))
}

func (p *Printer) printDo(n *ast.DoStmt) {
	p.line("do")
	p.withIndent(func() { p.printBlock(n.Body) })
	p.line("end")
}

// exprString renders an expression with no enclosing-precedence
// context, used at statement/argument/field top level where no
// parenthesization decision is needed.
func (p *Printer) exprString(e ast.Expression) string {
	return p.exprPrec(e, 0, false)
}

// exprPrec renders e as it appears in a position requiring at least
// parentPrec precedence; nonAssocSide additionally requests parentheses
// on an equal-precedence non-associative placement (spec.md §4.5:
// "child needs parentheses iff child_prec < parent_prec, or equal and
// the child sits on the non-associative side").
func (p *Printer) exprPrec(e ast.Expression, parentPrec int, nonAssocSide bool) string {
	switch n := e.(type) {
	case *ast.Literal:
		return p.literalString(n)
	case *ast.Identifier:
		return identifierString(n.Name)
	case *ast.BinaryExpr:
		return p.binaryString(n, parentPrec, nonAssocSide)
	case *ast.UnaryExpr:
		s := p.unaryString(n)
		if unaryBindingPrec < parentPrec || (unaryBindingPrec == parentPrec && nonAssocSide) {
			return "(" + s + ")"
		}
		return s
	case *ast.FunctionExpr:
		return p.functionExprString(n)
	case *ast.CallExpr:
		return p.callString(n)
	case *ast.MemberExpr:
		return p.memberString(n)
	case *ast.TableConstructorExpr:
		return p.tableString(n)
	default:
		return fmt.Sprintf("--[[ unprintable expression %T ]]", n)
	}
}

// identifierString escapes a name that collides with a reserved word
// or is not a valid bare identifier, per spec.md §4.5. This dialect's
// identifiers are always lexer-valid by construction, so the escape
// path only guards against a reserved-word collision.
func identifierString(name string) string {
	if _, reserved := lexer.Keywords[name]; reserved {
		return `["` + name + `"]`
	}
	return name
}

func (p *Printer) literalString(n *ast.Literal) string {
	switch n.LitKind {
	case ast.LitNil:
		return "nil"
	case ast.LitBool:
		return n.Raw
	case ast.LitInt, ast.LitFloat:
		return n.Raw
	case ast.LitString:
		return p.quoteString(n.Value)
	default:
		return n.Raw
	}
}

// quoteString picks a delimiter per spec.md §4.5: single-quote
// preferred; double-quote if the string contains a single quote and no
// double quote; a long-bracket form (minimum equals-count so the body
// never contains a matching closer) if it contains newlines. A string
// holding both quote characters stays in the chosen quotes with the
// matching quote escaped. QuoteStyle
// overrides the quote-character choice but never forces quoting over
// the long-bracket escape hatch for embedded newlines.
func (p *Printer) quoteString(s string) string {
	if strings.Contains(s, "\n") {
		return longBracketQuote(s)
	}
	hasSingle := strings.Contains(s, "'")
	hasDouble := strings.Contains(s, "\"")

	quote := byte('\'')
	switch p.opts.QuoteStyle {
	case QuoteDouble:
		quote = '"'
	case QuoteSingle:
		quote = '\''
	default:
		if hasSingle && !hasDouble {
			quote = '"'
		}
	}
	return quotedEscape(s, quote)
}

func quotedEscape(s string, quote byte) string {
	var b strings.Builder
	b.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == quote:
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20 || c == 0x7f:
			b.WriteString(`\` + strconv.Itoa(int(c)))
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

// longBracketQuote wraps s in the lowest-level long bracket whose body
// cannot be confused with a closing bracket, per spec.md §4.5.
func longBracketQuote(s string) string {
	level := 0
	for {
		closer := "]" + strings.Repeat("=", level) + "]"
		if !strings.Contains(s, closer) {
			break
		}
		level++
	}
	eq := strings.Repeat("=", level)
	return "[" + eq + "[\n" + s + "]" + eq + "]"
}

func (p *Printer) binaryString(n *ast.BinaryExpr, parentPrec int, nonAssocSide bool) string {
	op, ok := binaryOps[n.Op]
	if !ok {
		op = binOp{prec: 0, rightAssc: false}
	}
	// The non-associative side is the one where an equal-precedence
	// child would change meaning if printed unparenthesized: the right
	// operand for a left-associative operator, the left operand for a
	// right-associative one (spec.md §4.5).
	leftPrec, rightPrec := op.prec, op.prec
	leftNonAssoc, rightNonAssoc := false, true
	if op.rightAssc {
		leftNonAssoc, rightNonAssoc = true, false
	}
	s := p.exprPrec(n.Left, leftPrec, leftNonAssoc) + " " + n.Op.String() + " " + p.exprPrec(n.Right, rightPrec, rightNonAssoc)
	if op.prec < parentPrec || (op.prec == parentPrec && nonAssocSide) {
		return "(" + s + ")"
	}
	return s
}

// unaryString prints an operator then a space, except `#` which never
// takes one (spec.md §4.5). Unary minus keeps its space even though
// that reads looser than conventional Lua output: printing it bare
// would let `-(-x)` round-trip as "--x", which the lexer would read
// back as a line comment instead of two unary minuses.
func (p *Printer) unaryString(n *ast.UnaryExpr) string {
	operand := p.exprPrec(n.X, unaryBindingPrec, false)
	switch n.Op {
	case lexer.KwNot:
		return "not " + operand
	case lexer.Hash:
		return "#" + operand
	default:
		return "- " + operand
	}
}

func (p *Printer) functionExprString(n *ast.FunctionExpr) string {
	var b strings.Builder
	b.WriteString("function(")
	b.WriteString(paramsString(n.Params, n.Vararg))
	b.WriteString(")\n")
	inner := New(p.opts)
	inner.indent = p.indent + 1
	inner.printBlock(n.Body)
	b.WriteString(inner.buf.String())
	b.WriteString(strings.Repeat(p.opts.Indent, p.indent))
	b.WriteString("end")
	return b.String()
}

func (p *Printer) callString(n *ast.CallExpr) string {
	callee := p.exprPrec(n.Callee, callPrec, false)
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = p.exprString(a)
	}
	return callee + "(" + strings.Join(args, ", ") + ")"
}

func (p *Printer) memberString(n *ast.MemberExpr) string {
	base := p.exprPrec(n.Base, callPrec, false)
	if n.Computed {
		return base + "[" + p.exprString(n.Selector) + "]"
	}
	sep := "."
	if n.IsMethodCall {
		sep = ":"
	}
	return base + sep + p.exprString(n.Selector)
}

func (p *Printer) tableString(n *ast.TableConstructorExpr) string {
	if len(n.Fields) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	inner := New(p.opts)
	inner.indent = p.indent + 1
	for _, f := range n.Fields {
		inner.writeIndent()
		inner.buf.WriteString(inner.tableFieldString(f))
		inner.buf.WriteString(",\n")
	}
	b.WriteString(inner.buf.String())
	b.WriteString(strings.Repeat(p.opts.Indent, p.indent))
	b.WriteString("}")
	return b.String()
}

func (p *Printer) tableFieldString(f ast.TableField) string {
	switch n := f.(type) {
	case ast.ArrayField:
		return p.exprString(n.Value)
	case ast.NamedField:
		return identifierString(n.Key.Name) + " = " + p.exprString(n.Value)
	case ast.ComputedField:
		return "[" + p.exprString(n.Key) + "] = " + p.exprString(n.Value)
	default:
		return fmt.Sprintf("--[[ unprintable field %T ]]", n)
	}
}

package ast

import (
	"github.com/OxenFxc/lua-ast-parser/lexer"
	"github.com/OxenFxc/lua-ast-parser/pos"
)

// LitKind distinguishes the literal forms spec.md §3.3 lists.
type LitKind int

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitBool
	LitNil
)

// Literal is a literal value. Raw preserves the exact source lexeme
// for round-trip (spec.md §3.3); for numbers this is the undecoded
// numeral text (integer-vs-float resolution happens in the evaluator,
// per SPEC_FULL.md §3), for booleans "true"/"false", for nil "nil".
// Value holds the already-decoded payload for strings only (escapes
// processed by the scanner); it is unused for the other kinds.
type Literal struct {
	LitKind LitKind
	Raw     string
	Value   string
	Sp      pos.Span
}

func (e *Literal) Kind() Kind      { return KLiteral }
func (e *Literal) Span() pos.Span  { return e.Sp }
func (e *Literal) expressionNode() {}

// Identifier is a bare name reference.
type Identifier struct {
	Name string
	Sp   pos.Span
}

func (e *Identifier) Kind() Kind      { return KIdentifier }
func (e *Identifier) Span() pos.Span  { return e.Sp }
func (e *Identifier) expressionNode() {}

// BinaryExpr is a two-operand operator application. Op is the
// lexer.Kind of the operator token (one of the level 1–6, 8 operators
// in spec.md §4.4.2's precedence table).
type BinaryExpr struct {
	Op    lexer.Kind
	Left  Expression
	Right Expression
	Sp    pos.Span
}

func (e *BinaryExpr) Kind() Kind      { return KBinary }
func (e *BinaryExpr) Span() pos.Span  { return e.Sp }
func (e *BinaryExpr) expressionNode() {}

// UnaryExpr is a prefix operator application (`not`, `-`, `#`).
type UnaryExpr struct {
	Op lexer.Kind
	X  Expression
	Sp pos.Span
}

func (e *UnaryExpr) Kind() Kind      { return KUnary }
func (e *UnaryExpr) Span() pos.Span  { return e.Sp }
func (e *UnaryExpr) expressionNode() {}

// FunctionExpr is an anonymous function literal.
type FunctionExpr struct {
	Params []*Identifier
	Vararg bool
	Body   []Statement
	Sp     pos.Span
}

func (e *FunctionExpr) Kind() Kind      { return KFunction }
func (e *FunctionExpr) Span() pos.Span  { return e.Sp }
func (e *FunctionExpr) expressionNode() {}

// CallExpr invokes Callee with Args. IsMethod records that this call
// originated from `base:name(args)` sugar — Callee is then a Member
// with IsMethodCall set, and the evaluator (not the AST) supplies the
// implicit leading `self` argument at call time (spec.md §4.6), so
// Args here holds exactly the user-written arguments.
type CallExpr struct {
	Callee   Expression
	Args     []Expression
	IsMethod bool
	Sp       pos.Span
}

func (e *CallExpr) Kind() Kind      { return KCall }
func (e *CallExpr) Span() pos.Span  { return e.Sp }
func (e *CallExpr) expressionNode() {}

// MemberExpr is `Base.Selector`, `Base[Selector]`, or (sugar)
// `Base:Selector`. Computed is true only for the bracketed form.
// IsMethodCall marks the `:` form, used by the printer to choose `:`
// over `.` and by the evaluator to know a leading `self` argument is
// owed when this Member is a CallExpr's Callee.
type MemberExpr struct {
	Base         Expression
	Selector     Expression // *Identifier unless Computed
	Computed     bool
	IsMethodCall bool
	Sp           pos.Span
}

func (e *MemberExpr) Kind() Kind      { return KMember }
func (e *MemberExpr) Span() pos.Span  { return e.Sp }
func (e *MemberExpr) expressionNode() {}

// TableField is implemented by ArrayField, NamedField, and
// ComputedField — the three table-constructor entry shapes spec.md
// §3.3 lists.
type TableField interface {
	fieldNode()
}

// ArrayField is a positional table entry (`{v}`); sequential entries
// take sequential integer keys starting at 1 (spec.md §4.6).
type ArrayField struct {
	Value Expression
}

func (ArrayField) fieldNode() {}

// NamedField is `{name = v}`.
type NamedField struct {
	Key   *Identifier
	Value Expression
}

func (NamedField) fieldNode() {}

// ComputedField is `{[k] = v}`.
type ComputedField struct {
	Key   Expression
	Value Expression
}

func (ComputedField) fieldNode() {}

// TableConstructorExpr builds a table from an ordered field list.
type TableConstructorExpr struct {
	Fields []TableField
	Sp     pos.Span
}

func (e *TableConstructorExpr) Kind() Kind      { return KTableConstructor }
func (e *TableConstructorExpr) Span() pos.Span  { return e.Sp }
func (e *TableConstructorExpr) expressionNode() {}

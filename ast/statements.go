package ast

import "github.com/OxenFxc/lua-ast-parser/pos"

// ExpressionStmt wraps an expression used for its effect (spec.md
// §3.3) — typically a call.
type ExpressionStmt struct {
	X  Expression
	Sp pos.Span
}

func (s *ExpressionStmt) Kind() Kind     { return KExpressionStmt }
func (s *ExpressionStmt) Span() pos.Span { return s.Sp }
func (s *ExpressionStmt) statementNode() {}

// LocalStmt declares local variables. Init may be shorter, longer, or
// absent relative to Names (spec.md §3.3 / Open Question, resolved in
// SPEC_FULL.md §9: permitted, with nil-extension or truncation).
type LocalStmt struct {
	Names []*Identifier
	Init  []Expression
	Sp    pos.Span
}

func (s *LocalStmt) Kind() Kind     { return KLocalStmt }
func (s *LocalStmt) Span() pos.Span { return s.Sp }
func (s *LocalStmt) statementNode() {}

// AssignmentStmt assigns to one or more existing bindings. Targets are
// restricted by the parser to Identifier or Member expressions
// (spec.md §3.3 invariant).
type AssignmentStmt struct {
	Targets []Expression
	Init    []Expression
	Sp      pos.Span
}

func (s *AssignmentStmt) Kind() Kind     { return KAssignmentStmt }
func (s *AssignmentStmt) Span() pos.Span { return s.Sp }
func (s *AssignmentStmt) statementNode() {}

// FunctionDeclStmt declares a function, either as a local binding
// (`local function f(...) ... end`) or bound to a (possibly dotted)
// name (`function a.b.c(...) ... end`). IsMethod marks a `function
// a:m(...)` declaration, which implicitly binds a `self` parameter.
type FunctionDeclStmt struct {
	Name     Expression // *Identifier, or a *Member chain
	Params   []*Identifier
	Vararg   bool
	Body     []Statement
	IsLocal  bool
	IsMethod bool
	Sp       pos.Span
}

func (s *FunctionDeclStmt) Kind() Kind     { return KFunctionDeclStmt }
func (s *FunctionDeclStmt) Span() pos.Span { return s.Sp }
func (s *FunctionDeclStmt) statementNode() {}

// IfClause is one arm of an IfStmt: Cond is nil for a trailing `else`
// clause.
type IfClause struct {
	Cond Expression
	Body []Statement
}

// IfStmt holds an `if`, zero or more `elseif`, and an optional trailing
// `else` clause. Clauses is non-empty (spec.md §3.3 invariant).
type IfStmt struct {
	Clauses []IfClause
	Sp      pos.Span
}

func (s *IfStmt) Kind() Kind     { return KIfStmt }
func (s *IfStmt) Span() pos.Span { return s.Sp }
func (s *IfStmt) statementNode() {}

// WhileStmt is `while Cond do Body end`.
type WhileStmt struct {
	Cond Expression
	Body []Statement
	Sp   pos.Span
}

func (s *WhileStmt) Kind() Kind     { return KWhileStmt }
func (s *WhileStmt) Span() pos.Span { return s.Sp }
func (s *WhileStmt) statementNode() {}

// RepeatStmt is `repeat Body until Cond`; Cond's scope includes
// Body's locals (spec.md §4.4.1 note).
type RepeatStmt struct {
	Body []Statement
	Cond Expression
	Sp   pos.Span
}

func (s *RepeatStmt) Kind() Kind     { return KRepeatStmt }
func (s *RepeatStmt) Span() pos.Span { return s.Sp }
func (s *RepeatStmt) statementNode() {}

// ForNumericStmt is `for Var = Start, Stop[, Step] do Body end`. Step
// is nil when omitted (defaults to 1 at evaluation time).
type ForNumericStmt struct {
	Var   *Identifier
	Start Expression
	Stop  Expression
	Step  Expression
	Body  []Statement
	Sp    pos.Span
}

func (s *ForNumericStmt) Kind() Kind     { return KForNumericStmt }
func (s *ForNumericStmt) Span() pos.Span { return s.Sp }
func (s *ForNumericStmt) statementNode() {}

// ForGenericStmt is `for Vars in Iterators do Body end`, consuming the
// iterator-protocol triple (iterator function, state, control).
type ForGenericStmt struct {
	Vars      []*Identifier
	Iterators []Expression
	Body      []Statement
	Sp        pos.Span
}

func (s *ForGenericStmt) Kind() Kind     { return KForGenericStmt }
func (s *ForGenericStmt) Span() pos.Span { return s.Sp }
func (s *ForGenericStmt) statementNode() {}

// ReturnStmt may appear at any statement position in this dialect
// (spec.md §4.4.1 / Open Question, resolved: permitted anywhere).
type ReturnStmt struct {
	Args []Expression
	Sp   pos.Span
}

func (s *ReturnStmt) Kind() Kind     { return KReturnStmt }
func (s *ReturnStmt) Span() pos.Span { return s.Sp }
func (s *ReturnStmt) statementNode() {}

// BreakStmt unwinds to the innermost enclosing loop.
type BreakStmt struct {
	Sp pos.Span
}

func (s *BreakStmt) Kind() Kind     { return KBreakStmt }
func (s *BreakStmt) Span() pos.Span { return s.Sp }
func (s *BreakStmt) statementNode() {}

// DoStmt introduces a fresh block scope with no other control-flow
// effect.
type DoStmt struct {
	Body []Statement
	Sp   pos.Span
}

func (s *DoStmt) Kind() Kind     { return KDoStmt }
func (s *DoStmt) Span() pos.Span { return s.Sp }
func (s *DoStmt) statementNode() {}

// GotoStmt transfers control to a matching LabelStmt within the same
// function body.
type GotoStmt struct {
	Label string
	Sp    pos.Span
}

func (s *GotoStmt) Kind() Kind     { return KGotoStmt }
func (s *GotoStmt) Span() pos.Span { return s.Sp }
func (s *GotoStmt) statementNode() {}

// LabelStmt declares a `::name::` goto target.
type LabelStmt struct {
	Name string
	Sp   pos.Span
}

func (s *LabelStmt) Kind() Kind     { return KLabelStmt }
func (s *LabelStmt) Span() pos.Span { return s.Sp }
func (s *LabelStmt) statementNode() {}

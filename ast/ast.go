/*
Package ast defines the closed tagged-variant AST spec.md §3.3
describes. Every node type is a plain struct implementing Node; there
is no visitor/double-dispatch framework (spec.md §9 explicitly calls
that out as not load-bearing) — printer and evaluator each hold one
type switch over the concrete node types instead.
*/
package ast

import "github.com/OxenFxc/lua-ast-parser/pos"

// Kind tags every AST node with its concrete shape.
type Kind int

const (
	KProgram Kind = iota

	// Statements
	KExpressionStmt
	KLocalStmt
	KAssignmentStmt
	KFunctionDeclStmt
	KIfStmt
	KWhileStmt
	KRepeatStmt
	KForNumericStmt
	KForGenericStmt
	KReturnStmt
	KBreakStmt
	KDoStmt
	KGotoStmt
	KLabelStmt

	// Expressions
	KLiteral
	KIdentifier
	KBinary
	KUnary
	KFunction
	KCall
	KMember
	KTableConstructor
)

// Node is implemented by every AST node: a Kind tag and a source Span.
type Node interface {
	Kind() Kind
	Span() pos.Span
}

// Statement is implemented by every statement node.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression node.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: an ordered sequence of statements.
type Program struct {
	Body []Statement
	Sp   pos.Span
}

func (p *Program) Kind() Kind     { return KProgram }
func (p *Program) Span() pos.Span { return p.Sp }

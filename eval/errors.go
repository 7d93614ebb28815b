package eval

import (
	"fmt"

	"github.com/OxenFxc/lua-ast-parser/pos"
)

// Kind tags a RuntimeError the way spec.md §7's SemanticError taxonomy
// lists, so callers (and `pcall`) can branch on failure category
// without parsing the message.
type Kind string

const (
	TypeMismatch        Kind = "TypeMismatch"
	CallOnNonCallable   Kind = "CallOnNonCallable"
	IndexOnNonIndexable Kind = "IndexOnNonIndexable"
	UndefinedVariable   Kind = "UndefinedVariable"
	DivisionByZero      Kind = "DivisionByZero"
	StepOfZero          Kind = "StepOfZero"
	MetatableCycle      Kind = "MetatableCycle"
	GotoUnresolved      Kind = "GotoUnresolved"
	UserError           Kind = "UserError" // raised via the `error` builtin
)

// RuntimeError is a SemanticError (spec.md §7): a dedicated evaluator
// fault carrying the offending node's span and, as it unwinds through
// nested calls, a trail of call-site spans (the "stack of call spans"
// §7 says user-visible failures optionally carry).
type RuntimeError struct {
	EvalKind Kind
	Message  string
	Span     pos.Span
	// Value is the raw value passed to the `error` builtin, which need
	// not be a string — pcall must hand it back verbatim.
	Value any
	Stack []pos.Span
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.EvalKind, e.Message)
}

func newError(kind Kind, span pos.Span, format string, args ...any) *RuntimeError {
	return &RuntimeError{EvalKind: kind, Message: fmt.Sprintf(format, args...), Span: span}
}

// BudgetKind distinguishes the two resource-exhaustion faults spec.md
// §5/§7 name.
type BudgetKind string

const (
	StepsExhausted BudgetKind = "StepsExhausted"
	DepthExhausted BudgetKind = "DepthExhausted"
)

// BudgetError aborts the run when `max_steps` or `max_call_depth` is
// exceeded — a distinct family from RuntimeError because a budget
// breach is a host-imposed cancellation, not a fault in the program
// being evaluated, and `pcall` does not catch it (SPEC_FULL.md §4.6).
type BudgetError struct {
	BudgetKind BudgetKind
	Limit      int
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("%s: limit %d exceeded", e.BudgetKind, e.Limit)
}

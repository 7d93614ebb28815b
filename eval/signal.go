package eval

import "github.com/OxenFxc/lua-ast-parser/value"

// sigKind is one of the three control signals spec.md §4.6 says
// statement execution may produce, plus sigNone for ordinary
// fall-through.
type sigKind int

const (
	sigNone sigKind = iota
	sigReturn
	sigBreak
	sigGoto
)

// signal carries a control-flow effect up through nested block
// execution until a handling statement intercepts it: a function call
// intercepts sigReturn, a loop intercepts sigBreak, and an enclosing
// block intercepts sigGoto if one of its own statements is the
// matching label (eval.go's execBlock).
type signal struct {
	kind   sigKind
	values []value.Value // sigReturn's result list
	label  string         // sigGoto's target
}

var noSignal = signal{kind: sigNone}

package value

import "github.com/OxenFxc/lua-ast-parser/ast"

// Closure is a user-defined function value: its parameter list, body,
// and the Environment it was defined in (captured by reference, so
// mutations to captured locals are visible across every closure
// sharing them — spec.md §4.6's closure-capture semantics). Grounded
// on go-mix's function.Function, trimmed to what this dialect's
// evaluator needs to call it (no separate bytecode/arity metadata).
type Closure struct {
	Name    string
	Params  []*ast.Identifier
	Vararg  bool
	Body    []ast.Statement
	Env     *Environment
}

// NativeFunc is a builtin implemented in Go (print, type, pcall, ...).
// Its Fn receives already-evaluated arguments and returns the callee's
// result list (possibly empty, for multi-return/void builtins) or an
// error for an unrecoverable failure (one pcall itself will catch).
type NativeFunc struct {
	Name string
	Fn   func(args []Value) ([]Value, error)
}

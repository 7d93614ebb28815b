/*
Package eval implements the tree-walking evaluator spec.md §4.6
describes. Grounded on go-mix's interpreter package for the overall
statement/expression dispatch shape (a single exhaustive switch per
node kind, no visitor indirection) and on go-mix's control-flow
handling for the signal-propagation pattern, generalized from go-mix's
single-value expression model to this dialect's multi-value call and
vararg semantics.
*/
package eval

import (
	"github.com/OxenFxc/lua-ast-parser/ast"
	"github.com/OxenFxc/lua-ast-parser/diag"
	"github.com/OxenFxc/lua-ast-parser/value"
	"github.com/sirupsen/logrus"
)

// Options mirrors spec.md §6's `evaluate` option schema.
type Options struct {
	MaxSteps     int // 0 = unlimited
	MaxCallDepth int // 0 = use DefaultMaxCallDepth
	Strict       bool
}

// DefaultMaxCallDepth bounds recursion when the caller leaves
// MaxCallDepth unset, so a runaway script fails with a clean
// BudgetError instead of exhausting the Go goroutine stack.
const DefaultMaxCallDepth = 200

func DefaultOptions() Options {
	return Options{MaxCallDepth: DefaultMaxCallDepth}
}

// Interpreter holds the evaluation state spec.md §4.6 lists:
// global_env, current_env (threaded as a parameter rather than a
// field, since it changes per block/call without the interpreter
// itself needing to track a stack), a call-depth counter, and the
// step/depth budget options.
type Interpreter struct {
	Global    *value.Environment
	diag      *diag.Collector
	opts      Options
	steps     int
	callDepth int
	log       *logrus.Entry
}

// New constructs an Interpreter with a fresh global environment
// populated with the builtin surface (builtins.go).
func New(d *diag.Collector, opts Options) *Interpreter {
	if opts.MaxCallDepth == 0 {
		opts.MaxCallDepth = DefaultMaxCallDepth
	}
	it := &Interpreter{
		Global: value.NewEnvironment(nil),
		diag:   d,
		opts:   opts,
		log:    logrus.WithField("component", "eval"),
	}
	registerBuiltins(it)
	return it
}

// Run evaluates prog's top-level statements in the global environment
// and returns any values passed to a top-level `return`.
func (it *Interpreter) Run(prog *ast.Program) (results []value.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if be, ok := r.(*BudgetError); ok {
				err = be
				return
			}
			panic(r)
		}
	}()
	sig, rerr := it.execBlock(prog.Body, it.Global)
	if rerr != nil {
		return nil, rerr
	}
	if sig.kind == sigReturn {
		return sig.values, nil
	}
	return nil, nil
}

// execBlock runs stmts in order within env, handling forward/backward
// `goto` to any label declared directly in this same statement list
// (spec.md §4.6: "enclosing blocks handle Goto by scanning
// forward/backward to a matching Label") and propagating any other
// signal (sigReturn, sigBreak, or a sigGoto whose label isn't here) to
// the caller.
func (it *Interpreter) execBlock(stmts []ast.Statement, env *value.Environment) (signal, error) {
	for i := 0; i < len(stmts); i++ {
		sig, err := it.execStmt(stmts[i], env)
		if err != nil {
			return noSignal, err
		}
		if sig.kind == sigGoto {
			if idx := findLabel(stmts, sig.label); idx >= 0 {
				i = idx
				continue
			}
			return sig, nil
		}
		if sig.kind != sigNone {
			return sig, nil
		}
	}
	return noSignal, nil
}

func findLabel(stmts []ast.Statement, label string) int {
	for i, s := range stmts {
		if l, ok := s.(*ast.LabelStmt); ok && l.Name == label {
			return i
		}
	}
	return -1
}

// step charges one statement against the `max_steps` budget, raising
// a BudgetError (via panic, unwound by Run's recover) the instant it
// is exhausted — matching spec.md §5's "breaching either aborts the
// run with a dedicated error" rather than letting the evaluator limp
// along for one more statement.
func (it *Interpreter) step() {
	if it.opts.MaxSteps <= 0 {
		return
	}
	it.steps++
	if it.steps > it.opts.MaxSteps {
		panic(&BudgetError{BudgetKind: StepsExhausted, Limit: it.opts.MaxSteps})
	}
}

// enterCall charges one level against `max_call_depth`, called once
// per user-closure invocation (call.go); leaveCall must be deferred by
// the caller to release it.
func (it *Interpreter) enterCall() {
	it.callDepth++
	if it.callDepth > it.opts.MaxCallDepth {
		panic(&BudgetError{BudgetKind: DepthExhausted, Limit: it.opts.MaxCallDepth})
	}
}

func (it *Interpreter) leaveCall() {
	it.callDepth--
}

package eval

import (
	"github.com/OxenFxc/lua-ast-parser/ast"
	"github.com/OxenFxc/lua-ast-parser/pos"
	"github.com/OxenFxc/lua-ast-parser/value"
)

// evalCall implements spec.md §4.6's call semantics, including the
// method-call sugar rule: "`obj:m(a,b)` evaluates `obj` once, looks up
// `m` via Member, then calls with arguments `(obj, a, b)`." The
// receiver is evaluated exactly once here regardless of IsMethod, so
// a side-effecting `obj` expression (e.g. a call) never re-runs.
func (it *Interpreter) evalCall(n *ast.CallExpr, env *value.Environment) ([]value.Value, error) {
	var callee value.Value
	var leadingArgs []value.Value

	if n.IsMethod {
		member := n.Callee.(*ast.MemberExpr)
		recv, err := it.evalExpr(member.Base, env)
		if err != nil {
			return nil, err
		}
		key, err := it.memberKey(member, env)
		if err != nil {
			return nil, err
		}
		callee, err = it.index(recv, key, member.Sp)
		if err != nil {
			return nil, err
		}
		leadingArgs = []value.Value{recv}
	} else {
		var err error
		callee, err = it.evalExpr(n.Callee, env)
		if err != nil {
			return nil, err
		}
	}

	args, err := it.evalExprList(n.Args, env)
	if err != nil {
		return nil, err
	}
	if len(leadingArgs) > 0 {
		args = append(leadingArgs, args...)
	}
	return it.call(callee, args, n.Sp)
}

// call dispatches to a NativeFunc or a user Closure; anything else is
// a CallOnNonCallable fault.
func (it *Interpreter) call(callee value.Value, args []value.Value, sp pos.Span) ([]value.Value, error) {
	switch fn := callee.(type) {
	case *value.NativeFunc:
		return fn.Fn(args)
	case *value.Closure:
		return it.callClosure(fn, args, sp)
	default:
		return nil, newError(CallOnNonCallable, sp, "attempt to call a %s value", value.TypeName(callee))
	}
}

// callClosure allocates a fresh environment parented on the closure's
// CAPTURED environment (not the caller's — spec.md §4.6), binds
// parameters positionally (missing ⇒ nil, extra discarded unless
// vararg), executes the body, and converts a sigReturn into its result
// list (no sigReturn ⇒ no return values).
func (it *Interpreter) callClosure(fn *value.Closure, args []value.Value, sp pos.Span) ([]value.Value, error) {
	it.enterCall()
	defer it.leaveCall()

	callEnv := value.NewEnvironment(fn.Env)
	for i, p := range fn.Params {
		var v value.Value
		if i < len(args) {
			v = args[i]
		}
		callEnv.Define(p.Name, v)
	}
	if fn.Vararg {
		extra := []value.Value{}
		if len(args) > len(fn.Params) {
			extra = append(extra, args[len(fn.Params):]...)
		}
		callEnv.Define("...", extra)
	}

	sig, err := it.execBlock(fn.Body, callEnv)
	if err != nil {
		if re, ok := err.(*RuntimeError); ok {
			re.Stack = append(re.Stack, sp)
		}
		return nil, err
	}
	if sig.kind == sigGoto {
		return nil, newError(GotoUnresolved, sp, "no visible label %q for goto", sig.label)
	}
	if sig.kind == sigReturn {
		return sig.values, nil
	}
	return nil, nil
}

// evalTableConstructor implements spec.md §4.6's table-construction
// rule: fields evaluate left-to-right; array-position fields take
// sequential integer keys starting at 1, and a trailing array field's
// multi-return expands (matching the same final-position-expands rule
// as call arguments and return lists).
func (it *Interpreter) evalTableConstructor(n *ast.TableConstructorExpr, env *value.Environment) (value.Value, error) {
	tbl := value.NewTable()
	arrayIndex := int64(1)
	for i, f := range n.Fields {
		switch field := f.(type) {
		case ast.ArrayField:
			if i == len(n.Fields)-1 {
				vals, err := it.evalMulti(field.Value, env)
				if err != nil {
					return nil, err
				}
				for _, v := range vals {
					tbl.RawSet(arrayIndex, v)
					arrayIndex++
				}
				continue
			}
			v, err := it.evalExpr(field.Value, env)
			if err != nil {
				return nil, err
			}
			tbl.RawSet(arrayIndex, v)
			arrayIndex++

		case ast.NamedField:
			v, err := it.evalExpr(field.Value, env)
			if err != nil {
				return nil, err
			}
			tbl.RawSet(field.Key.Name, v)

		case ast.ComputedField:
			key, err := it.evalExpr(field.Key, env)
			if err != nil {
				return nil, err
			}
			v, err := it.evalExpr(field.Value, env)
			if err != nil {
				return nil, err
			}
			if err := tbl.RawSet(key, v); err != nil {
				return nil, newError(TypeMismatch, field.Value.Span(), "%v", err)
			}
		}
	}
	return tbl, nil
}

package eval

import (
	"github.com/OxenFxc/lua-ast-parser/ast"
	"github.com/OxenFxc/lua-ast-parser/value"
)

// execStmt executes one statement, returning whatever control signal
// it produces (spec.md §4.6: "Statement execution returns either a
// plain value, nil, or a control signal").
func (it *Interpreter) execStmt(s ast.Statement, env *value.Environment) (signal, error) {
	it.step()
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		_, err := it.evalMulti(n.X, env)
		return noSignal, err

	case *ast.LocalStmt:
		return noSignal, it.execLocal(n, env)

	case *ast.AssignmentStmt:
		return noSignal, it.execAssignment(n, env)

	case *ast.FunctionDeclStmt:
		return noSignal, it.execFunctionDecl(n, env)

	case *ast.IfStmt:
		return it.execIf(n, env)

	case *ast.WhileStmt:
		return it.execWhile(n, env)

	case *ast.RepeatStmt:
		return it.execRepeat(n, env)

	case *ast.ForNumericStmt:
		return it.execForNumeric(n, env)

	case *ast.ForGenericStmt:
		return it.execForGeneric(n, env)

	case *ast.ReturnStmt:
		vals, err := it.evalExprList(n.Args, env)
		if err != nil {
			return noSignal, err
		}
		return signal{kind: sigReturn, values: vals}, nil

	case *ast.BreakStmt:
		return signal{kind: sigBreak}, nil

	case *ast.DoStmt:
		return it.execBlock(n.Body, value.NewEnvironment(env))

	case *ast.GotoStmt:
		return signal{kind: sigGoto, label: n.Label}, nil

	case *ast.LabelStmt:
		return noSignal, nil

	default:
		return noSignal, newError(TypeMismatch, s.Span(), "unhandled statement kind %T", s)
	}
}

func (it *Interpreter) execLocal(n *ast.LocalStmt, env *value.Environment) error {
	vals, err := it.evalExprList(n.Init, env)
	if err != nil {
		return err
	}
	for i, name := range n.Names {
		var v value.Value
		if i < len(vals) {
			v = vals[i]
		}
		env.Define(name.Name, v)
	}
	return nil
}

// execAssignment evaluates every target's "container" left-to-right
// before writing, matching spec.md §5's left-to-right ordering
// guarantee; a Member target re-evaluates its Base/Selector once, up
// front, rather than at write time.
func (it *Interpreter) execAssignment(n *ast.AssignmentStmt, env *value.Environment) error {
	type target struct {
		name   string  // set for an Identifier target
		table  *value.Table
		key    value.Value
		member bool
	}
	targets := make([]target, len(n.Targets))
	for i, texpr := range n.Targets {
		switch t := texpr.(type) {
		case *ast.Identifier:
			targets[i] = target{name: t.Name}
		case *ast.MemberExpr:
			base, err := it.evalExpr(t.Base, env)
			if err != nil {
				return err
			}
			tbl, ok := base.(*value.Table)
			if !ok {
				return newError(IndexOnNonIndexable, t.Span(), "cannot index a %s value", value.TypeName(base))
			}
			key, err := it.memberKey(t, env)
			if err != nil {
				return err
			}
			targets[i] = target{table: tbl, key: key, member: true}
		default:
			return newError(TypeMismatch, texpr.Span(), "invalid assignment target")
		}
	}
	vals, err := it.evalExprList(n.Init, env)
	if err != nil {
		return err
	}
	for i, tg := range targets {
		var v value.Value
		if i < len(vals) {
			v = vals[i]
		}
		if tg.member {
			if err := tg.table.RawSet(tg.key, v); err != nil {
				return newError(TypeMismatch, n.Sp, "%v", err)
			}
			continue
		}
		if !env.Assign(tg.name, v) {
			env.Global().Define(tg.name, v)
		}
	}
	return nil
}

func (it *Interpreter) execFunctionDecl(n *ast.FunctionDeclStmt, env *value.Environment) error {
	fn := &value.Closure{Params: n.Params, Vararg: n.Vararg, Body: n.Body, Env: env}
	if n.IsLocal {
		id := n.Name.(*ast.Identifier)
		fn.Name = id.Name
		env.Define(id.Name, fn)
		return nil
	}
	switch target := n.Name.(type) {
	case *ast.Identifier:
		fn.Name = target.Name
		if !env.Assign(target.Name, fn) {
			env.Global().Define(target.Name, fn)
		}
		return nil
	case *ast.MemberExpr:
		base, err := it.evalExpr(target.Base, env)
		if err != nil {
			return err
		}
		tbl, ok := base.(*value.Table)
		if !ok {
			return newError(IndexOnNonIndexable, target.Span(), "cannot index a %s value", value.TypeName(base))
		}
		key, err := it.memberKey(target, env)
		if err != nil {
			return err
		}
		fn.Name = value.ToString(key)
		return tbl.RawSet(key, fn)
	default:
		return newError(TypeMismatch, n.Sp, "invalid function declaration target")
	}
}

func (it *Interpreter) execIf(n *ast.IfStmt, env *value.Environment) (signal, error) {
	for _, clause := range n.Clauses {
		if clause.Cond == nil { // trailing else
			return it.execBlock(clause.Body, value.NewEnvironment(env))
		}
		cond, err := it.evalExpr(clause.Cond, env)
		if err != nil {
			return noSignal, err
		}
		if value.Truthy(cond) {
			return it.execBlock(clause.Body, value.NewEnvironment(env))
		}
	}
	return noSignal, nil
}

func (it *Interpreter) execWhile(n *ast.WhileStmt, env *value.Environment) (signal, error) {
	for {
		cond, err := it.evalExpr(n.Cond, env)
		if err != nil {
			return noSignal, err
		}
		if !value.Truthy(cond) {
			return noSignal, nil
		}
		sig, err := it.execBlock(n.Body, value.NewEnvironment(env))
		if err != nil {
			return noSignal, err
		}
		switch sig.kind {
		case sigBreak:
			return noSignal, nil
		case sigNone:
		default:
			return sig, nil
		}
	}
}

// execRepeat runs the body then checks Cond in the SAME iteration
// environment, so the until-condition can see the body's locals
// (spec.md §4.4.1's documented scoping note).
func (it *Interpreter) execRepeat(n *ast.RepeatStmt, env *value.Environment) (signal, error) {
	for {
		iterEnv := value.NewEnvironment(env)
		sig, err := it.execBlock(n.Body, iterEnv)
		if err != nil {
			return noSignal, err
		}
		switch sig.kind {
		case sigBreak:
			return noSignal, nil
		case sigNone:
		default:
			return sig, nil
		}
		cond, err := it.evalExpr(n.Cond, iterEnv)
		if err != nil {
			return noSignal, err
		}
		if value.Truthy(cond) {
			return noSignal, nil
		}
	}
}

func (it *Interpreter) execForNumeric(n *ast.ForNumericStmt, env *value.Environment) (signal, error) {
	startV, err := it.evalExpr(n.Start, env)
	if err != nil {
		return noSignal, err
	}
	stopV, err := it.evalExpr(n.Stop, env)
	if err != nil {
		return noSignal, err
	}
	var stepV value.Value = int64(1)
	if n.Step != nil {
		stepV, err = it.evalExpr(n.Step, env)
		if err != nil {
			return noSignal, err
		}
	}
	start, ok1 := value.ToFloat(startV)
	stop, ok2 := value.ToFloat(stopV)
	step, ok3 := value.ToFloat(stepV)
	if !ok1 || !ok2 || !ok3 {
		return noSignal, newError(TypeMismatch, n.Sp, "'for' initial value, limit, and step must be numbers")
	}
	if step == 0 {
		return noSignal, newError(StepOfZero, n.Sp, "'for' step is zero")
	}
	_, startInt := startV.(int64)
	_, stopInt := stopV.(int64)
	_, stepInt := stepV.(int64)
	allInt := startInt && stopInt && stepInt

	for i := start; (step > 0 && i <= stop) || (step < 0 && i >= stop); i += step {
		iterEnv := value.NewEnvironment(env)
		var cur value.Value = i
		if allInt {
			cur = int64(i)
		}
		iterEnv.Define(n.Var.Name, cur)
		sig, err := it.execBlock(n.Body, iterEnv)
		if err != nil {
			return noSignal, err
		}
		switch sig.kind {
		case sigBreak:
			return noSignal, nil
		case sigNone:
		default:
			return sig, nil
		}
	}
	return noSignal, nil
}

func (it *Interpreter) execForGeneric(n *ast.ForGenericStmt, env *value.Environment) (signal, error) {
	ctrl, err := it.evalExprList(n.Iterators, env)
	if err != nil {
		return noSignal, err
	}
	var iterFn, state, control value.Value
	if len(ctrl) > 0 {
		iterFn = ctrl[0]
	}
	if len(ctrl) > 1 {
		state = ctrl[1]
	}
	if len(ctrl) > 2 {
		control = ctrl[2]
	}
	for {
		results, err := it.call(iterFn, []value.Value{state, control}, n.Sp)
		if err != nil {
			return noSignal, err
		}
		if len(results) == 0 || results[0] == nil {
			return noSignal, nil
		}
		control = results[0]
		iterEnv := value.NewEnvironment(env)
		for i, v := range n.Vars {
			var val value.Value
			if i < len(results) {
				val = results[i]
			}
			iterEnv.Define(v.Name, val)
		}
		sig, err := it.execBlock(n.Body, iterEnv)
		if err != nil {
			return noSignal, err
		}
		switch sig.kind {
		case sigBreak:
			return noSignal, nil
		case sigNone:
		default:
			return sig, nil
		}
	}
}

package eval

import (
	"github.com/OxenFxc/lua-ast-parser/ast"
	"github.com/OxenFxc/lua-ast-parser/lexer"
	"github.com/OxenFxc/lua-ast-parser/value"
)

// evalExpr evaluates e to a single value, truncating a call or vararg
// expression to its first result (spec.md §4.6: "Call and vararg
// expressions in a non-final position truncate to a single value").
func (it *Interpreter) evalExpr(e ast.Expression, env *value.Environment) (value.Value, error) {
	vals, err := it.evalMulti(e, env)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil
	}
	return vals[0], nil
}

// evalMulti evaluates e to its full result list: more than one value
// only for a CallExpr or the vararg identifier `...`, exactly one
// value for everything else.
func (it *Interpreter) evalMulti(e ast.Expression, env *value.Environment) ([]value.Value, error) {
	switch n := e.(type) {
	case *ast.Literal:
		v, err := it.evalLiteral(n)
		return []value.Value{v}, err

	case *ast.Identifier:
		if n.Name == "..." {
			va, _ := env.Get("...")
			extra, _ := va.([]value.Value)
			return extra, nil
		}
		v, ok := env.Get(n.Name)
		if !ok {
			if it.opts.Strict {
				return nil, newError(UndefinedVariable, n.Sp, "undefined variable %q", n.Name)
			}
			return []value.Value{nil}, nil
		}
		return []value.Value{v}, nil

	case *ast.BinaryExpr:
		v, err := it.evalBinary(n, env)
		return []value.Value{v}, err

	case *ast.UnaryExpr:
		v, err := it.evalUnary(n, env)
		return []value.Value{v}, err

	case *ast.FunctionExpr:
		return []value.Value{&value.Closure{Params: n.Params, Vararg: n.Vararg, Body: n.Body, Env: env}}, nil

	case *ast.CallExpr:
		return it.evalCall(n, env)

	case *ast.MemberExpr:
		v, err := it.evalMember(n, env)
		return []value.Value{v}, err

	case *ast.TableConstructorExpr:
		v, err := it.evalTableConstructor(n, env)
		return []value.Value{v}, err

	default:
		return nil, newError(TypeMismatch, e.Span(), "unhandled expression kind %T", e)
	}
}

func (it *Interpreter) evalLiteral(n *ast.Literal) (value.Value, error) {
	switch n.LitKind {
	case ast.LitNil:
		return nil, nil
	case ast.LitBool:
		return n.Raw == "true", nil
	case ast.LitString:
		return n.Value, nil
	case ast.LitInt, ast.LitFloat:
		v, err := value.ParseNumber(n.Raw)
		if err != nil {
			return nil, newError(TypeMismatch, n.Sp, "%v", err)
		}
		return v, nil
	default:
		return nil, newError(TypeMismatch, n.Sp, "unhandled literal kind")
	}
}

// evalExprList evaluates a comma-separated expression list the way
// spec.md §4.6 requires for argument lists, return lists, local/
// assignment init lists, and table array fields: every element but
// the last truncates to one value; the last expands if it is a call
// or vararg expression.
func (it *Interpreter) evalExprList(exprs []ast.Expression, env *value.Environment) ([]value.Value, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	var out []value.Value
	for i, e := range exprs {
		if i == len(exprs)-1 {
			vals, err := it.evalMulti(e, env)
			if err != nil {
				return nil, err
			}
			out = append(out, vals...)
			continue
		}
		v, err := it.evalExpr(e, env)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// and/or short-circuit: handled here rather than in arith.go's
// generic binary dispatch because they must not evaluate their
// right-hand side eagerly (spec.md §8's short-circuit law).
func (it *Interpreter) evalBinary(n *ast.BinaryExpr, env *value.Environment) (value.Value, error) {
	switch n.Op {
	case lexer.KwAnd:
		left, err := it.evalExpr(n.Left, env)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(left) {
			return left, nil
		}
		return it.evalExpr(n.Right, env)

	case lexer.KwOr:
		left, err := it.evalExpr(n.Left, env)
		if err != nil {
			return nil, err
		}
		if value.Truthy(left) {
			return left, nil
		}
		return it.evalExpr(n.Right, env)

	default:
		left, err := it.evalExpr(n.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := it.evalExpr(n.Right, env)
		if err != nil {
			return nil, err
		}
		return it.applyBinary(n.Op, left, right, n.Sp)
	}
}

func (it *Interpreter) evalUnary(n *ast.UnaryExpr, env *value.Environment) (value.Value, error) {
	x, err := it.evalExpr(n.X, env)
	if err != nil {
		return nil, err
	}
	return it.applyUnary(n.Op, x, n.Sp)
}

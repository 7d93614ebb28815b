package eval

import (
	"math"

	"github.com/OxenFxc/lua-ast-parser/lexer"
	"github.com/OxenFxc/lua-ast-parser/pos"
	"github.com/OxenFxc/lua-ast-parser/value"
)

// applyBinary implements spec.md §4.6's operator semantics for every
// non-short-circuit binary operator: both operands already evaluated.
func (it *Interpreter) applyBinary(op lexer.Kind, left, right value.Value, sp pos.Span) (value.Value, error) {
	switch op {
	case lexer.Plus, lexer.Minus, lexer.Star, lexer.Slash, lexer.DSlash, lexer.Percent:
		return it.arith(op, left, right, sp)
	case lexer.Caret:
		lf, ok1 := value.ToFloat(coerceNumber(left))
		rf, ok2 := value.ToFloat(coerceNumber(right))
		if !ok1 || !ok2 {
			return nil, arithTypeError(op, left, right, sp)
		}
		return math.Pow(lf, rf), nil
	case lexer.Concat:
		return it.concat(left, right, sp)
	case lexer.Lt, lexer.Gt, lexer.Le, lexer.Ge:
		return it.compare(op, left, right, sp)
	case lexer.Eq:
		return valuesEqual(left, right), nil
	case lexer.Ne:
		return !valuesEqual(left, right), nil
	default:
		return nil, newError(TypeMismatch, sp, "unhandled binary operator %s", op)
	}
}

// coerceNumber applies the numeral-string-to-number coercion real Lua
// performs for arithmetic operands (SPEC_FULL.md §3); non-numeric,
// non-numeral-string values pass through unchanged so the caller's
// type check reports the original offending type.
func coerceNumber(v value.Value) value.Value {
	if n, ok := value.ToNumber(v); ok {
		return n
	}
	return v
}

func (it *Interpreter) arith(op lexer.Kind, left, right value.Value, sp pos.Span) (value.Value, error) {
	l, r := coerceNumber(left), coerceNumber(right)
	li, lIsInt := l.(int64)
	ri, rIsInt := r.(int64)
	if lIsInt && rIsInt {
		switch op {
		case lexer.Plus:
			return li + ri, nil
		case lexer.Minus:
			return li - ri, nil
		case lexer.Star:
			return li * ri, nil
		case lexer.DSlash:
			if ri == 0 {
				return nil, newError(DivisionByZero, sp, "attempt to perform 'n//0'")
			}
			return floorDivInt(li, ri), nil
		case lexer.Percent:
			if ri == 0 {
				return nil, newError(DivisionByZero, sp, "attempt to perform 'n%%0'")
			}
			return li - floorDivInt(li, ri)*ri, nil
		case lexer.Slash:
			return float64(li) / float64(ri), nil
		}
	}
	lf, ok1 := value.ToFloat(l)
	rf, ok2 := value.ToFloat(r)
	if !ok1 || !ok2 {
		return nil, arithTypeError(op, left, right, sp)
	}
	switch op {
	case lexer.Plus:
		return lf + rf, nil
	case lexer.Minus:
		return lf - rf, nil
	case lexer.Star:
		return lf * rf, nil
	case lexer.Slash:
		return lf / rf, nil
	case lexer.DSlash:
		return math.Floor(lf / rf), nil
	case lexer.Percent:
		return lf - math.Floor(lf/rf)*rf, nil
	default:
		return nil, newError(TypeMismatch, sp, "unhandled arithmetic operator %s", op)
	}
}

func floorDivInt(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func arithTypeError(op lexer.Kind, left, right value.Value, sp pos.Span) error {
	return newError(TypeMismatch, sp, "attempt to perform arithmetic (%s) on a %s and a %s value",
		op, value.TypeName(left), value.TypeName(right))
}

// concat coerces numeric operands to their canonical string form and
// requires both sides be string-or-number (spec.md §4.6).
func (it *Interpreter) concat(left, right value.Value, sp pos.Span) (value.Value, error) {
	ls, ok1 := concatOperand(left)
	rs, ok2 := concatOperand(right)
	if !ok1 || !ok2 {
		return nil, newError(TypeMismatch, sp, "attempt to concatenate a %s value", value.TypeName(pick(!ok1, left, right)))
	}
	return ls + rs, nil
}

func pick(cond bool, a, b value.Value) value.Value {
	if cond {
		return a
	}
	return b
}

func concatOperand(v value.Value) (string, bool) {
	switch v.(type) {
	case string, int64, float64:
		return value.ToString(v), true
	default:
		return "", false
	}
}

// compare implements spec.md §4.6's "comparing incompatible types is a
// runtime error" rule for `< > <= >=`; `==`/`~=` never error (handled
// separately by valuesEqual).
func (it *Interpreter) compare(op lexer.Kind, left, right value.Value, sp pos.Span) (value.Value, error) {
	if lf, ok := value.ToFloat(left); ok {
		if rf, ok2 := value.ToFloat(right); ok2 {
			return numericCompare(op, lf, rf), nil
		}
	}
	if ls, ok := left.(string); ok {
		if rs, ok2 := right.(string); ok2 {
			return stringCompare(op, ls, rs), nil
		}
	}
	return nil, newError(TypeMismatch, sp, "attempt to compare a %s value with a %s value", value.TypeName(left), value.TypeName(right))
}

func numericCompare(op lexer.Kind, l, r float64) bool {
	switch op {
	case lexer.Lt:
		return l < r
	case lexer.Gt:
		return l > r
	case lexer.Le:
		return l <= r
	case lexer.Ge:
		return l >= r
	default:
		return false
	}
}

func stringCompare(op lexer.Kind, l, r string) bool {
	switch op {
	case lexer.Lt:
		return l < r
	case lexer.Gt:
		return l > r
	case lexer.Le:
		return l <= r
	case lexer.Ge:
		return l >= r
	default:
		return false
	}
}

// valuesEqual implements `==`: numbers compare by mathematical value
// across int/float, everything else compares by Go equality (which is
// reference identity for *Table/*Closure/*NativeFunc, matching Lua's
// "tables are equal only to themselves" rule).
func valuesEqual(left, right value.Value) bool {
	if lf, ok := value.ToFloat(numericOnly(left)); ok {
		if rf, ok2 := value.ToFloat(numericOnly(right)); ok2 {
			return lf == rf
		}
		return false
	}
	return left == right
}

func numericOnly(v value.Value) value.Value {
	switch v.(type) {
	case int64, float64:
		return v
	default:
		return nil
	}
}

func (it *Interpreter) applyUnary(op lexer.Kind, x value.Value, sp pos.Span) (value.Value, error) {
	switch op {
	case lexer.KwNot:
		return !value.Truthy(x), nil
	case lexer.Hash:
		switch t := x.(type) {
		case string:
			return int64(len(t)), nil
		case *value.Table:
			return t.Len(), nil
		default:
			return nil, newError(TypeMismatch, sp, "attempt to get length of a %s value", value.TypeName(x))
		}
	case lexer.Minus:
		n := coerceNumber(x)
		if i, ok := n.(int64); ok {
			return -i, nil
		}
		if f, ok := n.(float64); ok {
			return -f, nil
		}
		return nil, newError(TypeMismatch, sp, "attempt to perform arithmetic (unary -) on a %s value", value.TypeName(x))
	default:
		return nil, newError(TypeMismatch, sp, "unhandled unary operator %s", op)
	}
}

/*
Package value implements the runtime value model spec.md §3.4
describes: Value is one of {nil, bool, int64, float64, string,
*Table, *Closure, *NativeFunc}, represented as Go's `any` rather than
a hand-rolled tagged union — the Go type switch already gives an
exhaustive, closed dispatch over exactly this set, so a wrapper enum
would only duplicate what the type system tracks for free.

Grounded on go-mix's objects package for the general shape (a runtime
value family plus a TypeName-style classifier), generalized down to
the five primitive kinds plus table/function this dialect actually
needs in place of go-mix's richer array/map/set/list/tuple/struct
object zoo (DESIGN.md explains the collapse: this language only has
tables).
*/
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is any of nil, bool, int64, float64, string, *Table, *Closure,
// or *NativeFunc. There is no dedicated Value type; Go's interface
// value already carries the runtime tag a switch dispatches on.
type Value = any

// TypeName classifies v the way the Language's `type()` builtin
// reports it.
func TypeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case int64, float64:
		return "number"
	case string:
		return "string"
	case *Table:
		return "table"
	case *Closure, *NativeFunc:
		return "function"
	default:
		return fmt.Sprintf("unknown(%T)", v)
	}
}

// Truthy implements spec.md §4.6's rule: only nil and false are false.
func Truthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// ToString converts v to its canonical display/coercion form — used
// by the `tostring`/`print` builtins and by `..`'s numeric-to-string
// coercion (spec.md §4.6).
func ToString(v Value) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return formatFloat(t)
	case string:
		return t
	case *Table:
		return fmt.Sprintf("table: %p", t)
	case *Closure:
		return fmt.Sprintf("function: %p", t)
	case *NativeFunc:
		return fmt.Sprintf("function: builtin: %s", t.Name)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// formatFloat mirrors real Lua's lua_number2strx: format with minimal
// digits, then append ".0" if the result otherwise looks like an
// integer, so a float never prints indistinguishably from an integer.
func formatFloat(f float64) string {
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if math.IsNaN(f) {
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// ToNumber attempts the coercion the `tonumber` builtin and arithmetic
// operators perform on string operands, returning ok=false if v is not
// already numeric and not a numeral string.
func ToNumber(v Value) (Value, bool) {
	switch t := v.(type) {
	case int64, float64:
		return t, true
	case string:
		n, err := ParseNumber(strings.TrimSpace(t))
		if err != nil {
			return nil, false
		}
		return n, true
	default:
		return nil, false
	}
}

// ToFloat widens any numeric Value to float64; ok is false for
// non-numeric input.
func ToFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case int64:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}

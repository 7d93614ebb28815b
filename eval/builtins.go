package eval

import (
	"fmt"

	"github.com/OxenFxc/lua-ast-parser/pos"
	"github.com/OxenFxc/lua-ast-parser/value"
)

// registerBuiltins installs the minimal builtin surface SPEC_FULL.md
// §4.6 names, each grounded on real Lua's corresponding standard
// library function: print, type, tostring, tonumber, pairs, ipairs,
// setmetatable, getmetatable, pcall, error, assert, unpack.
func registerBuiltins(it *Interpreter) {
	def := func(name string, fn func(args []value.Value) ([]value.Value, error)) {
		it.Global.Define(name, &value.NativeFunc{Name: name, Fn: fn})
	}

	def("print", func(args []value.Value) ([]value.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = value.ToString(a)
		}
		for i, p := range parts {
			if i > 0 {
				fmt.Print("\t")
			}
			fmt.Print(p)
		}
		fmt.Println()
		return nil, nil
	})

	def("type", func(args []value.Value) ([]value.Value, error) {
		return []value.Value{value.TypeName(arg(args, 0))}, nil
	})

	def("tostring", func(args []value.Value) ([]value.Value, error) {
		return []value.Value{value.ToString(arg(args, 0))}, nil
	})

	def("tonumber", func(args []value.Value) ([]value.Value, error) {
		n, ok := value.ToNumber(arg(args, 0))
		if !ok {
			return []value.Value{nil}, nil
		}
		return []value.Value{n}, nil
	})

	def("pairs", func(args []value.Value) ([]value.Value, error) {
		tbl, ok := arg(args, 0).(*value.Table)
		if !ok {
			return nil, newError(TypeMismatch, pos.Span{}, "bad argument #1 to 'pairs' (table expected, got %s)", value.TypeName(arg(args, 0)))
		}
		keys := tbl.Keys()
		i := 0
		iter := &value.NativeFunc{Name: "pairs-iterator", Fn: func(_ []value.Value) ([]value.Value, error) {
			if i >= len(keys) {
				return []value.Value{nil}, nil
			}
			k := keys[i]
			i++
			return []value.Value{k, tbl.RawGet(k)}, nil
		}}
		return []value.Value{iter, tbl, nil}, nil
	})

	def("ipairs", func(args []value.Value) ([]value.Value, error) {
		tbl, ok := arg(args, 0).(*value.Table)
		if !ok {
			return nil, newError(TypeMismatch, pos.Span{}, "bad argument #1 to 'ipairs' (table expected, got %s)", value.TypeName(arg(args, 0)))
		}
		iter := &value.NativeFunc{Name: "ipairs-iterator", Fn: func(inner []value.Value) ([]value.Value, error) {
			i, _ := inner[1].(int64)
			i++
			v := tbl.RawGet(i)
			if v == nil {
				return []value.Value{nil}, nil
			}
			return []value.Value{i, v}, nil
		}}
		return []value.Value{iter, tbl, int64(0)}, nil
	})

	def("setmetatable", func(args []value.Value) ([]value.Value, error) {
		tbl, ok := arg(args, 0).(*value.Table)
		if !ok {
			return nil, newError(TypeMismatch, pos.Span{}, "bad argument #1 to 'setmetatable' (table expected)")
		}
		if arg(args, 1) == nil {
			tbl.SetMetatable(nil)
			return []value.Value{tbl}, nil
		}
		meta, ok := arg(args, 1).(*value.Table)
		if !ok {
			return nil, newError(TypeMismatch, pos.Span{}, "bad argument #2 to 'setmetatable' (nil or table expected)")
		}
		tbl.SetMetatable(meta)
		return []value.Value{tbl}, nil
	})

	def("getmetatable", func(args []value.Value) ([]value.Value, error) {
		tbl, ok := arg(args, 0).(*value.Table)
		if !ok || tbl.Metatable() == nil {
			return []value.Value{nil}, nil
		}
		return []value.Value{tbl.Metatable()}, nil
	})

	def("error", func(args []value.Value) ([]value.Value, error) {
		return nil, &RuntimeError{EvalKind: UserError, Message: value.ToString(arg(args, 0)), Value: arg(args, 0)}
	})

	def("assert", func(args []value.Value) ([]value.Value, error) {
		if !value.Truthy(arg(args, 0)) {
			msg := "assertion failed!"
			if len(args) > 1 {
				msg = value.ToString(args[1])
			}
			return nil, &RuntimeError{EvalKind: UserError, Message: msg, Value: msg}
		}
		return args, nil
	})

	def("unpack", func(args []value.Value) ([]value.Value, error) {
		tbl, ok := arg(args, 0).(*value.Table)
		if !ok {
			return nil, newError(TypeMismatch, pos.Span{}, "bad argument #1 to 'unpack' (table expected)")
		}
		n := tbl.Len()
		out := make([]value.Value, 0, n)
		for i := int64(1); i <= n; i++ {
			out = append(out, tbl.RawGet(i))
		}
		return out, nil
	})

	// pcall converts a raised error into a `(false, message)` pair
	// (spec.md §4.6); it closes over `it` since the generic NativeFunc
	// signature carries no interpreter handle of its own.
	def("pcall", func(args []value.Value) ([]value.Value, error) {
		if len(args) == 0 {
			return []value.Value{false, "bad argument #1 to 'pcall' (value expected)"}, nil
		}
		results, err := it.call(args[0], args[1:], pos.Span{})
		if err != nil {
			if re, ok := err.(*RuntimeError); ok {
				if re.Value != nil {
					return []value.Value{false, re.Value}, nil
				}
				return []value.Value{false, re.Error()}, nil
			}
			return nil, err // BudgetError and anything else is not caught
		}
		return append([]value.Value{true}, results...), nil
	})
}

func arg(args []value.Value, i int) value.Value {
	if i < len(args) {
		return args[i]
	}
	return nil
}

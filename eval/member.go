package eval

import (
	"github.com/OxenFxc/lua-ast-parser/ast"
	"github.com/OxenFxc/lua-ast-parser/pos"
	"github.com/OxenFxc/lua-ast-parser/value"
)

// maxIndexChain bounds the `__index` delegation chain (spec.md §4.6:
// "The lookup MUST detect cycles and abort with a runtime error after
// a bounded chain depth").
const maxIndexChain = 100

func (it *Interpreter) memberKey(n *ast.MemberExpr, env *value.Environment) (value.Value, error) {
	if n.Computed {
		return it.evalExpr(n.Selector, env)
	}
	return n.Selector.(*ast.Identifier).Name, nil
}

func (it *Interpreter) evalMember(n *ast.MemberExpr, env *value.Environment) (value.Value, error) {
	base, err := it.evalExpr(n.Base, env)
	if err != nil {
		return nil, err
	}
	key, err := it.memberKey(n, env)
	if err != nil {
		return nil, err
	}
	return it.index(base, key, n.Sp)
}

// index resolves base[key], delegating through `__index` metatable
// chains (spec.md §4.6): a table `__index` recurses, a function
// `__index` is called as `fn(base, key)`.
func (it *Interpreter) index(base, key value.Value, sp pos.Span) (value.Value, error) {
	depth := 0
	for {
		tbl, ok := base.(*value.Table)
		if !ok {
			return nil, newError(IndexOnNonIndexable, sp, "attempt to index a %s value", value.TypeName(base))
		}
		v := tbl.RawGet(key)
		if v != nil {
			return v, nil
		}
		meta := tbl.Metatable()
		if meta == nil {
			return nil, nil
		}
		idx := meta.RawGet("__index")
		if idx == nil {
			return nil, nil
		}
		depth++
		if depth > maxIndexChain {
			return nil, newError(MetatableCycle, sp, "'__index' chain too long; possible loop")
		}
		switch h := idx.(type) {
		case *value.Table:
			base = h
			continue
		case *value.Closure, *value.NativeFunc:
			results, err := it.call(h, []value.Value{base, key}, sp)
			if err != nil {
				return nil, err
			}
			if len(results) == 0 {
				return nil, nil
			}
			return results[0], nil
		default:
			return nil, newError(IndexOnNonIndexable, sp, "'__index' must be a table or function")
		}
	}
}

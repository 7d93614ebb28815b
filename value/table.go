package value

import (
	"fmt"
	"math"
)

// Table is the Language's single composite data structure: an
// associative map keyed by any value except nil and NaN, with an
// optional metatable that drives `__index` lookup chaining (spec.md
// §3.4, §4.6). Grounded on go-mix's objects/map.go and objects/array.go
// collapsed into one type, since this dialect has no separate
// array/map/set/list/tuple/struct object kinds.
type Table struct {
	entries map[Value]Value
	order   []Value // insertion order, for deterministic pairs() iteration
	meta    *Table
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[Value]Value)}
}

// Metatable returns t's metatable, or nil if it has none.
func (t *Table) Metatable() *Table { return t.meta }

// SetMetatable installs m as t's metatable (`setmetatable`).
func (t *Table) SetMetatable(m *Table) { t.meta = m }

// normalizeKey canonicalizes a table key so that 1 and 1.0 address the
// same entry, and rejects nil/NaN keys (spec.md §3.4's "any value
// except nil or NaN may be a key").
func normalizeKey(key Value) (Value, error) {
	switch k := key.(type) {
	case nil:
		return nil, fmt.Errorf("table index is nil")
	case float64:
		if math.IsNaN(k) {
			return nil, fmt.Errorf("table index is NaN")
		}
		if i := int64(k); float64(i) == k {
			return i, nil
		}
		return k, nil
	default:
		return key, nil
	}
}

// RawGet reads t[key] directly, bypassing any metatable `__index`.
func (t *Table) RawGet(key Value) Value {
	nk, err := normalizeKey(key)
	if err != nil {
		return nil
	}
	return t.entries[nk]
}

// RawSet writes t[key] = val directly, bypassing any metatable
// `__newindex` (this dialect's evaluator only implements `__index`,
// per SPEC_FULL.md §4.6's scoped metamethod surface). Setting a key to
// nil removes the entry.
func (t *Table) RawSet(key, val Value) error {
	nk, err := normalizeKey(key)
	if err != nil {
		return err
	}
	if val == nil {
		if _, existed := t.entries[nk]; existed {
			delete(t.entries, nk)
			t.removeFromOrder(nk)
		}
		return nil
	}
	if _, existed := t.entries[nk]; !existed {
		t.order = append(t.order, nk)
	}
	t.entries[nk] = val
	return nil
}

func (t *Table) removeFromOrder(key Value) {
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}

// Len implements the `#` operator: a border of the table, i.e. an
// integer n such that t[n] is non-nil and t[n+1] is nil. This
// implementation uses the simplest valid border — the length of the
// contiguous run of integer keys starting at 1 — which matches
// spec.md's "array part" tables and is what every test in this
// repository relies on; Lua leaves the result of `#` on a table with
// holes unspecified, and so does this implementation.
func (t *Table) Len() int64 {
	var n int64
	for {
		if _, ok := t.entries[n+1]; !ok {
			return n
		}
		n++
	}
}

// Keys returns t's keys in insertion order, for `pairs`.
func (t *Table) Keys() []Value {
	out := make([]Value, len(t.order))
	copy(out, t.order)
	return out
}

package eval_test

import (
	"testing"

	"github.com/OxenFxc/lua-ast-parser/diag"
	"github.com/OxenFxc/lua-ast-parser/eval"
	"github.com/OxenFxc/lua-ast-parser/parser"
	"github.com/OxenFxc/lua-ast-parser/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses and evaluates src, failing the test immediately on any
// parse or evaluation error.
func run(t *testing.T, src string) []value.Value {
	t.Helper()
	d := diag.New(src, "test")
	prog := parser.Parse(src, d, parser.DefaultOptions())
	require.False(t, d.HasErrors(), "unexpected parse diagnostics: %s", d.RenderAll())
	it := eval.New(d, eval.DefaultOptions())
	results, err := it.Run(prog)
	require.NoError(t, err)
	return results
}

// Scenario 1 (spec.md §8): operator precedence.
func TestArithmeticPrecedence(t *testing.T) {
	results := run(t, "return 1 + 2 * 3")
	require.Len(t, results, 1)
	assert.Equal(t, int64(7), results[0])
}

// Scenario 2: table indexing.
func TestTableIndexing(t *testing.T) {
	results := run(t, "local t = {10,20,30}; return t[2]")
	require.Len(t, results, 1)
	assert.Equal(t, int64(20), results[0])
}

// Scenario 3: recursive local function.
func TestRecursiveFactorial(t *testing.T) {
	results := run(t, `
local function f(n)
	if n <= 1 then return 1 end
	return n * f(n - 1)
end
return f(5)
`)
	require.Len(t, results, 1)
	assert.Equal(t, int64(120), results[0])
}

// Scenario 4: numeric for accumulation.
func TestNumericForAccumulates(t *testing.T) {
	results := run(t, `
local s = 0
for i = 1, 5 do
	s = s + i
end
return s
`)
	require.Len(t, results, 1)
	assert.Equal(t, int64(15), results[0])
}

// Scenario 5: generic for over pairs visits every entry exactly once.
func TestGenericForPairsVisitsEachEntryOnce(t *testing.T) {
	results := run(t, `
local t = {a=1, b=2}
local seen = {}
local count = 0
for k, v in pairs(t) do
	seen[k] = v
	count = count + 1
end
return count, seen.a, seen.b
`)
	require.Len(t, results, 3)
	assert.Equal(t, int64(2), results[0])
	assert.Equal(t, int64(1), results[1])
	assert.Equal(t, int64(2), results[2])
}

// Scenario 6: one closure's captured upvalue persists and mutates
// across calls.
func TestClosureCaptureAcrossCalls(t *testing.T) {
	results := run(t, `
local function mk()
	local x = 0
	return function()
		x = x + 1
		return x
	end
end
local c = mk()
return c(), c(), c()
`)
	require.Len(t, results, 3)
	assert.Equal(t, []value.Value{int64(1), int64(2), int64(3)}, results)
}

func TestShortCircuitAndOr(t *testing.T) {
	results := run(t, `
local calls = 0
local function touch(v) calls = calls + 1 return v end
local a = false and touch(1)
local b = true or touch(2)
return a, b, calls
`)
	require.Len(t, results, 3)
	assert.Equal(t, false, results[0])
	assert.Equal(t, true, results[1])
	assert.Equal(t, int64(0), results[2], "neither right-hand side should have evaluated")
}

func TestClosurePerLoopIterationCapturesDistinctBinding(t *testing.T) {
	results := run(t, `
local fns = {}
for i = 1, 3 do
	fns[i] = function() return i end
end
return fns[1](), fns[2](), fns[3]()
`)
	require.Len(t, results, 3)
	assert.Equal(t, []value.Value{int64(1), int64(2), int64(3)}, results)
}

func TestMethodCallSugarEvaluatesReceiverOnce(t *testing.T) {
	results := run(t, `
local calls = 0
local obj = {n = 10}
function obj:get() return self.n end
local function pick()
	calls = calls + 1
	return obj
end
local v = pick():get()
return v, calls
`)
	require.Len(t, results, 2)
	assert.Equal(t, int64(10), results[0])
	assert.Equal(t, int64(1), results[1], "receiver expression must evaluate exactly once")
}

func TestMetatableIndexDelegation(t *testing.T) {
	results := run(t, `
local base = {greeting = "hi"}
local derived = setmetatable({}, {__index = base})
return derived.greeting
`)
	require.Len(t, results, 1)
	assert.Equal(t, "hi", results[0])
}

func TestPcallConvertsErrorToFalseMessage(t *testing.T) {
	results := run(t, `
local ok, msg = pcall(function() error("boom") end)
return ok, msg
`)
	require.Len(t, results, 2)
	assert.Equal(t, false, results[0])
	assert.Equal(t, "boom", results[1])
}

func TestStepOfZeroIsRuntimeError(t *testing.T) {
	d := diag.New("", "test")
	prog := parser.Parse("for i = 1, 10, 0 do end", d, parser.DefaultOptions())
	require.False(t, d.HasErrors())
	it := eval.New(d, eval.DefaultOptions())
	_, err := it.Run(prog)
	require.Error(t, err)
	rerr, ok := err.(*eval.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, eval.StepOfZero, rerr.EvalKind)
}

// Open Question (SPEC_FULL.md §9): an assignment/local with fewer init
// expressions than targets nil-extends the remainder; one with more
// init expressions than targets evaluates and discards the extras.
func TestAssignmentArityMismatch(t *testing.T) {
	results := run(t, `
local a, b, c = 1
local d, e = 1, 2, 3
return a, b, c, d, e
`)
	require.Len(t, results, 5)
	assert.Equal(t, int64(1), results[0])
	assert.Nil(t, results[1])
	assert.Nil(t, results[2])
	assert.Equal(t, int64(1), results[3])
	assert.Equal(t, int64(2), results[4])
}

func TestMaxCallDepthBudget(t *testing.T) {
	d := diag.New("", "test")
	prog := parser.Parse(`
local function loop() return loop() end
return loop()
`, d, parser.DefaultOptions())
	require.False(t, d.HasErrors())
	it := eval.New(d, eval.Options{MaxCallDepth: 10})
	_, err := it.Run(prog)
	require.Error(t, err)
	_, ok := err.(*eval.BudgetError)
	assert.True(t, ok)
}

package main

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OxenFxc/lua-ast-parser/eval"
	"github.com/OxenFxc/lua-ast-parser/parser"
)

// captureStdout redirects os.Stdout for the duration of f and returns
// everything written to it. runFile prints results directly to
// os.Stdout (matching go-mix's main package), so this is the only way
// to observe its output from a test.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	f()
	require.NoError(t, w.Close())
	os.Stdout = orig

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

func scriptFile(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lua")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

// Scenario 1 (spec.md §8), driven through the CLI's `run` subcommand.
func TestRunCommandArithmeticPrecedence(t *testing.T) {
	path := scriptFile(t, "return 1 + 2 * 3")
	out := captureStdout(t, func() {
		require.NoError(t, runFile(path, parser.DefaultOptions(), eval.DefaultOptions()))
	})
	assert.Equal(t, "7", out)
}

// Scenario 3.
func TestRunCommandRecursiveFactorial(t *testing.T) {
	path := scriptFile(t, `
local function f(n)
	if n <= 1 then return 1 end
	return n * f(n - 1)
end
return f(5)
`)
	out := captureStdout(t, func() {
		require.NoError(t, runFile(path, parser.DefaultOptions(), eval.DefaultOptions()))
	})
	assert.Equal(t, "120", out)
}

// Scenario 4.
func TestRunCommandNumericForAccumulates(t *testing.T) {
	path := scriptFile(t, `
local s = 0
for i = 1, 5 do
	s = s + i
end
return s
`)
	out := captureStdout(t, func() {
		require.NoError(t, runFile(path, parser.DefaultOptions(), eval.DefaultOptions()))
	})
	assert.Equal(t, "15", out)
}

// Scenario 6: closures captured by reference persist across calls.
func TestRunCommandClosureCaptureAcrossCalls(t *testing.T) {
	path := scriptFile(t, `
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
	out := captureStdout(t, func() {
		require.NoError(t, runFile(path, parser.DefaultOptions(), eval.DefaultOptions()))
	})
	assert.Equal(t, "1\n2\n3", out)
}

func TestRunCommandParseFailureReturnsError(t *testing.T) {
	path := scriptFile(t, "if then end")
	err := runFile(path, parser.DefaultOptions(), eval.DefaultOptions())
	assert.Error(t, err)
}

func TestRunCommandStrictModeErrorsOnUndefinedVariable(t *testing.T) {
	path := scriptFile(t, "return undefinedGlobal")
	opts := eval.DefaultOptions()
	opts.Strict = true
	err := runFile(path, parser.DefaultOptions(), opts)
	assert.Error(t, err)
}

// Root-command wiring: `run` dispatches to runFile via cobra the same
// way a user invoking the built binary would.
func TestRootCommandRunSubcommandExecutesScript(t *testing.T) {
	path := scriptFile(t, "return 1 + 2 * 3")
	out := captureStdout(t, func() {
		cmd := newRootCmd()
		cmd.SetArgs([]string{"run", path})
		require.NoError(t, cmd.Execute())
	})
	assert.Equal(t, "7", out)
}

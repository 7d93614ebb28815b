package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OxenFxc/lua-ast-parser/diag"
	"github.com/OxenFxc/lua-ast-parser/parser"
	"github.com/OxenFxc/lua-ast-parser/printer"
)

func printSrc(t *testing.T, src string, opts printer.Options) string {
	t.Helper()
	d := diag.New(src, "test")
	prog := parser.Parse(src, d, parser.DefaultOptions())
	require.False(t, d.HasErrors(), "unexpected parse diagnostics: %s", d.RenderAll())
	return printer.Print(prog, opts)
}

func TestPrintSimpleAssignment(t *testing.T) {
	out := printSrc(t, "local x = 1\n", printer.DefaultOptions())
	assert.Equal(t, "local x = 1\n", out)
}

func TestPrintAddsParensOnlyWhenPrecedenceRequires(t *testing.T) {
	out := printSrc(t, "return 1 + 2 * 3\n", printer.DefaultOptions())
	assert.Equal(t, "return 1 + 2 * 3\n", out)
}

func TestPrintKeepsParensThatChangePrecedence(t *testing.T) {
	out := printSrc(t, "return (1 + 2) * 3\n", printer.DefaultOptions())
	assert.Equal(t, "return (1 + 2) * 3\n", out)
}

func TestPrintRightAssociativeConcatNoRedundantParens(t *testing.T) {
	out := printSrc(t, `return "a" .. "b" .. "c"`+"\n", printer.DefaultOptions())
	assert.Equal(t, `return "a" .. "b" .. "c"`+"\n", out)
}

func TestPrintNonAssociativeSubtractionParenthesizesRightChild(t *testing.T) {
	out := printSrc(t, "return 1 - (2 - 3)\n", printer.DefaultOptions())
	assert.Equal(t, "return 1 - (2 - 3)\n", out)
}

func TestPrintIfElseifElse(t *testing.T) {
	src := "if a then\n  print(1)\nelseif b then\n  print(2)\nelse\n  print(3)\nend\n"
	out := printSrc(t, src, printer.DefaultOptions())
	assert.Equal(t, src, out)
}

func TestPrintNumericForWithStep(t *testing.T) {
	out := printSrc(t, "for i = 1, 10, 2 do\n  print(i)\nend\n", printer.DefaultOptions())
	assert.Equal(t, "for i = 1, 10, 2 do\n  print(i)\nend\n", out)
}

func TestPrintMethodDeclarationDropsImplicitSelf(t *testing.T) {
	out := printSrc(t, "function obj:greet(name)\n  return name\nend\n", printer.DefaultOptions())
	assert.Equal(t, "function obj:greet(name)\n  return name\nend\n", out)
}

func TestPrintStringQuotePrefersSingle(t *testing.T) {
	out := printSrc(t, `return "hello"`+"\n", printer.DefaultOptions())
	assert.Equal(t, "return 'hello'\n", out)
}

func TestPrintStringSwitchesToDoubleWhenBodyHasSingleQuote(t *testing.T) {
	out := printSrc(t, `return 'it\'s'`+"\n", printer.DefaultOptions())
	assert.Equal(t, `return "it's"`+"\n", out)
}

func TestPrintTableConstructor(t *testing.T) {
	out := printSrc(t, "return {1, 2, x = 3}\n", printer.DefaultOptions())
	assert.Equal(t, "return {\n  1,\n  2,\n  x = 3,\n}\n", out)
}

func TestPrintSemicolonsInsertOption(t *testing.T) {
	opts := printer.DefaultOptions()
	opts.Semicolons = printer.SemicolonsInsert
	out := printSrc(t, "local x = 1\n", opts)
	assert.Equal(t, "local x = 1;\n", out)
}

func TestPrintNoFinalNewlineWhenOptionDisabled(t *testing.T) {
	opts := printer.DefaultOptions()
	opts.InsertFinalNewline = false
	out := printSrc(t, "local x = 1\n", opts)
	assert.Equal(t, "local x = 1", out)
}
